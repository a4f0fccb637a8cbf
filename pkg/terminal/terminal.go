package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Prompt reads answers line by line, printing a prompt before each read.
type Prompt struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{scanner: bufio.NewScanner(in), out: out}
}

// InputString asks for one line. An empty answer yields def. ok is false once
// input is exhausted.
func (p *Prompt) InputString(msg, def string) (s string, ok bool) {
	fmt.Fprintf(p.out, "%s", msg)
	if len(def) > 0 {
		fmt.Fprintf(p.out, " [%s]", def)
	}
	fmt.Fprintf(p.out, ": ")

	if !p.scanner.Scan() {
		return "", false
	}
	s = p.scanner.Text()
	if len(s) == 0 {
		return def, true
	}
	return s, true
}

// ReadLine reads one line without prompting.
func (p *Prompt) ReadLine() (string, bool) {
	if !p.scanner.Scan() {
		return "", false
	}
	return p.scanner.Text(), true
}

func (p *Prompt) Err() error {
	return p.scanner.Err()
}
