package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type ProgramCommandArg struct {
	Arg         string
	Description string
}

type ProgramCommand struct {
	Run         func(args []string) int
	Cmd         string
	Description string
	Args        []ProgramCommandArg
}

func GetProgCommand(progCommands []ProgramCommand, cmd string) *ProgramCommand {
	for i := range progCommands {
		if progCommands[i].Cmd == cmd {
			return &progCommands[i]
		}
	}
	return nil
}

// printColumns prints name/description pairs with descriptions aligned.
// Multi-line descriptions continue below their first line.
func printColumns(w io.Writer, names []string, descriptions []string) {
	maxLen := 0
	for _, n := range names {
		if len(n) > maxLen {
			maxLen = len(n)
		}
	}
	fmtStr := "%-" + strconv.Itoa(maxLen) + "s    %s\n"

	for i, n := range names {
		for _, d := range strings.Split(descriptions[i], "\n") {
			fmt.Fprintf(w, fmtStr, n, d)
			n = ""
		}
	}
}

func PrintHelpForCommands(w io.Writer, progCommands []ProgramCommand) {
	names := make([]string, len(progCommands))
	descriptions := make([]string, len(progCommands))
	for i, c := range progCommands {
		names[i] = c.Cmd
		descriptions[i] = c.Description
	}
	printColumns(w, names, descriptions)
}

func PrintHelpForCommand(w io.Writer, progCommand *ProgramCommand) {
	exe := filepath.Base(os.Args[0])
	if len(progCommand.Args) == 0 {
		fmt.Fprintf(w, "Usage: %s %s\n", exe, progCommand.Cmd)
		fmt.Fprintf(w, "\n%s\n", progCommand.Description)
		return
	}

	fmt.Fprintf(w, "Usage: %s %s <arguments>\n", exe, progCommand.Cmd)
	fmt.Fprintf(w, "\n%s\n", progCommand.Description)
	fmt.Fprintf(w, "\nArguments:\n\n")

	names := make([]string, len(progCommand.Args))
	descriptions := make([]string, len(progCommand.Args))
	for i, a := range progCommand.Args {
		names[i] = a.Arg
		descriptions[i] = a.Description
	}
	printColumns(w, names, descriptions)
}

// CleanArgs drops the arguments consumed by BoolArg, StringArg and ListArg.
func CleanArgs(args *[]string) {
	tmp := []string{}
	for _, a := range *args {
		if len(a) > 0 {
			tmp = append(tmp, a)
		}
	}
	*args = tmp
}

func BoolArg(key string, def bool, args *[]string) bool {
	for i, a := range *args {
		if a == key {
			(*args)[i] = ""
			return true
		}
	}
	return def
}

// StringArg consumes "key value" or "key=value".
func StringArg(key string, def string, args *[]string) string {
	key2 := key + "="
	for i, a := range *args {
		if a == key {
			(*args)[i] = ""
			if i < len(*args)-1 {
				ret := (*args)[i+1]
				(*args)[i+1] = ""
				return ret
			}
			return def
		}
		if strings.HasPrefix(a, key2) {
			(*args)[i] = ""
			return a[len(key2):]
		}
	}
	return def
}

// ListArg consumes every occurrence of key and splits the values at commas
// and spaces.
func ListArg(key string, def []string, args *[]string) []string {
	var list []string
	found := false
	for {
		v := StringArg(key, "\x00", args)
		if v == "\x00" {
			break
		}
		found = true
		list = append(list, SplitByCommaOrSpaceAndTrim(v)...)
	}
	if !found {
		return def
	}
	return list
}

func SplitByCommaOrSpaceAndTrim(s string) []string {
	b := []string{}
	for _, t := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		t = strings.TrimSpace(t)
		if len(t) > 0 {
			b = append(b, t)
		}
	}
	return b
}
