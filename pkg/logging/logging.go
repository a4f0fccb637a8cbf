package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kardianos/service"
)

const (
	DEBUG   = 0
	INFO    = 1
	WARNING = 2
	ERROR   = 3
	SILENT  = 4
)

var levelStrings = [...]string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"}

type Options struct {
	// Service is used instead of the console when the process does not run
	// interactively.
	Service      service.Logger
	IsService    bool
	File         string
	LevelConsole int
	LevelService int
	LevelFile    int
	PrintDate    bool
	PrintTime    bool
	PrintMicros  bool
}

type logger struct {
	mu      sync.Mutex
	opts    Options
	console *log.Logger
	service service.Logger
	file    *log.Logger
	closer  io.Closer
}

var std = &logger{
	opts: Options{
		LevelConsole: INFO,
		LevelService: SILENT,
		LevelFile:    SILENT,
		PrintDate:    true,
		PrintTime:    true,
	},
	console: log.New(os.Stderr, "", 0),
}

func Level(level string) int {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	}
	return SILENT
}

// Init replaces the active sinks. Log files are created along with their
// directory and appended to.
func Init(opts Options) error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if std.closer != nil {
		std.closer.Close()
		std.closer = nil
	}
	std.console = nil
	std.service = nil
	std.file = nil

	if opts.IsService && opts.Service != nil && opts.LevelService < SILENT {
		std.service = opts.Service
	}
	if !opts.IsService && opts.LevelConsole < SILENT {
		std.console = log.New(os.Stderr, "", 0)
	}
	if opts.File != "" && opts.LevelFile < SILENT {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0700); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return err
		}
		std.file = log.New(f, "", 0)
		std.closer = f
	}
	std.opts = opts
	return nil
}

func Close() {
	std.mu.Lock()
	defer std.mu.Unlock()
	if std.closer != nil {
		std.closer.Close()
		std.closer = nil
		std.file = nil
	}
}

func Debug(prefix string, v ...interface{}) {
	std.print(DEBUG, prefix, v...)
}

func Info(prefix string, v ...interface{}) {
	std.print(INFO, prefix, v...)
}

func Warn(prefix string, v ...interface{}) {
	std.print(WARNING, prefix, v...)
}

func Error(prefix string, v ...interface{}) {
	std.print(ERROR, prefix, v...)
}

func Fatal(prefix string, v ...interface{}) {
	std.print(ERROR, prefix, v...)
	Close()
	os.Exit(1)
}

// format builds "[prefix]: msg". With more than one value the first is a
// format string.
func format(prefix string, v ...any) string {
	switch len(v) {
	case 0:
		return prefix
	case 1:
		return fmt.Sprintf("[%s]: %v", prefix, v[0])
	}
	f, ok := v[0].(string)
	if !ok {
		return fmt.Sprintf("[%s]: %v", prefix, v)
	}
	return fmt.Sprintf("[%s]: %s", prefix, fmt.Sprintf(f, v[1:]...))
}

func (l *logger) print(level int, prefix string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	opts := l.opts
	toConsole := l.console != nil && level >= opts.LevelConsole
	toService := l.service != nil && level >= opts.LevelService
	toFile := l.file != nil && level >= opts.LevelFile
	if !toConsole && !toService && !toFile {
		return
	}

	var buf []byte
	formatHeader(&buf, time.Now(), opts)
	line := fmt.Sprintf("%s%-7s %s", buf, levelStrings[level], format(prefix, v...))

	if toService {
		switch level {
		case DEBUG, INFO:
			l.service.Info(line)
		case WARNING:
			l.service.Warning(line)
		default:
			l.service.Error(line)
		}
	}
	if toConsole {
		l.console.Println(line)
	}
	if toFile {
		l.file.Println(line)
	}
}

func itoa(buf *[]byte, i int, wid int) {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

func formatHeader(buf *[]byte, t time.Time, opts Options) {
	if opts.PrintDate {
		year, month, day := t.Date()
		itoa(buf, year, 4)
		*buf = append(*buf, '/')
		itoa(buf, int(month), 2)
		*buf = append(*buf, '/')
		itoa(buf, day, 2)
		*buf = append(*buf, ' ')
	}
	if opts.PrintTime {
		hour, min, sec := t.Clock()
		itoa(buf, hour, 2)
		*buf = append(*buf, ':')
		itoa(buf, min, 2)
		*buf = append(*buf, ':')
		itoa(buf, sec, 2)
		if opts.PrintMicros {
			*buf = append(*buf, '.')
			itoa(buf, t.Nanosecond()/1e3, 6)
		}
		*buf = append(*buf, ' ')
	}
}
