package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kardianos/service"
	"golang.org/x/exp/slices"

	"mosi-wildcard/pkg/app"
	"mosi-wildcard/pkg/config"
	"mosi-wildcard/pkg/logging"
	"mosi-wildcard/pkg/terminal"
	"mosi-wildcard/pkg/wildcard"
)

var Version = "DEV"

const LOG = "MAIN"

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

var helpCommands = [...]string{"-h", "--help", "help", "-?"}

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin

	isInteractive = func() bool { return terminal.IsTerminal(os.Stdin) }

	svc *wildcard.Service
)

var commonArgs = []app.ProgramCommandArg{
	{Arg: "-c <file>", Description: "Config file (.json, .yaml or .yml)."},
	{Arg: "-v", Description: "Debug logging."},
}

var modeArgs = []app.ProgramCommandArg{
	{Arg: "-i", Description: "Case insensitive matching."},
	{Arg: "-prefix", Description: "Also accept names that could be extended into a match."},
}

var programCommands []app.ProgramCommand

func init() {
	programCommands = []app.ProgramCommand{
		{
			Run:         runMatch,
			Cmd:         "match",
			Description: "Matches names against one pattern.\nExits with 1 when no name matched.",
			Args: append([]app.ProgramCommandArg{
				{Arg: "<pattern>", Description: "Wildcard pattern, e.g. \"*.py\"."},
				{Arg: "<name>...", Description: "Names to test."},
			}, append(modeArgs, commonArgs...)...),
		},
		{
			Run:         runAny,
			Cmd:         "any",
			Description: "Matches names against a list of patterns.\nAn empty list matches every name.",
			Args: append([]app.ProgramCommandArg{
				{Arg: "-p <patterns>", Description: "Comma or space separated patterns, may be repeated.\nDefaults to the configured include list."},
				{Arg: "<name>...", Description: "Names to test."},
			}, append(modeArgs, commonArgs...)...),
		},
		{
			Run:         runTokens,
			Cmd:         "tokens",
			Description: "Prints the compiled tokens of a pattern.",
			Args: append([]app.ProgramCommandArg{
				{Arg: "<pattern>", Description: "Wildcard pattern."},
			}, commonArgs...),
		},
		{
			Run:         runFind,
			Cmd:         "find",
			Description: "Lists the files below a directory or afs URL selected by wildcard filters.",
			Args: append([]app.ProgramCommandArg{
				{Arg: "<dir|url>", Description: "Local directory or afs URL, e.g. s3://bucket/prefix."},
				{Arg: "-include <patterns>", Description: "File name patterns to select."},
				{Arg: "-exclude <patterns>", Description: "File name patterns to skip."},
				{Arg: "-include-dirs <patterns>", Description: "Directory name patterns to descend into."},
				{Arg: "-exclude-dirs <patterns>", Description: "Directory name patterns to skip."},
				{Arg: "-paths <patterns>", Description: "Relative path patterns to select, e.g. \"src/**.go\"."},
				{Arg: "-i", Description: "Case insensitive matching."},
			}, commonArgs...),
		},
		{
			Run:         runFilter,
			Cmd:         "filter",
			Description: "Filters names read from stdin.\nOn a terminal every name is reported as match, partial or no match.",
			Args: append([]app.ProgramCommandArg{
				{Arg: "-p <patterns>", Description: "Comma or space separated patterns, may be repeated."},
				{Arg: "-i", Description: "Case insensitive matching."},
			}, commonArgs...),
		},
		{
			Run:         runVersion,
			Cmd:         "version",
			Description: "Prints the version.",
		},
	}
}

func isHelpArg(args []string) (bool, []string) {
	if len(args) > 0 && slices.Contains(helpCommands[:], args[0]) {
		return true, args[1:]
	}
	return false, args
}

func getCommand(args []string) (string, []string) {
	if len(args) > 0 {
		return args[0], args[1:]
	}
	return "", args
}

func printHelp() {
	exe := filepath.Base(os.Args[0])
	fmt.Fprintf(stdout, "Usage: %s <command> [arguments]\n", exe)
	fmt.Fprintf(stdout, "\nCOMMANDS:\n\n")
	app.PrintHelpForCommands(stdout, programCommands)
	fmt.Fprintf(stdout, "\nFor further help run %s <command> -h\n", exe)
}

func setup(cfgFile string, verbose bool) error {
	if err := config.ReadConfig(cfgFile); err != nil {
		return err
	}

	levelConsole := config.LogLevelConsole()
	if verbose {
		levelConsole = logging.DEBUG
	}
	err := logging.Init(logging.Options{
		Service:      service.ConsoleLogger,
		IsService:    !service.Interactive(),
		File:         config.LogFile(),
		LevelConsole: levelConsole,
		LevelService: config.LogLevelService(),
		LevelFile:    config.LogLevelFile(),
		PrintDate:    true,
		PrintTime:    true,
	})
	if err != nil {
		return err
	}

	svc, err = wildcard.NewService(config.CacheCapacity())
	if err != nil {
		return err
	}
	logging.Debug(LOG, "config: %q, cache capacity: %d, case sensitive: %v", cfgFile, config.CacheCapacity(), config.CaseSensitive())
	return nil
}

func run(args []string) int {
	if isHelp, _ := isHelpArg(args); isHelp || len(args) == 0 {
		printHelp()
		return exitMatch
	}

	cmd, args := getCommand(args)
	progCommand := app.GetProgCommand(programCommands, cmd)
	if progCommand == nil {
		fmt.Fprintf(stderr, "Unknown command '%s'. Run with -h for help.\n", cmd)
		return exitError
	}
	if isHelp, _ := isHelpArg(args); isHelp {
		app.PrintHelpForCommand(stdout, progCommand)
		return exitMatch
	}

	cfgFile := app.StringArg("-c", "", &args)
	verbose := app.BoolArg("-v", false, &args)
	if err := setup(cfgFile, verbose); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitError
	}
	defer logging.Close()

	return progCommand.Run(args)
}

func main() {
	os.Exit(run(os.Args[1:]))
}
