package main

import (
	"context"
	"fmt"
	"strings"

	"mosi-wildcard/pkg/app"
	"mosi-wildcard/pkg/config"
	"mosi-wildcard/pkg/filesys"
	"mosi-wildcard/pkg/logging"
	"mosi-wildcard/pkg/terminal"
	"mosi-wildcard/pkg/wildcard"
)

func usageError(cmd string) int {
	fmt.Fprintf(stderr, "Missing arguments for '%s'. Run with %s -h for help.\n", cmd, cmd)
	return exitError
}

func fail(err error) int {
	fmt.Fprintf(stderr, "%v\n", err)
	return exitError
}

func caseSensitiveArg(args *[]string) bool {
	if app.BoolArg("-i", false, args) {
		return false
	}
	return config.CaseSensitive()
}

func printResults(names []string, matcher func(string) bool) int {
	code := exitNoMatch
	for _, name := range names {
		ok := matcher(name)
		if ok {
			code = exitMatch
		}
		fmt.Fprintf(stdout, "%s\t%v\n", name, ok)
	}
	return code
}

func runMatch(args []string) int {
	caseSensitive := caseSensitiveArg(&args)
	acceptPrefix := app.BoolArg("-prefix", false, &args)
	app.CleanArgs(&args)
	if len(args) < 2 {
		return usageError("match")
	}

	matcher, err := svc.NewMatcherFunc(args[:1], caseSensitive, acceptPrefix)
	if err != nil {
		return fail(err)
	}
	return printResults(args[1:], matcher)
}

func runAny(args []string) int {
	caseSensitive := caseSensitiveArg(&args)
	acceptPrefix := app.BoolArg("-prefix", false, &args)
	patterns := app.ListArg("-p", config.Include(), &args)
	app.CleanArgs(&args)
	if len(args) == 0 {
		return usageError("any")
	}

	matcher, err := svc.NewMatcherFunc(patterns, caseSensitive, acceptPrefix)
	if err != nil {
		return fail(err)
	}
	return printResults(args, matcher)
}

func runTokens(args []string) int {
	app.CleanArgs(&args)
	if len(args) != 1 {
		return usageError("tokens")
	}

	tokens, err := wildcard.Tokenize(args[0])
	if err != nil {
		return fail(err)
	}
	for _, token := range tokens {
		fmt.Fprintf(stdout, "%s\t%s\n", token.Kind, token)
	}
	return exitMatch
}

func openFS(root string) (filesys.FS, error) {
	if strings.Contains(root, "://") {
		return filesys.NewAFS(root), nil
	}
	return filesys.NewOS(root)
}

func runFind(args []string) int {
	filter := filesys.Filter{
		CaseSensitive: caseSensitiveArg(&args),
		Include:       app.ListArg("-include", config.Include(), &args),
		Exclude:       app.ListArg("-exclude", config.Exclude(), &args),
		IncludeDirs:   app.ListArg("-include-dirs", config.IncludeDirs(), &args),
		ExcludeDirs:   app.ListArg("-exclude-dirs", config.ExcludeDirs(), &args),
		Paths:         app.ListArg("-paths", nil, &args),
	}
	app.CleanArgs(&args)
	if len(args) != 1 {
		return usageError("find")
	}

	fsys, err := openFS(args[0])
	if err != nil {
		return fail(err)
	}

	logging.Debug(LOG, "find in %s with %+v", args[0], filter)
	found, err := filesys.Find(context.Background(), fsys, "", filter, svc)
	if err != nil {
		return fail(err)
	}
	for _, p := range found {
		fmt.Fprintln(stdout, p)
	}
	if len(found) == 0 {
		return exitNoMatch
	}
	return exitMatch
}

func runFilter(args []string) int {
	caseSensitive := caseSensitiveArg(&args)
	patterns := app.ListArg("-p", config.Include(), &args)
	app.CleanArgs(&args)

	full, err := svc.NewMatcherFunc(patterns, caseSensitive, false)
	if err != nil {
		return fail(err)
	}

	if !isInteractive() {
		code := exitNoMatch
		prompt := terminal.NewPrompt(stdin, stdout)
		for {
			name, ok := prompt.ReadLine()
			if !ok {
				break
			}
			if full(name) {
				code = exitMatch
				fmt.Fprintln(stdout, name)
			}
		}
		if err := prompt.Err(); err != nil {
			return fail(err)
		}
		return code
	}

	partial, err := svc.NewMatcherFunc(patterns, caseSensitive, true)
	if err != nil {
		return fail(err)
	}

	prompt := terminal.NewPrompt(stdin, stdout)
	for {
		name, ok := prompt.InputString("Name", "")
		if !ok {
			fmt.Fprintln(stdout)
			return exitMatch
		}
		switch {
		case full(name):
			fmt.Fprintln(stdout, "match")
		case partial(name):
			fmt.Fprintln(stdout, "partial")
		default:
			fmt.Fprintln(stdout, "no match")
		}
	}
}

func runVersion(args []string) int {
	fmt.Fprintf(stdout, "wildcard %s\n", Version)
	return exitMatch
}
