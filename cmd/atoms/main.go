package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	atoms "github.com/alnah/go-atoms"
	"github.com/alnah/go-atoms/internal/site"
)

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	verbose := hasVerboseFlag(os.Args[1:])
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		if verbose {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}))

	code := runMain(os.Args, env)
	undo()
	os.Exit(code)
}

// runMain dispatches the action named by args[1] and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	action, rest := args[1], args[2:]
	switch action {
	case "dist":
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return report(env, runDist(ctx, rest, env))
	case "config":
		return report(env, runConfig(rest, env))
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "%s %s\n", site.AppName, atoms.Version)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", action)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// report prints err to stderr and converts it to an exit code.
func report(env *Environment, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// hasVerboseFlag reports whether args ask for verbose output, before the
// action's flags are parsed.
func hasVerboseFlag(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}
