package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: atoms <command> [flags] [pages...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  dist       Build the site into the output directory")
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'atoms help <command>' for details on a specific command.")
}

// printActionUsage prints usage for the dist and config commands.
func printActionUsage(w io.Writer, action string) {
	switch action {
	case "dist":
		fmt.Fprintln(w, "Usage: atoms dist [flags] [pages...]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Resolve every page and write it as HTML. Without pages, the index")
		fmt.Fprintln(w, "and everything under pages/ are built.")
	case "config":
		fmt.Fprintln(w, "Usage: atoms config [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the configuration a dist run would use, after merging the")
		fmt.Fprintln(w, "config file, ATOMS_* variables and flags.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Project:")
	fmt.Fprintln(w, "      --root <dir>          Project directory (default \".\", env ATOMS_ROOT)")
	fmt.Fprintln(w, "      --config <name>       Config file name or path (default atoms.yaml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --out <dir>           Output directory (default <root>/dist)")
	fmt.Fprintln(w, "      --depth <n>           Nested embed limit (1-255, default 8)")
	fmt.Fprintln(w, "  -c, --clean               Remove the output directory first")
	fmt.Fprintln(w, "  -d, --dry                 Print pages to stdout instead of writing")
	fmt.Fprintln(w, "      --hide-extension      Write page instead of page.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "  -v, --verbose             Log debug diagnostics")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "dist", "config":
		printActionUsage(env.Stdout, args[0])
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: atoms version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: atoms help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
