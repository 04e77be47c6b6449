// Command litfront is the CLI entry point for the lit-front scanner/parser
// front end.
//
// Usage:
//
//	litfront tokens <file> [--json]   Print the token stream
//	litfront parse  <file> [--text]   Print the AST as JSON (or, with
//	                                   --text, pretty-printed source)
//	litfront repl                     Start an interactive tokenize+parse
//	                                   session (no execution: this front
//	                                   end stops at the AST)
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "tokens":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "error: missing file argument")
			os.Exit(1)
		}
		cmdTokens(readFile(os.Args[2]), os.Args[2], hasFlag("--json"))
	case "parse":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "error: missing file argument")
			os.Exit(1)
		}
		cmdParse(readFile(os.Args[2]), os.Args[2], hasFlag("--text"))
	case "repl":
		cmdRepl()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  litfront tokens <file> [--json]   Tokenize and print tokens")
	fmt.Fprintln(os.Stderr, "  litfront parse  <file> [--text]   Parse and print AST (JSON by default)")
	fmt.Fprintln(os.Stderr, "  litfront repl                     Start an interactive tokenize+parse session")
}

func readFile(filename string) string {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read file %s: %v\n", filename, err)
		os.Exit(1)
	}
	return string(source)
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[3:] {
		if arg == flag {
			return true
		}
	}
	return false
}
