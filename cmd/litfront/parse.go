package main

import (
	"fmt"
	"os"

	"lit-front/internal/ast"
	"lit-front/internal/parser"
	"lit-front/internal/printer"
)

// cmdParse parses source and prints the result. By default it prints the
// AST as JSON via internal/ast's map walker; --text instead prints
// internal/printer's re-rendered source, useful for eyeballing how the
// parser understood a file's structure.
func cmdParse(source, filename string, textMode bool) {
	file, diags := parser.ParseFile(source, filename)

	if textMode {
		fmt.Println(printer.Print(file))
		printDiagsText(diags)
	} else {
		printJSON(map[string]interface{}{
			"ast":         ast.NodeToMap(file),
			"diagnostics": diagsToSlice(diags),
		})
	}

	if len(diags) > 0 {
		os.Exit(1)
	}
}
