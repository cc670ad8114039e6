// Command webfrontend is the CLI front end for this repository's HTML
// tokenizer and JavaScript AST builder.
package main

import (
	"os"

	"github.com/cwbudde/webfrontend/cmd/webfrontend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
