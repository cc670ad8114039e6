package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "webfrontend",
	Short: "HTML tokenizer and JavaScript AST tooling",
	Long: `webfrontend exposes the two halves of this repository as a CLI:

  - an HTML5 tokenizer (WHATWG Living Standard §13.2.5), driven
    incrementally over a push-fed code-point stream
  - a JavaScript AST builder that replays a recorded shift/reduce event
    script into an ESTree-shaped tree

Neither half includes a JavaScript lexer/parser or an HTML tree
constructor; see the tokenize and ast subcommands for what each one
actually does.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
