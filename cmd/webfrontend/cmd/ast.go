package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/webfrontend/internal/jsbuilder"
	"github.com/cwbudde/webfrontend/internal/jsdriver"
	"github.com/cwbudde/webfrontend/internal/token"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var astScriptFile string

var astCmd = &cobra.Command{
	Use:   "ast",
	Short: "Replay a recorded shift/reduce event script and print its ESTree",
	Long: `ast drives internal/jsbuilder with a recorded sequence of shift and
reduce events read from a JSON file, then prints the resulting
ESTree-shaped tree as JSON.

This repository has no JavaScript lexer or parser of its own, so the
event script stands in for one: an external parser would call Shift
and Reduce in exactly this sequence as it recognizes tokens and
grammar productions.

Event script format, a JSON array of objects, each with any of:
  {"at": {"offset":0,"line":1,"column":1}}   advance the location cursor
  {"shift": "x", "at": {...}}                shift a token, optionally at a location
  {"reduce": "Identifier"}                   reduce by a jsbuilder rule name

Example:
  webfrontend ast --script testdata/expression_statement.json`,
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVar(&astScriptFile, "script", "", "path to a JSON event script (required)")
	astCmd.MarkFlagRequired("script")
}

func runAST(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(astScriptFile)
	if err != nil {
		return fmt.Errorf("failed to read event script %s: %w", astScriptFile, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%s is not valid JSON", astScriptFile)
	}

	events, err := parseEventScript(data)
	if err != nil {
		return err
	}

	b := jsbuilder.New()
	node, err := jsdriver.Replay(b, events)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	out, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal AST: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseEventScript pulls the ad-hoc "at"/"shift"/"reduce" fields out of
// each array element with gjson rather than unmarshaling into a fixed
// Go struct: the script is user-authored free-form JSON, and gjson's
// path lookups tolerate missing fields (Exists() reports false) without
// needing every possible shape declared up front.
func parseEventScript(data []byte) ([]jsdriver.Event, error) {
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("event script must be a JSON array")
	}

	var events []jsdriver.Event
	var parseErr error
	root.ForEach(func(_, elem gjson.Result) bool {
		var loc *token.Location
		if at := elem.Get("at"); at.Exists() {
			l := token.Location{
				Offset: int(at.Get("offset").Int()),
				Line:   int(at.Get("line").Int()),
				Column: int(at.Get("column").Int()),
			}
			loc = &l
		}

		shiftField := elem.Get("shift")
		reduceField := elem.Get("reduce")
		switch {
		case shiftField.Exists() && reduceField.Exists():
			parseErr = fmt.Errorf("event has both shift and reduce: %s", elem.Raw)
			return false
		case shiftField.Exists():
			ev := jsdriver.Shift(jsbuilder.Token{Lexeme: shiftField.String()})
			ev.Location = loc
			events = append(events, ev)
		case reduceField.Exists():
			if loc != nil {
				events = append(events, jsdriver.At(*loc))
			}
			events = append(events, jsdriver.Reduce(jsbuilder.Rule(reduceField.String())))
		case loc != nil:
			events = append(events, jsdriver.At(*loc))
		default:
			parseErr = fmt.Errorf("empty event: %s", elem.Raw)
			return false
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return events, nil
}
