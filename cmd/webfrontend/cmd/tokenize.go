package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf16"

	"github.com/cwbudde/webfrontend/internal/htmlinput"
	"github.com/cwbudde/webfrontend/internal/htmltoken"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var (
	tokenizeEval     string
	tokenizeShowPos  bool
	tokenizeShowKind bool
	tokenizeJSON     bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize an HTML document or fragment",
	Long: `Tokenize (lex) HTML input and print the resulting token stream.

This command is useful for inspecting how the §13.2.5 tokenizer state
machine breaks a document into tokens and parse errors.

Examples:
  # Tokenize a file
  webfrontend tokenize page.html

  # Tokenize an inline fragment
  webfrontend tokenize -e "<p>hi &amp; bye</p>"

  # Emit an html5lib-style {description,input,output,errors} document
  webfrontend tokenize --json -e "<p>hi</p>"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokenizeEval, "eval", "e", "", "tokenize inline HTML instead of reading from file")
	tokenizeCmd.Flags().BoolVar(&tokenizeShowPos, "show-pos", false, "show token positions (line:column)")
	tokenizeCmd.Flags().BoolVar(&tokenizeShowKind, "show-kind", false, "show token kind names")
	tokenizeCmd.Flags().BoolVar(&tokenizeJSON, "json", false, "emit an html5lib-style JSON document instead of text")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	var input, description string

	switch {
	case tokenizeEval != "" && len(args) == 1:
		exitWithError("provide either a file path or -e, not both")
	case tokenizeEval != "":
		input, description = tokenizeEval, "<eval>"
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input, description = string(data), args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input, description = string(data), "<stdin>"
	}

	stream := htmlinput.New()
	stream.Feed(utf16.Encode([]rune(input)))
	stream.FeedEnd()
	tz := htmltoken.New(stream, description)
	tz.SetSource(input)

	var tokens []htmltoken.Token
	for {
		tok := tz.NextToken()
		if tok.Kind == htmltoken.NeedMoreData {
			return fmt.Errorf("tokenizer starved after FeedEnd: this is a bug in htmltoken")
		}
		tokens = append(tokens, tok)
		if tok.Kind == htmltoken.EndToken {
			break
		}
	}

	if tokenizeJSON {
		return printTokenizeJSON(description, input, tokens, tz.Errors())
	}
	printTokenizeText(tokens, tz.Errors())
	return nil
}

func printTokenizeText(tokens []htmltoken.Token, errs []*htmltoken.ParseError) {
	for _, tok := range tokens {
		if tok.Kind == htmltoken.EndToken {
			break
		}
		printTokenizeToken(tok)
	}
	for _, e := range errs {
		fmt.Printf("parse error: %s @%s\n", e.Code, e.Error())
	}
}

func printTokenizeToken(tok htmltoken.Token) {
	var line string
	if tokenizeShowKind {
		line = fmt.Sprintf("[%-12s]", tokenKindName(tok.Kind))
	}
	switch tok.Kind {
	case htmltoken.Text:
		line += fmt.Sprintf(" %q", tok.Text())
	case htmltoken.Comment:
		line += fmt.Sprintf(" <!--%s-->", tok.Comment())
	case htmltoken.StartTag:
		line += fmt.Sprintf(" <%s>", tok.TagName())
		for _, a := range tok.Attrs() {
			if a.Duplicate {
				continue
			}
			line += fmt.Sprintf(" %s=%q", a.Name, a.Value)
		}
	case htmltoken.EndTag:
		line += fmt.Sprintf(" </%s>", tok.TagName())
	case htmltoken.DoctypeToken:
		name, _ := tok.DoctypeName()
		line += fmt.Sprintf(" <!DOCTYPE %s>", name)
	}
	if tokenizeShowPos {
		line += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(line)
}

func tokenKindName(k htmltoken.Kind) string {
	switch k {
	case htmltoken.DoctypeToken:
		return "DOCTYPE"
	case htmltoken.StartTag:
		return "StartTag"
	case htmltoken.EndTag:
		return "EndTag"
	case htmltoken.Text:
		return "Character"
	case htmltoken.Comment:
		return "Comment"
	case htmltoken.EndToken:
		return "EOF"
	default:
		return "NeedMoreData"
	}
}

// printTokenizeJSON assembles the html5lib-test {description,input,
// output,errors} document, building it up path by path with sjson
// rather than populating a struct up front: each token's own shape
// (string pair, tag-with-attrs, DOCTYPE quintuple) is marshaled
// independently and spliced in at output.<n>, which is the same
// incremental-document pattern sjson is meant for.
func printTokenizeJSON(description, input string, tokens []htmltoken.Token, errs []*htmltoken.ParseError) error {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "description", description); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "input", input); err != nil {
		return err
	}
	if doc, err = sjson.SetRaw(doc, "output", "[]"); err != nil {
		return err
	}
	idx := 0
	for _, tok := range tokens {
		if tok.Kind == htmltoken.EndToken {
			continue
		}
		raw, merr := json.Marshal(tokenizeJSONShape(tok))
		if merr != nil {
			return merr
		}
		if doc, err = sjson.SetRaw(doc, fmt.Sprintf("output.%d", idx), string(raw)); err != nil {
			return err
		}
		idx++
	}
	if len(errs) > 0 {
		errList := make([]map[string]any, len(errs))
		for i, e := range errs {
			errList[i] = map[string]any{
				"code": e.Code,
				"location": map[string]int{
					"line":   e.Pos.Line,
					"column": e.Pos.Column,
				},
			}
		}
		raw, merr := json.Marshal(errList)
		if merr != nil {
			return merr
		}
		if doc, err = sjson.SetRaw(doc, "errors", string(raw)); err != nil {
			return err
		}
	}
	fmt.Println(doc)
	return nil
}

func tokenizeJSONShape(tok htmltoken.Token) []any {
	switch tok.Kind {
	case htmltoken.Text:
		return []any{"Character", tok.Text()}
	case htmltoken.Comment:
		return []any{"Comment", tok.Comment()}
	case htmltoken.StartTag:
		attrs := map[string]string{}
		for _, a := range tok.Attrs() {
			if !a.Duplicate {
				attrs[a.Name] = a.Value
			}
		}
		if tok.IsEmptyTag() {
			return []any{"StartTag", tok.TagName(), attrs, true}
		}
		return []any{"StartTag", tok.TagName(), attrs}
	case htmltoken.EndTag:
		return []any{"EndTag", tok.TagName()}
	case htmltoken.DoctypeToken:
		name, _ := tok.DoctypeName()
		var pub, sys any
		if v, ok := tok.DoctypePublicID(); ok {
			pub = v
		}
		if v, ok := tok.DoctypeSystemID(); ok {
			sys = v
		}
		return []any{"DOCTYPE", name, pub, sys, !tok.ForceQuirks()}
	default:
		return []any{"Unknown"}
	}
}
