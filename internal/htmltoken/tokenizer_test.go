package htmltoken

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/cwbudde/webfrontend/internal/htmlinput"
)

// runAll feeds input as a single chunk, drains every token through
// EndToken, and returns the token stream plus any parse errors.
func runAll(t *testing.T, input string) ([]Token, []*ParseError) {
	t.Helper()
	s := htmlinput.New()
	s.Feed(utf16.Encode([]rune(input)))
	s.FeedEnd()
	tok := New(s, "test")
	tok.SetSource(input)
	var toks []Token
	for {
		tk := tok.NextToken()
		if tk.Kind == NeedMoreData {
			t.Fatalf("unexpected starvation after FeedEnd")
		}
		toks = append(toks, tk)
		if tk.Kind == EndToken {
			break
		}
	}
	return toks, tok.Errors()
}

// runChunked feeds one UTF-16 code unit per Feed call, exercising the
// same chunking-invariance property runAll is compared against.
func runChunked(t *testing.T, input string) ([]Token, []*ParseError) {
	t.Helper()
	s := htmlinput.New()
	tok := New(s, "test")
	tok.SetSource(input)
	var toks []Token
	units := utf16.Encode([]rune(input))
	i := 0
	for {
		tk := tok.NextToken()
		if tk.Kind == NeedMoreData {
			if i < len(units) {
				s.Feed([]uint16{units[i]})
				i++
			} else {
				s.FeedEnd()
			}
			continue
		}
		toks = append(toks, tk)
		if tk.Kind == EndToken {
			break
		}
	}
	return toks, tok.Errors()
}

func errorCodes(errs []*ParseError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func textOf(toks []Token) string {
	var s string
	for _, tk := range toks {
		if tk.Kind == Text {
			s += tk.Text()
		}
	}
	return s
}

func TestTokenizer_SimpleTag(t *testing.T) {
	toks, errs := runAll(t, `<div class="x">hi</div>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if toks[0].Kind != StartTag || toks[0].TagName() != "div" {
		t.Fatalf("token0: %+v", toks[0])
	}
	if v, ok := toks[0].Attr("class"); !ok || v != "x" {
		t.Fatalf("class attr: %q %v", v, ok)
	}
	if toks[1].Kind != Text || toks[1].Text() != "hi" {
		t.Fatalf("token1: %+v", toks[1])
	}
	if toks[2].Kind != EndTag || toks[2].TagName() != "div" {
		t.Fatalf("token2: %+v", toks[2])
	}
	if toks[3].Kind != EndToken {
		t.Fatalf("token3: %+v", toks[3])
	}
}

func TestTokenizer_Comment(t *testing.T) {
	toks, errs := runAll(t, `<!-- hello -->`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if toks[0].Kind != Comment || toks[0].Comment() != " hello " {
		t.Fatalf("comment: %+v", toks[0])
	}
}

func TestTokenizer_BogusCommentFromMalformedMarkup(t *testing.T) {
	toks, errs := runAll(t, `<!wrong>`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "incorrectly-opened-comment" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if toks[0].Kind != Comment || toks[0].Comment() != "wrong" {
		t.Fatalf("comment: %+v", toks[0])
	}
}

func TestTokenizer_Doctype(t *testing.T) {
	toks, errs := runAll(t, `<!DOCTYPE html>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if toks[0].Kind != DoctypeToken {
		t.Fatalf("token: %+v", toks[0])
	}
	name, ok := toks[0].DoctypeName()
	if !ok || name != "html" {
		t.Fatalf("doctype name: %q %v", name, ok)
	}
}

func TestTokenizer_DoctypeWithPublicAndSystemIDs(t *testing.T) {
	input := `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`
	toks, errs := runAll(t, input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	pub, ok := toks[0].DoctypePublicID()
	if !ok || pub != "-//W3C//DTD XHTML 1.0//EN" {
		t.Fatalf("public id: %q %v", pub, ok)
	}
	sys, ok := toks[0].DoctypeSystemID()
	if !ok || sys != "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd" {
		t.Fatalf("system id: %q %v", sys, ok)
	}
}

func TestTokenizer_DoctypeMissingName(t *testing.T) {
	toks, errs := runAll(t, `<!DOCTYPE >`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "missing-doctype-name" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if !toks[0].ForceQuirks() {
		t.Fatalf("expected force-quirks for missing doctype name")
	}
}

func TestTokenizer_CDATAInForeignContent(t *testing.T) {
	toks, errs := runAll(t, `<svg><![CDATA[hi]]></svg>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if toks[0].Kind != StartTag || toks[0].TagName() != "svg" {
		t.Fatalf("token0: %+v", toks[0])
	}
	if toks[1].Kind != Text || toks[1].Text() != "hi" {
		t.Fatalf("cdata content: %+v", toks[1])
	}
	if toks[2].Kind != EndTag || toks[2].TagName() != "svg" {
		t.Fatalf("token2: %+v", toks[2])
	}
}

func TestTokenizer_CDATAOutsideForeignContentIsBogusComment(t *testing.T) {
	toks, errs := runAll(t, `<![CDATA[x]]>`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "cdata-in-html-content" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if toks[0].Kind != Comment || toks[0].Comment() != "[CDATA[x]]" {
		t.Fatalf("comment: %+v", toks[0])
	}
}

func TestTokenizer_NamedCharRefExactMatch(t *testing.T) {
	toks, errs := runAll(t, `&amp;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "&" {
		t.Fatalf("text: %q", textOf(toks))
	}
}

func TestTokenizer_NamedCharRefMissingSemicolon(t *testing.T) {
	toks, errs := runAll(t, `&amp`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "missing-semicolon-after-character-reference" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "&" {
		t.Fatalf("text: %q", textOf(toks))
	}
	if col := errs[0].Pos.Column; col != 5 {
		t.Fatalf("column: got %d, want 5", col)
	}
	rendered := errs[0].Error()
	if !strings.Contains(rendered, "&amp") || !strings.Contains(rendered, "^") {
		t.Fatalf("expected source-line + caret rendering, got %q", rendered)
	}
}

func TestTokenizer_AmbiguousAmpersand(t *testing.T) {
	toks, errs := runAll(t, `&notinvz;`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "unknown-named-character-reference" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "&notinvz;" {
		t.Fatalf("text: %q", textOf(toks))
	}
}

func TestTokenizer_AttributeValueCharRef(t *testing.T) {
	toks, errs := runAll(t, `<a href="a&amp;b">`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if v, ok := toks[0].Attr("href"); !ok || v != "a&b" {
		t.Fatalf("href: %q %v", v, ok)
	}
}

func TestTokenizer_NumericCharRefDecimal(t *testing.T) {
	toks, errs := runAll(t, `&#65;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "A" {
		t.Fatalf("text: %q", textOf(toks))
	}
}

func TestTokenizer_NumericCharRefHex(t *testing.T) {
	toks, errs := runAll(t, `&#x41;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "A" {
		t.Fatalf("text: %q", textOf(toks))
	}
}

func TestTokenizer_NumericCharRefOverflow(t *testing.T) {
	toks, errs := runAll(t, `&#11111111111;`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "character-reference-outside-unicode-range" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "\uFFFD" {
		t.Fatalf("text: %q", textOf(toks))
	}
	if col := errs[0].Pos.Column; col != 15 {
		t.Fatalf("column: got %d, want 15", col)
	}
}

func TestTokenizer_NumericCharRefSurrogate(t *testing.T) {
	toks, errs := runAll(t, `&#xd800;`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "surrogate-character-reference" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "\uFFFD" {
		t.Fatalf("text: %q", textOf(toks))
	}
	if col := errs[0].Pos.Column; col != 9 {
		t.Fatalf("column: got %d, want 9", col)
	}
}

func TestTokenizer_NumericCharRefC1Remap(t *testing.T) {
	toks, errs := runAll(t, `&#x80;`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "control-character-reference" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "\u20AC" {
		t.Fatalf("text: %q", textOf(toks))
	}
	if col := errs[0].Pos.Column; col != 7 {
		t.Fatalf("column: got %d, want 7", col)
	}
}

func TestTokenizer_NumericCharRefAbsenceOfDigits(t *testing.T) {
	toks, errs := runAll(t, `&#;`)
	if len(errorCodes(errs)) == 0 || errorCodes(errs)[0] != "absence-of-digits-in-numeric-character-reference" {
		t.Fatalf("errors: %v", errorCodes(errs))
	}
	if textOf(toks) != "&#;" {
		t.Fatalf("text: %q", textOf(toks))
	}
}

// TestTokenizer_ChunkingInvariance exercises SPEC_FULL.md's requirement
// that tokenizing the same input as one chunk or many yields an
// identical token/error stream, across tags and attributes, comments,
// DOCTYPE, CDATA and character references.
func TestTokenizer_ChunkingInvariance(t *testing.T) {
	inputs := []string{
		`<div class="x" disabled>hi</div>`,
		`<!-- a comment --><!DOCTYPE html>`,
		`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0//EN" "a">`,
		`<svg><![CDATA[raw & stuff]]></svg>`,
		`&amp; &notinvz; &#65; &#x41; &#xd800; &#x80;`,
		`<script>var x = "<!--not a comment-->";</script>`,
	}
	for _, input := range inputs {
		whole, wholeErrs := runAll(t, input)
		chunked, chunkedErrs := runChunked(t, input)
		if !reflect.DeepEqual(whole, chunked) {
			t.Errorf("chunking mismatch for %q:\n whole=%+v\nchunked=%+v", input, whole, chunked)
		}
		if !reflect.DeepEqual(errorCodes(wholeErrs), errorCodes(chunkedErrs)) {
			t.Errorf("error mismatch for %q:\n whole=%v\nchunked=%v", input, errorCodes(wholeErrs), errorCodes(chunkedErrs))
		}
	}
}
