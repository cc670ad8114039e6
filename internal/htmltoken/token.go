package htmltoken

import "github.com/cwbudde/webfrontend/internal/token"

// Kind discriminates the HTML token variants of the distilled spec's §3.
type Kind int

const (
	// NeedMoreData is a sentinel: the tokenizer is starved and the
	// caller must Feed more input (or call FeedEnd) before calling
	// NextToken again. See SPEC_FULL.md §5 for why this, rather than
	// blocking, is the starvation signal this implementation chose.
	NeedMoreData Kind = iota
	DoctypeToken
	StartTag
	EndTag
	Text
	Comment
	EndToken
)

// Attr is one tag attribute. Duplicate is set on the later of two
// attributes sharing a name on the same tag; duplicates are retained in
// the slice and returned by Attrs, and only the Attr lookup skips them.
type Attr struct {
	Name      string
	Value     string
	Duplicate bool
}

// Token is one HTML token. Payload access is through accessor methods,
// mirroring the distilled spec's §3 contract, rather than through
// exported variant fields — so a Token can be passed around uniformly
// regardless of Kind.
type Token struct {
	Kind Kind
	Pos  token.Location

	name         string
	rawAttrs     []Attr
	selfClosing  bool
	voidElement  bool
	text         string
	doctypePub   *string
	doctypeSys   *string
	forceQuirks  bool
}

// TagName returns the tag name for StartTag/EndTag tokens.
func (t Token) TagName() string { return t.name }

// Attrs returns every attribute on a StartTag token, in source order,
// including any later duplicates (see Attr.Duplicate).
func (t Token) Attrs() []Attr { return t.rawAttrs }

// Attr looks up the first, canonical (non-duplicate) value of name.
func (t Token) Attr(name string) (string, bool) {
	for _, a := range t.rawAttrs {
		if a.Name == name && !a.Duplicate {
			return a.Value, true
		}
	}
	return "", false
}

// IsEmptyTag reports whether a StartTag was marked self-closing
// ("<br/>") in the source. It does not consult an HTML void-element
// list — that classification belongs to a tree-construction stage,
// which is out of scope here.
func (t Token) IsEmptyTag() bool { return t.selfClosing }

// DoctypeName returns the DOCTYPE token's name, if any.
func (t Token) DoctypeName() (string, bool) {
	if t.Kind != DoctypeToken || t.name == "" {
		return "", false
	}
	return t.name, true
}

// DoctypePublicID returns the DOCTYPE token's PUBLIC identifier, if present.
func (t Token) DoctypePublicID() (string, bool) {
	if t.doctypePub == nil {
		return "", false
	}
	return *t.doctypePub, true
}

// DoctypeSystemID returns the DOCTYPE token's SYSTEM identifier, if present.
func (t Token) DoctypeSystemID() (string, bool) {
	if t.doctypeSys == nil {
		return "", false
	}
	return *t.doctypeSys, true
}

// ForceQuirks reports the DOCTYPE token's force-quirks flag.
func (t Token) ForceQuirks() bool { return t.forceQuirks }

// Text returns the decoded content of a Text token.
func (t Token) Text() string { return t.text }

// Comment returns the content of a Comment token (excluding "<!--"/"-->").
func (t Token) Comment() string { return t.text }
