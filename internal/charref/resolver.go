// Package charref implements incremental longest-prefix matching over the
// HTML named character reference table (WHATWG HTML §13.5), as consumed
// by the tokenizer's character-reference states.
package charref

type trieNode struct {
	children map[rune]*trieNode
	value    string // expansion, if this node terminates a valid reference
	terminal bool
}

var root *trieNode

func init() {
	root = &trieNode{children: map[rune]*trieNode{}}
	for name, expansion := range entities {
		insert(name, expansion)
	}
}

func insert(name, expansion string) {
	n := root
	for _, r := range name {
		child, ok := n.children[r]
		if !ok {
			child = &trieNode{children: map[rune]*trieNode{}}
			n.children[r] = child
		}
		n = child
	}
	n.terminal = true
	n.value = expansion
}

// Resolver incrementally matches the longest prefix of characters fed via
// Accept against the named character reference table, per the distilled
// spec's §4.2 contract.
type Resolver struct {
	cur          *trieNode
	buf          []rune
	lastMatchLen int
	lastMatch    string
	hasMatch     bool
	endedExact   bool // true if Accept(';') completed an exact terminal match
}

// New creates a Resolver ready for Reset.
func New() *Resolver {
	r := &Resolver{}
	r.Reset()
	return r
}

// Reset begins a fresh match, discarding any in-progress state.
func (r *Resolver) Reset() {
	r.cur = root
	r.buf = r.buf[:0]
	r.lastMatchLen = 0
	r.lastMatch = ""
	r.hasMatch = false
	r.endedExact = false
}

// Accept extends the candidate by one character. It returns true while c
// may still lead to a valid named reference (i.e. the trie has a child
// edge for c from the current position); once it returns false the walk
// is dead and Resolve/Remaining describe the best match found so far.
func (r *Resolver) Accept(c rune) bool {
	if r.cur == nil {
		return false
	}
	next, ok := r.cur.children[c]
	if !ok {
		r.cur = nil
		return false
	}
	r.buf = append(r.buf, c)
	r.cur = next
	if next.terminal {
		r.lastMatchLen = len(r.buf)
		r.lastMatch = next.value
		r.hasMatch = true
		r.endedExact = c == ';'
	}
	return true
}

// End reports whether the reference just accepted completed an exact,
// semicolon-terminated match — the case that needs no
// missing-semicolon-after-character-reference diagnostic.
func (r *Resolver) End() bool {
	return r.endedExact
}

// Resolve returns the longest valid prefix match seen so far (in runes
// consumed from Buffer()) and its expansion, if any match exists at all.
func (r *Resolver) Resolve() (prefixLen int, expansion string, ok bool) {
	if !r.hasMatch {
		return 0, "", false
	}
	return r.lastMatchLen, r.lastMatch, true
}

// Remaining returns the characters consumed after the longest valid
// prefix — text that must be re-emitted literally when the match was
// partial (trailing characters that extended the walk past, or away
// from, the last valid terminal).
func (r *Resolver) Remaining() string {
	if !r.hasMatch {
		return string(r.buf)
	}
	return string(r.buf[r.lastMatchLen:])
}

// Buffer returns every character consumed since Reset, whether or not it
// contributed to a valid match.
func (r *Resolver) Buffer() string {
	return string(r.buf)
}
