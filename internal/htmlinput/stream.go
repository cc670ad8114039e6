// Package htmlinput implements the push-fed code-point stream that sits
// in front of the HTML tokenizer (WHATWG HTML Living Standard §13.2.3,
// "preprocessing the input stream").
package htmlinput

import (
	"unicode/utf16"

	"github.com/cwbudde/webfrontend/internal/token"
)

// Kind distinguishes a decoded scalar value from a lone surrogate or EOF.
type Kind int

const (
	// Scalar is an ordinary Unicode scalar value (including ASCII).
	Scalar Kind = iota
	// SurrogateHalf is an unpaired UTF-16 surrogate code unit.
	SurrogateHalf
	// EOF marks definitive end of input (only produced after FeedEnd).
	EOF
)

// CodePoint is one decoded unit of input, tagged per §4.1 of the spec.
type CodePoint struct {
	Kind Kind
	R    rune // valid when Kind == Scalar; zero otherwise
}

// IsNonCharacter reports whether R falls in a Unicode noncharacter range:
// U+FDD0..U+FDEF, or any code point ending in FFFE/FFFF.
func (c CodePoint) IsNonCharacter() bool {
	if c.Kind != Scalar {
		return false
	}
	if c.R >= 0xFDD0 && c.R <= 0xFDEF {
		return true
	}
	low := c.R & 0xFFFF
	return low == 0xFFFE || low == 0xFFFF
}

// IsC0Control reports whether R is a C0 control other than ASCII
// whitespace, or U+007F DELETE.
func (c CodePoint) IsC0Control() bool {
	if c.Kind != Scalar {
		return false
	}
	if isASCIIWhitespace(c.R) {
		return false
	}
	return c.R <= 0x1F || c.R == 0x7F
}

// IsC1Control reports whether R is in the C1 control range U+0080..U+009F.
func (c CodePoint) IsC1Control() bool {
	return c.Kind == Scalar && c.R >= 0x80 && c.R <= 0x9F
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// Stream turns pushed UTF-16 chunks into a sequence of (CodePoint, Location)
// events, pairing surrogates, and normalizing "\r\n" and bare "\r" into a
// single reported "\n".
type Stream struct {
	units  []uint16
	pos    int  // index into units of the next unit to decode
	ended  bool // FeedEnd has been called
	loc    token.Location
	atLine bool // true immediately after a normalized newline; not read, Next collapses \r\n by lookahead
}

// New creates an empty Stream positioned at token.Origin.
func New() *Stream {
	return &Stream{loc: token.Origin}
}

// Feed appends more UTF-16 code units to the stream.
func (s *Stream) Feed(chunk []uint16) {
	s.units = append(s.units, chunk...)
}

// FeedEnd signals that no more data will ever be fed. Once called, Next
// will eventually yield a definitive CodePoint{Kind: EOF}.
func (s *Stream) FeedEnd() {
	s.ended = true
}

// Next returns the next decoded code point and the location of its first
// code unit. ok is false when the stream is starved (more data, or
// FeedEnd, is required before another call can make progress); the
// caller must not treat a starved Next as EOF.
func (s *Stream) Next() (CodePoint, token.Location, bool) {
	if s.pos >= len(s.units) {
		if s.ended {
			return CodePoint{Kind: EOF}, s.loc, true
		}
		return CodePoint{}, s.loc, false
	}

	startLoc := s.loc
	u := s.units[s.pos]

	switch {
	case u == '\r':
		// Collapse CRLF and lone CR into a single LF.
		s.pos++
		if s.pos < len(s.units) && s.units[s.pos] == '\n' {
			s.pos++
		} else if s.pos >= len(s.units) && !s.ended {
			// Might still be the start of a CRLF pair; wait for more input.
			s.pos--
			return CodePoint{}, s.loc, false
		}
		s.loc = s.loc.Advance(true)
		return CodePoint{Kind: Scalar, R: '\n'}, startLoc, true

	case utf16.IsSurrogate(rune(u)):
		if u >= 0xD800 && u <= 0xDBFF && s.pos+1 < len(s.units) {
			lo := rune(s.units[s.pos+1])
			if lo >= 0xDC00 && lo <= 0xDFFF {
				r := utf16.DecodeRune(rune(u), lo)
				s.pos += 2
				s.loc = s.loc.Advance(false)
				return CodePoint{Kind: Scalar, R: r}, startLoc, true
			}
		}
		if u >= 0xD800 && u <= 0xDBFF && s.pos+1 >= len(s.units) && !s.ended {
			// Could still be the high half of a pair; wait for more data.
			return CodePoint{}, s.loc, false
		}
		s.pos++
		s.loc = s.loc.Advance(false)
		return CodePoint{Kind: SurrogateHalf}, startLoc, true

	default:
		s.pos++
		nl := u == '\n'
		s.loc = s.loc.Advance(nl)
		return CodePoint{Kind: Scalar, R: rune(u)}, startLoc, true
	}
}
