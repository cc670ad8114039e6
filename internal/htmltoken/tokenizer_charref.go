package htmltoken

import (
	"github.com/cwbudde/webfrontend/internal/htmlinput"
	"github.com/cwbudde/webfrontend/internal/token"
)

func isAsciiDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAsciiAlnum(r rune) bool { return isAsciiAlpha(r) || isAsciiDigit(r) }

func isHexDigit(r rune) bool {
	return isAsciiDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// numericCharRefCap bounds charRefCode accumulation; any value beyond it
// is already outside the Unicode range and reported as such.
const numericCharRefCap = 0x110000

func accumulateDigit(code, base, digit int) int {
	if code >= numericCharRefCap {
		return numericCharRefCap
	}
	code = code*base + digit
	if code >= numericCharRefCap {
		return numericCharRefCap
	}
	return code
}

// appendRefRune routes resolved/literal character-reference output to either
// the in-progress attribute value or the coalesced text buffer, matching
// does_append_to_attr_value in the reference tokenizer.
func (t *Tokenizer) appendRefRune(r rune, loc token.Location) {
	if t.inAttr {
		t.attrValue = append(t.attrValue, r)
		return
	}
	t.emitChar(r, loc)
}

func (t *Tokenizer) appendRefStr(s string, loc token.Location) {
	for _, r := range s {
		t.appendRefRune(r, loc)
	}
}

func (t *Tokenizer) stepCharacterReference(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isAsciiAlnum(cp.R):
		t.charRefBase = loc
		t.reconsume(NamedCharacterReference, cp, loc)
	case cp.Kind == htmlinput.Scalar && cp.R == '#':
		t.tempBuf = append(t.tempBuf[:0], '&', '#')
		t.charRefCode = 0
		t.switchTo(NumericCharacterReference)
	default:
		t.appendRefRune('&', t.charRefStart)
		t.reconsume(t.retTo, cp, loc)
	}
	return true
}

// stepNamedCharacterReference walks the named-reference trie one code
// point per call via resolver, so a Feed boundary mid-reference never
// changes the outcome.
func (t *Tokenizer) stepNamedCharacterReference(cp htmlinput.CodePoint, loc token.Location) bool {
	hasRemaining := t.resolver.Remaining() != ""
	var accepted, specialCase bool
	if cp.Kind == htmlinput.Scalar {
		accepted = t.resolver.Accept(cp.R)
		specialCase = hasRemaining || cp.R == ';' || cp.R == '=' || isAsciiAlnum(cp.R)
	} else {
		specialCase = hasRemaining
	}

	if t.resolver.End() {
		_, expansion, _ := t.resolver.Resolve()
		t.appendRefStr(expansion, loc)
		t.switchTo(t.retTo)
		return true
	}

	if accepted {
		return true
	}

	if t.inAttr && specialCase {
		t.appendRefRune('&', t.charRefStart)
		t.appendRefStr(t.resolver.Buffer(), loc)
		t.reconsume(t.retTo, cp, loc)
		return true
	}

	if prefixLen, expansion, ok := t.resolver.Resolve(); ok {
		t.errorAt("missing-semicolon-after-character-reference", t.charRefBase.Backdate(prefixLen))
		t.appendRefStr(expansion, loc)
		t.appendRefStr(t.resolver.Remaining(), loc)
		t.reconsume(t.retTo, cp, loc)
		return true
	}

	t.appendRefRune('&', t.charRefStart)
	t.appendRefStr(t.resolver.Buffer(), loc)
	t.reconsume(AmbiguousAmpersand, cp, loc)
	return true
}

func (t *Tokenizer) stepAmbiguousAmpersand(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isAsciiAlnum(cp.R):
		t.appendRefRune(cp.R, loc)
	case cp.Kind == htmlinput.Scalar && cp.R == ';':
		t.errorAt("unknown-named-character-reference", loc)
		t.reconsume(t.retTo, cp, loc)
	default:
		t.reconsume(t.retTo, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepNumericCharacterReference(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && (cp.R == 'x' || cp.R == 'X') {
		t.tempBuf = append(t.tempBuf, cp.R)
		t.switchTo(HexadecimalCharacterReferenceStart)
		return true
	}
	t.reconsume(DecimalCharacterReferenceStart, cp, loc)
	return true
}

func (t *Tokenizer) stepHexadecimalCharacterReferenceStart(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && isHexDigit(cp.R) {
		t.reconsume(HexadecimalCharacterReference, cp, loc)
		return true
	}
	t.errorAt("absence-of-digits-in-numeric-character-reference", loc)
	t.appendRefStr(string(t.tempBuf), t.charRefStart)
	t.reconsume(t.retTo, cp, loc)
	return true
}

func (t *Tokenizer) stepDecimalCharacterReferenceStart(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && isAsciiDigit(cp.R) {
		t.reconsume(DecimalCharacterReference, cp, loc)
		return true
	}
	t.errorAt("absence-of-digits-in-numeric-character-reference", loc)
	t.appendRefStr(string(t.tempBuf), t.charRefStart)
	t.reconsume(t.retTo, cp, loc)
	return true
}

func (t *Tokenizer) stepHexadecimalCharacterReference(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isHexDigit(cp.R):
		t.charRefCode = accumulateDigit(t.charRefCode, 16, hexDigitValue(cp.R))
	case cp.Kind == htmlinput.Scalar && cp.R == ';':
		t.switchTo(NumericCharacterReferenceEnd)
	default:
		t.errorAt("missing-semicolon-after-character-reference", loc)
		t.reconsume(NumericCharacterReferenceEnd, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepDecimalCharacterReference(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isAsciiDigit(cp.R):
		t.charRefCode = accumulateDigit(t.charRefCode, 10, int(cp.R-'0'))
	case cp.Kind == htmlinput.Scalar && cp.R == ';':
		t.switchTo(NumericCharacterReferenceEnd)
	default:
		t.errorAt("missing-semicolon-after-character-reference", loc)
		t.reconsume(NumericCharacterReferenceEnd, cp, loc)
	}
	return true
}

// charmapC1 remaps the Windows-1252 C1 control range (0x80-0x9F) the way
// browsers do for historical compatibility, per §13.2.5.80.
var charmapC1 = [32]rune{
	0x20AC, 0x0081, 0x201A, 0x0192,
	0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039,
	0x0152, 0x008D, 0x017D, 0x008F,
	0x0090, 0x2018, 0x2019, 0x201C,
	0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A,
	0x0153, 0x009D, 0x017E, 0x0178,
}

func isNoncharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	switch code & 0xFFFF {
	case 0xFFFE, 0xFFFF:
		return true
	}
	return false
}

func isControlRefCode(code int) bool {
	switch {
	case code == 0x0D:
		return true
	case code >= 0x01 && code <= 0x08:
		return true
	case code == 0x0B:
		return true
	case code >= 0x0E && code <= 0x1F:
		return true
	case code == 0x7F:
		return true
	}
	return false
}

func (t *Tokenizer) stepNumericCharacterReferenceEnd(cp htmlinput.CodePoint, loc token.Location) bool {
	code := t.charRefCode
	var r rune
	switch {
	case code == 0:
		t.errorAt("null-character-reference", loc)
		r = 0xFFFD
	case code >= numericCharRefCap:
		t.errorAt("character-reference-outside-unicode-range", loc)
		r = 0xFFFD
	case code >= 0xD800 && code <= 0xDFFF:
		t.errorAt("surrogate-character-reference", loc)
		r = 0xFFFD
	case isNoncharacter(code):
		t.errorAt("noncharacter-character-reference", loc)
		r = rune(code)
	case isControlRefCode(code):
		t.errorAt("control-character-reference", loc)
		r = rune(code)
	case code >= 0x80 && code <= 0x9F:
		t.errorAt("control-character-reference", loc)
		r = charmapC1[code-0x80]
	default:
		r = rune(code)
	}
	t.appendRefRune(r, t.charRefStart)
	t.reconsume(t.retTo, cp, loc)
	return true
}
