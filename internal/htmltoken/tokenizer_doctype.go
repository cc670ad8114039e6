package htmltoken

import (
	"github.com/cwbudde/webfrontend/internal/htmlinput"
	"github.com/cwbudde/webfrontend/internal/token"
)

func (t *Tokenizer) startDoctypeNameWith(r rune) {
	t.doctypeName = append(t.doctypeName[:0], r)
	t.doctypeHasName = true
}

func (t *Tokenizer) startDoctypePublicID() {
	t.doctypePub = t.doctypePub[:0]
	t.doctypeHasPub = true
}

func (t *Tokenizer) startDoctypeSystemID() {
	t.doctypeSys = t.doctypeSys[:0]
	t.doctypeHasSys = true
}

func (t *Tokenizer) stepDoctype(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		t.switchTo(BeforeDoctypeName)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.reconsume(BeforeDoctypeName, cp, loc)
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("missing-whitespace-before-doctype-name", loc)
		t.reconsume(BeforeDoctypeName, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepBeforeDoctypeName(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		return true
	case cp.Kind == htmlinput.Scalar && cp.R >= 'A' && cp.R <= 'Z':
		t.startDoctypeNameWith(toLowerASCII(cp.R))
		t.switchTo(DoctypeName)
	case cp.Kind == htmlinput.Scalar && cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.startDoctypeNameWith(0xFFFD)
		t.switchTo(DoctypeName)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("missing-doctype-name", loc)
		t.forceQuirks = true
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	case cp.Kind == htmlinput.Scalar:
		t.startDoctypeNameWith(cp.R)
		t.switchTo(DoctypeName)
	default:
		t.startDoctypeNameWith(0xFFFD)
		t.switchTo(DoctypeName)
	}
	return true
}

func (t *Tokenizer) stepDoctypeName(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		t.switchTo(AfterDoctypeName)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.Scalar && cp.R >= 'A' && cp.R <= 'Z':
		t.doctypeName = append(t.doctypeName, toLowerASCII(cp.R))
	case cp.Kind == htmlinput.Scalar && cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.doctypeName = append(t.doctypeName, 0xFFFD)
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	case cp.Kind == htmlinput.Scalar:
		t.doctypeName = append(t.doctypeName, cp.R)
	default:
		t.doctypeName = append(t.doctypeName, 0xFFFD)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypeName(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		return true
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	case cp.Kind == htmlinput.Scalar && (cp.R == 'p' || cp.R == 'P'):
		t.kwTarget = "UBLIC"
		t.kwPos = 0
		t.kwSuccess = AfterDoctypePublicKeyword
		t.switchTo(DoctypePublicKeywordMatch)
	case cp.Kind == htmlinput.Scalar && (cp.R == 's' || cp.R == 'S'):
		t.kwTarget = "YSTEM"
		t.kwPos = 0
		t.kwSuccess = AfterDoctypeSystemKeyword
		t.switchTo(DoctypeSystemKeywordMatch)
	default:
		t.errorAt("invalid-character-sequence-after-doctype-name", loc)
		t.forceQuirks = true
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepDoctypePublicKeywordMatch(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && matchesFold(cp.R, t.kwTarget[t.kwPos]) {
		t.kwPos++
		if t.kwPos == len(t.kwTarget) {
			t.switchTo(t.kwSuccess)
		}
		return true
	}
	t.errorAt("invalid-character-sequence-after-doctype-name", loc.Backdate(-(t.kwPos+1)))
	t.forceQuirks = true
	t.switchTo(BogusDoctype)
	return true
}

func (t *Tokenizer) stepDoctypeSystemKeywordMatch(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && matchesFold(cp.R, t.kwTarget[t.kwPos]) {
		t.kwPos++
		if t.kwPos == len(t.kwTarget) {
			t.switchTo(t.kwSuccess)
		}
		return true
	}
	t.errorAt("invalid-character-sequence-after-doctype-name", loc.Backdate(-(t.kwPos+1)))
	t.forceQuirks = true
	t.switchTo(BogusDoctype)
	return true
}

func (t *Tokenizer) stepAfterDoctypePublicKeyword(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		t.switchTo(BeforeDoctypePublicIdentifier)
	case cp.Kind == htmlinput.Scalar && cp.R == '"':
		t.errorAt("missing-whitespace-after-doctype-public-keyword", loc)
		t.forceQuirks = true
		t.startDoctypePublicID()
		t.switchTo(DoctypePublicIdentifierDoubleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '\'':
		t.errorAt("missing-whitespace-after-doctype-public-keyword", loc)
		t.startDoctypePublicID()
		t.switchTo(DoctypePublicIdentifierSingleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("missing-doctype-public-identifier", loc)
		t.forceQuirks = true
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("missing-quote-before-doctype-public-identifier", loc)
		t.forceQuirks = true
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepBeforeDoctypePublicIdentifier(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		return true
	case cp.Kind == htmlinput.Scalar && cp.R == '"':
		t.startDoctypePublicID()
		t.switchTo(DoctypePublicIdentifierDoubleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '\'':
		t.startDoctypePublicID()
		t.switchTo(DoctypePublicIdentifierSingleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("missing-doctype-public-identifier", loc)
		t.forceQuirks = true
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("missing-quote-before-doctype-public-identifier", loc)
		t.forceQuirks = true
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepDoctypePublicIdentifierQuoted(cp htmlinput.CodePoint, loc token.Location, quote rune) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == quote:
		t.switchTo(AfterDoctypePublicIdentifier)
	case cp.Kind == htmlinput.Scalar && cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.doctypePub = append(t.doctypePub, 0xFFFD)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("abrupt-doctype-public-identifier", loc)
		t.forceQuirks = true
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	case cp.Kind == htmlinput.Scalar:
		t.doctypePub = append(t.doctypePub, cp.R)
	default:
		t.doctypePub = append(t.doctypePub, 0xFFFD)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypePublicIdentifier(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		t.switchTo(BetweenDoctypePublicAndSystemIdentifiers)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.Scalar && cp.R == '"':
		t.errorAt("missing-whitespace-between-doctype-public-and-system-identifiers", loc)
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '\'':
		t.errorAt("missing-whitespace-between-doctype-public-and-system-identifiers", loc)
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("missing-quote-before-doctype-system-identifier", loc)
		t.forceQuirks = true
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepBetweenDoctypePublicAndSystemIdentifiers(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		return true
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.Scalar && cp.R == '"':
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '\'':
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("missing-quote-before-doctype-system-identifier", loc)
		t.forceQuirks = true
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypeSystemKeyword(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		t.switchTo(BeforeDoctypeSystemIdentifier)
	case cp.Kind == htmlinput.Scalar && cp.R == '"':
		t.errorAt("missing-whitespace-after-doctype-system-keyword", loc)
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '\'':
		t.errorAt("missing-whitespace-after-doctype-system-keyword", loc)
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("missing-doctype-system-identifier", loc)
		t.forceQuirks = true
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("missing-quote-before-doctype-system-identifier", loc)
		t.forceQuirks = true
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepBeforeDoctypeSystemIdentifier(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		return true
	case cp.Kind == htmlinput.Scalar && cp.R == '"':
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierDoubleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '\'':
		t.startDoctypeSystemID()
		t.switchTo(DoctypeSystemIdentifierSingleQuoted)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("missing-doctype-system-identifier", loc)
		t.forceQuirks = true
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("missing-quote-before-doctype-system-identifier", loc)
		t.forceQuirks = true
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepDoctypeSystemIdentifierQuoted(cp htmlinput.CodePoint, loc token.Location, quote rune) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == quote:
		t.switchTo(AfterDoctypeSystemIdentifier)
	case cp.Kind == htmlinput.Scalar && cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.doctypeSys = append(t.doctypeSys, 0xFFFD)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("abrupt-doctype-system-identifier", loc)
		t.forceQuirks = true
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	case cp.Kind == htmlinput.Scalar:
		t.doctypeSys = append(t.doctypeSys, cp.R)
	default:
		t.doctypeSys = append(t.doctypeSys, 0xFFFD)
	}
	return true
}

func (t *Tokenizer) stepAfterDoctypeSystemIdentifier(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && isSpace(cp.R):
		return true
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-doctype", loc)
		t.forceQuirks = true
		t.emitDoctype()
		t.switchTo(End)
	default:
		t.errorAt("unexpected-character-after-doctype-system-identifier", loc)
		t.reconsume(BogusDoctype, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepBogusDoctype(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitDoctype()
	case cp.Kind == htmlinput.Scalar && cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
	case cp.Kind == htmlinput.EOF:
		t.emitDoctype()
		t.switchTo(End)
	}
	return true
}
