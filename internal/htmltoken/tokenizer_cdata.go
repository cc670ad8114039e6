package htmltoken

import (
	"github.com/cwbudde/webfrontend/internal/htmlinput"
	"github.com/cwbudde/webfrontend/internal/token"
)

// stepMarkupCDATAKeyword matches the remaining characters of "[CDATA["
// (the leading '[' was already consumed by stepMarkupDeclarationOpen)
// exact-case, one code point per call. The section only opens in foreign
// content, signaled here by a non-empty lastStartTag; outside foreign
// content a matched "[CDATA[" still falls back to a bogus comment.
func (t *Tokenizer) stepMarkupCDATAKeyword(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == rune(t.kwTarget[t.kwPos]) {
		t.kwPos++
		if t.kwPos < len(t.kwTarget) {
			return true
		}
		if t.lastStartTag == "" {
			t.errorAt("cdata-in-html-content", loc)
			t.startComment(loc)
			t.appendCommentStr("[" + t.kwTarget[:t.kwPos-1])
			t.reconsume(BogusComment, cp, loc)
			return true
		}
		t.switchTo(CDATASection)
		return true
	}
	t.errorAt("cdata-in-html-content", loc.Backdate(-(t.kwPos+1)))
	t.startComment(loc)
	t.appendCommentStr("[" + t.kwTarget[:t.kwPos])
	t.reconsume(BogusComment, cp, loc)
	return true
}

func (t *Tokenizer) stepCDATASection(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == ']':
		t.switchTo(CDATASectionBracket)
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-cdata", loc)
		t.emitEnd()
		t.switchTo(End)
	case cp.Kind == htmlinput.Scalar:
		t.emitChar(cp.R, loc)
	default:
		t.emitChar(0xFFFD, loc)
	}
	return true
}

func (t *Tokenizer) stepCDATASectionBracket(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == ']' {
		t.switchTo(CDATASectionEnd)
		return true
	}
	t.emitChar(']', loc)
	t.reconsume(CDATASection, cp, loc)
	return true
}

func (t *Tokenizer) stepCDATASectionEnd(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == ']':
		t.emitChar(']', loc)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
	default:
		t.emitChar(']', loc)
		t.emitChar(']', loc)
		t.reconsume(CDATASection, cp, loc)
	}
	return true
}
