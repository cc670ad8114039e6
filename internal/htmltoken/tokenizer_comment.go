package htmltoken

import (
	"strings"

	"github.com/cwbudde/webfrontend/internal/htmlinput"
	"github.com/cwbudde/webfrontend/internal/token"
)

func (t *Tokenizer) appendComment(r rune)   { t.comment = append(t.comment, r) }
func (t *Tokenizer) appendCommentStr(s string) {
	t.comment = append(t.comment, []rune(s)...)
}

func (t *Tokenizer) stepBogusComment(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.EOF:
		t.emitComment()
		t.switchTo(End)
		return true
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitComment()
		return true
	case cp.Kind == htmlinput.Scalar && cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.appendComment(0xFFFD)
	case cp.Kind == htmlinput.Scalar:
		t.appendComment(cp.R)
	default:
		t.appendComment(0xFFFD)
	}
	return true
}

// stepMarkupDeclarationOpen dispatches "<!" per §13.2.5.73: "--" opens a
// comment, a case-insensitive "DOCTYPE" opens a doctype, "[CDATA[" opens
// a CDATA section (gated on foreign-content context, see
// stepMarkupCDATAKeyword); anything else is a bogus comment.
func (t *Tokenizer) stepMarkupDeclarationOpen(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar {
		switch {
		case cp.R == '-':
			t.switchTo(MarkupCommentDash)
			return true
		case cp.R == 'd' || cp.R == 'D':
			t.kwTarget = "OCTYPE"
			t.kwPos = 0
			t.kwSuccess = Doctype
			t.switchTo(MarkupDoctypeKeyword)
			return true
		case cp.R == '[':
			t.kwTarget = "CDATA["
			t.kwPos = 0
			t.kwSuccess = CDATASection
			t.switchTo(MarkupCDATAKeyword)
			return true
		}
	}
	t.errorAt("incorrectly-opened-comment", loc)
	t.startComment(loc)
	t.reconsume(BogusComment, cp, loc)
	return true
}

func (t *Tokenizer) stepMarkupCommentDash(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == '-' {
		t.startComment(loc)
		t.switchTo(CommentStart)
		return true
	}
	t.errorAt("incorrectly-opened-comment", loc.Backdate(-1))
	t.startComment(loc)
	t.reconsume(BogusComment, cp, loc)
	return true
}

// stepMarkupDoctypeKeyword matches the remaining letters of "DOCTYPE"
// (the leading D/d was already consumed by stepMarkupDeclarationOpen)
// case-insensitively, one code point per call so chunk boundaries never
// change behavior; a mismatch falls back to a bogus comment containing
// the abandoned prefix, per the reference tokenizer.
func (t *Tokenizer) stepMarkupDoctypeKeyword(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && matchesFold(cp.R, t.kwTarget[t.kwPos]) {
		t.kwPos++
		if t.kwPos == len(t.kwTarget) {
			t.switchTo(t.kwSuccess)
		}
		return true
	}
	t.errorAt("incorrectly-opened-comment", loc.Backdate(-(t.kwPos+1)))
	t.startComment(loc)
	t.appendCommentStr("d" + strings.ToLower(t.kwTarget[:t.kwPos]))
	t.reconsume(BogusComment, cp, loc)
	return true
}

func matchesFold(r rune, upper byte) bool {
	return r == rune(upper) || r == rune(upper)+0x20
}

func (t *Tokenizer) stepCommentStart(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '-':
		t.switchTo(CommentStartDash)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("abrupt-closing-of-empty-comment", loc)
		t.switchTo(Data)
		t.emitComment()
	default:
		t.reconsume(CommentState, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepCommentStartDash(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '-':
		t.switchTo(CommentEnd)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("abrupt-closing-of-empty-comment", loc)
		t.switchTo(Data)
		t.emitComment()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-comment", loc)
		t.switchTo(End)
		t.emitComment()
	default:
		t.appendComment('-')
		t.reconsume(CommentState, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepComment(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '<':
		t.appendComment('<')
		t.switchTo(CommentLessThanSign)
	case cp.Kind == htmlinput.Scalar && cp.R == '-':
		t.switchTo(CommentEndDash)
	case cp.Kind == htmlinput.Scalar && cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.appendComment(0xFFFD)
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-comment", loc)
		t.switchTo(End)
		t.emitComment()
	case cp.Kind == htmlinput.Scalar:
		t.appendComment(cp.R)
	default:
		t.appendComment(0xFFFD)
	}
	return true
}

func (t *Tokenizer) stepCommentLessThanSign(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '!':
		t.appendComment('!')
		t.switchTo(CommentLessThanSignBang)
	case cp.Kind == htmlinput.Scalar && cp.R == '<':
		t.appendComment('<')
	default:
		t.reconsume(CommentState, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepCommentLessThanSignBang(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == '-' {
		t.switchTo(CommentLessThanSignBangDash)
		return true
	}
	t.reconsume(CommentState, cp, loc)
	return true
}

func (t *Tokenizer) stepCommentLessThanSignBangDash(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == '-' {
		t.switchTo(CommentLessThanSignBangDashDash)
		return true
	}
	t.reconsume(CommentEndDash, cp, loc)
	return true
}

func (t *Tokenizer) stepCommentLessThanSignBangDashDash(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.reconsume(CommentEnd, cp, loc)
	case cp.Kind == htmlinput.EOF:
		t.reconsume(CommentEnd, cp, loc)
	default:
		t.errorAt("nested-comment", loc)
		t.reconsume(CommentEnd, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepCommentEndDash(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '-':
		t.switchTo(CommentEnd)
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-comment", loc)
		t.switchTo(End)
		t.emitComment()
	default:
		t.appendComment('-')
		t.reconsume(CommentState, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepCommentEnd(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.switchTo(Data)
		t.emitComment()
	case cp.Kind == htmlinput.Scalar && cp.R == '!':
		t.switchTo(CommentEndBang)
	case cp.Kind == htmlinput.Scalar && cp.R == '-':
		t.appendComment('-')
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-comment", loc)
		t.switchTo(End)
		t.emitComment()
	default:
		t.appendCommentStr("--")
		t.reconsume(CommentState, cp, loc)
	}
	return true
}

func (t *Tokenizer) stepCommentEndBang(cp htmlinput.CodePoint, loc token.Location) bool {
	switch {
	case cp.Kind == htmlinput.Scalar && cp.R == '-':
		t.appendCommentStr("--!")
		t.switchTo(CommentEndDash)
	case cp.Kind == htmlinput.Scalar && cp.R == '>':
		t.errorAt("incorrectly-closed-comment", loc)
		t.switchTo(Data)
		t.emitComment()
	case cp.Kind == htmlinput.EOF:
		t.errorAt("eof-in-comment", loc)
		t.switchTo(End)
		t.emitComment()
	default:
		t.appendCommentStr("--!")
		t.reconsume(CommentState, cp, loc)
	}
	return true
}
