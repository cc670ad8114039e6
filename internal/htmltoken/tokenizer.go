// Package htmltoken implements the WHATWG HTML Living Standard §13.2.5
// tokenizer state machine: a push-fed, pull-consumed single-threaded
// state machine that turns a code-point stream into a stream of HTML
// tokens and parse errors.
package htmltoken

import (
	"strings"

	"github.com/cwbudde/webfrontend/internal/charref"
	"github.com/cwbudde/webfrontend/internal/htmlinput"
	"github.com/cwbudde/webfrontend/internal/token"
)

// Tokenizer drives the §13.2.5 state machine over a Stream. It is not
// safe for concurrent use: like the Stream it wraps, it is a
// single-threaded, cooperative push/pull machine, not a worker you hand
// off to a goroutine.
type Tokenizer struct {
	stream *htmlinput.Stream
	state  State
	retTo  State // return state for character-reference and script-escape states

	file   string
	source string // full input text, used only for error caret/context rendering

	queue []Token
	errs  []*ParseError

	pending   bool
	pendingCP htmlinput.CodePoint
	pendingLoc token.Location

	textBuf   []rune
	textStart token.Location
	textHas   bool

	tagKind     Kind
	tagName     []rune
	tagStart    token.Location
	selfClosing bool
	attrs       []Attr
	attrName    []rune
	attrValue   []rune
	haveAttr    bool

	comment []rune

	doctypeName    []rune
	doctypeHasName bool
	doctypePub     []rune
	doctypeHasPub  bool
	doctypeSys     []rune
	doctypeHasSys  bool
	forceQuirks    bool

	lastStartTag string
	tempBuf      []rune

	// keyword-match progress, shared by MarkupDoctypeKeyword/MarkupCDATAKeyword/
	// DoctypePublicKeywordMatch/DoctypeSystemKeywordMatch: at most one of
	// these states is ever active at a time, so one set of fields suffices.
	kwTarget  string // remaining characters to match, uppercase
	kwPos     int
	kwSuccess State

	charRefStart token.Location // location of the triggering '&'
	charRefBase  token.Location // location of the first character after '&', for diagnostic offsets
	charRefCode  int
	resolver     *charref.Resolver
	inAttr       bool // character reference is being consumed inside an attribute value
}

// New creates a Tokenizer reading from stream, starting in the Data
// state. file is used only to label diagnostics.
func New(stream *htmlinput.Stream, file string) *Tokenizer {
	return &Tokenizer{
		stream:   stream,
		state:    Data,
		file:     file,
		resolver: charref.New(),
	}
}

// Feed and FeedEnd forward to the underlying Stream; see htmlinput.Stream.
func (t *Tokenizer) Feed(chunk []uint16) { t.stream.Feed(chunk) }
func (t *Tokenizer) FeedEnd()            { t.stream.FeedEnd() }

// SetSource attaches the full input text so parse errors render with
// source-line + caret context (internal/errors.CompilerError.Format).
// Optional: a caller that only wants error codes and positions, or that
// is genuinely streaming unbounded input it cannot buffer, may leave
// this unset, in which case errors still carry a correct file/position
// but no rendered source line.
func (t *Tokenizer) SetSource(source string) { t.source = source }

// Errors returns every parse error accumulated so far.
func (t *Tokenizer) Errors() []*ParseError { return t.errs }

// NextToken returns the next token in the stream. Kind == NeedMoreData
// means the tokenizer is starved: Feed more input (or call FeedEnd) and
// call NextToken again. Kind == EndToken marks definitive end of input;
// further calls keep returning it.
func (t *Tokenizer) NextToken() Token {
	for len(t.queue) == 0 {
		if !t.step() {
			return Token{Kind: NeedMoreData}
		}
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok
}

// next pulls the next code point, honoring a pending reconsume request.
func (t *Tokenizer) next() (htmlinput.CodePoint, token.Location, bool) {
	if t.pending {
		t.pending = false
		return t.pendingCP, t.pendingLoc, true
	}
	return t.stream.Next()
}

// reconsume arranges for cp/loc to be replayed as the next input in the
// new state, matching the spec's "reconsume in the X state" action.
func (t *Tokenizer) reconsume(s State, cp htmlinput.CodePoint, loc token.Location) {
	t.pending, t.pendingCP, t.pendingLoc = true, cp, loc
	t.state = s
}

func (t *Tokenizer) switchTo(s State) { t.state = s }

func (t *Tokenizer) errorAt(code string, loc token.Location) {
	t.errs = append(t.errs, NewParseError(code, t.source, t.file, loc))
}

// emitChar appends r to the in-progress coalesced Text token buffer.
func (t *Tokenizer) emitChar(r rune, loc token.Location) {
	if !t.textHas {
		t.textStart = loc
		t.textHas = true
	}
	t.textBuf = append(t.textBuf, r)
}

// flushText emits any pending coalesced Text token.
func (t *Tokenizer) flushText() {
	if !t.textHas {
		return
	}
	t.queue = append(t.queue, Token{Kind: Text, Pos: t.textStart, text: string(t.textBuf)})
	t.textBuf = t.textBuf[:0]
	t.textHas = false
}

func (t *Tokenizer) startTag(kind Kind, pos token.Location) {
	t.flushText()
	t.tagKind = kind
	t.tagName = t.tagName[:0]
	t.tagStart = pos
	t.selfClosing = false
	t.attrs = nil
}

func (t *Tokenizer) appendTagName(r rune) { t.tagName = append(t.tagName, r) }

func (t *Tokenizer) startAttr() {
	t.haveAttr = true
	t.attrName = t.attrName[:0]
	t.attrValue = t.attrValue[:0]
}

func (t *Tokenizer) finishAttr() {
	if !t.haveAttr {
		return
	}
	name := string(t.attrName)
	dup := false
	for i := range t.attrs {
		if t.attrs[i].Name == name {
			dup = true
			break
		}
	}
	t.attrs = append(t.attrs, Attr{Name: name, Value: string(t.attrValue), Duplicate: dup})
	t.haveAttr = false
}

func (t *Tokenizer) emitTag() {
	t.finishAttr()
	name := string(t.tagName)
	if t.tagKind == StartTag {
		t.lastStartTag = name
	}
	t.queue = append(t.queue, Token{
		Kind: t.tagKind, Pos: t.tagStart,
		name: name, rawAttrs: t.attrs, selfClosing: t.selfClosing,
	})
}

func (t *Tokenizer) appropriateEndTag() bool {
	return t.lastStartTag != "" && string(t.tagName) == t.lastStartTag
}

func (t *Tokenizer) startComment(pos token.Location) {
	t.flushText()
	t.comment = t.comment[:0]
	t.tagStart = pos
}

func (t *Tokenizer) emitComment() {
	t.queue = append(t.queue, Token{Kind: Comment, Pos: t.tagStart, text: string(t.comment)})
}

func (t *Tokenizer) startDoctype(pos token.Location) {
	t.flushText()
	t.tagStart = pos
	t.doctypeName = nil
	t.doctypeHasName = false
	t.doctypePub = nil
	t.doctypeHasPub = false
	t.doctypeSys = nil
	t.doctypeHasSys = false
	t.forceQuirks = false
}

func (t *Tokenizer) emitDoctype() {
	tok := Token{Kind: DoctypeToken, Pos: t.tagStart, forceQuirks: t.forceQuirks}
	if t.doctypeHasName {
		tok.name = string(t.doctypeName)
	}
	if t.doctypeHasPub {
		s := string(t.doctypePub)
		tok.doctypePub = &s
	}
	if t.doctypeHasSys {
		s := string(t.doctypeSys)
		tok.doctypeSys = &s
	}
	t.queue = append(t.queue, tok)
}

func (t *Tokenizer) emitEnd() {
	t.flushText()
	t.queue = append(t.queue, Token{Kind: EndToken})
}

// isAsciiAlpha reports ASCII a-z/A-Z.
func isAsciiAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 0x20
	}
	return r
}

// step executes one iteration of the state machine, possibly appending
// to t.queue. It returns false when the stream is starved and no
// progress could be made.
func (t *Tokenizer) step() bool {
	cp, loc, ok := t.next()
	if !ok {
		return false
	}

	switch t.state {
	case Data:
		return t.stepCharDataLike(cp, loc, Data, TagOpen, true)
	case RCDATA:
		return t.stepCharDataLike(cp, loc, RCDATA, RCDATALessThanSign, true)
	case RAWTEXT:
		return t.stepRawLike(cp, loc, RAWTEXT, RAWTEXTLessThanSign)
	case ScriptData:
		return t.stepRawLike(cp, loc, ScriptData, ScriptDataLessThanSign)
	case PLAINTEXT:
		return t.stepPlaintext(cp, loc)

	case TagOpen:
		return t.stepTagOpen(cp, loc)
	case EndTagOpen:
		return t.stepEndTagOpen(cp, loc)
	case TagName:
		return t.stepTagName(cp, loc)

	case RCDATALessThanSign:
		return t.stepEscapableLessThanSign(cp, loc, RCDATA, RCDATAEndTagOpen)
	case RCDATAEndTagOpen:
		return t.stepEndTagOpenEscapable(cp, loc, RCDATA, RCDATAEndTagName)
	case RCDATAEndTagName:
		return t.stepEndTagNameEscapable(cp, loc, RCDATA)

	case RAWTEXTLessThanSign:
		return t.stepEscapableLessThanSign(cp, loc, RAWTEXT, RAWTEXTEndTagOpen)
	case RAWTEXTEndTagOpen:
		return t.stepEndTagOpenEscapable(cp, loc, RAWTEXT, RAWTEXTEndTagName)
	case RAWTEXTEndTagName:
		return t.stepEndTagNameEscapable(cp, loc, RAWTEXT)

	case ScriptDataLessThanSign:
		return t.stepScriptDataLessThanSign(cp, loc)
	case ScriptDataEndTagOpen:
		return t.stepEndTagOpenEscapable(cp, loc, ScriptData, ScriptDataEndTagName)
	case ScriptDataEndTagName:
		return t.stepEndTagNameEscapable(cp, loc, ScriptData)
	case ScriptDataEscapeStart:
		return t.stepScriptDataEscapeStart(cp, loc)
	case ScriptDataEscapeStartDash:
		return t.stepScriptDataEscapeStartDash(cp, loc)
	case ScriptDataEscaped:
		return t.stepScriptDataEscaped(cp, loc)
	case ScriptDataEscapedDash:
		return t.stepScriptDataEscapedDash(cp, loc)
	case ScriptDataEscapedDashDash:
		return t.stepScriptDataEscapedDashDash(cp, loc)
	case ScriptDataEscapedLessThanSign:
		return t.stepScriptDataEscapedLessThanSign(cp, loc)
	case ScriptDataEscapedEndTagOpen:
		return t.stepEndTagOpenEscapable(cp, loc, ScriptDataEscaped, ScriptDataEscapedEndTagName)
	case ScriptDataEscapedEndTagName:
		return t.stepEndTagNameEscapable(cp, loc, ScriptDataEscaped)
	case ScriptDataDoubleEscapeStart:
		return t.stepScriptDataDoubleEscapeStart(cp, loc)
	case ScriptDataDoubleEscaped:
		return t.stepScriptDataDoubleEscaped(cp, loc)
	case ScriptDataDoubleEscapedDash:
		return t.stepScriptDataDoubleEscapedDash(cp, loc)
	case ScriptDataDoubleEscapedDashDash:
		return t.stepScriptDataDoubleEscapedDashDash(cp, loc)
	case ScriptDataDoubleEscapedLessThanSign:
		return t.stepScriptDataDoubleEscapedLessThanSign(cp, loc)
	case ScriptDataDoubleEscapeEnd:
		return t.stepScriptDataDoubleEscapeEnd(cp, loc)

	case BeforeAttributeName:
		return t.stepBeforeAttributeName(cp, loc)
	case AttributeName:
		return t.stepAttributeName(cp, loc)
	case AfterAttributeName:
		return t.stepAfterAttributeName(cp, loc)
	case BeforeAttributeValue:
		return t.stepBeforeAttributeValue(cp, loc)
	case AttributeValueDoubleQuoted:
		return t.stepAttributeValueQuoted(cp, loc, '"')
	case AttributeValueSingleQuoted:
		return t.stepAttributeValueQuoted(cp, loc, '\'')
	case AttributeValueUnquoted:
		return t.stepAttributeValueUnquoted(cp, loc)
	case AfterAttributeValueQuoted:
		return t.stepAfterAttributeValueQuoted(cp, loc)
	case SelfClosingStartTag:
		return t.stepSelfClosingStartTag(cp, loc)

	case BogusComment:
		return t.stepBogusComment(cp, loc)
	case MarkupDeclarationOpen:
		return t.stepMarkupDeclarationOpen(cp, loc)
	case MarkupCommentDash:
		return t.stepMarkupCommentDash(cp, loc)
	case MarkupDoctypeKeyword:
		return t.stepMarkupDoctypeKeyword(cp, loc)
	case MarkupCDATAKeyword:
		return t.stepMarkupCDATAKeyword(cp, loc)
	case CommentStart:
		return t.stepCommentStart(cp, loc)
	case CommentStartDash:
		return t.stepCommentStartDash(cp, loc)
	case CommentState:
		return t.stepComment(cp, loc)
	case CommentLessThanSign:
		return t.stepCommentLessThanSign(cp, loc)
	case CommentLessThanSignBang:
		return t.stepCommentLessThanSignBang(cp, loc)
	case CommentLessThanSignBangDash:
		return t.stepCommentLessThanSignBangDash(cp, loc)
	case CommentLessThanSignBangDashDash:
		return t.stepCommentLessThanSignBangDashDash(cp, loc)
	case CommentEndDash:
		return t.stepCommentEndDash(cp, loc)
	case CommentEnd:
		return t.stepCommentEnd(cp, loc)
	case CommentEndBang:
		return t.stepCommentEndBang(cp, loc)

	case Doctype:
		return t.stepDoctype(cp, loc)
	case BeforeDoctypeName:
		return t.stepBeforeDoctypeName(cp, loc)
	case DoctypeName:
		return t.stepDoctypeName(cp, loc)
	case AfterDoctypeName:
		return t.stepAfterDoctypeName(cp, loc)
	case DoctypePublicKeywordMatch:
		return t.stepDoctypePublicKeywordMatch(cp, loc)
	case DoctypeSystemKeywordMatch:
		return t.stepDoctypeSystemKeywordMatch(cp, loc)
	case AfterDoctypePublicKeyword:
		return t.stepAfterDoctypePublicKeyword(cp, loc)
	case BeforeDoctypePublicIdentifier:
		return t.stepBeforeDoctypePublicIdentifier(cp, loc)
	case DoctypePublicIdentifierDoubleQuoted:
		return t.stepDoctypePublicIdentifierQuoted(cp, loc, '"')
	case DoctypePublicIdentifierSingleQuoted:
		return t.stepDoctypePublicIdentifierQuoted(cp, loc, '\'')
	case AfterDoctypePublicIdentifier:
		return t.stepAfterDoctypePublicIdentifier(cp, loc)
	case BetweenDoctypePublicAndSystemIdentifiers:
		return t.stepBetweenDoctypePublicAndSystemIdentifiers(cp, loc)
	case AfterDoctypeSystemKeyword:
		return t.stepAfterDoctypeSystemKeyword(cp, loc)
	case BeforeDoctypeSystemIdentifier:
		return t.stepBeforeDoctypeSystemIdentifier(cp, loc)
	case DoctypeSystemIdentifierDoubleQuoted:
		return t.stepDoctypeSystemIdentifierQuoted(cp, loc, '"')
	case DoctypeSystemIdentifierSingleQuoted:
		return t.stepDoctypeSystemIdentifierQuoted(cp, loc, '\'')
	case AfterDoctypeSystemIdentifier:
		return t.stepAfterDoctypeSystemIdentifier(cp, loc)
	case BogusDoctype:
		return t.stepBogusDoctype(cp, loc)

	case CDATASection:
		return t.stepCDATASection(cp, loc)
	case CDATASectionBracket:
		return t.stepCDATASectionBracket(cp, loc)
	case CDATASectionEnd:
		return t.stepCDATASectionEnd(cp, loc)

	case CharacterReference:
		return t.stepCharacterReference(cp, loc)
	case NamedCharacterReference:
		return t.stepNamedCharacterReference(cp, loc)
	case AmbiguousAmpersand:
		return t.stepAmbiguousAmpersand(cp, loc)
	case NumericCharacterReference:
		return t.stepNumericCharacterReference(cp, loc)
	case HexadecimalCharacterReferenceStart:
		return t.stepHexadecimalCharacterReferenceStart(cp, loc)
	case DecimalCharacterReferenceStart:
		return t.stepDecimalCharacterReferenceStart(cp, loc)
	case HexadecimalCharacterReference:
		return t.stepHexadecimalCharacterReference(cp, loc)
	case DecimalCharacterReference:
		return t.stepDecimalCharacterReference(cp, loc)
	case NumericCharacterReferenceEnd:
		return t.stepNumericCharacterReferenceEnd(cp, loc)

	case End:
		t.queue = append(t.queue, Token{Kind: EndToken})
		return true
	}
	return true
}

// stepCharDataLike implements Data and RCDATA, which share the same
// shape (ampersand enters a character reference, less-than enters tag
// open, NUL is an error, EOF ends the stream; RAWTEXT/ScriptData go
// through stepRawLike instead) and differ only in which less-than target
// state to use and in NUL output (Data keeps U+0000, RCDATA emits U+FFFD).
func (t *Tokenizer) stepCharDataLike(cp htmlinput.CodePoint, loc token.Location, self, ltTarget State, allowAmp bool) bool {
	if cp.Kind == htmlinput.EOF {
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.errorAt("surrogate-in-input-stream", loc)
		t.emitChar(0xFFFD, loc)
		return true
	}
	switch {
	case allowAmp && cp.R == '&':
		t.retTo = self
		t.inAttr = false
		t.charRefStart = loc
		t.resolver.Reset()
		t.switchTo(CharacterReference)
	case cp.R == '<':
		t.switchTo(ltTarget)
	case cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		if self == Data {
			// Data emits NUL unchanged — spec quirk; only RCDATA
			// replaces it with U+FFFD.
			t.emitChar(0, loc)
		} else {
			t.emitChar(0xFFFD, loc)
		}
	default:
		t.emitChar(cp.R, loc)
	}
	return true
}

// stepRawLike implements RAWTEXT and ScriptData (outside any escape):
// '<' may start a tag, NUL is replaced with U+FFFD, everything else is
// literal text. Neither honors character references.
func (t *Tokenizer) stepRawLike(cp htmlinput.CodePoint, loc token.Location, self, ltTarget State) bool {
	if cp.Kind == htmlinput.EOF {
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.errorAt("surrogate-in-input-stream", loc)
		t.emitChar(0xFFFD, loc)
		return true
	}
	switch cp.R {
	case '<':
		t.switchTo(ltTarget)
	case 0:
		t.errorAt("unexpected-null-character", loc)
		t.emitChar(0xFFFD, loc)
	default:
		t.emitChar(cp.R, loc)
	}
	return true
}

func (t *Tokenizer) stepPlaintext(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.errorAt("surrogate-in-input-stream", loc)
		t.emitChar(0xFFFD, loc)
		return true
	}
	if cp.R == 0 {
		t.errorAt("unexpected-null-character", loc)
		t.emitChar(0xFFFD, loc)
		return true
	}
	t.emitChar(cp.R, loc)
	return true
}

func (t *Tokenizer) stepTagOpen(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-before-tag-name", loc)
		t.emitChar('<', loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch {
		case cp.R == '!':
			t.switchTo(MarkupDeclarationOpen)
			return true
		case cp.R == '/':
			t.switchTo(EndTagOpen)
			return true
		case isAsciiAlpha(cp.R):
			t.startTag(StartTag, loc)
			t.reconsume(TagName, cp, loc)
			return true
		case cp.R == '?':
			t.errorAt("unexpected-question-mark-instead-of-tag-name", loc)
			t.startComment(loc)
			t.reconsume(BogusComment, cp, loc)
			return true
		}
	}
	t.errorAt("invalid-first-character-of-tag-name", loc)
	t.emitChar('<', loc)
	t.reconsume(Data, cp, loc)
	return true
}

func (t *Tokenizer) stepEndTagOpen(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-before-tag-name", loc)
		t.emitChar('<', loc)
		t.emitChar('/', loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch {
		case isAsciiAlpha(cp.R):
			t.startTag(EndTag, loc)
			t.reconsume(TagName, cp, loc)
			return true
		case cp.R == '>':
			t.errorAt("missing-end-tag-name", loc)
			t.switchTo(Data)
			return true
		}
	}
	t.errorAt("invalid-first-character-of-tag-name", loc)
	t.startComment(loc)
	t.reconsume(BogusComment, cp, loc)
	return true
}

func (t *Tokenizer) stepTagName(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-tag", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.appendTagName(0xFFFD)
		return true
	}
	switch {
	case cp.R == '\t' || cp.R == '\n' || cp.R == '\f' || cp.R == ' ':
		t.switchTo(BeforeAttributeName)
	case cp.R == '/':
		t.switchTo(SelfClosingStartTag)
	case cp.R == '>':
		t.emitTag()
		t.switchTo(Data)
	case cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.appendTagName(0xFFFD)
	default:
		t.appendTagName(toLowerASCII(cp.R))
	}
	return true
}

// stepEscapableLessThanSign implements RCDATALessThanSign and
// RAWTEXTLessThanSign: '/' may open an end tag, anything else falls
// back to a literal '<' in the data state.
func (t *Tokenizer) stepEscapableLessThanSign(cp htmlinput.CodePoint, loc token.Location, dataState, endTagOpenState State) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == '/' {
		t.tempBuf = t.tempBuf[:0]
		t.switchTo(endTagOpenState)
		return true
	}
	t.emitChar('<', loc)
	t.reconsume(dataState, cp, loc)
	return true
}

func (t *Tokenizer) stepEndTagOpenEscapable(cp htmlinput.CodePoint, loc token.Location, dataState, endTagNameState State) bool {
	if cp.Kind == htmlinput.Scalar && isAsciiAlpha(cp.R) {
		t.startTag(EndTag, loc)
		t.reconsume(endTagNameState, cp, loc)
		return true
	}
	t.emitChar('<', loc)
	t.emitChar('/', loc)
	t.reconsume(dataState, cp, loc)
	return true
}

func (t *Tokenizer) stepEndTagNameEscapable(cp htmlinput.CodePoint, loc token.Location, dataState State) bool {
	if cp.Kind == htmlinput.Scalar {
		switch {
		case (cp.R == '\t' || cp.R == '\n' || cp.R == '\f' || cp.R == ' ') && t.appropriateEndTag():
			t.switchTo(BeforeAttributeName)
			return true
		case cp.R == '/' && t.appropriateEndTag():
			t.switchTo(SelfClosingStartTag)
			return true
		case cp.R == '>' && t.appropriateEndTag():
			t.emitTag()
			t.switchTo(Data)
			return true
		case isAsciiAlpha(cp.R):
			t.appendTagName(toLowerASCII(cp.R))
			t.tempBuf = append(t.tempBuf, cp.R)
			return true
		}
	}
	t.emitChar('<', loc)
	t.emitChar('/', loc)
	for _, r := range t.tempBuf {
		t.emitChar(r, loc)
	}
	t.reconsume(dataState, cp, loc)
	return true
}

func (t *Tokenizer) stepScriptDataLessThanSign(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar {
		switch cp.R {
		case '/':
			t.tempBuf = t.tempBuf[:0]
			t.switchTo(ScriptDataEndTagOpen)
			return true
		case '!':
			t.emitChar('<', loc)
			t.emitChar('!', loc)
			t.switchTo(ScriptDataEscapeStart)
			return true
		}
	}
	t.emitChar('<', loc)
	t.reconsume(ScriptData, cp, loc)
	return true
}

func (t *Tokenizer) stepScriptDataEscapeStart(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == '-' {
		t.emitChar('-', loc)
		t.switchTo(ScriptDataEscapeStartDash)
		return true
	}
	t.reconsume(ScriptData, cp, loc)
	return true
}

func (t *Tokenizer) stepScriptDataEscapeStartDash(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == '-' {
		t.emitChar('-', loc)
		t.switchTo(ScriptDataEscapedDashDash)
		return true
	}
	t.reconsume(ScriptData, cp, loc)
	return true
}

func (t *Tokenizer) stepScriptDataEscaped(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-script-html-comment-like-text", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.emitChar(0xFFFD, loc)
		return true
	}
	switch cp.R {
	case '-':
		t.emitChar('-', loc)
		t.switchTo(ScriptDataEscapedDash)
	case '<':
		t.switchTo(ScriptDataEscapedLessThanSign)
	case 0:
		t.errorAt("unexpected-null-character", loc)
		t.emitChar(0xFFFD, loc)
	default:
		t.emitChar(cp.R, loc)
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapedDash(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-script-html-comment-like-text", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch cp.R {
		case '-':
			t.emitChar('-', loc)
			t.switchTo(ScriptDataEscapedDashDash)
			return true
		case '<':
			t.switchTo(ScriptDataEscapedLessThanSign)
			return true
		case 0:
			t.errorAt("unexpected-null-character", loc)
			t.emitChar(0xFFFD, loc)
			t.switchTo(ScriptDataEscaped)
			return true
		}
	}
	if cp.Kind != htmlinput.Scalar {
		t.emitChar(0xFFFD, loc)
		t.switchTo(ScriptDataEscaped)
		return true
	}
	t.emitChar(cp.R, loc)
	t.switchTo(ScriptDataEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataEscapedDashDash(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-script-html-comment-like-text", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch cp.R {
		case '-':
			t.emitChar('-', loc)
			return true
		case '<':
			t.switchTo(ScriptDataEscapedLessThanSign)
			return true
		case '>':
			t.emitChar('>', loc)
			t.switchTo(ScriptData)
			return true
		case 0:
			t.errorAt("unexpected-null-character", loc)
			t.emitChar(0xFFFD, loc)
			t.switchTo(ScriptDataEscaped)
			return true
		}
	}
	if cp.Kind != htmlinput.Scalar {
		t.emitChar(0xFFFD, loc)
		t.switchTo(ScriptDataEscaped)
		return true
	}
	t.emitChar(cp.R, loc)
	t.switchTo(ScriptDataEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataEscapedLessThanSign(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar {
		switch {
		case cp.R == '/':
			t.tempBuf = t.tempBuf[:0]
			t.switchTo(ScriptDataEscapedEndTagOpen)
			return true
		case isAsciiAlpha(cp.R):
			t.emitChar('<', loc)
			t.tempBuf = t.tempBuf[:0]
			t.reconsume(ScriptDataDoubleEscapeStart, cp, loc)
			return true
		}
	}
	t.emitChar('<', loc)
	t.reconsume(ScriptDataEscaped, cp, loc)
	return true
}

// stepScriptDataDoubleEscapeStart matches the fixed keyword "script"
// case-insensitively, character by character, via tempBuf — the spec's
// own algorithm for this state, not a collapse of it.
func (t *Tokenizer) stepScriptDataDoubleEscapeStart(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar {
		switch {
		case cp.R == '\t' || cp.R == '\n' || cp.R == '\f' || cp.R == ' ' || cp.R == '/' || cp.R == '>':
			t.emitChar(cp.R, loc)
			if strings.EqualFold(string(t.tempBuf), "script") {
				t.switchTo(ScriptDataDoubleEscaped)
			} else {
				t.switchTo(ScriptDataEscaped)
			}
			return true
		case isAsciiAlpha(cp.R):
			t.tempBuf = append(t.tempBuf, cp.R)
			t.emitChar(cp.R, loc)
			return true
		}
	}
	t.reconsume(ScriptDataEscaped, cp, loc)
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscaped(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-script-html-comment-like-text", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.emitChar(0xFFFD, loc)
		return true
	}
	switch cp.R {
	case '-':
		t.emitChar('-', loc)
		t.switchTo(ScriptDataDoubleEscapedDash)
	case '<':
		t.emitChar('<', loc)
		t.switchTo(ScriptDataDoubleEscapedLessThanSign)
	case 0:
		t.errorAt("unexpected-null-character", loc)
		t.emitChar(0xFFFD, loc)
	default:
		t.emitChar(cp.R, loc)
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDash(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-script-html-comment-like-text", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch cp.R {
		case '-':
			t.emitChar('-', loc)
			t.switchTo(ScriptDataDoubleEscapedDashDash)
			return true
		case '<':
			t.emitChar('<', loc)
			t.switchTo(ScriptDataDoubleEscapedLessThanSign)
			return true
		case 0:
			t.errorAt("unexpected-null-character", loc)
			t.emitChar(0xFFFD, loc)
			t.switchTo(ScriptDataDoubleEscaped)
			return true
		}
	}
	if cp.Kind != htmlinput.Scalar {
		t.emitChar(0xFFFD, loc)
		t.switchTo(ScriptDataDoubleEscaped)
		return true
	}
	t.emitChar(cp.R, loc)
	t.switchTo(ScriptDataDoubleEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDashDash(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-script-html-comment-like-text", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch cp.R {
		case '-':
			t.emitChar('-', loc)
			return true
		case '<':
			t.emitChar('<', loc)
			t.switchTo(ScriptDataDoubleEscapedLessThanSign)
			return true
		case '>':
			t.emitChar('>', loc)
			t.switchTo(ScriptData)
			return true
		case 0:
			t.errorAt("unexpected-null-character", loc)
			t.emitChar(0xFFFD, loc)
			t.switchTo(ScriptDataDoubleEscaped)
			return true
		}
	}
	if cp.Kind != htmlinput.Scalar {
		t.emitChar(0xFFFD, loc)
		t.switchTo(ScriptDataDoubleEscaped)
		return true
	}
	t.emitChar(cp.R, loc)
	t.switchTo(ScriptDataDoubleEscaped)
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedLessThanSign(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar && cp.R == '/' {
		t.tempBuf = t.tempBuf[:0]
		t.emitChar('/', loc)
		t.switchTo(ScriptDataDoubleEscapeEnd)
		return true
	}
	t.reconsume(ScriptDataDoubleEscaped, cp, loc)
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapeEnd(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar {
		switch {
		case cp.R == '\t' || cp.R == '\n' || cp.R == '\f' || cp.R == ' ' || cp.R == '/' || cp.R == '>':
			t.emitChar(cp.R, loc)
			if strings.EqualFold(string(t.tempBuf), "script") {
				t.switchTo(ScriptDataEscaped)
			} else {
				t.switchTo(ScriptDataDoubleEscaped)
			}
			return true
		case isAsciiAlpha(cp.R):
			t.tempBuf = append(t.tempBuf, cp.R)
			t.emitChar(cp.R, loc)
			return true
		}
	}
	t.reconsume(ScriptDataDoubleEscaped, cp, loc)
	return true
}
