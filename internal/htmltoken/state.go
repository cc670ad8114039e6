package htmltoken

// State is one of the WHATWG HTML Living Standard §13.2.5 tokenizer
// states. The reference implementation's per-character "MaybeDoctypeN" /
// "MaybeCdataSectionN" / "MaybeDoctypePublicKeywordN" keyword-matching
// states are folded here into one state per keyword
// (MarkupDoctypeKeyword, MarkupCDATAKeyword, DoctypePublicKeywordMatch,
// DoctypeSystemKeywordMatch), each carrying its own progress index on
// the Tokenizer rather than being named per character — a single state
// value still consumes exactly one code point per NextToken step, so
// chunking the input differently never changes behavior.
type State int

const (
	Data State = iota
	RCDATA
	RAWTEXT
	ScriptData
	PLAINTEXT

	TagOpen
	EndTagOpen
	TagName

	RCDATALessThanSign
	RCDATAEndTagOpen
	RCDATAEndTagName

	RAWTEXTLessThanSign
	RAWTEXTEndTagOpen
	RAWTEXTEndTagName

	ScriptDataLessThanSign
	ScriptDataEndTagOpen
	ScriptDataEndTagName
	ScriptDataEscapeStart
	ScriptDataEscapeStartDash
	ScriptDataEscaped
	ScriptDataEscapedDash
	ScriptDataEscapedDashDash
	ScriptDataEscapedLessThanSign
	ScriptDataEscapedEndTagOpen
	ScriptDataEscapedEndTagName
	ScriptDataDoubleEscapeStart
	ScriptDataDoubleEscaped
	ScriptDataDoubleEscapedDash
	ScriptDataDoubleEscapedDashDash
	ScriptDataDoubleEscapedLessThanSign
	ScriptDataDoubleEscapeEnd

	BeforeAttributeName
	AttributeName
	AfterAttributeName
	BeforeAttributeValue
	AttributeValueDoubleQuoted
	AttributeValueSingleQuoted
	AttributeValueUnquoted
	AfterAttributeValueQuoted
	SelfClosingStartTag

	BogusComment
	MarkupDeclarationOpen
	MarkupCommentDash
	MarkupDoctypeKeyword
	MarkupCDATAKeyword
	CommentStart
	CommentStartDash
	CommentState
	CommentLessThanSign
	CommentLessThanSignBang
	CommentLessThanSignBangDash
	CommentLessThanSignBangDashDash
	CommentEndDash
	CommentEnd
	CommentEndBang

	Doctype
	BeforeDoctypeName
	DoctypeName
	AfterDoctypeName
	DoctypePublicKeywordMatch
	DoctypeSystemKeywordMatch
	AfterDoctypePublicKeyword
	BeforeDoctypePublicIdentifier
	DoctypePublicIdentifierDoubleQuoted
	DoctypePublicIdentifierSingleQuoted
	AfterDoctypePublicIdentifier
	BetweenDoctypePublicAndSystemIdentifiers
	AfterDoctypeSystemKeyword
	BeforeDoctypeSystemIdentifier
	DoctypeSystemIdentifierDoubleQuoted
	DoctypeSystemIdentifierSingleQuoted
	AfterDoctypeSystemIdentifier
	BogusDoctype

	CDATASection
	CDATASectionBracket
	CDATASectionEnd

	CharacterReference
	NamedCharacterReference
	AmbiguousAmpersand
	NumericCharacterReference
	HexadecimalCharacterReferenceStart
	DecimalCharacterReferenceStart
	HexadecimalCharacterReference
	DecimalCharacterReference
	NumericCharacterReferenceEnd

	End
)
