package htmltoken

import (
	"github.com/cwbudde/webfrontend/internal/htmlinput"
	"github.com/cwbudde/webfrontend/internal/token"
)

func isSpace(r rune) bool { return r == '\t' || r == '\n' || r == '\f' || r == ' ' }

func (t *Tokenizer) stepBeforeAttributeName(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.reconsume(AfterAttributeName, cp, loc)
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch {
		case isSpace(cp.R):
			return true
		case cp.R == '/' || cp.R == '>':
			t.reconsume(AfterAttributeName, cp, loc)
			return true
		case cp.R == '=':
			t.errorAt("unexpected-equals-sign-before-attribute-name", loc)
			t.finishAttr()
			t.startAttr()
			t.attrName = append(t.attrName, cp.R)
			t.switchTo(AttributeName)
			return true
		}
	}
	t.finishAttr()
	t.startAttr()
	t.reconsume(AttributeName, cp, loc)
	return true
}

func (t *Tokenizer) stepAttributeName(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.reconsume(AfterAttributeName, cp, loc)
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch {
		case isSpace(cp.R) || cp.R == '/' || cp.R == '>':
			t.reconsume(AfterAttributeName, cp, loc)
			return true
		case cp.R == '=':
			t.switchTo(BeforeAttributeValue)
			return true
		case cp.R == 0:
			t.errorAt("unexpected-null-character", loc)
			t.attrName = append(t.attrName, 0xFFFD)
			return true
		case cp.R == '"' || cp.R == '\'' || cp.R == '<':
			t.errorAt("unexpected-character-in-attribute-name", loc)
			t.attrName = append(t.attrName, cp.R)
			return true
		default:
			t.attrName = append(t.attrName, toLowerASCII(cp.R))
			return true
		}
	}
	t.attrName = append(t.attrName, 0xFFFD)
	return true
}

func (t *Tokenizer) stepAfterAttributeName(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-tag", loc)
		t.finishAttr()
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch {
		case isSpace(cp.R):
			return true
		case cp.R == '/':
			t.finishAttr()
			t.switchTo(SelfClosingStartTag)
			return true
		case cp.R == '=':
			t.switchTo(BeforeAttributeValue)
			return true
		case cp.R == '>':
			t.finishAttr()
			t.emitTag()
			t.switchTo(Data)
			return true
		}
	}
	t.finishAttr()
	t.startAttr()
	t.reconsume(AttributeName, cp, loc)
	return true
}

func (t *Tokenizer) stepBeforeAttributeValue(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.Scalar {
		switch {
		case isSpace(cp.R):
			return true
		case cp.R == '"':
			t.switchTo(AttributeValueDoubleQuoted)
			return true
		case cp.R == '\'':
			t.switchTo(AttributeValueSingleQuoted)
			return true
		case cp.R == '>':
			t.errorAt("missing-attribute-value", loc)
			t.finishAttr()
			t.emitTag()
			t.switchTo(Data)
			return true
		}
	}
	t.reconsume(AttributeValueUnquoted, cp, loc)
	return true
}

func (t *Tokenizer) stepAttributeValueQuoted(cp htmlinput.CodePoint, loc token.Location, quote rune) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-tag", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.attrValue = append(t.attrValue, 0xFFFD)
		return true
	}
	switch {
	case cp.R == quote:
		t.switchTo(AfterAttributeValueQuoted)
	case cp.R == '&':
		t.retTo = t.state
		t.inAttr = true
		t.charRefStart = loc
		t.resolver.Reset()
		t.switchTo(CharacterReference)
	case cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.attrValue = append(t.attrValue, 0xFFFD)
	default:
		t.attrValue = append(t.attrValue, cp.R)
	}
	return true
}

func (t *Tokenizer) stepAttributeValueUnquoted(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-tag", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind != htmlinput.Scalar {
		t.attrValue = append(t.attrValue, 0xFFFD)
		return true
	}
	switch {
	case isSpace(cp.R):
		t.switchTo(BeforeAttributeName)
	case cp.R == '&':
		t.retTo = AttributeValueUnquoted
		t.inAttr = true
		t.charRefStart = loc
		t.resolver.Reset()
		t.switchTo(CharacterReference)
	case cp.R == '>':
		t.finishAttr()
		t.emitTag()
		t.switchTo(Data)
	case cp.R == 0:
		t.errorAt("unexpected-null-character", loc)
		t.attrValue = append(t.attrValue, 0xFFFD)
	case cp.R == '"' || cp.R == '\'' || cp.R == '<' || cp.R == '=' || cp.R == '`':
		t.errorAt("unexpected-character-in-unquoted-attribute-value", loc)
		t.attrValue = append(t.attrValue, cp.R)
	default:
		t.attrValue = append(t.attrValue, cp.R)
	}
	return true
}

func (t *Tokenizer) stepAfterAttributeValueQuoted(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-tag", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar {
		switch {
		case isSpace(cp.R):
			t.finishAttr()
			t.switchTo(BeforeAttributeName)
			return true
		case cp.R == '/':
			t.finishAttr()
			t.switchTo(SelfClosingStartTag)
			return true
		case cp.R == '>':
			t.finishAttr()
			t.emitTag()
			t.switchTo(Data)
			return true
		}
	}
	t.errorAt("missing-whitespace-between-attributes", loc)
	t.finishAttr()
	t.reconsume(BeforeAttributeName, cp, loc)
	return true
}

func (t *Tokenizer) stepSelfClosingStartTag(cp htmlinput.CodePoint, loc token.Location) bool {
	if cp.Kind == htmlinput.EOF {
		t.errorAt("eof-in-tag", loc)
		t.emitEnd()
		return true
	}
	if cp.Kind == htmlinput.Scalar && cp.R == '>' {
		t.selfClosing = true
		t.emitTag()
		t.switchTo(Data)
		return true
	}
	t.errorAt("unexpected-solidus-in-tag", loc)
	t.reconsume(BeforeAttributeName, cp, loc)
	return true
}
