package jsbuilder

import (
	"strconv"
	"strings"

	"github.com/cwbudde/webfrontend/internal/jsast"
)

func init() {
	registerV(RuleIdentifier, actIdentifier)
	registerV(RuleSuper, actSuper)
	registerV(RuleNullLiteral, actNullLiteral)
	registerV(RuleTrueLiteral, func(b *Builder) { actBoolLiteral(b, true) })
	registerV(RuleFalseLiteral, func(b *Builder) { actBoolLiteral(b, false) })
	registerV(RuleNumericLiteral, actNumericLiteral)
	registerV(RuleStringLiteral, actStringLiteral)
	registerV(RuleRegExpLiteral, actRegExpLiteral)
}

func actIdentifier(b *Builder) {
	name, start, end := b.popToken()
	b.pushNode(&jsast.Node{Kind: jsast.Identifier, Name: name}, start, end)
}

func actSuper(b *Builder) {
	start, end := b.check("super")
	b.pushNode(&jsast.Node{Kind: jsast.Super}, start, end)
}

func actNullLiteral(b *Builder) {
	raw, start, end := b.popToken()
	b.pushNode(&jsast.Node{Kind: jsast.Literal, Raw: raw, Value: jsast.LiteralValue{Kind: jsast.LitNull}}, start, end)
}

func actBoolLiteral(b *Builder, v bool) {
	raw, start, end := b.popToken()
	b.pushNode(&jsast.Node{Kind: jsast.Literal, Raw: raw, Value: jsast.LiteralValue{Kind: jsast.LitBool, Bool: v}}, start, end)
}

// actNumericLiteral resolves 0b/0o/0x radix prefixes, detects the "n"
// BigInt suffix, and otherwise parses as a float, per SPEC_FULL.md
// §4.4's literal-construction action catalogue.
func actNumericLiteral(b *Builder) {
	raw, start, end := b.popToken()
	lexeme := strings.ReplaceAll(raw, "_", "")

	if strings.HasSuffix(lexeme, "n") {
		digits := lexeme[:len(lexeme)-1]
		b.pushNode(&jsast.Node{
			Kind: jsast.Literal, Raw: raw,
			Value: jsast.LiteralValue{Kind: jsast.LitBigInt, BigIntDigits: normalizeBigIntDigits(digits)},
		}, start, end)
		return
	}

	var f float64
	switch {
	case strings.HasPrefix(lexeme, "0b") || strings.HasPrefix(lexeme, "0B"):
		n, _ := strconv.ParseUint(lexeme[2:], 2, 64)
		f = float64(n)
	case strings.HasPrefix(lexeme, "0o") || strings.HasPrefix(lexeme, "0O"):
		n, _ := strconv.ParseUint(lexeme[2:], 8, 64)
		f = float64(n)
	case strings.HasPrefix(lexeme, "0x") || strings.HasPrefix(lexeme, "0X"):
		n, _ := strconv.ParseUint(lexeme[2:], 16, 64)
		f = float64(n)
	default:
		f, _ = strconv.ParseFloat(lexeme, 64)
	}
	b.pushNode(&jsast.Node{
		Kind: jsast.Literal, Raw: raw,
		Value: jsast.LiteralValue{Kind: jsast.LitNumber, Number: f},
	}, start, end)
}

// normalizeBigIntDigits converts a radix-prefixed integer literal's
// digits to plain decimal digits, since LiteralValue.BigIntDigits is
// always decimal regardless of the source radix.
func normalizeBigIntDigits(digits string) string {
	var base int
	switch {
	case strings.HasPrefix(digits, "0b") || strings.HasPrefix(digits, "0B"):
		base, digits = 2, digits[2:]
	case strings.HasPrefix(digits, "0o") || strings.HasPrefix(digits, "0O"):
		base, digits = 8, digits[2:]
	case strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X"):
		base, digits = 16, digits[2:]
	default:
		base = 10
	}
	if base == 10 {
		return digits
	}
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return digits
	}
	return strconv.FormatUint(n, 10)
}

func actStringLiteral(b *Builder) {
	raw, start, end := b.popToken()
	decoded := decodeStringLiteral(raw)
	b.pushNode(&jsast.Node{
		Kind: jsast.Literal, Raw: raw,
		Value: jsast.LiteralValue{Kind: jsast.LitString, Str: decoded},
	}, start, end)
}

// decodeStringLiteral strips the surrounding quotes and resolves the
// ECMAScript escape sequences a string literal may contain.
func decodeStringLiteral(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	return decodeEscapes(raw[1 : len(raw)-1])
}

// decodeEscapes resolves the ECMAScript escape sequences in body, shared
// by string literals and template-literal cooked values.
func decodeEscapes(body string) string {
	var sb strings.Builder
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' || i == len(runes)-1 {
			sb.WriteRune(c)
			continue
		}
		i++
		esc := runes[i]
		switch esc {
		case 'n':
			sb.WriteRune('\n')
		case 't':
			sb.WriteRune('\t')
		case 'r':
			sb.WriteRune('\r')
		case 'b':
			sb.WriteRune('\b')
		case 'f':
			sb.WriteRune('\f')
		case 'v':
			sb.WriteRune('\v')
		case '0':
			sb.WriteRune(0)
		case '\n':
			// line continuation: the escaped newline contributes nothing.
		case 'x':
			if i+2 < len(runes) {
				if n, err := strconv.ParseUint(string(runes[i+1:i+3]), 16, 32); err == nil {
					sb.WriteRune(rune(n))
					i += 2
				}
			}
		case 'u':
			if i+1 < len(runes) && runes[i+1] == '{' {
				j := i + 2
				for j < len(runes) && runes[j] != '}' {
					j++
				}
				if n, err := strconv.ParseUint(string(runes[i+2:j]), 16, 32); err == nil {
					sb.WriteRune(rune(n))
				}
				i = j
			} else if i+4 < len(runes) {
				if n, err := strconv.ParseUint(string(runes[i+1:i+5]), 16, 32); err == nil {
					sb.WriteRune(rune(n))
					i += 4
				}
			}
		default:
			sb.WriteRune(esc)
		}
	}
	return sb.String()
}

// actRegExpLiteral splits a /pattern/flags lexeme into its two parts,
// per SPEC_FULL.md §4.4.
func actRegExpLiteral(b *Builder) {
	raw, start, end := b.popToken()
	lastSlash := strings.LastIndexByte(raw, '/')
	pattern := raw[1:lastSlash]
	flags := raw[lastSlash+1:]
	b.pushNode(&jsast.Node{
		Kind: jsast.Literal, Raw: raw,
		Value: jsast.LiteralValue{Kind: jsast.LitRegExp, RegexPattern: pattern, RegexFlags: flags},
	}, start, end)
}
