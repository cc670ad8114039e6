package jsbuilder

import (
	"github.com/cwbudde/webfrontend/internal/jsast"
	"github.com/cwbudde/webfrontend/internal/token"
)

// Delimiter lengths for the four lexical shapes a template fragment can
// take, in UTF-16 units: a bare `` `text` `` literal strips one
// backtick off each end; a `` `head${ `` opener strips one backtick and
// two chars (`${`); a `` }mid${ `` middle strips one char (`}`) off
// each end plus the two-char `${` on the right; a `` }tail` `` closer
// strips one `}` and one backtick.
const (
	templateStartLen     = 1
	templateEndLen       = 1
	templateSubstStartLen = 2
	templateSubstEndLen   = 1
)

func init() {
	registerV(RuleTemplateLiteralNoSubst, actTemplateLiteralNoSubst)
	registerV(RuleTemplateMiddleList, actTemplateMiddleList)
	registerV(RuleTemplateMiddleAppend, actTemplateMiddleAppend)
	registerV(RuleTemplateSpansTail, actTemplateSpansTail)
	registerV(RuleTemplateLiteral, actTemplateLiteral)
}

func advanceN(loc token.Location, n int) token.Location {
	return token.Location{Offset: loc.Offset + n, Line: loc.Line, Column: loc.Column + n}
}

func backwardN(loc token.Location, n int) token.Location {
	return token.Location{Offset: loc.Offset - n, Line: loc.Line, Column: loc.Column - n}
}

func makeTemplateElement(raw string, start, end token.Location, tail bool) *jsast.Node {
	n := makeNode(jsast.TemplateElement, start, end)
	n.Raw = raw
	n.Tail = tail
	n.Value = jsast.LiteralValue{Kind: jsast.LitString, Str: decodeEscapes(raw)}
	return n
}

func actTemplateLiteralNoSubst(b *Builder) {
	raw, start, end := b.popToken()
	content := raw[templateStartLen : len(raw)-templateEndLen]
	elStart := advanceN(start, templateStartLen)
	elEnd := backwardN(end, templateEndLen)
	element := makeTemplateElement(content, elStart, elEnd, true)
	b.pushNode(&jsast.Node{Kind: jsast.TemplateLiteral, Quasis: []*jsast.Node{element}, Expressions: nil}, start, end)
}

// actTemplateMiddleList starts a substitution chain: the opening
// `` `head${ `` fragment plus its first substitution expression. The
// result is an interleaved [quasi, expr, quasi, expr, ...] list that
// later MiddleAppend/SpansTail reduces keep extending left to right —
// a simpler, equivalent restatement of the distilled grammar's
// separate quasis/expressions accumulators, chosen since this
// package's own event driver produces these reductions in document
// order rather than a parser generator's derivation order.
func actTemplateMiddleList(b *Builder) {
	expr, _, end := b.popNode()
	raw, start, tokenEnd := b.popToken()
	content := raw[templateStartLen : len(raw)-templateSubstStartLen]
	elStart := advanceN(start, templateStartLen)
	elEnd := backwardN(tokenEnd, templateSubstStartLen)
	element := makeTemplateElement(content, elStart, elEnd, false)
	b.pushList([]*jsast.Node{element, expr}, start, end)
}

func actTemplateMiddleAppend(b *Builder) {
	expr, _, end := b.popNode()
	raw, tokenStart, tokenEnd := b.popToken()
	list, start, _ := b.popList()
	content := raw[templateSubstEndLen : len(raw)-templateSubstStartLen]
	elStart := advanceN(tokenStart, templateSubstEndLen)
	elEnd := backwardN(tokenEnd, templateSubstStartLen)
	element := makeTemplateElement(content, elStart, elEnd, false)
	list = append(list, element, expr)
	b.pushList(list, start, end)
}

func actTemplateSpansTail(b *Builder) {
	raw, tokenStart, end := b.popToken()
	list, start, _ := b.popList()
	content := raw[templateSubstEndLen : len(raw)-templateEndLen]
	elStart := advanceN(tokenStart, templateSubstEndLen)
	elEnd := backwardN(end, templateEndLen)
	tailElement := makeTemplateElement(content, elStart, elEnd, true)
	list = append(list, tailElement)
	quasis, expressions := splitInterleaved(list)
	b.pushNode(&jsast.Node{Kind: jsast.TemplateLiteral, Quasis: quasis, Expressions: expressions}, start, end)
}

// actTemplateLiteral is a no-op pass-through: by the time a
// TemplateSpansTail reduce has already produced the finished
// TemplateLiteral node, TemplateLiteral simply accepts it — kept as
// its own rule so a driver can always reduce "TemplateLiteral" at the
// top of a template regardless of how many substitutions it had.
func actTemplateLiteral(b *Builder) {
	node, start, end := b.popNode()
	b.pushNode(node, start, end)
}

func splitInterleaved(list []*jsast.Node) (quasis, expressions []*jsast.Node) {
	for i, n := range list {
		if i%2 == 0 {
			quasis = append(quasis, n)
		} else {
			expressions = append(expressions, n)
		}
	}
	return quasis, expressions
}
