package jsbuilder

import (
	"github.com/cwbudde/webfrontend/internal/jsast"
	"github.com/cwbudde/webfrontend/internal/token"
)

func init() {
	registerV(RuleOptionalCallStart, actOptionalCallStart)
	registerV(RuleOptionalMemberStart, actOptionalMemberStart)
	registerV(RuleOptionalComputedMemberStart, actOptionalComputedMemberStart)
	registerV(RuleOptionalChainAppendCall, actOptionalChainAppendCall)
	registerV(RuleOptionalChainAppendMember, actOptionalChainAppendMember)
	registerV(RuleOptionalChainAppendComputed, actOptionalChainAppendComputed)
	registerV(RuleOptionalExpression, actOptionalExpression)
}

// The segments below are pseudo-nodes (jsast.OptionalCallSegment /
// OptionalMemberSegment): never real ESTree nodes, always folded away
// by actOptionalExpression before the tree is handed back. They borrow
// Arguments/PropertyNode/Computed off jsast.Node purely as scratch
// storage for the one segment they each represent.

func actOptionalCallStart(b *Builder) {
	arguments, _, end := b.popList()
	start, _ := b.check("?.")
	seg := makeNode(jsast.OptionalCallSegment, start, end)
	seg.Arguments = arguments
	b.pushList([]*jsast.Node{seg}, start, end)
}

func actOptionalMemberStart(b *Builder) {
	property, _, end := b.popNode()
	start, _ := b.check("?.")
	seg := makeNode(jsast.OptionalMemberSegment, start, end)
	seg.PropertyNode = property
	seg.Computed = false
	b.pushList([]*jsast.Node{seg}, start, end)
}

func actOptionalComputedMemberStart(b *Builder) {
	_, end := b.check("]")
	property, _, _ := b.popNode()
	b.check("[")
	start, _ := b.check("?.")
	seg := makeNode(jsast.OptionalMemberSegment, start, end)
	seg.PropertyNode = property
	seg.Computed = true
	b.pushList([]*jsast.Node{seg}, start, end)
}

func actOptionalChainAppendCall(b *Builder) {
	arguments, _, end := b.popList()
	list, start, _ := b.popList()
	seg := makeNode(jsast.OptionalCallSegment, token.Location{}, end)
	seg.Arguments = arguments
	list = append(list, seg)
	b.pushList(list, start, end)
}

func actOptionalChainAppendMember(b *Builder) {
	property, _, end := b.popNode()
	b.check(".")
	list, start, _ := b.popList()
	seg := makeNode(jsast.OptionalMemberSegment, token.Location{}, end)
	seg.PropertyNode = property
	seg.Computed = false
	list = append(list, seg)
	b.pushList(list, start, end)
}

func actOptionalChainAppendComputed(b *Builder) {
	_, end := b.check("]")
	property, _, _ := b.popNode()
	b.check("[")
	list, start, _ := b.popList()
	seg := makeNode(jsast.OptionalMemberSegment, token.Location{}, end)
	seg.PropertyNode = property
	seg.Computed = true
	list = append(list, seg)
	b.pushList(list, start, end)
}

// actOptionalExpression folds the accumulated chain of
// OptionalCallSegment/OptionalMemberSegment pseudo-nodes into real
// CallExpression/MemberExpression nodes left to right, wrapping the
// result in a ChainExpression. Only the first segment carries
// optional: true; later segments in the same chain are reached through
// that first short-circuit point, so they are never themselves
// optional even when written with another `?.`.
func actOptionalExpression(b *Builder) {
	chains, _, end := b.popList()
	expr, start, _ := b.popNode()
	optional := true
	if expr.Kind == jsast.ChainExpression {
		expr = expr.Expression
		optional = false
	}
	for _, seg := range chains {
		switch seg.Kind {
		case jsast.OptionalCallSegment:
			expr = &jsast.Node{
				Kind: jsast.CallExpression, Callee: expr, Arguments: seg.Arguments, Optional: optional,
				Start: start.Offset, End: seg.End, Loc: jsast.Loc{Start: start, End: seg.Loc.End},
			}
		case jsast.OptionalMemberSegment:
			expr = &jsast.Node{
				Kind: jsast.MemberExpression, Object: expr, PropertyNode: seg.PropertyNode, Computed: seg.Computed, Optional: optional,
				Start: start.Offset, End: seg.End, Loc: jsast.Loc{Start: start, End: seg.Loc.End},
			}
		}
		optional = false
	}
	b.pushNode(&jsast.Node{Kind: jsast.ChainExpression, Expression: expr}, start, end)
}
