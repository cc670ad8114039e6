package jsbuilder

import (
	"github.com/cwbudde/webfrontend/internal/jsast"
)

func init() {
	registerV(RuleObjectExpressionEmpty, func(b *Builder) {
		_, end := b.check("}")
		start, _ := b.check("{")
		b.pushNode(&jsast.Node{Kind: jsast.ObjectExpression}, start, end)
	})
	registerV(RuleObjectExpression, actObjectExpression)
	registerV(RulePropertyShorthand, actPropertyShorthand)
	registerV(RulePropertyValue, actPropertyValue)
	registerV(RulePropertyGet, func(b *Builder) { actPropertyAccessor(b, "get") })
	registerV(RulePropertySet, func(b *Builder) { actPropertyAccessor(b, "set") })
	registerV(RuleCoverInitializedName, actCoverInitializedName)
	registerV(RulePropertyList, actSingleElementList)
	registerV(RulePropertyListAppend, actCommaListAppend)
	registerV(RuleSpreadProperty, actSpreadProperty)

	registerV(RuleArrayExpressionEmpty, func(b *Builder) {
		_, end := b.check("]")
		start, _ := b.check("[")
		b.pushNode(&jsast.Node{Kind: jsast.ArrayExpression}, start, end)
	})
	registerV(RuleArrayExpression, func(b *Builder) {
		_, end := b.check("]")
		elements, _, _ := b.popArray()
		start, _ := b.check("[")
		b.pushNode(&jsast.Node{Kind: jsast.ArrayExpression, Elements: elements}, start, end)
	})
	registerV(RuleElementList, actSingleElementArray)
	registerV(RuleElementListAppend, actCommaArrayAppend)
	registerV(RuleElementListElision, actElision)
	registerV(RuleElisionAppend, actElisionAppend)
	registerV(RuleSpreadElement, actSpreadElementExpr)
}

func actObjectExpression(b *Builder) {
	_, end := b.check("}")
	properties, _, _ := b.popList()
	start, _ := b.check("{")
	b.pushNode(&jsast.Node{Kind: jsast.ObjectExpression, Properties: properties}, start, end)
}

func actPropertyShorthand(b *Builder) {
	key, start, end := b.popNode()
	b.pushNode(&jsast.Node{
		Kind: jsast.Property, Key: key, PropValue: key,
		PropKind: "init", Shorthand: true,
	}, start, end)
}

func actPropertyValue(b *Builder) {
	value, _, end := b.popNode()
	b.check(":")
	key, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.Property, Key: key, PropValue: value, PropKind: "init"}, start, end)
}

// actPropertyAccessor builds a getter/setter Property straight from its
// signature pieces, the same shape actMethodDefinition pops; kind is
// "get" or "set".
func actPropertyAccessor(b *Builder, kind string) {
	funcBody, _, end := b.popNode()
	b.check(")")
	params, _, _ := b.popList()
	b.check("(")
	key, _, _ := b.popNode()
	start, _ := b.check(kind)
	value := &jsast.Node{Kind: jsast.FunctionExpression, Params: params, BodyStmt: funcBody}
	b.pushNode(&jsast.Node{
		Kind: jsast.Property, Key: key, PropValue: value,
		PropKind: kind, Method: false,
	}, start, end)
}

// actCoverInitializedName builds the CoverInitializedName pseudo-node
// for `{x = 1}`: valid only inside an assignment-pattern position,
// where IntoPattern resolves it to AssignmentPattern; elsewhere it's an
// early error left for the caller to detect before it reaches MarshalJSON.
func actCoverInitializedName(b *Builder) {
	value, _, end := b.popNode()
	b.check("=")
	name, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.CoverInitializedName, Left: name, Right: value}, start, end)
}

func actSpreadProperty(b *Builder) {
	argument, _, end := b.popNode()
	start, _ := b.check("...")
	b.pushNode(&jsast.Node{Kind: jsast.SpreadElement, Argument: argument}, start, end)
}

func actSingleElementArray(b *Builder) {
	node, start, end := b.popNode()
	b.pushArray([]*jsast.Node{node}, start, end)
}

func actCommaArrayAppend(b *Builder) {
	node, _, end := b.popNode()
	b.check(",")
	array, start, _ := b.popArray()
	array = append(array, node)
	b.pushArray(array, start, end)
}

func actElision(b *Builder) {
	start, end := b.check(",")
	b.pushArray([]*jsast.Node{nil}, start, end)
}

func actElisionAppend(b *Builder) {
	_, end := b.check(",")
	array, start, _ := b.popArray()
	array = append(array, nil)
	b.pushArray(array, start, end)
}

func actSpreadElementExpr(b *Builder) {
	argument, _, end := b.popNode()
	start, _ := b.check("...")
	b.pushNode(&jsast.Node{Kind: jsast.SpreadElement, Argument: argument}, start, end)
}
