package jsbuilder

import (
	"github.com/cwbudde/webfrontend/internal/jsast"
)

func init() {
	registerV(RuleMemberExpression, actMemberExpression)
	registerV(RuleMemberExpressionComputed, actMemberExpressionComputed)

	registerV(RuleArgumentsEmpty, func(b *Builder) {
		_, end := b.check(")")
		start, _ := b.check("(")
		b.pushList(nil, start, end)
	})
	registerV(RuleArguments, func(b *Builder) {
		_, end := b.check(")")
		list, _, _ := b.popList()
		start, _ := b.check("(")
		b.pushList(list, start, end)
	})
	registerV(RuleArgumentsComma, func(b *Builder) {
		_, end := b.check(")")
		b.check(",")
		list, _, _ := b.popList()
		start, _ := b.check("(")
		b.pushList(list, start, end)
	})
	registerV(RuleArgumentListRest, func(b *Builder) {
		argument, _, end := b.popNode()
		start, _ := b.check("...")
		node := makeNode(jsast.SpreadElement, start, end)
		node.Argument = argument
		b.pushList([]*jsast.Node{node}, start, end)
	})
	registerV(RuleArgumentListAppend, func(b *Builder) {
		argument, _, end := b.popNode()
		restStart, _ := b.check("...")
		b.check(",")
		list, start, _ := b.popList()
		node := makeNode(jsast.SpreadElement, restStart, end)
		node.Argument = argument
		list = append(list, node)
		b.pushList(list, start, end)
	})

	registerV(RuleCallExpression, actCallExpression)
	registerV(RuleNewExpression, actNewExpression)
	registerV(RuleTaggedTemplateExpr, actTaggedTemplateExpression)

	registerV(RuleAssignmentExpression, actAssignmentExpression)
	registerV(RuleConditionalExpression, actConditionalExpression)
	registerV(RuleBinaryExpression, actBinaryExpression)
	registerV(RuleLogicalExpression, actLogicalExpression)
	registerV(RuleUnaryExpression, actUnaryExpression)
	registerV(RuleUpdateExpressionPrefix, func(b *Builder) { actUpdateExpression(b, true) })
	registerV(RuleUpdateExpressionSuffix, func(b *Builder) { actUpdateExpression(b, false) })
	registerV(RuleSequenceExpression, actSequenceExpression)

	registerV(RuleArrowFunction, func(b *Builder) { actArrowFunction(b, false) })
	registerV(RuleAsyncArrowFunction, func(b *Builder) { actArrowFunction(b, true) })
	registerV(RuleAsyncArrowFunctionSingle, actAsyncArrowFunctionSingleParam)
	registerV(RuleFunctionExpression, actFunctionExpression)

	registerV(RuleYieldExpressionNoArgument, func(b *Builder) { actYieldExpression(b, false, false) })
	registerV(RuleYieldExpression, func(b *Builder) { actYieldExpression(b, true, false) })
	registerV(RuleYieldDelegateExpression, func(b *Builder) { actYieldExpression(b, true, true) })
	registerV(RuleAwaitExpression, actAwaitExpression)
	registerV(RuleNewTarget, actNewTarget)
	registerV(RuleImportMeta, actImportMeta)
}

func actMemberExpression(b *Builder) {
	property, _, end := b.popNode()
	b.check(".")
	object, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.MemberExpression, Object: object, PropertyNode: property, Computed: false}, start, end)
}

func actMemberExpressionComputed(b *Builder) {
	_, end := b.check("]")
	property, _, _ := b.popNode()
	b.check("[")
	object, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.MemberExpression, Object: object, PropertyNode: property, Computed: true}, start, end)
}

func actCallExpression(b *Builder) {
	arguments, _, end := b.popList()
	callee, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.CallExpression, Callee: callee, Arguments: arguments}, start, end)
}

func actNewExpression(b *Builder) {
	arguments, _, end := b.popList()
	callee, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.NewExpression, Callee: callee, Arguments: arguments}, start, end)
}

func actTaggedTemplateExpression(b *Builder) {
	quasi, _, end := b.popNode()
	tag, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.TaggedTemplateExpression, Tag: tag, Quasi: quasi}, start, end)
}

// actAssignmentExpression applies IntoPattern to the left-hand side:
// an ObjectExpression/ArrayExpression there must cover an
// AssignmentPattern, per "13.15.1 Static Semantics: Early Errors" in
// ECMA-262.
func actAssignmentExpression(b *Builder) {
	right, _, end := b.popNode()
	operator, _, _ := b.popToken()
	left, start, _ := b.popNode()
	left = intoPattern(left)
	b.pushNode(&jsast.Node{Kind: jsast.AssignmentExpression, Operator: operator, Left: left, Right: right}, start, end)
}

func actConditionalExpression(b *Builder) {
	alternate, _, end := b.popNode()
	b.check(":")
	consequent, _, _ := b.popNode()
	b.check("?")
	test, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.ConditionalExpression, Test: test, Consequent: consequent, Alternate: alternate}, start, end)
}

func actBinaryExpression(b *Builder) {
	right, _, end := b.popNode()
	operator, _, _ := b.popToken()
	left, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.BinaryExpression, Operator: operator, Left: left, Right: right}, start, end)
}

func actLogicalExpression(b *Builder) {
	right, _, end := b.popNode()
	operator, _, _ := b.popToken()
	left, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.LogicalExpression, Operator: operator, Left: left, Right: right}, start, end)
}

func actUnaryExpression(b *Builder) {
	argument, _, end := b.popNode()
	operator, start, _ := b.popToken()
	b.pushNode(&jsast.Node{Kind: jsast.UnaryExpression, Operator: operator, Prefix: true, Argument: argument}, start, end)
}

func actUpdateExpression(b *Builder, prefix bool) {
	if prefix {
		argument, _, end := b.popNode()
		operator, start, _ := b.popToken()
		b.pushNode(&jsast.Node{Kind: jsast.UpdateExpression, Operator: operator, Prefix: true, Argument: argument}, start, end)
		return
	}
	operator, _, end := b.popToken()
	argument, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.UpdateExpression, Operator: operator, Prefix: false, Argument: argument}, start, end)
}

// actSequenceExpression flattens a nested left-associative chain of
// comma expressions into a single SequenceExpression, matching how a
// SequenceExpression already on the left absorbs further commas rather
// than nesting.
func actSequenceExpression(b *Builder) {
	expr2, _, end := b.popNode()
	b.check(",")
	expr1, start, _ := b.popNode()
	var expressions []*jsast.Node
	if expr1.Kind == jsast.SequenceExpression {
		expressions = append(append([]*jsast.Node{}, expr1.Expressions...), expr2)
	} else {
		expressions = []*jsast.Node{expr1, expr2}
	}
	b.pushNode(&jsast.Node{Kind: jsast.SequenceExpression, Expressions: expressions}, start, end)
}

// actArrowFunction takes the parameter list as the ParamList reductions
// left it; those already ran each parameter through intoPattern.
func actArrowFunction(b *Builder, isAsync bool) {
	body, _, end := b.popNode()
	b.check("=>")
	params, start, _ := b.popList()
	b.pushNode(&jsast.Node{Kind: jsast.ArrowFunctionExpression, Params: params, BodyStmt: body, Async: isAsync}, start, end)
}

func actAsyncArrowFunctionSingleParam(b *Builder) {
	body, _, end := b.popNode()
	b.check("=>")
	param, _, _ := b.popNode()
	start, _ := b.check("async")
	b.pushNode(&jsast.Node{Kind: jsast.ArrowFunctionExpression, Params: []*jsast.Node{param}, BodyStmt: body, Async: true}, start, end)
}

func actFunctionExpression(b *Builder) {
	funcBody, _, end := b.popNode()
	b.check(")")
	params, _, _ := b.popList()
	b.check("(")
	id, _, _ := b.popNode()
	start, _ := b.check("function")
	b.pushNode(&jsast.Node{Kind: jsast.FunctionExpression, Id: id, Params: params, BodyStmt: funcBody}, start, end)
}

func actYieldExpression(b *Builder, hasArgument, delegate bool) {
	if !hasArgument {
		start, end := b.check("yield")
		b.pushNode(&jsast.Node{Kind: jsast.YieldExpression, Delegate: false}, start, end)
		return
	}
	argument, _, end := b.popNode()
	if delegate {
		b.check("*")
	}
	start, _ := b.check("yield")
	b.pushNode(&jsast.Node{Kind: jsast.YieldExpression, Argument: argument, Delegate: delegate}, start, end)
}

func actAwaitExpression(b *Builder) {
	argument, _, end := b.popNode()
	start, _ := b.check("await")
	b.pushNode(&jsast.Node{Kind: jsast.AwaitExpression, Argument: argument}, start, end)
}

// actNewTarget and actImportMeta build the two MetaProperty forms this
// grammar supports; "new.target"/"import.meta" are the only
// MetaProperty productions, so the keyword-dot-identifier order below
// is fixed rather than table-driven.
func actNewTarget(b *Builder) {
	_, propEnd := b.check("target")
	b.check(".")
	start, _ := b.check("new")
	b.pushNode(&jsast.Node{Kind: jsast.MetaProperty, MetaName: "new", PropName: "target"}, start, propEnd)
}

func actImportMeta(b *Builder) {
	_, propEnd := b.check("meta")
	b.check(".")
	start, _ := b.check("import")
	b.pushNode(&jsast.Node{Kind: jsast.MetaProperty, MetaName: "import", PropName: "meta"}, start, propEnd)
}
