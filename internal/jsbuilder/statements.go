package jsbuilder

import (
	"github.com/cwbudde/webfrontend/internal/jsast"
	"github.com/cwbudde/webfrontend/internal/token"
)

func init() {
	registerV(RuleEmptyScript, func(b *Builder) { actProgram(b, "script", nil) })
	registerV(RuleScript, func(b *Builder) {
		body, _, _ := b.popList()
		actProgram(b, "script", body)
	})
	registerV(RuleEmptyModule, func(b *Builder) { actProgram(b, "module", nil) })
	registerV(RuleModule, func(b *Builder) {
		body, _, _ := b.popList()
		actProgram(b, "module", body)
	})

	registerV(RuleVariableDeclaration, actVariableDeclaration)
	registerV(RuleVariableDeclarator, actVariableDeclarator)
	registerV(RuleVariableDeclaratorInit, actVariableDeclaratorInit)

	registerV(RuleEmptyStatement, actEmptyStatement)
	registerV(RuleExpressionStatement, actExpressionStatement)
	registerV(RuleBlockStatementEmpty, func(b *Builder) { actBlockStatement(b, false) })
	registerV(RuleBlockStatement, func(b *Builder) { actBlockStatement(b, true) })
	registerV(RuleIfStatement, actIfStatement)
	registerV(RuleIfElseStatement, actIfElseStatement)
	registerV(RuleWhileStatement, actWhileStatement)
	registerV(RuleDoWhileStatement, actDoWhileStatement)

	registerV(RuleForStatementEmpty, func(b *Builder) { actForStatement(b, false, false, false) })
	registerV(RuleForStatementNoInit, func(b *Builder) { actForStatement(b, false, true, true) })
	registerV(RuleForStatementNoTest, func(b *Builder) { actForStatement(b, true, false, true) })
	registerV(RuleForStatementNoUpdate, func(b *Builder) { actForStatement(b, true, true, false) })
	registerV(RuleForStatementNoInitTest, func(b *Builder) { actForStatement(b, false, false, true) })
	registerV(RuleForStatementNoInitUpdate, func(b *Builder) { actForStatement(b, false, true, false) })
	registerV(RuleForStatementNoTestUpdate, func(b *Builder) { actForStatement(b, true, false, false) })
	registerV(RuleForStatement, func(b *Builder) { actForStatement(b, true, true, true) })

	registerV(RuleForInStatement, func(b *Builder) { actForInOf(b, jsast.ForInStatement, false) })
	registerV(RuleForOfStatement, func(b *Builder) { actForInOf(b, jsast.ForOfStatement, false) })
	registerV(RuleForOfStatementAwait, func(b *Builder) { actForInOf(b, jsast.ForOfStatement, true) })

	registerV(RuleReturnStatementNoArgument, func(b *Builder) { actReturnStatement(b, false) })
	registerV(RuleReturnStatement, func(b *Builder) { actReturnStatement(b, true) })

	registerV(RuleFunctionDeclaration, func(b *Builder) { actFunctionDeclaration(b, false, false) })
	registerV(RuleGeneratorDeclaration, func(b *Builder) { actFunctionDeclaration(b, true, false) })
	registerV(RuleAsyncFunctionDeclaration, func(b *Builder) { actFunctionDeclaration(b, false, true) })
	registerV(RuleAsyncGeneratorDeclaration, func(b *Builder) { actFunctionDeclaration(b, true, true) })

	registerV(RuleFunctionBodyEmpty, func(b *Builder) { actBlockStatement(b, false) })
	registerV(RuleFunctionBody, func(b *Builder) { actBlockStatement(b, true) })

	registerV(RuleParamListEmpty, func(b *Builder) { b.pushList(nil, b.location, b.location) })
	registerV(RuleParamList, actParamListSingle)
	registerV(RuleParamListAppend, actParamListAppend)
	registerV(RuleParamListRest, actRestIntoList)

	registerV(RuleStatementList, actSingleElementList)
	registerV(RuleStatementListAppend, actPlainListAppend)

	registerV(RuleBreakStatementNoLabel, func(b *Builder) { actBreakContinue(b, jsast.BreakStatement, "break", false) })
	registerV(RuleBreakStatement, func(b *Builder) { actBreakContinue(b, jsast.BreakStatement, "break", true) })
	registerV(RuleContinueStatementNoLabel, func(b *Builder) { actBreakContinue(b, jsast.ContinueStatement, "continue", false) })
	registerV(RuleContinueStatement, func(b *Builder) { actBreakContinue(b, jsast.ContinueStatement, "continue", true) })
	registerV(RuleLabeledStatement, actLabeledStatement)

	registerV(RuleSwitchStatement, actSwitchStatement)
	registerV(RuleSwitchCaseList, actSingleElementList)
	registerV(RuleSwitchCaseListAppend, actPlainListAppend)
	registerV(RuleSwitchCase, func(b *Builder) { actSwitchCase(b, true, true) })
	registerV(RuleSwitchCaseEmpty, func(b *Builder) { actSwitchCase(b, true, false) })
	registerV(RuleSwitchCaseDefault, func(b *Builder) { actSwitchCase(b, false, true) })
	registerV(RuleSwitchCaseDefaultEmpty, func(b *Builder) { actSwitchCase(b, false, false) })

	registerV(RuleTryStatementCatch, func(b *Builder) { actTryStatement(b, true, false, false) })
	registerV(RuleTryStatementCatchParam, func(b *Builder) { actTryStatement(b, true, true, false) })
	registerV(RuleTryStatementFinally, func(b *Builder) { actTryStatement(b, false, false, true) })
	registerV(RuleTryStatementCatchFinally, func(b *Builder) { actTryStatement(b, true, false, true) })
	registerV(RuleTryStatementCatchParamFinally, func(b *Builder) { actTryStatement(b, true, true, true) })
}

// actBreakContinue builds BreakStatement/ContinueStatement, with or
// without a label.
func actBreakContinue(b *Builder, kind jsast.Kind, keyword string, hasLabel bool) {
	_, end := b.check(";")
	var label *jsast.Node
	if hasLabel {
		label, _, _ = b.popNode()
	}
	start, _ := b.check(keyword)
	b.pushNode(&jsast.Node{Kind: kind, Label: label}, start, end)
}

func actLabeledStatement(b *Builder) {
	body, _, end := b.popNode()
	b.check(":")
	label, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.LabeledStatement, Label: label, BodyStmt: body}, start, end)
}

// actSwitchStatement pops a SwitchCase list built by the single "default
// may appear at any position" production in the grammar: each SwitchCase
// is already tagged default-or-not by a nil Test, so the builder does
// not need to re-validate placement — that is the external grammar's
// job per SPEC_FULL.md §4.5.
func actSwitchStatement(b *Builder) {
	_, end := b.check("}")
	cases, _, _ := b.popList()
	b.check("{")
	b.check(")")
	discriminant, _, _ := b.popNode()
	b.check("(")
	start, _ := b.check("switch")
	b.pushNode(&jsast.Node{Kind: jsast.SwitchStatement, Discriminant: discriminant, Cases: cases}, start, end)
}

// actSwitchCase builds one `case expr: stmts` or `default: stmts`
// clause. hasTest distinguishes the two; hasBody distinguishes an empty
// consequent (immediately followed by the next case or closing brace)
// from one with statements.
func actSwitchCase(b *Builder, hasTest, hasBody bool) {
	var body []*jsast.Node
	var end token.Location
	if hasBody {
		body, _, end = b.popList()
	} else {
		_, end = b.check(":")
	}
	if hasBody {
		b.check(":")
	}
	var test *jsast.Node
	var start token.Location
	if hasTest {
		test, _, _ = b.popNode()
		start, _ = b.check("case")
	} else {
		start, _ = b.check("default")
	}
	b.pushNode(&jsast.Node{Kind: jsast.SwitchCase, Test: test, Body: body}, start, end)
}

// actTryStatement covers all three arities of try: catch alone, catch
// with a bound parameter, finally alone, catch+finally, and
// catch(param)+finally.
func actTryStatement(b *Builder, hasCatch, catchHasParam, hasFinally bool) {
	var finalizer *jsast.Node
	var end token.Location
	if hasFinally {
		finalizer, _, end = b.popNode()
		b.check("finally")
	}
	var handler *jsast.Node
	if hasCatch {
		catchBody, _, catchEnd := b.popNode()
		if !hasFinally {
			end = catchEnd
		}
		var param *jsast.Node
		if catchHasParam {
			b.check(")")
			param, _, _ = b.popNode()
			b.check("(")
		}
		catchStart, _ := b.check("catch")
		handler = makeNode(jsast.CatchClause, catchStart, catchEnd)
		handler.Param = param
		handler.BodyStmt = catchBody
	}
	block, _, blockEnd := b.popNode()
	if !hasCatch && !hasFinally {
		end = blockEnd
	}
	start, _ := b.check("try")
	b.pushNode(&jsast.Node{Kind: jsast.TryStatement, BodyStmt: block, Handler: handler, Finalizer: finalizer}, start, end)
}

// actProgram wraps body in a Program node, applying directive-prologue
// detection per SPEC_FULL.md §4.4/§9: the detection compares source
// offsets, not token identity, so a leading `("use strict")` (wrapped in
// parens) does not qualify.
func actProgram(b *Builder, sourceType string, body []*jsast.Node) {
	start := token.Origin
	end := b.location
	body = applyDirectivePrologue(body)
	b.pushNode(&jsast.Node{Kind: jsast.Program, SourceType: sourceType, Body: body}, start, end)
}

func applyDirectivePrologue(body []*jsast.Node) []*jsast.Node {
	out := make([]*jsast.Node, len(body))
	copy(out, body)
	for i, stmt := range out {
		if !isLikelyDirective(stmt) {
			break
		}
		directive := stmt.Expression.Raw
		if len(directive) >= 2 {
			directive = directive[1 : len(directive)-1]
		}
		rewritten := *stmt
		rewritten.Directive = directive
		out[i] = &rewritten
	}
	return out
}

func isLikelyDirective(stmt *jsast.Node) bool {
	if stmt.Kind != jsast.ExpressionStatement {
		return false
	}
	expr := stmt.Expression
	if expr == nil || expr.Kind != jsast.Literal || expr.Value.Kind != jsast.LitString {
		return false
	}
	return expr.Start == stmt.Start
}

func actVariableDeclaration(b *Builder) {
	_, end := b.check(";")
	declarations, _, _ := b.popList()
	kind, start, _ := b.popToken()
	b.pushNode(&jsast.Node{Kind: jsast.VariableDeclaration, DeclKind: kind, Declarations: declarations}, start, end)
}

func actVariableDeclarator(b *Builder) {
	id, start, end := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.VariableDeclarator, Id: id}, start, end)
}

func actVariableDeclaratorInit(b *Builder) {
	init, _, end := b.popNode()
	id, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.VariableDeclarator, Id: id, Init: init}, start, end)
}

func actEmptyStatement(b *Builder) {
	start, end := b.check(";")
	b.pushNode(&jsast.Node{Kind: jsast.EmptyStatement}, start, end)
}

func actExpressionStatement(b *Builder) {
	_, end := b.check(";")
	expr, start, _ := b.popNode()
	b.pushNode(&jsast.Node{Kind: jsast.ExpressionStatement, Expression: expr}, start, end)
}

// actBlockStatement pops the stack in the order a "{ StatementList }"
// production actually leaves it: the closing brace was shifted last,
// so it sits above the (already-reduced) statement list, which in
// turn sits above the opening brace.
func actBlockStatement(b *Builder, hasBody bool) {
	_, end := b.check("}")
	var body []*jsast.Node
	if hasBody {
		body, _, _ = b.popList()
	}
	start, _ := b.check("{")
	b.pushNode(&jsast.Node{Kind: jsast.BlockStatement, Body: body}, start, end)
}

func actIfStatement(b *Builder) {
	consequent, _, end := b.popNode()
	b.check(")")
	test, _, _ := b.popNode()
	b.check("(")
	start, _ := b.check("if")
	b.pushNode(&jsast.Node{Kind: jsast.IfStatement, Test: test, Consequent: consequent}, start, end)
}

func actIfElseStatement(b *Builder) {
	alternate, _, end := b.popNode()
	b.check("else")
	consequent, _, _ := b.popNode()
	b.check(")")
	test, _, _ := b.popNode()
	b.check("(")
	start, _ := b.check("if")
	b.pushNode(&jsast.Node{Kind: jsast.IfStatement, Test: test, Consequent: consequent, Alternate: alternate}, start, end)
}

func actWhileStatement(b *Builder) {
	body, _, end := b.popNode()
	b.check(")")
	test, _, _ := b.popNode()
	b.check("(")
	start, _ := b.check("while")
	b.pushNode(&jsast.Node{Kind: jsast.WhileStatement, Test: test, BodyStmt: body}, start, end)
}

func actDoWhileStatement(b *Builder) {
	_, end := b.check(";")
	b.check(")")
	test, _, _ := b.popNode()
	b.check("(")
	b.check("while")
	body, _, _ := b.popNode()
	start, _ := b.check("do")
	b.pushNode(&jsast.Node{Kind: jsast.DoWhileStatement, Test: test, BodyStmt: body}, start, end)
}

// actForStatement covers all eight init/test/update presence arities of
// `for (;;)`. Checks always run in source order (innermost punctuator
// first, since the builder pops the stack back-to-front), matching the
// original grammar's per-arity reduction functions.
func actForStatement(b *Builder, hasInit, hasTest, hasUpdate bool) {
	body, _, end := b.popNode()
	b.check(")")
	var update *jsast.Node
	if hasUpdate {
		update, _, _ = b.popNode()
	}
	b.check(";")
	var test *jsast.Node
	if hasTest {
		test, _, _ = b.popNode()
	}
	b.check(";")
	var init *jsast.Node
	if hasInit {
		init, _, _ = b.popNode()
	}
	b.check("(")
	start, _ := b.check("for")
	b.pushNode(&jsast.Node{Kind: jsast.ForStatement, Init: init, Test: test, Update: update, BodyStmt: body}, start, end)
}

// actForInOf builds ForInStatement/ForOfStatement. left is converted
// through IntoPattern since a bare ObjectExpression/ArrayExpression on
// the left of `for (... in/of ...)` covers an assignment pattern, per
// "14.7.5.1 Static Semantics: Early Errors" in ECMA-262.
func actForInOf(b *Builder, kind jsast.Kind, isAwait bool) {
	body, _, end := b.popNode()
	b.check(")")
	right, _, _ := b.popNode()
	if kind == jsast.ForInStatement {
		b.check("in")
	} else {
		b.check("of")
	}
	left, _, _ := b.popNode()
	b.check("(")
	if isAwait {
		b.check("await")
	}
	start, _ := b.check("for")
	left = intoPattern(left)
	node := &jsast.Node{Kind: kind, Left: left, Right: right, BodyStmt: body}
	if kind == jsast.ForOfStatement {
		node.Async = isAwait
	}
	b.pushNode(node, start, end)
}

func actReturnStatement(b *Builder, hasArgument bool) {
	_, end := b.check(";")
	var argument *jsast.Node
	if hasArgument {
		argument, _, _ = b.popNode()
	}
	start, _ := b.check("return")
	b.pushNode(&jsast.Node{Kind: jsast.ReturnStatement, Argument: argument}, start, end)
}

// actFunctionDeclaration handles all four generator/async combinations
// of a named function declaration.
func actFunctionDeclaration(b *Builder, isGenerator, isAsync bool) {
	funcBody, _, end := b.popNode()
	b.check(")")
	params, _, _ := b.popList()
	b.check("(")
	id, _, _ := b.popNode()
	if isGenerator {
		b.check("*")
	}
	var start token.Location
	if isAsync {
		b.check("function")
		start, _ = b.check("async")
	} else {
		start, _ = b.check("function")
	}
	b.pushNode(&jsast.Node{
		Kind: jsast.FunctionDeclaration, Id: id, Params: params, BodyStmt: funcBody,
		Generator: isGenerator, Async: isAsync,
	}, start, end)
}

func actSingleElementList(b *Builder) {
	node, start, end := b.popNode()
	b.pushList([]*jsast.Node{node}, start, end)
}

// actParamListSingle and actParamListAppend run each formal parameter
// through IntoPattern: a parameter position is exactly where the
// cover grammar's ObjectExpression/ArrayExpression/AssignmentExpression
// shapes must resolve to their pattern counterparts, per
// "15.1.2 Static Semantics: Early Errors" in ECMA-262. IntoPattern is
// a no-op on an already-simple binding identifier.
func actParamListSingle(b *Builder) {
	node, start, end := b.popNode()
	b.pushList([]*jsast.Node{intoPattern(node)}, start, end)
}

func actParamListAppend(b *Builder) {
	node, _, end := b.popNode()
	b.check(",")
	list, start, _ := b.popList()
	list = append(list, intoPattern(node))
	b.pushList(list, start, end)
}

// actCommaListAppend implements a comma-separated growing list: pop the
// new element, check the separating comma, then append to the existing
// list. Used for object-literal property lists.
func actCommaListAppend(b *Builder) {
	node, _, end := b.popNode()
	b.check(",")
	list, start, _ := b.popList()
	list = append(list, node)
	b.pushList(list, start, end)
}

// actPlainListAppend implements the non-separated growing list used by
// statement lists, where each element is its own complete statement.
func actPlainListAppend(b *Builder) {
	node, _, end := b.popNode()
	list, start, _ := b.popList()
	list = append(list, node)
	b.pushList(list, start, end)
}

// actRestIntoList appends a `...name` rest parameter to a formal
// parameter list, wrapping it in a RestElement.
func actRestIntoList(b *Builder) {
	argument, _, end := b.popNode()
	restStart, _ := b.check("...")
	b.check(",")
	list, start, _ := b.popList()
	rest := makeNode(jsast.RestElement, restStart, end)
	rest.Argument = argument
	list = append(list, rest)
	b.pushList(list, start, end)
}

// makeNode builds a positioned node outside the stack machinery, for
// synthetic nodes (a function's BlockStatement, a RestElement wrapping
// an already-popped argument) that a single action constructs inline.
func makeNode(kind jsast.Kind, start, end token.Location) *jsast.Node {
	n := &jsast.Node{Kind: kind}
	n.Start, n.End = start.Offset, end.Offset
	n.Loc = jsast.Loc{Start: start, End: end}
	return n
}
