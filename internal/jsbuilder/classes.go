package jsbuilder

import (
	"github.com/cwbudde/webfrontend/internal/jsast"
)

func init() {
	registerV(RuleClassDeclaration, func(b *Builder) { actClass(b, jsast.ClassDeclaration, false) })
	registerV(RuleClassDeclarationHeritage, func(b *Builder) { actClass(b, jsast.ClassDeclaration, true) })
	registerV(RuleClassExpression, func(b *Builder) { actClass(b, jsast.ClassExpression, false) })
	registerV(RuleClassExpressionHeritage, func(b *Builder) { actClass(b, jsast.ClassExpression, true) })

	registerV(RuleClassBodyEmpty, func(b *Builder) { actClassBody(b, false) })
	registerV(RuleClassBody, func(b *Builder) { actClassBody(b, true) })
	registerV(RuleClassElementList, actSingleElementList)
	registerV(RuleClassElementListAppend, actPlainListAppend)

	registerV(RuleMethodDefinition, func(b *Builder) { actMethodDefinition(b, "method", false) })
	registerV(RuleMethodDefinitionStatic, func(b *Builder) { actMethodDefinition(b, "method", true) })
	registerV(RuleMethodDefinitionGet, func(b *Builder) { actMethodDefinition(b, "get", false) })
	registerV(RuleMethodDefinitionSet, func(b *Builder) { actMethodDefinition(b, "set", false) })
	registerV(RuleMethodDefinitionComputed, actMethodDefinitionComputed)
}

// actClass builds ClassDeclaration/ClassExpression with or without an
// `extends` heritage clause. ClassDeclaration requires an id;
// ClassExpression's id is a Nullable, same distinction ESTree makes.
func actClass(b *Builder, kind jsast.Kind, hasSuper bool) {
	body, _, end := b.popNode()
	var superClass *jsast.Node
	if hasSuper {
		superClass, _, _ = b.popNode()
		b.check("extends")
	}
	var id *jsast.Node
	if kind == jsast.ClassDeclaration {
		id, _, _ = b.popNode()
	} else {
		id, _, _ = b.popNullable()
	}
	start, _ := b.check("class")
	b.pushNode(&jsast.Node{Kind: kind, Id: id, SuperClass: superClass, BodyStmt: body}, start, end)
}

// actClassBody mirrors actBlockStatement's pop order: "}" was shifted
// last and sits above the (already-reduced) element list.
func actClassBody(b *Builder, hasBody bool) {
	_, end := b.check("}")
	var body []*jsast.Node
	if hasBody {
		body, _, _ = b.popList()
	}
	start, _ := b.check("{")
	b.pushNode(&jsast.Node{Kind: jsast.ClassBody, Body: body}, start, end)
}

// actMethodDefinition builds a non-computed method or accessor directly
// from its signature pieces, the same pop-each-punctuator-then-the-
// identifier-under-it shape actFunctionDeclaration uses — but without a
// "function" keyword to check, since `m() {}` inside a class body never
// shifts one. The method body itself arrives pre-reduced to a
// BlockStatement node by RuleFunctionBodyEmpty/RuleFunctionBody, the
// same production a function declaration's `{ ... }` reduces through.
func actMethodDefinition(b *Builder, kind string, static bool) {
	funcBody, _, end := b.popNode()
	b.check(")")
	params, _, _ := b.popList()
	b.check("(")
	key, keyStart, _ := b.popNode()
	start := keyStart
	if kind == "get" || kind == "set" {
		start, _ = b.check(kind)
	}
	if static {
		start, _ = b.check("static")
	}
	value := &jsast.Node{Kind: jsast.FunctionExpression, Params: params, BodyStmt: funcBody}
	b.pushNode(&jsast.Node{
		Kind: jsast.MethodDefinition, Key: key, PropValue: value,
		MethodKind: kind, Static: static,
	}, start, end)
}

// actMethodDefinitionComputed handles `[expr](...) {...}`, where the key
// is a bracketed expression rather than a bare identifier.
func actMethodDefinitionComputed(b *Builder) {
	funcBody, _, end := b.popNode()
	b.check(")")
	params, _, _ := b.popList()
	b.check("(")
	b.check("]")
	key, _, _ := b.popNode()
	start, _ := b.check("[")
	value := &jsast.Node{Kind: jsast.FunctionExpression, Params: params, BodyStmt: funcBody}
	b.pushNode(&jsast.Node{
		Kind: jsast.MethodDefinition, Key: key, PropValue: value,
		MethodKind: "method", Computed: true,
	}, start, end)
}
