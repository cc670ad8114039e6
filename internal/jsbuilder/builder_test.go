package jsbuilder_test

import (
	"encoding/json"
	"testing"

	"github.com/cwbudde/webfrontend/internal/jsbuilder"
	"github.com/cwbudde/webfrontend/internal/jsdriver"
	"github.com/cwbudde/webfrontend/internal/token"
	"github.com/gkampitakis/go-snaps/snaps"
)

func loc(offset int) token.Location {
	return token.Location{Offset: offset, Line: 1, Column: offset + 1}
}

func tok(lexeme string) jsbuilder.Token {
	return jsbuilder.Token{Lexeme: lexeme}
}

func marshalTree(t *testing.T, events []jsdriver.Event) string {
	t.Helper()
	b := jsbuilder.New()
	node, err := jsdriver.Replay(b, events)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	out, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(out)
}

// TestExpressionStatement covers the smallest possible script: a bare
// identifier reference, "x;".
func TestExpressionStatement(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("x")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(1), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(2)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "expression_statement", marshalTree(t, events))
}

// TestDirectivePrologue checks that a leading string-literal
// expression statement is recognized as a directive only when its
// start offset matches the enclosing statement's start exactly, per
// the distilled spec's offset-based detection rule.
func TestDirectivePrologue(t *testing.T) {
	// "use strict";
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok(`"use strict"`)),
		jsdriver.Reduce(jsbuilder.RuleStringLiteral),
		jsdriver.ShiftAt(loc(12), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(13)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "directive_prologue", marshalTree(t, events))
}

// TestArrowCoverGrammar builds `({x = 1}) => x`, exercising
// CoverInitializedName -> AssignmentPattern conversion through
// IntoPatterns when an object literal with shorthand defaults turns
// out to be an arrow function's parameter list rather than an object
// expression.
func TestArrowCoverGrammar(t *testing.T) {
	events := []jsdriver.Event{
		// {x = 1}
		jsdriver.ShiftAt(loc(1), tok("{")),
		jsdriver.ShiftAt(loc(2), tok("x")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(4), tok("=")),
		jsdriver.ShiftAt(loc(6), tok("1")),
		jsdriver.Reduce(jsbuilder.RuleNumericLiteral),
		jsdriver.Reduce(jsbuilder.RuleCoverInitializedName),
		jsdriver.Reduce(jsbuilder.RulePropertyList),
		jsdriver.ShiftAt(loc(7), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleObjectExpression),
		// the parenthesized cover grammar resolves to a single param list
		jsdriver.Reduce(jsbuilder.RuleParamList),
		jsdriver.ShiftAt(loc(10), tok("=>")),
		jsdriver.ShiftAt(loc(13), tok("x")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.Reduce(jsbuilder.RuleArrowFunction),
		jsdriver.ShiftAt(loc(14), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(15)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "arrow_cover_grammar_object", marshalTree(t, events))
}

// TestOptionalChain builds `a?.b.c?.()`, verifying that only the first
// segment of a chain carries optional: true and that the whole chain
// is wrapped in a single ChainExpression.
func TestOptionalChain(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("a")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(1), tok("?.")),
		jsdriver.ShiftAt(loc(3), tok("b")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.Reduce(jsbuilder.RuleOptionalMemberStart),
		jsdriver.ShiftAt(loc(4), tok(".")),
		jsdriver.ShiftAt(loc(5), tok("c")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.Reduce(jsbuilder.RuleOptionalChainAppendMember),
		jsdriver.Reduce(jsbuilder.RuleOptionalExpression),
		jsdriver.ShiftAt(loc(6), tok("?.")),
		jsdriver.ShiftAt(loc(8), tok("(")),
		jsdriver.ShiftAt(loc(9), tok(")")),
		jsdriver.Reduce(jsbuilder.RuleArgumentsEmpty),
		jsdriver.Reduce(jsbuilder.RuleOptionalCallStart),
		jsdriver.Reduce(jsbuilder.RuleOptionalExpression),
		jsdriver.ShiftAt(loc(10), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(11)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "optional_chain", marshalTree(t, events))
}

// TestForStatementWithDeclaration builds `for (var i = 0; i < 3; i++) i;`.
func TestForStatementWithDeclaration(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("for")),
		jsdriver.ShiftAt(loc(4), tok("(")),
		jsdriver.ShiftAt(loc(5), tok("var")),
		jsdriver.ShiftAt(loc(9), tok("i")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.Reduce(jsbuilder.RuleVariableDeclarator),
		jsdriver.ShiftAt(loc(11), tok("0")),
		jsdriver.Reduce(jsbuilder.RuleNumericLiteral),
		jsdriver.Reduce(jsbuilder.RuleVariableDeclaratorInit),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.ShiftAt(loc(12), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleVariableDeclaration),
		jsdriver.ShiftAt(loc(14), tok("i")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(16), tok("<")),
		jsdriver.ShiftAt(loc(18), tok("3")),
		jsdriver.Reduce(jsbuilder.RuleNumericLiteral),
		jsdriver.Reduce(jsbuilder.RuleBinaryExpression),
		jsdriver.ShiftAt(loc(19), tok(";")),
		jsdriver.ShiftAt(loc(21), tok("i")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(22), tok("++")),
		jsdriver.Reduce(jsbuilder.RuleUpdateExpressionSuffix),
		jsdriver.ShiftAt(loc(24), tok(")")),
		jsdriver.ShiftAt(loc(26), tok("i")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(27), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleForStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(28)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "for_statement_with_declaration", marshalTree(t, events))
}

// TestTemplateLiteralWithSubstitution builds the template literal
// `` `a${x}b` ``.
func TestTemplateLiteralWithSubstitution(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("`a${")),
		jsdriver.ShiftAt(loc(4), tok("x")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.Reduce(jsbuilder.RuleTemplateMiddleList),
		jsdriver.ShiftAt(loc(5), tok("}b`")),
		jsdriver.Reduce(jsbuilder.RuleTemplateSpansTail),
		jsdriver.Reduce(jsbuilder.RuleTemplateLiteral),
		jsdriver.ShiftAt(loc(8), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(9)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "template_literal_with_substitution", marshalTree(t, events))
}
