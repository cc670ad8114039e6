package jsbuilder_test

import (
	"testing"

	"github.com/cwbudde/webfrontend/internal/jsbuilder"
	"github.com/cwbudde/webfrontend/internal/jsdriver"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestTryStatementCatchParamFinally builds
// `try { x; } catch (e) { y; } finally { z; }`, exercising the widest
// try arity: a bound catch parameter plus a finally block.
func TestTryStatementCatchParamFinally(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("try")),
		jsdriver.ShiftAt(loc(4), tok("{")),
		jsdriver.ShiftAt(loc(6), tok("x")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(7), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.ShiftAt(loc(9), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleBlockStatement),
		jsdriver.ShiftAt(loc(11), tok("catch")),
		jsdriver.ShiftAt(loc(17), tok("(")),
		jsdriver.ShiftAt(loc(18), tok("e")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(19), tok(")")),
		jsdriver.ShiftAt(loc(21), tok("{")),
		jsdriver.ShiftAt(loc(23), tok("y")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(24), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.ShiftAt(loc(26), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleBlockStatement),
		jsdriver.ShiftAt(loc(28), tok("finally")),
		jsdriver.ShiftAt(loc(36), tok("{")),
		jsdriver.ShiftAt(loc(38), tok("z")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(39), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.ShiftAt(loc(41), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleBlockStatement),
		jsdriver.Reduce(jsbuilder.RuleTryStatementCatchParamFinally),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(42)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "try_catch_param_finally", marshalTree(t, events))
}

// TestSwitchStatementDefaultLast builds
// `switch (x) { case 1: y; default: z; }`, covering a non-empty case,
// a default clause, and the case-list accumulation rule.
func TestSwitchStatementDefaultLast(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("switch")),
		jsdriver.ShiftAt(loc(7), tok("(")),
		jsdriver.ShiftAt(loc(8), tok("x")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(9), tok(")")),
		jsdriver.ShiftAt(loc(11), tok("{")),
		jsdriver.ShiftAt(loc(13), tok("case")),
		jsdriver.ShiftAt(loc(18), tok("1")),
		jsdriver.Reduce(jsbuilder.RuleNumericLiteral),
		jsdriver.ShiftAt(loc(19), tok(":")),
		jsdriver.ShiftAt(loc(21), tok("y")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(22), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.Reduce(jsbuilder.RuleSwitchCase),
		jsdriver.Reduce(jsbuilder.RuleSwitchCaseList),
		jsdriver.ShiftAt(loc(24), tok("default")),
		jsdriver.ShiftAt(loc(31), tok(":")),
		jsdriver.ShiftAt(loc(33), tok("z")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(34), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleExpressionStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.Reduce(jsbuilder.RuleSwitchCaseDefault),
		jsdriver.Reduce(jsbuilder.RuleSwitchCaseListAppend),
		jsdriver.ShiftAt(loc(36), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleSwitchStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(37)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "switch_statement_default_last", marshalTree(t, events))
}

// TestClassDeclarationWithMethod builds `class A { m() {} }`, covering
// a plain (no-heritage) class declaration with a single instance
// method whose body and parameter list are both empty.
func TestClassDeclarationWithMethod(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("class")),
		jsdriver.ShiftAt(loc(6), tok("A")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(8), tok("{")),
		jsdriver.ShiftAt(loc(10), tok("m")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(11), tok("(")),
		jsdriver.At(loc(12)),
		jsdriver.Reduce(jsbuilder.RuleParamListEmpty),
		jsdriver.ShiftAt(loc(12), tok(")")),
		jsdriver.ShiftAt(loc(14), tok("{")),
		jsdriver.ShiftAt(loc(15), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleFunctionBodyEmpty),
		jsdriver.Reduce(jsbuilder.RuleMethodDefinition),
		jsdriver.Reduce(jsbuilder.RuleClassElementList),
		jsdriver.ShiftAt(loc(17), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleClassBody),
		jsdriver.Reduce(jsbuilder.RuleClassDeclaration),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(18)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "class_declaration_with_method", marshalTree(t, events))
}

// TestLabeledStatementBreakContinue builds
// `done: while (x) { break done; continue; }`, covering a labeled
// statement together with a labeled break and an unlabeled continue.
func TestLabeledStatementBreakContinue(t *testing.T) {
	events := []jsdriver.Event{
		jsdriver.ShiftAt(loc(0), tok("done")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(4), tok(":")),
		jsdriver.ShiftAt(loc(6), tok("while")),
		jsdriver.ShiftAt(loc(12), tok("(")),
		jsdriver.ShiftAt(loc(13), tok("x")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(14), tok(")")),
		jsdriver.ShiftAt(loc(16), tok("{")),
		jsdriver.ShiftAt(loc(18), tok("break")),
		jsdriver.ShiftAt(loc(24), tok("done")),
		jsdriver.Reduce(jsbuilder.RuleIdentifier),
		jsdriver.ShiftAt(loc(28), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleBreakStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.ShiftAt(loc(30), tok("continue")),
		jsdriver.ShiftAt(loc(38), tok(";")),
		jsdriver.Reduce(jsbuilder.RuleContinueStatementNoLabel),
		jsdriver.Reduce(jsbuilder.RuleStatementListAppend),
		jsdriver.ShiftAt(loc(40), tok("}")),
		jsdriver.Reduce(jsbuilder.RuleBlockStatement),
		jsdriver.Reduce(jsbuilder.RuleWhileStatement),
		jsdriver.Reduce(jsbuilder.RuleLabeledStatement),
		jsdriver.Reduce(jsbuilder.RuleStatementList),
		jsdriver.At(loc(41)),
		jsdriver.Reduce(jsbuilder.RuleScript),
	}
	snaps.MatchSnapshot(t, "labeled_statement_break_continue", marshalTree(t, events))
}
