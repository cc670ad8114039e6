package jsbuilder

import (
	"errors"

	"github.com/cwbudde/webfrontend/internal/jsast"
)

var (
	errMultipleRestElements    = errors.New("jsbuilder: multiple RestElements are not allowed in ArrayAssignmentPattern")
	errTrailingCommaAfterRest  = errors.New("jsbuilder: trailing comma is not allowed in ArrayAssignmentPattern")
)

// intoPatterns splits a nullable expression into the comma-list of
// patterns a ForStatement/arrow-function parameter position covers:
// a bare SequenceExpression is first split on its top-level commas,
// then each element is run through intoPattern individually.
func intoPatterns(node *jsast.Node) []*jsast.Node {
	if node == nil {
		return nil
	}
	if node.Kind == jsast.SequenceExpression {
		out := make([]*jsast.Node, len(node.Expressions))
		for i, e := range node.Expressions {
			out[i] = intoPattern(e)
		}
		return out
	}
	return []*jsast.Node{intoPattern(node)}
}

// intoPattern resolves the cover grammar ECMA-262 "14.7.5.1 Static
// Semantics: Early Errors" names AssignmentPattern / ArrayPattern /
// ObjectPattern: an expression built where the grammar could not yet
// tell whether a pattern or an expression was intended is reinterpreted
// here once the surrounding context (an assignment LHS, a for-in/of
// left-hand side, an arrow parameter) makes that clear. Idempotent:
// running it twice on an already-converted pattern is a no-op.
func intoPattern(node *jsast.Node) *jsast.Node {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case jsast.ObjectExpression:
		return toObjectPattern(node)
	case jsast.ArrayExpression:
		return toArrayPattern(node)
	case jsast.AssignmentExpression:
		return toAssignmentPattern(node)
	case jsast.SpreadElement:
		return toRestElement(node)
	case jsast.Property:
		return toAssignmentProperty(node)
	case jsast.CoverInitializedName:
		n := makeNode(jsast.AssignmentPattern, node.Loc.Start, node.Loc.End)
		n.Left, n.Right = node.Left, node.Right
		return n
	default:
		return node
	}
}

func toObjectPattern(expr *jsast.Node) *jsast.Node {
	properties := make([]*jsast.Node, len(expr.Properties))
	for i, p := range expr.Properties {
		properties[i] = intoPattern(p)
	}
	n := makeNode(jsast.ObjectPattern, expr.Loc.Start, expr.Loc.End)
	n.Properties = properties
	return n
}

// toArrayPattern converts element by element and reports no error: a
// second RestElement, or a RestElement followed by a trailing comma, is
// converted like any other element. validateArrayPattern checks for
// both cases, but no action in this package and nothing in jsdriver
// calls it, so conversion never rejects them.
func toArrayPattern(expr *jsast.Node) *jsast.Node {
	elements := make([]*jsast.Node, len(expr.Elements))
	for i, e := range expr.Elements {
		if e == nil {
			elements[i] = nil
			continue
		}
		elements[i] = intoPattern(e)
	}
	n := makeNode(jsast.ArrayPattern, expr.Loc.Start, expr.Loc.End)
	n.Elements = elements
	return n
}

// validateArrayPattern reports the two ArrayAssignmentPattern early
// errors intoPattern cannot fail on directly. Call it after intoPattern
// on a converted ArrayPattern whose source had a trailing comma.
func validateArrayPattern(pattern *jsast.Node, trailingComma bool) error {
	restSeen := false
	for i, el := range pattern.Elements {
		if el == nil {
			if restSeen {
				return errTrailingCommaAfterRest
			}
			continue
		}
		if el.Kind == jsast.RestElement {
			if restSeen {
				return errMultipleRestElements
			}
			restSeen = true
			if i == len(pattern.Elements)-1 && trailingComma {
				return errTrailingCommaAfterRest
			}
		}
	}
	return nil
}

func toAssignmentPattern(expr *jsast.Node) *jsast.Node {
	n := makeNode(jsast.AssignmentPattern, expr.Loc.Start, expr.Loc.End)
	n.Left, n.Right = expr.Left, expr.Right
	return n
}

func toRestElement(expr *jsast.Node) *jsast.Node {
	n := makeNode(jsast.RestElement, expr.Loc.Start, expr.Loc.End)
	n.Argument = intoPattern(expr.Argument)
	return n
}

func toAssignmentProperty(property *jsast.Node) *jsast.Node {
	value := intoPattern(property.PropValue)
	shorthand := property.Shorthand || value.Kind == jsast.AssignmentPattern
	n := makeNode(jsast.Property, property.Loc.Start, property.Loc.End)
	n.Key = property.Key
	n.PropValue = value
	n.PropKind = property.PropKind
	n.Shorthand = shorthand
	n.Computed = property.Computed
	return n
}
