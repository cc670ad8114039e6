package jsast

import (
	"encoding/json"
	"fmt"
)

// typeName returns the ESTree "type" string for a Kind.
func (k Kind) typeName() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Literal:
		return "Literal"
	case Super:
		return "Super"
	case Program:
		return "Program"
	case EmptyStatement:
		return "EmptyStatement"
	case ExpressionStatement:
		return "ExpressionStatement"
	case BlockStatement:
		return "BlockStatement"
	case IfStatement:
		return "IfStatement"
	case ForStatement:
		return "ForStatement"
	case ForInStatement:
		return "ForInStatement"
	case ForOfStatement:
		return "ForOfStatement"
	case WhileStatement:
		return "WhileStatement"
	case DoWhileStatement:
		return "DoWhileStatement"
	case ReturnStatement:
		return "ReturnStatement"
	case VariableDeclaration:
		return "VariableDeclaration"
	case VariableDeclarator:
		return "VariableDeclarator"
	case FunctionDeclaration:
		return "FunctionDeclaration"
	case BreakStatement:
		return "BreakStatement"
	case ContinueStatement:
		return "ContinueStatement"
	case LabeledStatement:
		return "LabeledStatement"
	case SwitchStatement:
		return "SwitchStatement"
	case SwitchCase:
		return "SwitchCase"
	case TryStatement:
		return "TryStatement"
	case CatchClause:
		return "CatchClause"
	case ClassDeclaration:
		return "ClassDeclaration"
	case ClassExpression:
		return "ClassExpression"
	case ClassBody:
		return "ClassBody"
	case MethodDefinition:
		return "MethodDefinition"
	case BinaryExpression:
		return "BinaryExpression"
	case LogicalExpression:
		return "LogicalExpression"
	case UnaryExpression:
		return "UnaryExpression"
	case UpdateExpression:
		return "UpdateExpression"
	case AssignmentExpression:
		return "AssignmentExpression"
	case ConditionalExpression:
		return "ConditionalExpression"
	case SequenceExpression:
		return "SequenceExpression"
	case MemberExpression:
		return "MemberExpression"
	case CallExpression:
		return "CallExpression"
	case NewExpression:
		return "NewExpression"
	case ArrowFunctionExpression:
		return "ArrowFunctionExpression"
	case FunctionExpression:
		return "FunctionExpression"
	case TaggedTemplateExpression:
		return "TaggedTemplateExpression"
	case TemplateLiteral:
		return "TemplateLiteral"
	case TemplateElement:
		return "TemplateElement"
	case ChainExpression:
		return "ChainExpression"
	case YieldExpression:
		return "YieldExpression"
	case AwaitExpression:
		return "AwaitExpression"
	case MetaProperty:
		return "MetaProperty"
	case ObjectExpression:
		return "ObjectExpression"
	case ArrayExpression:
		return "ArrayExpression"
	case Property:
		return "Property"
	case SpreadElement:
		return "SpreadElement"
	case ObjectPattern:
		return "ObjectPattern"
	case ArrayPattern:
		return "ArrayPattern"
	case AssignmentPattern:
		return "AssignmentPattern"
	case RestElement:
		return "RestElement"
	case CoverInitializedName:
		return "CoverInitializedName"
	case OptionalCallSegment:
		return "OptionalCallSegment"
	case OptionalMemberSegment:
		return "OptionalMemberSegment"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

func (n *Node) envelope() map[string]interface{} {
	return map[string]interface{}{
		"type":  n.Kind.typeName(),
		"start": n.Start,
		"end":   n.End,
		"loc": map[string]interface{}{
			"start": map[string]int{"line": n.Loc.Start.Line, "column": n.Loc.Start.Column - 1},
			"end":   map[string]int{"line": n.Loc.End.Line, "column": n.Loc.End.Column - 1},
		},
	}
}

// elements renders a nullable-element slice (ArrayExpression/ArrayPattern),
// preserving elision as JSON null.
func elements(nodes []*Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		if n == nil {
			out[i] = nil
		} else {
			out[i] = n
		}
	}
	return out
}

func nodeList(nodes []*Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// MarshalJSON renders the node in ESTree field names and nesting.
// CoverInitializedName must never reach here; it is resolved by
// IntoPattern or rejected by validation first.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	m := n.envelope()
	switch n.Kind {
	case Identifier:
		m["name"] = n.Name
	case Literal:
		m["value"] = literalValueJSON(n.Value)
		m["raw"] = n.Raw
		if n.Value.Kind == LitRegExp {
			m["regex"] = map[string]string{"pattern": n.Value.RegexPattern, "flags": n.Value.RegexFlags}
		}
		if n.Value.Kind == LitBigInt {
			m["bigint"] = n.Value.BigIntDigits
		}
	case Super:
		// no extra fields
	case Program:
		m["sourceType"] = n.SourceType
		m["body"] = nodeList(n.Body)
	case EmptyStatement:
		// no extra fields
	case ExpressionStatement:
		m["expression"] = n.Expression
		if n.Directive != "" {
			m["directive"] = n.Directive
		}
	case BlockStatement:
		m["body"] = nodeList(n.Body)
	case IfStatement:
		m["test"] = n.Test
		m["consequent"] = n.Consequent
		m["alternate"] = n.Alternate
	case ForStatement:
		m["init"] = n.Init
		m["test"] = n.Test
		m["update"] = n.Update
		m["body"] = n.BodyStmt
	case ForInStatement:
		m["left"] = n.Left
		m["right"] = n.Right
		m["body"] = n.BodyStmt
	case ForOfStatement:
		m["left"] = n.Left
		m["right"] = n.Right
		m["body"] = n.BodyStmt
		m["await"] = n.Async
	case WhileStatement:
		m["test"] = n.Test
		m["body"] = n.BodyStmt
	case DoWhileStatement:
		m["body"] = n.BodyStmt
		m["test"] = n.Test
	case ReturnStatement:
		m["argument"] = n.Argument
	case VariableDeclaration:
		m["kind"] = n.DeclKind
		m["declarations"] = nodeList(n.Declarations)
	case VariableDeclarator:
		m["id"] = n.Id
		m["init"] = n.Init
	case FunctionDeclaration:
		m["id"] = n.Id
		m["params"] = nodeList(n.Params)
		m["body"] = n.BodyStmt
		m["generator"] = n.Generator
		m["async"] = n.Async
	case BreakStatement:
		m["label"] = n.Label
	case ContinueStatement:
		m["label"] = n.Label
	case LabeledStatement:
		m["label"] = n.Label
		m["body"] = n.BodyStmt
	case SwitchStatement:
		m["discriminant"] = n.Discriminant
		m["cases"] = nodeList(n.Cases)
	case SwitchCase:
		m["test"] = n.Test
		m["consequent"] = nodeList(n.Body)
	case TryStatement:
		m["block"] = n.BodyStmt
		m["handler"] = n.Handler
		m["finalizer"] = n.Finalizer
	case CatchClause:
		m["param"] = n.Param
		m["body"] = n.BodyStmt
	case ClassDeclaration:
		m["id"] = n.Id
		m["superClass"] = n.SuperClass
		m["body"] = n.BodyStmt
	case ClassExpression:
		m["id"] = n.Id
		m["superClass"] = n.SuperClass
		m["body"] = n.BodyStmt
	case ClassBody:
		m["body"] = nodeList(n.Body)
	case MethodDefinition:
		m["key"] = n.Key
		m["value"] = n.PropValue
		m["kind"] = n.MethodKind
		m["static"] = n.Static
		m["computed"] = n.Computed
	case BinaryExpression:
		m["operator"] = n.Operator
		m["left"] = n.Left
		m["right"] = n.Right
	case LogicalExpression:
		m["operator"] = n.Operator
		m["left"] = n.Left
		m["right"] = n.Right
	case UnaryExpression:
		m["operator"] = n.Operator
		m["prefix"] = n.Prefix
		m["argument"] = n.Argument
	case UpdateExpression:
		m["operator"] = n.Operator
		m["prefix"] = n.Prefix
		m["argument"] = n.Argument
	case AssignmentExpression:
		m["operator"] = n.Operator
		m["left"] = n.Left
		m["right"] = n.Right
	case ConditionalExpression:
		m["test"] = n.Test
		m["consequent"] = n.Consequent
		m["alternate"] = n.Alternate
	case SequenceExpression:
		m["expressions"] = nodeList(n.Expressions)
	case MemberExpression:
		m["object"] = n.Object
		m["property"] = n.PropertyNode
		m["computed"] = n.Computed
		m["optional"] = n.Optional
	case CallExpression:
		m["callee"] = n.Callee
		m["arguments"] = nodeList(n.Arguments)
		m["optional"] = n.Optional
	case NewExpression:
		m["callee"] = n.Callee
		m["arguments"] = nodeList(n.Arguments)
	case ArrowFunctionExpression:
		m["id"] = nil
		m["params"] = nodeList(n.Params)
		m["body"] = n.BodyStmt
		m["generator"] = false
		m["async"] = n.Async
		m["expression"] = n.BodyStmt != nil && n.BodyStmt.Kind != BlockStatement
	case FunctionExpression:
		m["id"] = n.Id
		m["params"] = nodeList(n.Params)
		m["body"] = n.BodyStmt
		m["generator"] = n.Generator
		m["async"] = n.Async
	case TaggedTemplateExpression:
		m["tag"] = n.Tag
		m["quasi"] = n.Quasi
	case TemplateLiteral:
		m["quasis"] = nodeList(n.Quasis)
		m["expressions"] = nodeList(n.Expressions)
	case TemplateElement:
		m["tail"] = n.Tail
		m["value"] = map[string]string{"raw": n.Raw, "cooked": n.Value.Str}
	case ChainExpression:
		m["expression"] = n.Expression
	case YieldExpression:
		m["argument"] = n.Argument
		m["delegate"] = n.Delegate
	case AwaitExpression:
		m["argument"] = n.Argument
	case MetaProperty:
		m["meta"] = map[string]string{"type": "Identifier", "name": n.MetaName}
		m["property"] = map[string]string{"type": "Identifier", "name": n.PropName}
	case ObjectExpression:
		m["properties"] = nodeList(n.Properties)
	case ArrayExpression:
		m["elements"] = elements(n.Elements)
	case Property:
		m["key"] = n.Key
		m["value"] = n.PropValue
		m["kind"] = n.PropKind
		m["computed"] = n.Computed
		m["method"] = n.Method
		m["shorthand"] = n.Shorthand
	case SpreadElement:
		m["argument"] = n.Argument
	case ObjectPattern:
		m["properties"] = nodeList(n.Properties)
	case ArrayPattern:
		m["elements"] = elements(n.Elements)
	case AssignmentPattern:
		m["left"] = n.Left
		m["right"] = n.Right
	case RestElement:
		m["argument"] = n.Argument
	case CoverInitializedName:
		panic("jsast: CoverInitializedName reached MarshalJSON; IntoPattern or validation should have resolved it")
	case OptionalCallSegment, OptionalMemberSegment:
		panic("jsast: optional-chain segment reached MarshalJSON; jsbuilder's chain flattening should have resolved it")
	}
	return json.Marshal(m)
}

func literalValueJSON(v LiteralValue) interface{} {
	switch v.Kind {
	case LitNull:
		return nil
	case LitBool:
		return v.Bool
	case LitNumber:
		return v.Number
	case LitBigInt:
		return nil // ESTree represents BigInt literals with value: null plus bigint field
	case LitString:
		return v.Str
	case LitRegExp:
		return map[string]interface{}{}
	default:
		return nil
	}
}
