// Package jsast defines an ESTree-shaped JavaScript AST as a single
// tagged node type. A *Node doubles as the "NodeRef" of the distilled
// spec: sharing a subtree across a cover-grammar rewrite is just
// copying the pointer.
package jsast

import "github.com/cwbudde/webfrontend/internal/token"

// Kind discriminates the ESTree node type a Node represents. Only the
// fields relevant to a given Kind are populated; the rest are zero.
type Kind int

const (
	Identifier Kind = iota
	Literal
	Super

	Program

	EmptyStatement
	ExpressionStatement
	BlockStatement
	IfStatement
	ForStatement
	ForInStatement
	ForOfStatement
	WhileStatement
	DoWhileStatement
	ReturnStatement
	VariableDeclaration
	VariableDeclarator
	FunctionDeclaration
	BreakStatement
	ContinueStatement
	LabeledStatement
	SwitchStatement
	SwitchCase
	TryStatement
	CatchClause
	ClassDeclaration
	ClassExpression
	ClassBody
	MethodDefinition

	BinaryExpression
	LogicalExpression
	UnaryExpression
	UpdateExpression
	AssignmentExpression
	ConditionalExpression
	SequenceExpression
	MemberExpression
	CallExpression
	NewExpression
	ArrowFunctionExpression
	FunctionExpression
	TaggedTemplateExpression
	TemplateLiteral
	TemplateElement
	ChainExpression
	YieldExpression
	AwaitExpression
	MetaProperty

	ObjectExpression
	ArrayExpression
	Property
	SpreadElement

	ObjectPattern
	ArrayPattern
	AssignmentPattern
	RestElement

	// CoverInitializedName is not an ESTree node. It holds the `{x = 1}`
	// shorthand-with-default ambiguity until IntoPattern or
	// validateExpression resolves it; it must never reach MarshalJSON.
	CoverInitializedName

	// OptionalCallSegment and OptionalMemberSegment are not ESTree nodes
	// either. jsbuilder's optional-chain flattening accumulates one of
	// these per `?.(...)`/`?.x`/`?.[x]` segment in a chain before folding
	// the whole run into real CallExpression/MemberExpression nodes
	// wrapped in a ChainExpression; like CoverInitializedName, they must
	// never reach MarshalJSON.
	OptionalCallSegment
	OptionalMemberSegment
)

// LitKind discriminates the scalar payload of a Literal node.
type LitKind int

const (
	LitNull LitKind = iota
	LitBool
	LitNumber
	LitBigInt
	LitString
	LitRegExp
)

// LiteralValue is the decoded scalar payload of a Literal node. Only
// the field matching Kind is meaningful.
type LiteralValue struct {
	Kind        LitKind
	Bool        bool
	Number      float64
	BigIntDigits string // decimal digits, without the trailing "n"
	Str         string
	RegexPattern string
	RegexFlags   string
}

// Loc is the ESTree "loc" object: 1-based line, 0-based column, on
// both ends of the node's source range.
type Loc struct {
	Start token.Location
	End   token.Location
}

// Node is the single tagged AST node type used throughout this
// repository in place of one Go type per ESTree kind. A *Node is
// immutable once pushed onto a jsbuilder.Builder's stack; rewrites
// (e.g. IntoPattern) allocate a fresh Node rather than mutate in place.
type Node struct {
	Kind  Kind
	Start int
	End   int
	Loc   Loc

	// Identifier
	Name string

	// Literal
	Value LiteralValue
	Raw   string

	// Operators and boolean flags, reused across several kinds.
	Operator  string // Binary/Logical/Unary/Update/Assignment
	Prefix    bool   // Unary/Update
	Computed  bool   // Member/Property
	Optional  bool   // MemberExpression/CallExpression (ChainExpression segments)
	Shorthand bool   // Property
	Method    bool   // Property
	Generator bool   // Function*
	Async     bool   // Function/Arrow
	Delegate  bool   // yield*
	Tail      bool   // TemplateElement

	PropKind   string // Property.kind: "init" | "get" | "set"
	DeclKind   string // VariableDeclaration.kind: "var" | "let" | "const"
	SourceType string // Program.sourceType: "script" | "module"
	Directive  string // ExpressionStatement.directive, when present
	MetaName   string // MetaProperty.meta.name
	PropName   string // MetaProperty.property.name
	MethodKind string // MethodDefinition.kind: "constructor" | "method" | "get" | "set"
	Static     bool   // MethodDefinition.static

	// Structural children. Not every field applies to every Kind; see
	// the corresponding case in MarshalJSON for the authoritative
	// field set per Kind.
	Body         []*Node // Program/BlockStatement body list
	BodyStmt     *Node   // single-statement body of If/For/While/Function forms
	Expression   *Node
	Left         *Node
	Right        *Node
	Test         *Node
	Consequent   *Node
	Alternate    *Node
	Init         *Node
	Update       *Node
	Argument     *Node
	Arguments    []*Node
	Object       *Node
	PropertyNode *Node
	PropValue    *Node // Property.value
	Callee       *Node
	Params       []*Node
	Id           *Node
	Declarations []*Node
	Elements     []*Node // ArrayExpression/ArrayPattern; nil entries are elisions
	Properties   []*Node
	Key          *Node
	Tag          *Node
	Quasi        *Node
	Quasis       []*Node
	Expressions  []*Node

	Label       *Node   // BreakStatement/ContinueStatement/LabeledStatement
	Discriminant *Node  // SwitchStatement
	Cases        []*Node // SwitchStatement; SwitchCase
	Handler      *Node   // TryStatement.handler (CatchClause)
	Finalizer    *Node   // TryStatement.finalizer
	Param        *Node   // CatchClause.param (nullable)
	SuperClass   *Node   // ClassDeclaration/ClassExpression.superClass (nullable)
}

// NodeRef names the sharing discipline described in the distilled
// spec's data model: a *Node already behaves like a reference-counted
// handle under Go's GC, so NodeRef is simply an alias.
type NodeRef = *Node
