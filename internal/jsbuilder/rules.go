package jsbuilder

// Rule names one grammar production this builder knows how to reduce.
// The distilled spec's external grammar table hands out dense integer
// rule IDs (§4.4); this repository has no real grammar generator to
// issue them, so Rule stands in as a closed string enum and the
// dispatch table below is keyed by name instead of by ID.
type Rule string

const (
	RuleEmptyScript Rule = "EmptyScript"
	RuleScript      Rule = "Script"
	RuleEmptyModule Rule = "EmptyModule"
	RuleModule      Rule = "Module"

	RuleIdentifier       Rule = "Identifier"
	RuleNullLiteral      Rule = "NullLiteral"
	RuleTrueLiteral      Rule = "TrueLiteral"
	RuleFalseLiteral     Rule = "FalseLiteral"
	RuleNumericLiteral   Rule = "NumericLiteral"
	RuleStringLiteral    Rule = "StringLiteral"
	RuleRegExpLiteral    Rule = "RegExpLiteral"
	RuleSuper            Rule = "Super"

	RuleVariableDeclaration     Rule = "VariableDeclaration"
	RuleVariableDeclarator      Rule = "VariableDeclarator"
	RuleVariableDeclaratorInit  Rule = "VariableDeclaratorInit"

	RuleEmptyStatement      Rule = "EmptyStatement"
	RuleExpressionStatement Rule = "ExpressionStatement"
	RuleBlockStatementEmpty Rule = "BlockStatementEmpty"
	RuleBlockStatement      Rule = "BlockStatement"
	RuleIfStatement         Rule = "IfStatement"
	RuleIfElseStatement     Rule = "IfElseStatement"
	RuleWhileStatement      Rule = "WhileStatement"
	RuleDoWhileStatement    Rule = "DoWhileStatement"

	RuleForStatement               Rule = "ForStatement"
	RuleForStatementNoInit         Rule = "ForStatementNoInit"
	RuleForStatementNoTest         Rule = "ForStatementNoTest"
	RuleForStatementNoUpdate       Rule = "ForStatementNoUpdate"
	RuleForStatementNoInitTest     Rule = "ForStatementNoInitTest"
	RuleForStatementNoInitUpdate   Rule = "ForStatementNoInitUpdate"
	RuleForStatementNoTestUpdate   Rule = "ForStatementNoTestUpdate"
	RuleForStatementEmpty          Rule = "ForStatementEmpty"
	RuleForInStatement             Rule = "ForInStatement"
	RuleForOfStatement             Rule = "ForOfStatement"
	RuleForOfStatementAwait        Rule = "ForOfStatementAwait"

	RuleReturnStatementNoArgument Rule = "ReturnStatementNoArgument"
	RuleReturnStatement           Rule = "ReturnStatement"

	RuleFunctionDeclaration          Rule = "FunctionDeclaration"
	RuleGeneratorDeclaration         Rule = "GeneratorDeclaration"
	RuleAsyncFunctionDeclaration     Rule = "AsyncFunctionDeclaration"
	RuleAsyncGeneratorDeclaration    Rule = "AsyncGeneratorDeclaration"
	RuleFunctionBodyEmpty            Rule = "FunctionBodyEmpty"
	RuleFunctionBody                 Rule = "FunctionBody"

	RuleParamListEmpty  Rule = "ParamListEmpty"
	RuleParamList       Rule = "ParamList"
	RuleParamListAppend Rule = "ParamListAppend"
	RuleParamListRest   Rule = "ParamListRest"

	RuleStatementList       Rule = "StatementList"
	RuleStatementListAppend Rule = "StatementListAppend"

	RuleBreakStatementNoLabel    Rule = "BreakStatementNoLabel"
	RuleBreakStatement           Rule = "BreakStatement"
	RuleContinueStatementNoLabel Rule = "ContinueStatementNoLabel"
	RuleContinueStatement        Rule = "ContinueStatement"
	RuleLabeledStatement         Rule = "LabeledStatement"

	RuleSwitchStatement    Rule = "SwitchStatement"
	RuleSwitchCaseList     Rule = "SwitchCaseList"
	RuleSwitchCaseListAppend Rule = "SwitchCaseListAppend"
	RuleSwitchCase         Rule = "SwitchCase"
	RuleSwitchCaseDefault  Rule = "SwitchCaseDefault"
	RuleSwitchCaseEmpty      Rule = "SwitchCaseEmpty"
	RuleSwitchCaseDefaultEmpty Rule = "SwitchCaseDefaultEmpty"

	RuleTryStatementCatch           Rule = "TryStatementCatch"
	RuleTryStatementCatchParam      Rule = "TryStatementCatchParam"
	RuleTryStatementFinally         Rule = "TryStatementFinally"
	RuleTryStatementCatchFinally    Rule = "TryStatementCatchFinally"
	RuleTryStatementCatchParamFinally Rule = "TryStatementCatchParamFinally"

	RuleClassDeclaration         Rule = "ClassDeclaration"
	RuleClassDeclarationHeritage Rule = "ClassDeclarationHeritage"
	RuleClassExpression          Rule = "ClassExpression"
	RuleClassExpressionHeritage  Rule = "ClassExpressionHeritage"
	RuleClassBodyEmpty           Rule = "ClassBodyEmpty"
	RuleClassBody                Rule = "ClassBody"
	RuleClassElementList         Rule = "ClassElementList"
	RuleClassElementListAppend   Rule = "ClassElementListAppend"
	RuleMethodDefinition         Rule = "MethodDefinition"
	RuleMethodDefinitionStatic   Rule = "MethodDefinitionStatic"
	RuleMethodDefinitionGet      Rule = "MethodDefinitionGet"
	RuleMethodDefinitionSet      Rule = "MethodDefinitionSet"
	RuleMethodDefinitionComputed Rule = "MethodDefinitionComputed"

	RuleMemberExpression         Rule = "MemberExpression"
	RuleMemberExpressionComputed Rule = "MemberExpressionComputed"

	RuleArguments      Rule = "Arguments"
	RuleArgumentsEmpty Rule = "ArgumentsEmpty"
	RuleArgumentsComma Rule = "ArgumentsComma"
	RuleArgumentListRest   Rule = "ArgumentListRest"
	RuleArgumentListAppend Rule = "ArgumentListAppend"

	RuleCallExpression         Rule = "CallExpression"
	RuleNewExpression          Rule = "NewExpression"
	RuleTaggedTemplateExpr     Rule = "TaggedTemplateExpression"

	RuleAssignmentExpression Rule = "AssignmentExpression"
	RuleConditionalExpression Rule = "ConditionalExpression"
	RuleBinaryExpression     Rule = "BinaryExpression"
	RuleLogicalExpression    Rule = "LogicalExpression"
	RuleUnaryExpression      Rule = "UnaryExpression"
	RuleUpdateExpressionPrefix Rule = "UpdateExpressionPrefix"
	RuleUpdateExpressionSuffix Rule = "UpdateExpressionSuffix"
	RuleSequenceExpression   Rule = "SequenceExpression"

	RuleArrowFunction            Rule = "ArrowFunction"
	RuleAsyncArrowFunction       Rule = "AsyncArrowFunction"
	RuleAsyncArrowFunctionSingle Rule = "AsyncArrowFunctionSingleParam"
	RuleFunctionExpression       Rule = "FunctionExpression"

	RuleYieldExpressionNoArgument Rule = "YieldExpressionNoArgument"
	RuleYieldExpression           Rule = "YieldExpression"
	RuleYieldDelegateExpression   Rule = "YieldDelegateExpression"
	RuleAwaitExpression           Rule = "AwaitExpression"
	RuleNewTarget                 Rule = "NewTarget"
	RuleImportMeta                Rule = "ImportMeta"

	RuleObjectExpressionEmpty Rule = "ObjectExpressionEmpty"
	RuleObjectExpression      Rule = "ObjectExpression"
	RulePropertyShorthand     Rule = "PropertyShorthand"
	RulePropertyValue         Rule = "PropertyValue"
	RulePropertyGet           Rule = "PropertyGet"
	RulePropertySet           Rule = "PropertySet"
	RuleCoverInitializedName  Rule = "CoverInitializedName"
	RulePropertyList          Rule = "PropertyList"
	RulePropertyListAppend    Rule = "PropertyListAppend"
	RuleSpreadProperty        Rule = "SpreadProperty"

	RuleArrayExpressionEmpty Rule = "ArrayExpressionEmpty"
	RuleArrayExpression      Rule = "ArrayExpression"
	RuleElementList          Rule = "ElementList"
	RuleElementListAppend    Rule = "ElementListAppend"
	RuleElementListElision   Rule = "ElementListElision"
	RuleElisionAppend        Rule = "ElisionAppend"
	RuleSpreadElement        Rule = "SpreadElement"

	RuleOptionalCallStart           Rule = "OptionalCallStart"
	RuleOptionalMemberStart         Rule = "OptionalMemberStart"
	RuleOptionalComputedMemberStart Rule = "OptionalComputedMemberStart"
	RuleOptionalChainAppendCall     Rule = "OptionalChainAppendCall"
	RuleOptionalChainAppendMember   Rule = "OptionalChainAppendMember"
	RuleOptionalChainAppendComputed Rule = "OptionalChainAppendComputedMember"
	RuleOptionalExpression          Rule = "OptionalExpression"

	RuleTemplateLiteralNoSubst Rule = "TemplateLiteralNoSubst"
	RuleTemplateLiteral        Rule = "TemplateLiteral"
	RuleTemplateSpansTail      Rule = "TemplateSpansTail"
	RuleTemplateMiddleList     Rule = "TemplateMiddleList"
	RuleTemplateMiddleAppend   Rule = "TemplateMiddleListAppend"
)

// actions is the dense rule_id -> action table of the distilled spec's
// §4.4, realized as a name-keyed map since this repository has no real
// grammar generator handing out integer IDs. Populated in doc-ordered
// init() calls across this package's other files so each file stays
// focused on one concern (literals, statements, expressions, ...).
var actions = map[Rule]func(*Builder) error{}

func register(rule Rule, fn func(*Builder) error) {
	actions[rule] = fn
}

// registerV wraps a void action (one that cannot fail) for rules whose
// grammar production has no early-error potential.
func registerV(rule Rule, fn func(*Builder)) {
	actions[rule] = func(b *Builder) error {
		fn(b)
		return nil
	}
}
