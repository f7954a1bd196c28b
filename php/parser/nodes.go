package parser

// SourceFile is the root of every parse.
type SourceFile struct {
	node
	Sections  []*ScriptSection
	EndOfFile *Token
}

func (n *SourceFile) Kind() NodeKind { return KindSourceFile }

func (n *SourceFile) Children() []Element {
	var c children
	for _, s := range n.Sections {
		c.node(s)
	}
	c.token(n.EndOfFile)
	return c
}

// ScriptSection is one region of literal text followed by code. Text is
// a synthetic token covering everything before StartTag.
type ScriptSection struct {
	node
	Text       *Token
	StartTag   *Token
	Statements []Element
	EndTag     *Token
}

func (n *ScriptSection) Kind() NodeKind { return KindScriptSection }

func (n *ScriptSection) Children() []Element {
	var c children
	c.token(n.Text)
	c.token(n.StartTag)
	c.elements(n.Statements)
	c.token(n.EndTag)
	return c
}

type ClassDeclaration struct {
	node
	Modifier          *Token
	ClassKeyword      *Token
	Name              *Token
	ExtendsKeyword    *Token
	BaseClass         *QualifiedName
	ImplementsKeyword *Token
	Interfaces        *DelimitedList
	Members           *ClassMemberList
}

func (n *ClassDeclaration) Kind() NodeKind { return KindClassDeclaration }

func (n *ClassDeclaration) Children() []Element {
	var c children
	c.token(n.Modifier)
	c.token(n.ClassKeyword)
	c.token(n.Name)
	c.token(n.ExtendsKeyword)
	if n.BaseClass != nil {
		c.node(n.BaseClass)
	}
	c.token(n.ImplementsKeyword)
	if n.Interfaces != nil {
		c.node(n.Interfaces)
	}
	if n.Members != nil {
		c.node(n.Members)
	}
	return c
}

type ClassMemberList struct {
	node
	OpenBrace  *Token
	Elements   []Element
	CloseBrace *Token
}

func (n *ClassMemberList) Kind() NodeKind { return KindClassMembers }

func (n *ClassMemberList) Children() []Element {
	var c children
	c.token(n.OpenBrace)
	c.elements(n.Elements)
	c.token(n.CloseBrace)
	return c
}

// FunctionDefinition holds the parts shared by functions and methods.
type FunctionDefinition struct {
	FunctionKeyword *Token
	ByRef           *Token
	Name            *Token
	OpenParen       *Token
	Parameters      *DelimitedList
	CloseParen      *Token
	Colon           *Token
	// ReturnType is a *QualifiedName or a reserved type token.
	ReturnType Element
	// Body is a *CompoundStatement, a ";" token for an abstract method,
	// or a Missing token.
	Body Element
}

func (d *FunctionDefinition) children(c *children) {
	c.token(d.FunctionKeyword)
	c.token(d.ByRef)
	c.token(d.Name)
	c.token(d.OpenParen)
	if d.Parameters != nil {
		c.node(d.Parameters)
	}
	c.token(d.CloseParen)
	c.token(d.Colon)
	c.elements([]Element{d.ReturnType, d.Body})
}

type FunctionDeclaration struct {
	node
	FunctionDefinition
}

func (n *FunctionDeclaration) Kind() NodeKind { return KindFunctionDeclaration }

func (n *FunctionDeclaration) Children() []Element {
	var c children
	n.FunctionDefinition.children(&c)
	return c
}

type MethodDeclaration struct {
	node
	Modifiers []*Token
	FunctionDefinition
}

func (n *MethodDeclaration) Kind() NodeKind { return KindMethodDeclaration }

func (n *MethodDeclaration) Children() []Element {
	var c children
	c.tokens(n.Modifiers)
	n.FunctionDefinition.children(&c)
	return c
}

// PropertyDeclaration elements are variables or assignment expressions.
type PropertyDeclaration struct {
	node
	Modifiers []*Token
	Type      Element
	Variables *DelimitedList
	Semicolon *Token
}

func (n *PropertyDeclaration) Kind() NodeKind { return KindPropertyDeclaration }

func (n *PropertyDeclaration) Children() []Element {
	var c children
	c.tokens(n.Modifiers)
	c.elements([]Element{n.Type})
	if n.Variables != nil {
		c.node(n.Variables)
	}
	c.token(n.Semicolon)
	return c
}

// ConstDeclaration is "const A = 1, B = 2;" at the top level or, with
// modifiers, inside a class body. Each element is an assignment
// expression.
type ConstDeclaration struct {
	node
	Modifiers    []*Token
	ConstKeyword *Token
	Elements     *DelimitedList
	Semicolon    *Token
}

func (n *ConstDeclaration) Kind() NodeKind { return KindConstDeclaration }

func (n *ConstDeclaration) Children() []Element {
	var c children
	c.tokens(n.Modifiers)
	c.token(n.ConstKeyword)
	if n.Elements != nil {
		c.node(n.Elements)
	}
	c.token(n.Semicolon)
	return c
}

// MissingMemberDeclaration holds member modifiers that were not followed
// by anything a class body can contain.
type MissingMemberDeclaration struct {
	node
	Modifiers []*Token
	Missing   *Token
}

func (n *MissingMemberDeclaration) Kind() NodeKind { return KindMissingMemberDeclaration }

func (n *MissingMemberDeclaration) Children() []Element {
	var c children
	c.tokens(n.Modifiers)
	c.token(n.Missing)
	return c
}

type TraitUseClause struct {
	node
	UseKeyword *Token
	Names      *DelimitedList
	Semicolon  *Token
}

func (n *TraitUseClause) Kind() NodeKind { return KindTraitUseClause }

func (n *TraitUseClause) Children() []Element {
	var c children
	c.token(n.UseKeyword)
	if n.Names != nil {
		c.node(n.Names)
	}
	c.token(n.Semicolon)
	return c
}

type Parameter struct {
	node
	// Type is a *QualifiedName, a *NullableType or a reserved type token.
	Type         Element
	ByRef        *Token
	VariableName *Token
	Equals       *Token
	Default      Element
}

func (n *Parameter) Kind() NodeKind { return KindParameter }

func (n *Parameter) Children() []Element {
	var c children
	c.elements([]Element{n.Type})
	c.token(n.ByRef)
	c.token(n.VariableName)
	c.token(n.Equals)
	c.elements([]Element{n.Default})
	return c
}

type QualifiedName struct {
	node
	RelativeSpecifier *RelativeSpecifier
	GlobalSpecifier   *Token
	NameParts         *DelimitedList
}

func (n *QualifiedName) Kind() NodeKind { return KindQualifiedName }

func (n *QualifiedName) Children() []Element {
	var c children
	if n.RelativeSpecifier != nil {
		c.node(n.RelativeSpecifier)
	}
	c.token(n.GlobalSpecifier)
	if n.NameParts != nil {
		c.node(n.NameParts)
	}
	return c
}

// NullableType is "?Type".
type NullableType struct {
	node
	Question *Token
	Type     Element
}

func (n *NullableType) Kind() NodeKind { return KindNullableType }

func (n *NullableType) Children() []Element {
	var c children
	c.token(n.Question)
	c.elements([]Element{n.Type})
	return c
}

// RelativeSpecifier is the "namespace\" prefix of a qualified name.
type RelativeSpecifier struct {
	node
	NamespaceKeyword *Token
	Backslash        *Token
}

func (n *RelativeSpecifier) Kind() NodeKind { return KindRelativeSpecifier }

func (n *RelativeSpecifier) Children() []Element {
	var c children
	c.token(n.NamespaceKeyword)
	c.token(n.Backslash)
	return c
}

// DelimitedList interleaves elements and their separators in source
// order.
type DelimitedList struct {
	node
	Elements []Element
}

func (n *DelimitedList) Kind() NodeKind { return KindDelimitedList }

func (n *DelimitedList) Children() []Element {
	var c children
	c.elements(n.Elements)
	return c
}

func (n *DelimitedList) addElement(e Element) {
	n.Elements = append(n.Elements, e)
}

// Items returns the list elements without separators.
func (n *DelimitedList) Items() []Element {
	var result []Element
	for i, e := range n.Elements {
		if i%2 == 0 {
			result = append(result, e)
		}
	}
	return result
}

// Separators returns the separator tokens.
func (n *DelimitedList) Separators() []*Token {
	var result []*Token
	for i, e := range n.Elements {
		if i%2 == 1 {
			result = append(result, e.(*Token))
		}
	}
	return result
}

type NamespaceDefinition struct {
	node
	NamespaceKeyword *Token
	Name             *QualifiedName
	Body             *CompoundStatement
	Semicolon        *Token
}

func (n *NamespaceDefinition) Kind() NodeKind { return KindNamespaceDefinition }

func (n *NamespaceDefinition) Children() []Element {
	var c children
	c.token(n.NamespaceKeyword)
	if n.Name != nil {
		c.node(n.Name)
	}
	if n.Body != nil {
		c.node(n.Body)
	}
	c.token(n.Semicolon)
	return c
}

type NamespaceUseDeclaration struct {
	node
	UseKeyword *Token
	Clauses    *DelimitedList
	Semicolon  *Token
}

func (n *NamespaceUseDeclaration) Kind() NodeKind { return KindNamespaceUseDeclaration }

func (n *NamespaceUseDeclaration) Children() []Element {
	var c children
	c.token(n.UseKeyword)
	if n.Clauses != nil {
		c.node(n.Clauses)
	}
	c.token(n.Semicolon)
	return c
}

type NamespaceUseClause struct {
	node
	Name  *QualifiedName
	Alias *NamespaceAliasingClause
}

func (n *NamespaceUseClause) Kind() NodeKind { return KindNamespaceUseClause }

func (n *NamespaceUseClause) Children() []Element {
	var c children
	if n.Name != nil {
		c.node(n.Name)
	}
	if n.Alias != nil {
		c.node(n.Alias)
	}
	return c
}

type NamespaceAliasingClause struct {
	node
	AsKeyword *Token
	Name      *Token
}

func (n *NamespaceAliasingClause) Kind() NodeKind { return KindNamespaceAliasingClause }

func (n *NamespaceAliasingClause) Children() []Element {
	var c children
	c.token(n.AsKeyword)
	c.token(n.Name)
	return c
}

type CompoundStatement struct {
	node
	OpenBrace  *Token
	Statements []Element
	CloseBrace *Token
}

func (n *CompoundStatement) Kind() NodeKind { return KindCompoundStatement }

func (n *CompoundStatement) Children() []Element {
	var c children
	c.token(n.OpenBrace)
	c.elements(n.Statements)
	c.token(n.CloseBrace)
	return c
}

type EmptyStatement struct {
	node
	Semicolon *Token
}

func (n *EmptyStatement) Kind() NodeKind { return KindEmptyStatement }

func (n *EmptyStatement) Children() []Element {
	var c children
	c.token(n.Semicolon)
	return c
}

type ExpressionStatement struct {
	node
	Expression Element
	Semicolon  *Token
}

func (n *ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }

func (n *ExpressionStatement) Children() []Element {
	var c children
	c.elements([]Element{n.Expression})
	c.token(n.Semicolon)
	return c
}

type NamedLabelStatement struct {
	node
	Name      *Token
	Colon     *Token
	Statement Element
}

func (n *NamedLabelStatement) Kind() NodeKind { return KindNamedLabelStatement }

func (n *NamedLabelStatement) Children() []Element {
	var c children
	c.token(n.Name)
	c.token(n.Colon)
	c.elements([]Element{n.Statement})
	return c
}

// IfStatement covers both the brace form and the colon form
// ("if (...): ... endif;"). In the brace form Statements holds the single
// controlled statement.
type IfStatement struct {
	node
	IfKeyword     *Token
	OpenParen     *Token
	Expression    Element
	CloseParen    *Token
	Colon         *Token
	Statements    []Element
	ElseIfClauses []*ElseIfClause
	ElseClause    *ElseClause
	EndIfKeyword  *Token
	Semicolon     *Token
}

func (n *IfStatement) Kind() NodeKind { return KindIfStatement }

func (n *IfStatement) Children() []Element {
	var c children
	c.token(n.IfKeyword)
	c.token(n.OpenParen)
	c.elements([]Element{n.Expression})
	c.token(n.CloseParen)
	c.token(n.Colon)
	c.elements(n.Statements)
	for _, clause := range n.ElseIfClauses {
		c.node(clause)
	}
	if n.ElseClause != nil {
		c.node(n.ElseClause)
	}
	c.token(n.EndIfKeyword)
	c.token(n.Semicolon)
	return c
}

type ElseIfClause struct {
	node
	ElseIfKeyword *Token
	OpenParen     *Token
	Expression    Element
	CloseParen    *Token
	Colon         *Token
	Statements    []Element
}

func (n *ElseIfClause) Kind() NodeKind { return KindElseIfClause }

func (n *ElseIfClause) Children() []Element {
	var c children
	c.token(n.ElseIfKeyword)
	c.token(n.OpenParen)
	c.elements([]Element{n.Expression})
	c.token(n.CloseParen)
	c.token(n.Colon)
	c.elements(n.Statements)
	return c
}

type ElseClause struct {
	node
	ElseKeyword *Token
	Colon       *Token
	Statements  []Element
}

func (n *ElseClause) Kind() NodeKind { return KindElseClause }

func (n *ElseClause) Children() []Element {
	var c children
	c.token(n.ElseKeyword)
	c.token(n.Colon)
	c.elements(n.Statements)
	return c
}

// SwitchStatement covers "switch (...) { ... }" and
// "switch (...): ... endswitch;".
type SwitchStatement struct {
	node
	SwitchKeyword  *Token
	OpenParen      *Token
	Expression     Element
	CloseParen     *Token
	OpenBrace      *Token
	Colon          *Token
	CaseStatements []Element
	CloseBrace     *Token
	EndSwitch      *Token
	Semicolon      *Token
}

func (n *SwitchStatement) Kind() NodeKind { return KindSwitchStatement }

func (n *SwitchStatement) Children() []Element {
	var c children
	c.token(n.SwitchKeyword)
	c.token(n.OpenParen)
	c.elements([]Element{n.Expression})
	c.token(n.CloseParen)
	c.token(n.OpenBrace)
	c.token(n.Colon)
	c.elements(n.CaseStatements)
	c.token(n.CloseBrace)
	c.token(n.EndSwitch)
	c.token(n.Semicolon)
	return c
}

type CaseStatement struct {
	node
	// CaseKeyword is "case" or "default".
	CaseKeyword     *Token
	Expression      Element
	LabelTerminator *Token
	Statements      []Element
}

func (n *CaseStatement) Kind() NodeKind { return KindCaseStatement }

func (n *CaseStatement) Children() []Element {
	var c children
	c.token(n.CaseKeyword)
	c.elements([]Element{n.Expression})
	c.token(n.LabelTerminator)
	c.elements(n.Statements)
	return c
}

type WhileStatement struct {
	node
	WhileKeyword *Token
	OpenParen    *Token
	Expression   Element
	CloseParen   *Token
	Colon        *Token
	Statements   []Element
	EndWhile     *Token
	Semicolon    *Token
}

func (n *WhileStatement) Kind() NodeKind { return KindWhileStatement }

func (n *WhileStatement) Children() []Element {
	var c children
	c.token(n.WhileKeyword)
	c.token(n.OpenParen)
	c.elements([]Element{n.Expression})
	c.token(n.CloseParen)
	c.token(n.Colon)
	c.elements(n.Statements)
	c.token(n.EndWhile)
	c.token(n.Semicolon)
	return c
}

type DoStatement struct {
	node
	DoKeyword    *Token
	Statement    Element
	WhileKeyword *Token
	OpenParen    *Token
	Expression   Element
	CloseParen   *Token
	Semicolon    *Token
}

func (n *DoStatement) Kind() NodeKind { return KindDoStatement }

func (n *DoStatement) Children() []Element {
	var c children
	c.token(n.DoKeyword)
	c.elements([]Element{n.Statement})
	c.token(n.WhileKeyword)
	c.token(n.OpenParen)
	c.elements([]Element{n.Expression})
	c.token(n.CloseParen)
	c.token(n.Semicolon)
	return c
}

type ReturnStatement struct {
	node
	ReturnKeyword *Token
	Expression    Element
	Semicolon     *Token
}

func (n *ReturnStatement) Kind() NodeKind { return KindReturnStatement }

func (n *ReturnStatement) Children() []Element {
	var c children
	c.token(n.ReturnKeyword)
	c.elements([]Element{n.Expression})
	c.token(n.Semicolon)
	return c
}

type BreakOrContinueStatement struct {
	node
	Keyword   *Token
	Level     *Token
	Semicolon *Token
}

func (n *BreakOrContinueStatement) Kind() NodeKind { return KindBreakOrContinueStatement }

func (n *BreakOrContinueStatement) Children() []Element {
	var c children
	c.token(n.Keyword)
	c.token(n.Level)
	c.token(n.Semicolon)
	return c
}

type ThrowStatement struct {
	node
	ThrowKeyword *Token
	Expression   Element
	Semicolon    *Token
}

func (n *ThrowStatement) Kind() NodeKind { return KindThrowStatement }

func (n *ThrowStatement) Children() []Element {
	var c children
	c.token(n.ThrowKeyword)
	c.elements([]Element{n.Expression})
	c.token(n.Semicolon)
	return c
}

type GotoStatement struct {
	node
	GotoKeyword *Token
	Name        *Token
	Semicolon   *Token
}

func (n *GotoStatement) Kind() NodeKind { return KindGotoStatement }

func (n *GotoStatement) Children() []Element {
	var c children
	c.token(n.GotoKeyword)
	c.token(n.Name)
	c.token(n.Semicolon)
	return c
}

type EchoStatement struct {
	node
	EchoKeyword *Token
	Expressions *DelimitedList
	Semicolon   *Token
}

func (n *EchoStatement) Kind() NodeKind { return KindEchoStatement }

func (n *EchoStatement) Children() []Element {
	var c children
	c.token(n.EchoKeyword)
	if n.Expressions != nil {
		c.node(n.Expressions)
	}
	c.token(n.Semicolon)
	return c
}

// Expression is a stand-in for the expression grammar: a primary
// expression held as its raw children.
type Expression struct {
	node
	Elements []Element
}

func (n *Expression) Kind() NodeKind { return KindExpression }

func (n *Expression) Children() []Element {
	var c children
	c.elements(n.Elements)
	return c
}

// TemplateExpression is a double-quoted string with interpolated
// variables: start, then alternating variables and middles, then end.
type TemplateExpression struct {
	node
	Elements []Element
}

func (n *TemplateExpression) Kind() NodeKind { return KindTemplateExpression }

func (n *TemplateExpression) Children() []Element {
	var c children
	c.elements(n.Elements)
	return c
}
