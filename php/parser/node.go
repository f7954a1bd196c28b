package parser

import (
	"strconv"
	"strings"
)

type NodeKind int

const (
	KindSourceFile NodeKind = iota
	KindScriptSection

	// Declarations
	KindClassDeclaration
	KindClassMembers
	KindFunctionDeclaration
	KindMethodDeclaration
	KindPropertyDeclaration
	KindConstDeclaration
	KindMissingMemberDeclaration
	KindTraitUseClause
	KindParameter
	KindQualifiedName
	KindNullableType
	KindRelativeSpecifier
	KindDelimitedList
	KindNamespaceDefinition
	KindNamespaceUseDeclaration
	KindNamespaceUseClause
	KindNamespaceAliasingClause

	// Statements
	KindCompoundStatement
	KindEmptyStatement
	KindExpressionStatement
	KindNamedLabelStatement
	KindIfStatement
	KindElseIfClause
	KindElseClause
	KindSwitchStatement
	KindCaseStatement
	KindWhileStatement
	KindDoStatement
	KindReturnStatement
	KindBreakOrContinueStatement
	KindThrowStatement
	KindGotoStatement
	KindEchoStatement

	// Expressions
	KindExpression
	KindTemplateExpression
)

var nodeKindNames = map[NodeKind]string{
	KindSourceFile:               "SourceFile",
	KindScriptSection:            "ScriptSection",
	KindClassDeclaration:         "ClassDeclaration",
	KindClassMembers:             "ClassMembers",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindMethodDeclaration:        "MethodDeclaration",
	KindPropertyDeclaration:      "PropertyDeclaration",
	KindConstDeclaration:         "ConstDeclaration",
	KindMissingMemberDeclaration: "MissingMemberDeclaration",
	KindTraitUseClause:           "TraitUseClause",
	KindParameter:                "Parameter",
	KindQualifiedName:            "QualifiedName",
	KindNullableType:             "NullableType",
	KindRelativeSpecifier:        "RelativeSpecifier",
	KindDelimitedList:            "DelimitedList",
	KindNamespaceDefinition:      "NamespaceDefinition",
	KindNamespaceUseDeclaration:  "NamespaceUseDeclaration",
	KindNamespaceUseClause:       "NamespaceUseClause",
	KindNamespaceAliasingClause:  "NamespaceAliasingClause",
	KindCompoundStatement:        "CompoundStatement",
	KindEmptyStatement:           "EmptyStatement",
	KindExpressionStatement:      "ExpressionStatement",
	KindNamedLabelStatement:      "NamedLabelStatement",
	KindIfStatement:              "IfStatement",
	KindElseIfClause:             "ElseIfClause",
	KindElseClause:               "ElseClause",
	KindSwitchStatement:          "SwitchStatement",
	KindCaseStatement:            "CaseStatement",
	KindWhileStatement:           "WhileStatement",
	KindDoStatement:              "DoStatement",
	KindReturnStatement:          "ReturnStatement",
	KindBreakOrContinueStatement: "BreakOrContinueStatement",
	KindThrowStatement:           "ThrowStatement",
	KindGotoStatement:            "GotoStatement",
	KindEchoStatement:            "EchoStatement",
	KindExpression:               "Expression",
	KindTemplateExpression:       "TemplateExpression",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Element is a child slot in the tree: either a Node or a *Token.
type Element interface {
	element()
}

// Node is an interior tree node. The set of implementations is closed;
// every production in this package has its own struct.
type Node interface {
	Element
	Kind() NodeKind
	Parent() Node
	// Children returns the present children in document order.
	Children() []Element
	setParent(Node)
}

type node struct {
	parent Node
}

func (n *node) element() {}

func (n *node) Parent() Node {
	return n.parent
}

func (n *node) setParent(p Node) {
	n.parent = p
}

// adopt points every child node of n back at n.
func adopt[T Node](n T) T {
	for _, child := range n.Children() {
		if c, ok := child.(Node); ok {
			c.setParent(n)
		}
	}
	return n
}

// children accumulates present fields in order, dropping nil tokens and
// nil nodes.
type children []Element

func (c *children) token(t *Token) {
	if t != nil {
		*c = append(*c, t)
	}
}

func (c *children) tokens(ts []*Token) {
	for _, t := range ts {
		c.token(t)
	}
}

func (c *children) node(n Node) {
	if n != nil {
		*c = append(*c, n)
	}
}

func (c *children) elements(es []Element) {
	for _, e := range es {
		if e != nil {
			*c = append(*c, e)
		}
	}
}

// Span is the extent of an element. FullStart includes the leading
// trivia of the first token; Start does not.
type Span struct {
	FullStart int
	Start     int
	End       int
}

// SpanOf derives the span of e from its first and last leaf.
func SpanOf(e Element) Span {
	first, last := firstToken(e), lastToken(e)
	if first == nil || last == nil {
		return Span{}
	}
	return Span{FullStart: first.FullStart, Start: first.Start, End: last.End()}
}

func firstToken(e Element) *Token {
	switch e := e.(type) {
	case *Token:
		return e
	case Node:
		for _, child := range e.Children() {
			if t := firstToken(child); t != nil {
				return t
			}
		}
	}
	return nil
}

func lastToken(e Element) *Token {
	switch e := e.(type) {
	case *Token:
		return e
	case Node:
		kids := e.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			if t := lastToken(kids[i]); t != nil {
				return t
			}
		}
	}
	return nil
}

// Inspect walks the tree in document order. If f returns false for a
// node, its children are not visited.
func Inspect(e Element, f func(Element) bool) {
	if e == nil || !f(e) {
		return
	}
	if n, ok := e.(Node); ok {
		for _, child := range n.Children() {
			Inspect(child, f)
		}
	}
}

// Tokens returns every leaf under e in document order.
func Tokens(e Element) []*Token {
	var result []*Token
	Inspect(e, func(el Element) bool {
		if t, ok := el.(*Token); ok {
			result = append(result, t)
		}
		return true
	})
	return result
}

// FullText concatenates the full text of every leaf under e. For a
// SourceFile this reproduces the parsed input exactly.
func FullText(e Element, src []byte) string {
	var b strings.Builder
	for _, t := range Tokens(e) {
		b.Write(src[t.FullStart:t.End()])
	}
	return b.String()
}

// ErrorTokens returns the Missing, Skipped and Unsupported leaves under e.
func ErrorTokens(e Element) []*Token {
	var result []*Token
	for _, t := range Tokens(e) {
		if t.Kind.IsError() {
			result = append(result, t)
		}
	}
	return result
}

// FindAncestor returns the closest ancestor of n with the given kind.
func FindAncestor(n Node, kind NodeKind) Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// Dump renders e as an indented tree, one element per line.
func Dump(e Element, src []byte) string {
	var b strings.Builder
	dump(&b, e, src, 0, nil)
	return b.String()
}

// DumpWithPositions is Dump with line:column ranges on every line.
func DumpWithPositions(e Element, src []byte, lines *LineMap) string {
	var b strings.Builder
	dump(&b, e, src, 0, lines)
	return b.String()
}

func dump(b *strings.Builder, e Element, src []byte, indent int, lines *LineMap) {
	b.WriteString(strings.Repeat("  ", indent))
	switch e := e.(type) {
	case *Token:
		b.WriteString(e.Kind.String())
		if lines != nil {
			b.WriteString(" [" + lines.Position(e.Start).String() + "-" + lines.Position(e.End()).String() + "]")
		}
		if e.Length > 0 {
			b.WriteString(" " + strconv.Quote(e.Text(src)))
		}
		b.WriteString("\n")
	case Node:
		b.WriteString(e.Kind().String())
		if lines != nil {
			span := SpanOf(e)
			b.WriteString(" [" + lines.Position(span.Start).String() + "-" + lines.Position(span.End).String() + "]")
		}
		b.WriteString("\n")
		for _, child := range e.Children() {
			dump(b, child, src, indent+1, lines)
		}
	}
}
