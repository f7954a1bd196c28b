package workspace

import (
	"strings"

	"github.com/dhamidi/phpcst/php/parser"
)

type SymbolKind int

const (
	SymbolNamespace SymbolKind = iota
	SymbolClass
	SymbolFunction
	SymbolMethod
	SymbolProperty
	SymbolConstant
)

// Symbol is one entry of a file outline. Start and End cover the whole
// declaration; NameStart and NameEnd cover its name.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Detail    string
	Start     parser.Position
	End       parser.Position
	NameStart parser.Position
	NameEnd   parser.Position
	Children  []Symbol
}

const (
	missingName     = "<missing>"
	globalNamespace = "global"
)

// Outline lists the declarations of tree. Class members nest under their
// class and braced namespaces nest their contents.
func Outline(tree *parser.SourceFile, src []byte, lines *parser.LineMap) []Symbol {
	o := &outliner{src: src, lines: lines}
	return o.collect(tree)
}

type outliner struct {
	src   []byte
	lines *parser.LineMap
}

func (o *outliner) collect(e parser.Element) []Symbol {
	switch n := e.(type) {
	case *parser.NamespaceDefinition:
		name := globalNamespace
		if n.Name != nil {
			name = o.nameOf(n.Name)
		}
		sym := o.symbol(n, SymbolNamespace, name, n.Name)
		if n.Body != nil {
			sym.Children = o.collect(n.Body)
		}
		return []Symbol{sym}
	case *parser.ClassDeclaration:
		sym := o.symbol(n, SymbolClass, o.nameOf(n.Name), n.Name)
		if n.BaseClass != nil {
			sym.Detail = "extends " + o.text(n.BaseClass)
		}
		if n.Members != nil {
			sym.Children = o.collect(n.Members)
		}
		return []Symbol{sym}
	case *parser.FunctionDeclaration:
		sym := o.symbol(n, SymbolFunction, o.nameOf(n.Name), n.Name)
		sym.Detail = o.signature(&n.FunctionDefinition)
		return []Symbol{sym}
	case *parser.MethodDeclaration:
		sym := o.symbol(n, SymbolMethod, o.nameOf(n.Name), n.Name)
		sym.Detail = o.signature(&n.FunctionDefinition)
		return []Symbol{sym}
	case *parser.PropertyDeclaration:
		return o.listed(n.Variables, SymbolProperty)
	case *parser.ConstDeclaration:
		return o.listed(n.Elements, SymbolConstant)
	case parser.Node:
		var result []Symbol
		for _, child := range n.Children() {
			result = append(result, o.collect(child)...)
		}
		return result
	}
	return nil
}

// listed makes one symbol per item of a property or constant list. The
// first leaf of each item is its name.
func (o *outliner) listed(list *parser.DelimitedList, kind SymbolKind) []Symbol {
	if list == nil {
		return nil
	}
	var result []Symbol
	for _, item := range list.Items() {
		toks := parser.Tokens(item)
		if len(toks) == 0 {
			continue
		}
		result = append(result, o.symbol(item, kind, o.nameOf(toks[0]), toks[0]))
	}
	return result
}

func (o *outliner) symbol(decl parser.Element, kind SymbolKind, name string, nameElem parser.Element) Symbol {
	span := parser.SpanOf(decl)
	sym := Symbol{
		Name:  name,
		Kind:  kind,
		Start: o.lines.Position(span.Start),
		End:   o.lines.Position(span.End),
	}
	sym.NameStart, sym.NameEnd = sym.Start, sym.Start
	if present(nameElem) {
		if s := parser.SpanOf(nameElem); s.End > s.Start {
			sym.NameStart, sym.NameEnd = o.lines.Position(s.Start), o.lines.Position(s.End)
		}
	}
	return sym
}

func (o *outliner) nameOf(e parser.Element) string {
	var name string
	switch e := e.(type) {
	case *parser.Token:
		if e != nil {
			name = e.Text(o.src)
		}
	case *parser.QualifiedName:
		if e != nil {
			name = o.text(e)
		}
	}
	if name == "" {
		return missingName
	}
	return name
}

func (o *outliner) signature(d *parser.FunctionDefinition) string {
	var b strings.Builder
	b.WriteString(o.text(d.OpenParen))
	if d.Parameters != nil {
		b.WriteString(o.text(d.Parameters))
	}
	b.WriteString(o.text(d.CloseParen))
	if d.ReturnType != nil {
		b.WriteString(": " + o.text(d.ReturnType))
	}
	return b.String()
}

// text is the source of e without its leading trivia.
func (o *outliner) text(e parser.Element) string {
	if !present(e) {
		return ""
	}
	return strings.TrimSpace(parser.FullText(e, o.src))
}

// present reports whether e holds a value, looking through typed nils.
func present(e parser.Element) bool {
	switch e := e.(type) {
	case nil:
		return false
	case *parser.Token:
		return e != nil
	case *parser.QualifiedName:
		return e != nil
	}
	return true
}
