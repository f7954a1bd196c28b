package parser

import (
	"testing"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindSourceFile, "SourceFile"},
		{KindScriptSection, "ScriptSection"},
		{KindClassDeclaration, "ClassDeclaration"},
		{KindMethodDeclaration, "MethodDeclaration"},
		{KindNullableType, "NullableType"},
		{KindDelimitedList, "DelimitedList"},
		{KindIfStatement, "IfStatement"},
		{KindCaseStatement, "CaseStatement"},
		{KindTemplateExpression, "TemplateExpression"},
		{NodeKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("NodeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestChildrenSkipAbsentFields(t *testing.T) {
	semi := &Token{Kind: TokenSemicolon, Start: 4, FullStart: 4, Length: 1}
	stmt := &ReturnStatement{ReturnKeyword: &Token{Kind: TokenReturn, Length: 6}, Semicolon: semi}

	kids := stmt.Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children, want 2", len(kids))
	}
	if kids[1] != semi {
		t.Error("second child should be the semicolon")
	}

	class := &ClassDeclaration{ClassKeyword: &Token{Kind: TokenClass}}
	if got := len(class.Children()); got != 1 {
		t.Errorf("got %d children, want 1", got)
	}
}

func TestAdoptSetsParent(t *testing.T) {
	inner := adopt(&EmptyStatement{Semicolon: &Token{Kind: TokenSemicolon}})
	block := adopt(&CompoundStatement{
		OpenBrace:  &Token{Kind: TokenOpenBrace},
		Statements: []Element{inner},
		CloseBrace: &Token{Kind: TokenCloseBrace},
	})

	if inner.Parent() != block {
		t.Error("statement parent should be the block")
	}
	if block.Parent() != nil {
		t.Error("root parent should be nil")
	}
	if FindAncestor(inner, KindCompoundStatement) != block {
		t.Error("FindAncestor did not find the block")
	}
	if FindAncestor(inner, KindClassDeclaration) != nil {
		t.Error("FindAncestor found a class that is not there")
	}
}

func TestDelimitedListItems(t *testing.T) {
	a := &Token{Kind: TokenName}
	comma := &Token{Kind: TokenComma}
	b := &Token{Kind: TokenName}
	list := &DelimitedList{Elements: []Element{a, comma, b}}

	items := list.Items()
	if len(items) != 2 || items[0] != a || items[1] != b {
		t.Errorf("Items() = %v", items)
	}
	seps := list.Separators()
	if len(seps) != 1 || seps[0] != comma {
		t.Errorf("Separators() = %v", seps)
	}
}

func TestSpanOf(t *testing.T) {
	src := []byte("<?php  f ( ) ;")
	file := Parse(src)

	stmt := file.Sections[0].Statements[0]
	span := SpanOf(stmt)
	if span.FullStart != 5 || span.Start != 7 || span.End != len(src) {
		t.Errorf("SpanOf = %+v", span)
	}
	if got := FullText(stmt, src); got != "  f ( ) ;" {
		t.Errorf("FullText = %q", got)
	}
	if got := SpanOf(&ClassDeclaration{}); got != (Span{}) {
		t.Errorf("empty node span = %+v, want zero", got)
	}
}

func TestDump(t *testing.T) {
	src := []byte("<?php ;")
	got := Dump(Parse(src), src)
	want := `SourceFile
  ScriptSection
    ScriptSectionPrependedText
    ScriptSectionStartTag "<?php"
    EmptyStatement
      ; ";"
  EndOfFile
`
	if got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpWithPositions(t *testing.T) {
	src := []byte("<?php\n;")
	got := DumpWithPositions(Parse(src), src, NewLineMap("", src))
	want := `SourceFile [1:1-2:2]
  ScriptSection [1:1-2:2]
    ScriptSectionPrependedText [1:1-1:1]
    ScriptSectionStartTag [1:1-1:6] "<?php"
    EmptyStatement [2:1-2:2]
      ; [2:1-2:2] ";"
  EndOfFile [2:2-2:2]
`
	if got != want {
		t.Errorf("DumpWithPositions() =\n%s\nwant\n%s", got, want)
	}
}

func TestInspectPrunes(t *testing.T) {
	src := []byte("<?php function f() { $a; } $b;")
	file := Parse(src)

	var vars []string
	Inspect(file, func(e Element) bool {
		if _, ok := e.(*FunctionDeclaration); ok {
			return false
		}
		if tok, ok := e.(*Token); ok && tok.Kind == TokenVariableName {
			vars = append(vars, tok.Text(src))
		}
		return true
	})
	if len(vars) != 1 || vars[0] != "$b" {
		t.Errorf("got %v, want [$b]", vars)
	}
}
