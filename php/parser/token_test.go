package parser

import (
	"testing"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEndOfFile, "EndOfFile"},
		{TokenMissing, "Missing"},
		{TokenSkipped, "Skipped"},
		{TokenUnsupported, "Unsupported"},
		{TokenInlineText, "InlineText"},
		{TokenScriptSectionStartTag, "ScriptSectionStartTag"},
		{TokenName, "Name"},
		{TokenVariableName, "VariableName"},
		{TokenTemplateStringMiddle, "TemplateStringMiddle"},
		{TokenClass, "class"},
		{TokenEndSwitch, "endswitch"},
		{TokenIncludeOnce, "include_once"},
		{TokenIntReservedWord, "int"},
		{TokenOpenParen, "("},
		{TokenLessThanEqualsGreaterThan, "<=>"},
		{TokenQuestionQuestionEquals, "??="},
		{TokenBackslash, "\\"},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		name string
		want TokenKind
	}{
		{"class", TokenClass},
		{"CLASS", TokenClass},
		{"ElseIf", TokenElseIf},
		{"include_once", TokenIncludeOnce},
		{"string", TokenStringReservedWord},
		{"Foo", TokenName},
		{"classy", TokenName},
		{"_", TokenName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LookupKeyword(tt.name); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTokenKindPredicates(t *testing.T) {
	tests := []struct {
		kind    TokenKind
		error   bool
		keyword bool
	}{
		{TokenMissing, true, false},
		{TokenSkipped, true, false},
		{TokenUnsupported, true, false},
		{TokenUnknown, false, false},
		{TokenName, false, false},
		{TokenAbstract, false, true},
		{TokenYield, false, true},
		{TokenStringReservedWord, false, true},
		{TokenOpenBracket, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsError(); got != tt.error {
				t.Errorf("IsError() = %v, want %v", got, tt.error)
			}
			if got := tt.kind.IsKeyword(); got != tt.keyword {
				t.Errorf("IsKeyword() = %v, want %v", got, tt.keyword)
			}
		})
	}
}

func TestTokenText(t *testing.T) {
	src := []byte("<?php  /* c */ $x")
	tok := &Token{Kind: TokenVariableName, FullStart: 5, Start: 15, Length: 2}

	if got := tok.Text(src); got != "$x" {
		t.Errorf("Text() = %q, want %q", got, "$x")
	}
	if got := tok.Trivia(src); got != "  /* c */ " {
		t.Errorf("Trivia() = %q, want %q", got, "  /* c */ ")
	}
	if got := tok.FullText(src); got != "  /* c */ $x" {
		t.Errorf("FullText() = %q, want %q", got, "  /* c */ $x")
	}
	if got := tok.End(); got != 17 {
		t.Errorf("End() = %d, want 17", got)
	}
	if got := tok.FullWidth(); got != 12 {
		t.Errorf("FullWidth() = %d, want 12", got)
	}
}

func TestTokenReclassify(t *testing.T) {
	tok := &Token{Kind: TokenCloseParen, FullStart: 3, Start: 4, Length: 1}
	tok.reclassify(TokenSkipped)

	if tok.Kind != TokenSkipped {
		t.Errorf("Kind = %v, want Skipped", tok.Kind)
	}
	if tok.ErrorKind != TokenCloseParen {
		t.Errorf("ErrorKind = %v, want )", tok.ErrorKind)
	}
	if tok.FullStart != 3 || tok.Start != 4 || tok.Length != 1 {
		t.Errorf("span changed: %+v", tok)
	}
}

func TestMissingTokenIsZeroWidth(t *testing.T) {
	tok := newMissingToken(7, TokenCloseBrace)
	if tok.FullWidth() != 0 {
		t.Errorf("FullWidth() = %d, want 0", tok.FullWidth())
	}
	if tok.FullStart != 7 || tok.Start != 7 {
		t.Errorf("got FullStart=%d Start=%d, want 7", tok.FullStart, tok.Start)
	}
	if tok.ErrorKind != TokenCloseBrace {
		t.Errorf("ErrorKind = %v, want }", tok.ErrorKind)
	}
}

func TestPositionLookup(t *testing.T) {
	lines := NewLineMap("a.php", []byte("a\nbc\n"))
	tests := []struct {
		offset int
		want   string
	}{
		{0, "a.php:1:1"},
		{1, "a.php:1:2"},
		{2, "a.php:2:1"},
		{3, "a.php:2:2"},
		{5, "a.php:3:1"},
	}

	for _, tt := range tests {
		if got := lines.Position(tt.offset).String(); got != tt.want {
			t.Errorf("Position(%d) = %s, want %s", tt.offset, got, tt.want)
		}
	}
	if got := lines.LineCount(); got != 3 {
		t.Errorf("LineCount() = %d, want 3", got)
	}
	if got := NewLineMap("", []byte("x")).Position(0).String(); got != "1:1" {
		t.Errorf("Position without file = %s, want 1:1", got)
	}
}
