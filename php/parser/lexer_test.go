package parser

import (
	"strings"
	"testing"
)

func scanAll(input string, opts ...LexerOption) []*Token {
	lexer := NewLexer([]byte(input), opts...)
	var tokens []*Token
	for {
		tok := lexer.ScanNextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEndOfFile {
			return tokens
		}
	}
}

func kindsOf(tokens []*Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEndOfFile}},
		{"hello", []TokenKind{TokenInlineText, TokenEndOfFile}},
		{"<?php", []TokenKind{TokenScriptSectionStartTag, TokenEndOfFile}},
		{"<?php ", []TokenKind{TokenScriptSectionStartTag, TokenEndOfFile}},
		{"<?phpx", []TokenKind{TokenInlineText, TokenEndOfFile}},
		{"<? echo 1;", []TokenKind{TokenInlineText, TokenEndOfFile}},
		{"a<?php $x ?>b", []TokenKind{TokenInlineText, TokenScriptSectionStartTag, TokenVariableName, TokenScriptSectionEndTag, TokenInlineText, TokenEndOfFile}},
		{"<?= $x ?>", []TokenKind{TokenScriptSectionStartTag, TokenVariableName, TokenScriptSectionEndTag, TokenEndOfFile}},
		{"<?PHP CLASS Foo", []TokenKind{TokenScriptSectionStartTag, TokenClass, TokenName, TokenEndOfFile}},
		{"<?php // c\n$x /* b */ # h\n", []TokenKind{TokenScriptSectionStartTag, TokenVariableName, TokenEndOfFile}},
		{"<?php // c ?>x", []TokenKind{TokenScriptSectionStartTag, TokenScriptSectionEndTag, TokenInlineText, TokenEndOfFile}},
		{"<?php <=> === ?? ??= -> :: ...", []TokenKind{TokenScriptSectionStartTag, TokenLessThanEqualsGreaterThan, TokenEqualsEqualsEquals, TokenQuestionQuestion, TokenQuestionQuestionEquals, TokenArrow, TokenColonColon, TokenDotDotDot, TokenEndOfFile}},
		{"<?php `", []TokenKind{TokenScriptSectionStartTag, TokenUnknown, TokenEndOfFile}},
		{"<?php $", []TokenKind{TokenScriptSectionStartTag, TokenDollar, TokenEndOfFile}},
		{"<?php /* unterminated", []TokenKind{TokenScriptSectionStartTag, TokenEndOfFile}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kindsOf(scanAll(tt.input))
			if len(got) != len(tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
				return
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerShortOpenTags(t *testing.T) {
	got := kindsOf(scanAll("<? echo 1;", ShortOpenTags()))
	want := []TokenKind{TokenScriptSectionStartTag, TokenEcho, TokenDecimalLiteral, TokenSemicolon, TokenEndOfFile}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  TokenKind
	}{
		{"0", TokenDecimalLiteral},
		{"42", TokenDecimalLiteral},
		{"1_000", TokenDecimalLiteral},
		{"0x1F", TokenHexadecimalLiteral},
		{"0x", TokenInvalidHexadecimalLiteral},
		{"0b101", TokenBinaryLiteral},
		{"0b102", TokenInvalidBinaryLiteral},
		{"017", TokenOctalLiteral},
		{"019", TokenInvalidOctalLiteral},
		{"1.5", TokenFloatingLiteral},
		{".5", TokenFloatingLiteral},
		{"1e3", TokenFloatingLiteral},
		{"1E-3", TokenFloatingLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := scanAll("<?php " + tt.input)
			if len(tokens) != 3 {
				t.Fatalf("got %v, want one literal", kindsOf(tokens))
			}
			if tokens[1].Kind != tt.want {
				t.Errorf("got %v, want %v", tokens[1].Kind, tt.want)
			}
			if tokens[1].Length != len(tt.input) {
				t.Errorf("length %d, want %d", tokens[1].Length, len(tt.input))
			}
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input string
		want  TokenKind
	}{
		{`'abc'`, TokenStringLiteral},
		{`'a\'b'`, TokenStringLiteral},
		{`'abc`, TokenUnterminatedStringLiteral},
		{`"abc"`, TokenNoSubstitutionTemplateLiteral},
		{`"a\"b"`, TokenNoSubstitutionTemplateLiteral},
		{`"a $ b"`, TokenNoSubstitutionTemplateLiteral},
		{`"abc`, TokenUnterminatedNoSubstitutionTemplateLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := scanAll("<?php " + tt.input)
			if tokens[1].Kind != tt.want {
				t.Errorf("got %v, want %v", tokens[1].Kind, tt.want)
			}
			if tokens[1].Length != len(tt.input) {
				t.Errorf("length %d, want %d", tokens[1].Length, len(tt.input))
			}
		})
	}
}

func TestLexerTemplateRescan(t *testing.T) {
	src := `<?php "a $b c $d"`
	lexer := NewLexer([]byte(src))

	expect := func(tok *Token, kind TokenKind, text string) {
		t.Helper()
		if tok.Kind != kind {
			t.Fatalf("got %v, want %v", tok.Kind, kind)
		}
		if got := tok.Text([]byte(src)); got != text {
			t.Errorf("got %q, want %q", got, text)
		}
	}

	expect(lexer.ScanNextToken(), TokenScriptSectionStartTag, "<?php")
	expect(lexer.ScanNextToken(), TokenTemplateStringStart, `"a `)
	b := lexer.ScanNextToken()
	expect(b, TokenVariableName, "$b")
	expect(lexer.ReScanTemplateToken(b), TokenTemplateStringMiddle, " c ")
	d := lexer.ScanNextToken()
	expect(d, TokenVariableName, "$d")
	expect(lexer.ReScanTemplateToken(d), TokenTemplateStringEnd, `"`)
	expect(lexer.ScanNextToken(), TokenEndOfFile, "")
}

func TestLexerEndTagNewline(t *testing.T) {
	src := "<?php ?>\r\nx"
	tokens := scanAll(src)
	if got := tokens[1].Text([]byte(src)); got != "?>\r\n" {
		t.Errorf("end tag = %q, want %q", got, "?>\r\n")
	}
	if got := tokens[2].Text([]byte(src)); got != "x" {
		t.Errorf("text = %q, want %q", got, "x")
	}
}

func TestLexerTrivia(t *testing.T) {
	src := "<?php // c\n$x"
	tokens := scanAll(src)
	if got := tokens[1].Trivia([]byte(src)); got != " // c\n" {
		t.Errorf("trivia = %q, want %q", got, " // c\n")
	}
}

func TestLexerRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<?php echo 'hi'; ?>\n<b><?= $x ?></b>",
		"<?php /* a */ class A { function f() { return \"x $y z\"; } }",
		"<?php \x00\xff\x80 `~ 0x 0b2 '",
		"<?php # comment ?>after",
		strings.Repeat("<?php ?>", 10),
	}

	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range scanAll(input) {
			b.WriteString(tok.FullText([]byte(input)))
		}
		if b.String() != input {
			t.Errorf("round trip of %q produced %q", input, b.String())
		}
	}
}

func TestLexerStateSnapshot(t *testing.T) {
	lexer := NewLexer([]byte("<?php foo bar baz"))
	lexer.ScanNextToken()
	saved := lexer.State()

	first := lexer.ScanNextToken()
	lexer.ScanNextToken()
	lexer.SetState(saved)
	again := lexer.ScanNextToken()

	if *first != *again {
		t.Errorf("after restore got %+v, want %+v", again, first)
	}
}
