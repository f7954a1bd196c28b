package parser

import (
	"bytes"
)

// LexerState is the complete cursor of a Lexer. Copying it is a snapshot;
// assigning it back with SetState rewinds the lexer.
type LexerState struct {
	Pos      int
	InScript bool
}

type Lexer struct {
	input         []byte
	state         LexerState
	shortOpenTags bool
}

type LexerOption func(*Lexer)

// ShortOpenTags makes a bare "<?" open a script section.
func ShortOpenTags() LexerOption {
	return func(l *Lexer) {
		l.shortOpenTags = true
	}
}

func NewLexer(input []byte, opts ...LexerOption) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) State() LexerState {
	return l.state
}

func (l *Lexer) SetState(s LexerState) {
	l.state = s
}

func (l *Lexer) peek() byte {
	return l.peekN(0)
}

func (l *Lexer) peekN(n int) byte {
	if l.state.Pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.state.Pos+n]
}

func (l *Lexer) atEnd() bool {
	return l.state.Pos >= len(l.input)
}

// ScanNextToken returns the next token and advances past it. It never
// fails: bytes that start no token become TokenUnknown.
func (l *Lexer) ScanNextToken() *Token {
	if !l.state.InScript {
		return l.scanText()
	}

	fullStart := l.state.Pos
	l.skipTrivia()
	start := l.state.Pos
	if l.atEnd() {
		return &Token{Kind: TokenEndOfFile, FullStart: fullStart, Start: start}
	}
	kind := l.scanScript()
	return &Token{Kind: kind, FullStart: fullStart, Start: start, Length: l.state.Pos - start}
}

// ReScanTemplateToken re-tokenizes the input following after under
// template string rules. The parser calls it once it has consumed the
// variable embedded in a double-quoted string.
func (l *Lexer) ReScanTemplateToken(after *Token) *Token {
	l.state.Pos = after.End()
	start := l.state.Pos
	if l.atEnd() {
		return &Token{Kind: TokenEndOfFile, FullStart: start, Start: start}
	}
	kind := l.scanTemplateRest()
	return &Token{Kind: kind, FullStart: start, Start: start, Length: l.state.Pos - start}
}

func (l *Lexer) scanText() *Token {
	start := l.state.Pos
	if l.atEnd() {
		return &Token{Kind: TokenEndOfFile, FullStart: start, Start: start}
	}
	if n := l.startTagLength(start); n > 0 {
		l.state.Pos += n
		l.state.InScript = true
		return &Token{Kind: TokenScriptSectionStartTag, FullStart: start, Start: start, Length: n}
	}

	pos := start
	for pos < len(l.input) {
		i := bytes.IndexByte(l.input[pos:], '<')
		if i < 0 {
			pos = len(l.input)
			break
		}
		pos += i
		if l.startTagLength(pos) > 0 {
			break
		}
		pos++
	}
	l.state.Pos = pos
	return &Token{Kind: TokenInlineText, FullStart: start, Start: start, Length: pos - start}
}

func (l *Lexer) startTagLength(pos int) int {
	rest := l.input[pos:]
	if len(rest) < 2 || rest[0] != '<' || rest[1] != '?' {
		return 0
	}
	if len(rest) >= 5 && bytes.EqualFold(rest[:5], []byte("<?php")) {
		if len(rest) == 5 || isWhitespace(rest[5]) {
			return 5
		}
	}
	if len(rest) >= 3 && rest[2] == '=' {
		return 3
	}
	if l.shortOpenTags {
		return 2
	}
	return 0
}

func (l *Lexer) skipTrivia() {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case isWhitespace(ch):
			l.state.Pos++
		case ch == '#' || (ch == '/' && l.peekN(1) == '/'):
			l.skipLineComment()
		case ch == '/' && l.peekN(1) == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

// skipLineComment stops before a newline or a closing tag, since "?>"
// ends a script section even inside a line comment.
func (l *Lexer) skipLineComment() {
	for !l.atEnd() {
		ch := l.peek()
		if ch == '\n' || (ch == '?' && l.peekN(1) == '>') {
			return
		}
		l.state.Pos++
	}
}

func (l *Lexer) skipBlockComment() {
	l.state.Pos += 2
	for !l.atEnd() {
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.state.Pos += 2
			return
		}
		l.state.Pos++
	}
}

func (l *Lexer) scanScript() TokenKind {
	ch := l.peek()

	switch {
	case ch == '?' && l.peekN(1) == '>':
		l.state.Pos += 2
		if l.peek() == '\n' {
			l.state.Pos++
		} else if l.peek() == '\r' && l.peekN(1) == '\n' {
			l.state.Pos += 2
		}
		l.state.InScript = false
		return TokenScriptSectionEndTag

	case ch == '$' && isNameStart(l.peekN(1)):
		l.state.Pos++
		l.scanName()
		return TokenVariableName

	case isNameStart(ch):
		start := l.state.Pos
		l.scanName()
		return LookupKeyword(string(l.input[start:l.state.Pos]))

	case isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))):
		return l.scanNumber()

	case ch == '\'':
		return l.scanSingleQuoted()

	case ch == '"':
		l.state.Pos++
		return l.scanDoubleQuoted()
	}

	rest := l.input[l.state.Pos:]
	for _, op := range operators {
		if bytes.HasPrefix(rest, []byte(op.text)) {
			l.state.Pos += len(op.text)
			return op.kind
		}
	}

	l.state.Pos++
	return TokenUnknown
}

func (l *Lexer) scanName() {
	for isNameChar(l.peek()) {
		l.state.Pos++
	}
}

func (l *Lexer) scanDigits(valid func(byte) bool) int {
	n := 0
	for {
		ch := l.peek()
		if ch == '_' && valid(l.peekN(1)) && n > 0 {
			l.state.Pos++
			continue
		}
		if !valid(ch) {
			return n
		}
		l.state.Pos++
		n++
	}
}

func (l *Lexer) scanNumber() TokenKind {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		l.state.Pos += 2
		if l.scanDigits(isHexDigit) == 0 {
			return TokenInvalidHexadecimalLiteral
		}
		return TokenHexadecimalLiteral
	}
	if l.peek() == '0' && (l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		l.state.Pos += 2
		n := l.scanDigits(isBinaryDigit)
		if l.scanDigits(isDigit) > 0 || n == 0 {
			return TokenInvalidBinaryLiteral
		}
		return TokenBinaryLiteral
	}

	start := l.state.Pos
	l.scanDigits(isDigit)
	isFloat := false
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.state.Pos++
		l.scanDigits(isDigit)
	}
	if ch := l.peek(); ch == 'e' || ch == 'E' {
		next := l.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekN(2))) {
			isFloat = true
			l.state.Pos += 2
			l.scanDigits(isDigit)
		}
	}
	if isFloat {
		return TokenFloatingLiteral
	}

	digits := l.input[start:l.state.Pos]
	if len(digits) > 1 && digits[0] == '0' {
		if bytes.ContainsAny(digits, "89") {
			return TokenInvalidOctalLiteral
		}
		return TokenOctalLiteral
	}
	return TokenDecimalLiteral
}

func (l *Lexer) scanSingleQuoted() TokenKind {
	l.state.Pos++
	for !l.atEnd() {
		switch l.peek() {
		case '\\':
			l.state.Pos += 2
		case '\'':
			l.state.Pos++
			return TokenStringLiteral
		default:
			l.state.Pos++
		}
	}
	l.state.Pos = len(l.input)
	return TokenUnterminatedStringLiteral
}

// scanDoubleQuoted scans from just after the opening quote. It stops
// before the first interpolated variable.
func (l *Lexer) scanDoubleQuoted() TokenKind {
	switch l.scanTemplateBody() {
	case '"':
		return TokenNoSubstitutionTemplateLiteral
	case '$':
		return TokenTemplateStringStart
	}
	return TokenUnterminatedNoSubstitutionTemplateLiteral
}

func (l *Lexer) scanTemplateRest() TokenKind {
	if l.scanTemplateBody() == '$' {
		return TokenTemplateStringMiddle
	}
	return TokenTemplateStringEnd
}

// scanTemplateBody advances through string content and reports what
// stopped it: '"' (closing quote consumed), '$' (variable follows) or 0
// for end of input.
func (l *Lexer) scanTemplateBody() byte {
	for !l.atEnd() {
		switch ch := l.peek(); {
		case ch == '\\':
			l.state.Pos += 2
		case ch == '"':
			l.state.Pos++
			return '"'
		case ch == '$' && isNameStart(l.peekN(1)):
			return '$'
		default:
			l.state.Pos++
		}
	}
	l.state.Pos = len(l.input)
	return 0
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isBinaryDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isNameStart accepts every byte >= 0x80 so UTF-8 identifiers scan as one
// name, matching PHP's byte-oriented identifier rules.
func isNameStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || isDigit(ch)
}
