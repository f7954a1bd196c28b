package parser

import (
	"fmt"
	"io"
	"slices"

	"github.com/tliron/commonlog"
)

// DefaultMaxDepth bounds statement and expression nesting.
const DefaultMaxDepth = 1024

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithMaxDepth limits nesting. Zero disables the limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

func WithShortOpenTags() Option {
	return func(p *Parser) {
		p.shortOpenTags = true
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// scanner is the token source the parser pulls from. *Lexer is the only
// production implementation.
type scanner interface {
	ScanNextToken() *Token
	ReScanTemplateToken(after *Token) *Token
	State() LexerState
	SetState(LexerState)
}

// Parser turns one source buffer into a SourceFile. A Parser is single
// use and must not be shared between goroutines.
type Parser struct {
	file          string
	input         []byte
	maxDepth      int
	shortOpenTags bool
	log           commonlog.Logger

	lexer    scanner
	token    *Token
	contexts ContextSet
	depth    int

	sourceFile *SourceFile
}

func New(input []byte, opts ...Option) *Parser {
	p := &Parser{
		input:    input,
		maxDepth: DefaultMaxDepth,
		log:      commonlog.GetLogger("phpcst.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	var lexOpts []LexerOption
	if p.shortOpenTags {
		lexOpts = append(lexOpts, ShortOpenTags())
	}
	p.lexer = NewLexer(input, lexOpts...)
	return p
}

func newWithScanner(s scanner, opts ...Option) *Parser {
	p := New(nil, opts...)
	p.lexer = s
	return p
}

// Parse parses src in one call.
func Parse(src []byte, opts ...Option) *SourceFile {
	return New(src, opts...).ParseSourceFile()
}

// ParseReader reads r to the end and parses it. The error is only ever
// an I/O error; malformed input is represented in the tree.
func ParseReader(r io.Reader, opts ...Option) (*SourceFile, []byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read source: %w", err)
	}
	return Parse(src, opts...), src, nil
}

func (p *Parser) File() string {
	return p.file
}

// SourceFile returns the root built by the last ParseSourceFile call.
func (p *Parser) SourceFile() *SourceFile {
	return p.sourceFile
}

// ParseSourceFile parses the whole input. It always returns a tree.
func (p *Parser) ParseSourceFile() *SourceFile {
	if p.sourceFile != nil {
		return p.sourceFile
	}
	p.advance()

	n := &SourceFile{}
	for p.token.Kind != TokenEndOfFile {
		n.Sections = append(n.Sections, p.parseScriptSection())
	}
	n.EndOfFile = p.eat(TokenEndOfFile)

	p.sourceFile = adopt(n)
	return p.sourceFile
}

func (p *Parser) parseScriptSection() *ScriptSection {
	n := &ScriptSection{}
	text := &Token{
		Kind:      TokenScriptSectionPrependedText,
		FullStart: p.token.FullStart,
		Start:     p.token.FullStart,
	}
	n.Text = text

	for {
		if p.token.Kind == TokenScriptSectionStartTag {
			text.Length += p.token.Start - p.token.FullStart
			p.token.FullStart = p.token.Start
			n.StartTag = p.eat(TokenScriptSectionStartTag)
			break
		}
		if p.token.Kind == TokenEndOfFile {
			break
		}
		text.Length += p.token.FullWidth()
		p.advance()
	}

	n.Statements = p.parseList(SourceElements)
	n.EndTag = p.eatOptional(TokenScriptSectionEndTag)
	return adopt(n)
}

// parseList parses elements of ctx until its terminator, or until a token
// that some enclosing list wants. Each iteration either ends the loop,
// attaches an element that consumed input, or skips exactly one token.
func (p *Parser) parseList(ctx ParseContext) []Element {
	saved := p.contexts
	p.contexts = p.contexts.With(ctx)
	defer func() { p.contexts = saved }()

	parseElement := p.listElementParser(ctx)
	var elements []Element
	for !p.isListTerminator(ctx) {
		if p.isValidListElement(ctx, p.token) {
			elements = append(elements, parseElement())
			continue
		}
		if p.isTokenValidInEnclosingContexts() {
			p.log.Debugf("%s: leaving %s at %s", p.file, ctx, p.token.Kind)
			break
		}
		elements = append(elements, p.skip())
	}
	return elements
}

// parseDelimitedList returns nil when no element starts at the current
// token. A separator is consumed only when another element follows it.
func (p *Parser) parseDelimitedList(sep TokenKind, isStart func(*Token) bool, parseElement func() Element) *DelimitedList {
	if !isStart(p.token) {
		return nil
	}
	n := &DelimitedList{}
	for {
		n.addElement(parseElement())
		if p.token.Kind != sep {
			break
		}
		state, tok := p.lexer.State(), p.token
		delim := p.eat(sep)
		if !isStart(p.token) {
			p.lexer.SetState(state)
			p.token = tok
			break
		}
		n.addElement(delim)
	}
	return adopt(n)
}

func (p *Parser) advance() {
	p.token = p.lexer.ScanNextToken()
}

// eat consumes the current token if it has one of kinds. Otherwise it
// returns a zero-width Missing token and consumes nothing.
func (p *Parser) eat(kinds ...TokenKind) *Token {
	if tok := p.eatOptional(kinds...); tok != nil {
		return tok
	}
	return newMissingToken(p.token.FullStart, kinds[0])
}

func (p *Parser) eatOptional(kinds ...TokenKind) *Token {
	tok := p.token
	if !slices.Contains(kinds, tok.Kind) {
		return nil
	}
	p.advance()
	return tok
}

// lookahead reports whether the upcoming tokens have exactly the given
// kinds. Parser and lexer state are restored either way.
func (p *Parser) lookahead(kinds ...TokenKind) bool {
	state, tok := p.lexer.State(), p.token
	defer func() {
		p.lexer.SetState(state)
		p.token = tok
	}()

	for _, kind := range kinds {
		if p.eatOptional(kind) == nil {
			return false
		}
	}
	return true
}

// skip consumes the current token as a Skipped leaf.
func (p *Parser) skip() *Token {
	tok := p.token
	p.log.Debugf("%s: skipping %s at offset %d", p.file, tok.Kind, tok.Start)
	tok.reclassify(TokenSkipped)
	p.advance()
	return tok
}

// enter increments the nesting depth and reports whether it is still
// within the limit. Every enter must be paired with leave.
func (p *Parser) enter() bool {
	p.depth++
	return p.maxDepth <= 0 || p.depth <= p.maxDepth
}

func (p *Parser) leave() {
	p.depth--
}

// tooDeep stands in for a construct nested past the depth limit.
func (p *Parser) tooDeep() Element {
	if p.token.Kind == TokenEndOfFile {
		return newMissingToken(p.token.FullStart, TokenEndOfFile)
	}
	p.log.Warningf("%s: nesting deeper than %d at offset %d", p.file, p.maxDepth, p.token.Start)
	return p.skip()
}

// eatSemicolonOrEndTag eats a statement-ending ";". A closing tag also
// ends a statement; it is left for the enclosing section.
func (p *Parser) eatSemicolonOrEndTag() *Token {
	if p.token.Kind == TokenScriptSectionEndTag {
		return nil
	}
	return p.eat(TokenSemicolon)
}

// Incomplete reports whether the tree ends with a construct that is
// still waiting for input, such as an unclosed block. It is used by
// interactive callers to decide whether to read another line.
func Incomplete(n *SourceFile) bool {
	if n == nil || n.EndOfFile == nil {
		return false
	}
	for _, tok := range ErrorTokens(n) {
		if tok.Kind == TokenMissing && tok.FullStart == n.EndOfFile.FullStart {
			return true
		}
	}
	return false
}
