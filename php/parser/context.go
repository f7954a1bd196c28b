package parser

// ParseContext identifies one kind of list the parser can be inside.
type ParseContext int

const (
	SourceElements ParseContext = iota
	BlockStatements
	ClassMembers
	IfClause2Elements
	SwitchStatementElements
	CaseStatementElements
	WhileStatementElements

	contextCount
)

var parseContextNames = map[ParseContext]string{
	SourceElements:          "SourceElements",
	BlockStatements:         "BlockStatements",
	ClassMembers:            "ClassMembers",
	IfClause2Elements:       "IfClause2Elements",
	SwitchStatementElements: "SwitchStatementElements",
	CaseStatementElements:   "CaseStatementElements",
	WhileStatementElements:  "WhileStatementElements",
}

func (c ParseContext) String() string {
	if name, ok := parseContextNames[c]; ok {
		return name
	}
	return "Unknown"
}

// ContextSet is the set of list contexts active on the call stack.
// Only membership matters: recovery asks whether any enclosing list wants
// a token, not which one is nearest.
type ContextSet uint32

func (s ContextSet) With(c ParseContext) ContextSet {
	return s | 1<<uint(c)
}

func (s ContextSet) Has(c ParseContext) bool {
	return s&(1<<uint(c)) != 0
}

func (s ContextSet) Len() int {
	n := 0
	for c := ParseContext(0); c < contextCount; c++ {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Contexts lists the members in declaration order.
func (s ContextSet) Contexts() []ParseContext {
	var result []ParseContext
	for c := ParseContext(0); c < contextCount; c++ {
		if s.Has(c) {
			result = append(result, c)
		}
	}
	return result
}

func (p *Parser) isListTerminator(ctx ParseContext) bool {
	kind := p.token.Kind
	if kind == TokenEndOfFile {
		return true
	}

	switch ctx {
	case SourceElements:
		return kind == TokenScriptSectionEndTag
	case ClassMembers, BlockStatements, SwitchStatementElements:
		return kind == TokenCloseBrace || kind == TokenEndSwitch
	case IfClause2Elements:
		return kind == TokenElseIf || kind == TokenElse || kind == TokenEndIf
	case WhileStatementElements:
		return kind == TokenEndWhile
	case CaseStatementElements:
		return kind == TokenCase || kind == TokenDefault
	}
	return false
}

func (p *Parser) isValidListElement(ctx ParseContext, tok *Token) bool {
	switch ctx {
	case SourceElements, BlockStatements, IfClause2Elements, CaseStatementElements, WhileStatementElements:
		return isStatementStart(tok)
	case ClassMembers:
		return isClassMemberDeclarationStart(tok)
	case SwitchStatementElements:
		return tok.Kind == TokenCase || tok.Kind == TokenDefault
	}
	return false
}

func (p *Parser) listElementParser(ctx ParseContext) func() Element {
	switch ctx {
	case SourceElements, BlockStatements, IfClause2Elements, CaseStatementElements, WhileStatementElements:
		return p.parseStatement
	case ClassMembers:
		return p.parseClassElement
	case SwitchStatementElements:
		return p.parseCaseOrDefaultStatement
	}
	panic("parser: unrecognized parse context " + ctx.String())
}

// isTokenValidInEnclosingContexts reports whether any active list would
// accept the current token as an element or as its terminator.
func (p *Parser) isTokenValidInEnclosingContexts() bool {
	for _, ctx := range p.contexts.Contexts() {
		if p.isValidListElement(ctx, p.token) || p.isListTerminator(ctx) {
			return true
		}
	}
	return false
}

func isClassMemberDeclarationStart(tok *Token) bool {
	switch tok.Kind {
	case TokenConst,
		TokenPublic, TokenProtected, TokenPrivate,
		TokenStatic,
		TokenAbstract, TokenFinal,
		TokenVar,
		TokenFunction,
		TokenUse:
		return true
	}
	return false
}

func isStatementStart(tok *Token) bool {
	switch tok.Kind {
	case TokenOpenBrace,
		TokenName,
		TokenSemicolon,
		TokenIf, TokenSwitch,
		TokenWhile, TokenDo, TokenFor, TokenForeach,
		TokenGoto, TokenContinue, TokenBreak, TokenReturn, TokenThrow,
		TokenTry,
		TokenDeclare,
		TokenConst,
		TokenFunction,
		TokenClass, TokenAbstract, TokenFinal,
		TokenInterface,
		TokenTrait,
		TokenNamespace,
		TokenUse,
		TokenGlobal,
		TokenStatic,
		TokenEcho:
		return true
	}
	return isExpressionStart(tok)
}

func isExpressionStart(tok *Token) bool {
	switch tok.Kind {
	case TokenVariableName,
		TokenName, TokenBackslash, TokenNamespace,
		TokenDecimalLiteral, TokenOctalLiteral, TokenHexadecimalLiteral,
		TokenBinaryLiteral, TokenFloatingLiteral,
		TokenInvalidOctalLiteral, TokenInvalidHexadecimalLiteral, TokenInvalidBinaryLiteral,
		TokenStringLiteral, TokenUnterminatedStringLiteral,
		TokenNoSubstitutionTemplateLiteral, TokenUnterminatedNoSubstitutionTemplateLiteral,
		TokenTemplateStringStart,
		TokenOpenParen,
		TokenArray, TokenList, TokenUnset, TokenEmpty, TokenEval, TokenExit, TokenDie,
		TokenIsSet, TokenPrint, TokenNew, TokenClone,
		TokenInclude, TokenIncludeOnce, TokenRequire, TokenRequireOnce,
		TokenPlusPlus, TokenMinusMinus, TokenExclamation, TokenMinus, TokenPlus, TokenTilde, TokenAt:
		return true
	}
	return false
}
