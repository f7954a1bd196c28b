package parser

// parseStatement dispatches on the current token. A token that cannot
// start a statement yields a Missing token and is left in place.
func (p *Parser) parseStatement() Element {
	defer p.leave()
	if !p.enter() {
		return p.tooDeep()
	}

	switch p.token.Kind {
	case TokenOpenBrace:
		return p.parseCompoundStatement()
	case TokenName:
		if p.lookahead(TokenName, TokenColon) {
			return p.parseNamedLabelStatement()
		}
	case TokenIf:
		return p.parseIfStatement()
	case TokenSwitch:
		return p.parseSwitchStatement()
	case TokenWhile:
		return p.parseWhileStatement()
	case TokenDo:
		return p.parseDoStatement()
	case TokenFunction:
		return p.parseFunctionDeclaration()
	case TokenClass:
		return p.parseClassDeclaration()
	case TokenAbstract, TokenFinal:
		if p.lookahead(p.token.Kind, TokenClass) {
			return p.parseClassDeclaration()
		}
	case TokenConst:
		return p.parseConstDeclaration(nil)
	case TokenSemicolon:
		return p.parseEmptyStatement()
	case TokenReturn:
		return p.parseReturnStatement()
	case TokenBreak, TokenContinue:
		return p.parseBreakOrContinueStatement()
	case TokenThrow:
		return p.parseThrowStatement()
	case TokenGoto:
		return p.parseGotoStatement()
	case TokenEcho:
		return p.parseEchoStatement()
	case TokenNamespace:
		if !p.lookahead(TokenNamespace, TokenBackslash) {
			return p.parseNamespaceDefinition()
		}
	case TokenUse:
		return p.parseNamespaceUseDeclaration()
	}

	if !isStatementStart(p.token) {
		return newMissingToken(p.token.FullStart, TokenUnknown)
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseCompoundStatement() *CompoundStatement {
	n := &CompoundStatement{}
	n.OpenBrace = p.eat(TokenOpenBrace)
	n.Statements = p.parseList(BlockStatements)
	n.CloseBrace = p.eat(TokenCloseBrace)
	return adopt(n)
}

func (p *Parser) parseEmptyStatement() *EmptyStatement {
	n := &EmptyStatement{}
	n.Semicolon = p.eat(TokenSemicolon)
	return adopt(n)
}

// parseExpressionStatement is also the fallback for statement keywords
// without a production of their own, so it always consumes a token.
func (p *Parser) parseExpressionStatement() *ExpressionStatement {
	n := &ExpressionStatement{}
	if isExpressionStart(p.token) {
		n.Expression = p.parseExpression()
	} else {
		n.Expression = p.parsePrimaryExpression()
	}
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseNamedLabelStatement() *NamedLabelStatement {
	n := &NamedLabelStatement{}
	n.Name = p.eat(TokenName)
	n.Colon = p.eat(TokenColon)
	n.Statement = p.parseStatement()
	return adopt(n)
}

// parseBody parses the statements controlled by if/elseif/else/while.
// With a leading colon it is the alternate syntax list of ctx; otherwise
// a single statement.
func (p *Parser) parseBody(ctx ParseContext) (*Token, []Element) {
	if colon := p.eatOptional(TokenColon); colon != nil {
		return colon, p.parseList(ctx)
	}
	return nil, []Element{p.parseStatement()}
}

func (p *Parser) parseIfStatement() *IfStatement {
	n := &IfStatement{}
	n.IfKeyword = p.eat(TokenIf)
	n.OpenParen = p.eat(TokenOpenParen)
	n.Expression = p.parseExpression()
	n.CloseParen = p.eat(TokenCloseParen)
	n.Colon, n.Statements = p.parseBody(IfClause2Elements)

	for p.token.Kind == TokenElseIf {
		n.ElseIfClauses = append(n.ElseIfClauses, p.parseElseIfClause())
	}
	if p.token.Kind == TokenElse {
		n.ElseClause = p.parseElseClause()
	}
	if n.Colon != nil {
		n.EndIfKeyword = p.eat(TokenEndIf)
		n.Semicolon = p.eatSemicolonOrEndTag()
	}
	return adopt(n)
}

func (p *Parser) parseElseIfClause() *ElseIfClause {
	n := &ElseIfClause{}
	n.ElseIfKeyword = p.eat(TokenElseIf)
	n.OpenParen = p.eat(TokenOpenParen)
	n.Expression = p.parseExpression()
	n.CloseParen = p.eat(TokenCloseParen)
	n.Colon, n.Statements = p.parseBody(IfClause2Elements)
	return adopt(n)
}

// "else if" is an else clause whose statement is an if statement.
func (p *Parser) parseElseClause() *ElseClause {
	n := &ElseClause{}
	n.ElseKeyword = p.eat(TokenElse)
	n.Colon, n.Statements = p.parseBody(IfClause2Elements)
	return adopt(n)
}

func (p *Parser) parseSwitchStatement() *SwitchStatement {
	n := &SwitchStatement{}
	n.SwitchKeyword = p.eat(TokenSwitch)
	n.OpenParen = p.eat(TokenOpenParen)
	n.Expression = p.parseExpression()
	n.CloseParen = p.eat(TokenCloseParen)

	if n.Colon = p.eatOptional(TokenColon); n.Colon != nil {
		n.CaseStatements = p.parseList(SwitchStatementElements)
		n.EndSwitch = p.eat(TokenEndSwitch)
		n.Semicolon = p.eatSemicolonOrEndTag()
	} else {
		n.OpenBrace = p.eat(TokenOpenBrace)
		n.CaseStatements = p.parseList(SwitchStatementElements)
		n.CloseBrace = p.eat(TokenCloseBrace)
	}
	return adopt(n)
}

func (p *Parser) parseCaseOrDefaultStatement() Element {
	n := &CaseStatement{}
	n.CaseKeyword = p.eat(TokenCase, TokenDefault)
	if n.CaseKeyword.Kind == TokenCase {
		n.Expression = p.parseExpression()
	}
	n.LabelTerminator = p.eat(TokenColon, TokenSemicolon)
	n.Statements = p.parseList(CaseStatementElements)
	return adopt(n)
}

func (p *Parser) parseWhileStatement() *WhileStatement {
	n := &WhileStatement{}
	n.WhileKeyword = p.eat(TokenWhile)
	n.OpenParen = p.eat(TokenOpenParen)
	n.Expression = p.parseExpression()
	n.CloseParen = p.eat(TokenCloseParen)
	n.Colon, n.Statements = p.parseBody(WhileStatementElements)
	if n.Colon != nil {
		n.EndWhile = p.eat(TokenEndWhile)
		n.Semicolon = p.eatSemicolonOrEndTag()
	}
	return adopt(n)
}

func (p *Parser) parseDoStatement() *DoStatement {
	n := &DoStatement{}
	n.DoKeyword = p.eat(TokenDo)
	n.Statement = p.parseStatement()
	n.WhileKeyword = p.eat(TokenWhile)
	n.OpenParen = p.eat(TokenOpenParen)
	n.Expression = p.parseExpression()
	n.CloseParen = p.eat(TokenCloseParen)
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseReturnStatement() *ReturnStatement {
	n := &ReturnStatement{}
	n.ReturnKeyword = p.eat(TokenReturn)
	if isExpressionStart(p.token) {
		n.Expression = p.parseExpression()
	}
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseBreakOrContinueStatement() *BreakOrContinueStatement {
	n := &BreakOrContinueStatement{}
	n.Keyword = p.eat(TokenBreak, TokenContinue)
	n.Level = p.eatOptional(TokenDecimalLiteral)
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseThrowStatement() *ThrowStatement {
	n := &ThrowStatement{}
	n.ThrowKeyword = p.eat(TokenThrow)
	n.Expression = p.parseExpression()
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseGotoStatement() *GotoStatement {
	n := &GotoStatement{}
	n.GotoKeyword = p.eat(TokenGoto)
	n.Name = p.eat(TokenName)
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseEchoStatement() *EchoStatement {
	n := &EchoStatement{}
	n.EchoKeyword = p.eat(TokenEcho)
	n.Expressions = p.parseDelimitedList(TokenComma, isExpressionStart, p.parseExpression)
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}
