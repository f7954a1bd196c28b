package parser

// The expression grammar here is a stand-in: operands joined by binary
// and assignment operators into one flat Expression, without precedence.
// Prefix operators, calls, subscripts and parentheses nest.

// parseExpression yields a Missing token, consuming nothing, when the
// current token cannot start an expression.
func (p *Parser) parseExpression() Element {
	defer p.leave()
	if !p.enter() {
		return p.tooDeep()
	}
	if !isExpressionStart(p.token) {
		return newMissingToken(p.token.FullStart, TokenUnknown)
	}

	first := p.parseUnaryExpression()
	if !isBinaryOperator(p.token.Kind) {
		return first
	}
	n := &Expression{Elements: []Element{first}}
	for isBinaryOperator(p.token.Kind) {
		op := p.token
		p.advance()
		n.Elements = append(n.Elements, op, p.parseOperand())
	}
	return adopt(n)
}

func (p *Parser) parseOperand() Element {
	if !isExpressionStart(p.token) {
		return newMissingToken(p.token.FullStart, TokenUnknown)
	}
	return p.parseUnaryExpression()
}

func (p *Parser) parseUnaryExpression() Element {
	if isPrefixOperator(p.token.Kind) {
		defer p.leave()
		if !p.enter() {
			return p.tooDeep()
		}
		op := p.token
		p.advance()
		return adopt(&Expression{Elements: []Element{op, p.parseOperand()}})
	}
	return p.parsePostfixExpression(p.parsePrimaryExpression())
}

func (p *Parser) parsePostfixExpression(operand Element) Element {
	for {
		switch p.token.Kind {
		case TokenOpenParen:
			n := &Expression{Elements: []Element{operand}}
			n.Elements = append(n.Elements, p.eat(TokenOpenParen))
			if args := p.parseDelimitedList(TokenComma, isExpressionStart, p.parseExpression); args != nil {
				n.Elements = append(n.Elements, args)
			}
			n.Elements = append(n.Elements, p.eat(TokenCloseParen))
			operand = adopt(n)
		case TokenOpenBracket:
			n := &Expression{Elements: []Element{operand}}
			n.Elements = append(n.Elements, p.eat(TokenOpenBracket))
			if isExpressionStart(p.token) {
				n.Elements = append(n.Elements, p.parseExpression())
			}
			n.Elements = append(n.Elements, p.eat(TokenCloseBracket))
			operand = adopt(n)
		case TokenPlusPlus, TokenMinusMinus:
			op := p.token
			p.advance()
			operand = adopt(&Expression{Elements: []Element{operand, op}})
		default:
			return operand
		}
	}
}

// parsePrimaryExpression consumes one operand. Tokens with no operand
// meaning are wrapped as they are, so anything but end of input makes
// progress.
func (p *Parser) parsePrimaryExpression() Element {
	switch p.token.Kind {
	case TokenEndOfFile:
		return newMissingToken(p.token.FullStart, TokenUnknown)
	case TokenTemplateStringStart:
		return p.parseTemplateExpression()
	case TokenName, TokenBackslash:
		return p.parseQualifiedName()
	case TokenNamespace:
		if p.lookahead(TokenNamespace, TokenBackslash) {
			return p.parseQualifiedName()
		}
	case TokenOpenParen:
		defer p.leave()
		if !p.enter() {
			return p.tooDeep()
		}
		n := &Expression{}
		n.Elements = append(n.Elements, p.eat(TokenOpenParen), p.parseExpression(), p.eat(TokenCloseParen))
		return adopt(n)
	}

	tok := p.token
	p.advance()
	return adopt(&Expression{Elements: []Element{tok}})
}

// parseTemplateExpression parses a double-quoted string with embedded
// variables. After each variable the lexer rescans under string rules.
func (p *Parser) parseTemplateExpression() *TemplateExpression {
	n := &TemplateExpression{}
	n.Elements = append(n.Elements, p.eat(TokenTemplateStringStart))
	for p.token.Kind == TokenVariableName {
		n.Elements = append(n.Elements, p.token)
		p.token = p.lexer.ReScanTemplateToken(p.token)
		if p.token.Kind != TokenTemplateStringMiddle {
			break
		}
		n.Elements = append(n.Elements, p.token)
		p.advance()
	}
	n.Elements = append(n.Elements, p.eat(TokenTemplateStringEnd))
	return adopt(n)
}

func isPrefixOperator(kind TokenKind) bool {
	switch kind {
	case TokenExclamation, TokenMinus, TokenPlus, TokenTilde, TokenAt,
		TokenPlusPlus, TokenMinusMinus,
		TokenNew, TokenClone, TokenPrint,
		TokenInclude, TokenIncludeOnce, TokenRequire, TokenRequireOnce:
		return true
	}
	return false
}

func isBinaryOperator(kind TokenKind) bool {
	switch kind {
	case TokenDot, TokenArrow, TokenColonColon,
		TokenAsteriskAsterisk, TokenAsterisk, TokenSlash, TokenPercent, TokenPlus, TokenMinus,
		TokenLessThanLessThan, TokenGreaterThanGreaterThan,
		TokenLessThan, TokenGreaterThan, TokenLessThanEquals, TokenGreaterThanEquals,
		TokenEqualsEquals, TokenEqualsEqualsEquals, TokenExclamationEquals, TokenExclamationEqualsEquals,
		TokenLessThanGreaterThan, TokenLessThanEqualsGreaterThan,
		TokenCaret, TokenBar, TokenAmpersand, TokenAmpersandAmpersand, TokenBarBar, TokenQuestionQuestion,
		TokenAnd, TokenOr, TokenXor, TokenInstanceOf,
		TokenEquals, TokenAsteriskAsteriskEquals, TokenAsteriskEquals, TokenSlashEquals, TokenPercentEquals,
		TokenPlusEquals, TokenMinusEquals, TokenDotEquals, TokenLessThanLessThanEquals,
		TokenGreaterThanGreaterThanEquals, TokenAmpersandEquals, TokenCaretEquals, TokenBarEquals,
		TokenQuestionQuestionEquals:
		return true
	}
	return false
}
