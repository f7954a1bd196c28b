package parser

func (p *Parser) parseClassDeclaration() *ClassDeclaration {
	n := &ClassDeclaration{}
	n.Modifier = p.eatOptional(TokenAbstract, TokenFinal)
	n.ClassKeyword = p.eat(TokenClass)
	n.Name = p.eat(TokenName)
	if n.ExtendsKeyword = p.eatOptional(TokenExtends); n.ExtendsKeyword != nil {
		n.BaseClass = p.parseQualifiedNameOrNil()
	}
	if n.ImplementsKeyword = p.eatOptional(TokenImplements); n.ImplementsKeyword != nil {
		n.Interfaces = p.parseQualifiedNameList()
	}
	n.Members = p.parseClassMembers()
	return adopt(n)
}

func (p *Parser) parseClassMembers() *ClassMemberList {
	n := &ClassMemberList{}
	n.OpenBrace = p.eat(TokenOpenBrace)
	n.Elements = p.parseList(ClassMembers)
	n.CloseBrace = p.eat(TokenCloseBrace)
	return adopt(n)
}

// parseClassElement parses one member. A token that starts no member is
// consumed as an Unsupported leaf.
func (p *Parser) parseClassElement() Element {
	defer p.leave()
	if !p.enter() {
		return p.tooDeep()
	}

	modifiers := p.parseModifiers()
	switch p.token.Kind {
	case TokenFunction:
		return p.parseMethodDeclaration(modifiers)
	case TokenConst:
		return p.parseConstDeclaration(modifiers)
	case TokenVariableName:
		if len(modifiers) > 0 {
			return p.parsePropertyDeclaration(modifiers)
		}
	case TokenQuestion, TokenArray, TokenCallable,
		TokenBoolReservedWord, TokenFloatReservedWord, TokenIntReservedWord, TokenStringReservedWord,
		TokenName, TokenBackslash:
		if len(modifiers) > 0 {
			return p.parsePropertyDeclaration(modifiers)
		}
	case TokenUse:
		if len(modifiers) == 0 {
			return p.parseTraitUseClause()
		}
	}

	if len(modifiers) > 0 {
		return adopt(&MissingMemberDeclaration{
			Modifiers: modifiers,
			Missing:   newMissingToken(p.token.FullStart, TokenFunction),
		})
	}
	if p.token.Kind == TokenEndOfFile {
		return newMissingToken(p.token.FullStart, TokenFunction)
	}
	tok := p.token
	p.log.Debugf("%s: unsupported class member %s at offset %d", p.file, tok.Kind, tok.Start)
	tok.reclassify(TokenUnsupported)
	p.advance()
	return tok
}

func isModifier(kind TokenKind) bool {
	switch kind {
	case TokenPublic, TokenProtected, TokenPrivate, TokenStatic, TokenAbstract, TokenFinal, TokenVar:
		return true
	}
	return false
}

func (p *Parser) parseModifiers() []*Token {
	var modifiers []*Token
	for isModifier(p.token.Kind) {
		modifiers = append(modifiers, p.token)
		p.advance()
	}
	return modifiers
}

func (p *Parser) parseMethodDeclaration(modifiers []*Token) *MethodDeclaration {
	n := &MethodDeclaration{Modifiers: modifiers}
	p.parseFunctionDefinition(&n.FunctionDefinition, true)
	return adopt(n)
}

func (p *Parser) parseFunctionDeclaration() *FunctionDeclaration {
	n := &FunctionDeclaration{}
	p.parseFunctionDefinition(&n.FunctionDefinition, false)
	return adopt(n)
}

// parseFunctionDefinition fills d in place. Methods may be named with a
// reserved word and may end in ";" instead of a body.
func (p *Parser) parseFunctionDefinition(d *FunctionDefinition, isMethod bool) {
	d.FunctionKeyword = p.eat(TokenFunction)
	d.ByRef = p.eatOptional(TokenAmpersand)
	if isMethod && p.token.Kind.IsKeyword() {
		d.Name = p.token
		p.advance()
	} else {
		d.Name = p.eat(TokenName)
	}
	d.OpenParen = p.eat(TokenOpenParen)
	d.Parameters = p.parseDelimitedList(TokenComma, isParameterStart, p.parseParameter)
	d.CloseParen = p.eat(TokenCloseParen)
	if d.Colon = p.eatOptional(TokenColon); d.Colon != nil {
		d.ReturnType = p.parseReturnType()
	}

	switch {
	case p.token.Kind == TokenOpenBrace:
		d.Body = p.parseCompoundStatement()
	case isMethod && p.token.Kind == TokenSemicolon:
		d.Body = p.eat(TokenSemicolon)
	default:
		d.Body = p.eat(TokenOpenBrace)
	}
}

func isParameterStart(tok *Token) bool {
	return tok.Kind == TokenVariableName || tok.Kind == TokenAmpersand || isTypeStart(tok)
}

func (p *Parser) parseParameter() Element {
	n := &Parameter{}
	n.Type = p.parseTypeDeclaration()
	n.ByRef = p.eatOptional(TokenAmpersand)
	n.VariableName = p.eat(TokenVariableName)
	if n.Equals = p.eatOptional(TokenEquals); n.Equals != nil {
		n.Default = p.parseExpression()
	}
	return adopt(n)
}

func isTypeStart(tok *Token) bool {
	switch tok.Kind {
	case TokenQuestion, TokenArray, TokenCallable,
		TokenBoolReservedWord, TokenFloatReservedWord, TokenIntReservedWord, TokenStringReservedWord,
		TokenName, TokenBackslash, TokenNamespace:
		return true
	}
	return false
}

// parseTypeDeclaration returns nil when no type is present.
func (p *Parser) parseTypeDeclaration() Element {
	if p.token.Kind == TokenQuestion {
		n := &NullableType{}
		n.Question = p.eat(TokenQuestion)
		if n.Type = p.parseNamedType(); n.Type == nil {
			n.Type = newMissingToken(p.token.FullStart, TokenName)
		}
		return adopt(n)
	}
	return p.parseNamedType()
}

func (p *Parser) parseNamedType() Element {
	switch p.token.Kind {
	case TokenArray, TokenCallable,
		TokenBoolReservedWord, TokenFloatReservedWord, TokenIntReservedWord, TokenStringReservedWord:
		tok := p.token
		p.advance()
		return tok
	case TokenName, TokenBackslash, TokenNamespace:
		if qn := p.parseQualifiedNameOrNil(); qn != nil {
			return qn
		}
	}
	return nil
}

func (p *Parser) parseReturnType() Element {
	if t := p.parseTypeDeclaration(); t != nil {
		return t
	}
	return newMissingToken(p.token.FullStart, TokenName)
}

func (p *Parser) parsePropertyDeclaration(modifiers []*Token) *PropertyDeclaration {
	n := &PropertyDeclaration{Modifiers: modifiers}
	n.Type = p.parseTypeDeclaration()
	n.Variables = p.parseDelimitedList(TokenComma, func(tok *Token) bool {
		return tok.Kind == TokenVariableName
	}, p.parseExpression)
	n.Semicolon = p.eat(TokenSemicolon)
	return adopt(n)
}

func (p *Parser) parseConstDeclaration(modifiers []*Token) *ConstDeclaration {
	n := &ConstDeclaration{Modifiers: modifiers}
	n.ConstKeyword = p.eat(TokenConst)
	n.Elements = p.parseDelimitedList(TokenComma, func(tok *Token) bool {
		return tok.Kind == TokenName
	}, p.parseExpression)
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseTraitUseClause() *TraitUseClause {
	n := &TraitUseClause{}
	n.UseKeyword = p.eat(TokenUse)
	n.Names = p.parseQualifiedNameList()
	n.Semicolon = p.eat(TokenSemicolon)
	return adopt(n)
}

func isQualifiedNameStart(tok *Token) bool {
	return tok.Kind == TokenName || tok.Kind == TokenBackslash || tok.Kind == TokenNamespace
}

func (p *Parser) parseQualifiedNameList() *DelimitedList {
	return p.parseDelimitedList(TokenComma, isQualifiedNameStart, func() Element {
		if qn := p.parseQualifiedNameOrNil(); qn != nil {
			return qn
		}
		return newMissingToken(p.token.FullStart, TokenName)
	})
}

func (p *Parser) parseQualifiedName() *QualifiedName {
	n := &QualifiedName{}
	if p.lookahead(TokenNamespace, TokenBackslash) {
		rel := &RelativeSpecifier{}
		rel.NamespaceKeyword = p.eat(TokenNamespace)
		rel.Backslash = p.eat(TokenBackslash)
		n.RelativeSpecifier = adopt(rel)
	} else {
		n.GlobalSpecifier = p.eatOptional(TokenBackslash)
	}
	n.NameParts = p.parseDelimitedList(TokenBackslash, func(tok *Token) bool {
		return tok.Kind == TokenName
	}, func() Element {
		return p.eat(TokenName)
	})
	return adopt(n)
}

// parseQualifiedNameOrNil returns nil, consuming nothing, when no
// qualified name starts here.
func (p *Parser) parseQualifiedNameOrNil() *QualifiedName {
	if p.token.Kind == TokenName || p.token.Kind == TokenBackslash || p.lookahead(TokenNamespace, TokenBackslash) {
		return p.parseQualifiedName()
	}
	return nil
}

// parseNamespaceDefinition parses "namespace Name;" and
// "namespace Name { ... }". The name is optional in the braced form.
func (p *Parser) parseNamespaceDefinition() *NamespaceDefinition {
	n := &NamespaceDefinition{}
	n.NamespaceKeyword = p.eat(TokenNamespace)
	n.Name = p.parseQualifiedNameOrNil()
	if p.token.Kind == TokenOpenBrace {
		n.Body = p.parseCompoundStatement()
	} else {
		n.Semicolon = p.eatSemicolonOrEndTag()
	}
	return adopt(n)
}

func (p *Parser) parseNamespaceUseDeclaration() *NamespaceUseDeclaration {
	n := &NamespaceUseDeclaration{}
	n.UseKeyword = p.eat(TokenUse)
	n.Clauses = p.parseDelimitedList(TokenComma, isQualifiedNameStart, p.parseNamespaceUseClause)
	n.Semicolon = p.eatSemicolonOrEndTag()
	return adopt(n)
}

func (p *Parser) parseNamespaceUseClause() Element {
	n := &NamespaceUseClause{}
	n.Name = p.parseQualifiedNameOrNil()
	if p.token.Kind == TokenAs {
		alias := &NamespaceAliasingClause{}
		alias.AsKeyword = p.eat(TokenAs)
		alias.Name = p.eat(TokenName)
		n.Alias = adopt(alias)
	}
	return adopt(n)
}
