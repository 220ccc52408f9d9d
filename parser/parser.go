/*
File    : gomix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator
// precedence parser) that turns a lexer.Lexer's token stream into a
// *Program AST. It never panics on malformed input; instead it
// accumulates error strings in Errors and the caller decides whether
// to evaluate.
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/gomix-lang/lexer"
)

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser holds a two-token lookahead buffer (cur, peek) over the
// lexer's output and the prefix/infix handler tables the Pratt
// algorithm dispatches through.
type Parser struct {
	l *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	errors []string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over l, registers every prefix/infix handler
// the grammar needs, and primes the lookahead buffer with two
// advances so cur and peek are both valid.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: []string{}}

	p.prefixFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.DOUBLE, p.parseDoubleLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.NOT, p.parsePrefixExpression)
	p.registerPrefix(lexer.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseHashLiteral)

	p.infixFns = make(map[lexer.TokenType]infixParseFn)
	p.registerInfix(lexer.AND, p.parseInfixExpression)
	p.registerInfix(lexer.OR, p.parseInfixExpression)
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.EQ, p.parseInfixExpression)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(lexer.LE, p.parseInfixExpression)
	p.registerInfix(lexer.GE, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.ASSIGN, p.parseAssignExpression)
	p.registerInfix(lexer.IDENT, p.parseImplicitMulExpression)
	p.registerInfix(lexer.TRUE, p.parseImplicitMulExpression)
	p.registerInfix(lexer.FALSE, p.parseImplicitMulExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)

	p.advance()
	p.advance()

	return p
}

func (p *Parser) registerPrefix(tt lexer.TokenType, fn prefixParseFn) { p.prefixFns[tt] = fn }
func (p *Parser) registerInfix(tt lexer.TokenType, fn infixParseFn)   { p.infixFns[tt] = fn }

// Errors returns every error accumulated while parsing. Callers must
// not evaluate the resulting Program when this is non-empty.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) addErrorf(format string, a ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, a...))
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(tt lexer.TokenType) bool  { return p.cur.Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool { return p.peek.Type == tt }

// expectPeek advances only if peek is of the expected kind; otherwise
// it records an "expected next token" error and leaves the cursor in
// place.
func (p *Parser) expectPeek(tt lexer.TokenType) bool {
	if p.peekIs(tt) {
		p.advance()
		return true
	}
	p.addErrorf("expected next token to be %s, got %s instead.", tt, p.peek.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram consumes tokens until END, building the Program's
// statement list. Parsing never panics; errors accumulate in Errors.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for !p.curIs(lexer.END) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program
}

// parseStatement dispatches by the current token's kind: LET, RETURN,
// FOR, WHILE, LBRACE, and FUNCTION followed by a name each get a
// dedicated parse function; anything else (including a nameless
// `fn(...) {...}` literal) is an expression statement.
func (p *Parser) parseStatement() Statement {
	switch p.cur.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.FUNCTION:
		if p.peekIs(lexer.IDENT) {
			return p.parseFunctionStatement()
		}
		return p.parseExpressionStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.cur}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.cur, Name: p.cur.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)

	for p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.cur}
	p.advance()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	for p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseFunctionStatement handles `fn name(params) { body }`; evaluating
// the resulting FunctionStatement binds a closure under name.
func (p *Parser) parseFunctionStatement() Statement {
	stmt := &FunctionStatement{Token: p.cur}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = p.cur.Literal

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	stmt.Params = p.parseFunctionParams()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

func (p *Parser) parseForStatement() Statement {
	stmt := &ForStatement{Token: p.cur}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = p.cur.Literal

	if !p.expectPeek(lexer.IN) {
		return nil
	}
	p.advance()
	stmt.Range = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

func (p *Parser) parseWhileStatement() Statement {
	stmt := &WhileStatement{Token: p.cur}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.advance()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.cur}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseBlockStatement consumes statements until RBRACE or END. Hitting
// END first records an "expected '}'" error but still returns what was
// parsed so far.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.cur, Statements: []Statement{}}
	p.advance()

	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.END) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}

	if p.curIs(lexer.END) {
		p.addErrorf("expected '}'")
	}

	return block
}

// parseExpression is the heart of the Pratt algorithm: find a prefix
// handler for cur, then keep consuming infix operators whose
// precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) Expression {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.addErrorf("no prefix parse function for %s found.", p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peek.Type]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.cur, Name: p.cur.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	lit := &IntegerLiteral{Token: p.cur}
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.addErrorf("could not parse %q as integer", p.cur.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseDoubleLiteral() Expression {
	lit := &DoubleLiteral{Token: p.cur}
	value, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.addErrorf("could not parse %q as double", p.cur.Literal)
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: p.cur, Value: p.curIs(lexer.TRUE)}
}

func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.cur, Operator: p.cur.Literal}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{Token: p.cur, Operator: p.cur.Literal, Left: left}
	precedence := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseAssignExpression re-parses its right-hand side at LOWEST,
// giving `=` right-associativity (`a = b = 5` is `a = (b = 5)`) unlike
// every other infix operator, which is left-associative via the
// ordinary Pratt loop.
func (p *Parser) parseAssignExpression(left Expression) Expression {
	expr := &InfixExpression{Token: p.cur, Operator: p.cur.Literal, Left: left}
	p.advance()
	expr.Right = p.parseExpression(LOWEST)
	return expr
}

// parseImplicitMulExpression implements the juxtaposition rule: an
// IDENT/TRUE/FALSE appearing where an infix operator was expected is
// read as a synthesized `*`, without consuming the token that
// triggered it — `2x` parses as `2*x`.
func (p *Parser) parseImplicitMulExpression(left Expression) Expression {
	expr := &InfixExpression{Token: p.cur, Operator: "*", Left: left}
	precedence := p.curPrecedence()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseGroupedExpression() Expression {
	p.advance()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses `if (cond) { cons } [else ...]`. A bare
// `else { ... }` is normalized into an *IfExpression whose Condition
// is the literal `true`, so else-if chains and terminal else blocks
// share one representation.
func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.cur}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.advance()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekIs(lexer.ELSE) {
		p.advance()

		if p.peekIs(lexer.IF) {
			p.advance()
			alt, ok := p.parseIfExpression().(*IfExpression)
			if !ok {
				return nil
			}
			expr.Alternative = alt
		} else if p.expectPeek(lexer.LBRACE) {
			expr.Alternative = &IfExpression{
				Token:       p.cur,
				Condition:   &BooleanLiteral{Token: p.cur, Value: true},
				Consequence: p.parseBlockStatement(),
			}
		}
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() Expression {
	lit := &FunctionLiteral{Token: p.cur}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	lit.Params = p.parseFunctionParams()

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParams() []*Identifier {
	params := []*Identifier{}

	if p.peekIs(lexer.RPAREN) {
		p.advance()
		return params
	}

	p.advance()
	params = append(params, &Identifier{Token: p.cur, Name: p.cur.Literal})

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		params = append(params, &Identifier{Token: p.cur, Name: p.cur.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return params
}

func (p *Parser) parseCallExpression(callee Expression) Expression {
	expr := &CallExpression{Token: p.cur, Callee: callee}
	expr.Arguments = p.parseExpressionList(lexer.RPAREN)
	return expr
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	expr := &IndexExpression{Token: p.cur, Left: left}
	p.advance()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return expr
}

func (p *Parser) parseArrayLiteral() Expression {
	array := &ArrayLiteral{Token: p.cur}
	array.Elements = p.parseExpressionList(lexer.RBRACKET)
	return array
}

// parseExpressionList parses a comma-separated list of expressions up
// to (and consuming) end. Each comma must be followed by an
// expression; there is no trailing-comma allowance.
func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	list := []Expression{}

	if p.peekIs(end) {
		p.advance()
		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseHashLiteral parses `{ key: value, key: value }`. Registered as
// a prefix handler for LBRACE, so a hash literal and a block statement
// share no ambiguity — a block can only appear where a statement is
// expected, a hash literal only where an expression is expected.
func (p *Parser) parseHashLiteral() Expression {
	hash := &HashLiteral{Token: p.cur}

	for !p.peekIs(lexer.RBRACE) {
		p.advance()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(lexer.COLON) {
			return nil
		}

		p.advance()
		value := p.parseExpression(LOWEST)

		hash.Pairs = append(hash.Pairs, HashLiteralPair{Key: key, Value: value})

		if !p.peekIs(lexer.RBRACE) && !p.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}

	return hash
}
