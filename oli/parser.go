package oli

import "fmt"

type parseError struct {
	line int
	msg  string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.line, e.msg)
}

// Parser builds one expression tree from a token sequence using
// recursive descent with a fixed precedence ladder. The input sequence
// must end with an EOF token; the lexer always emits one, and hand-built
// sequences must do the same — running past the end without it is a
// caller bug and panics.
type Parser struct {
	tokens  []Token
	current int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the tokens and returns the expression tree. On a
// malformed sequence it reports the first grammar violation and leaves
// the cursor resynchronized at a statement boundary, so a multi-statement
// driver can call it again.
func (p *Parser) Parse() (Expression, error) {
	expr, err := p.expression()
	if err != nil {
		p.synchronize()
		return nil, err
	}
	return expr, nil
}

func (p *Parser) expression() (Expression, error) {
	return p.equality()
}

func (p *Parser) equality() (Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(tokenNotEQ, tokenEQ) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) comparison() (Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(tokenGT, tokenGTE, tokenLT, tokenLTE) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) term() (Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(tokenMinus, tokenPlus) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) factor() (Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(tokenSlash, tokenAsterisk) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) unary() (Expression, error) {
	// "!=" is accepted as a prefix operator here alongside "!"; the
	// grammar lists both in the prefix match set.
	if p.match(tokenBang, tokenNotEQ) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Right: right}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expression, error) {
	tok := p.peek()

	switch tok.Type {
	case tokenLParen:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(tokenRParen, "Expected ')'"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expr: expr}, nil
	case tokenNumber:
		p.advance()
		return &LiteralExpr{Value: LiteralValue{Kind: ValueNumber, Number: tok.Literal.Number}}, nil
	case tokenString:
		p.advance()
		return &LiteralExpr{Value: LiteralValue{Kind: ValueString, Text: tok.Literal.Text}}, nil
	case tokenTrue:
		p.advance()
		return &LiteralExpr{Value: LiteralValue{Kind: ValueTrue}}, nil
	case tokenFalse:
		p.advance()
		return &LiteralExpr{Value: LiteralValue{Kind: ValueFalse}}, nil
	case tokenNil:
		p.advance()
		return &LiteralExpr{Value: LiteralValue{Kind: ValueNil}}, nil
	default:
		return nil, &parseError{line: tok.Line, msg: "Expected expression"}
	}
}

func (p *Parser) consume(tt TokenType, msg string) error {
	if p.check(tt) {
		p.advance()
		return nil
	}
	return &parseError{line: p.peek().Line, msg: msg}
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		panic("oli: token sequence missing its EOF terminator")
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == tokenEOF
}

// synchronize discards tokens until it passes a statement terminator or
// reaches a token that begins a statement-level construct. A single
// standalone expression parse does not depend on it; it exists so a
// future multi-statement grammar can collect more than one diagnostic.
func (p *Parser) synchronize() {
	if p.isAtEnd() {
		return
	}
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == tokenSemicolon {
			return
		}

		switch p.peek().Type {
		case tokenClass, tokenFun, tokenVar, tokenFor, tokenIf, tokenWhile, tokenSay, tokenReturn:
			return
		}

		p.advance()
	}
}
