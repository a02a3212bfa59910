package oli

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer transforms one source text into a token sequence. It owns its
// buffers exclusively; scanning a second source requires a fresh Lexer.
type Lexer struct {
	source string

	start     int
	current   int
	line      int
	startLine int

	tokens   []Token
	errs     []error
	keywords map[string]TokenType
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		keywords: map[string]TokenType{
			"and":    tokenAnd,
			"class":  tokenClass,
			"else":   tokenElse,
			"false":  tokenFalse,
			"for":    tokenFor,
			"fun":    tokenFun,
			"if":     tokenIf,
			"nil":    tokenNil,
			"or":     tokenOr,
			"say":    tokenSay,
			"return": tokenReturn,
			"super":  tokenSuper,
			"this":   tokenThis,
			"true":   tokenTrue,
			"var":    tokenVar,
			"while":  tokenWhile,
		},
	}
}

// ScanTokens scans the whole source. The returned slice always ends with
// exactly one EOF token. Scan errors do not abort the scan: each one is
// collected and scanning resumes, so a single call reports every
// malformed lexeme. The returned error joins the collected diagnostics
// (newline-separated) and is nil when the source was clean.
func (l *Lexer) ScanTokens() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		if err := l.scanToken(); err != nil {
			l.errs = append(l.errs, err)
		}
	}
	l.tokens = append(l.tokens, Token{Type: tokenEOF, Line: l.line})
	return l.tokens, errors.Join(l.errs...)
}

func (l *Lexer) scanToken() error {
	c := l.advance()

	switch c {
	case '(':
		l.addToken(tokenLParen)
	case ')':
		l.addToken(tokenRParen)
	case '{':
		l.addToken(tokenLBrace)
	case '}':
		l.addToken(tokenRBrace)
	case ',':
		l.addToken(tokenComma)
	case '.':
		l.addToken(tokenDot)
	case '-':
		l.addToken(tokenMinus)
	case '+':
		l.addToken(tokenPlus)
	case ';':
		l.addToken(tokenSemicolon)
	case '*':
		l.addToken(tokenAsterisk)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.addToken(tokenSlash)
		}
	case '!':
		if l.match('=') {
			l.addToken(tokenNotEQ)
		} else {
			l.addToken(tokenBang)
		}
	case '=':
		if l.match('=') {
			l.addToken(tokenEQ)
		} else {
			l.addToken(tokenAssign)
		}
	case '<':
		if l.match('=') {
			l.addToken(tokenLTE)
		} else {
			l.addToken(tokenLT)
		}
	case '>':
		if l.match('=') {
			l.addToken(tokenGTE)
		} else {
			l.addToken(tokenGT)
		}
	case ' ', '\r', '\t':
	case '\n':
		l.line++
	case '"':
		return l.scanString()
	default:
		switch {
		case isDigit(c):
			return l.scanNumber()
		case isIdentifierStart(c):
			l.scanIdentifier()
		default:
			return fmt.Errorf("Unrecognized char at line %d: %c", l.line, c)
		}
	}

	return nil
}

func (l *Lexer) scanString() error {
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		return errors.New("Unterminated string.")
	}

	l.advance() // closing quote

	value := l.source[l.start+1 : l.current-1]
	l.addLiteralToken(tokenString, &Literal{Text: value})
	return nil
}

func (l *Lexer) scanNumber() error {
	for isDigit(l.peek()) {
		l.advance()
	}

	// A trailing dot is not part of the number; consume the dot only
	// when a digit follows it.
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	text := l.source[l.start:l.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid number literal at line %d: %s", l.line, text)
	}

	l.addLiteralToken(tokenNumber, &Literal{Number: value})
	return nil
}

func (l *Lexer) scanIdentifier() {
	for isIdentifierRune(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	if tt, ok := l.keywords[text]; ok {
		l.addToken(tt)
		return
	}
	l.addLiteralToken(tokenIdent, &Literal{Text: text})
}

func (l *Lexer) addToken(tt TokenType) {
	l.addLiteralToken(tt, nil)
}

func (l *Lexer) addLiteralToken(tt TokenType, lit *Literal) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.source[l.start:l.current],
		Literal: lit,
		Line:    l.startLine,
	})
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) advance() rune {
	r, w := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += w
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.isAtEnd() {
		return 0
	}
	_, w := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+w >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current+w:])
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
