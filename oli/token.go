package oli

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"
	tokenString TokenType = "STRING"

	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenComma     TokenType = ","
	tokenDot       TokenType = "."
	tokenMinus     TokenType = "-"
	tokenPlus      TokenType = "+"
	tokenSemicolon TokenType = ";"
	tokenAsterisk  TokenType = "*"
	tokenSlash     TokenType = "/"

	tokenBang   TokenType = "!"
	tokenNotEQ  TokenType = "!="
	tokenAssign TokenType = "="
	tokenEQ     TokenType = "=="
	tokenLT     TokenType = "<"
	tokenLTE    TokenType = "<="
	tokenGT     TokenType = ">"
	tokenGTE    TokenType = ">="

	tokenAnd    TokenType = "AND"
	tokenClass  TokenType = "CLASS"
	tokenElse   TokenType = "ELSE"
	tokenFalse  TokenType = "FALSE"
	tokenFor    TokenType = "FOR"
	tokenFun    TokenType = "FUN"
	tokenIf     TokenType = "IF"
	tokenNil    TokenType = "NIL"
	tokenOr     TokenType = "OR"
	tokenSay    TokenType = "SAY"
	tokenReturn TokenType = "RETURN"
	tokenSuper  TokenType = "SUPER"
	tokenThis   TokenType = "THIS"
	tokenTrue   TokenType = "TRUE"
	tokenVar    TokenType = "VAR"
	tokenWhile  TokenType = "WHILE"
)

// Literal is the decoded payload carried by number, string, and
// identifier tokens. The owning token's Type says which field holds the
// value; every other token type carries a nil *Literal.
type Literal struct {
	Number float64
	Text   string
}

// Token captures lexical information for the parser. Lexeme is always a
// verbatim slice of the source text (empty for EOF), and Line is the
// 1-based line the token starts on. Tokens are immutable values.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal *Literal
	Line    int
}

func (t Token) String() string {
	switch t.Type {
	case tokenNumber:
		return fmt.Sprintf("%d: %s %q %s", t.Line, t.Type, t.Lexeme, formatNumber(t.Literal.Number))
	case tokenString, tokenIdent:
		return fmt.Sprintf("%d: %s %q %s", t.Line, t.Type, t.Lexeme, t.Literal.Text)
	default:
		return fmt.Sprintf("%d: %s %q", t.Line, t.Type, t.Lexeme)
	}
}
