package oli

import (
	"strings"
	"testing"
)

func TestScanTokensSingleCharPunctuation(t *testing.T) {
	source := "(){},.-+;*/"
	want := []TokenType{
		tokenLParen, tokenRParen, tokenLBrace, tokenRBrace, tokenComma,
		tokenDot, tokenMinus, tokenPlus, tokenSemicolon, tokenAsterisk,
		tokenSlash, tokenEOF,
	}

	tokens, err := NewLexer(source).ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
		if tokens[i].Line != 1 {
			t.Fatalf("token %d: expected line 1, got %d", i, tokens[i].Line)
		}
	}
	if tokens[len(tokens)-1].Lexeme != "" {
		t.Fatalf("EOF token must carry an empty lexeme")
	}
}

func TestScanTokensTwoCharOperators(t *testing.T) {
	tokens, err := NewLexer("!= == <= >=").ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}

	want := []TokenType{tokenNotEQ, tokenEQ, tokenLTE, tokenGTE, tokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("operators were split: expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestScanTokensOneCharFallbackDoesNotOverConsume(t *testing.T) {
	tokens, err := NewLexer("!a =1 <5 >x").ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}

	want := []TokenType{
		tokenBang, tokenIdent,
		tokenAssign, tokenNumber,
		tokenLT, tokenNumber,
		tokenGT, tokenIdent,
		tokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestScanTokensStringPayloadRoundTrip(t *testing.T) {
	tokens, err := NewLexer("\"hello\nworld\"").ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected string and EOF, got %d tokens", len(tokens))
	}

	str := tokens[0]
	if str.Type != tokenString {
		t.Fatalf("expected string token, got %s", str.Type)
	}
	if str.Literal == nil || str.Literal.Text != "hello\nworld" {
		t.Fatalf("payload does not round-trip: %#v", str.Literal)
	}
	if str.Lexeme != "\"hello\nworld\"" {
		t.Fatalf("lexeme is not a verbatim source slice: %q", str.Lexeme)
	}
	if str.Line != 1 {
		t.Fatalf("string token starts on line 1, got %d", str.Line)
	}
	if tokens[1].Line != 2 {
		t.Fatalf("embedded newline must advance the line counter, EOF on line %d", tokens[1].Line)
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	tokens, err := NewLexer("\"abc").ScanTokens()
	if err == nil {
		t.Fatalf("expected a scan error")
	}
	if !strings.Contains(err.Error(), "Unterminated string.") {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != tokenEOF {
		t.Fatalf("an unterminated string must not produce a token, got %v", tokens)
	}
}

func TestScanTokensNumbers(t *testing.T) {
	cases := []struct {
		source string
		value  float64
	}{
		{"0", 0},
		{"123", 123},
		{"45.67", 45.67},
		{"0.5", 0.5},
	}

	for _, tc := range cases {
		tokens, err := NewLexer(tc.source).ScanTokens()
		if err != nil {
			t.Fatalf("%q: expected no scan errors, got %v", tc.source, err)
		}
		if tokens[0].Type != tokenNumber {
			t.Fatalf("%q: expected number token, got %s", tc.source, tokens[0].Type)
		}
		if tokens[0].Literal == nil || tokens[0].Literal.Number != tc.value {
			t.Fatalf("%q: expected value %v, got %#v", tc.source, tc.value, tokens[0].Literal)
		}
		if tokens[0].Lexeme != tc.source {
			t.Fatalf("%q: lexeme mismatch %q", tc.source, tokens[0].Lexeme)
		}
	}
}

func TestScanTokensTrailingDotNotAbsorbed(t *testing.T) {
	tokens, err := NewLexer("123.").ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}

	want := []TokenType{tokenNumber, tokenDot, tokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
	if tokens[0].Literal.Number != 123 {
		t.Fatalf("expected value 123, got %v", tokens[0].Literal.Number)
	}
}

func TestScanTokensKeywordsAreCaseSensitive(t *testing.T) {
	tokens, err := NewLexer("true True TRUE nil fun funky _x").ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}

	want := []TokenType{
		tokenTrue, tokenIdent, tokenIdent, tokenNil, tokenFun, tokenIdent,
		tokenIdent, tokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d (%q): expected %s, got %s", i, tokens[i].Lexeme, tt, tokens[i].Type)
		}
	}
	if tokens[5].Literal == nil || tokens[5].Literal.Text != "funky" {
		t.Fatalf("identifier payload missing: %#v", tokens[5].Literal)
	}
}

func TestScanTokensAllKeywords(t *testing.T) {
	source := "and class else false for fun if nil or say return super this true var while"
	want := []TokenType{
		tokenAnd, tokenClass, tokenElse, tokenFalse, tokenFor, tokenFun,
		tokenIf, tokenNil, tokenOr, tokenSay, tokenReturn, tokenSuper,
		tokenThis, tokenTrue, tokenVar, tokenWhile, tokenEOF,
	}

	tokens, err := NewLexer(source).ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestScanTokensLineCommentsAndLines(t *testing.T) {
	source := "1 // the rest is ignored\n2 // also ignored"
	tokens, err := NewLexer(source).ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}

	if len(tokens) != 3 {
		t.Fatalf("expected two numbers and EOF, got %d tokens", len(tokens))
	}
	if tokens[0].Line != 1 || tokens[1].Line != 2 {
		t.Fatalf("line tracking wrong: %d, %d", tokens[0].Line, tokens[1].Line)
	}
}

func TestScanTokensUnrecognizedChar(t *testing.T) {
	tokens, err := NewLexer("@").ScanTokens()
	if err == nil {
		t.Fatalf("expected a scan error")
	}
	if got := err.Error(); got != "Unrecognized char at line 1: @" {
		t.Fatalf("unexpected error: %q", got)
	}
	if len(tokens) != 1 || tokens[0].Type != tokenEOF {
		t.Fatalf("erroring character must not produce a token, got %v", tokens)
	}
}

func TestScanTokensCollectsMultipleErrorsAndContinues(t *testing.T) {
	tokens, err := NewLexer("@ + $\n#").ScanTokens()
	if err == nil {
		t.Fatalf("expected scan errors")
	}

	msgs := strings.Split(err.Error(), "\n")
	if len(msgs) != 3 {
		t.Fatalf("expected 3 joined diagnostics, got %d: %q", len(msgs), err.Error())
	}
	if msgs[0] != "Unrecognized char at line 1: @" ||
		msgs[1] != "Unrecognized char at line 1: $" ||
		msgs[2] != "Unrecognized char at line 2: #" {
		t.Fatalf("unexpected diagnostics: %q", msgs)
	}

	// Scanning continued past each failure: the plus survives.
	if len(tokens) != 2 || tokens[0].Type != tokenPlus {
		t.Fatalf("expected best-effort tokens around the errors, got %v", tokens)
	}
}

func TestScanTokensEmptySource(t *testing.T) {
	tokens, err := NewLexer("").ScanTokens()
	if err != nil {
		t.Fatalf("expected no scan errors, got %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != tokenEOF || tokens[0].Line != 1 {
		t.Fatalf("expected a lone EOF on line 1, got %v", tokens)
	}
}
