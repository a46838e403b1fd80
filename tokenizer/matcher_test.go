package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchers(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register("let", TokenUser)

	tests := []struct {
		name    string
		m       Matcher
		src     string
		pos     int
		ok      bool
		typ     TokenType
		text    string
		wantEnd int
	}{
		{"custom hit", MatchCustom, "let x", 0, true, TokenUser, "let", 3},
		{"custom miss", MatchCustom, "letter", 0, false, 0, "", 0},
		{"identifier", MatchIdentifier, "ab_1+", 0, true, TokenIdentifier, "ab_1", 4},
		{"identifier rejects digit", MatchIdentifier, "1ab", 0, false, 0, "", 0},
		{"number", MatchNumber, "x007y", 1, true, TokenNumber, "007", 4},
		{"number rejects letter", MatchNumber, "x1", 0, false, 0, "", 0},
		{"string", MatchString, `"ab" c`, 0, true, TokenString, "ab", 4},
		{"string escape", MatchString, `"a\"b"`, 0, true, TokenString, `a\"b`, 6},
		{"string unterminated", MatchString, `"ab`, 0, true, TokenString, "ab", 3},
		{"string lone quote", MatchString, `"`, 0, true, TokenString, "", 1},
		{"string rejects", MatchString, `'a'`, 0, false, 0, "", 0},
		{"symbol", MatchSymbol, "+=", 0, true, TokenSymbol, "+", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, end, ok := tt.m.match([]byte(tt.src), tt.pos, reg)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				assert.Equal(t, tt.pos, end, "declining matcher must not move")
				return
			}
			assert.Equal(t, tt.typ, tok.Type)
			assert.Equal(t, tt.text, tok.Literal())
			assert.Equal(t, tt.wantEnd, end)
			assert.Greater(t, end, tt.pos)
		})
	}
}

func TestMatcherNilRegistry(t *testing.T) {
	_, end, ok := MatchCustom.match([]byte("x"), 0, nil)
	assert.False(t, ok)
	assert.Equal(t, 0, end)
}

func TestMatcherString(t *testing.T) {
	assert.Equal(t, "custom", MatchCustom.String())
	assert.Equal(t, "symbol", MatchSymbol.String())
	assert.Equal(t, "matcher(42)", Matcher(42).String())
}

func TestDefaultChainOrder(t *testing.T) {
	chain := DefaultChain()
	assert.Equal(t, []Matcher{MatchCustom, MatchIdentifier, MatchNumber, MatchString, MatchSymbol}, chain)

	chain[0] = MatchSymbol
	assert.Equal(t, MatchCustom, DefaultChain()[0])
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "IDENTIFIER", TokenIdentifier.String())
	assert.Equal(t, "EOF", TokenEOF.String())
	assert.Equal(t, "user+0", TokenUser.String())
	assert.Equal(t, "user+5", (TokenUser + 5).String())
	assert.Equal(t, "reserved(7)", TokenType(7).String())
	assert.False(t, TokenEOF.IsUser())
	assert.True(t, TokenUser.IsUser())
}
