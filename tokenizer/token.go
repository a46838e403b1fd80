package tokenizer

import "fmt"

// TokenType identifies the type of a lexical token. Values below TokenUser
// are reserved for the built-in kinds; callers pick their own types from
// TokenUser upwards.
type TokenType int

const (
	TokenUnknown    TokenType = iota // byte no matcher claimed
	TokenIdentifier                  // [A-Za-z_][A-Za-z0-9_]*
	TokenNumber                      // [0-9]+
	TokenString                      // "..." interior, escapes left raw
	TokenSymbol                      // any other single byte
	TokenEOF

	// TokenUser is the first type value available to Register.
	TokenUser TokenType = 1000
)

var tokenNames = map[TokenType]string{
	TokenUnknown:    "UNKNOWN",
	TokenIdentifier: "IDENTIFIER",
	TokenNumber:     "NUMBER",
	TokenString:     "STRING",
	TokenSymbol:     "SYMBOL",
	TokenEOF:        "EOF",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	if t.IsUser() {
		return fmt.Sprintf("user+%d", int(t-TokenUser))
	}
	return fmt.Sprintf("reserved(%d)", int(t))
}

// IsUser reports whether t lies in the caller-defined range.
func (t TokenType) IsUser() bool {
	return t >= TokenUser
}

// Token is a single lexical unit produced by the Scanner.
//
// Text is a view into the scanned buffer, not a copy. It is only meaningful
// while the Scanner that produced it is open.
type Token struct {
	Type   TokenType
	Text   []byte
	Offset int // byte offset of Text within the source
}

// Length returns the number of source bytes covered by Text.
func (t Token) Length() int {
	return len(t.Text)
}

// Literal returns a copy of the token text.
func (t Token) Literal() string {
	return string(t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d", t.Type, t.Text, t.Offset)
}
