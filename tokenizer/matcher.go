package tokenizer

import "fmt"

// Matcher is one recognizer rule in a Scanner's chain. Matchers are tried
// in chain order at each position and the first to succeed wins.
type Matcher int

const (
	MatchCustom     Matcher = iota // registered literals
	MatchIdentifier                // [A-Za-z_][A-Za-z0-9_]*
	MatchNumber                    // [0-9]+
	MatchString                    // "..." with backslash skip
	MatchSymbol                    // any single byte; never fails
)

var matcherNames = [...]string{
	MatchCustom:     "custom",
	MatchIdentifier: "identifier",
	MatchNumber:     "number",
	MatchString:     "string",
	MatchSymbol:     "symbol",
}

func (m Matcher) String() string {
	if m >= 0 && int(m) < len(matcherNames) {
		return matcherNames[m]
	}
	return fmt.Sprintf("matcher(%d)", int(m))
}

// DefaultChain returns the standard priority order. MatchSymbol is last
// because it always succeeds.
func DefaultChain() []Matcher {
	return []Matcher{MatchCustom, MatchIdentifier, MatchNumber, MatchString, MatchSymbol}
}

// match runs the rule at src[pos]. On success it returns the token and the
// offset just past the consumed bytes, which is always greater than pos.
// pos must be in range.
func (m Matcher) match(src []byte, pos int, reg *Registry) (Token, int, bool) {
	switch m {
	case MatchCustom:
		return matchCustom(src, pos, reg)
	case MatchIdentifier:
		return matchIdentifier(src, pos)
	case MatchNumber:
		return matchNumber(src, pos)
	case MatchString:
		return matchString(src, pos)
	case MatchSymbol:
		return matchSymbol(src, pos)
	}
	return Token{}, pos, false
}

func matchCustom(src []byte, pos int, reg *Registry) (Token, int, bool) {
	if reg == nil {
		return Token{}, pos, false
	}
	def, ok := reg.LookupAt(src, pos)
	if !ok {
		return Token{}, pos, false
	}
	end := pos + len(def.Literal)
	return Token{Type: def.Type, Text: src[pos:end:end], Offset: pos}, end, true
}

func matchIdentifier(src []byte, pos int) (Token, int, bool) {
	if !isIdentStart(src[pos]) {
		return Token{}, pos, false
	}
	end := pos + 1
	for end < len(src) && isIdentPart(src[end]) {
		end++
	}
	return Token{Type: TokenIdentifier, Text: src[pos:end:end], Offset: pos}, end, true
}

func matchNumber(src []byte, pos int) (Token, int, bool) {
	if !isDigit(src[pos]) {
		return Token{}, pos, false
	}
	end := pos + 1
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	return Token{Type: TokenNumber, Text: src[pos:end:end], Offset: pos}, end, true
}

// matchString emits the interior of a double-quoted string. Escapes are not
// interpreted: a backslash only protects the byte after it. Input that ends
// before the closing quote still yields a token.
func matchString(src []byte, pos int) (Token, int, bool) {
	if src[pos] != '"' {
		return Token{}, pos, false
	}
	start := pos + 1
	i := start
	for i < len(src) && src[i] != '"' {
		if src[i] == '\\' {
			i++
		}
		i++
	}
	if i > len(src) {
		// trailing backslash
		i = len(src)
	}
	end := i
	if end < len(src) {
		end++ // closing quote
	}
	return Token{Type: TokenString, Text: src[start:i:i], Offset: start}, end, true
}

func matchSymbol(src []byte, pos int) (Token, int, bool) {
	end := pos + 1
	return Token{Type: TokenSymbol, Text: src[pos:end:end], Offset: pos}, end, true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
