// Package tokenizer implements a grammar-agnostic lexical scanner.
//
// A Scanner splits a byte buffer into identifiers, integer numbers,
// double-quoted strings, single-byte symbols, and any literals the caller
// registers with a type of its own. It knows nothing about the language being
// scanned; keywords and multi-byte operators are supplied at runtime.
//
// At every position the Scanner skips whitespace and then tries a fixed chain
// of matchers in priority order:
//
//   - custom: registered literals, first registered wins
//   - identifier: [A-Za-z_][A-Za-z0-9_]*
//   - number: [0-9]+
//   - string: "...", a backslash protects the following byte
//   - symbol: any single byte
//
// The first matcher to succeed produces the token. Matching is by priority,
// not by length, and a registered literal is only taken when the byte after it
// cannot continue an identifier, so "if" does not match the start of "iffy".
// Malformed input never stops the scan: an unterminated string is returned as
// far as it goes and stray bytes come back as symbols.
//
// Usage:
//
//	s := tokenizer.NewFromString(`if (x == 42) { return x; }`)
//	defer s.Close()
//	_ = s.Register("if", tokenizer.TokenUser+1)
//	_ = s.Register("==", tokenizer.TokenUser+2)
//	for tok := range s.Tokens() {
//	    fmt.Println(tok.Type, string(tok.Text))
//	}
//
// Token text is a view into the scanned buffer rather than a copy, and must
// not be used after the Scanner is closed.
package tokenizer
