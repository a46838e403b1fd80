// Package logfields defines the logging field names shared by jtok packages.
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// Path is a source file path
	Path = "path"

	// Bytes is the length of a source buffer
	Bytes = "bytes"

	// Owned tells whether the source buffer was loaded by the scanner
	Owned = "owned"

	// Literal is a registered token literal
	Literal = "literal"

	// TokenType is a token type value
	TokenType = "tokenType"

	// Definitions is the number of registered literals
	Definitions = "definitions"

	// Tokens is a count of emitted tokens
	Tokens = "tokens"

	// Format is an output format name
	Format = "format"
)
