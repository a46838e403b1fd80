package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource is returned when a Scanner is built over absent text.
	ErrNoSource = errors.New("tokenizer: no source text")

	// ErrUnreadable wraps failures to load a source file.
	ErrUnreadable = errors.New("tokenizer: source file unreadable")

	// ErrInvalidArgument is the cause of every rejected registration.
	ErrInvalidArgument = errors.New("tokenizer: invalid argument")

	// ErrClosed is returned by operations on a Scanner after Close.
	ErrClosed = errors.New("tokenizer: scanner closed")
)

// RegistrationError describes a literal that Register refused.
type RegistrationError struct {
	Literal string
	Type    TokenType
	Reason  string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register %q as %s: %s", e.Literal, e.Type, e.Reason)
}

func (e *RegistrationError) Unwrap() error { return ErrInvalidArgument }
