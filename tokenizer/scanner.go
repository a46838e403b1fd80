package tokenizer

import (
	"io"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/just-bake/jtok/internal/logfields"
)

// Scanner turns a source buffer into tokens, one per call to Next.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	src      *source
	pos      int
	registry *Registry
	chain    []Matcher
	log      logrus.FieldLogger
	closed   bool
}

var discardLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

type config struct {
	chain    []Matcher
	readFile ReadFileFunc
	log      logrus.FieldLogger
	defs     []Definition
}

// Option configures a Scanner at construction.
type Option func(*config)

// WithChain replaces the matcher chain. Dropping MatchSymbol exposes the
// TokenUnknown fallback for bytes no remaining rule claims.
func WithChain(matchers ...Matcher) Option {
	return func(c *config) {
		c.chain = append([]Matcher(nil), matchers...)
	}
}

// WithReadFile sets the loader used by NewFromFile.
func WithReadFile(fn ReadFileFunc) Option {
	return func(c *config) {
		c.readFile = fn
	}
}

// WithLogger sets the logger for construction, registration and teardown
// events. By default the Scanner logs nothing.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithDefinitions registers defs, in order, as the Scanner is built.
func WithDefinitions(defs ...Definition) Option {
	return func(c *config) {
		c.defs = append(c.defs, defs...)
	}
}

func newConfig(opts []Option) *config {
	c := &config{chain: DefaultChain()}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = discardLogger
	}
	c.log = c.log.WithField(logfields.LogSubsys, "tokenizer")
	return c
}

// NewFromString creates a Scanner over text with the default chain and an
// empty registry. Empty text yields TokenEOF immediately.
func NewFromString(text string) *Scanner {
	s, _ := newScanner(borrowSource([]byte(text)), newConfig(nil))
	return s
}

// NewFromBytes creates a Scanner that borrows src. The caller must not
// modify src while the Scanner is in use. A nil src returns ErrNoSource;
// an empty non-nil slice is valid input.
func NewFromBytes(src []byte, opts ...Option) (*Scanner, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	return newScanner(borrowSource(src), newConfig(opts))
}

// NewFromFile reads the whole file at path and scans it. The Scanner owns
// the loaded buffer and drops it on Close.
func NewFromFile(path string, opts ...Option) (*Scanner, error) {
	cfg := newConfig(opts)
	src, err := loadSource(path, cfg.readFile)
	if err != nil {
		cfg.log.WithError(err).WithField(logfields.Path, path).Debug("Unable to load source")
		return nil, err
	}
	cfg.log = cfg.log.WithField(logfields.Path, path)
	return newScanner(src, cfg)
}

func newScanner(src *source, cfg *config) (*Scanner, error) {
	s := &Scanner{
		src:      src,
		registry: NewRegistry(),
		chain:    cfg.chain,
		log:      cfg.log,
	}
	for _, def := range cfg.defs {
		if err := s.Register(def.Literal, def.Type); err != nil {
			src.release()
			return nil, err
		}
	}
	s.log.WithFields(logrus.Fields{
		logfields.Bytes:       src.size(),
		logfields.Owned:       src.owned,
		logfields.Definitions: s.registry.Len(),
	}).Debug("Scanner created")
	return s, nil
}

// Register maps literal to typ for the custom matcher. typ must be at least
// TokenUser. Literals are matched in registration order, first match wins.
func (s *Scanner) Register(literal string, typ TokenType) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.registry.Register(literal, typ); err != nil {
		s.log.WithFields(logrus.Fields{
			logfields.Literal:   literal,
			logfields.TokenType: int(typ),
		}).WithError(err).Debug("Rejected token definition")
		return err
	}
	return nil
}

// Definitions returns the registered literals in registration order.
func (s *Scanner) Definitions() []Definition {
	return s.registry.Definitions()
}

// Next returns the next token. At end of input it returns a TokenEOF token
// with empty text, and keeps doing so on every later call.
func (s *Scanner) Next() Token {
	if s.closed {
		return Token{Type: TokenEOF}
	}
	src := s.src.data
	for s.pos < len(src) && isSpace(src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(src) {
		return Token{Type: TokenEOF, Text: s.src.slice(len(src), 0), Offset: len(src)}
	}

	for _, m := range s.chain {
		// A declining matcher leaves s.pos alone; only success commits.
		if tok, end, ok := m.match(src, s.pos, s.registry); ok {
			s.pos = end
			return tok
		}
	}

	start := s.pos
	s.pos++
	return Token{Type: TokenUnknown, Text: s.src.slice(start, 1), Offset: start}
}

// Tokens yields each remaining token until end of input. The TokenEOF token
// itself is not yielded.
func (s *Scanner) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := s.Next()
			if tok.Type == TokenEOF || !yield(tok) {
				return
			}
		}
	}
}

// All drains the Scanner and returns every remaining token except TokenEOF.
func (s *Scanner) All() []Token {
	var tokens []Token
	for tok := range s.Tokens() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Len returns the length of the source in bytes.
func (s *Scanner) Len() int {
	if s.closed {
		return 0
	}
	return s.src.size()
}

// Exhausted reports whether the position has reached the end of the
// source. Trailing whitespace still counts as unscanned input.
func (s *Scanner) Exhausted() bool {
	if s.closed {
		return true
	}
	return s.pos >= s.src.size()
}

// Close releases the source buffer and the registry. Tokens obtained earlier
// must not be used afterwards. Closing twice, or closing a nil Scanner, is a
// no-op.
func (s *Scanner) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	owned := s.src.owned
	s.src.release()
	defs := s.registry.Len()
	s.registry.Reset()
	s.log.WithFields(logrus.Fields{
		logfields.Owned:       owned,
		logfields.Definitions: defs,
	}).Debug("Scanner closed")
	return nil
}
