package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterKeepsOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("while", TokenUser+2))
	require.NoError(t, r.Register("if", TokenUser))
	require.NoError(t, r.Register("if", TokenUser+9))

	assert.Equal(t, []Definition{
		{"while", TokenUser + 2},
		{"if", TokenUser},
		{"if", TokenUser + 9},
	}, r.Definitions())
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_DuplicateShadowed(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("if", TokenUser))
	require.NoError(t, r.Register("if", TokenUser+9))

	def, ok := r.LookupAt([]byte("if"), 0)
	require.True(t, ok)
	assert.Equal(t, TokenUser, def.Type)
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		typ     TokenType
		reason  string
	}{
		{"empty literal", "", TokenUser, "empty literal"},
		{"builtin type", "x", TokenNumber, "type is in the reserved range"},
		{"gap below user range", "x", TokenUser - 1, "type is in the reserved range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.literal, tt.typ)
			require.ErrorIs(t, err, ErrInvalidArgument)
			var regErr *RegistrationError
			require.ErrorAs(t, err, &regErr)
			assert.Equal(t, tt.reason, regErr.Reason)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestRegistry_LookupAt(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("if", TokenUser))
	require.NoError(t, r.Register("+=", TokenUser+1))
	require.NoError(t, r.Register("+", TokenUser+2))

	tests := []struct {
		src  string
		pos  int
		want TokenType
		ok   bool
	}{
		{"if", 0, TokenUser, true},
		{"if(", 0, TokenUser, true},
		{"if x", 0, TokenUser, true},
		{"iffy", 0, 0, false},
		{"if2", 0, 0, false},
		{"x if", 2, TokenUser, true},
		{"x if", 1, 0, false},
		{"i", 0, 0, false},
		{"a += 1", 2, TokenUser + 1, true},
		{"a + 1", 2, TokenUser + 2, true},
		{"+a", 0, 0, false},
		{"if", 2, 0, false},
		{"if", -1, 0, false},
	}
	for _, tt := range tests {
		def, ok := r.LookupAt([]byte(tt.src), tt.pos)
		assert.Equal(t, tt.ok, ok, "src %q pos %d", tt.src, tt.pos)
		if tt.ok {
			assert.Equal(t, tt.want, def.Type, "src %q pos %d", tt.src, tt.pos)
		}
	}
}

func TestRegistry_DefinitionsIsCopy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("a", TokenUser))

	defs := r.Definitions()
	defs[0].Literal = "b"
	assert.Equal(t, "a", r.Definitions()[0].Literal)
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("a", TokenUser))
	r.Reset()
	assert.Equal(t, 0, r.Len())
	_, ok := r.LookupAt([]byte("a"), 0)
	assert.False(t, ok)
}

func TestRegistry_LookupAtDoesNotAllocate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("while", TokenUser))
	require.NoError(t, r.Register("==", TokenUser+1))
	require.NoError(t, r.Register("if", TokenUser+2))
	src := []byte("x == if while")

	allocs := testing.AllocsPerRun(100, func() {
		for pos := range src {
			r.LookupAt(src, pos)
		}
	})
	assert.Zero(t, allocs)
}
