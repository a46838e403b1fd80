package tokenizer

// Definition pairs a registered literal with the user type it produces.
type Definition struct {
	Literal string
	Type    TokenType
}

// Registry holds caller-defined literals in registration order.
// Lookup is first-match-wins over that order, not longest-match: if "=" is
// registered before "==", the input "==" scans as two "=" tokens.
type Registry struct {
	defs []Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends literal with the given type. The literal must be
// non-empty and typ must be a user type; otherwise the registry is left
// unchanged and a *RegistrationError is returned. Duplicates are accepted,
// but only the first entry for a literal is ever reachable.
func (r *Registry) Register(literal string, typ TokenType) error {
	if literal == "" {
		return &RegistrationError{Literal: literal, Type: typ, Reason: "empty literal"}
	}
	if !typ.IsUser() {
		return &RegistrationError{Literal: literal, Type: typ, Reason: "type is in the reserved range"}
	}
	r.defs = append(r.defs, Definition{Literal: literal, Type: typ})
	return nil
}

// LookupAt returns the first definition whose literal appears verbatim at
// src[pos:] and is not immediately followed by an identifier byte. The guard
// keeps "if" from matching the front of "iffy".
func (r *Registry) LookupAt(src []byte, pos int) (Definition, bool) {
	if pos < 0 || pos >= len(src) {
		return Definition{}, false
	}
	rest := src[pos:]
	for _, def := range r.defs {
		end := len(def.Literal)
		if end > len(rest) || string(rest[:end]) != def.Literal {
			continue
		}
		if end < len(rest) && isIdentPart(rest[end]) {
			continue
		}
		return def, true
	}
	return Definition{}, false
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Definitions returns a copy of the entries in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Reset drops every definition.
func (r *Registry) Reset() {
	r.defs = nil
}
