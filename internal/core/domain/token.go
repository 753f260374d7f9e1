// Package domain contains the core value types shared by every layer: prim paths,
// interned tokens, data source locators and flattening configuration.
package domain

import "unique"

// Token is an interned string used for field names, prim types and enumerated values.
// Tokens are comparable and cheap to copy. The zero Token is the empty token.
type Token struct {
	h unique.Handle[string]
}

// NewToken interns s. The empty string maps to the zero Token so that
// NewToken("") == Token{}.
func NewToken(s string) Token {
	if s == "" {
		return Token{}
	}
	return Token{h: unique.Make(s)}
}

// Tokens interns every string in ss.
func Tokens(ss ...string) []Token {
	res := make([]Token, len(ss))
	for i, s := range ss {
		res[i] = NewToken(s)
	}
	return res
}

// String returns the underlying string value.
func (t Token) String() string {
	var zero unique.Handle[string]
	if t.h == zero {
		return ""
	}
	return t.h.Value()
}

// IsEmpty reports whether t is the empty token.
func (t Token) IsEmpty() bool {
	var zero unique.Handle[string]
	return t.h == zero
}

// Value returns the underlying unique.Handle[string].
func (t Token) Value() unique.Handle[string] {
	return t.h
}

// MarshalText implements encoding.TextMarshaler.
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Token) UnmarshalText(text []byte) error {
	*t = NewToken(string(text))
	return nil
}
