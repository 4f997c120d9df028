package rsa

// state.go defines State, the record holding the eight RSA quantities
// {m, c, e, d, n, phi, p, q}. A nil or non-positive field means "absent".
//
// Grounded on original_source/src/rsaobj.cpp (the RSA class): setProp,
// printProps, encrypt, decrypt. The polymorphic setProp(char, mpz_class)/
// setProp(char, string) overload becomes two explicit entry points, Set and
// SetString, sharing a private core — per spec.md §9.

import (
	"fmt"
	"io"
	"math/big"
)

// State holds the eight arbitrary-precision RSA quantities. The zero value
// is a State with every field absent.
type State struct {
	M, C    *big.Int
	E, D, N *big.Int
	Phi     *big.Int
	P, Q    *big.Int
}

// NewState returns a State with every field absent.
func NewState() *State {
	return &State{}
}

// present reports whether v denotes a known field (non-nil and strictly
// positive). This centralizes the "absent" check used throughout the
// completion engine, replacing the sentinel-zero comparisons of the
// original C++ source with a helper over the typed, optional *big.Int
// fields (spec.md §9).
func present(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}

// field returns a pointer to the State field addressed by tag, or nil for
// an unrecognized tag. The 's' tag is not addressable here; SetString
// rewrites it to 'm' before calling field.
func (s *State) field(tag byte) **big.Int {
	switch tag {
	case 'm':
		return &s.M
	case 'c':
		return &s.C
	case 'e':
		return &s.E
	case 'd':
		return &s.D
	case 'n':
		return &s.N
	case 't':
		return &s.Phi
	case 'p':
		return &s.P
	case 'q':
		return &s.Q
	default:
		return nil
	}
}

// Set validates value > 0 and, if so, stores it into the field addressed by
// tag. Unknown tags and non-positive values are no-ops. Reports whether the
// value was stored.
func (s *State) Set(tag byte, value *big.Int) bool {
	if value == nil || value.Sign() <= 0 {
		return false
	}
	f := s.field(tag)
	if f == nil {
		return false
	}
	*f = new(big.Int).Set(value)
	return true
}

// SetString is equivalent to Set(tag, StringToNum(text)), except that the
// 's' tag is rewritten to 'm' first, treating the supplied text as a
// plaintext to be encoded.
func (s *State) SetString(tag byte, text string) bool {
	if tag == 's' {
		tag = 'm'
	}
	return s.Set(tag, StringToNum(text))
}

// Encrypt computes c = m^e mod n. Precondition: e, n, m all present.
// Returns false and leaves the state unchanged if the precondition fails.
func (s *State) Encrypt() bool {
	if !present(s.E) || !present(s.N) || !present(s.M) {
		return false
	}
	s.C = ModPow(s.M, s.E, s.N)
	return true
}

// Decrypt computes m = c^d mod n. Precondition: d, n, c all present.
// Returns false and leaves the state unchanged if the precondition fails.
func (s *State) Decrypt() bool {
	if !present(s.D) || !present(s.N) || !present(s.C) {
		return false
	}
	s.M = ModPow(s.C, s.D, s.N)
	return true
}

// Print emits one line "<tag>: <value>" per character of tags, in order, to
// w. For m,c,e,d,n,p,q the value is the field's decimal representation; for
// t it is the current totient; for s it is NumToString(m). Absent fields
// print as "0" (mirroring mpz_class's default-constructed zero value).
func (s *State) Print(tags string, w io.Writer) {
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		switch tag {
		case 'm', 'c', 'e', 'd', 'n', 'p', 'q':
			fmt.Fprintf(w, "%c: %s\n", tag, decimalOrZero(*s.field(tag)))
		case 't':
			fmt.Fprintf(w, "t: %s\n", decimalOrZero(s.Phi))
		case 's':
			fmt.Fprintf(w, "s: %s\n", NumToString(zeroIfAbsent(s.M)))
		default:
			// unrecognized tag, silently skipped
		}
	}
}

func decimalOrZero(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func zeroIfAbsent(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}
