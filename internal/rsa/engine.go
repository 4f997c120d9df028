package rsa

// engine.go implements the parameter-completion engine: algebraic
// inference (Stage A, "basic regen"), Wiener's cryptanalytic attack
// (Stage B), and random fill (Stage C), orchestrated by GenKeyFrom. GenKey
// is the unconditional direct-generation shortcut.
//
// Grounded on original_source/src/rsaobj.cpp's basicRegen/wienersAttack/
// genKeyFrom/genKey, adopting the richer quadratic-solving variant of Stage
// A rule 5 as canonical (spec.md §9).

import (
	"math/big"

	"rsatool/internal/randsrc"
)

var one = big.NewInt(1)

// BasicRegen applies Stage A's algebraic inference rules in order. Each
// rule only fires if its target field is absent and its source fields are
// present; the p/q recovery rules (1-5) are mutually exclusive, matching
// the original's if/else-if chain: at most one of them fires per call.
func BasicRegen(s *State) {
	if !present(s.P) || !present(s.Q) {
		switch {
		case present(s.N) && present(s.Q):
			s.P = new(big.Int).Div(s.N, s.Q)
		case present(s.N) && present(s.P):
			s.Q = new(big.Int).Div(s.N, s.P)
		case present(s.Phi) && present(s.Q):
			s.P = new(big.Int).Add(
				new(big.Int).Div(s.Phi, new(big.Int).Sub(s.Q, one)), one)
		case present(s.Phi) && present(s.P):
			s.Q = new(big.Int).Add(
				new(big.Int).Div(s.Phi, new(big.Int).Sub(s.P, one)), one)
		case present(s.N) && present(s.Phi):
			if p, q, ok := solveFactors(s.N, s.Phi); ok {
				s.P, s.Q = p, q
			}
		}
	}

	if !present(s.N) && present(s.P) && present(s.Q) {
		s.N = new(big.Int).Mul(s.P, s.Q)
	}
	if !present(s.Phi) && present(s.P) && present(s.Q) {
		s.Phi = totient(s.P, s.Q)
	}
	if !present(s.E) && present(s.D) && present(s.Phi) {
		s.E = ModInverse(s.D, s.Phi)
	}
	if !present(s.D) && present(s.E) && present(s.Phi) {
		s.D = ModInverse(s.E, s.Phi)
	}
}

// totient computes (p-1)(q-1).
func totient(p, q *big.Int) *big.Int {
	return new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one))
}

// solveFactors recovers p, q from n and phi by solving the quadratic
// x^2 - Sx + n = 0 where S = n - phi + 1 (since p+q = S and p*q = n).
// Reports ok = false if the discriminant is not strictly positive.
func solveFactors(n, phi *big.Int) (p, q *big.Int, ok bool) {
	s := new(big.Int).Add(new(big.Int).Sub(n, phi), one)

	discriminant := new(big.Int).Sub(new(big.Int).Mul(s, s), new(big.Int).Lsh(n, 2))
	if discriminant.Sign() <= 0 {
		return nil, nil, false
	}

	sqrtD := new(big.Int).Sqrt(discriminant)
	p = new(big.Int).Div(new(big.Int).Sub(s, sqrtD), big.NewInt(2))
	q = new(big.Int).Div(new(big.Int).Add(s, sqrtD), big.NewInt(2))
	return p, q, true
}

// WienersAttack attempts Stage B: recovering p, q, phi, d from only e and n
// when d is small, by scanning convergents of the continued fraction of
// e/n. The p*q == n test is the sole acceptance gate; no divisibility guard
// is added on the integer-division step (spec.md §9). Returns true and
// commits p, q, phi, d on success; returns false and leaves the state
// unchanged on failure.
func WienersAttack(s *State) bool {
	cf := ContinuedFraction(s.E, s.N)

	for i := range cf {
		k, dGuess := Convergent(cf, i)
		if k.Sign() == 0 {
			continue
		}

		ed := new(big.Int).Mul(s.E, dGuess)
		ed.Sub(ed, one)
		phiGuess := new(big.Int).Div(ed, k)

		if p, q, ok := solveFactors(s.N, phiGuess); ok {
			if new(big.Int).Mul(p, q).Cmp(s.N) == 0 {
				s.P, s.Q, s.Phi, s.D = p, q, phiGuess, dGuess
				return true
			}
		}

		dGuess4 := new(big.Int).Mul(dGuess, dGuess)
		dGuess4.Mul(dGuess4, dGuess4)
		if dGuess4.Cmp(s.N) > 0 {
			break
		}
	}

	return false
}

// GenKeyFrom drives the three-stage completion engine: Stage A algebraic
// inference, Stage B Wiener's attack (only if e, n are known and something
// else remains absent), and Stage C random fill of whatever is still
// missing. It returns the concatenation of tags for fields that Stage C
// generated from random bits, in generation order (p, q, n, t, e, d);
// algebraic or cryptanalytic fills never produce a tag (spec.md §9).
func GenKeyFrom(src randsrc.Source, s *State, pqLen, eLen int) (string, error) {
	BasicRegen(s)

	if present(s.E) && present(s.N) &&
		(!present(s.P) || !present(s.Q) || !present(s.Phi) || !present(s.D)) {
		WienersAttack(s)
	}

	var generated []byte

	if !present(s.P) {
		p, err := GenPrime(src, pqLen)
		if err != nil {
			return "", err
		}
		s.P = p
		generated = append(generated, 'p')
	}
	if !present(s.Q) {
		q, err := GenPrime(src, pqLen)
		if err != nil {
			return "", err
		}
		for present(s.P) && q.Cmp(s.P) == 0 {
			q, err = GenPrime(src, pqLen)
			if err != nil {
				return "", err
			}
		}
		s.Q = q
		generated = append(generated, 'q')
	}
	if !present(s.N) {
		s.N = new(big.Int).Mul(s.P, s.Q)
		generated = append(generated, 'n')
	}
	if !present(s.Phi) {
		s.Phi = totient(s.P, s.Q)
		generated = append(generated, 't')
	}
	if !present(s.E) {
		e, err := GenPrime(src, eLen)
		if err != nil {
			return "", err
		}
		s.E = e
		generated = append(generated, 'e')
	}
	if !present(s.D) {
		s.D = ModInverse(s.E, s.Phi)
		generated = append(generated, 'd')
	}

	return string(generated), nil
}

// GenKey unconditionally generates a fresh key: distinct primes p, q of
// pqLen digits, n, phi, a public exponent e of eLen digits, and the
// corresponding private exponent d. It ignores any existing state.
func GenKey(src randsrc.Source, s *State, pqLen, eLen int) error {
	p, err := GenPrime(src, pqLen)
	if err != nil {
		return err
	}
	q, err := GenPrime(src, pqLen)
	if err != nil {
		return err
	}
	for q.Cmp(p) == 0 {
		if q, err = GenPrime(src, pqLen); err != nil {
			return err
		}
	}

	s.P, s.Q = p, q
	s.N = new(big.Int).Mul(p, q)
	s.Phi = totient(p, q)

	e, err := GenPrime(src, eLen)
	if err != nil {
		return err
	}
	s.E = e
	s.D = ModInverse(e, s.Phi)

	return nil
}
