package rsa

// kernel.go implements the number-theory primitives the RSA state and the
// parameter-completion engine build on: probable-prime generation, modular
// inverse via extended Euclid, modular exponentiation by squaring,
// continued-fraction expansion and convergent evaluation, and the ASCII
// codec used for message encoding.
//
// Grounded on original_source/src/rsafuncs.cpp (genPrime, modMultInv,
// modExp, stringToNum, numToString, continuedFrac, getConvergent), with the
// continued-fraction expansion rewritten iteratively per the design note in
// spec.md §9.

import (
	"errors"
	"math/big"

	"rsatool/internal/randsrc"
)

var (
	errBadDigitCount = errors.New("rsa: digit count must be positive")
)

// GenPrime builds a decimal string of exactly digitCount digits (leading
// digit uniform in 1..9, remaining digits uniform in 0..9), interprets it as
// an integer, and returns the next probable prime strictly greater than it.
func GenPrime(src randsrc.Source, digitCount int) (*big.Int, error) {
	if digitCount <= 0 {
		return nil, errBadDigitCount
	}

	digits := make([]byte, digitCount)
	lead, err := src.NonzeroDigit()
	if err != nil {
		return nil, err
	}
	digits[0] = byte('0' + lead)
	for i := 1; i < digitCount; i++ {
		d, err := src.Digit()
		if err != nil {
			return nil, err
		}
		digits[i] = byte('0' + d)
	}

	n := new(big.Int)
	n.SetString(string(digits), 10)

	return nextProbablePrime(n), nil
}

// nextProbablePrime returns the least probable prime strictly greater than n.
// math/big has no built-in "next prime" operator (unlike GMP's
// mpz_nextprime, which the original tool relied on), so the kernel steps
// forward by hand, one integer at a time; ProbablyPrime's small-factor
// trial division rejects even candidates immediately, so this stays simple
// without a separate odd/even fast path.
func nextProbablePrime(n *big.Int) *big.Int {
	one := big.NewInt(1)

	cand := new(big.Int).Add(n, one)
	for !cand.ProbablyPrime(20) {
		cand.Add(cand, one)
	}
	return cand
}

// ModInverse returns the least non-negative x such that a*x ≡ 1 (mod m),
// via the extended Euclidean algorithm maintaining the Bézout coefficient
// of a. Behavior when gcd(a, m) != 1 is unspecified; callers must guarantee
// coprimality.
func ModInverse(a, m *big.Int) *big.Int {
	rOld, r := new(big.Int).Set(a), new(big.Int).Set(m)
	sOld, s := big.NewInt(1), big.NewInt(0)

	zero := big.NewInt(0)
	for r.Cmp(zero) != 0 {
		q := new(big.Int).Div(rOld, r)

		rNew := new(big.Int).Sub(rOld, new(big.Int).Mul(q, r))
		rOld, r = r, rNew

		sNew := new(big.Int).Sub(sOld, new(big.Int).Mul(q, s))
		sOld, s = s, sNew
	}

	x := sOld
	for x.Sign() < 0 {
		x.Add(x, m)
	}
	return x
}

// ModPow computes base^exp mod mod via right-to-left square-and-multiply on
// the binary expansion of exp.
func ModPow(base, exp, mod *big.Int) *big.Int {
	if mod.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(0)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, mod)
	e := new(big.Int).Set(exp)
	zero := big.NewInt(0)

	for e.Cmp(zero) > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, mod)
		}
		b.Mul(b, b)
		b.Mod(b, mod)
		e.Rsh(e, 1)
	}
	return result
}

// ContinuedFraction produces the simple continued-fraction expansion of
// num/den as an ordered sequence of non-negative integers, terminating when
// the remainder becomes zero. Expressed iteratively rather than the
// original's recursion (spec.md §9).
func ContinuedFraction(num, den *big.Int) []*big.Int {
	var seq []*big.Int

	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	zero := big.NewInt(0)

	for {
		rem := new(big.Int).Mod(n, d)
		intPart := new(big.Int).Div(new(big.Int).Sub(n, rem), d)
		seq = append(seq, intPart)

		if rem.Cmp(zero) == 0 {
			break
		}
		n, d = d, rem
	}
	return seq
}

// Convergent evaluates the index-th convergent of the continued fraction cf
// as a rational num/den, using the standard recurrence
// h_k = a_k*h_{k-1} + h_{k-2}, k_k = a_k*k_{k-1} + k_{k-2}.
func Convergent(cf []*big.Int, index int) (num, den *big.Int) {
	hPrev2, hPrev1 := big.NewInt(0), big.NewInt(1)
	kPrev2, kPrev1 := big.NewInt(1), big.NewInt(0)

	for i := 0; i <= index; i++ {
		h := new(big.Int).Add(new(big.Int).Mul(cf[i], hPrev1), hPrev2)
		k := new(big.Int).Add(new(big.Int).Mul(cf[i], kPrev1), kPrev2)

		hPrev2, hPrev1 = hPrev1, h
		kPrev2, kPrev1 = kPrev1, k
	}

	return hPrev1, kPrev1
}

// StringToNum interprets s as a base-256 big-endian integer: each byte is
// its 8-bit value, most significant first. The empty string maps to 0.
func StringToNum(s string) *big.Int {
	return new(big.Int).SetBytes([]byte(s))
}

// NumToString is the inverse of StringToNum: n = 0 maps to the empty
// string, otherwise n's big-endian byte representation is interpreted as
// ASCII/Latin-1 text.
func NumToString(n *big.Int) string {
	return string(n.Bytes())
}
