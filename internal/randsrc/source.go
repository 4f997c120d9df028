// Package randsrc provides the randomness capability used by prime
// generation and direct key generation.
//
// The original tool seeded a single process-wide generator in main() and
// called rand()/srand() implicitly from anywhere. That implicit global is
// replaced here with an explicit capability: every function that needs
// random bits takes a Source parameter instead of reaching for a package
// level generator. Production code wires CryptoSource; tests wire Seeded
// so that Wiener-attack and round-trip properties can be exercised
// deterministically.
package randsrc

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// Source is the randomness capability threaded through internal/rsa. Both
// methods return an error rather than substituting a fixed fallback value,
// matching _examples/Adoliin-cryptotimed/src/crypto/tlp.go's convention of
// propagating rand.Read/rand.Int failures rather than masking them.
type Source interface {
	// Digit returns a uniform random value in [0, 9].
	Digit() (int, error)
	// NonzeroDigit returns a uniform random value in [1, 9], used for the
	// leading digit of a generated prime candidate.
	NonzeroDigit() (int, error)
}

// CryptoSource draws from crypto/rand. It is the capability wired by
// cmd/rsatool in production.
type CryptoSource struct{}

// NewCryptoSource constructs the production randomness capability.
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

func (CryptoSource) Digit() (int, error) {
	return uniformIntn(10)
}

func (CryptoSource) NonzeroDigit() (int, error) {
	d, err := uniformIntn(9)
	if err != nil {
		return 0, err
	}
	return 1 + d, nil
}

func uniformIntn(n int) (int, error) {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Seeded is a deterministic capability backed by math/rand/v2's PCG,
// suitable only for tests. It must never be wired into the CLI driver.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded constructs a deterministic capability from an explicit seed pair.
func NewSeeded(seed1, seed2 uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s *Seeded) Digit() (int, error) {
	return s.r.IntN(10), nil
}

func (s *Seeded) NonzeroDigit() (int, error) {
	return 1 + s.r.IntN(9), nil
}
