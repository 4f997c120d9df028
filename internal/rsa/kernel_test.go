package rsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"rsatool/internal/randsrc"
)

func TestModInverse(t *testing.T) {
	// S3 — mod_inverse(17, 3120) == 2753.
	got := ModInverse(big.NewInt(17), big.NewInt(3120))
	require.Equal(t, big.NewInt(2753), got)
}

func TestModInverseInverseCorrectness(t *testing.T) {
	cases := []struct{ a, m int64 }{
		{3, 11}, {7, 40}, {17, 3120}, {65537, 104723},
	}
	for _, tc := range cases {
		a, m := big.NewInt(tc.a), big.NewInt(tc.m)
		x := ModInverse(a, m)

		require.True(t, x.Sign() > 0 && x.Cmp(m) < 0, "x out of range: %s", x)

		prod := new(big.Int).Mul(a, x)
		prod.Mod(prod, m)
		require.Equal(t, big.NewInt(1), prod)
	}
}

func TestModPow(t *testing.T) {
	// S4 — mod_pow(65, 17, 3233) == 2790; mod_pow(2790, 2753, 3233) == 65.
	require.Equal(t, big.NewInt(2790), ModPow(big.NewInt(65), big.NewInt(17), big.NewInt(3233)))
	require.Equal(t, big.NewInt(65), ModPow(big.NewInt(2790), big.NewInt(2753), big.NewInt(3233)))
}

func TestModPowEdgeCases(t *testing.T) {
	require.Equal(t, big.NewInt(1), ModPow(big.NewInt(7), big.NewInt(0), big.NewInt(13)),
		"exp = 0 must yield 1")
	require.Equal(t, big.NewInt(0), ModPow(big.NewInt(7), big.NewInt(3), big.NewInt(1)),
		"mod = 1 must yield 0")
}

func TestModPowAgainstBigExp(t *testing.T) {
	cases := []struct{ b, e, m int64 }{
		{2, 10, 1000}, {3, 0, 7}, {5, 100, 97}, {123, 456, 1009},
	}
	for _, tc := range cases {
		want := new(big.Int).Exp(big.NewInt(tc.b), big.NewInt(tc.e), big.NewInt(tc.m))
		got := ModPow(big.NewInt(tc.b), big.NewInt(tc.e), big.NewInt(tc.m))
		require.Equal(t, want, got)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	cases := []string{"", "A", "AB", "Hello, world!", "\x01\x02\xff"}
	for _, s := range cases {
		got := NumToString(StringToNum(s))
		require.Equal(t, s, got)
	}
}

func TestStringToNum(t *testing.T) {
	// S2 — string_to_num("AB") == 65*256 + 66 = 16706.
	require.Equal(t, big.NewInt(16706), StringToNum("AB"))
}

func TestNumToString(t *testing.T) {
	require.Equal(t, "AB", NumToString(big.NewInt(16706)))
}

func TestNumToStringZero(t *testing.T) {
	require.Equal(t, "", NumToString(big.NewInt(0)))
}

func TestContinuedFractionReconstruction(t *testing.T) {
	p, q := big.NewInt(355), big.NewInt(113)
	cf := ContinuedFraction(p, q)

	num, den := Convergent(cf, len(cf)-1)

	require.Equal(t, 0, num.Cmp(p), "numerator mismatch: got %s want %s", num, p)
	require.Equal(t, 0, den.Cmp(q), "denominator mismatch: got %s want %s", den, q)
}

func TestConvergentWienerTextbookCase(t *testing.T) {
	// S5 — n = 90581, e = 17993 recovers d = 5 at some convergent index.
	e, n := big.NewInt(17993), big.NewInt(90581)
	cf := ContinuedFraction(e, n)

	foundFive := false
	for i := range cf {
		_, d := Convergent(cf, i)
		if d.Cmp(big.NewInt(5)) == 0 {
			foundFive = true
			break
		}
	}
	require.True(t, foundFive, "expected a convergent with denominator 5")
}

func TestGenPrimeDigitCount(t *testing.T) {
	src := randsrc.NewSeeded(1, 2)
	p, err := GenPrime(src, 10)
	require.NoError(t, err)
	require.True(t, p.ProbablyPrime(20))
	require.GreaterOrEqual(t, len(p.String()), 10)
}

func TestGenPrimeRejectsNonPositiveDigitCount(t *testing.T) {
	src := randsrc.NewSeeded(1, 2)
	_, err := GenPrime(src, 0)
	require.Error(t, err)
}

func TestGenPrimeSmallestCase(t *testing.T) {
	src := randsrc.NewSeeded(7, 9)
	p, err := GenPrime(src, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, p.Int64(), int64(2))
}
