package rsa

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetRejectsNonPositive(t *testing.T) {
	s := NewState()
	require.False(t, s.Set('m', big.NewInt(0)))
	require.False(t, s.Set('m', big.NewInt(-5)))
	require.False(t, s.Set('m', nil))
	require.Nil(t, s.M)
}

func TestSetUnknownTagIsNoop(t *testing.T) {
	s := NewState()
	require.False(t, s.Set('z', big.NewInt(5)))
}

func TestSetStringRewritesSToM(t *testing.T) {
	s := NewState()
	require.True(t, s.SetString('s', "AB"))
	require.Equal(t, big.NewInt(16706), s.M)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	// S1 — small round-trip: p=61, q=53, e=17.
	s := NewState()
	s.Set('p', big.NewInt(61))
	s.Set('q', big.NewInt(53))
	s.Set('e', big.NewInt(17))

	BasicRegen(s)
	require.Equal(t, big.NewInt(3233), s.N)
	require.Equal(t, big.NewInt(3120), s.Phi)
	require.Equal(t, big.NewInt(2753), s.D)

	s.Set('m', big.NewInt(65))
	require.True(t, s.Encrypt())
	require.Equal(t, big.NewInt(2790), s.C)

	fresh := NewState()
	fresh.Set('d', big.NewInt(2753))
	fresh.Set('n', big.NewInt(3233))
	fresh.Set('c', big.NewInt(2790))
	require.True(t, fresh.Decrypt())
	require.Equal(t, big.NewInt(65), fresh.M)
}

func TestEncryptInsufficientInputs(t *testing.T) {
	// S6 — mode encrypt with only m and n set (no e).
	s := NewState()
	s.Set('m', big.NewInt(65))
	s.Set('n', big.NewInt(3233))
	require.False(t, s.Encrypt())
	require.Nil(t, s.C)
}

func TestDecryptInsufficientInputs(t *testing.T) {
	s := NewState()
	s.Set('n', big.NewInt(3233))
	s.Set('c', big.NewInt(2790))
	require.False(t, s.Decrypt())
	require.Nil(t, s.M)
}

func TestPrintDefaultOutput(t *testing.T) {
	// S7 — after a decrypt, printing the "m" tag (the decrypt default
	// output) yields exactly one line "m: <decimal>".
	s := NewState()
	s.Set('d', big.NewInt(2753))
	s.Set('n', big.NewInt(3233))
	s.Set('c', big.NewInt(2790))
	require.True(t, s.Decrypt())

	var buf bytes.Buffer
	s.Print("m", &buf)
	require.Equal(t, "m: 65\n", buf.String())
}

func TestPrintStringTag(t *testing.T) {
	s := NewState()
	s.Set('m', StringToNum("AB"))

	var buf bytes.Buffer
	s.Print("s", &buf)
	require.Equal(t, "s: AB\n", buf.String())
}

func TestPrintUnknownTagSkipped(t *testing.T) {
	s := NewState()
	s.Set('m', big.NewInt(5))

	var buf bytes.Buffer
	s.Print("mz", &buf)
	require.Equal(t, "m: 5\n", buf.String())
}
