package modpoly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bi(x int64) *big.Int { return big.NewInt(x) }

func TestQuoRemRoundTrips(t *testing.T) {
	p := big.NewInt(97)
	f := New([]*big.Int{bi(1), bi(2), bi(3), bi(4)}, p) // 1+2x+3x^2+4x^3
	g := New([]*big.Int{bi(5), bi(1)}, p)                // 5+x

	q, r, err := f.QuoRem(g, p)
	require.NoError(t, err)

	// f == q*g + r (mod p)
	recon := q.Mul(g, p).Add(r, p)
	diff := f.Sub(recon, p)
	require.Equal(t, 0, len(diff))
}

func TestRootsOfKnownLinearProduct(t *testing.T) {
	p := big.NewInt(101)
	// (x-3)(x-7)(x-11) mod p
	roots := []int64{3, 7, 11}
	f := New([]*big.Int{bi(1)}, p)
	for _, r := range roots {
		factor := New([]*big.Int{bi(-r), bi(1)}, p)
		f = f.Mul(factor, p)
	}

	got, err := Roots(f, p)
	require.NoError(t, err)
	require.Len(t, got, 3)

	want := map[string]bool{}
	for _, r := range roots {
		want[mod(bi(r), p).String()] = true
	}
	for _, r := range got {
		require.True(t, want[r.String()], "unexpected root %s", r)
	}
}

func TestRootsModTwo(t *testing.T) {
	p := big.NewInt(2)
	f := New([]*big.Int{bi(0), bi(1)}, p) // x, root 0
	got, err := Roots(f, p)
	require.NoError(t, err)
	require.Equal(t, []*big.Int{bi(0)}, got)
}

func TestGCD(t *testing.T) {
	p := big.NewInt(97)
	f := New([]*big.Int{bi(-6), bi(11), bi(-6), bi(1)}, p) // (x-1)(x-2)(x-3)
	g := New([]*big.Int{bi(-2), bi(3), bi(-1)}, p)          // -(x-1)(x-2) = -x^2+3x-2

	gcd, err := GCD(f, g, p)
	require.NoError(t, err)
	require.Equal(t, 2, gcd.Degree())
}
