package cycfactor

import (
	"math/big"
	"testing"

	"github.com/go-cyclotomic/cycfactor/bigutil"
	"github.com/go-cyclotomic/cycfactor/cyc"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// exponentMultiset reduces a Factors to a comparable shape: exponents keyed
// by each factor's normalized coordinate string, sorted for a stable diff.
func exponentMultiset(f *Factors) map[string]int {
	out := make(map[string]int, f.Len())
	for _, pi := range f.Factors() {
		out[pi.Key()] = f.Get(pi)
	}
	return out
}

func TestFactorZero(t *testing.T) {
	ctx, err := cyc.NewContext(7)
	require.NoError(t, err)
	F, err := Factor(ctx, ctx.NewInt())
	require.NoError(t, err)
	require.Equal(t, 0, F.Len())
}

func TestFactorRationalInteger(t *testing.T) {
	ctx, err := cyc.NewContext(7)
	require.NoError(t, err)
	a := ctx.Scalar(big.NewInt(12)) // 2^2 * 3
	F, err := Factor(ctx, a)
	require.NoError(t, err)
	require.Greater(t, F.Len(), 0)

	product := ctx.NewInt(1)
	for _, pi := range F.Factors() {
		product = product.Mul(pi.Pow(uint64(F.Get(pi))))
	}
	require.True(t, product.IsAssoc(a))
}

func TestGenPrimeRejectsNonDivisorOrder(t *testing.T) {
	ctx, err := cyc.NewContext(7)
	require.NoError(t, err)
	_, err = GenPrime(ctx, 16, 4, 100) // 4 does not divide n-1=6
	require.Error(t, err)
}

func TestFactorIgnoresSignOfAssociate(t *testing.T) {
	ctx, err := cyc.NewContext(7)
	require.NoError(t, err)
	a := ctx.Scalar(big.NewInt(12))
	negA := a.Neg()

	Fa, err := Factor(ctx, a)
	require.NoError(t, err)
	Fb, err := Factor(ctx, negA)
	require.NoError(t, err)

	if diff := cmp.Diff(exponentMultiset(Fa), exponentMultiset(Fb)); diff != "" {
		t.Errorf("factor multiset of an associate differs (-a +negA):\n%s", diff)
	}
}

func TestFactorRandomProductAssociates(t *testing.T) {
	ctx, err := cyc.NewContext(11)
	require.NoError(t, err)
	zero := ctx.NewInt()

	for trial := 0; trial < 100; trial++ {
		a, err := ctx.Random(5)
		require.NoError(t, err)
		b, err := ctx.Random(5)
		require.NoError(t, err)
		if a.Equal(zero) || b.Equal(zero) {
			continue
		}

		ab := a.Mul(b)
		F, err := Factor(ctx, ab)
		require.NoError(t, err)

		product := ctx.NewInt(1)
		for _, pi := range F.Factors() {
			product = product.Mul(pi.Pow(uint64(F.Get(pi))))
		}
		require.True(t, product.IsAssoc(ab), "trial %d: a=%s b=%s ab=%s", trial, a, b, ab)
	}
}

func TestGenPrimeProducesCorrectNorm(t *testing.T) {
	ctx, err := cyc.NewContext(7)
	require.NoError(t, err)
	pi, err := GenPrime(ctx, 12, 3, 200)
	require.NoError(t, err)
	require.NotNil(t, pi)

	// norm(pi) == p^3 for a single 12-bit prime p.
	fact, err := bigutil.Factorize(pi.Norm())
	require.NoError(t, err)
	require.Equal(t, 1, fact.Len())
	p := fact.Primes()[0]
	require.Equal(t, 12, p.BitLen())
	require.Equal(t, 3, fact.Get(p))
}
