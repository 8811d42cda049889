package cyc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func ctx7(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(7)
	require.NoError(t, err)
	return c
}

func TestIntRingIdentities(t *testing.T) {
	c := ctx7(t)
	a := c.NewInt(1, 2, 3, 4, 5, 6)
	b := c.NewInt(6, 5, 4, 3, 2, 1)

	require.True(t, a.Add(b).Equal(b.Add(a)))
	require.True(t, a.Mul(b).Equal(b.Mul(a)))
	require.True(t, a.Sub(a).EqualInt(big.NewInt(0)))

	zero := c.NewInt()
	require.True(t, a.Add(zero).Equal(a))
	one := c.NewInt(1)
	require.True(t, a.Mul(one).Equal(a))
}

func TestSumOfRootsOfUnityIsMinusOne(t *testing.T) {
	c := ctx7(t)
	// 1+omega+...+omega^6 == 0, so omega+...+omega^6 == -1.
	a := c.NewInt(0, 1, 1, 1, 1, 1, 1)
	require.True(t, a.EqualInt(big.NewInt(-1)))
}

func TestNormIsMultiplicative(t *testing.T) {
	c := ctx7(t)
	a := c.NewInt(2, 1, 0, 0, 0, 0, 0)
	b := c.NewInt(1, 0, 1, 0, 0, 0, 0)
	na, nb := a.Norm(), b.Norm()
	nab := a.Mul(b).Norm()
	require.Equal(t, new(big.Int).Mul(na, nb), nab)
}

func TestPrimitiveAndDiv(t *testing.T) {
	c := ctx7(t)
	a := c.NewInt(2, 4, 6, 0, 0, 0, 0)
	d, prim := a.Primitive()
	require.Equal(t, big.NewInt(2), d)
	q, ok := a.Div(big.NewInt(2))
	require.True(t, ok)
	require.True(t, q.Equal(prim))

	_, ok = a.Div(big.NewInt(5))
	require.False(t, ok)
}

func TestPowMatchesRepeatedMul(t *testing.T) {
	c := ctx7(t)
	a := c.NewInt(1, 1, 0, 0, 0, 0, 0)
	got := a.Pow(5)
	want := c.NewInt(1)
	for i := 0; i < 5; i++ {
		want = want.Mul(a)
	}
	require.True(t, got.Equal(want))
	require.True(t, a.Pow(0).EqualInt(big.NewInt(1)))
	require.True(t, a.Pow(1).Equal(a))
}

func TestIsUnitAcceptsOneAndMinusOne(t *testing.T) {
	c := ctx7(t)
	one := c.NewInt(1)
	require.True(t, one.IsUnit())
	negOne := one.Neg()
	require.True(t, negOne.IsUnit())

	nonUnit := c.NewInt(2)
	require.False(t, nonUnit.IsUnit())
}

func TestIsAssoc(t *testing.T) {
	c := ctx7(t)
	a := c.NewInt(2, 1, 0, 0, 0, 0, 0)
	require.True(t, a.IsAssoc(a.MulInt(big.NewInt(-1))))
}

func TestConjIsAnAutomorphism(t *testing.T) {
	c := ctx7(t)
	a := c.NewInt(1, 2, 3, 4, 5, 6)
	b := c.NewInt(6, 1, 5, 2, 4, 3)
	for i := 0; i < c.N1; i++ {
		lhs := a.Mul(b).Conj(i)
		rhs := a.Conj(i).Mul(b.Conj(i))
		require.True(t, lhs.Equal(rhs), "conj(%d) is not a ring automorphism", i)
	}
}

func TestRandomCoefficientsStayInRange(t *testing.T) {
	c := ctx7(t)
	b := int64(5)
	lo, hi := big.NewInt(-b+1), big.NewInt(b)
	for trial := 0; trial < 50; trial++ {
		a, err := c.Random(b)
		require.NoError(t, err)
		coeffs := a.Coeffs()
		require.Equal(t, 0, coeffs[c.N1].Sign(), "last coefficient must be fixed at 0")
		for i := 0; i < c.N1; i++ {
			require.True(t, coeffs[i].Cmp(lo) >= 0 && coeffs[i].Cmp(hi) < 0,
				"coefficient %d = %s out of range [%s, %s)", i, coeffs[i], lo, hi)
		}
	}
}

func TestKeyIsGaugeInvariant(t *testing.T) {
	c := ctx7(t)
	a := c.NewInt(1, 2, 3, 4, 5, 6)
	b := c.NewInt(0, 1, 2, 3, 4, 5, -1) // a shifted by a constant: same ring element
	require.Equal(t, a.Key(), b.Key())
}
