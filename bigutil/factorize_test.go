package bigutil

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorizeRecoversKnownProduct(t *testing.T) {
	// 2^5 * 3^2 * 101 * 103
	n := big.NewInt(1)
	n.Mul(n, new(big.Int).Exp(big.NewInt(2), big.NewInt(5), nil))
	n.Mul(n, new(big.Int).Exp(big.NewInt(3), big.NewInt(2), nil))
	n.Mul(n, big.NewInt(101))
	n.Mul(n, big.NewInt(103))

	f, err := Factorize(n)
	require.NoError(t, err)
	require.Equal(t, 5, f.Get(big.NewInt(2)))
	require.Equal(t, 2, f.Get(big.NewInt(3)))
	require.Equal(t, 1, f.Get(big.NewInt(101)))
	require.Equal(t, 1, f.Get(big.NewInt(103)))
	require.Equal(t, 4, f.Len())

	product := big.NewInt(1)
	for _, p := range f.Primes() {
		product.Mul(product, new(big.Int).Exp(p, big.NewInt(int64(f.Get(p))), nil))
	}
	require.Equal(t, 0, product.Cmp(n))
}

func TestFactorizeLargeSemiprime(t *testing.T) {
	p, _ := new(big.Int).SetString("1000000007", 10)
	q, _ := new(big.Int).SetString("1000000009", 10)
	n := new(big.Int).Mul(p, q)

	f, err := Factorize(n)
	require.NoError(t, err)
	require.Equal(t, 1, f.Get(p))
	require.Equal(t, 1, f.Get(q))
}

func TestFactorizationLargest(t *testing.T) {
	f := NewFactorization()
	f.Add(big.NewInt(2), 3)
	f.Add(big.NewInt(97), 1)
	f.Add(big.NewInt(5), 2)
	m, ok := f.Largest()
	require.True(t, ok)
	require.Equal(t, 0, m.Cmp(big.NewInt(97)))

	f.Delete(big.NewInt(97))
	m, ok = f.Largest()
	require.True(t, ok)
	require.Equal(t, 0, m.Cmp(big.NewInt(5)))

	require.Equal(t, 3, f.Pop(big.NewInt(2)))
	require.Equal(t, 0, f.Get(big.NewInt(2)))
}
