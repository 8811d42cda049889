package bigutil

import (
	"math/big"
	"testing"

	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/stretchr/testify/require"
)

func TestInvModRoundTrips(t *testing.T) {
	p := big.NewInt(1000000007)
	for _, a := range []int64{1, 2, 3, 12345, 999999999} {
		av := big.NewInt(a)
		inv, err := InvMod(av, p)
		require.NoError(t, err)
		prod := new(big.Int).Mod(new(big.Int).Mul(av, inv), p)
		require.Equal(t, 0, prod.Cmp(big.NewInt(1)))
	}
}

func TestInvModSingularOnNonInvertible(t *testing.T) {
	_, err := InvMod(big.NewInt(6), big.NewInt(9))
	require.ErrorIs(t, err, cycerr.ErrSingular)
}
