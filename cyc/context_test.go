package cyc

import (
	"testing"

	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/stretchr/testify/require"
)

func TestNewContextRejectsUnsupportedN(t *testing.T) {
	for _, n := range []int{2, 4, 9, 15, 23, 97} {
		_, err := NewContext(n)
		require.ErrorIs(t, err, cycerr.ErrInvalidParameter)
	}
}

func TestNewContextBuildsConsistentTables(t *testing.T) {
	for _, n := range []int{3, 5, 7, 11, 13, 17, 19} {
		ctx, err := NewContext(n)
		require.NoError(t, err)
		require.Equal(t, n, ctx.N)
		require.Equal(t, n-1, ctx.N1)

		// GPow wraps with period n-1: g^(n-1) == g^0 == 1.
		require.Equal(t, 1, ctx.GPow(ctx.N1))

		// Log/GPow are inverse on [1,n); this also shows g is a primitive
		// root, since its powers reach every residue in [1,n).
		for a := 1; a < n; a++ {
			require.Equal(t, a, ctx.GPow(ctx.Log(a)))
		}

		// Conjugation permutations are bijections of Z/nZ fixing 0.
		for i := 0; i < ctx.N1; i++ {
			perm := ctx.CjindAt(i)
			require.Len(t, perm, n)
			require.Equal(t, 0, perm[0])
			seen := make(map[int]bool)
			for _, v := range perm {
				require.False(t, seen[v])
				seen[v] = true
			}
		}
	}
}

func TestOrdConventionForZero(t *testing.T) {
	ctx, err := NewContext(7)
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Ord(0))
}
