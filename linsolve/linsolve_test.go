package linsolve

import (
	"math/big"
	"testing"

	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/stretchr/testify/require"
)

func bi(x int64) *big.Int { return big.NewInt(x) }

func TestSolveRecoversKnownSolution(t *testing.T) {
	p := big.NewInt(97)
	A := [][]*big.Int{
		{bi(2), bi(1), bi(1)},
		{bi(1), bi(3), bi(2)},
		{bi(1), bi(0), bi(5)},
	}
	x := []*big.Int{bi(3), bi(11), bi(23)}

	// b = A*x mod p
	b := make([]*big.Int, 3)
	for i := range b {
		s := new(big.Int)
		for j := range x {
			s.Add(s, new(big.Int).Mul(A[i][j], x[j]))
		}
		b[i] = new(big.Int).Mod(s, p)
	}

	got, err := Solve(A, b, p)
	require.NoError(t, err)
	for i := range x {
		require.Equal(t, 0, got[i].Cmp(new(big.Int).Mod(x[i], p)), "component %d", i)
	}
}

func TestSolveSingularMatrix(t *testing.T) {
	p := big.NewInt(97)
	A := [][]*big.Int{
		{bi(1), bi(2)},
		{bi(2), bi(4)},
	}
	b := []*big.Int{bi(1), bi(2)}
	_, err := Solve(A, b, p)
	require.ErrorIs(t, err, cycerr.ErrSingular)
}

func TestSolveRejectsMalformedInput(t *testing.T) {
	p := big.NewInt(97)
	_, err := Solve([][]*big.Int{{bi(1), bi(2)}}, []*big.Int{bi(1)}, p)
	require.ErrorIs(t, err, cycerr.ErrInvalidParameter)

	_, err = Solve([][]*big.Int{{bi(1)}}, []*big.Int{bi(1), bi(2)}, p)
	require.ErrorIs(t, err, cycerr.ErrInvalidParameter)
}
