package lll

import (
	"math/big"
	"testing"

	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/stretchr/testify/require"
)

func row(xs ...int64) []*big.Int {
	v := make([]*big.Int, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}
	return v
}

func normSq(v []*big.Int) *big.Int {
	s := new(big.Int)
	for _, x := range v {
		t := new(big.Int).Mul(x, x)
		s.Add(s, t)
	}
	return s
}

func TestReduceShortensAKnownBadBasis(t *testing.T) {
	rows := [][]*big.Int{
		row(1, 1, 1),
		row(-1, 0, 2),
		row(3, 5, 6),
	}
	reduced, err := Reduce(rows)
	require.NoError(t, err)
	require.Len(t, reduced, 3)

	// The reduced basis should never be "worse" than the input in total
	// squared length.
	before, after := new(big.Int), new(big.Int)
	for _, r := range rows {
		before.Add(before, normSq(r))
	}
	for _, r := range reduced {
		after.Add(after, normSq(r))
	}
	require.LessOrEqual(t, after.Cmp(before), 0)
}

func TestReduceSingularOnDependentRows(t *testing.T) {
	rows := [][]*big.Int{
		row(1, 2, 3),
		row(2, 4, 6),
	}
	_, err := Reduce(rows)
	require.ErrorIs(t, err, cycerr.ErrSingular)
}

func TestReduceRejectsTallInput(t *testing.T) {
	rows := [][]*big.Int{
		row(1, 0),
		row(0, 1),
		row(1, 1),
	}
	_, err := Reduce(rows)
	require.ErrorIs(t, err, cycerr.ErrInvalidParameter)
}
