// Package linsolve solves small square linear systems over Z/pZ by
// Gaussian elimination. primefactor.solveCongruence depends on it to
// recover a period's coordinates from a single known root mod p.
package linsolve

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/bigutil"
	"github.com/go-cyclotomic/cycfactor/cycerr"
)

// Solve solves A*x == b (mod p) for a square integer matrix A (m x m)
// and vector b (length m), returning x (length m, entries in [0,p)).
//
// Algorithm: column-by-column Gaussian elimination with partial pivoting
// on non-zero pivots mod p; a column with no non-zero pivot fails with
// cycerr.ErrSingular. Modular inversion uses bigutil.InvMod (extended
// Euclid).
func Solve(A [][]*big.Int, b []*big.Int, p *big.Int) ([]*big.Int, error) {
	m := len(A)
	if m == 0 {
		return nil, fmt.Errorf("%w: empty system", cycerr.ErrInvalidParameter)
	}
	for _, row := range A {
		if len(row) != m {
			return nil, fmt.Errorf("%w: A must be square", cycerr.ErrInvalidParameter)
		}
	}
	if len(b) != m {
		return nil, fmt.Errorf("%w: b has wrong length", cycerr.ErrInvalidParameter)
	}

	// Augmented matrix [A | b], working copy, all entries reduced mod p.
	B := make([][]*big.Int, m)
	for i := 0; i < m; i++ {
		B[i] = make([]*big.Int, m+1)
		for j := 0; j < m; j++ {
			B[i][j] = mod(A[i][j], p)
		}
		B[i][m] = mod(b[i], p)
	}

	for k := 0; k < m; k++ {
		piv := -1
		for j := k; j < m; j++ {
			if B[j][k].Sign() != 0 {
				piv = j
				break
			}
		}
		if piv == -1 {
			return nil, fmt.Errorf("%w: no non-zero pivot in column %d", cycerr.ErrSingular, k)
		}
		if piv != k {
			B[k], B[piv] = B[piv], B[k]
		}

		inv, err := bigutil.InvMod(B[k][k], p)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %v", cycerr.ErrSingular, k, err)
		}

		for j := k; j <= m; j++ {
			B[k][j] = mod(new(big.Int).Mul(B[k][j], inv), p)
		}

		for i := 0; i < m; i++ {
			if i == k {
				continue
			}
			factor := B[i][k]
			if factor.Sign() == 0 {
				continue
			}
			for j := k; j <= m; j++ {
				t := new(big.Int).Mul(factor, B[k][j])
				B[i][j] = mod(new(big.Int).Sub(B[i][j], t), p)
			}
		}
	}

	x := make([]*big.Int, m)
	for i := 0; i < m; i++ {
		x[i] = B[i][m]
	}
	return x, nil
}

func mod(x, p *big.Int) *big.Int {
	return new(big.Int).Mod(x, p)
}
