package primefactor

import (
	"math/big"

	"github.com/go-cyclotomic/cycfactor/bigutil"
	"github.com/go-cyclotomic/cycfactor/linsolve"
	"github.com/go-cyclotomic/cycfactor/period"
)

// solveCongruence takes a proposed root u0 of layer.MPoly mod p (so
// u0 == eta_0 mod p) and recovers u1,...,u_{e-1} with u_j == eta_j mod p,
// using the relation eta_j*eta_0 = sum_k W[0][j][k]*eta_k: substituting
// u0 for eta_0 and solving the resulting (e-1)x(e-1) linear system for
// the remaining periods.
func solveCongruence(layer *period.Layer, u0, p *big.Int) ([]*big.Int, error) {
	e := layer.E
	m := e - 1

	A := make([][]*big.Int, m)
	b := make([]*big.Int, m)
	w0 := layer.W[0]
	for i := 0; i < m; i++ {
		j := i + 1
		A[i] = make([]*big.Int, m)
		for k := 0; k < m; k++ {
			A[i][k] = big.NewInt(int64(w0[j][k+1]))
		}
		A[i][i] = new(big.Int).Sub(A[i][i], u0)
		b[i] = new(big.Int).Neg(new(big.Int).Mul(u0, big.NewInt(int64(w0[j][0]))))
	}

	return linsolve.Solve(A, b, p)
}

// rootLattice builds the (e-1) x e integer matrix whose LLL reduction
// yields the coordinate vectors of candidate generators of the prime
// ideal above p: row i is [ (p-u[i])*u0^-1 mod p, e_i ] where e_i is the
// i-th standard basis vector of size e-1.
func rootLattice(u []*big.Int, u0, p *big.Int) ([][]*big.Int, error) {
	inv0, err := bigutil.InvMod(u0, p)
	if err != nil {
		return nil, err
	}
	m := len(u)
	rows := make([][]*big.Int, m)
	for i := range rows {
		t := new(big.Int).Sub(p, u[i])
		t.Mul(t, inv0)
		t.Mod(t, p)

		row := make([]*big.Int, m+1)
		row[0] = t
		for k := 1; k <= m; k++ {
			if k-1 == i {
				row[k] = big.NewInt(1)
			} else {
				row[k] = new(big.Int)
			}
		}
		rows[i] = row
	}
	return rows, nil
}
