// Package period implements Gaussian periods of Z[omega], the
// intermediate sub-rings Kummer's method factors through: for f dividing
// n-1, the e=(n-1)/f periods eta_0,...,eta_{e-1} generate a degree-e
// sub-ring of Z[omega] whose minimal polynomial splits completely mod any
// prime p of residue order f (Edwards S4.5).
//
// The period-to-period multiplication structure constants and the
// minimal-polynomial Horner expansion encode a specific piece of
// Kummer's theory rather than a generic algorithm this module would
// otherwise reinvent.
package period

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/cyc"
	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/go-cyclotomic/cycfactor/internal/xmath"
)

// Layer holds the tables for periods of length F = f over a fixed
// cyc.Context: E = (n-1)/f periods, each the sum of f conjugate roots of
// unity, the index table mapping (period, conjugate) to a cyc exponent,
// and the structure-constant table W driving Elem.Mul.
type Layer struct {
	ctx *cyc.Context

	F int // period length
	E int // number of periods, E*F == ctx.N1

	// Index[i][j] is the cyc exponent of the j-th root of unity summed
	// into period i, j in [0,F).
	Index [][]int

	// W[i][a][b]: eta_a*eta_i = sum_b W[i][a][b]*eta_b.
	W [][][]int

	// MPoly holds the monic minimal polynomial of eta_0 (and, by
	// symmetry, every eta_i) in ascending-degree order; MPoly[E] == 1.
	MPoly []*big.Int
}

// NewLayer builds the period layer of length f over ctx. f must divide
// ctx.N1.
func NewLayer(ctx *cyc.Context, f int) (*Layer, error) {
	n1 := ctx.N1
	if f <= 0 || n1%f != 0 {
		return nil, fmt.Errorf("%w: period length %d does not divide n-1=%d", cycerr.ErrInvalidParameter, f, n1)
	}
	e := n1 / f

	l := &Layer{ctx: ctx, F: f, E: e}

	l.Index = make([][]int, e)
	for i := 0; i < e; i++ {
		l.Index[i] = make([]int, f)
		for j := 0; j < f; j++ {
			l.Index[i][j] = ctx.GPow(i + j*e)
		}
	}

	w0 := make([][]int, e)
	for i := range w0 {
		w0[i] = make([]int, e)
	}
	for i := 0; i < e; i++ {
		for j := 0; j < f; j++ {
			k := xmath.Mod(1+l.Index[i][j], ctx.N)
			if k != 0 {
				w0[i][xmath.Mod(ctx.Log(k), e)]++
			} else {
				for b := 0; b < e; b++ {
					w0[i][b] -= f
				}
			}
		}
	}

	l.W = make([][][]int, e)
	for i := 0; i < e; i++ {
		l.W[i] = make([][]int, e)
		for a := 0; a < e; a++ {
			l.W[i][a] = make([]int, e)
			for b := 0; b < e; b++ {
				l.W[i][a][b] = w0[xmath.Mod(a-i, e)][xmath.Mod(b-i, e)]
			}
		}
	}

	l.MPoly = l.computeMPoly()

	return l, nil
}

// computeMPoly expands (x-eta_0)(x-eta_1)...(x-eta_{e-1}) by repeatedly
// conjugating eta_0 and folding it into a running list of elementary
// factors, following Period.py's init loop exactly: after k conjugates
// have been folded in, u[j] holds the degree-(k-j) elementary symmetric
// combination of the negated conjugates (the x^j coefficient of the
// partial product), read downward so that u[j-1] is always last round's
// value when u[j] consumes it.
func (l *Layer) computeMPoly() []*big.Int {
	e := l.E
	u := make([]*Elem, 0, e)
	y := l.Basis(0).Neg()

	for i := 0; i < e; i++ {
		u = append(u, y)
		for j := i; j >= 0; j-- {
			if j < i {
				u[j] = u[j].Mul(y)
			}
			if j > 0 {
				u[j] = u[j].Add(u[j-1])
			}
		}
		y = y.Conj(1)
	}

	coeffs := []*big.Int{big.NewInt(1)}
	for i := e - 1; i >= 0; i-- {
		c := u[i].ToInt()
		shifted := make([]*big.Int, len(coeffs)+1)
		shifted[0] = c
		copy(shifted[1:], coeffs)
		coeffs = shifted
	}
	return coeffs
}
