package period

import (
	"math/big"

	"github.com/go-cyclotomic/cycfactor/cyc"
	"github.com/go-cyclotomic/cycfactor/internal/xmath"
)

// Elem is a cyclotomic period, sum_{j=0}^{e-1} c_j*eta_j, over a fixed
// Layer. Like cyc.Int, it is an immutable value object.
type Elem struct {
	layer *Layer
	c     []*big.Int
}

// NewElem builds an Elem from coefficients (ascending period index),
// right-padded with zero to length e.
func (l *Layer) NewElem(coeffs ...int64) *Elem {
	v := make([]*big.Int, l.E)
	for i := range v {
		if i < len(coeffs) {
			v[i] = big.NewInt(coeffs[i])
		} else {
			v[i] = new(big.Int)
		}
	}
	return &Elem{layer: l, c: v}
}

// FromBigInt builds an Elem from an arbitrary-precision coefficient
// slice, right-padded with zero to length e.
func (l *Layer) FromBigInt(coeffs []*big.Int) *Elem {
	v := make([]*big.Int, l.E)
	for i := range v {
		if i < len(coeffs) {
			v[i] = new(big.Int).Set(coeffs[i])
		} else {
			v[i] = new(big.Int)
		}
	}
	return &Elem{layer: l, c: v}
}

// Basis returns eta_i, the i-th period generator.
func (l *Layer) Basis(i int) *Elem {
	v := make([]*big.Int, l.E)
	for k := range v {
		v[k] = new(big.Int)
	}
	v[xmath.Mod(i, l.E)] = big.NewInt(1)
	return &Elem{layer: l, c: v}
}

func (l *Layer) wrap(v []*big.Int) *Elem { return &Elem{layer: l, c: v} }

// Coeffs returns a copy of a's coefficient vector.
func (a *Elem) Coeffs() []*big.Int {
	out := make([]*big.Int, len(a.c))
	for i, x := range a.c {
		out[i] = new(big.Int).Set(x)
	}
	return out
}

// Neg returns -a.
func (a *Elem) Neg() *Elem {
	v := make([]*big.Int, a.layer.E)
	for i, x := range a.c {
		v[i] = new(big.Int).Neg(x)
	}
	return a.layer.wrap(v)
}

// Add returns a+b.
func (a *Elem) Add(b *Elem) *Elem {
	v := make([]*big.Int, a.layer.E)
	for i := range v {
		v[i] = new(big.Int).Add(a.c[i], b.c[i])
	}
	return a.layer.wrap(v)
}

// Sub returns a-b.
func (a *Elem) Sub(b *Elem) *Elem {
	v := make([]*big.Int, a.layer.E)
	for i := range v {
		v[i] = new(big.Int).Sub(a.c[i], b.c[i])
	}
	return a.layer.wrap(v)
}

// Mul returns a*b, contracted against the layer's structure-constant
// table W: (a*b)[k] = sum_i sum_j a.c[j] * b.c[i] * W[i][j][k].
func (a *Elem) Mul(b *Elem) *Elem {
	e := a.layer.E
	W := a.layer.W
	v := make([]*big.Int, e)
	for idx := range v {
		v[idx] = new(big.Int)
	}
	t := new(big.Int)
	for i, bi := range b.c {
		if bi.Sign() == 0 {
			continue
		}
		for j, aj := range a.c {
			if aj.Sign() == 0 {
				continue
			}
			prod := new(big.Int).Mul(aj, bi)
			wij := W[i][j]
			for kIdx, w := range wij {
				if w == 0 {
					continue
				}
				t.Mul(prod, big.NewInt(int64(w)))
				v[kIdx].Add(v[kIdx], t)
			}
		}
	}
	return a.layer.wrap(v)
}

// Conj returns the image of a under eta_j -> eta_{j-i}: coefficient k of
// the result is c_{k+i}, a cyclic shift of the coefficients by -i.
func (a *Elem) Conj(i int) *Elem {
	e := a.layer.E
	v := make([]*big.Int, e)
	for k := range v {
		v[k] = new(big.Int).Set(a.c[xmath.Mod(k+i, e)])
	}
	return a.layer.wrap(v)
}

// Norm returns the product of all e conjugates of a (including a itself),
// a rational integer.
func (a *Elem) Norm() *big.Int {
	prod := a
	for i := 1; i < a.layer.E; i++ {
		prod = prod.Mul(a.Conj(i))
	}
	return prod.ToInt()
}

// ToInt returns -c_0, the value of a when it is rational.
func (a *Elem) ToInt() *big.Int {
	return new(big.Int).Neg(a.c[0])
}

// IsRational reports whether a is rational (all coefficients equal), and
// if so returns its integer value.
func (a *Elem) IsRational() (*big.Int, bool) {
	for i := 1; i < len(a.c); i++ {
		if a.c[i].Cmp(a.c[0]) != 0 {
			return nil, false
		}
	}
	return a.ToInt(), true
}

// ToCYC embeds a back into the full cyclotomic ring as a cyc.Int: every
// conjugate root of unity summed into period i gets coefficient c_i, and
// the result is normalized.
func (a *Elem) ToCYC(ctx *cyc.Context) *cyc.Int {
	v := make([]*big.Int, ctx.N)
	for i := range v {
		v[i] = new(big.Int)
	}
	for i, row := range a.layer.Index {
		for _, exp := range row {
			v[exp] = new(big.Int).Set(a.c[i])
		}
	}
	return ctx.FromBigInt(v).Normalize()
}

// Layer returns the Layer a was built against.
func (a *Elem) Layer() *Layer { return a.layer }
