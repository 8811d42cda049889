// Package modpoly implements dense polynomial arithmetic over Z/pZ and
// extraction of linear (degree-1) factors: primefactor.Factor needs every
// root of a period's minimal polynomial mod p, one of which seeds the
// congruence solve that recovers the period's coordinates.
//
// Representation and the long-division/gcd style follow a dense,
// ascending-coefficient slice idiom, ported from uint64-mod-q
// coefficients to *big.Int-mod-p ones since p here ranges up to
// cryptographic size.
package modpoly

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/bigutil"
	"github.com/go-cyclotomic/cycfactor/cycerr"
)

// Poly is a dense polynomial over Z/pZ, coefficients in ascending degree
// order (Poly[0] is the constant term). A well-formed Poly, as returned
// by New and every arithmetic operation here, never has a trailing zero
// leading coefficient except for the zero polynomial, which is the empty
// slice.
type Poly []*big.Int

// New builds a Poly from coeffs (ascending degree), reducing every
// coefficient mod p and trimming trailing zeros.
func New(coeffs []*big.Int, p *big.Int) Poly {
	v := make(Poly, len(coeffs))
	for i, c := range coeffs {
		v[i] = mod(c, p)
	}
	return trim(v)
}

func trim(v Poly) Poly {
	i := len(v) - 1
	for i >= 0 && v[i].Sign() == 0 {
		i--
	}
	return v[:i+1]
}

// Degree returns the degree of f, or -1 for the zero polynomial.
func (f Poly) Degree() int { return len(f) - 1 }

func mod(x, p *big.Int) *big.Int {
	return new(big.Int).Mod(x, p)
}

// Add returns f+g mod p.
func (f Poly) Add(g Poly, p *big.Int) Poly {
	n := len(f)
	if len(g) > n {
		n = len(g)
	}
	v := make(Poly, n)
	for i := range v {
		v[i] = new(big.Int)
		if i < len(f) {
			v[i].Add(v[i], f[i])
		}
		if i < len(g) {
			v[i].Add(v[i], g[i])
		}
		v[i] = mod(v[i], p)
	}
	return trim(v)
}

// Sub returns f-g mod p.
func (f Poly) Sub(g Poly, p *big.Int) Poly {
	n := len(f)
	if len(g) > n {
		n = len(g)
	}
	v := make(Poly, n)
	for i := range v {
		v[i] = new(big.Int)
		if i < len(f) {
			v[i].Add(v[i], f[i])
		}
		if i < len(g) {
			v[i].Sub(v[i], g[i])
		}
		v[i] = mod(v[i], p)
	}
	return trim(v)
}

// Mul returns f*g mod p (schoolbook convolution).
func (f Poly) Mul(g Poly, p *big.Int) Poly {
	if len(f) == 0 || len(g) == 0 {
		return nil
	}
	v := make(Poly, len(f)+len(g)-1)
	for i := range v {
		v[i] = new(big.Int)
	}
	t := new(big.Int)
	for i, fi := range f {
		if fi.Sign() == 0 {
			continue
		}
		for j, gj := range g {
			t.Mul(fi, gj)
			v[i+j].Add(v[i+j], t)
		}
	}
	for i := range v {
		v[i] = mod(v[i], p)
	}
	return trim(v)
}

// QuoRem divides f by g mod p, g monic or with invertible leading
// coefficient, returning (quotient, remainder).
func (f Poly) QuoRem(g Poly, p *big.Int) (q, r Poly, err error) {
	if len(g) == 0 {
		return nil, nil, fmt.Errorf("%w: division by zero polynomial", cycerr.ErrInvalidParameter)
	}
	lead := g[len(g)-1]
	leadInv, err := bigutil.InvMod(lead, p)
	if err != nil {
		return nil, nil, fmt.Errorf("modpoly.QuoRem: %w", err)
	}

	rem := make(Poly, len(f))
	for i, c := range f {
		rem[i] = new(big.Int).Set(c)
	}
	rem = trim(rem)

	m := len(g) - 1
	qlen := len(rem) - m
	if qlen < 1 {
		qlen = 1
	}
	qc := make([]*big.Int, qlen)
	for i := range qc {
		qc[i] = new(big.Int)
	}

	for rem.Degree() >= m {
		shift := rem.Degree() - m
		c := new(big.Int).Mul(rem[rem.Degree()], leadInv)
		c = mod(c, p)
		if shift < len(qc) {
			qc[shift].Set(c)
		}

		t := new(big.Int)
		for i, gi := range g {
			t.Mul(c, gi)
			rem[shift+i] = mod(new(big.Int).Sub(rem[shift+i], t), p)
		}
		rem = trim(rem)
	}

	return trim(Poly(qc)), rem, nil
}

// PowMod computes base^e mod (f,p): repeated squaring with reduction by f
// after every multiplication.
func PowMod(base Poly, e *big.Int, f Poly, p *big.Int) (Poly, error) {
	result := New([]*big.Int{big.NewInt(1)}, p)
	b := base
	var err error
	_, b, err = b.QuoRem(f, p)
	if err != nil {
		return nil, err
	}

	exp := new(big.Int).Set(e)
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result = result.Mul(b, p)
			_, result, err = result.QuoRem(f, p)
			if err != nil {
				return nil, err
			}
		}
		b = b.Mul(b, p)
		_, b, err = b.QuoRem(f, p)
		if err != nil {
			return nil, err
		}
		exp.Rsh(exp, 1)
	}
	return result, nil
}

// GCD returns gcd(f,g) mod p, monic (leading coefficient 1) unless zero.
func GCD(f, g Poly, p *big.Int) (Poly, error) {
	a, b := f, g
	for len(b) != 0 {
		_, r, err := a.QuoRem(b, p)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	if len(a) == 0 {
		return a, nil
	}
	inv, err := bigutil.InvMod(a[len(a)-1], p)
	if err != nil {
		return nil, err
	}
	out := make(Poly, len(a))
	for i, c := range a {
		out[i] = mod(new(big.Int).Mul(c, inv), p)
	}
	return out, nil
}

// monicX returns the polynomial x+a mod p.
func monicX(a *big.Int, p *big.Int) Poly {
	return New([]*big.Int{new(big.Int).Set(a), big.NewInt(1)}, p)
}
