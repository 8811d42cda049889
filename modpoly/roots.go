package modpoly

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/bigutil"
	"github.com/go-cyclotomic/cycfactor/cycerr"
)

// Roots returns every root of f mod p, assuming f splits completely into
// linear factors over Z/pZ -- true of every minimal polynomial this
// module ever builds, since primefactor.Factor only calls Roots on
// the minimal polynomial of a period at an unramified prime p, which
// splits completely by construction (Edwards S4.6). p must be prime.
func Roots(f Poly, p *big.Int) ([]*big.Int, error) {
	if len(f) == 0 {
		return nil, fmt.Errorf("%w: modpoly.Roots of the zero polynomial", cycerr.ErrInvalidParameter)
	}
	if p.Cmp(big.NewInt(2)) == 0 {
		return rootsBrute(f, p), nil
	}

	lead := f[len(f)-1]
	leadInv, err := bigutil.InvMod(lead, p)
	if err != nil {
		return nil, fmt.Errorf("modpoly.Roots: %w", err)
	}
	monic := make(Poly, len(f))
	for i, c := range f {
		monic[i] = mod(new(big.Int).Mul(c, leadInv), p)
	}
	monic = trim(monic)

	linear, err := distinctLinearFactors(monic, p)
	if err != nil {
		return nil, err
	}

	var roots []*big.Int
	var split func(g Poly) error
	split = func(g Poly) error {
		if g.Degree() <= 0 {
			return nil
		}
		if g.Degree() == 1 {
			inv, err := bigutil.InvMod(g[1], p)
			if err != nil {
				return err
			}
			root := mod(new(big.Int).Neg(new(big.Int).Mul(g[0], inv)), p)
			roots = append(roots, root)
			return nil
		}
		h, err := splitFactor(g, p)
		if err != nil {
			return err
		}
		if h == nil {
			return fmt.Errorf("%w: modpoly: could not split a degree-%d factor mod %s", cycerr.ErrSearchExhausted, g.Degree(), p)
		}
		other, _, err := g.QuoRem(h, p)
		if err != nil {
			return err
		}
		if err := split(h); err != nil {
			return err
		}
		return split(other)
	}

	if err := split(linear); err != nil {
		return nil, err
	}
	return roots, nil
}

// distinctLinearFactors returns gcd(f, x^p-x) mod p, the product of f's
// distinct degree-1 factors.
func distinctLinearFactors(f Poly, p *big.Int) (Poly, error) {
	x := Poly{new(big.Int), big.NewInt(1)}
	xp, err := PowMod(x, p, f, p)
	if err != nil {
		return nil, err
	}
	xpMinusX := xp.Sub(x, p)
	return GCD(f, xpMinusX, p)
}

// splitFactor runs one round of Cantor-Zassenhaus degree-1 equal-degree
// splitting on g (which is known to split completely into linear
// factors), returning a proper factor or nil if 200 random trials failed
// to find one (astronomically unlikely for p odd).
func splitFactor(g Poly, p *big.Int) (Poly, error) {
	half := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	one := New([]*big.Int{big.NewInt(1)}, p)

	for try := 0; try < 200; try++ {
		a, err := bigutil.RandInt(rand.Reader, p)
		if err != nil {
			return nil, err
		}
		pw, err := PowMod(monicX(a, p), half, g, p)
		if err != nil {
			return nil, err
		}
		cand := pw.Sub(one, p)
		h, err := GCD(g, cand, p)
		if err != nil {
			return nil, err
		}
		if h.Degree() > 0 && h.Degree() < g.Degree() {
			return h, nil
		}
	}
	return nil, nil
}

func rootsBrute(f Poly, p *big.Int) []*big.Int {
	var roots []*big.Int
	for _, x := range []int64{0, 1} {
		if evaluate(f, big.NewInt(x), p).Sign() == 0 {
			roots = append(roots, big.NewInt(x))
		}
	}
	return roots
}

func evaluate(f Poly, x, p *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(f) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, f[i])
		result = mod(result, p)
	}
	return result
}
