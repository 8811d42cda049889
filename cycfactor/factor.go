package cycfactor

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/bigutil"
	"github.com/go-cyclotomic/cycfactor/cyc"
	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/go-cyclotomic/cycfactor/primefactor"
)

// Factor decomposes a cyclotomic integer a into irreducible factors,
// returning the exponent map such that the product of factor^exponent is
// an associate of a. It peels off content and the ramified prime
// 1-omega first, then for every rational prime k dividing either the
// content or the primitive part's norm, obtains one irreducible pi above
// k via primefactor.Factor and trial-divides it (rotating through pi's
// conjugates on failure) until its contribution is exhausted.
//
// n must be <= 19: this is the boundary past which Z[omega] is not known
// to be a UFD.
func Factor(ctx *cyc.Context, a *cyc.Int) (*Factors, error) {
	F := NewFactors()
	zero := ctx.NewInt()
	if a.Equal(zero) {
		return F, nil
	}

	d, a := a.Primitive()

	normAbs := new(big.Int).Abs(a.Norm())
	G, err := bigutil.Factorize(normAbs)
	if err != nil {
		return nil, fmt.Errorf("cycfactor.Factor: %w", err)
	}

	var H *bigutil.Factorization
	if d.Cmp(big.NewInt(1)) == 0 {
		H = bigutil.NewFactorization()
	} else {
		H, err = bigutil.Factorize(d)
		if err != nil {
			return nil, fmt.Errorf("cycfactor.Factor: %w", err)
		}
	}

	nBig := big.NewInt(int64(ctx.N))
	k := G.Pop(nBig) + ctx.N1*H.Pop(nBig)
	if k != 0 {
		F.Add(ctx.NewInt(1, -1), k)
	}

	for _, kp := range H.Primes() {
		f, p, err := factorAbove(ctx, kp)
		if err != nil {
			return nil, err
		}
		hk := H.Get(kp)
		e := ctx.N1 / f
		for i := 0; i < e; i++ {
			F.Add(p, hk)
			p = p.Conj(1)
		}
		if G.Get(kp) != 0 {
			for G.Get(kp) > 0 {
				b, ok := a.Div(p)
				if ok {
					F.Add(p, 1)
					G.Add(kp, -f)
					a = b
				} else {
					p = p.Conj(1)
				}
			}
			G.Delete(kp)
		}
	}

	for _, kp := range G.Primes() {
		f, p, err := factorAbove(ctx, kp)
		if err != nil {
			return nil, err
		}
		for G.Get(kp) > 0 {
			b, ok := a.Div(p)
			if ok {
				F.Add(p, 1)
				G.Add(kp, -f)
				a = b
			} else {
				p = p.Conj(1)
			}
		}
	}

	return F, nil
}

func factorAbove(ctx *cyc.Context, k *big.Int) (int, *cyc.Int, error) {
	nBig := big.NewInt(int64(ctx.N))
	kModN := int(new(big.Int).Mod(k, nBig).Int64())
	f := ctx.Ord(kModN)
	p, err := primefactor.Factor(ctx, k, f)
	if err != nil {
		return 0, nil, fmt.Errorf("cycfactor.Factor: %w", err)
	}
	return f, p, nil
}

// GenPrime returns a random irreducible element of Z[omega] whose norm is
// p^f for a random bits-bit rational prime p of residue order f mod n (or
// any order, if f is 0). It retries up to ntry times to find a p of the
// requested order.
func GenPrime(ctx *cyc.Context, bits, f, ntry int) (*cyc.Int, error) {
	if f != 0 && ctx.N1%f != 0 {
		return nil, fmt.Errorf("%w: GenPrime: f=%d must divide n-1=%d", cycerr.ErrInvalidParameter, f, ctx.N1)
	}

	nBig := big.NewInt(int64(ctx.N))
	var p *big.Int
	var err error

	if f == 0 {
		p, err = bigutil.RandomPrime(bits)
		if err != nil {
			return nil, fmt.Errorf("cycfactor.GenPrime: %w", err)
		}
	} else {
		found := false
		for i := 0; i < ntry; i++ {
			p, err = bigutil.RandomPrime(bits)
			if err != nil {
				return nil, fmt.Errorf("cycfactor.GenPrime: %w", err)
			}
			pModN := int(new(big.Int).Mod(p, nBig).Int64())
			if ctx.Ord(pModN) == f {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: GenPrime: no order-%d prime found in %d trials", cycerr.ErrSearchExhausted, f, ntry)
		}
	}

	return primefactor.Factor(ctx, p, f)
}
