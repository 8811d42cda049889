// Package primefactor factors a rational prime p into an irreducible
// element of Z[omega], the central construction of Kummer's theory
// (Edwards S4.4-4.7).
//
// Factor proceeds through the ramified/inert special cases, a period
// minimal polynomial root search (modpoly), a linear congruence solve
// (linsolve), a shifted-lattice LLL search (lll), and a composite-norm
// descent via recursive factoring and trial division with conjugate
// rotation.
package primefactor

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/bigutil"
	"github.com/go-cyclotomic/cycfactor/cyc"
	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/go-cyclotomic/cycfactor/lll"
	"github.com/go-cyclotomic/cycfactor/modpoly"
	"github.com/go-cyclotomic/cycfactor/period"
)

// Factor returns an irreducible pi in Z[omega] with norm(pi) == p^f, for
// p a rational prime and f the order of p mod n (the residue degree). If
// f is 0, it is computed as ctx.Ord(p mod n). p == n (the ramified prime)
// and f == ctx.N1 (p inert) are handled directly; every other case walks
// Kummer's period-based construction.
func Factor(ctx *cyc.Context, p *big.Int, f int) (*cyc.Int, error) {
	nBig := big.NewInt(int64(ctx.N))
	if p.Cmp(nBig) == 0 {
		return ctx.NewInt(1, -1), nil
	}

	pModN := int(new(big.Int).Mod(p, nBig).Int64())
	if f == 0 {
		f = ctx.Ord(pModN)
	}
	if f == ctx.N1 {
		return ctx.Scalar(p), nil
	}

	layer, err := period.NewLayer(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("primefactor.Factor: %w", err)
	}

	roots, err := modpoly.Roots(modpoly.New(layer.MPoly, p), p)
	if err != nil {
		return nil, fmt.Errorf("primefactor.Factor: %w", err)
	}

	var u0 *big.Int
	var u []*big.Int
	for _, r := range roots {
		uu, serr := solveCongruence(layer, r, p)
		if serr != nil {
			continue
		}
		u0, u = r, uu
		break
	}
	if u0 == nil {
		return nil, fmt.Errorf("%w: primefactor.Factor: no root of the period polynomial solved the congruence mod %s", cycerr.ErrSearchExhausted, p)
	}

	rows, err := rootLattice(u, u0, p)
	if err != nil {
		return nil, fmt.Errorf("primefactor.Factor: %w", err)
	}
	reduced, err := lll.Reduce(rows)
	if err != nil {
		return nil, fmt.Errorf("primefactor.Factor: %w", err)
	}

	var best *period.Elem
	var bestFact *bigutil.Factorization
	var bestLargest *big.Int

	for _, row := range reduced {
		y := layer.FromBigInt(row)
		n := new(big.Int).Abs(y.Norm())
		if n.Cmp(p) == 0 {
			return y.ToCYC(ctx), nil
		}

		quot := new(big.Int).Div(n, p)
		fact, ferr := bigutil.Factorize(quot)
		if ferr != nil {
			continue
		}
		m, ok := fact.Largest()
		if !ok {
			continue
		}
		// Only a candidate whose composite quotient's largest prime
		// factor is strictly smaller than p keeps the recursive descent
		// below terminating.
		if m.Cmp(p) >= 0 {
			continue
		}
		if bestLargest == nil || m.Cmp(bestLargest) < 0 {
			best, bestFact, bestLargest = y, fact, m
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: primefactor.Factor: no LLL candidate's composite quotient had largest prime factor below %s", cycerr.ErrSearchExhausted, p)
	}

	q := best.ToCYC(ctx)
	for _, k := range bestFact.Primes() {
		kModN := int(new(big.Int).Mod(k, nBig).Int64())
		j := ctx.Ord(kModN)
		s, serr := Factor(ctx, k, j)
		if serr != nil {
			return nil, fmt.Errorf("primefactor.Factor: %w", serr)
		}
		m := bestFact.Get(k) * f
		for m > 0 {
			if t, ok := q.Div(s); ok {
				m -= j
				q = t
			} else {
				s = s.Conj(1)
			}
		}
	}
	return q, nil
}
