package bigutil

import (
	"fmt"
	"math/big"
)

// Factorization is an ordered multiset of prime factors with their
// exponents, as returned by Factorize: look up / pop a given prime,
// iterate the remaining keys, decrement until a key's exponent reaches
// zero.
type Factorization struct {
	order []string
	prime map[string]*big.Int
	exp   map[string]int
}

// NewFactorization returns an empty Factorization.
func NewFactorization() *Factorization {
	return &Factorization{
		prime: make(map[string]*big.Int),
		exp:   make(map[string]int),
	}
}

func key(p *big.Int) string { return p.String() }

// Add increments the exponent recorded for prime p by e.
func (f *Factorization) Add(p *big.Int, e int) {
	k := key(p)
	if _, ok := f.prime[k]; !ok {
		f.prime[k] = new(big.Int).Set(p)
		f.order = append(f.order, k)
	}
	f.exp[k] += e
}

// Get returns the exponent recorded for prime p, or 0 if absent.
func (f *Factorization) Get(p *big.Int) int {
	return f.exp[key(p)]
}

// Delete removes prime p from the factorization entirely.
func (f *Factorization) Delete(p *big.Int) {
	k := key(p)
	if _, ok := f.prime[k]; !ok {
		return
	}
	delete(f.prime, k)
	delete(f.exp, k)
	for i, kk := range f.order {
		if kk == k {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Pop removes and returns the exponent recorded for prime p (0 if absent).
func (f *Factorization) Pop(p *big.Int) int {
	e := f.Get(p)
	f.Delete(p)
	return e
}

// Primes returns the distinct prime factors, in the order first added.
func (f *Factorization) Primes() []*big.Int {
	out := make([]*big.Int, len(f.order))
	for i, k := range f.order {
		out[i] = f.prime[k]
	}
	return out
}

// Len returns the number of distinct prime factors remaining.
func (f *Factorization) Len() int { return len(f.order) }

// Largest returns the largest prime factor recorded, and true if the
// factorization is non-empty.
func (f *Factorization) Largest() (*big.Int, bool) {
	if len(f.order) == 0 {
		return nil, false
	}
	m := f.prime[f.order[0]]
	for _, k := range f.order[1:] {
		if f.prime[k].Cmp(m) > 0 {
			m = f.prime[k]
		}
	}
	return m, true
}

var (
	one       = big.NewInt(1)
	two       = big.NewInt(2)
	smallCap  = big.NewInt(1 << 20)
	mrCertainty = 30
)

// Factorize decomposes the absolute value of n into its prime factors.
// It first strips small prime factors by trial division, then applies
// Pollard's rho algorithm to whatever composite remains, recursing on
// each non-prime factor Pollard's rho returns.
func Factorize(n *big.Int) (*Factorization, error) {
	f := NewFactorization()
	rem := new(big.Int).Abs(n)

	if rem.Sign() == 0 {
		return f, fmt.Errorf("bigutil.Factorize: cannot factor zero")
	}

	trialDivide(rem, f)

	if rem.Cmp(one) == 0 {
		return f, nil
	}

	stack := []*big.Int{rem}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if m.Cmp(one) == 0 {
			continue
		}
		if m.ProbablyPrime(mrCertainty) {
			f.Add(m, 1)
			continue
		}

		d, err := pollardRho(m)
		if err != nil {
			return nil, fmt.Errorf("bigutil.Factorize: %w", err)
		}

		stack = append(stack, d, new(big.Int).Div(m, d))
	}

	return f, nil
}

// trialDivide strips every factor of rem below smallCap, recording them
// in f and reducing rem in place.
func trialDivide(rem *big.Int, f *Factorization) {
	p := new(big.Int).Set(two)
	mod := new(big.Int)
	for p.Cmp(smallCap) < 0 && rem.Cmp(one) > 0 {
		for {
			mod.Mod(rem, p)
			if mod.Sign() != 0 {
				break
			}
			rem.Div(rem, p)
			f.Add(p, 1)
		}
		p = nextCandidate(p)
	}
}

// nextCandidate returns the next odd integer after p (2 -> 3, else p+2),
// i.e. trial division only ever tests 2 and odd numbers.
func nextCandidate(p *big.Int) *big.Int {
	if p.Cmp(two) == 0 {
		return big.NewInt(3)
	}
	return new(big.Int).Add(p, two)
}

// pollardRho returns a non-trivial factor of the composite n using
// Floyd-cycle Pollard's rho with a randomized polynomial, retrying with a
// fresh seed on failure.
func pollardRho(n *big.Int) (*big.Int, error) {
	if n.Bit(0) == 0 {
		return two, nil
	}

	c := big.NewInt(1)
	for attempt := 0; attempt < 100; attempt++ {
		d, err := pollardRhoOnce(n, c)
		if err == nil && d.Cmp(one) != 0 && d.Cmp(n) != 0 {
			return d, nil
		}
		c.Add(c, one)
	}
	return nil, fmt.Errorf("pollard rho did not converge on %s", n)
}

func pollardRhoOnce(n, c *big.Int) (*big.Int, error) {
	f := func(x *big.Int) *big.Int {
		y := new(big.Int).Mul(x, x)
		y.Add(y, c)
		return y.Mod(y, n)
	}

	x := big.NewInt(2)
	y := big.NewInt(2)
	d := big.NewInt(1)
	diff := new(big.Int)

	for d.Cmp(one) == 0 {
		x = f(x)
		y = f(f(y))
		diff.Sub(x, y)
		diff.Abs(diff)
		if diff.Sign() == 0 {
			return nil, fmt.Errorf("cycle without a factor")
		}
		d.GCD(nil, nil, diff, n)
	}
	return d, nil
}
