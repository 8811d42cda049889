// Package cyc implements the ring of cyclotomic integers Z[omega],
// omega = exp(2*pi*i/n), for an odd prime n with 3 <= n <= 19 (the range
// in which Z[omega] is known to be a unique factorization domain).
//
// Context holds the process-wide tables tied to a fixed n: a primitive
// root mod n, its discrete-log table, multiplicative orders, and the
// conjugation-index permutations used by Int.Conj. Its constructor
// validates the parameters once, builds the lookup tables once, and
// hands out an immutable handle that every ring operation is built
// against.
package cyc

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/cycerr"
	"github.com/go-cyclotomic/cycfactor/internal/xmath"
)

// Context is the per-n table set every Int operation is defined against.
// It is built once by NewContext and is immutable thereafter.
type Context struct {
	N  int // odd prime, 3 <= N <= 19
	N1 int // N-1
	G  int // primitive root mod N

	gPow  []int64 // gPow[i] = g^i mod n, i in [0, n-1)
	logG  []int64 // logG[a] = discrete log base g of a mod n, a in [1,n)
	order []int64 // order[a] = multiplicative order of a mod n; order[0] = 1

	// cjind[i][k] = k * g^(-i) mod n. Applying cjind[i] to a coefficient
	// vector (new c_k = old c_{cjind[i][k]}) implements the automorphism
	// omega -> omega^(g^i).
	cjind [][]int
}

// supportedN lists the odd primes for which Z[omega] is known to be a UFD.
var supportedN = map[int]bool{3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true}

// NewContext validates n and builds the table set for Z[omega], omega a
// primitive n-th root of unity. n must be an odd prime with 3 <= n <= 19.
func NewContext(n int) (*Context, error) {
	if !supportedN[n] {
		return nil, fmt.Errorf("%w: n=%d must be an odd prime in [3,19]", cycerr.ErrInvalidParameter, n)
	}

	g, err := primitiveRoot(n)
	if err != nil {
		return nil, fmt.Errorf("cyc.NewContext: %w", err)
	}

	n1 := n - 1
	c := &Context{
		N:     n,
		N1:    n1,
		G:     g,
		gPow:  make([]int64, n1),
		logG:  make([]int64, n),
		order: make([]int64, n),
		cjind: make([][]int, n1),
	}

	c.order[0] = 1

	a := int64(1)
	for i := 0; i < n1; i++ {
		c.gPow[i] = a
		c.logG[a] = int64(i)
		c.order[a] = int64(n1) / gcdInt(int64(i), int64(n1))

		perm := make([]int, n)
		for k := 0; k < n; k++ {
			perm[k] = int((int64(k) * a) % int64(n))
		}
		c.cjind[xmath.Mod(-i, n1)] = perm

		a = a * int64(g) % int64(n)
	}

	return c, nil
}

// Ord returns the multiplicative order of a mod n. Ord(0) == 1 by
// convention: the value is never legitimately consulted with argument 0,
// but the convention guards against silent bugs from an
// uninitialized-looking zero rather than a panic on out-of-range index.
func (c *Context) Ord(a int) int {
	return int(c.order[xmath.Mod(a, c.N)])
}

// Log returns the discrete log base g of a mod n. a must be in [1,n).
func (c *Context) Log(a int) int {
	return int(c.logG[xmath.Mod(a, c.N)])
}

// GPow returns g^i mod n.
func (c *Context) GPow(i int) int {
	return int(c.gPow[xmath.Mod(i, c.N1)])
}

// CjindAt returns the i-th conjugation permutation, cjind[i][k] = k*g^(-i) mod n.
func (c *Context) CjindAt(i int) []int {
	return c.cjind[xmath.Mod(i, c.N1)]
}

func gcdInt(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// primitiveRoot returns the smallest primitive root of the odd prime n.
func primitiveRoot(n int) (int, error) {
	n1 := n - 1
	factors := distinctPrimeFactors(n1)

	for g := 2; g < n; g++ {
		if isPrimitiveRoot(g, n, n1, factors) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("no primitive root found mod %d", n)
}

func isPrimitiveRoot(g, n, n1 int, factors []int) bool {
	for _, q := range factors {
		if powMod(g, n1/q, n) == 1 {
			return false
		}
	}
	return powMod(g, n1, n) == 1
}

func powMod(base, exp, mod int) int {
	r := big.NewInt(1)
	r.Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), big.NewInt(int64(mod)))
	return int(r.Int64())
}

// distinctPrimeFactors returns the distinct prime factors of m (m is
// always n-1 for n<=19, i.e. at most 18, so plain trial division suffices
// without reaching for bigutil.Factorize).
func distinctPrimeFactors(m int) []int {
	var out []int
	for p := 2; p*p <= m; p++ {
		if m%p == 0 {
			out = append(out, p)
			for m%p == 0 {
				m /= p
			}
		}
	}
	if m > 1 {
		out = append(out, m)
	}
	return out
}
