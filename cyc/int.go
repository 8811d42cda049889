package cyc

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/go-cyclotomic/cycfactor/bigutil"
)

// Int is an element of Z[omega], represented as its n coefficients
// c_0,...,c_{n-1} in the basis 1,omega,...,omega^{n-1}. Because
// 1+omega+...+omega^{n-1}=0, two coefficient vectors represent the same
// ring element iff they differ by a constant added to every coordinate;
// Normalize picks the representative with c_{n-1}=0.
//
// Int is a value object: every operation returns a new Int and never
// mutates its receiver or arguments.
type Int struct {
	ctx *Context
	c   []*big.Int
}

// NewInt builds an Int from coefficients (in order of increasing power of
// omega); a coefficient vector shorter than n is right-padded with zero.
func (c *Context) NewInt(coeffs ...int64) *Int {
	v := make([]*big.Int, c.N)
	for i := range v {
		if i < len(coeffs) {
			v[i] = big.NewInt(coeffs[i])
		} else {
			v[i] = new(big.Int)
		}
	}
	return &Int{ctx: c, c: v}
}

// FromBigInt builds an Int from an arbitrary-precision coefficient slice,
// right-padded with zero to length n.
func (c *Context) FromBigInt(coeffs []*big.Int) *Int {
	v := make([]*big.Int, c.N)
	for i := range v {
		if i < len(coeffs) {
			v[i] = new(big.Int).Set(coeffs[i])
		} else {
			v[i] = new(big.Int)
		}
	}
	return &Int{ctx: c, c: v}
}

// Scalar builds the Int equal to the rational integer x.
func (c *Context) Scalar(x *big.Int) *Int {
	v := make([]*big.Int, c.N)
	v[0] = new(big.Int).Set(x)
	for i := 1; i < c.N; i++ {
		v[i] = new(big.Int)
	}
	return &Int{ctx: c, c: v}
}

// Random returns an Int with its n-1 free coefficients drawn
// independently and uniformly from [-b+1, b); the n-th coefficient is
// fixed at 0, matching Normalize's representative choice. Built on
// bigutil.RandRange.
func (c *Context) Random(b int64) (*Int, error) {
	lo := big.NewInt(-b + 1)
	hi := big.NewInt(b)
	v := make([]*big.Int, c.N)
	for i := 0; i < c.N1; i++ {
		x, err := bigutil.RandRange(rand.Reader, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("cyc.Random: %w", err)
		}
		v[i] = x
	}
	v[c.N1] = new(big.Int)
	return &Int{ctx: c, c: v}, nil
}

// Context returns the Context a was built against.
func (a *Int) Context() *Context { return a.ctx }

// Coeffs returns a copy of a's raw (un-normalized) coefficient vector.
func (a *Int) Coeffs() []*big.Int {
	out := make([]*big.Int, len(a.c))
	for i, v := range a.c {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

func (c *Context) wrap(v []*big.Int) *Int { return &Int{ctx: c, c: v} }

// Normalize returns the representative of a's gauge class with
// coefficient n-1 equal to zero.
func (a *Int) Normalize() *Int {
	n := a.ctx.N
	last := a.c[n-1]
	v := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		v[i] = new(big.Int).Sub(a.c[i], last)
	}
	return a.ctx.wrap(v)
}

// Neg returns -a.
func (a *Int) Neg() *Int {
	v := make([]*big.Int, a.ctx.N)
	for i, x := range a.c {
		v[i] = new(big.Int).Neg(x)
	}
	return a.ctx.wrap(v)
}

// Add returns a+b.
func (a *Int) Add(b *Int) *Int {
	v := make([]*big.Int, a.ctx.N)
	for i := range v {
		v[i] = new(big.Int).Add(a.c[i], b.c[i])
	}
	return a.ctx.wrap(v)
}

// Sub returns a-b.
func (a *Int) Sub(b *Int) *Int {
	v := make([]*big.Int, a.ctx.N)
	for i := range v {
		v[i] = new(big.Int).Sub(a.c[i], b.c[i])
	}
	return a.ctx.wrap(v)
}

// AddInt returns a+x for a rational integer x (added to the constant term).
func (a *Int) AddInt(x *big.Int) *Int {
	v := a.Coeffs()
	v[0].Add(v[0], x)
	return a.ctx.wrap(v)
}

// SubInt returns a-x for a rational integer x.
func (a *Int) SubInt(x *big.Int) *Int {
	v := a.Coeffs()
	v[0].Sub(v[0], x)
	return a.ctx.wrap(v)
}

// MulInt returns a scaled by the rational integer x.
func (a *Int) MulInt(x *big.Int) *Int {
	v := make([]*big.Int, a.ctx.N)
	for i, c := range a.c {
		v[i] = new(big.Int).Mul(c, x)
	}
	return a.ctx.wrap(v)
}

// Mul returns a*b: convolve the coefficient vectors (degree 2n-2), fold
// the overflow indices [n,2n-2] back in using omega^n=1, then subtract
// the (still unfolded) coefficient at n-1 from everything to normalize
// using 1+omega+...+omega^{n-1}=0.
func (a *Int) Mul(b *Int) *Int {
	n := a.ctx.N
	conv := make([]*big.Int, 2*n-1)
	for i := range conv {
		conv[i] = new(big.Int)
	}
	t := new(big.Int)
	for i, ai := range a.c {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b.c {
			if bj.Sign() == 0 {
				continue
			}
			t.Mul(ai, bj)
			conv[i+j].Add(conv[i+j], t)
		}
	}

	for i := 0; i < n-1; i++ {
		conv[i].Add(conv[i], conv[n+i])
	}

	last := conv[n-1]
	v := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		v[i] = new(big.Int).Sub(conv[i], last)
	}
	return a.ctx.wrap(v)
}

// Conj returns the image of a under the automorphism omega -> omega^(g^i).
// Conj(1) is the generator used as the default conjugate throughout the
// package; Conj(0) is the identity.
func (a *Int) Conj(i int) *Int {
	perm := a.ctx.CjindAt(i)
	v := make([]*big.Int, a.ctx.N)
	for k, p := range perm {
		v[k] = new(big.Int).Set(a.c[p])
	}
	return a.ctx.wrap(v)
}

// Norm returns the product of all n-1 Galois conjugates of a, a rational
// integer.
func (a *Int) Norm() *big.Int {
	prod := a
	for i := 1; i < a.ctx.N1; i++ {
		prod = prod.Mul(a.Conj(i))
	}
	return prod.ToInt()
}

// Primitive returns (d, a') with a = d*a', content(a') = 1, d >= 0.
func (a *Int) Primitive() (*big.Int, *Int) {
	d := new(big.Int)
	for _, x := range a.c {
		d.GCD(nil, nil, d, new(big.Int).Abs(x))
	}
	if d.Sign() == 0 {
		return big.NewInt(0), a.ctx.wrap(a.Coeffs())
	}
	v := make([]*big.Int, a.ctx.N)
	for i, x := range a.c {
		v[i] = new(big.Int).Div(x, d)
	}
	return d, a.ctx.wrap(v)
}

// Div attempts exact division a/b for b a *big.Int or *Int, returning
// (quotient, true) on success and (nil, false) if b does not divide a.
//
// When b is an Int, the protocol multiplies both a and b by the product
// of b's non-identity, non-final conjugates (conj(1)..conj(n-2)); this
// turns the denominator into N(b), a rational integer, at which point
// division is coordinate-wise divisibility.
func (a *Int) Div(b interface{}) (*Int, bool) {
	switch b := b.(type) {
	case *big.Int:
		return divByInt(a, b)
	case *Int:
		c := b.Conj(1)
		for i := 2; i <= a.ctx.N1-1; i++ {
			c = c.Mul(b.Conj(i))
		}
		num := a.Mul(c)
		denom := b.Mul(c).ToInt()
		return divByInt(num, denom)
	default:
		return nil, false
	}
}

func divByInt(a *Int, denom *big.Int) (*Int, bool) {
	if denom.Sign() == 0 {
		return nil, false
	}
	v := make([]*big.Int, a.ctx.N)
	mod := new(big.Int)
	for i, x := range a.c {
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(x, denom, r)
		mod.Set(r)
		if mod.Sign() != 0 {
			return nil, false
		}
		v[i] = q
	}
	return a.ctx.wrap(v), true
}

// ToInt returns c_0 - c_{n-1}, the rational value after normalizing.
func (a *Int) ToInt() *big.Int {
	return new(big.Int).Sub(a.c[0], a.c[a.ctx.N-1])
}

// IsRational reports whether a is rational (c_1==c_2==...==c_{n-1}), and
// if so returns its integer value.
func (a *Int) IsRational() (*big.Int, bool) {
	for i := 2; i < a.ctx.N; i++ {
		if a.c[i].Cmp(a.c[1]) != 0 {
			return nil, false
		}
	}
	return a.ToInt(), true
}

// Equal reports whether a and b represent the same ring element, up to
// the 1+omega+...+omega^{n-1}=0 gauge.
func (a *Int) Equal(b *Int) bool {
	n := a.ctx.N
	for i := 0; i < n; i++ {
		l := new(big.Int).Sub(a.c[i], a.c[n-1])
		r := new(big.Int).Sub(b.c[i], b.c[n-1])
		if l.Cmp(r) != 0 {
			return false
		}
	}
	return true
}

// EqualInt reports whether a equals the rational integer x.
func (a *Int) EqualInt(x *big.Int) bool {
	v, ok := a.IsRational()
	return ok && v.Cmp(x) == 0
}

// Pow returns a^e via left-to-right square-and-multiply; e=0 returns 1.
func (a *Int) Pow(e uint64) *Int {
	if e == 0 {
		return a.ctx.NewInt(1)
	}
	bitLen := 64 - bits.LeadingZeros64(e)
	var m uint64
	if bitLen >= 2 {
		m = uint64(1) << uint(bitLen-2)
	}
	b := a
	for m > 0 {
		b = b.Mul(b)
		if e&m != 0 {
			b = b.Mul(a)
		}
		m >>= 1
	}
	return b
}

// IsUnit reports whether a is a unit, i.e. |norm(a)| == 1.
func (a *Int) IsUnit() bool {
	n := a.Norm()
	return n.CmpAbs(big.NewInt(1)) == 0
}

// IsAssoc reports whether a and b are associates, i.e. b divides a and
// the quotient is a unit.
func (a *Int) IsAssoc(b *Int) bool {
	q, ok := a.Div(b)
	return ok && q.IsUnit()
}

// Key returns a canonical string for a's gauge class, suitable for use as
// a map key (Int itself is not comparable, since it is slice-backed).
func (a *Int) Key() string {
	norm := a.Normalize()
	s := make([]byte, 0, 16*len(norm.c))
	for i, x := range norm.c {
		if i > 0 {
			s = append(s, ',')
		}
		s = x.Append(s, 10)
	}
	return string(s)
}

// String implements fmt.Stringer.
func (a *Int) String() string {
	return a.Normalize().Key()
}
