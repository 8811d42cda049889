// Package cycfactor is the public entry point for factoring cyclotomic
// integers and generating cyclotomic primes.
package cycfactor

import "github.com/go-cyclotomic/cycfactor/cyc"

// Factors is an ordered multiset of irreducible factors of a cyclotomic
// integer, keyed by their normalized coordinate string (cyc.Int is
// slice-backed and so is not itself a valid map key). It mirrors
// bigutil.Factorization's shape, applied to ring elements instead of
// rational integers.
type Factors struct {
	order []string
	elem  map[string]*cyc.Int
	exp   map[string]int
}

// NewFactors returns an empty Factors.
func NewFactors() *Factors {
	return &Factors{
		elem: make(map[string]*cyc.Int),
		exp:  make(map[string]int),
	}
}

// Add records e more occurrences of the factor pi.
func (f *Factors) Add(pi *cyc.Int, e int) {
	k := pi.Key()
	if _, ok := f.elem[k]; !ok {
		f.elem[k] = pi
		f.order = append(f.order, k)
	}
	f.exp[k] += e
}

// Get returns the exponent recorded for pi, or 0 if absent.
func (f *Factors) Get(pi *cyc.Int) int {
	return f.exp[pi.Key()]
}

// Factors returns the distinct irreducible factors, in the order first added.
func (f *Factors) Factors() []*cyc.Int {
	out := make([]*cyc.Int, len(f.order))
	for i, k := range f.order {
		out[i] = f.elem[k]
	}
	return out
}

// Exponent returns the exponent recorded for the factor pi; it is the same as Get.
func (f *Factors) Exponent(pi *cyc.Int) int { return f.Get(pi) }

// Len returns the number of distinct factors recorded.
func (f *Factors) Len() int { return len(f.order) }
