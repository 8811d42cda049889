package bigutil

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/cycerr"
)

// InvMod returns x such that a*x == 1 (mod p), using the extended
// Euclidean algorithm (math/big.Int.GCD computes the Bezout coefficients
// directly). It fails with cycerr.ErrSingular if a is not invertible
// mod p, i.e. gcd(a,p) != 1.
func InvMod(a, p *big.Int) (*big.Int, error) {
	g, x := new(big.Int), new(big.Int)
	g.GCD(x, new(big.Int), new(big.Int).Mod(a, p), p)
	if g.CmpAbs(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: %s has no inverse mod %s", cycerr.ErrSingular, a, p)
	}
	return x.Mod(x, p), nil
}
