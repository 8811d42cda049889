package bigutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomPrime returns a uniform random prime with exactly bits bits, using
// crypto/rand.Prime (Miller-Rabin backed). Consumed by cycfactor.GenPrime's
// retry loop.
func RandomPrime(bits int) (p *big.Int, err error) {
	if bits < 2 {
		return nil, fmt.Errorf("bigutil.RandomPrime: bits must be >= 2")
	}
	return rand.Prime(rand.Reader, bits)
}
