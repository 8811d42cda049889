// Package bigutil wraps math/big with the arbitrary-precision services the
// cyclotomic-factoring packages treat as an external dependency per the
// specification: construction helpers, modular inverse, integer
// factorization, and random-prime search.
package bigutil

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// NewInt allocates a new *big.Int from one of the accepted scalar types.
// Accepted types are: string, int, int64, uint64, *big.Int.
func NewInt(x interface{}) (y *big.Int) {
	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("bigutil.NewInt: accepted types are string, int, int64, uint64, *big.Int, but is %T", x))
	}

	return
}

// RandInt returns a uniform random integer in [0, max).
func RandInt(reader io.Reader, max *big.Int) (n *big.Int, err error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("bigutil.RandInt: max must be positive")
	}
	return rand.Int(reader, max)
}

// RandRange returns a uniform random integer in [lo, hi).
func RandRange(reader io.Reader, lo, hi *big.Int) (n *big.Int, err error) {
	span := new(big.Int).Sub(hi, lo)
	n, err = RandInt(reader, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}
