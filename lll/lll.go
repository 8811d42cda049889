// Package lll implements Lenstra-Lenstra-Lovasz lattice-basis reduction
// over extended-precision floating point. primefactor.Factor reduces a
// shifted lattice to recover a short vector whose norm is the target
// rational prime.
//
// Algorithm: H. Cohen, "A Course in Computational Algebraic Number
// Theory," Algorithm 2.6.3, with delta=0.75. Classical implementations of
// this algorithm lean on 80-bit extended (long double) floats for the
// Gram-Schmidt bookkeeping; this package uses math/big.Float at a fixed
// precision well beyond that (see precisionBits) since Go has no native
// extended-precision float type.
package lll

import (
	"fmt"
	"math/big"

	"github.com/go-cyclotomic/cycfactor/cycerr"
)

// precisionBits is the big.Float mantissa width used throughout
// reduction. 128 bits comfortably exceeds the reference's 80-bit
// extended precision while staying cheap for the small dimensions (<=18)
// this module ever reduces.
const precisionBits = 128

// delta is Lovasz's reduction constant.
const delta = 0.75

// nearZero is the absolute threshold below which a squared
// Gram-Schmidt norm is treated as zero, i.e. the input rows are linearly
// dependent. Genuine norms arising from integer input vectors are either
// comfortably large or round to this close to zero; see Cohen 2.6.3.
const nearZero = 1e-6

// vec is a row vector of extended-precision floats.
type vec = []*big.Float

// Reduce LLL-reduces the m row vectors in rows (each of length n, m<=n),
// given as arbitrary-precision integers, and returns the reduced rows as
// arbitrary-precision integers. It fails with cycerr.ErrSingular if the
// input rows are linearly dependent.
func Reduce(rows [][]*big.Int) ([][]*big.Int, error) {
	m := len(rows)
	if m == 0 {
		return nil, nil
	}
	n := len(rows[0])
	if m > n {
		return nil, fmt.Errorf("%w: lll.Reduce requires m<=n, got m=%d n=%d", cycerr.ErrInvalidParameter, m, n)
	}

	B := make([]vec, m)
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: ragged input rows", cycerr.ErrInvalidParameter)
		}
		B[i] = toFloatVec(rows[i])
	}

	C := make([]vec, m)
	c := make([]*big.Float, m)
	M := make([]vec, m)
	for i := range M {
		M[i] = zeroVec(m)
		M[i][i] = floatOf(1)
	}

	C[0] = cloneVec(B[0])
	c[0] = dot(B[0], B[0])

	k, kmax := 1, 0
	for k < m {
		if k > kmax {
			kmax = k
			for i := 0; i < k; i++ {
				M[k][i] = quo(dot(C[i], B[k]), c[i])
			}
			C[k] = cloneVec(B[k])
			for i := 0; i < k; i++ {
				C[k] = vecSub(C[k], vecScale(C[i], M[k][i]))
			}
			c[k] = dot(C[k], C[k])
			if isNearZero(c[k]) {
				return nil, fmt.Errorf("%w: linearly dependent input rows in lll.Reduce", cycerr.ErrSingular)
			}
		}

		reducePair(k, k-1, B, M)
		u := cloneFloat(M[k][k-1])
		d := add(mul(u, u, c[k-1]), c[k])

		threshold := mul(floatOf(delta), c[k-1])
		if d.Cmp(threshold) >= 0 {
			for l := 2; l <= k; l++ {
				reducePair(k, k-l, B, M)
			}
			k++
		} else {
			B[k-1], B[k] = B[k], B[k-1]
			for i := 0; i < k-1; i++ {
				M[k-1][i], M[k][i] = M[k][i], M[k-1][i]
			}

			newMkk1 := quo(mul(u, c[k-1]), d)
			newCk := quo(c[k], d)

			oldCkm1, oldCk := C[k-1], C[k]
			newCkm1vec := vecAdd(oldCk, vecScale(oldCkm1, u))
			newCkvec := vecSub(vecScale(oldCkm1, newCk), vecScale(oldCk, newMkk1))

			finalCk := mulF(c[k-1], newCk)
			finalCkm1 := d

			M[k][k-1] = newMkk1
			C[k-1], C[k] = newCkm1vec, newCkvec
			c[k], c[k-1] = finalCk, finalCkm1

			for r := k + 1; r < m; r++ {
				M[r][k-1], M[r][k] = M[r][k], M[r][k-1]
			}
			for r := k + 1; r < m; r++ {
				M[r][k] = sub(M[r][k], mulF(u, M[r][k-1]))
			}
			for r := k + 1; r < m; r++ {
				M[r][k-1] = add(M[r][k-1], mulF(M[k][k-1], M[r][k]))
			}

			if k > 1 {
				k--
			}
		}
	}

	out := make([][]*big.Int, m)
	for i := range B {
		out[i] = make([]*big.Int, n)
		for j := range B[i] {
			out[i][j] = roundToInt(B[i][j])
		}
	}
	return out, nil
}

// reducePair subtracts round(M[k][l])*row l from row k in B, and the same
// multiple of M[l][0:l+1] from M[k][0:l+1]. This is the "reduce(k,l)"
// primitive of Cohen 2.6.3.
func reducePair(k, l int, B, M []vec) {
	q := roundToFloat(M[k][l])
	if q.Sign() == 0 {
		return
	}
	for j := range B[k] {
		B[k][j] = sub(B[k][j], mulF(q, B[l][j]))
	}
	for j := 0; j <= l; j++ {
		M[k][j] = sub(M[k][j], mulF(q, M[l][j]))
	}
}
