package lll

import "math/big"

func floatOf(x float64) *big.Float {
	return new(big.Float).SetPrec(precisionBits).SetFloat64(x)
}

func toFloatVec(xs []*big.Int) vec {
	v := make(vec, len(xs))
	for i, x := range xs {
		v[i] = new(big.Float).SetPrec(precisionBits).SetInt(x)
	}
	return v
}

func zeroVec(n int) vec {
	v := make(vec, n)
	for i := range v {
		v[i] = new(big.Float).SetPrec(precisionBits)
	}
	return v
}

func cloneVec(u vec) vec {
	v := make(vec, len(u))
	for i, x := range u {
		v[i] = cloneFloat(x)
	}
	return v
}

func cloneFloat(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(precisionBits).Set(x)
}

// dot returns the inner product of u and v.
func dot(u, v vec) *big.Float {
	s := new(big.Float).SetPrec(precisionBits)
	t := new(big.Float).SetPrec(precisionBits)
	for i := range u {
		t.Mul(u[i], v[i])
		s.Add(s, t)
	}
	return s
}

// vecAdd returns u+v.
func vecAdd(u, v vec) vec {
	w := make(vec, len(u))
	for i := range u {
		w[i] = add(u[i], v[i])
	}
	return w
}

// vecSub returns u-v.
func vecSub(u, v vec) vec {
	w := make(vec, len(u))
	for i := range u {
		w[i] = sub(u[i], v[i])
	}
	return w
}

// vecScale returns s*u.
func vecScale(u vec, s *big.Float) vec {
	w := make(vec, len(u))
	for i := range u {
		w[i] = mulF(s, u[i])
	}
	return w
}

func add(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(precisionBits).Add(a, b)
}

func sub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(precisionBits).Sub(a, b)
}

func mulF(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(precisionBits).Mul(a, b)
}

// mul returns a*b*c.
func mul(a, b, c *big.Float) *big.Float {
	return new(big.Float).SetPrec(precisionBits).Mul(mulF(a, b), c)
}

func quo(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(precisionBits).Quo(a, b)
}

func isNearZero(x *big.Float) bool {
	a := new(big.Float).SetPrec(precisionBits).Abs(x)
	return a.Cmp(floatOf(nearZero)) < 0
}

// roundToFloat rounds x to the nearest integer, ties away from zero, and
// returns the result as a big.Float (so it can be used directly in the
// vector arithmetic above without repeated int/float conversions).
func roundToFloat(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(precisionBits).SetInt(roundToInt(x))
}

// roundToInt rounds x to the nearest integer, ties away from zero.
func roundToInt(x *big.Float) *big.Int {
	half := floatOf(0.5)
	var t *big.Float
	if x.Sign() >= 0 {
		t = add(x, half)
	} else {
		t = sub(x, half)
	}
	z := new(big.Int)
	t.Int(z)
	return z
}
