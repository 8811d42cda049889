// Package xmath provides small generic numeric helpers shared by the
// cyclotomic-ring packages, in particular the Python-style wraparound
// modulo used pervasively by conjugation index tables and period rolls.
package xmath

import "golang.org/x/exp/constraints"

// Mod returns a mod b with the sign of b (Euclidean / Python convention),
// unlike Go's %, which keeps the sign of a. Every conjugation table in
// this module is built from differences such as (n1-i) or (a-i) that can
// go negative, and all of them are meant to wrap into [0, b).
func Mod[T constraints.Integer](a, b T) T {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
