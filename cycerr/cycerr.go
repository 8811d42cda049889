// Package cycerr defines the sentinel error kinds shared across the
// cyclotomic-factoring packages. Call sites wrap these with fmt.Errorf's
// %w verb to add context; callers distinguish kinds with errors.Is.
package cycerr

import "errors"

var (
	// ErrInvalidParameter: n not an odd prime in [3,19], or f does not
	// divide n-1.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrSingular: zero pivot in linsolve, or a near-zero Gram-Schmidt
	// norm in lll.
	ErrSingular = errors.New("singular matrix")

	// ErrSearchExhausted: no MPoly root led to a usable lattice vector,
	// or a bounded retry budget (e.g. genPrime's NTRY) was used up.
	ErrSearchExhausted = errors.New("search exhausted")

	// ErrOutOfDomain: Z[omega] is only known to be a UFD for n<=19. No
	// function in this module returns it: cyc.NewContext already rejects
	// n>=23 (and any n it does not recognize) with ErrInvalidParameter.
	ErrOutOfDomain = errors.New("out of domain")
)
