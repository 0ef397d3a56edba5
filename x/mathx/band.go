// Package mathx holds small generic numeric helpers for fixed-point readings.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. The bounds may be given in either order.
func Clamp[T constraints.Integer](v, lo, hi T) T {
	lo, hi = order(lo, hi)
	return max(lo, min(v, hi))
}

// Side says where a value falls relative to an inclusive band.
type Side int8

const (
	Below  Side = -1
	Inside Side = 0
	Above  Side = 1
)

// Classify places v against the band [lo, hi]. The bounds may be given in
// either order; both edges count as Inside.
func Classify[T constraints.Integer](v, lo, hi T) Side {
	lo, hi = order(lo, hi)
	switch {
	case v < lo:
		return Below
	case v > hi:
		return Above
	}
	return Inside
}

func order[T constraints.Integer](a, b T) (T, T) {
	if b < a {
		return b, a
	}
	return a, b
}
