package model

import (
	"fmt"
	"math"
)

// Domain is an inclusive integer range [Lo, Hi].
type Domain struct {
	Lo int
	Hi int
}

// RangeDomain returns the integers 0..n-1.
func RangeDomain(n int) Domain { return Domain{Lo: 0, Hi: n - 1} }

// Contains reports whether v lies in the domain.
func (d Domain) Contains(v int) bool { return v >= d.Lo && v <= d.Hi }

// Size returns the number of admissible values.
func (d Domain) Size() int {
	if d.Hi < d.Lo {
		return 0
	}
	return d.Hi - d.Lo + 1
}

// Bounds returns the domain as continuous bounds for LP relaxations.
func (d Domain) Bounds() (lo, hi float64) {
	if d.Size() == 0 {
		return math.NaN(), math.NaN()
	}
	return float64(d.Lo), float64(d.Hi)
}

func (d Domain) String() string { return fmt.Sprintf("Integers[%d..%d]", d.Lo, d.Hi) }
