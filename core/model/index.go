package model

import (
	"fmt"
	"math"
)

// IndexSet is an ordered, immutable range of integers first..last. A set with
// last < first is empty.
type IndexSet struct {
	name  string
	first int
	last  int
}

// NewRangeSet returns the set {first..last}.
func NewRangeSet(name string, first, last int) IndexSet {
	return IndexSet{name: name, first: first, last: last}
}

// ParseRange validates bounds read from configuration and returns the
// matching set. Both bounds must be integers in 1..MaxBound.
func ParseRange(name string, first, last float64) (IndexSet, error) {
	if err := checkBound(name, "first", first); err != nil {
		return IndexSet{}, err
	}
	if err := checkBound(name, "last", last); err != nil {
		return IndexSet{}, err
	}
	return NewRangeSet(name, int(first), int(last)), nil
}

// MaxBound is the largest accepted range bound.
const MaxBound = math.MaxInt32

func checkBound(set, bound string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v <= 0 || v > MaxBound {
		return &InvalidRangeError{Set: set, Bound: bound, Value: v}
	}
	return nil
}

// Name returns the set name.
func (s IndexSet) Name() string { return s.name }

// First returns the lower bound.
func (s IndexSet) First() int { return s.first }

// Last returns the upper bound.
func (s IndexSet) Last() int { return s.last }

// Len returns the number of members.
func (s IndexSet) Len() int {
	if s.last < s.first {
		return 0
	}
	return s.last - s.first + 1
}

// Contains reports whether v is a member.
func (s IndexSet) Contains(v int) bool { return v >= s.first && v <= s.last }

// Values returns the members in ascending order.
func (s IndexSet) Values() []int {
	out := make([]int, 0, s.Len())
	for v := s.first; v <= s.last; v++ {
		out = append(out, v)
	}
	return out
}

func (s IndexSet) String() string {
	if s.Len() == 0 {
		return s.name + "={}"
	}
	return fmt.Sprintf("%s={%d..%d}", s.name, s.first, s.last)
}

// Index keys every family by a (time, scenario) pair.
type Index struct {
	T int
	S int
}

func (i Index) String() string { return fmt.Sprintf("(%d, %d)", i.T, i.S) }

// Product returns T × S in T-major order.
func Product(t, s IndexSet) []Index {
	out := make([]Index, 0, t.Len()*s.Len())
	for _, tv := range t.Values() {
		for _, sv := range s.Values() {
			out = append(out, Index{T: tv, S: sv})
		}
	}
	return out
}
