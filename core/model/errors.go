package model

import (
	"errors"
	"fmt"
)

// ErrValueUnset is returned when an expression reads a variable that has no value.
var ErrValueUnset = errors.New("variable value not set")

// ErrUnknownObjective is returned when no objective exists for an index or name.
var ErrUnknownObjective = errors.New("unknown objective")

// ErrNonFinite is returned for NaN or infinite parameter values.
var ErrNonFinite = errors.New("value is not finite")

// InvalidRangeError reports a bound that is not an integer in 1..MaxBound, or
// index sets whose product exceeds MaxIndexPairs.
type InvalidRangeError struct {
	Set   string
	Bound string
	Value float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid %s for %s: %v out of range", e.Bound, e.Set, e.Value)
}

// DomainError reports a value outside a variable domain.
type DomainError struct {
	Var    string
	Value  int
	Domain Domain
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("value %d for %s outside domain %s", e.Value, e.Var, e.Domain)
}

// IndexError reports an index that is not a member of a family.
type IndexError struct {
	Family string
	Index  Index
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %s not in %s", e.Index, e.Family)
}

// DuplicateNameError reports a component name registered twice.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("component %q already defined", e.Name)
}
