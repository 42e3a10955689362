package model

import "fmt"

// Var is a single decision variable. It has no value until a solver or
// caller assigns one.
type Var struct {
	Name   string
	Index  Index
	Domain Domain

	value int
	set   bool
}

// Label returns the indexed name, e.g. x(1, 2).
func (v *Var) Label() string { return v.Name + v.Index.String() }

// Value returns the current value and whether it is set.
func (v *Var) Value() (int, bool) { return v.value, v.set }

// Set assigns a value within the domain.
func (v *Var) Set(val int) error {
	if !v.Domain.Contains(val) {
		return &DomainError{Var: v.Label(), Value: val, Domain: v.Domain}
	}
	v.value = val
	v.set = true
	return nil
}

// Clear removes the assigned value.
func (v *Var) Clear() {
	v.value = 0
	v.set = false
}

// VarFamily holds one variable per index of T × S.
type VarFamily struct {
	name   string
	domain Domain
	order  []Index
	vars   map[Index]*Var
}

func newVarFamily(name string, domain Domain, idx []Index) *VarFamily {
	f := &VarFamily{name: name, domain: domain, order: idx, vars: make(map[Index]*Var, len(idx))}
	for _, i := range idx {
		f.vars[i] = &Var{Name: name, Index: i, Domain: domain}
	}
	return f
}

// Name returns the family name.
func (f *VarFamily) Name() string { return f.name }

// Domain returns the domain shared by every variable in the family.
func (f *VarFamily) Domain() Domain { return f.domain }

// Len returns the number of variables.
func (f *VarFamily) Len() int { return len(f.vars) }

// Indices returns the family indices in construction order.
func (f *VarFamily) Indices() []Index {
	out := make([]Index, len(f.order))
	copy(out, f.order)
	return out
}

// Get returns the variable at idx.
func (f *VarFamily) Get(idx Index) (*Var, error) {
	v, ok := f.vars[idx]
	if !ok {
		return nil, &IndexError{Family: f.name, Index: idx}
	}
	return v, nil
}

// Set assigns val to the variable at idx.
func (f *VarFamily) Set(idx Index, val int) error {
	v, err := f.Get(idx)
	if err != nil {
		return err
	}
	return v.Set(val)
}

// Value returns the value at idx. It fails with ErrValueUnset when nothing
// has been assigned.
func (f *VarFamily) Value(idx Index) (int, error) {
	v, err := f.Get(idx)
	if err != nil {
		return 0, err
	}
	val, ok := v.Value()
	if !ok {
		return 0, fmt.Errorf("%s: %w", v.Label(), ErrValueUnset)
	}
	return val, nil
}

// Reset clears every value in the family.
func (f *VarFamily) Reset() {
	for _, v := range f.vars {
		v.Clear()
	}
}
