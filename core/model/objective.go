package model

import (
	"fmt"
	"strings"
)

// Sense is the optimization direction of an objective.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}
	return "minimize"
}

// Term is coefficient * variable. The coefficient is either the constant
// Const or, when Param is set, the parameter entry at Index. The variable is
// the entry of family Var at Index.
type Term struct {
	Param string
	Const float64
	Var   string
	Index Index
}

func (t Term) String() string {
	if t.Param != "" {
		return fmt.Sprintf("%s%s*%s%s", t.Param, t.Index, t.Var, t.Index)
	}
	return fmt.Sprintf("%g*%s%s", t.Const, t.Var, t.Index)
}

// Objective is one named scalar objective. It only references components
// at its own Index.
type Objective struct {
	Name  string
	Index Index
	Sense Sense
	Terms []Term
}

// ObjectiveName returns the component name used for the objective at idx.
func ObjectiveName(idx Index) string { return "obj_" + idx.String() }

func (o *Objective) String() string {
	parts := make([]string, len(o.Terms))
	for i, t := range o.Terms {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s: %s %s", o.Name, o.Sense, strings.Join(parts, " + "))
}

// Coefficient resolves the coefficient of term t against m.
func (t Term) Coefficient(m *Model) (float64, error) {
	if t.Param == "" {
		return t.Const, nil
	}
	p, err := m.Param(t.Param)
	if err != nil {
		return 0, err
	}
	return p.Value(t.Index)
}

// Evaluate returns the objective value for the current variable values of m.
func (o *Objective) Evaluate(m *Model) (float64, error) {
	var total float64
	for _, t := range o.Terms {
		c, err := t.Coefficient(m)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", o.Name, err)
		}
		fam, err := m.Var(t.Var)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", o.Name, err)
		}
		v, err := fam.Value(t.Index)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", o.Name, err)
		}
		total += c * float64(v)
	}
	return total, nil
}
