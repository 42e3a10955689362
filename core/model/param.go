package model

import (
	"fmt"
	"math"
)

// ParamFamily is an immutable coefficient table keyed by index.
type ParamFamily struct {
	name   string
	values map[Index]float64
}

func newParamFamily(name string, idx []Index, init func(Index) float64) (*ParamFamily, error) {
	p := &ParamFamily{name: name, values: make(map[Index]float64, len(idx))}
	for _, i := range idx {
		v := init(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s%s = %v: %w", name, i, v, ErrNonFinite)
		}
		p.values[i] = v
	}
	return p, nil
}

// Name returns the parameter name.
func (p *ParamFamily) Name() string { return p.name }

// Len returns the number of entries.
func (p *ParamFamily) Len() int { return len(p.values) }

// Value returns the coefficient at idx.
func (p *ParamFamily) Value(idx Index) (float64, error) {
	v, ok := p.values[idx]
	if !ok {
		return 0, &IndexError{Family: p.name, Index: idx}
	}
	return v, nil
}
