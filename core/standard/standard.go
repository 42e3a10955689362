package standard

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/kilianp07/scenariolp/core/model"
)

// Problem is one objective translated for a solver.
type Problem struct {
	Name    string
	Index   model.Index
	Columns []string
	Integer []bool

	// Inequality form.
	Cost []float64
	G    *mat.Dense
	H    []float64

	// Standard form from lp.Convert: columns are [z+, z-, slack].
	C []float64
	A *mat.Dense
	B []float64
}

// FromObjective converts the objective at idx.
func FromObjective(m *model.Model, idx model.Index) (Problem, error) {
	obj, err := m.Objective(idx)
	if err != nil {
		return Problem{}, err
	}
	return convert(m, obj)
}

// FromModel converts every objective of m ordered by T then S.
func FromModel(m *model.Model) ([]Problem, error) {
	objs := m.Objectives()
	out := make([]Problem, 0, len(objs))
	for _, o := range objs {
		p, err := convert(m, o)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func convert(m *model.Model, obj *model.Objective) (Problem, error) {
	n := len(obj.Terms)
	p := Problem{
		Name:    obj.Name,
		Index:   obj.Index,
		Columns: make([]string, n),
		Integer: make([]bool, n),
		Cost:    make([]float64, n),
	}

	lo := make([]float64, n)
	hi := make([]float64, n)
	for j, t := range obj.Terms {
		c, err := t.Coefficient(m)
		if err != nil {
			return Problem{}, fmt.Errorf("%s: %w", obj.Name, err)
		}
		if obj.Sense == model.Maximize {
			c = -c
		}
		fam, err := m.Var(t.Var)
		if err != nil {
			return Problem{}, fmt.Errorf("%s: %w", obj.Name, err)
		}
		v, err := fam.Get(t.Index)
		if err != nil {
			return Problem{}, fmt.Errorf("%s: %w", obj.Name, err)
		}
		dom := fam.Domain()
		if dom.Size() == 0 {
			return Problem{}, fmt.Errorf("%s: empty domain for %s", obj.Name, v.Label())
		}
		p.Columns[j] = v.Label()
		p.Integer[j] = true
		p.Cost[j] = c
		lo[j], hi[j] = dom.Bounds()
	}

	// Rows 0..n-1: z_j <= hi_j. Rows n..2n-1: -z_j <= -lo_j.
	p.G = mat.NewDense(2*n, n, nil)
	p.H = make([]float64, 2*n)
	for j := 0; j < n; j++ {
		p.G.Set(j, j, 1)
		p.H[j] = hi[j]
		p.G.Set(n+j, j, -1)
		p.H[n+j] = -lo[j]
	}

	p.C, p.A, p.B = lp.Convert(p.Cost, p.G, p.H, nil, nil)
	return p, nil
}

// Dims returns the number of rows and columns of the standard-form matrix.
func (p Problem) Dims() (rows, cols int) {
	return p.A.Dims()
}
