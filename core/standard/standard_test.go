package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/scenariolp/core/model"
)

func TestFromObjective(t *testing.T) {
	m := model.Build()
	p, err := FromObjective(m, model.Index{T: 1, S: 1})
	require.NoError(t, err)

	assert.Equal(t, "obj_(1, 1)", p.Name)
	assert.Equal(t, []string{"x(1, 1)", "y(1, 1)"}, p.Columns)
	assert.Equal(t, []bool{true, true}, p.Integer)
	assert.Equal(t, []float64{1, 1}, p.Cost)
	assert.Equal(t, []float64{9, 9, 0, 0}, p.H)

	rows, cols := p.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 8, cols)
	assert.Equal(t, []float64{1, 1, -1, -1, 0, 0, 0, 0}, p.C)
	assert.Equal(t, []float64{9, 9, 0, 0}, p.B)

	want := mat.NewDense(4, 8, []float64{
		1, 0, -1, 0, 1, 0, 0, 0,
		0, 1, 0, -1, 0, 1, 0, 0,
		-1, 0, 1, 0, 0, 0, 1, 0,
		0, -1, 0, 1, 0, 0, 0, 1,
	})
	assert.True(t, mat.Equal(want, p.A), "A =\n%v", mat.Formatted(p.A))
}

func TestFromObjectiveUsesParameter(t *testing.T) {
	spec := model.DefaultSpec()
	spec.ParamInit = func(i model.Index) float64 { return float64(i.S) / 2 }
	m, err := model.New(spec)
	require.NoError(t, err)

	p, err := FromObjective(m, model.Index{T: 7, S: 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1}, p.Cost)
}

func TestFromObjectiveUnknown(t *testing.T) {
	_, err := FromObjective(model.Build(), model.Index{T: 30, S: 1})
	assert.ErrorIs(t, err, model.ErrUnknownObjective)
}

func TestFromModel(t *testing.T) {
	m := model.Build()
	probs, err := FromModel(m)
	require.NoError(t, err)
	require.Len(t, probs, 96)
	assert.Equal(t, "obj_(1, 1)", probs[0].Name)
	assert.Equal(t, "obj_(24, 4)", probs[95].Name)
	for _, p := range probs {
		assert.Equal(t, "x"+p.Index.String(), p.Columns[0])
		assert.Equal(t, "y"+p.Index.String(), p.Columns[1])
	}
}

func TestFromModelEmpty(t *testing.T) {
	spec := model.DefaultSpec()
	spec.Scenario = model.NewRangeSet(model.SetScenario, 2, 1)
	m, err := model.New(spec)
	require.NoError(t, err)
	probs, err := FromModel(m)
	require.NoError(t, err)
	assert.Empty(t, probs)
}

func TestFromObjectiveFamilyDomain(t *testing.T) {
	spec := model.DefaultSpec()
	spec.VarBound = 5
	m, err := model.New(spec)
	require.NoError(t, err)
	p, err := FromObjective(m, model.Index{T: 2, S: 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 0, 0}, p.H)
}
