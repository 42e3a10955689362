package config

import (
	"math"

	"github.com/kilianp07/scenariolp/core/model"
)

// RangeConfig holds inclusive index set bounds. Floats are accepted so that
// non-integer input is reported instead of truncated.
type RangeConfig struct {
	First float64 `json:"first" yaml:"first"`
	Last  float64 `json:"last" yaml:"last"`
}

// ModelConfig describes the dimensions of the scenario model.
type ModelConfig struct {
	Time     RangeConfig `json:"time" yaml:"time"`
	Scenario RangeConfig `json:"scenario" yaml:"scenario"`
	// VariableBound n restricts x and y to 0..n-1.
	VariableBound  float64 `json:"variable_bound" yaml:"variable_bound"`
	ParameterValue float64 `json:"parameter_value" yaml:"parameter_value"`
}

// DefaultModel mirrors model.DefaultSpec.
func DefaultModel() ModelConfig {
	return ModelConfig{
		Time:           RangeConfig{First: 1, Last: model.DefaultTimeSteps},
		Scenario:       RangeConfig{First: 1, Last: model.DefaultScenarios},
		VariableBound:  model.DefaultVarBound,
		ParameterValue: model.DefaultParamValue,
	}
}

// Spec converts the section into a builder spec. Range errors are
// *model.InvalidRangeError.
func (c ModelConfig) Spec() (model.Spec, error) {
	t, err := model.ParseRange(model.SetTime, c.Time.First, c.Time.Last)
	if err != nil {
		return model.Spec{}, err
	}
	s, err := model.ParseRange(model.SetScenario, c.Scenario.First, c.Scenario.Last)
	if err != nil {
		return model.Spec{}, err
	}
	vb := c.VariableBound
	if math.IsNaN(vb) || math.IsInf(vb, 0) || vb != math.Trunc(vb) || vb <= 0 || vb > model.MaxBound {
		return model.Spec{}, &model.InvalidRangeError{Set: "domain", Bound: "variable_bound", Value: vb}
	}
	spec := model.Spec{Time: t, Scenario: s, VarBound: int(vb), ParamValue: c.ParameterValue}
	if err := spec.Validate(); err != nil {
		return model.Spec{}, err
	}
	return spec, nil
}
