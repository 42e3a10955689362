package model

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/scenariolp/core/logger"
)

// Default dimensions of the scenario model.
const (
	DefaultTimeSteps  = 24
	DefaultScenarios  = 4
	DefaultVarBound   = 10
	DefaultParamValue = 1.0

	// MaxIndexPairs caps |T|·|S|; each pair carries two variables, a
	// parameter and an objective.
	MaxIndexPairs = 1 << 20
)

// Component names.
const (
	SetTime     = "T"
	SetScenario = "S"
	VarX        = "x"
	VarY        = "y"
	ParamP      = "P"
)

// Spec holds the dimensions used to build a model.
type Spec struct {
	Time     IndexSet
	Scenario IndexSet
	// VarBound n gives variables the domain 0..n-1.
	VarBound   int
	ParamValue float64
	// ParamInit overrides ParamValue per index when set.
	ParamInit func(Index) float64
}

// DefaultSpec returns T = 1..24, S = 1..4, domain 0..9 and P = 1.0.
func DefaultSpec() Spec {
	return Spec{
		Time:       NewRangeSet(SetTime, 1, DefaultTimeSteps),
		Scenario:   NewRangeSet(SetScenario, 1, DefaultScenarios),
		VarBound:   DefaultVarBound,
		ParamValue: DefaultParamValue,
	}
}

// Validate checks the range bounds, the size of T × S, the variable bound
// and the parameter value.
func (s Spec) Validate() error {
	for _, set := range []IndexSet{s.Time, s.Scenario} {
		if err := checkBound(set.Name(), "first", float64(set.First())); err != nil {
			return err
		}
		if err := checkBound(set.Name(), "last", float64(set.Last())); err != nil {
			return err
		}
	}
	nt, ns := s.Time.Len(), s.Scenario.Len()
	if ns > 0 && nt > MaxIndexPairs/ns {
		return &InvalidRangeError{
			Set:   s.Time.Name() + "×" + s.Scenario.Name(),
			Bound: "size",
			Value: float64(nt) * float64(ns),
		}
	}
	if s.VarBound <= 0 {
		return &InvalidRangeError{Set: "domain", Bound: "variable_bound", Value: float64(s.VarBound)}
	}
	if math.IsNaN(s.ParamValue) || math.IsInf(s.ParamValue, 0) {
		return fmt.Errorf("parameter %s = %v: %w", ParamP, s.ParamValue, ErrNonFinite)
	}
	return nil
}

// Option configures New.
type Option func(*builder)

// WithPublisher publishes construction events to p.
func WithPublisher(p Publisher) Option {
	return func(b *builder) { b.pub = p }
}

// WithLogger logs construction phases to l.
func WithLogger(l logger.Logger) Option {
	return func(b *builder) { b.log = l }
}

type builder struct {
	pub   Publisher
	log   logger.Logger
	start time.Time
}

func (b *builder) emit(id string, phase Phase, count int) {
	b.log.Debugw("model phase", map[string]any{"model_id": id, "phase": string(phase), "count": count})
	if b.pub == nil {
		return
	}
	now := time.Now()
	b.pub.Publish(Event{ModelID: id, Phase: phase, Count: count, Time: now, Duration: now.Sub(b.start)})
}

// Model is a fully assembled scenario program.
type Model struct {
	ID       string
	T        IndexSet
	S        IndexSet
	X        *VarFamily
	Y        *VarFamily
	P        *ParamFamily
	objOrder []Index
	objs     map[Index]*Objective
	names    map[string]*Objective
}

// Build returns the model with the default dimensions.
func Build() *Model {
	m, err := New(DefaultSpec())
	if err != nil {
		panic(fmt.Sprintf("default spec: %v", err))
	}
	return m
}

// New assembles a model from spec in a single pass: sets, variables,
// parameters, objectives.
func New(spec Spec, opts ...Option) (*Model, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	b := &builder{log: logger.NopLogger{}, start: time.Now()}
	for _, o := range opts {
		o(b)
	}

	m := &Model{ID: uuid.NewString(), T: spec.Time, S: spec.Scenario}
	b.emit(m.ID, PhaseSets, 2)

	idx := Product(m.T, m.S)
	dom := RangeDomain(spec.VarBound)
	m.X = newVarFamily(VarX, dom, idx)
	m.Y = newVarFamily(VarY, dom, idx)
	b.emit(m.ID, PhaseVariables, m.X.Len()+m.Y.Len())

	init := spec.ParamInit
	if init == nil {
		v := spec.ParamValue
		init = func(Index) float64 { return v }
	}
	p, err := newParamFamily(ParamP, idx, init)
	if err != nil {
		return nil, err
	}
	m.P = p
	b.emit(m.ID, PhaseParameters, m.P.Len())

	m.objs = make(map[Index]*Objective, len(idx))
	m.names = make(map[string]*Objective, len(idx))
	// One objective per variable index, in the order x was built.
	for _, i := range m.X.Indices() {
		obj := &Objective{
			Name:  ObjectiveName(i),
			Index: i,
			Sense: Minimize,
			Terms: []Term{
				{Param: ParamP, Var: VarX, Index: i},
				{Const: 1, Var: VarY, Index: i},
			},
		}
		if err := m.addObjective(obj); err != nil {
			return nil, err
		}
	}
	b.emit(m.ID, PhaseObjectives, len(m.objs))
	b.emit(m.ID, PhaseBuilt, len(m.objs))
	return m, nil
}

func (m *Model) addObjective(o *Objective) error {
	if _, ok := m.names[o.Name]; ok {
		return &DuplicateNameError{Name: o.Name}
	}
	if _, ok := m.objs[o.Index]; ok {
		return &DuplicateNameError{Name: o.Name}
	}
	m.names[o.Name] = o
	m.objs[o.Index] = o
	m.objOrder = append(m.objOrder, o.Index)
	return nil
}

// Var returns the variable family with the given name.
func (m *Model) Var(name string) (*VarFamily, error) {
	switch name {
	case VarX:
		return m.X, nil
	case VarY:
		return m.Y, nil
	}
	return nil, fmt.Errorf("unknown variable family %q", name)
}

// Param returns the parameter family with the given name.
func (m *Model) Param(name string) (*ParamFamily, error) {
	if name == ParamP {
		return m.P, nil
	}
	return nil, fmt.Errorf("unknown parameter %q", name)
}

// Objectives returns every objective ordered by T then S.
func (m *Model) Objectives() []*Objective {
	out := make([]*Objective, 0, len(m.objOrder))
	for _, i := range m.objOrder {
		out = append(out, m.objs[i])
	}
	return out
}

// Objective returns the objective at idx.
func (m *Model) Objective(idx Index) (*Objective, error) {
	o, ok := m.objs[idx]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ObjectiveName(idx), ErrUnknownObjective)
	}
	return o, nil
}

// ObjectiveByName returns the objective registered under name.
func (m *Model) ObjectiveByName(name string) (*Objective, error) {
	o, ok := m.names[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownObjective)
	}
	return o, nil
}

// ObjectiveNames returns the registered names sorted lexically.
func (m *Model) ObjectiveNames() []string {
	out := make([]string, 0, len(m.names))
	for n := range m.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Evaluate returns P[t,s]*x[t,s] + y[t,s] at idx.
func (m *Model) Evaluate(idx Index) (float64, error) {
	o, err := m.Objective(idx)
	if err != nil {
		return 0, err
	}
	return o.Evaluate(m)
}

// Summary counts the components of a model.
type Summary struct {
	Sets       int `json:"sets"`
	Variables  int `json:"variables"`
	Parameters int `json:"parameters"`
	Objectives int `json:"objectives"`
}

// Summary returns component counts.
func (m *Model) Summary() Summary {
	return Summary{
		Sets:       2,
		Variables:  m.X.Len() + m.Y.Len(),
		Parameters: m.P.Len(),
		Objectives: len(m.objs),
	}
}
