package model

import "time"

// Phase names a step of model construction.
type Phase string

const (
	PhaseSets       Phase = "sets"
	PhaseVariables  Phase = "variables"
	PhaseParameters Phase = "parameters"
	PhaseObjectives Phase = "objectives"
	PhaseBuilt      Phase = "built"
)

// Event is emitted once per construction phase. Count is the number of
// components created in that phase; for PhaseBuilt it is the objective count.
type Event struct {
	ModelID  string
	Phase    Phase
	Count    int
	Time     time.Time
	Duration time.Duration
}

// Publisher receives construction events. eventbus.TypedBus[Event]
// satisfies it.
type Publisher interface {
	Publish(Event)
}
