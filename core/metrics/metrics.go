package metrics

import (
	"time"

	"github.com/kilianp07/scenariolp/core/model"
)

// BuildEvent is one construction phase of one model.
type BuildEvent struct {
	ModelID  string
	Phase    model.Phase
	Count    int
	Duration time.Duration
	Time     time.Time
}

// FromModelEvent converts a builder event.
func FromModelEvent(e model.Event) BuildEvent {
	return BuildEvent{ModelID: e.ModelID, Phase: e.Phase, Count: e.Count, Duration: e.Duration, Time: e.Time}
}

// BuildRecorder records construction events.
type BuildRecorder interface {
	RecordBuild(ev BuildEvent) error
}

// HandoffEvent summarizes a conversion of a model for a solver.
type HandoffEvent struct {
	ModelID  string
	Problems int
	Rows     int
	Columns  int
	Time     time.Time
}

// HandoffRecorder is implemented by sinks that track solver hand-offs.
type HandoffRecorder interface {
	RecordHandoff(ev HandoffEvent) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordBuild(BuildEvent) error     { return nil }
func (NopSink) RecordHandoff(HandoffEvent) error { return nil }

// Closer is implemented by sinks that hold a client connection.
type Closer interface {
	Close()
}

// MultiSink forwards events to several sinks.
type MultiSink struct {
	Sinks []BuildRecorder
}

// NewMultiSink returns a MultiSink over sinks.
func NewMultiSink(sinks ...BuildRecorder) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordBuild forwards ev and returns the first error.
func (m *MultiSink) RecordBuild(ev BuildEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordBuild(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordHandoff forwards ev to the sinks that implement HandoffRecorder.
func (m *MultiSink) RecordHandoff(ev HandoffEvent) error {
	for _, s := range m.Sinks {
		if r, ok := s.(HandoffRecorder); ok {
			if err := r.RecordHandoff(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes the sinks that implement Closer.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(Closer); ok {
			c.Close()
		}
	}
}
