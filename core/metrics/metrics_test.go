package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/scenariolp/core/factory"
	"github.com/kilianp07/scenariolp/core/model"
)

type countingSink struct {
	builds   int
	handoffs int
	closed   bool
	err      error
}

func (c *countingSink) Close() { c.closed = true }

func (c *countingSink) RecordBuild(BuildEvent) error {
	c.builds++
	return c.err
}

func (c *countingSink) RecordHandoff(HandoffEvent) error {
	c.handoffs++
	return c.err
}

func TestNewRecorder(t *testing.T) {
	s, err := NewRecorder(nil)
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	s, err = NewRecorder([]factory.ModuleConfig{{Type: "nop"}})
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	s, err = NewRecorder([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}})
	require.NoError(t, err)
	m, ok := s.(*MultiSink)
	require.True(t, ok)
	assert.Len(t, m.Sinks, 2)

	_, err = NewRecorder([]factory.ModuleConfig{{Type: "nop"}, {Type: "missing"}})
	assert.ErrorIs(t, err, factory.ErrUnknownType)
}

func TestMultiSinkForwards(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	m := NewMultiSink(a, NopSink{}, b)
	require.NoError(t, m.RecordBuild(FromModelEvent(model.Event{Phase: model.PhaseBuilt, Count: 96})))
	require.NoError(t, m.RecordHandoff(HandoffEvent{Problems: 96}))
	assert.Equal(t, 1, a.builds)
	assert.Equal(t, 1, b.handoffs)

	failing := &countingSink{err: errors.New("boom")}
	m = NewMultiSink(failing, a)
	assert.Error(t, m.RecordBuild(BuildEvent{}))
	assert.Equal(t, 1, a.builds)
}

func TestMultiSinkClose(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	NewMultiSink(a, NopSink{}, b).Close()
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
