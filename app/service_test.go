package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/scenariolp/config"
	"github.com/kilianp07/scenariolp/core/factory"
	coremetrics "github.com/kilianp07/scenariolp/core/metrics"
	"github.com/kilianp07/scenariolp/core/model"
)

type recorder struct {
	ch       chan coremetrics.BuildEvent
	handoffs []coremetrics.HandoffEvent
}

func (r *recorder) RecordBuild(ev coremetrics.BuildEvent) error {
	r.ch <- ev
	return nil
}

func (r *recorder) RecordHandoff(ev coremetrics.HandoffEvent) error {
	r.handoffs = append(r.handoffs, ev)
	return nil
}

func TestServiceBuild(t *testing.T) {
	cfg := config.Default()
	svc, err := New(&cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	rec := &recorder{ch: make(chan coremetrics.BuildEvent, 16)}
	svc.sink = rec

	res, err := svc.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 96, res.Model.Summary().Objectives)
	assert.Len(t, res.Problems, 96)

	require.Len(t, rec.ch, 5)
	var last coremetrics.BuildEvent
	for len(rec.ch) > 0 {
		last = <-rec.ch
	}
	assert.Equal(t, model.PhaseBuilt, last.Phase)
	assert.Equal(t, res.Model.ID, last.ModelID)

	require.Len(t, rec.handoffs, 1)
	assert.Equal(t, res.Model.ID, rec.handoffs[0].ModelID)
	assert.Equal(t, 4, rec.handoffs[0].Rows)
	assert.Equal(t, 8, rec.handoffs[0].Columns)
}

func TestServiceRunWithoutServer(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Scenario.Last = 2
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "nop"}}
	svc, err := New(&cfg)
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))
	require.NoError(t, svc.Close())
	require.NoError(t, svc.Close())
}

func TestServiceEmptyModel(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Time = config.RangeConfig{First: 3, Last: 2}
	svc, err := New(&cfg)
	require.NoError(t, err)
	res, err := svc.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Problems)
}

func TestServiceInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Time.First = 0
	_, err := New(&cfg)
	var re *model.InvalidRangeError
	assert.ErrorAs(t, err, &re)

	cfg = config.Default()
	cfg.Metrics.Sinks = []factory.ModuleConfig{{Type: "unknown"}}
	_, err = New(&cfg)
	assert.ErrorIs(t, err, factory.ErrUnknownType)
}
