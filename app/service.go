// Package app wires configuration, logging, metrics and the model builder
// into a runnable service.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kilianp07/scenariolp/config"
	coremetrics "github.com/kilianp07/scenariolp/core/metrics"
	"github.com/kilianp07/scenariolp/core/model"
	"github.com/kilianp07/scenariolp/core/standard"
	"github.com/kilianp07/scenariolp/infra/logger"
	"github.com/kilianp07/scenariolp/infra/metrics"
	"github.com/kilianp07/scenariolp/internal/eventbus"
)

// Service builds the configured scenario model and hands it off.
type Service struct {
	spec     model.Spec
	sink     coremetrics.BuildRecorder
	bus      *eventbus.Bus[model.Event]
	log      logger.Logger
	promAddr string

	closeOnce sync.Once
}

// Result is what one Build produced.
type Result struct {
	Model    *model.Model
	Problems []standard.Problem
}

// New creates a Service from cfg.
func New(cfg *config.Config) (*Service, error) {
	spec, err := cfg.Model.Spec()
	if err != nil {
		return nil, fmt.Errorf("model spec: %w", err)
	}
	sink, err := coremetrics.NewRecorder(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{
		spec:     spec,
		sink:     sink,
		bus:      eventbus.New[model.Event](),
		log:      logger.NewWithLevel("service", cfg.Log.Level),
		promAddr: cfg.Metrics.PrometheusAddr,
	}, nil
}

// Build assembles one model, records its events and converts every
// objective for a solver.
func (s *Service) Build(ctx context.Context) (Result, error) {
	cctx, cancel := context.WithCancel(ctx)
	done := metrics.StartEventCollector(cctx, s.bus, s.sink, s.log)
	defer func() {
		cancel()
		done.Wait()
	}()

	m, err := model.New(s.spec, model.WithPublisher(s.bus), model.WithLogger(s.log))
	if err != nil {
		return Result{}, fmt.Errorf("build model: %w", err)
	}
	sum := m.Summary()
	s.log.Infof("model %s built: %s %s, %d variables, %d parameters, %d objectives",
		m.ID, m.T, m.S, sum.Variables, sum.Parameters, sum.Objectives)

	probs, err := standard.FromModel(m)
	if err != nil {
		return Result{}, fmt.Errorf("solver hand-off: %w", err)
	}
	ev := coremetrics.HandoffEvent{ModelID: m.ID, Problems: len(probs), Time: time.Now()}
	if len(probs) > 0 {
		ev.Rows, ev.Columns = probs[0].Dims()
	}
	if r, ok := s.sink.(coremetrics.HandoffRecorder); ok {
		if err := r.RecordHandoff(ev); err != nil {
			s.log.Warnf("record hand-off: %v", err)
		}
	}
	s.log.Infof("hand-off ready: %d problems of %dx%d", ev.Problems, ev.Rows, ev.Columns)
	return Result{Model: m, Problems: probs}, nil
}

// Run builds the model once. With a Prometheus address configured it then
// serves metrics until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if _, err := s.Build(ctx); err != nil {
		return err
	}
	if s.promAddr == "" {
		return nil
	}
	s.log.Infof("serving metrics on %s", s.promAddr)
	return metrics.StartPromServer(ctx, s.promAddr)
}

// Close shuts the event bus down and closes sinks holding a client.
func (s *Service) Close() error {
	s.closeOnce.Do(func() {
		s.bus.Close()
		if c, ok := s.sink.(coremetrics.Closer); ok {
			c.Close()
		}
	})
	return nil
}
