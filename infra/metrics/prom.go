package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/scenariolp/core/metrics"
	"github.com/kilianp07/scenariolp/core/model"
)

// PromSink records builder events in Prometheus metrics.
type PromSink struct {
	builds     prometheus.Counter
	components *prometheus.GaugeVec
	duration   prometheus.Histogram
	problems   prometheus.Gauge
}

// NewPromSink registers the sink metrics on the default registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the sink metrics on reg. Metrics already
// registered by an earlier sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scenariolp_builds_total",
			Help: "Number of models built",
		}),
		components: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scenariolp_components",
			Help: "Components created by the last build, per phase",
		}, []string{"phase"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scenariolp_build_duration_seconds",
			Help:    "Time to assemble a model",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		problems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scenariolp_handoff_problems",
			Help: "Problems produced by the last solver hand-off",
		}),
	}
	var err error
	if s.builds, err = register(reg, s.builds); err != nil {
		return nil, err
	}
	if s.components, err = register(reg, s.components); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, s.duration); err != nil {
		return nil, err
	}
	if s.problems, err = register(reg, s.problems); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordBuild updates the per-phase gauge. The built phase also counts the
// build and observes its duration.
func (s *PromSink) RecordBuild(ev coremetrics.BuildEvent) error {
	if ev.Phase == model.PhaseBuilt {
		s.builds.Inc()
		s.duration.Observe(ev.Duration.Seconds())
		return nil
	}
	s.components.WithLabelValues(string(ev.Phase)).Set(float64(ev.Count))
	return nil
}

// RecordHandoff sets the hand-off gauge.
func (s *PromSink) RecordHandoff(ev coremetrics.HandoffEvent) error {
	s.problems.Set(float64(ev.Problems))
	return nil
}
