package metrics

import (
	"github.com/kilianp07/scenariolp/core/factory"
	coremetrics "github.com/kilianp07/scenariolp/core/metrics"
)

func init() {
	_ = coremetrics.Register("prometheus", func(map[string]any) (coremetrics.BuildRecorder, error) {
		return NewPromSink()
	})

	_ = coremetrics.Register("influx", func(conf map[string]any) (coremetrics.BuildRecorder, error) {
		var c InfluxConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c), nil
	})
}
