package metrics

import "github.com/kilianp07/scenariolp/core/factory"

// Config selects the metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks" yaml:"sinks"`
	// PrometheusAddr is the listen address of the /metrics endpoint. Empty
	// disables the server.
	PrometheusAddr string `json:"prometheus_addr" yaml:"prometheus_addr"`
}
