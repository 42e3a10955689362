// Package metrics defines how model construction is recorded. A
// BuildRecorder receives one BuildEvent per builder phase; sinks are created
// from configuration through NewRecorder, and several sinks combine into a
// MultiSink. Concrete sinks such as the Prometheus one live in infra/metrics
// and register themselves on import.
package metrics
