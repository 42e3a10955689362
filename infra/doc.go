// Package infra holds the technical adapters of the model builder: the
// zerolog logger and the Prometheus metrics sink. They implement interfaces
// declared under core.
package infra
