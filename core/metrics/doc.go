// Package metrics defines the Recorder interface the facade reports emission
// outcomes to. Recorders are created from configuration through a kind
// registry; infra/metrics registers the built-in "nop" and "prometheus"
// kinds. Several configured recorders are combined in a MultiRecorder.
package metrics
