package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/langlog/core/factory"
	coremetrics "github.com/kilianp07/langlog/core/metrics"
)

// Registerer receives the collectors of recorders built from configuration.
// Tests and the CLI replace it with a private registry.
var Registerer prometheus.Registerer = prometheus.DefaultRegisterer

// init registers built-in metrics recorders.
func init() {
	_ = coremetrics.RegisterRecorder("nop", func(map[string]any) (coremetrics.Recorder, error) {
		return coremetrics.NopRecorder{}, nil
	})

	_ = coremetrics.RegisterRecorder("prometheus", func(conf map[string]any) (coremetrics.Recorder, error) {
		var c struct {
			Namespace string `json:"namespace"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewPromRecorderWithRegistry(c.Namespace, Registerer)
	})
}
