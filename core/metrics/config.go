package metrics

import "github.com/kilianp07/langlog/core/factory"

// Config defines settings for metrics recorders.
type Config struct {
	Recorders []factory.Spec `json:"recorders"`
}
