package metrics

import (
	"time"

	"github.com/kilianp07/langlog/core/level"
	"github.com/kilianp07/langlog/core/transport"
)

// Recorder receives the outcome of every transport decision.
type Recorder interface {
	// RecordEntry counts an entry written by a transport.
	RecordEntry(kind transport.Kind, lvl level.Level)
	// RecordFiltered counts an entry dropped by a transport threshold.
	RecordFiltered(kind transport.Kind, lvl level.Level)
	// RecordFailure counts a failed write.
	RecordFailure(kind transport.Kind)
	// RecordWriteDuration observes the time spent in one transport write.
	RecordWriteDuration(kind transport.Kind, d time.Duration)
}

// NopRecorder implements Recorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordEntry(transport.Kind, level.Level)           {}
func (NopRecorder) RecordFiltered(transport.Kind, level.Level)        {}
func (NopRecorder) RecordFailure(transport.Kind)                      {}
func (NopRecorder) RecordWriteDuration(transport.Kind, time.Duration) {}

// MultiRecorder fans out to several recorders.
type MultiRecorder struct {
	Recorders []Recorder
}

// NewMultiRecorder creates a MultiRecorder with the provided recorders.
func NewMultiRecorder(recs ...Recorder) *MultiRecorder {
	return &MultiRecorder{Recorders: recs}
}

func (m *MultiRecorder) RecordEntry(kind transport.Kind, lvl level.Level) {
	for _, r := range m.Recorders {
		r.RecordEntry(kind, lvl)
	}
}

func (m *MultiRecorder) RecordFiltered(kind transport.Kind, lvl level.Level) {
	for _, r := range m.Recorders {
		r.RecordFiltered(kind, lvl)
	}
}

func (m *MultiRecorder) RecordFailure(kind transport.Kind) {
	for _, r := range m.Recorders {
		r.RecordFailure(kind)
	}
}

func (m *MultiRecorder) RecordWriteDuration(kind transport.Kind, d time.Duration) {
	for _, r := range m.Recorders {
		r.RecordWriteDuration(kind, d)
	}
}
