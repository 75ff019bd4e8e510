// Package transport defines the kind-tagged transport configurations, the
// validator that normalizes user input into them, and the runtime contract
// every transport implements.
package transport

import (
	"time"

	"github.com/kilianp07/langlog/core/level"
)

// Kind names a transport destination category.
type Kind string

const (
	KindConsole Kind = "console"
	KindFile    Kind = "file"
)

// Entry is one log call as seen by a transport.
type Entry struct {
	Time   time.Time
	Level  level.Level
	Args   []any
	Callee string
}

// Transport renders and writes entries for one destination.
type Transport interface {
	Kind() Kind
	// Enabled reports whether entries at l pass the transport threshold.
	Enabled(l level.Level) bool
	// IncludeCallee reports whether rendered lines carry the callee.
	IncludeCallee() bool
	// Write renders e and writes it. Entries that do not pass the threshold
	// are dropped without error.
	Write(e Entry) error
}

// Environment describes the capabilities of the host process.
type Environment struct {
	// FileAccess allows file transports. Without it only a console
	// transport may be configured.
	FileAccess bool
}

// DefaultEnvironment is a regular process with file system access.
var DefaultEnvironment = Environment{FileAccess: true}
