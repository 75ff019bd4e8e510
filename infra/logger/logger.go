package logger

import (
	"io"
	"os"

	corelogger "github.com/kilianp07/langlog/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns the diagnostics logger for component. Diagnostics are only
// written in development mode, to w or os.Stdout when w is nil; otherwise a
// NopLogger is returned.
func New(component string, dev bool, w io.Writer) Logger {
	if !dev {
		return NopLogger{}
	}
	if w == nil {
		w = os.Stdout
	}
	return NewZerologLogger(component, w)
}
