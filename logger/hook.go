package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/kilianp07/langlog/core/level"
)

// Hook forwards logrus entries to a Logger so code written against logrus
// shares the same transports.
type Hook struct {
	logger *Logger
}

// NewHook returns a logrus hook writing to l.
func NewHook(l *Logger) *Hook {
	return &Hook{logger: l}
}

func (h *Hook) Levels() []logrus.Level { return logrus.AllLevels }

// Fire logs the entry message followed by its fields as one object.
func (h *Hook) Fire(e *logrus.Entry) error {
	args := []any{e.Message}
	if len(e.Data) > 0 {
		fields := make(map[string]any, len(e.Data))
		for k, v := range e.Data {
			if err, ok := v.(error); ok {
				v = err.Error()
			}
			fields[k] = v
		}
		args = append(args, fields)
	}
	return h.logger.Log(fromLogrus(e.Level), args...)
}

func fromLogrus(l logrus.Level) level.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return level.Error
	case logrus.WarnLevel:
		return level.Warn
	case logrus.InfoLevel:
		return level.Info
	case logrus.DebugLevel:
		return level.Debug
	case logrus.TraceLevel:
		return level.Trace
	}
	return level.Info
}

var _ logrus.Hook = (*Hook)(nil)
