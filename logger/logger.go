package logger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/langlog/core/callee"
	"github.com/kilianp07/langlog/core/level"
	corelogger "github.com/kilianp07/langlog/core/logger"
	coremetrics "github.com/kilianp07/langlog/core/metrics"
	"github.com/kilianp07/langlog/core/transport"
	infralogger "github.com/kilianp07/langlog/infra/logger"
	"github.com/kilianp07/langlog/infra/sink"
)

// Component names the diagnostics output of the facade.
const Component = "langlog"

// Logger dispatches log calls to its transports. It is immutable after New
// and safe for concurrent use.
type Logger struct {
	id         string
	configs    []transport.Config
	transports []transport.Transport
	now        func() time.Time
	callee     callee.Resolver
	diag       corelogger.Logger
	metrics    coremetrics.Recorder
}

// New validates input with transport.Normalize and creates one transport
// per resulting configuration. Any error aborts construction.
func New(input any, opts ...Option) (*Logger, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.diag == nil {
		o.diag = infralogger.New(Component, o.dev, o.deps.Stdout)
	}
	if o.metrics == nil {
		o.metrics = coremetrics.NopRecorder{}
	}
	if o.callee == nil {
		o.callee = callee.Static("")
	}

	id := uuid.NewString()
	o.diag.Debugw("received configuration", map[string]any{"logger": id, "input": fmt.Sprintf("%v", input)})

	cfgs, err := transport.Normalize(input, o.env)
	if err != nil {
		o.diag.Errorf("configuration rejected: %v", err)
		return nil, err
	}
	o.diag.Debugf("configuration validated, %d configuration(s)", len(cfgs))

	transports, err := sink.NewAll(cfgs, o.deps)
	if err != nil {
		o.diag.Errorf("transport creation failed: %v", err)
		return nil, err
	}
	o.diag.Debugw("transports created", map[string]any{"logger": id, "count": len(transports)})

	return &Logger{
		id:         id,
		configs:    cfgs,
		transports: transports,
		now:        o.now,
		callee:     o.callee,
		diag:       o.diag,
		metrics:    o.metrics,
	}, nil
}

// ID identifies the Logger in diagnostics.
func (l *Logger) ID() string { return l.id }

// Configurations returns a copy of the normalized configurations.
func (l *Logger) Configurations() []transport.Config {
	out := make([]transport.Config, len(l.configs))
	copy(out, l.configs)
	return out
}

func (l *Logger) Error(args ...any) error { return l.Log(level.Error, args...) }

func (l *Logger) Warn(args ...any) error { return l.Log(level.Warn, args...) }

func (l *Logger) Info(args ...any) error { return l.Log(level.Info, args...) }

func (l *Logger) Debug(args ...any) error { return l.Log(level.Debug, args...) }

func (l *Logger) Trace(args ...any) error { return l.Log(level.Trace, args...) }

// Log sends args at lvl to every transport. Every transport is attempted;
// the failures are joined in the returned error.
func (l *Logger) Log(lvl level.Level, args ...any) error {
	if !lvl.Valid() {
		return fmt.Errorf("invalid level %d", int(lvl))
	}
	e := transport.Entry{Time: l.now(), Level: lvl, Args: args}
	l.diag.Debugw(lvl.String()+" messages", map[string]any{"logger": l.id, "args": len(args)})
	if l.needsCallee(lvl) {
		e.Callee = l.callee.Resolve()
	}

	var errs []error
	for _, t := range l.transports {
		kind := t.Kind()
		if !t.Enabled(lvl) {
			l.metrics.RecordFiltered(kind, lvl)
			continue
		}
		start := time.Now()
		err := t.Write(e)
		l.metrics.RecordWriteDuration(kind, time.Since(start))
		if err != nil {
			l.metrics.RecordFailure(kind)
			l.diag.Warnf("%s transport failed: %v", kind, err)
			errs = append(errs, err)
			continue
		}
		l.metrics.RecordEntry(kind, lvl)
	}
	return errors.Join(errs...)
}

func (l *Logger) needsCallee(lvl level.Level) bool {
	for _, t := range l.transports {
		if t.IncludeCallee() && t.Enabled(lvl) {
			return true
		}
	}
	return false
}
