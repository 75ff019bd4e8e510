package logger

import (
	"io"
	"time"

	"github.com/kilianp07/langlog/core/callee"
	corelogger "github.com/kilianp07/langlog/core/logger"
	coremetrics "github.com/kilianp07/langlog/core/metrics"
	"github.com/kilianp07/langlog/core/transport"
	"github.com/kilianp07/langlog/infra/sink"
)

// Option configures a Logger at construction.
type Option func(o *options)

type options struct {
	env     transport.Environment
	deps    sink.Deps
	now     func() time.Time
	callee  callee.Resolver
	diag    corelogger.Logger
	dev     bool
	metrics coremetrics.Recorder
}

func defaultOptions() options {
	return options{
		env:     transport.DefaultEnvironment,
		now:     time.Now,
		callee:  callee.Stack{Ignore: []string{"github.com/sirupsen/logrus."}},
		metrics: coremetrics.NopRecorder{},
	}
}

// WithEnvironment sets the host capabilities checked during validation.
func WithEnvironment(env transport.Environment) Option {
	return func(o *options) { o.env = env }
}

// WithStdout replaces the console destination for info, debug and trace.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.deps.Stdout = w }
}

// WithStderr replaces the console destination for errors and warnings.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.deps.Stderr = w }
}

// WithWorkDir sets the directory relative file paths are resolved against.
func WithWorkDir(dir string) Option {
	return func(o *options) { o.deps.WorkDir = dir }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithCalleeResolver replaces the stack based callee resolver.
func WithCalleeResolver(r callee.Resolver) Option {
	return func(o *options) { o.callee = r }
}

// WithDiagnostics receives construction and emit traces. It takes
// precedence over WithDev.
func WithDiagnostics(l corelogger.Logger) Option {
	return func(o *options) { o.diag = l }
}

// WithDev turns on development diagnostics, written to the WithStdout
// writer or os.Stdout.
func WithDev(dev bool) Option {
	return func(o *options) { o.dev = dev }
}

// WithMetrics reports every transport decision to r.
func WithMetrics(r coremetrics.Recorder) Option {
	return func(o *options) { o.metrics = r }
}
