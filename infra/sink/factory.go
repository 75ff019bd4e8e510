package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/kilianp07/langlog/core/transport"
)

// Deps are the process resources transports write to. Zero values default
// to the standard streams and the current working directory.
type Deps struct {
	Stdout  io.Writer
	Stderr  io.Writer
	WorkDir string
}

func (d Deps) withDefaults() (Deps, error) {
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return d, fmt.Errorf("working directory: %w", err)
		}
		d.WorkDir = wd
	}
	return d, nil
}

// New creates the transport for a normalized configuration.
func New(cfg transport.Config, deps Deps) (transport.Transport, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	switch c := cfg.(type) {
	case transport.ConsoleConfig:
		return NewConsole(c, deps.Stdout, deps.Stderr), nil
	case transport.FileConfig:
		f, err := NewFile(c, deps.WorkDir)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("unsupported transport configuration %T", cfg)
}

// NewAll creates one transport per configuration, in order.
func NewAll(cfgs []transport.Config, deps Deps) ([]transport.Transport, error) {
	out := make([]transport.Transport, 0, len(cfgs))
	for i, cfg := range cfgs {
		t, err := New(cfg, deps)
		if err != nil {
			return nil, fmt.Errorf("transport %d (%s): %w", i, cfg.Kind(), err)
		}
		out = append(out, t)
	}
	return out, nil
}
