package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/kilianp07/langlog/core/level"
	coremetrics "github.com/kilianp07/langlog/core/metrics"
	inframetrics "github.com/kilianp07/langlog/infra/metrics"
	"github.com/kilianp07/langlog/logger"
)

type emitOptions struct {
	jsonArgs    bool
	errMsg      string
	showMetrics bool
}

func newEmitCmd(root *rootOptions) *cobra.Command {
	opts := &emitOptions{}
	cmd := &cobra.Command{
		Use:   "emit <level> <message...>",
		Short: "Log a message through the configured transports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, root, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.jsonArgs, "json-args", false, "decode every message argument as JSON when possible")
	cmd.Flags().StringVar(&opts.errMsg, "error", "", "append an error carrying a stack trace")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "print the emission metrics afterwards")
	return cmd
}

func runEmit(cmd *cobra.Command, root *rootOptions, opts *emitOptions, args []string) error {
	lvl, ok := level.Parse(args[0])
	if !ok {
		return fmt.Errorf("unknown level %q, must be one of %s", args[0], strings.Join(level.Names(), ","))
	}
	cfg, err := root.load(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	inframetrics.Registerer = reg
	defer func() { inframetrics.Registerer = prometheus.DefaultRegisterer }()
	rec, err := coremetrics.NewRecorder(cfg.Metrics.Recorders)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if opts.showMetrics && len(cfg.Metrics.Recorders) == 0 {
		if rec, err = inframetrics.NewPromRecorderWithRegistry("", reg); err != nil {
			return err
		}
	}

	stdout := cmd.OutOrStdout()
	lopts := []logger.Option{
		logger.WithStdout(stdout),
		logger.WithStderr(cmd.ErrOrStderr()),
		logger.WithMetrics(rec),
		logger.WithDev(cfg.Dev),
	}
	l, err := logger.New(cfg.Input(stdout), lopts...)
	if err != nil {
		return err
	}

	values := messageArgs(args[1:], opts.jsonArgs)
	if opts.errMsg != "" {
		values = append(values, errors.New(opts.errMsg))
	}
	if err := l.Log(lvl, values...); err != nil {
		return err
	}
	if opts.showMetrics {
		return writeMetrics(stdout, reg)
	}
	return nil
}

func messageArgs(args []string, decode bool) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
		if !decode {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(a), &v); err == nil {
			out[i] = v
		}
	}
	return out
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
