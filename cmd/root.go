package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/langlog/config"
)

// DefaultConfigPath is read when --config is not given. It may be absent.
const DefaultConfigPath = "langlog.yaml"

type rootOptions struct {
	cfgPath string
	dev     bool
}

// NewRootCmd builds the langlog command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "langlog",
		Short:         "Leveled logging to the console and log files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", DefaultConfigPath, "configuration file (yaml or json)")
	root.PersistentFlags().BoolVar(&opts.dev, "dev", false, "trace logger construction and emits")

	root.AddCommand(newValidateCmd(opts), newEmitCmd(opts), newLevelsCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

// load reads the configuration. The default path is optional; an explicit
// one must exist.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	path := o.cfgPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.dev {
		cfg.Dev = true
	}
	return cfg, nil
}
