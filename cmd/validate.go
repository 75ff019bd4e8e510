package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/langlog/core/transport"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and print the normalized transports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			cfgs, err := transport.Normalize(cfg.Input(cmd.OutOrStdout()), transport.DefaultEnvironment)
			if err != nil {
				return err
			}
			out := make([]map[string]any, len(cfgs))
			for i, c := range cfgs {
				out[i] = printable(c.Raw())
			}

			var data []byte
			switch output {
			case "yaml":
				data, err = yaml.Marshal(out)
			case "json":
				data, err = json.MarshalIndent(out, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown output format %q, use yaml or json", output)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

// printable replaces the colorizer value by its type name.
func printable(raw transport.Raw) map[string]any {
	if c, ok := raw[transport.FieldColorizer]; ok {
		if c == nil {
			delete(raw, transport.FieldColorizer)
		} else {
			raw[transport.FieldColorizer] = fmt.Sprintf("%T", c)
		}
	}
	return raw
}
