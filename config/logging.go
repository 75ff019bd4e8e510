package config

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/kilianp07/langlog/core/style"
	"github.com/kilianp07/langlog/core/transport"
	"github.com/kilianp07/langlog/infra/colorizer"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorConfig selects the colorizer given to the console transport. A
// colorizer is a value, not a setting, so files select it by mode.
type ColorConfig struct {
	// Mode is "auto" (color when the output is a terminal), "always" or
	// "never".
	Mode string `json:"mode"`
}

// SetDefaults applies sane defaults.
func (c *ColorConfig) SetDefaults() {
	if c.Mode == "" {
		c.Mode = ColorAuto
	}
}

// Validate checks the mode.
func (c ColorConfig) Validate() error {
	switch c.Mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("unknown color mode %q", c.Mode)
}

// Colorizer returns the colorizer for output w, or nil for plain output.
func (c ColorConfig) Colorizer(w io.Writer) style.Colorizer {
	switch c.Mode {
	case ColorAlways:
		return colorizer.NewWithProfile(termenv.ANSI)
	case ColorAuto:
		if termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii {
			return nil
		}
		return colorizer.New(w)
	}
	return nil
}

// Input returns the transports with the configured colorizer set on the
// console configuration, unless it already names one. The receiver is not
// modified.
func (c Config) Input(w io.Writer) any {
	col := c.Color.Colorizer(w)
	if col == nil {
		return c.Transports
	}
	switch v := c.Transports.(type) {
	case nil:
		return transport.Raw{transport.FieldKind: string(transport.KindConsole), transport.FieldColorizer: col}
	case map[string]any:
		return withColorizer(v, col)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = e
			if m, ok := e.(map[string]any); ok {
				out[i] = withColorizer(m, col)
			}
		}
		return out
	}
	return c.Transports
}

func withColorizer(m map[string]any, col style.Colorizer) map[string]any {
	if m == nil || m[transport.FieldKind] != string(transport.KindConsole) {
		return m
	}
	if v, ok := m[transport.FieldColorizer]; ok && v != nil {
		return m
	}
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[transport.FieldColorizer] = col
	return out
}
