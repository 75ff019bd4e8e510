package transport

import (
	"github.com/kilianp07/langlog/core/level"
	"github.com/kilianp07/langlog/core/style"
)

// Raw is an unvalidated configuration as supplied by a caller or decoded
// from a configuration file.
type Raw = map[string]any

// Field names accepted in raw configurations.
const (
	FieldKind          = "kind"
	FieldLevel         = "level"
	FieldIncludeCallee = "includeCallee"
	FieldColorizer     = "colorizer"
	FieldPath          = "path"
	FieldJSONFormat    = "jsonFormat"
)

// DefaultPath is the file transport destination when none is configured.
const DefaultPath = "./log/application.log"

// Config is a normalized transport configuration: either ConsoleConfig or
// FileConfig.
type Config interface {
	Kind() Kind
	Threshold() level.Level
	// Raw returns the configuration as a complete raw map.
	Raw() Raw
}

// ConsoleConfig configures the console transport. A typed value is taken as
// complete: Normalize checks it but fills in no defaults, so the zero value
// has an error threshold and no callee. Pass a Raw map, or start from
// DefaultConsole, to get the defaults for omitted fields.
type ConsoleConfig struct {
	Level         level.Level     `json:"level"`
	IncludeCallee bool            `json:"includeCallee"`
	Colorizer     style.Colorizer `json:"colorizer"`
}

func (ConsoleConfig) Kind() Kind { return KindConsole }

func (c ConsoleConfig) Threshold() level.Level { return c.Level }

func (c ConsoleConfig) Raw() Raw {
	return Raw{
		FieldKind:          string(KindConsole),
		FieldLevel:         c.Level.String(),
		FieldIncludeCallee: c.IncludeCallee,
		FieldColorizer:     c.Colorizer,
	}
}

// FileConfig configures a file transport. Like ConsoleConfig it is not
// defaulted: an empty Path is rejected. Use a Raw map or DefaultFile for the
// defaults.
type FileConfig struct {
	Level         level.Level `json:"level"`
	IncludeCallee bool        `json:"includeCallee"`
	Path          string      `json:"path"`
	JSONFormat    bool        `json:"jsonFormat"`
}

func (FileConfig) Kind() Kind { return KindFile }

func (c FileConfig) Threshold() level.Level { return c.Level }

func (c FileConfig) Raw() Raw {
	return Raw{
		FieldKind:          string(KindFile),
		FieldLevel:         c.Level.String(),
		FieldIncludeCallee: c.IncludeCallee,
		FieldPath:          c.Path,
		FieldJSONFormat:    c.JSONFormat,
	}
}

// DefaultConsole returns the console configuration used when a field, or the
// whole input, is omitted.
func DefaultConsole() ConsoleConfig {
	return ConsoleConfig{Level: level.Default, IncludeCallee: true}
}

// DefaultFile returns the default file configuration.
func DefaultFile() FileConfig {
	return FileConfig{Level: level.Default, IncludeCallee: true, Path: DefaultPath}
}

// Defaults returns the default raw configuration of kind k, or nil for an
// unknown kind.
func Defaults(k Kind) Raw {
	switch k {
	case KindConsole:
		return DefaultConsole().Raw()
	case KindFile:
		return DefaultFile().Raw()
	}
	return nil
}

var (
	_ Config = ConsoleConfig{}
	_ Config = FileConfig{}
)
