package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kilianp07/langlog/core/level"
)

// Code identifies the category of a configuration error.
type Code int

const (
	CodeInvalidConfigurationShape Code = iota + 1
	CodeInvalidElementType
	CodeInvalidKind
	CodeUnsupportedInEnvironment
	CodeUnknownFields
	CodeInvalidLevelType
	CodeInvalidLevelValue
	CodeInvalidCalleeType
	CodeInvalidJSONType
	CodeInvalidColorizerType
	CodeInvalidPathType
	CodeTooManyConsoleConfigurations
	CodeDirectoryCreate
)

var (
	ErrInvalidConfigurationShape    = errors.New("invalid configuration shape")
	ErrInvalidElementType           = errors.New("invalid configuration element type")
	ErrInvalidKind                  = errors.New("invalid transport kind")
	ErrUnsupportedInEnvironment     = errors.New("transport unsupported in environment")
	ErrUnknownFields                = errors.New("unknown configuration fields")
	ErrInvalidLevelType             = errors.New("invalid level type")
	ErrInvalidLevelValue            = errors.New("invalid level value")
	ErrInvalidCalleeType            = errors.New("invalid includeCallee type")
	ErrInvalidJSONType              = errors.New("invalid jsonFormat type")
	ErrInvalidColorizerType         = errors.New("invalid colorizer type")
	ErrInvalidPathType              = errors.New("invalid path type")
	ErrTooManyConsoleConfigurations = errors.New("too many console configurations")
	ErrDirectoryCreate              = errors.New("log directory creation failed")
	ErrFileWrite                    = errors.New("log file write failed")
)

var sentinels = map[Code]error{
	CodeInvalidConfigurationShape:    ErrInvalidConfigurationShape,
	CodeInvalidElementType:           ErrInvalidElementType,
	CodeInvalidKind:                  ErrInvalidKind,
	CodeUnsupportedInEnvironment:     ErrUnsupportedInEnvironment,
	CodeUnknownFields:                ErrUnknownFields,
	CodeInvalidLevelType:             ErrInvalidLevelType,
	CodeInvalidLevelValue:            ErrInvalidLevelValue,
	CodeInvalidCalleeType:            ErrInvalidCalleeType,
	CodeInvalidJSONType:              ErrInvalidJSONType,
	CodeInvalidColorizerType:         ErrInvalidColorizerType,
	CodeInvalidPathType:              ErrInvalidPathType,
	CodeTooManyConsoleConfigurations: ErrTooManyConsoleConfigurations,
	CodeDirectoryCreate:              ErrDirectoryCreate,
}

func (c Code) String() string {
	if err, ok := sentinels[c]; ok {
		return err.Error()
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// missing stands for a field that is not present at all.
type missing struct{}

// ConfigError reports an invalid configuration. It wraps the sentinel error
// of its Code, so errors.Is(err, ErrUnknownFields) works.
type ConfigError struct {
	Code Code
	// Index is the position of the offending element, or -1.
	Index int
	Field string
	Value any
	// Fields lists every unknown field of the element.
	Fields []string
	// Count is the number of console configurations found.
	Count int
	Err   error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	if e.Index >= 0 {
		fmt.Fprintf(&b, "configuration %d: ", e.Index)
	}
	switch e.Code {
	case CodeInvalidConfigurationShape:
		fmt.Fprintf(&b, "configuration must be a map or a slice of maps, received: %s", describe(e.Value))
	case CodeInvalidElementType:
		fmt.Fprintf(&b, `"console" or "file" configuration must be a map, received: %s`, describe(e.Value))
	case CodeInvalidKind:
		fmt.Fprintf(&b, `invalid value for the field "kind": %s`, describe(e.Value))
	case CodeUnsupportedInEnvironment:
		b.WriteString(`"file" transports are not available in this environment, only "console" is allowed`)
	case CodeUnknownFields:
		fmt.Fprintf(&b, "unknown fields found, remove them: %s", strings.Join(e.Fields, ", "))
	case CodeInvalidLevelType:
		fmt.Fprintf(&b, `the field "level" must be of type string, received: %s`, describe(e.Value))
	case CodeInvalidLevelValue:
		fmt.Fprintf(&b, `invalid value for the field "level": %s, must be one of the following: %s`,
			describe(e.Value), strings.Join(level.Names(), ","))
	case CodeInvalidCalleeType, CodeInvalidJSONType:
		fmt.Fprintf(&b, "the field %q must be of type bool, received: %s", e.Field, describe(e.Value))
	case CodeInvalidColorizerType:
		fmt.Fprintf(&b, `the field "colorizer" must implement style.Colorizer, received: %T`, e.Value)
	case CodeInvalidPathType:
		fmt.Fprintf(&b, `the field "path" must be a non-empty string, received: %s`, describe(e.Value))
	case CodeTooManyConsoleConfigurations:
		fmt.Fprintf(&b, "only one console configuration may be included, found: %d", e.Count)
	case CodeDirectoryCreate:
		fmt.Fprintf(&b, "create log directory %s", describe(e.Value))
	default:
		b.WriteString(e.Code.String())
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := sentinels[e.Code]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// WriteError reports a failed append to a log file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write log file %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrFileWrite, e.Err} }

func describe(v any) string {
	switch x := v.(type) {
	case missing:
		return "undefined"
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", x)
	}
	return fmt.Sprintf("%v (%T)", v, v)
}
