package transport

import (
	"fmt"
	"sort"

	"github.com/kilianp07/langlog/core/factory"
	"github.com/kilianp07/langlog/core/level"
	"github.com/kilianp07/langlog/core/style"
)

// kinds decodes a merged raw map into the typed configuration of its kind.
var kinds = factory.NewRegistry[Config]()

// fieldSets lists the raw field names accepted per kind.
var fieldSets = map[Kind][]string{
	KindConsole: {FieldKind, FieldLevel, FieldIncludeCallee, FieldColorizer},
	KindFile:    {FieldKind, FieldLevel, FieldIncludeCallee, FieldPath, FieldJSONFormat},
}

func init() {
	_ = kinds.Register(string(KindConsole), func(fields map[string]any) (Config, error) {
		var c ConsoleConfig
		if err := factory.Decode(fields, &c); err != nil {
			return nil, err
		}
		return c, nil
	})
	_ = kinds.Register(string(KindFile), func(fields map[string]any) (Config, error) {
		var c FileConfig
		if err := factory.Decode(fields, &c); err != nil {
			return nil, err
		}
		return c, nil
	})
}

// Normalize validates input and completes every configuration with the
// defaults of its kind.
//
// Input may be nil (a single default console configuration), one raw map or
// typed Config, or a slice of them. Elements are checked in order and the
// first invalid one aborts; all unknown fields of that element are reported
// together. A map value of nil counts as absent.
func Normalize(input any, env Environment) ([]Config, error) {
	elems, err := elements(input)
	if err != nil {
		return nil, err
	}

	configs := make([]Config, 0, len(elems))
	consoles := 0
	for i, e := range elems {
		cfg, err := normalize(i, e, env)
		if err != nil {
			return nil, err
		}
		if cfg.Kind() == KindConsole {
			consoles++
		}
		configs = append(configs, cfg)
	}
	if consoles > 1 {
		return nil, &ConfigError{Code: CodeTooManyConsoleConfigurations, Index: -1, Count: consoles}
	}
	return configs, nil
}

func elements(input any) ([]any, error) {
	switch v := input.(type) {
	case nil:
		return []any{Defaults(KindConsole)}, nil
	case map[string]any:
		if v != nil {
			return []any{v}, nil
		}
	case Config:
		return []any{v}, nil
	case []any:
		return v, nil
	case []map[string]any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, nil
	case []Config:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, nil
	}
	return nil, &ConfigError{Code: CodeInvalidConfigurationShape, Index: -1, Value: input}
}

func normalize(i int, elem any, env Environment) (Config, error) {
	var raw map[string]any
	switch v := elem.(type) {
	case map[string]any:
		raw = v
	case Config:
		raw = v.Raw()
	}
	if raw == nil {
		return nil, &ConfigError{Code: CodeInvalidElementType, Index: i, Value: elem}
	}

	kindValue, ok := raw[FieldKind]
	if !ok {
		kindValue = missing{}
	}
	name, _ := kindValue.(string)
	kind := Kind(name)
	if _, known := fieldSets[kind]; !known {
		return nil, &ConfigError{Code: CodeInvalidKind, Index: i, Field: FieldKind, Value: kindValue}
	}
	if kind == KindFile && !env.FileAccess {
		return nil, &ConfigError{Code: CodeUnsupportedInEnvironment, Index: i, Field: FieldKind, Value: kindValue}
	}

	if unknown := unknownFields(kind, raw); len(unknown) > 0 {
		return nil, &ConfigError{Code: CodeUnknownFields, Index: i, Fields: unknown}
	}

	merged := Defaults(kind)
	delete(merged, FieldKind)

	lvl := level.Default
	if v, ok := provided(raw, FieldLevel); ok {
		s, isString := v.(string)
		if !isString {
			return nil, &ConfigError{Code: CodeInvalidLevelType, Index: i, Field: FieldLevel, Value: v}
		}
		parsed, valid := level.Parse(s)
		if !valid {
			return nil, &ConfigError{Code: CodeInvalidLevelValue, Index: i, Field: FieldLevel, Value: v}
		}
		lvl = parsed
	}
	merged[FieldLevel] = lvl

	if v, ok := provided(raw, FieldIncludeCallee); ok {
		if _, isBool := v.(bool); !isBool {
			return nil, &ConfigError{Code: CodeInvalidCalleeType, Index: i, Field: FieldIncludeCallee, Value: v}
		}
		merged[FieldIncludeCallee] = v
	}
	if v, ok := provided(raw, FieldJSONFormat); ok {
		if _, isBool := v.(bool); !isBool {
			return nil, &ConfigError{Code: CodeInvalidJSONType, Index: i, Field: FieldJSONFormat, Value: v}
		}
		merged[FieldJSONFormat] = v
	}
	if v, ok := provided(raw, FieldColorizer); ok {
		if _, isColorizer := v.(style.Colorizer); !isColorizer {
			return nil, &ConfigError{Code: CodeInvalidColorizerType, Index: i, Field: FieldColorizer, Value: v}
		}
		merged[FieldColorizer] = v
	}
	if v, ok := provided(raw, FieldPath); ok {
		if s, isString := v.(string); !isString || s == "" {
			return nil, &ConfigError{Code: CodeInvalidPathType, Index: i, Field: FieldPath, Value: v}
		}
		merged[FieldPath] = v
	}

	cfg, err := kinds.Create(factory.Spec{Kind: string(kind), Fields: merged})
	if err != nil {
		return nil, fmt.Errorf("configuration %d: %w", i, err)
	}
	return cfg, nil
}

func provided(raw map[string]any, field string) (any, bool) {
	v, ok := raw[field]
	return v, ok && v != nil
}

func unknownFields(kind Kind, raw map[string]any) []string {
	known := make(map[string]struct{}, len(fieldSets[kind]))
	for _, f := range fieldSets[kind] {
		known[f] = struct{}{}
	}
	var unknown []string
	for k := range raw {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}
