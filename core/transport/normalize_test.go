package transport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/langlog/core/level"
	"github.com/kilianp07/langlog/core/style"
)

func TestNormalize_NilInputYieldsDefaultConsole(t *testing.T) {
	cfgs, err := Normalize(nil, DefaultEnvironment)
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	assert.Equal(t, DefaultConsole(), cfgs[0])
}

func TestNormalize_FillsDefaults(t *testing.T) {
	cfgs, err := Normalize(Raw{"kind": "file"}, DefaultEnvironment)
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	assert.Equal(t, FileConfig{Level: level.Info, IncludeCallee: true, Path: DefaultPath}, cfgs[0])
}

func TestNormalize_KeepsProvidedValuesAndOrder(t *testing.T) {
	cfgs, err := Normalize([]any{
		Raw{"kind": "file", "path": "a.log", "jsonFormat": true, "level": "trace"},
		Raw{"kind": "console", "level": "error", "includeCallee": false, "colorizer": style.Tagged{}},
		Raw{"kind": "file", "path": "b.log", "includeCallee": false},
	}, DefaultEnvironment)
	require.NoError(t, err)
	require.Len(t, cfgs, 3)

	assert.Equal(t, FileConfig{Level: level.Trace, IncludeCallee: true, Path: "a.log", JSONFormat: true}, cfgs[0])
	assert.Equal(t, ConsoleConfig{Level: level.Error, IncludeCallee: false, Colorizer: style.Tagged{}}, cfgs[1])
	assert.Equal(t, FileConfig{Level: level.Info, IncludeCallee: false, Path: "b.log"}, cfgs[2])
}

func TestNormalize_NilValuesCountAsAbsent(t *testing.T) {
	cfgs, err := Normalize(Raw{"kind": "console", "level": nil, "includeCallee": nil, "colorizer": nil}, DefaultEnvironment)
	require.NoError(t, err)
	assert.Equal(t, DefaultConsole(), cfgs[0])
}

func TestNormalize_AcceptsTypedConfigs(t *testing.T) {
	in := []Config{
		FileConfig{Level: level.Debug, Path: "x.log"},
		ConsoleConfig{Level: level.Warn},
	}
	cfgs, err := Normalize(in, DefaultEnvironment)
	require.NoError(t, err)
	assert.Equal(t, in, cfgs)

	cfgs, err = Normalize([]map[string]any{{"kind": "console"}}, DefaultEnvironment)
	require.NoError(t, err)
	assert.Equal(t, []Config{DefaultConsole()}, cfgs)
}

func TestNormalize_TypedConfigsAreNotDefaulted(t *testing.T) {
	cfgs, err := Normalize(ConsoleConfig{}, DefaultEnvironment)
	require.NoError(t, err)
	assert.Equal(t, []Config{ConsoleConfig{Level: level.Error}}, cfgs)

	_, err = Normalize(FileConfig{}, DefaultEnvironment)
	assert.ErrorIs(t, err, ErrInvalidPathType)

	cfgs, err = Normalize(DefaultFile(), DefaultEnvironment)
	require.NoError(t, err)
	assert.Equal(t, []Config{DefaultFile()}, cfgs)
}

func TestNormalize_EmptySequence(t *testing.T) {
	cfgs, err := Normalize([]any{}, DefaultEnvironment)
	require.NoError(t, err)
	assert.Empty(t, cfgs)
}

func TestNormalize_Errors(t *testing.T) {
	var nilMap map[string]any
	tests := []struct {
		name  string
		input any
		env   Environment
		want  error
		code  Code
		index int
	}{
		{"shape string", "console", DefaultEnvironment, ErrInvalidConfigurationShape, CodeInvalidConfigurationShape, -1},
		{"shape number", 42, DefaultEnvironment, ErrInvalidConfigurationShape, CodeInvalidConfigurationShape, -1},
		{"shape nil map", nilMap, DefaultEnvironment, ErrInvalidConfigurationShape, CodeInvalidConfigurationShape, -1},
		{"element string", []any{"console"}, DefaultEnvironment, ErrInvalidElementType, CodeInvalidElementType, 0},
		{"element nil", []any{Raw{"kind": "console"}, nil}, DefaultEnvironment, ErrInvalidElementType, CodeInvalidElementType, 1},
		{"kind missing", Raw{"level": "info"}, DefaultEnvironment, ErrInvalidKind, CodeInvalidKind, 0},
		{"kind unknown", Raw{"kind": "syslog"}, DefaultEnvironment, ErrInvalidKind, CodeInvalidKind, 0},
		{"kind not string", Raw{"kind": 1}, DefaultEnvironment, ErrInvalidKind, CodeInvalidKind, 0},
		{"file without access", Raw{"kind": "file"}, Environment{}, ErrUnsupportedInEnvironment, CodeUnsupportedInEnvironment, 0},
		{"unknown field", Raw{"kind": "console", "unknownField": true}, DefaultEnvironment, ErrUnknownFields, CodeUnknownFields, 0},
		{"path on console", Raw{"kind": "console", "path": "a.log"}, DefaultEnvironment, ErrUnknownFields, CodeUnknownFields, 0},
		{"level type", Raw{"kind": "console", "level": 2}, DefaultEnvironment, ErrInvalidLevelType, CodeInvalidLevelType, 0},
		{"level value", Raw{"kind": "console", "level": "verbose"}, DefaultEnvironment, ErrInvalidLevelValue, CodeInvalidLevelValue, 0},
		{"callee type", Raw{"kind": "file", "includeCallee": "yes"}, DefaultEnvironment, ErrInvalidCalleeType, CodeInvalidCalleeType, 0},
		{"json type", Raw{"kind": "file", "jsonFormat": 1}, DefaultEnvironment, ErrInvalidJSONType, CodeInvalidJSONType, 0},
		{"colorizer type", Raw{"kind": "console", "colorizer": "red"}, DefaultEnvironment, ErrInvalidColorizerType, CodeInvalidColorizerType, 0},
		{"path type", Raw{"kind": "file", "path": 3}, DefaultEnvironment, ErrInvalidPathType, CodeInvalidPathType, 0},
		{"path empty", Raw{"kind": "file", "path": ""}, DefaultEnvironment, ErrInvalidPathType, CodeInvalidPathType, 0},
		{"two consoles", []any{Raw{"kind": "console"}, Raw{"kind": "console"}}, DefaultEnvironment, ErrTooManyConsoleConfigurations, CodeTooManyConsoleConfigurations, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgs, err := Normalize(tt.input, tt.env)
			require.Error(t, err)
			assert.Nil(t, cfgs)
			assert.ErrorIs(t, err, tt.want)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.code, ce.Code)
			assert.Equal(t, tt.index, ce.Index)
		})
	}
}

func TestNormalize_UnknownFieldsListedSorted(t *testing.T) {
	_, err := Normalize(Raw{"kind": "file", "zeta": 1, "alpha": 2, "jsonFormat": true}, DefaultEnvironment)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"alpha", "zeta"}, ce.Fields)
	assert.Contains(t, err.Error(), "alpha, zeta")
}

func TestNormalize_FirstInvalidElementAborts(t *testing.T) {
	_, err := Normalize([]any{
		Raw{"kind": "console"},
		Raw{"kind": "file", "level": "loud"},
		Raw{"kind": "file", "bogus": true},
	}, DefaultEnvironment)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CodeInvalidLevelValue, ce.Code)
	assert.Equal(t, 1, ce.Index)
}

func TestNormalize_ConsoleCount(t *testing.T) {
	_, err := Normalize([]any{
		Raw{"kind": "console"},
		Raw{"kind": "file"},
		Raw{"kind": "console"},
		Raw{"kind": "console", "level": "debug"},
	}, DefaultEnvironment)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3, ce.Count)
	assert.Equal(t, "only one console configuration may be included, found: 3", err.Error())
}

func TestConfigError_Messages(t *testing.T) {
	_, err := Normalize(Raw{"level": "info"}, DefaultEnvironment)
	assert.Equal(t, `configuration 0: invalid value for the field "kind": undefined`, err.Error())

	_, err = Normalize([]any{nil}, DefaultEnvironment)
	assert.Equal(t, `configuration 0: "console" or "file" configuration must be a map, received: null`, err.Error())

	_, err = Normalize(Raw{"kind": "console", "level": "loud"}, DefaultEnvironment)
	assert.Equal(t, `configuration 0: invalid value for the field "level": "loud", must be one of the following: error,warn,info,debug,trace`, err.Error())

	_, err = Normalize(Raw{"kind": "console", "includeCallee": 1}, DefaultEnvironment)
	assert.Equal(t, `configuration 0: the field "includeCallee" must be of type bool, received: 1 (int)`, err.Error())
}

func TestWriteError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &WriteError{Path: "/tmp/x.log", Err: cause}
	assert.ErrorIs(t, err, ErrFileWrite)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `write log file "/tmp/x.log": disk full`, err.Error())
}

func TestRawRoundTrip(t *testing.T) {
	want := FileConfig{Level: level.Warn, IncludeCallee: false, Path: "/var/log/app.log", JSONFormat: true}
	cfgs, err := Normalize(want.Raw(), DefaultEnvironment)
	require.NoError(t, err)
	assert.Equal(t, want, cfgs[0])
	assert.Equal(t, "warn", want.Raw()[FieldLevel])
}
