package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "langlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLevels(t *testing.T) {
	out, _, err := execute(t, "levels")
	require.NoError(t, err)
	assert.Equal(t, "error\nwarn\ninfo\ndebug\ntrace\n", out)
}

func TestValidate_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `color:
  mode: never
transports:
  - kind: console
    level: debug
  - kind: file
    path: `+filepath.Join(dir, "app.log")+`
`)
	out, _, err := execute(t, "validate", "-c", path, "--output", "json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, map[string]any{"kind": "console", "level": "debug", "includeCallee": true}, got[0])
	assert.Equal(t, "file", got[1]["kind"])
	assert.Equal(t, false, got[1]["jsonFormat"])
}

func TestValidate_ColorizerShownByType(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "color:\n  mode: always\n")
	out, _, err := execute(t, "validate", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: console")
	assert.Contains(t, out, "*colorizer.Lipgloss")
}

func TestValidate_Rejects(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "transports:\n  - kind: console\n  - kind: console\n")
	_, _, err := execute(t, "validate", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one console configuration may be included, found: 2")

	_, _, err = execute(t, "validate", "-c", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, _, err = execute(t, "validate", "-c", writeConfig(t, dir, "color:\n  mode: never\n"), "-o", "xml")
	assert.Error(t, err)
}

func TestEmit_FileTransport(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "app.log")
	path := writeConfig(t, dir, `color:
  mode: never
transports:
  - kind: console
    includeCallee: false
  - kind: file
    path: `+logPath+`
    jsonFormat: true
    includeCallee: false
`)
	out, _, err := execute(t, "emit", "-c", path, "--json-args", "info", "started", `{"port":8080}`, "3", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "  INFO started {\n    \"port\": 8080\n} 3 true\n")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "started {\n    \"port\": 8080\n} 3 true", rec["message"])
	_, hasCallee := rec["callee"]
	assert.False(t, hasCallee)
}

func TestEmit_ErrorsGoToStderr(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "color:\n  mode: never\ntransports:\n  kind: console\n  includeCallee: false\n")
	out, errOut, err := execute(t, "emit", "-c", path, "error", "db down", "--error", "connection refused")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "  ERROR db down connection refused\n")
	assert.Contains(t, errOut, "emit.go")
}

func TestEmit_Metrics(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "color:\n  mode: never\ntransports:\n  kind: console\n  level: warn\n")
	out, _, err := execute(t, "emit", "-c", path, "--metrics", "info", "quiet")
	require.NoError(t, err)
	assert.Contains(t, out, `langlog_filtered_total{kind="console",level="info"} 1`)
	assert.NotContains(t, out, "INFO quiet")
}

func TestEmit_Dev(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "color:\n  mode: never\n")
	out, _, err := execute(t, "emit", "-c", path, "--dev", "info", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "[langlog] received configuration")
	assert.Contains(t, out, "INFO hello")
}

func TestEmit_UnknownLevel(t *testing.T) {
	_, _, err := execute(t, "emit", "loud", "x")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "error,warn,info,debug,trace"))
}

func TestMessageArgs(t *testing.T) {
	assert.Equal(t, []any{"a", "1"}, messageArgs([]string{"a", "1"}, false))
	assert.Equal(t, []any{"a", float64(1), []any{true}}, messageArgs([]string{"a", "1", "[true]"}, true))
}
