package sink

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/langlog/core/level"
	"github.com/kilianp07/langlog/core/transport"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/var/log/app.log", ResolvePath("/var/log/app.log", "/work"))
	assert.Equal(t, "C:/logs/app.log", ResolvePath("C:/logs/app.log", "/work"))
	assert.Equal(t, filepath.Join("/work", "log", "application.log"), ResolvePath(transport.DefaultPath, "/work"))
}

func TestFile_CreatesDirectoryAndAppends(t *testing.T) {
	dir := t.TempDir()
	rel := filepath.Join(uuid.NewString(), "nested", "test.log")

	f, err := NewFile(transport.FileConfig{Level: level.Info, IncludeCallee: true, Path: rel}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, rel), f.Path())
	assert.DirExists(t, filepath.Dir(f.Path()))

	require.NoError(t, f.Write(entry(level.Info, "first")))
	require.NoError(t, f.Write(entry(level.Debug, "filtered")))
	require.NoError(t, f.Write(entry(level.Error, "second", 2)))

	// A second transport on the same path must not truncate.
	again, err := NewFile(transport.FileConfig{Level: level.Info, Path: rel}, dir)
	require.NoError(t, err)
	require.NoError(t, again.Write(entry(level.Warn, "third")))

	assert.Equal(t, []string{
		"2024-03-05 09:07:03 UTC+0 INFO first main.go:12",
		"2024-03-05 09:07:03 UTC+0 ERROR second 2 main.go:12",
		"2024-03-05 09:07:03 UTC+0 WARN third",
	}, readLines(t, f.Path()))
}

func TestFile_JSONLines(t *testing.T) {
	dir := t.TempDir()
	with, err := NewFile(transport.FileConfig{Level: level.Trace, IncludeCallee: true, JSONFormat: true, Path: "with.log"}, dir)
	require.NoError(t, err)
	without, err := NewFile(transport.FileConfig{Level: level.Trace, JSONFormat: true, Path: "without.log"}, dir)
	require.NoError(t, err)

	e := entry(level.Debug, "a <b>", map[string]any{"k": "v"})
	require.NoError(t, with.Write(e))
	require.NoError(t, without.Write(e))

	lines := readLines(t, with.Path())
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"message":"a <b> {`)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "2024-03-05 09:07:03 UTC+0", rec["timestamp"])
	assert.Equal(t, "main.go:12", rec["callee"])
	assert.Equal(t, "a <b> {\n    \"k\": \"v\"\n}", rec["message"])

	lines = readLines(t, without.Path())
	require.Len(t, lines, 1)
	rec = nil
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	_, ok := rec["callee"]
	assert.False(t, ok)
}

func TestFile_DirectoryCreateFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewFile(transport.FileConfig{Path: filepath.Join(blocker, "sub", "app.log")}, dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrDirectoryCreate)
}

func TestFile_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(transport.FileConfig{Level: level.Info, Path: "app.log"}, dir)
	require.NoError(t, err)
	// A directory at the file path makes every append fail.
	require.NoError(t, os.Mkdir(f.Path(), 0o755))

	err = f.Write(entry(level.Info, "x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrFileWrite)
	var we *transport.WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, f.Path(), we.Path)
}

func TestFile_ConcurrentWrites(t *testing.T) {
	f, err := NewFile(transport.FileConfig{Level: level.Info, Path: "c.log"}, t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, f.Write(entry(level.Info, "line", i)))
		}(i)
	}
	wg.Wait()

	lines := readLines(t, f.Path())
	assert.Len(t, lines, 20)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "2024-03-05 09:07:03 UTC+0 INFO line "))
	}
}
