package sink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/kilianp07/langlog/core/format"
	"github.com/kilianp07/langlog/core/level"
	"github.com/kilianp07/langlog/core/transport"
)

// File appends entries to a log file. The file is opened for every write
// and closed right after, so there is nothing to release.
type File struct {
	level         level.Level
	includeCallee bool
	jsonFormat    bool
	path          string
	mu            sync.Mutex
}

type record struct {
	Timestamp string  `json:"timestamp"`
	Level     string  `json:"level"`
	Message   string  `json:"message"`
	Callee    *string `json:"callee,omitempty"`
}

var drivePath = regexp.MustCompile(`^[A-Za-z]:/`)

// ResolvePath returns p unchanged when it is absolute, either POSIX style or
// with a drive letter, and joined to workDir otherwise.
func ResolvePath(p, workDir string) string {
	if strings.HasPrefix(p, "/") || drivePath.MatchString(p) || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workDir, p)
}

// NewFile resolves the configured path against workDir and creates its
// directory.
func NewFile(cfg transport.FileConfig, workDir string) (*File, error) {
	path := ResolvePath(cfg.Path, workDir)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &transport.ConfigError{
			Code:  transport.CodeDirectoryCreate,
			Index: -1,
			Field: transport.FieldPath,
			Value: dir,
			Err:   err,
		}
	}
	return &File{
		level:         cfg.Level,
		includeCallee: cfg.IncludeCallee,
		jsonFormat:    cfg.JSONFormat,
		path:          path,
	}, nil
}

// Path returns the resolved destination.
func (f *File) Path() string { return f.path }

func (f *File) Kind() transport.Kind { return transport.KindFile }

func (f *File) Enabled(l level.Level) bool { return f.level.Allows(l) }

func (f *File) IncludeCallee() bool { return f.includeCallee }

func (f *File) Write(e transport.Entry) error {
	if !f.Enabled(e.Level) {
		return nil
	}
	line, err := f.Render(e)
	if err != nil {
		return &transport.WriteError{Path: f.path, Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &transport.WriteError{Path: f.path, Err: err}
	}
	_, err = fh.Write(line)
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &transport.WriteError{Path: f.path, Err: err}
	}
	return nil
}

// Render returns the file line for e, including the trailing newline.
func (f *File) Render(e transport.Entry) ([]byte, error) {
	ts := format.Timestamp(e.Time)
	msg := format.Message(nil, e.Args...)
	if !f.jsonFormat {
		var b strings.Builder
		b.WriteString(ts)
		b.WriteByte(' ')
		b.WriteString(e.Level.Upper())
		b.WriteByte(' ')
		b.WriteString(msg)
		if f.includeCallee && e.Callee != "" {
			b.WriteByte(' ')
			b.WriteString(e.Callee)
		}
		b.WriteByte('\n')
		return []byte(b.String()), nil
	}

	rec := record{Timestamp: ts, Level: e.Level.Upper(), Message: msg}
	if f.includeCallee {
		callee := e.Callee
		rec.Callee = &callee
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
