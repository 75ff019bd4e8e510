package sink

import (
	"io"
	"strings"
	"sync"

	"github.com/kilianp07/langlog/core/format"
	"github.com/kilianp07/langlog/core/level"
	"github.com/kilianp07/langlog/core/style"
	"github.com/kilianp07/langlog/core/transport"
)

// Console writes entries to stdout, or stderr for errors and warnings.
type Console struct {
	level         level.Level
	includeCallee bool
	colorizer     style.Colorizer

	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

// NewConsole returns a console transport for cfg. Without a colorizer the
// output is plain text.
func NewConsole(cfg transport.ConsoleConfig, stdout, stderr io.Writer) *Console {
	return &Console{
		level:         cfg.Level,
		includeCallee: cfg.IncludeCallee,
		colorizer:     cfg.Colorizer,
		stdout:        stdout,
		stderr:        stderr,
	}
}

func (c *Console) Kind() transport.Kind { return transport.KindConsole }

func (c *Console) Enabled(l level.Level) bool { return c.level.Allows(l) }

func (c *Console) IncludeCallee() bool { return c.includeCallee }

func (c *Console) Write(e transport.Entry) error {
	if !c.Enabled(e.Level) {
		return nil
	}
	line := c.Render(e)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.writer(e.Level), line)
	return err
}

// Render returns the console line for e, including the trailing newline.
func (c *Console) Render(e transport.Entry) string {
	col := style.OrNone(c.colorizer)
	var b strings.Builder
	b.WriteString(col.Grey(format.Timestamp(e.Time)))
	b.WriteString(c.badge(e.Level))
	b.WriteByte(' ')
	b.WriteString(format.Message(c.colorizer, e.Args...))
	if c.includeCallee && e.Callee != "" {
		b.WriteByte(' ')
		b.WriteString(col.Grey(e.Callee))
	}
	b.WriteByte('\n')
	return b.String()
}

// badge returns the padding and the styled upper-case level name.
func (c *Console) badge(l level.Level) string {
	name := l.Upper()
	if c.colorizer == nil {
		return "  " + name
	}
	col := c.colorizer
	switch l {
	case level.Error:
		return "  " + col.BgRed(col.White(col.Bold(name)))
	case level.Warn:
		return "   " + col.BgYellow(col.Black(col.Bold(name)))
	case level.Info:
		return "   " + col.White(name)
	case level.Debug:
		return "  " + col.Cyan(name)
	case level.Trace:
		return "  " + col.Green(name)
	}
	return "  " + name
}

func (c *Console) writer(l level.Level) io.Writer {
	if l == level.Error || l == level.Warn {
		return c.stderr
	}
	return c.stdout
}
