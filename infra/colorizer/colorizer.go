// Package colorizer provides an ANSI implementation of style.Colorizer on
// top of lipgloss.
package colorizer

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kilianp07/langlog/core/style"
)

// Lipgloss renders the named styles with ANSI escape sequences. The color
// profile decides how much of the styling survives: termenv.Ascii disables
// it entirely.
type Lipgloss struct {
	red, green, yellow, blue, cyan, white, grey, black lipgloss.Style
	bold, bgRed, bgYellow                              lipgloss.Style
}

// New returns a colorizer whose profile is detected from w. Writers that are
// not terminals get plain output.
func New(w io.Writer) *Lipgloss {
	return build(lipgloss.NewRenderer(w))
}

// NewWithProfile returns a colorizer using the given profile regardless of
// the output.
func NewWithProfile(p termenv.Profile) *Lipgloss {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return build(r)
}

func build(r *lipgloss.Renderer) *Lipgloss {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	fg := func(c string) lipgloss.Style { return base.Foreground(lipgloss.Color(c)) }
	bg := func(c string) lipgloss.Style { return base.Background(lipgloss.Color(c)) }
	return &Lipgloss{
		red:      fg("1"),
		green:    fg("2"),
		yellow:   fg("3"),
		blue:     fg("4"),
		cyan:     fg("6"),
		white:    fg("7"),
		grey:     fg("8"),
		black:    fg("0"),
		bold:     base.Bold(true),
		bgRed:    bg("1"),
		bgYellow: bg("3"),
	}
}

// render styles every line on its own so multi-line values are never padded
// to a common width.
func render(st lipgloss.Style, s string) string {
	if s == "" {
		return s
	}
	if !strings.Contains(s, "\n") {
		return st.Render(s)
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Lipgloss) Red(s string) string      { return render(c.red, s) }
func (c *Lipgloss) Green(s string) string    { return render(c.green, s) }
func (c *Lipgloss) Yellow(s string) string   { return render(c.yellow, s) }
func (c *Lipgloss) Blue(s string) string     { return render(c.blue, s) }
func (c *Lipgloss) Cyan(s string) string     { return render(c.cyan, s) }
func (c *Lipgloss) White(s string) string    { return render(c.white, s) }
func (c *Lipgloss) Grey(s string) string     { return render(c.grey, s) }
func (c *Lipgloss) Black(s string) string    { return render(c.black, s) }
func (c *Lipgloss) Bold(s string) string     { return render(c.bold, s) }
func (c *Lipgloss) BgRed(s string) string    { return render(c.bgRed, s) }
func (c *Lipgloss) BgYellow(s string) string { return render(c.bgYellow, s) }

var _ style.Colorizer = (*Lipgloss)(nil)
