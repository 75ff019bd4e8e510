// Package style defines the colorizer capability consumed by the console
// transport and the message formatter. The core never constructs a styling
// engine itself; callers inject one (see infra/colorizer) or leave it nil for
// plain output.
package style

// Colorizer decorates strings with terminal styles.
type Colorizer interface {
	Red(string) string
	Green(string) string
	Yellow(string) string
	Blue(string) string
	Cyan(string) string
	White(string) string
	Grey(string) string
	Black(string) string
	Bold(string) string
	BgRed(string) string
	BgYellow(string) string
}

// None is a Colorizer that returns its input unchanged.
type None struct{}

func (None) Red(s string) string      { return s }
func (None) Green(s string) string    { return s }
func (None) Yellow(s string) string   { return s }
func (None) Blue(s string) string     { return s }
func (None) Cyan(s string) string     { return s }
func (None) White(s string) string    { return s }
func (None) Grey(s string) string     { return s }
func (None) Black(s string) string    { return s }
func (None) Bold(s string) string     { return s }
func (None) BgRed(s string) string    { return s }
func (None) BgYellow(s string) string { return s }

// OrNone returns c, or None when c is nil.
func OrNone(c Colorizer) Colorizer {
	if c == nil {
		return None{}
	}
	return c
}

var _ Colorizer = None{}
