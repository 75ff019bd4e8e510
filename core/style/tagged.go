package style

// Tagged wraps each styled string in a readable markup tag such as
// "<red>text</red>". Tests use it to assert which style was applied without
// matching raw escape sequences.
type Tagged struct{}

func tag(name, s string) string { return "<" + name + ">" + s + "</" + name + ">" }

func (Tagged) Red(s string) string      { return tag("red", s) }
func (Tagged) Green(s string) string    { return tag("green", s) }
func (Tagged) Yellow(s string) string   { return tag("yellow", s) }
func (Tagged) Blue(s string) string     { return tag("blue", s) }
func (Tagged) Cyan(s string) string     { return tag("cyan", s) }
func (Tagged) White(s string) string    { return tag("white", s) }
func (Tagged) Grey(s string) string     { return tag("grey", s) }
func (Tagged) Black(s string) string    { return tag("black", s) }
func (Tagged) Bold(s string) string     { return tag("bold", s) }
func (Tagged) BgRed(s string) string    { return tag("bgred", s) }
func (Tagged) BgYellow(s string) string { return tag("bgyellow", s) }

var _ Colorizer = Tagged{}
