package level

import "strings"

// Level is the severity of a log entry. Lower values are more severe and are
// always shown before higher ones.
type Level int

const (
	Error Level = iota
	Warn
	Info
	Debug
	Trace
)

// Default is the threshold applied when a configuration omits its level.
const Default = Info

var names = [...]string{
	Error: "error",
	Warn:  "warn",
	Info:  "info",
	Debug: "debug",
	Trace: "trace",
}

// String returns the lowercase configuration name of the level.
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return names[l]
}

// Upper returns the badge used in rendered log lines, e.g. "WARN".
func (l Level) Upper() string {
	return strings.ToUpper(l.String())
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool {
	return l >= Error && l <= Trace
}

// Allows reports whether a message at msg passes a threshold of l.
func (l Level) Allows(msg Level) bool {
	return msg <= l
}

// Parse returns the level named by s. Only the lowercase names are accepted.
func Parse(s string) (Level, bool) {
	for i, n := range names {
		if n == s {
			return Level(i), true
		}
	}
	return Default, false
}

// Names returns the level names in rank order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// All returns every level in rank order.
func All() []Level {
	return []Level{Error, Warn, Info, Debug, Trace}
}
