// Package callee resolves the source location of the code that called into
// the logger. The result is diagnostic metadata only.
package callee

import (
	"runtime"
	"strconv"
	"strings"
)

// Resolver returns a one-line source location such as "main.go:42".
type Resolver interface {
	Resolve() string
}

// Func adapts a function to a Resolver.
type Func func() string

func (f Func) Resolve() string { return f() }

// Static always resolves to the same location.
type Static string

func (s Static) Resolve() string { return string(s) }

// modulePrefix is the import path shared by every package of this module.
const modulePrefix = "github.com/kilianp07/langlog/"

// internal lists the packages whose frames are skipped by Stack.
var internal = []string{
	modulePrefix + "core/",
	modulePrefix + "infra/",
	modulePrefix + "logger.",
}

// Stack resolves to the first frame outside the logging packages.
type Stack struct {
	// Ignore lists extra function name prefixes to skip, for instance the
	// package of a logging library forwarding into the facade.
	Ignore []string
}

func (s Stack) Resolve() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !isInternal(f.Function) && !hasPrefix(f.Function, s.Ignore) {
			return location(f)
		}
		if !more {
			return ""
		}
	}
}

func isInternal(fn string) bool { return hasPrefix(fn, internal) }

func hasPrefix(fn string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(fn, p) {
			return true
		}
	}
	return false
}

func location(f runtime.Frame) string {
	if f.File == "" {
		return ""
	}
	return f.File + ":" + strconv.Itoa(f.Line)
}
