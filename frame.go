package printo

import (
	"path/filepath"
	"runtime"
	"strings"
)

const modulePath = "github.com/sivaosorg/printo"

// callSite identifies the source location a log call originated from.
// file is the base name so terminals and editors can link "file.go:line".
type callSite struct {
	file     string
	line     int
	function string
}

// locate walks the call stack and returns the first frame that does not
// belong to this package, so the facade's own Log/Info/... wrappers are
// never reported as the origin. skip discards that many additional
// non-facade frames, for wrappers layered on top of the logger.
func locate(skip int) (callSite, bool) {
	pc := make([]uintptr, 64)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if frame.PC != 0 && !facadeFrame(frame) {
			if skip > 0 {
				skip--
			} else {
				return callSite{
					file:     filepath.Base(frame.File),
					line:     frame.Line,
					function: shortFunc(frame.Function),
				}, true
			}
		}
		if !more {
			return callSite{}, false
		}
	}
}

// facadeFrame reports whether the frame belongs to this package itself.
// Frames from _test.go files count as callers, not facade internals.
func facadeFrame(f runtime.Frame) bool {
	return strings.HasPrefix(f.Function, modulePath+".") &&
		!strings.HasSuffix(f.File, "_test.go")
}

// shortFunc trims a fully qualified function name down to "package.Func".
func shortFunc(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return name
}
