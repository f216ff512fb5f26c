package printo

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Lower values indicate less important messages.
type Severity uint32

// Mode selects the output shape of a Logger: verbose development output,
// compact prefixed output for a published package, or no output at all.
type Mode uint32

// Logger represents a logging instance with its process-wide configuration:
// output mode, package name, distributed rank, rank-zero-only suppression,
// verbosity threshold, metadata toggles and output destinations.
//
// Configuration carries no locking. Concurrent Configure calls follow
// last-write-wins semantics, which is acceptable for console formatting.
type Logger struct {
	mode        Mode      // Output mode: DevMode, PackageMode or SilentMode.
	packageName string    // Prefix used in PackageMode output.
	rank        int       // Rank of this process in a distributed job.
	rankKnown   bool      // Whether rank has been configured at all.
	rank0Only   bool      // Suppress output unless rank is 0 or unknown.
	verbosity   Severity  // Minimum severity to emit; lower levels are ignored.
	printTime   bool      // Prepend a timestamp in DevMode.
	printOrigin bool      // Append the call-site locator in DevMode.
	timeFormat  string    // Format for timestamps (Go reference time format).
	useUTC      bool      // If true, timestamps are in UTC; otherwise local time.
	out         io.Writer // Destination for non-error output.
	errOut      io.Writer // Destination for error-level output and tracebacks.
	pal         palette   // Styles bound to out's terminal capabilities.
	errPal      palette   // Styles bound to errOut's terminal capabilities.
}

// Option defines a functional option applied by New and Configure.
// Options validate their input and report an *InvalidConfigurationError
// instead of mutating the Logger when the value is out of range.
type Option func(*Logger) error

// Caller specifies how many additional caller frames to skip when the
// call-site locator is resolved. Frames belonging to this package are
// always skipped; Caller discards frames of wrappers layered on top.
type Caller int

// Rank overrides the configured rank for a single Log call. It is passed
// as a leading argument and never touches the Logger's configuration.
type Rank int

// Rank0Only overrides the configured rank-zero-only flag for a single
// Log call.
type Rank0Only bool

// Timestamp toggles the timestamp prefix for a single Log call.
type Timestamp bool

// Origin toggles the call-site locator for a single Log call.
type Origin bool

// palette holds the pre-built lipgloss styles for one output writer.
// Styles degrade to plain text when the writer is not an ANSI terminal.
type palette struct {
	tags  [DisableIssuer]lipgloss.Style // Severity tag styles, indexed by level.
	dim   lipgloss.Style                // Faint dividers and function names.
	meta  lipgloss.Style                // Timestamps and file locators.
	alert lipgloss.Style                // Traceback rule lines.
}

func newPalette(r *lipgloss.Renderer) palette {
	var p palette
	for i := range p.tags {
		s := r.NewStyle()
		switch {
		case Severity(i) == DebugIssuer:
			s = s.Faint(true).Foreground(lipgloss.Color(severityColors[i]))
		case severityColors[i] != "":
			s = s.Bold(true).Foreground(lipgloss.Color(severityColors[i]))
		}
		p.tags[i] = s
	}
	p.dim = r.NewStyle().Faint(true)
	p.meta = r.NewStyle().Foreground(lipgloss.Color("6"))
	p.alert = r.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	return p
}

// String returns the tag used for the severity in rendered output.
func (s Severity) String() string {
	if s < DisableIssuer {
		return severityTags[s]
	}
	return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
}

// ParseSeverity maps a level name such as "info" or "warning" to its
// Severity. Unrecognized names report an *UnknownLevelError.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "print":
		return PrintIssuer, nil
	case "debug":
		return DebugIssuer, nil
	case "info":
		return InfoIssuer, nil
	case "success":
		return SuccessIssuer, nil
	case "warn", "warning":
		return WarnIssuer, nil
	case "error":
		return ErrorIssuer, nil
	}
	return DisableIssuer, &UnknownLevelError{Name: name, fromName: true}
}

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case DevMode:
		return "dev"
	case PackageMode:
		return "package"
	case SilentMode:
		return "silent"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode maps a mode name ("dev", "package", "silent") to its Mode.
// Unrecognized names report an *InvalidConfigurationError.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "dev":
		return DevMode, nil
	case "package":
		return PackageMode, nil
	case "silent":
		return SilentMode, nil
	}
	return DevMode, &InvalidConfigurationError{Field: "mode", Value: name}
}
