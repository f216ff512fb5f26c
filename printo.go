// Package printo provides an enhanced console logger for scripts and
// multi-process programs, particularly distributed data-processing jobs.
//
// Key features:
//   - Six severity levels (Print, Debug, Info, Success, Warn, Error) with
//     lipgloss-styled tags that degrade to plain text on non-ANSI terminals
//   - Dev and package output modes plus a silent switch
//   - Rank-zero-only suppression for distributed runs with per-call overrides
//   - Optional timestamps and clickable call-site locators that skip the
//     facade's own frames
//   - Writes that cooperate with an active progress bar instead of tearing
//     through its redraw cycle
//   - A Graceful helper that renders readable tracebacks without swallowing
//     the original failure
//   - Package-level default logger and configurable instances
package printo

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// New creates a Logger with dev-mode defaults (stdout/stderr, timestamps
// and call sites on, everything emitted) and applies the given options.
//
// Example:
//
//	logger, err := printo.New(printo.WithMode(printo.PackageMode), printo.WithPackageName("steroids"))
func New(opts ...Option) (*Logger, error) {
	l := newLogger()
	if err := l.Configure(opts...); err != nil {
		return nil, err
	}
	return l, nil
}

func newLogger() *Logger {
	l := &Logger{
		mode:        DevMode,
		verbosity:   PrintIssuer,
		printTime:   true,
		printOrigin: true,
		timeFormat:  "2006-01-02 15:04:05",
	}
	l.setOutput(os.Stdout)
	l.setErrOutput(os.Stderr)
	return l
}

// setOutput binds the writer and rebuilds the styles for its capabilities.
func (l *Logger) setOutput(w io.Writer) {
	l.out = w
	l.pal = newPalette(lipgloss.NewRenderer(w))
}

func (l *Logger) setErrOutput(w io.Writer) {
	l.errOut = w
	l.errPal = newPalette(lipgloss.NewRenderer(w))
}

// Configure merges the given options into the Logger's configuration.
// Fields not named by an option keep their previous values, so repeated
// calls follow last-write-wins semantics. The first failing option stops
// the merge and its error is returned; options applied before it stick.
func (l *Logger) Configure(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return err
		}
	}
	return nil
}

// WithMode sets the output mode. Values outside the mode set are rejected
// with an *InvalidConfigurationError.
func WithMode(mode Mode) Option {
	return func(l *Logger) error {
		if mode > SilentMode {
			return &InvalidConfigurationError{Field: "mode", Value: mode.String()}
		}
		l.mode = mode
		return nil
	}
}

// WithModeFromEnv resolves the mode from the <PACKAGE>_LOG_MODE environment
// variable, defaulting to PackageMode when the variable is unset. The
// package name must be configured first.
func WithModeFromEnv() Option {
	return func(l *Logger) error {
		if l.packageName == "" {
			return &InvalidConfigurationError{Field: "mode", Value: "from env without a package name"}
		}
		raw := os.Getenv(strings.ToUpper(l.packageName) + "_LOG_MODE")
		if raw == "" {
			l.mode = PackageMode
			return nil
		}
		mode, err := ParseMode(raw)
		if err != nil {
			return err
		}
		l.mode = mode
		return nil
	}
}

// WithPackageName sets the prefix used in PackageMode output.
func WithPackageName(name string) Option {
	return func(l *Logger) error {
		l.packageName = name
		return nil
	}
}

// WithRank records the rank of this process in a distributed job. Rank 0
// is conventionally the main process.
func WithRank(rank int) Option {
	return func(l *Logger) error {
		l.rank = rank
		l.rankKnown = true
		return nil
	}
}

// WithRank0Only suppresses output unless the effective rank is 0 or unknown.
func WithRank0Only(only bool) Option {
	return func(l *Logger) error {
		l.rank0Only = only
		return nil
	}
}

// WithVerbosity sets the minimum severity to emit. DisableIssuer silences
// the logger entirely; values beyond it are rejected.
func WithVerbosity(level Severity) Option {
	return func(l *Logger) error {
		if level > DisableIssuer {
			return &InvalidConfigurationError{Field: "verbosity", Value: level.String()}
		}
		l.verbosity = level
		return nil
	}
}

// WithTimestamp sets the default for the timestamp prefix in DevMode.
func WithTimestamp(on bool) Option {
	return func(l *Logger) error {
		l.printTime = on
		return nil
	}
}

// WithOrigin sets the default for the call-site locator in DevMode.
func WithOrigin(on bool) Option {
	return func(l *Logger) error {
		l.printOrigin = on
		return nil
	}
}

// WithTimeFormat sets a custom time format for log messages, specified
// using Go's reference time (Mon Jan 2 15:04:05 MST 2006).
func WithTimeFormat(format string) Option {
	return func(l *Logger) error {
		l.timeFormat = format
		return nil
	}
}

// WithUTC configures the Logger to use UTC for timestamps if set to true,
// or the local time zone if false.
func WithUTC(utc bool) Option {
	return func(l *Logger) error {
		l.useUTC = utc
		return nil
	}
}

// WithOutput redirects non-error output. The writer must be non-nil.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) error {
		if w == nil {
			return &InvalidConfigurationError{Field: "output", Value: "nil writer"}
		}
		l.setOutput(w)
		return nil
	}
}

// WithErrorOutput redirects error-level output and tracebacks.
func WithErrorOutput(w io.Writer) Option {
	return func(l *Logger) error {
		if w == nil {
			return &InvalidConfigurationError{Field: "error output", Value: "nil writer"}
		}
		l.setErrOutput(w)
		return nil
	}
}

// Mode returns the current output mode.
func (l *Logger) Mode() Mode {
	return l.mode
}

// PackageName returns the configured package-mode prefix.
func (l *Logger) PackageName() string {
	return l.packageName
}

// Rank returns the configured rank and whether one has been set.
func (l *Logger) Rank() (int, bool) {
	return l.rank, l.rankKnown
}

// Verbosity returns the current minimum severity threshold.
func (l *Logger) Verbosity() Severity {
	return l.verbosity
}

// Log is the core entry point. It renders the message parts at the given
// severity and writes the line to the Logger's output (error level goes to
// the error stream). Leading arguments of the typed modifier kinds Rank,
// Rank0Only, Timestamp, Origin and Caller override the configured defaults
// for this call only.
//
// Suppression is a silent no-op: when rank0-only applies and the effective
// rank is known and nonzero, nothing is written and nil is returned.
// A severity outside the level set returns an *UnknownLevelError; all
// message parts are coerced to strings and never cause an error.
//
// Example:
//
//	logger.Log(printo.InfoIssuer, printo.Rank(3), "shard", 3, "loaded")
func (l *Logger) Log(level Severity, msg ...interface{}) error {
	if level >= DisableIssuer {
		return &UnknownLevelError{Level: level}
	}

	rank, rankKnown := l.rank, l.rankKnown
	rank0Only := l.rank0Only
	withTime, withOrigin := l.printTime, l.printOrigin
	skip := 0

	// Per-call overrides are scanned off the front; the Logger's own
	// configuration is never touched here.
scan:
	for len(msg) > 0 {
		switch v := msg[0].(type) {
		case Rank:
			rank, rankKnown = int(v), true
		case Rank0Only:
			rank0Only = bool(v)
		case Timestamp:
			withTime = bool(v)
		case Origin:
			withOrigin = bool(v)
		case Caller:
			skip = int(v)
			if skip < 0 {
				skip = 0
			} else if skip > 99 {
				skip = 99
			}
		default:
			break scan
		}
		msg = msg[1:]
	}

	if l.mode == SilentMode || level < l.verbosity {
		return nil
	}
	if rank0Only && rankKnown && rank != 0 {
		return nil
	}
	if l.mode == PackageMode && level <= DebugIssuer {
		return nil
	}

	w, pal := l.out, &l.pal
	if level == ErrorIssuer {
		w, pal = l.errOut, &l.errPal
	}

	text := joinParts(msg)
	var line string
	if l.mode == PackageMode {
		tag := pal.tags[level]
		line = tag.Render(l.packageName) + " " + pal.dim.Render("-") + " " +
			tag.Render(severityTags[level]) + pal.dim.Render(":") + " " + text
	} else {
		sep := " " + pal.dim.Render("|") + " "
		head := make([]string, 0, 5)
		if withTime {
			now := time.Now()
			if l.useUTC {
				now = now.UTC()
			}
			head = append(head, pal.meta.Render(now.Format(l.timeFormat)))
		}
		if level != PrintIssuer {
			head = append(head, pal.tags[level].Render(fmt.Sprintf("%-7s", severityTags[level])))
		}
		if withOrigin {
			if site, ok := locate(skip); ok {
				head = append(head,
					pal.meta.Render(site.file+":"+strconv.Itoa(site.line))+" - "+pal.dim.Render(site.function))
			}
		}
		if rankKnown && !rank0Only {
			head = append(head, pal.tags[level].Render("Rank "+strconv.Itoa(rank)))
		}
		if text != "" {
			head = append(head, text)
		}
		line = strings.Join(head, sep)
	}

	if line == "" || line[len(line)-1] != '\n' {
		line += "\n"
	}
	return l.write(w, line)
}

// joinParts coerces the message parts to strings and joins them with
// single spaces. A lone string is passed through untouched.
func joinParts(parts []interface{}) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		if s, ok := parts[0].(string); ok {
			return s
		}
		return fmt.Sprint(parts[0])
	}
	ss := make([]string, len(parts))
	for i, p := range parts {
		if s, ok := p.(string); ok {
			ss[i] = s
		} else {
			ss[i] = fmt.Sprint(p)
		}
	}
	return strings.Join(ss, " ")
}

// write sends a rendered line to the writer. When a progress bar is
// active, the bar is cleared first and redrawn afterwards so the line
// never lands in the middle of a redraw cycle.
func (l *Logger) write(w io.Writer, line string) error {
	if bar := activeBar(); bar != nil {
		_ = bar.Clear()
		_, err := io.WriteString(w, line)
		_ = bar.RenderBlank()
		return err
	}
	_, err := io.WriteString(w, line)
	return err
}

// Print writes the parts like an enhanced fmt.Println: no severity tag and
// no metadata unless re-enabled per call.
func (l *Logger) Print(msg ...interface{}) error {
	args := append([]interface{}{Timestamp(false), Origin(false)}, msg...)
	return l.Log(PrintIssuer, args...)
}

// Printf writes a formatted message the way Print does.
func (l *Logger) Printf(format string, args ...interface{}) error {
	return l.Print(fmt.Sprintf(format, args...))
}

// Debug logs a debug-level message using the Logger instance.
// Leading typed modifiers (Rank, Rank0Only, ...) may be provided.
//
// Example:
//
//	logger.Debug("cache miss for", key)
//	logger.Debug(printo.Rank0Only(true), "only the main process says this")
func (l *Logger) Debug(msg ...interface{}) error {
	return l.Log(DebugIssuer, msg...)
}

// Debugf logs a formatted debug-level message using the Logger instance.
func (l *Logger) Debugf(format string, args ...interface{}) error {
	return l.Log(DebugIssuer, fmt.Sprintf(format, args...))
}

// Info logs an informational message using the Logger instance.
func (l *Logger) Info(msg ...interface{}) error {
	return l.Log(InfoIssuer, msg...)
}

// Infof logs a formatted informational message using the Logger instance.
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.Log(InfoIssuer, fmt.Sprintf(format, args...))
}

// Success logs a success message using the Logger instance.
func (l *Logger) Success(msg ...interface{}) error {
	return l.Log(SuccessIssuer, msg...)
}

// Successf logs a formatted success message using the Logger instance.
func (l *Logger) Successf(format string, args ...interface{}) error {
	return l.Log(SuccessIssuer, fmt.Sprintf(format, args...))
}

// Warn logs a warning message using the Logger instance.
func (l *Logger) Warn(msg ...interface{}) error {
	return l.Log(WarnIssuer, msg...)
}

// Warnf logs a formatted warning message using the Logger instance.
func (l *Logger) Warnf(format string, args ...interface{}) error {
	return l.Log(WarnIssuer, fmt.Sprintf(format, args...))
}

// Error logs an error message to the error stream using the Logger instance.
func (l *Logger) Error(msg ...interface{}) error {
	return l.Log(ErrorIssuer, msg...)
}

// Errorf logs a formatted error message to the error stream using the
// Logger instance.
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(ErrorIssuer, fmt.Sprintf(format, args...))
}

// Configure merges options into the package-level Default logger, so
// subsequent package-level Print/Info/... calls observe the new settings.
func Configure(opts ...Option) error {
	return Default.Configure(opts...)
}

// Log renders a message at the given severity using the Default logger.
func Log(level Severity, msg ...interface{}) error {
	return Default.Log(level, msg...)
}

// Print writes an enhanced plain print line using the Default logger.
// It shares the Default configuration, so rank-zero-only suppression
// configured via Configure applies here as well.
func Print(msg ...interface{}) error {
	return Default.Print(msg...)
}

// Printf writes a formatted enhanced plain print line using the Default logger.
func Printf(format string, args ...interface{}) error {
	return Default.Printf(format, args...)
}

// Debug logs a debug-level message using the Default logger.
func Debug(msg ...interface{}) error {
	return Default.Log(DebugIssuer, msg...)
}

// Debugf logs a formatted debug-level message using the Default logger.
func Debugf(format string, args ...interface{}) error {
	return Default.Log(DebugIssuer, fmt.Sprintf(format, args...))
}

// Info logs an informational message using the Default logger.
func Info(msg ...interface{}) error {
	return Default.Log(InfoIssuer, msg...)
}

// Infof logs a formatted informational message using the Default logger.
func Infof(format string, args ...interface{}) error {
	return Default.Log(InfoIssuer, fmt.Sprintf(format, args...))
}

// Success logs a success message using the Default logger.
func Success(msg ...interface{}) error {
	return Default.Log(SuccessIssuer, msg...)
}

// Successf logs a formatted success message using the Default logger.
func Successf(format string, args ...interface{}) error {
	return Default.Log(SuccessIssuer, fmt.Sprintf(format, args...))
}

// Warn logs a warning message using the Default logger.
func Warn(msg ...interface{}) error {
	return Default.Log(WarnIssuer, msg...)
}

// Warnf logs a formatted warning message using the Default logger.
func Warnf(format string, args ...interface{}) error {
	return Default.Log(WarnIssuer, fmt.Sprintf(format, args...))
}

// Error logs an error message to the error stream using the Default logger.
func Error(msg ...interface{}) error {
	return Default.Log(ErrorIssuer, msg...)
}

// Errorf logs a formatted error message to the error stream using the
// Default logger.
func Errorf(format string, args ...interface{}) error {
	return Default.Log(ErrorIssuer, fmt.Sprintf(format, args...))
}
