package printo

// Predefined severity levels for logging.
const (
	// PrintIssuer represents plain enhanced-print output without a severity tag
	PrintIssuer Severity = iota

	// DebugIssuer represents debug-level messages for development diagnostics
	DebugIssuer

	// InfoIssuer indicates normal operational messages for tracking progress
	InfoIssuer

	// SuccessIssuer marks operations that completed as intended
	SuccessIssuer

	// WarnIssuer signifies potential issues that don't disrupt core functionality
	WarnIssuer

	// ErrorIssuer denotes failures in specific operations or components
	ErrorIssuer

	// DisableIssuer is a special level that disables all logging when used
	// as the verbosity threshold; it is not a valid level for Log
	DisableIssuer
)

// Output modes.
const (
	// DevMode renders verbose development output with timestamps and call sites
	DevMode Mode = iota

	// PackageMode renders compact output prefixed with the package name,
	// dropping print- and debug-level messages
	PackageMode

	// SilentMode drops all output
	SilentMode
)

// severityTags are the rendered labels for each severity level.
var severityTags = [DisableIssuer]string{"PRINT", "DEBUG", "INFO", "SUCCESS", "WARNING", "ERROR"}

// severityColors are ANSI palette indices fed to lipgloss for each tag.
// Debug renders faint, error renders bold; an empty entry stays unstyled.
var severityColors = [DisableIssuer]string{"", "8", "4", "2", "3", "1"}

// Default is a pre-configured Logger instance intended for general use.
// It writes to os.Stdout/os.Stderr in DevMode and backs every package-level
// function, so Configure calls on it affect subsequent Print/Info/... calls.
var Default = newLogger()
