package printo

import "fmt"

// InvalidConfigurationError reports a configuration option carrying a value
// outside the accepted set, such as an unrecognized mode name. It indicates
// a programming error and is returned immediately without retry semantics.
type InvalidConfigurationError struct {
	Field string // Configuration field that rejected the value.
	Value string // Offending value as given.
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("printo: invalid %s %q", e.Field, e.Value)
}

// UnknownLevelError reports a severity outside the known level set, either
// as a numeric Severity passed to Log or a name passed to ParseSeverity.
type UnknownLevelError struct {
	Level Severity // Offending numeric level, when rejected by Log.
	Name  string   // Offending level name, when rejected by ParseSeverity.

	fromName bool // Whether the level arrived as a name, even an empty one.
}

func (e *UnknownLevelError) Error() string {
	if e.fromName {
		return fmt.Sprintf("printo: unknown severity level %q", e.Name)
	}
	return fmt.Sprintf("printo: unknown severity level %d", uint32(e.Level))
}
