package logger

import "io"

// Environment variables consulted by Configure.
const (
	// EnvLevel names the threshold level when Config.Level is empty.
	EnvLevel = "LOGGR_LEVEL"
	// EnvNoColor disables styling when set to any non-empty value.
	EnvNoColor = "NO_COLOR"
	// EnvJournalStream is set by systemd for services whose stdout goes to the journal.
	EnvJournalStream = "JOURNAL_STREAM"
)

// Config defines options for New and Configure.
// Zero values mean "not given": applying a Config only overwrites the fields
// that are set, with two exceptions. Levels left nil installs DefaultLevels
// again, and Level left empty resets the threshold to LOGGR_LEVEL or, failing
// that, to the last level of the set in effect.
type Config struct {
	// TimestampFormat is a strftime pattern.
	// Default: "%d/%m %H:%M:%S"
	TimestampFormat string
	// Shard is a label printed as a centered prefix; it requires ShardLength.
	// Default: "" (no shard field)
	Shard string
	// ShardLength is the width of the shard field.
	ShardLength int
	// Levels replaces the level set, highest priority first. A non-nil empty
	// slice leaves the logger without levels.
	// Default: nil (DefaultLevels)
	Levels []Level
	// Level is the threshold: calls at less severe levels are dropped.
	// Default: "" (LOGGR_LEVEL, else the last level)
	Level string
	// NoColor disables styling. NO_COLOR in the environment does the same.
	// Default: false (colored)
	NoColor bool
	// IncludeCallerTag adds the [package.Function:line] tag in log messages.
	// Default: false
	IncludeCallerTag bool
	// Output receives one line per accepted call.
	// Default: os.Stdout
	Output io.Writer
	// Styler renders styles when color is enabled.
	// Default: a lipgloss renderer bound to Output
	Styler Styler
	// HookErrorHandler is told about hooks that panic.
	// Default: DefaultHookErrorHandler
	HookErrorHandler HookErrorHandler
}
