package logger

// Names of the built-in levels.
const (
	LevelFatal   = "fatal"
	LevelError   = "error"
	LevelWarn    = "warn"
	LevelTrace   = "trace"
	LevelInit    = "init"
	LevelInfo    = "info"
	LevelVerbose = "verbose"
	LevelDebug   = "debug"
)

// Level is a named severity with its display style.
// Names are case-sensitive.
type Level struct {
	Name  string
	Style Style

	// position is rank+1 so that a zero Level reports as unregistered.
	position int
}

// NewLevel returns an unregistered level.
func NewLevel(name string, style Style) Level {
	return Level{Name: name, Style: style}
}

// Rank returns the zero-based priority assigned at registration; lower is
// more severe. It is -1 for a level that was never registered.
func (l Level) Rank() int {
	return l.position - 1
}

// DefaultLevels returns the built-in levels, highest priority first.
func DefaultLevels() []Level {
	return []Level{
		NewLevel(LevelFatal, NewStyle(ColorRed, ColorBlack)),
		NewLevel(LevelError, NewStyle(ColorBlack, ColorRed)),
		NewLevel(LevelWarn, NewStyle(ColorBlack, ColorYellow)),
		NewLevel(LevelTrace, NewStyle(ColorGreen, ColorBlack)),
		NewLevel(LevelInit, NewStyle(ColorBlack, ColorBlue)),
		NewLevel(LevelInfo, NewStyle(ColorBlack, ColorGreen)),
		NewLevel(LevelVerbose, NewStyle(ColorBlack, ColorCyan)),
		NewLevel(LevelDebug, NewStyle(ColorMagenta, ColorBlack)),
	}
}
