package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logger writes leveled lines to its output. All methods are safe for
// concurrent use: every call, from the threshold check to the write, runs
// under one mutex. Hooks run under that mutex too and must not call back into
// the same Logger.
type Logger struct {
	mu sync.Mutex

	registry *Registry
	cfg      renderConfig
	hooks    hookSet

	out              io.Writer
	includeCallerTag bool
	journald         bool
	onHookError      HookErrorHandler

	// now is the clock; tests replace it.
	now func() time.Time
}

// New returns a Logger configured by config.
func New(config Config) (*Logger, error) {
	stamp, err := compileTimestamp(DefaultTimestampFormat)
	if err != nil {
		return nil, err
	}
	l := &Logger{
		registry: NewRegistry(nil),
		cfg: renderConfig{
			timestampFormat: DefaultTimestampFormat,
			stamp:           stamp,
			colorEnabled:    true,
		},
		out:         os.Stdout,
		onHookError: DefaultHookErrorHandler,
		now:         time.Now,
	}
	if err := l.Configure(config); err != nil {
		return nil, err
	}
	return l, nil
}

// MustNew is like New but panics on a configuration error.
func MustNew(config Config) *Logger {
	l, err := New(config)
	if err != nil {
		panic("loggr: " + err.Error())
	}
	return l
}

// Configure applies config on top of the current settings. Nothing changes
// unless the whole config is valid.
func (l *Logger) Configure(config Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cfg := l.cfg
	if config.TimestampFormat != "" {
		stamp, err := compileTimestamp(config.TimestampFormat)
		if err != nil {
			return err
		}
		cfg.timestampFormat = config.TimestampFormat
		cfg.stamp = stamp
	}
	if config.Shard != "" {
		shard := config.Shard
		cfg.shard = &shard
	}
	if config.ShardLength != 0 {
		cfg.shardLength = config.ShardLength
	}
	if cfg.shard != nil && cfg.shardLength <= 0 {
		return fmt.Errorf("%w: shard %q has length %d", ErrMissingShardWidth, *cfg.shard, cfg.shardLength)
	}

	levels := config.Levels
	if levels == nil {
		levels = DefaultLevels()
	}
	registry := NewRegistry(levels)
	threshold := config.Level
	if threshold == "" {
		threshold = os.Getenv(EnvLevel)
	}
	if threshold != "" {
		if err := registry.SetThreshold(threshold); err != nil {
			return err
		}
	}

	out := l.out
	if config.Output != nil {
		out = config.Output
	}
	switch {
	case config.Styler != nil:
		cfg.styler = config.Styler
	case cfg.styler == nil || config.Output != nil && isDefaultStyler(cfg.styler):
		cfg.styler = NewStyler(out)
	}
	cfg.colorEnabled = !config.NoColor && os.Getenv(EnvNoColor) == ""

	if config.HookErrorHandler != nil {
		l.onHookError = config.HookErrorHandler
	}
	l.cfg = cfg
	l.registry = registry
	l.out = out
	l.includeCallerTag = config.IncludeCallerTag
	l.journald = os.Getenv(EnvJournalStream) != ""
	return nil
}

func isDefaultStyler(s Styler) bool {
	_, ok := s.(*lipglossStyler)
	return ok
}

// SetLevels replaces the level set, highest priority first. The threshold
// keeps its name; if that name is gone, every call fails until SetLevel is
// called.
func (l *Logger) SetLevels(levels []Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.registry.SetLevels(levels)
}

// SetLevel sets the threshold. Only calls at this level or a more severe one
// are written.
func (l *Logger) SetLevel(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.SetThreshold(name)
}

// Level returns the name of the threshold level.
func (l *Logger) Level() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Threshold()
}

// Levels returns the registered levels with their ranks.
func (l *Logger) Levels() []Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Levels()
}

// Enabled reports whether a call at level would be written.
func (l *Logger) Enabled(level string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.ShouldEmit(level)
}

// AddPreHook registers a hook that may replace the text before rendering.
func (l *Logger) AddPreHook(h PreHook) *Logger {
	if h == nil {
		return l
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks.pre = append(l.hooks.pre, h)
	return l
}

// AddArgHook registers a hook that may replace the formatted text of Logf calls.
func (l *Logger) AddArgHook(h ArgHook) *Logger {
	if h == nil {
		return l
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks.arg = append(l.hooks.arg, h)
	return l
}

// AddPostHook registers a hook that may replace the rendered line before it
// is written.
func (l *Logger) AddPostHook(h PostHook) *Logger {
	if h == nil {
		return l
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks.post = append(l.hooks.post, h)
	return l
}

// Log writes text at level. It returns an *UnknownLevelError, and writes
// nothing, if level is not registered. Calls below the threshold return nil.
func (l *Logger) Log(level, text string) error {
	return l.emit(level, message{text: text}, 1)
}

// Logf formats according to a format specifier and writes the result at level.
// Arg hooks may replace the formatted text.
func (l *Logger) Logf(level, format string, args ...any) error {
	return l.logf(level, format, args, 1)
}

func (l *Logger) logf(level, format string, args []any, depth int) error {
	return l.emit(level, message{format: format, args: args, formatted: true}, depth+1)
}

type message struct {
	text      string
	format    string
	args      []any
	formatted bool
}

// emit runs one call through threshold, hooks, rendering and output.
// depth is the number of frames between emit and the user's call site.
func (l *Logger) emit(levelName string, m message, depth int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ok, err := l.registry.ShouldEmit(levelName)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	now := l.now()
	text := m.text
	if m.formatted {
		text = fmt.Sprintf(m.format, m.args...)
		if len(l.hooks.arg) > 0 {
			params := ArgHookParams{Format: m.format, Args: m.args, Time: now}
			if replaced, ok := runHooks(HookArg, l.hooks.arg, params, levelName, l.onHookError); ok {
				text = replaced
			}
		}
	}
	if l.includeCallerTag {
		text = "[" + getCallerInfo(depth+1) + "] " + text
	}
	if len(l.hooks.pre) > 0 {
		params := HookParams{
			Level:     levelName,
			Text:      text,
			Time:      now,
			Timestamp: formatTimestamp(l.cfg.stamp, now),
			Shard:     l.cfg.shardLabel(),
		}
		if replaced, ok := runHooks(HookPre, l.hooks.pre, params, levelName, l.onHookError); ok {
			text = replaced
		}
	}

	line, err := render(text, levelName, l.registry, &l.cfg, &l.hooks, l.onHookError, now)
	if err != nil {
		return err
	}
	return l.write(levelName, line)
}

// write sends exactly one newline-terminated line to the output.
func (l *Logger) write(levelName, line string) error {
	w := l.out
	if l.journald && !l.cfg.colorEnabled {
		if prefix := syslogPrefixForLevel(levelName); prefix != "" {
			w = &syslogPrefixWriter{w: l.out, prefix: prefix}
		}
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("write %s line: %w", levelName, err)
	}
	return nil
}

// getCallerInfo returns formatted caller information at the specified stack depth.
// Returns "package.Function:line" format for better log clarity.
func getCallerInfo(depth int) string {
	pc, _, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	full := fn.Name()
	// Strip package path, keep package.Function
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 && lastSlash+1 < len(full) {
		full = full[lastSlash+1:]
	}
	return fmt.Sprintf("%s:%d", full, line)
}
