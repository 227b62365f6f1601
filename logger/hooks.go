package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// HookParams is the snapshot handed to pre and post hooks.
type HookParams struct {
	// Level is the name of the level being logged at.
	Level string
	// Text is the caller's text, before any hook replaced it.
	Text string
	// Time is the instant of the call.
	Time time.Time
	// Timestamp is Time rendered with the timestamp format, without styling.
	Timestamp string
	// Shard is the configured shard label, or "" when none is set.
	Shard string
}

// ArgHookParams is handed to argument hooks of formatted calls.
type ArgHookParams struct {
	Format string
	Args   []any
	Time   time.Time
}

// PreHook runs after the threshold check and before rendering. Returning
// ok=true replaces the text that gets rendered.
type PreHook func(p HookParams) (text string, ok bool)

// ArgHook runs for Logf-style calls. Returning ok=true replaces the result
// of formatting the arguments.
type ArgHook func(p ArgHookParams) (text string, ok bool)

// PostHook runs on the fully rendered line. Returning ok=true replaces the
// whole line.
type PostHook func(p HookParams) (line string, ok bool)

// Within each list hooks run in registration order, every hook sees the same
// params, and the last replacement wins. A hook never observes another
// hook's replacement.
type hookSet struct {
	pre  []PreHook
	arg  []ArgHook
	post []PostHook
}

// HookStage identifies which hook list a hook belongs to.
type HookStage int

const (
	HookPre HookStage = iota
	HookArg
	HookPost
)

func (s HookStage) String() string {
	switch s {
	case HookPre:
		return "pre"
	case HookArg:
		return "arg"
	case HookPost:
		return "post"
	default:
		return "unknown"
	}
}

// HookError describes a hook that panicked. The panicking hook is treated as
// having no opinion and the line is still written.
type HookError struct {
	Stage HookStage
	Index int
	Level string
	Value any
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook #%d panicked on level %q: %v", e.Stage, e.Index, e.Level, e.Value)
}

// HookErrorHandler receives hook failures.
type HookErrorHandler func(err *HookError)

var outStderr io.Writer = os.Stderr

// DefaultHookErrorHandler writes hook failures to stderr.
func DefaultHookErrorHandler(err *HookError) {
	fmt.Fprintf(outStderr, "loggr: %v\n", err)
}

func runHooks[P any, H ~func(P) (string, bool)](stage HookStage, hooks []H, params P, level string, onErr HookErrorHandler) (string, bool) {
	var (
		out      string
		replaced bool
	)
	for i, h := range hooks {
		if s, ok := callHook(stage, i, h, params, level, onErr); ok {
			out, replaced = s, true
		}
	}
	return out, replaced
}

func callHook[P any, H ~func(P) (string, bool)](stage HookStage, index int, h H, params P, level string, onErr HookErrorHandler) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
			if onErr != nil {
				onErr(&HookError{Stage: stage, Index: index, Level: level, Value: r})
			}
		}
	}()
	return h(params)
}
