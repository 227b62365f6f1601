package logger_test

import (
	"fmt"
	"strings"

	"github.com/mordilloSan/go-loggr/logger"
)

// This example shows plain output with the info threshold. The timestamp
// pattern is a literal so the output is stable.
func ExampleLogger_Log() {
	l := logger.MustNew(logger.Config{Level: logger.LevelInfo, NoColor: true, TimestampFormat: "T"})

	l.Log(logger.LevelInfo, "Posting to matt")
	l.Log(logger.LevelDebug, "noisy")
	// Output:
	// T  info    Posting to matt
}

// This example shows a shard label and a custom level set.
func ExampleLogger_SetLevels() {
	l := logger.MustNew(logger.Config{NoColor: true, TimestampFormat: "T", Shard: "12", ShardLength: 6})

	l.SetLevels([]logger.Level{
		logger.NewLevel("alarm", logger.NewStyle(logger.ColorWhite, logger.ColorRed)),
		logger.NewLevel("note", logger.NewStyle(logger.ColorBlack, logger.ColorCyan)),
	})
	if err := l.SetLevel("note"); err != nil {
		fmt.Println(err)
	}
	l.Log("alarm", "disk full")
	if err := l.Info("gone"); err != nil {
		fmt.Println(err)
	}
	// Output:
	//   12  T alarm  disk full
	// the level "info" doesn't exist
}

// This example replaces every rendered line with a post hook.
func ExampleLogger_AddPostHook() {
	l := logger.MustNew(logger.Config{Level: logger.LevelInfo, NoColor: true})

	l.AddPostHook(func(p logger.HookParams) (string, bool) {
		return "[" + strings.ToUpper(p.Level) + "] " + p.Text, true
	})
	l.Info("ready")
	l.Warnf("%d retries left", 2)
	l.Debug("dropped")
	// Output:
	// [INFO] ready
	// [WARN] 2 retries left
}

// This example shows the level set and its ranks.
func ExampleDefaultLevels() {
	for _, lv := range logger.NewRegistry(logger.DefaultLevels()).Levels() {
		fmt.Println(lv.Rank(), lv.Name, lv.Style)
	}
	// Output:
	// 0 fatal red/black
	// 1 error black/red
	// 2 warn black/yellow
	// 3 trace green/black
	// 4 init black/blue
	// 5 info black/green
	// 6 verbose black/cyan
	// 7 debug magenta/black
}
