// Package logger provides a console logger with named, ordered levels,
// centered level and shard fields, and hooks that can rewrite a line before
// it is printed.
//
// # Output
//
// Each accepted call prints one line to standard output:
//
//	[shard] timestamp  level  text
//
// The shard field appears only when Config.Shard is set. Fields are styled
// with their colors unless Config.NoColor or NO_COLOR is set.
//
// # Levels
//
// Levels are ranked by their position in the set, highest priority first.
// The built-in set is fatal, error, warn, trace, init, info, verbose, debug.
// A call is written when its level ranks at or above the threshold:
//
//	l, err := logger.New(logger.Config{Level: logger.LevelInfo})
//	l.Info("Posting to matt")  // written
//	l.Debug("noisy")           // dropped
//	l.Log("bogus", "x")        // *UnknownLevelError, nothing written
//
// Custom sets replace the built-ins:
//
//	l.SetLevels([]logger.Level{
//	    logger.NewLevel("alarm", logger.NewStyle(logger.ColorWhite, logger.ColorRed)),
//	    logger.NewLevel("note", logger.NewStyle(logger.ColorBlack, logger.ColorCyan)),
//	})
//
// # Hooks
//
// Post hooks see the rendered call and may return a replacement line; the
// last replacement wins:
//
//	l.AddPostHook(func(p logger.HookParams) (string, bool) {
//	    return strings.ToUpper(p.Text), true
//	})
//
// Pre hooks may replace the text before rendering, and arg hooks the result
// of formatting in Logf-style calls. A hook that panics is reported to
// Config.HookErrorHandler and otherwise ignored.
//
// # Environment
//
//	LOGGR_LEVEL=warn ./myapp      threshold when Config.Level is empty
//	NO_COLOR=1 ./myapp            plain output
//
// When JOURNAL_STREAM is set and output is plain, lines of the built-in
// levels carry journald priority prefixes.
package logger
