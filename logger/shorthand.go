package logger

import "fmt"

// --- Built-in level shorthands ---
//
// Each returns the same errors as Log; with a custom level set that lacks the
// name, that is an *UnknownLevelError.

// Fatal logs text at the fatal level. It does not exit.
func (l *Logger) Fatal(text string) error {
	return l.emit(LevelFatal, message{text: text}, 1)
}

// Fatalf logs a formatted message at the fatal level. It does not exit.
func (l *Logger) Fatalf(format string, args ...any) error {
	return l.logf(LevelFatal, format, args, 1)
}

// Error logs text at the error level.
func (l *Logger) Error(text string) error {
	return l.emit(LevelError, message{text: text}, 1)
}

// Errorf logs a formatted message at the error level.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.logf(LevelError, format, args, 1)
}

// Warn logs text at the warn level.
func (l *Logger) Warn(text string) error {
	return l.emit(LevelWarn, message{text: text}, 1)
}

// Warnf logs a formatted message at the warn level.
func (l *Logger) Warnf(format string, args ...any) error {
	return l.logf(LevelWarn, format, args, 1)
}

// Trace logs text at the trace level.
func (l *Logger) Trace(text string) error {
	return l.emit(LevelTrace, message{text: text}, 1)
}

// Tracef logs a formatted message at the trace level.
func (l *Logger) Tracef(format string, args ...any) error {
	return l.logf(LevelTrace, format, args, 1)
}

// Init logs text at the init level.
func (l *Logger) Init(text string) error {
	return l.emit(LevelInit, message{text: text}, 1)
}

// Initf logs a formatted message at the init level.
func (l *Logger) Initf(format string, args ...any) error {
	return l.logf(LevelInit, format, args, 1)
}

// Info logs text at the info level.
func (l *Logger) Info(text string) error {
	return l.emit(LevelInfo, message{text: text}, 1)
}

// Infof logs a formatted message at the info level.
func (l *Logger) Infof(format string, args ...any) error {
	return l.logf(LevelInfo, format, args, 1)
}

// Verbose logs text at the verbose level.
func (l *Logger) Verbose(text string) error {
	return l.emit(LevelVerbose, message{text: text}, 1)
}

// Verbosef logs a formatted message at the verbose level.
func (l *Logger) Verbosef(format string, args ...any) error {
	return l.logf(LevelVerbose, format, args, 1)
}

// Debug logs text at the debug level.
func (l *Logger) Debug(text string) error {
	return l.emit(LevelDebug, message{text: text}, 1)
}

// Debugf logs a formatted message at the debug level.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.logf(LevelDebug, format, args, 1)
}

// --- API logging (HTTP status code based) ---

// API logs an HTTP API call with automatic level selection based on status code.
// Status codes are mapped to levels: 5xx->error, 4xx->warn, anything else->info.
//
// Example:
//
//	l.API(200, "api call successful")
//	l.API(404, "resource not found")
func (l *Logger) API(statusCode int, msg string) error {
	return l.emit(statusCodeToLevel(statusCode), message{text: fmt.Sprintf("[%d] %s", statusCode, msg)}, 1)
}

// statusCodeToLevel maps HTTP status codes to log levels.
func statusCodeToLevel(code int) string {
	switch {
	case code >= 500:
		return LevelError
	case code >= 400:
		return LevelWarn
	default:
		return LevelInfo // 1xx, 2xx, 3xx
	}
}
