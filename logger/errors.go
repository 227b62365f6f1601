package logger

import (
	"errors"
	"strconv"
)

var (
	// ErrUnknownLevel is matched by every *UnknownLevelError.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrMissingShardWidth is returned when a shard label is configured
	// without a shard length.
	ErrMissingShardWidth = errors.New("shard label set without shard length")
	// ErrInvalidTimestampFormat wraps a timestamp pattern that failed to compile.
	ErrInvalidTimestampFormat = errors.New("invalid timestamp format")
	// ErrInternal marks a broken invariant inside the renderer.
	ErrInternal = errors.New("internal logger error")
)

// UnknownLevelError reports a level name missing from the registry.
type UnknownLevelError struct {
	Name string
}

func (e *UnknownLevelError) Error() string {
	return "the level " + strconv.Quote(e.Name) + " doesn't exist"
}

// Is reports whether target is ErrUnknownLevel.
func (e *UnknownLevelError) Is(target error) bool {
	return target == ErrUnknownLevel
}
