package logger

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DefaultTimestampFormat renders day/month hour:minute:second.
const DefaultTimestampFormat = "%d/%m %H:%M:%S"

// compileTimestamp compiles a strftime pattern once so that rendering never fails.
func compileTimestamp(pattern string) (*strftime.Strftime, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimestampFormat, pattern, err)
	}
	return f, nil
}

// formatTimestamp renders t in UTC.
func formatTimestamp(f *strftime.Strftime, t time.Time) string {
	return f.FormatString(t.UTC())
}
