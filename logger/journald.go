package logger

import "io"

// syslogPrefixForLevel maps the built-in levels to journald priorities.
// Custom levels get no prefix.
func syslogPrefixForLevel(level string) string {
	switch level {
	case LevelFatal:
		return "<2>"
	case LevelError:
		return "<3>"
	case LevelWarn:
		return "<4>"
	case LevelInit, LevelInfo:
		return "<6>"
	case LevelTrace, LevelVerbose, LevelDebug:
		return "<7>"
	default:
		return ""
	}
}

// syslogPrefixWriter prepends the syslog priority prefix to each line.
type syslogPrefixWriter struct {
	w      io.Writer
	prefix string
}

func (s *syslogPrefixWriter) Write(data []byte) (int, error) {
	if s.prefix == "" {
		return s.w.Write(data)
	}
	if len(data) == 0 {
		return 0, nil
	}
	buf := make([]byte, 0, len(data)+len(s.prefix))
	buf = append(buf, s.prefix...)
	for i, b := range data {
		buf = append(buf, b)
		if b == '\n' && i != len(data)-1 {
			buf = append(buf, s.prefix...)
		}
	}
	if _, err := s.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}
