package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/mattn/go-runewidth"
)

type renderConfig struct {
	timestampFormat string
	stamp           *strftime.Strftime
	shard           *string
	shardLength     int
	colorEnabled    bool
	styler          Styler
}

func (c *renderConfig) shardLabel() string {
	if c.shard == nil {
		return ""
	}
	return *c.shard
}

// CentrePad centers text in a field of the given display width. The left side
// gets floor((width-n)/2) spaces and the right side the rest. Text that is
// already as wide as the field is returned unchanged, never truncated.
func CentrePad(text string, width int) string {
	n := runewidth.StringWidth(text)
	if n >= width {
		return text
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// render builds the line for one accepted call and lets post hooks replace it.
// It does not write anything.
func render(text, levelName string, reg *Registry, cfg *renderConfig, hooks *hookSet, onErr HookErrorHandler, now time.Time) (string, error) {
	level, err := reg.Resolve(levelName)
	if err != nil {
		return "", fmt.Errorf("%w: rendering unresolved level: %v", ErrInternal, err)
	}

	shardField := ""
	if cfg.shard != nil {
		shardField = CentrePad(*cfg.shard, cfg.shardLength)
	}
	levelField := CentrePad(level.Name, reg.MaxNameWidth())
	timestamp := formatTimestamp(cfg.stamp, now)
	timestampField := timestamp

	if cfg.colorEnabled && cfg.styler != nil {
		if cfg.shard != nil {
			shardField = cfg.styler.Apply(shardStyle, shardField)
		}
		timestampField = cfg.styler.Apply(timestampStyle, timestampField)
		levelField = cfg.styler.Apply(level.Style, levelField)
	}

	var b strings.Builder
	b.Grow(len(shardField) + len(timestampField) + len(levelField) + len(text) + 1)
	b.WriteString(shardField)
	b.WriteString(timestampField)
	b.WriteString(levelField)
	b.WriteByte(' ')
	b.WriteString(text)
	line := b.String()

	if len(hooks.post) == 0 {
		return line, nil
	}
	params := HookParams{
		Level:     levelName,
		Text:      text,
		Time:      now,
		Timestamp: timestamp,
		Shard:     cfg.shardLabel(),
	}
	if replaced, ok := runHooks(HookPost, hooks.post, params, levelName, onErr); ok {
		line = replaced
	}
	return line, nil
}
