package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

// tagStyler marks styled fields as <fg/bg:text> so tests can see what was styled.
type tagStyler struct{}

func (tagStyler) Apply(style Style, text string) string {
	return "<" + style.String() + ":" + text + ">"
}

func mustStamp(t *testing.T, pattern string) renderConfig {
	t.Helper()
	stamp, err := compileTimestamp(pattern)
	if err != nil {
		t.Fatalf("compileTimestamp(%q) failed: %v", pattern, err)
	}
	return renderConfig{timestampFormat: pattern, stamp: stamp, styler: tagStyler{}}
}

func TestCentrePad(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{"info", 9, "  info   "},
		{"verbose", 9, " verbose "},
		{"ab", 5, " ab  "},
		{"", 3, "   "},
		{"info", 4, "info"},
		{"info", 2, "info"},
		{"info", 0, "info"},
	}
	for _, tc := range cases {
		if got := CentrePad(tc.text, tc.width); got != tc.want {
			t.Fatalf("CentrePad(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestCentrePad_LeftFloorRightCeil(t *testing.T) {
	for _, text := range []string{"a", "ab", "warn", "verbose"} {
		n := len(text)
		for w := n; w <= n+10; w++ {
			got := CentrePad(text, w)
			if len(got) != w {
				t.Fatalf("CentrePad(%q, %d) has length %d", text, w, len(got))
			}
			left := (w - n) / 2
			if got[left:left+n] != text {
				t.Fatalf("CentrePad(%q, %d) = %q: text not at offset %d", text, w, got, left)
			}
			if strings.TrimSpace(got) != text {
				t.Fatalf("CentrePad(%q, %d) = %q: padding is not spaces", text, w, got)
			}
		}
	}
}

func TestRender_PlainLine(t *testing.T) {
	reg := NewRegistry(DefaultLevels())
	cfg := mustStamp(t, "%H:%M:%S")

	got, err := render("hello", LevelInfo, reg, &cfg, &hookSet{}, nil, fixedTime)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if want := "14:07:09  info    hello"; got != want {
		t.Fatalf("render() = %q, want %q", got, want)
	}
}

func TestRender_ShardPrefix(t *testing.T) {
	reg := NewRegistry(DefaultLevels())
	cfg := mustStamp(t, "%H:%M:%S")
	shard := "7"
	cfg.shard = &shard
	cfg.shardLength = 4

	got, err := render("hello", LevelWarn, reg, &cfg, &hookSet{}, nil, fixedTime)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if want := " 7  14:07:09  warn    hello"; got != want {
		t.Fatalf("render() = %q, want %q", got, want)
	}
}

func TestRender_ColorStylesEachField(t *testing.T) {
	reg := NewRegistry(DefaultLevels())
	cfg := mustStamp(t, "%H:%M:%S")
	shard := "7"
	cfg.shard = &shard
	cfg.shardLength = 4
	cfg.colorEnabled = true

	got, err := render("hello", LevelInfo, reg, &cfg, &hookSet{}, nil, fixedTime)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := "<black/yellow: 7  ><black/white:14:07:09><black/green:  info   > hello"
	if got != want {
		t.Fatalf("render() = %q, want %q", got, want)
	}
}

func TestRender_NoShardNoShardStyle(t *testing.T) {
	reg := NewRegistry(DefaultLevels())
	cfg := mustStamp(t, "%H:%M:%S")
	cfg.colorEnabled = true

	got, err := render("hello", LevelDebug, reg, &cfg, &hookSet{}, nil, fixedTime)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(got, "yellow") {
		t.Fatalf("expected no shard field, got %q", got)
	}
	if !strings.HasPrefix(got, "<black/white:14:07:09><magenta/black:  debug  >") {
		t.Fatalf("unexpected styled line %q", got)
	}
}

func TestRender_PostHookOverride(t *testing.T) {
	reg := NewRegistry(DefaultLevels())
	cfg := mustStamp(t, "%H:%M:%S")

	hookA := func(HookParams) (string, bool) { return "X", true }
	noOpinion := func(HookParams) (string, bool) { return "", false }
	hookY := func(HookParams) (string, bool) { return "Y", true }

	cases := []struct {
		name  string
		hooks []PostHook
		want  string
	}{
		{"A then no opinion", []PostHook{hookA, noOpinion}, "X"},
		{"A then Y", []PostHook{hookA, hookY}, "Y"},
		{"no opinion only", []PostHook{noOpinion}, "14:07:09  info    msg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := render("msg", LevelInfo, reg, &cfg, &hookSet{post: tc.hooks}, nil, fixedTime)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("render() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_PostHookParams(t *testing.T) {
	reg := NewRegistry(DefaultLevels())
	cfg := mustStamp(t, "%H:%M:%S")
	cfg.colorEnabled = true
	shard := "s1"
	cfg.shard = &shard
	cfg.shardLength = 4

	var seen []HookParams
	record := func(p HookParams) (string, bool) {
		seen = append(seen, p)
		return "replaced-" + p.Text, true
	}

	if _, err := render("msg", LevelWarn, reg, &cfg, &hookSet{post: []PostHook{record, record}}, nil, fixedTime); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 hook calls, got %d", len(seen))
	}
	want := HookParams{Level: LevelWarn, Text: "msg", Time: fixedTime, Timestamp: "14:07:09", Shard: "s1"}
	for i, p := range seen {
		if p != want {
			t.Fatalf("hook %d got params %+v, want %+v", i, p, want)
		}
	}
}

func TestRender_UnresolvedLevelIsInternalError(t *testing.T) {
	reg := NewRegistry(DefaultLevels())
	cfg := mustStamp(t, "%H:%M:%S")

	_, err := render("msg", "bogus", reg, &cfg, &hookSet{}, nil, fixedTime)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestLipglossStyler(t *testing.T) {
	s := NewStyler(&bytes.Buffer{})

	got := s.Apply(NewStyle(ColorRed, ColorBlack), "x")
	if !strings.Contains(got, "\033[") || !strings.Contains(got, "x") {
		t.Fatalf("expected ANSI-wrapped text, got %q", got)
	}
	if got := s.Apply(Style{}, " padded "); got != " padded " {
		t.Fatalf("default style should leave text alone, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"":        ColorDefault,
		"black":   ColorBlack,
		"Red":     ColorRed,
		" cyan ":  ColorCyan,
		"WHITE":   ColorWhite,
		"magenta": ColorMagenta,
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Fatal("expected error for unknown color")
	}
}
