package logger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color is one of the eight basic terminal colors, or ColorDefault to leave
// the terminal's own color in place.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = [...]string{"default", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// ParseColor maps a color name (case-insensitive) to a Color.
// The empty string parses as ColorDefault.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ColorDefault, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", s)
}

// ansi returns the ANSI palette index of the color, or "" for ColorDefault.
func (c Color) ansi() string {
	if c <= ColorDefault || c > ColorWhite {
		return ""
	}
	return strconv.Itoa(int(c) - 1)
}

// Style is a foreground/background pair applied to a rendered field.
type Style struct {
	Foreground Color
	Background Color
}

// NewStyle returns a Style with the given foreground and background.
func NewStyle(fg, bg Color) Style {
	return Style{Foreground: fg, Background: bg}
}

func (s Style) String() string {
	return s.Foreground.String() + "/" + s.Background.String()
}

var (
	shardStyle     = NewStyle(ColorBlack, ColorYellow)
	timestampStyle = NewStyle(ColorBlack, ColorWhite)
)

// Styler wraps text in the escape sequences for a Style.
type Styler interface {
	Apply(style Style, text string) string
}

// lipglossStyler renders styles through a lipgloss renderer bound to the
// output writer. The color profile is pinned to ANSI: whether to color is
// decided by the logger configuration, not by terminal detection.
type lipglossStyler struct {
	r *lipgloss.Renderer
}

// NewStyler returns the default Styler for output w.
func NewStyler(w io.Writer) Styler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &lipglossStyler{r: r}
}

func (s *lipglossStyler) Apply(style Style, text string) string {
	ls := s.r.NewStyle()
	if fg := style.Foreground.ansi(); fg != "" {
		ls = ls.Foreground(lipgloss.Color(fg))
	}
	if bg := style.Background.ansi(); bg != "" {
		ls = ls.Background(lipgloss.Color(bg))
	}
	return ls.Render(text)
}
