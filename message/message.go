package message

import (
	"github.com/saylorsolutions/conkit/terminal"
	"strconv"
	"strings"
)

const (
	tagForeground = "color"
	tagBackground = "background"
	defaultName   = "default"
)

// Segment is a run of text sharing the same colors.
// A nil color means no color was requested, so whatever the driver currently uses applies.
type Segment struct {
	Text       string
	Foreground *terminal.Color
	Background *terminal.Color
}

// colorDefault is resolved at print time to the colors the driver reported when printing started.
// It's distinct from [terminal.ColorDefault], which is the terminal's own default.
const colorDefault terminal.Color = -2

var colorNames = map[string]terminal.Color{
	"black":         terminal.Black,
	"red":           terminal.Red,
	"green":         terminal.Green,
	"yellow":        terminal.Yellow,
	"blue":          terminal.Blue,
	"magenta":       terminal.Magenta,
	"cyan":          terminal.Cyan,
	"white":         terminal.White,
	"gray":          terminal.White,
	"grey":          terminal.White,
	"darkgray":      terminal.BrightBlack,
	"darkgrey":      terminal.BrightBlack,
	"brightblack":   terminal.BrightBlack,
	"brightred":     terminal.BrightRed,
	"brightgreen":   terminal.BrightGreen,
	"brightyellow":  terminal.BrightYellow,
	"brightblue":    terminal.BrightBlue,
	"brightmagenta": terminal.BrightMagenta,
	"brightcyan":    terminal.BrightCyan,
	"brightwhite":   terminal.BrightWhite,
}

// ParseColor interprets a color name or palette index.
// The name "default" is not accepted here, since it only has meaning while printing.
func ParseColor(value string) (terminal.Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if c, ok := colorNames[value]; ok {
		return c, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return terminal.Color(n), true
}

// DecipherMessages splits markup into colored segments.
//
// The inline tags {color:<name-or-int>} and {background:<name-or-int>} switch the foreground or background from that point until the next tag of the same kind.
// A tag value of "default" switches back to the color in use when printing started.
// Anything that isn't a well-formed tag is kept as literal text, and "{{" is a literal "{".
func DecipherMessages(msg string) []Segment {
	var (
		segments []Segment
		fg, bg   *terminal.Color
		text     strings.Builder
	)
	flush := func() {
		if text.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Text: text.String(), Foreground: fg, Background: bg})
		text.Reset()
	}
	for len(msg) > 0 {
		start := strings.IndexByte(msg, '{')
		if start < 0 {
			text.WriteString(msg)
			break
		}
		text.WriteString(msg[:start])
		msg = msg[start:]
		if strings.HasPrefix(msg, "{{") {
			text.WriteByte('{')
			msg = msg[2:]
			continue
		}
		end := strings.IndexByte(msg, '}')
		if end < 0 {
			text.WriteString(msg)
			break
		}
		kind, value, isTag := parseTag(msg[1:end])
		if !isTag {
			text.WriteByte('{')
			msg = msg[1:]
			continue
		}
		flush()
		switch kind {
		case tagForeground:
			fg = &value
		case tagBackground:
			bg = &value
		}
		msg = msg[end+1:]
	}
	flush()
	return segments
}

func parseTag(body string) (kind string, color terminal.Color, ok bool) {
	kind, value, found := strings.Cut(body, ":")
	if !found {
		return "", 0, false
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != tagForeground && kind != tagBackground {
		return "", 0, false
	}
	if strings.EqualFold(strings.TrimSpace(value), defaultName) {
		return kind, colorDefault, true
	}
	color, ok = ParseColor(value)
	if !ok {
		return "", 0, false
	}
	return kind, color, true
}

// IsDefault reports whether c is the print-time "default" placeholder produced by a {color:default} tag.
func IsDefault(c terminal.Color) bool {
	return c == colorDefault
}

// Escape neutralizes markup tags in user-provided text, so it's printed literally.
func Escape(text string) string {
	return strings.ReplaceAll(text, "{", "{{")
}

// Strip removes all markup tags, returning only the text.
func Strip(msg string) string {
	var buf strings.Builder
	for _, seg := range DecipherMessages(msg) {
		buf.WriteString(seg.Text)
	}
	return buf.String()
}
