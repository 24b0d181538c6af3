// Package renderer defines rendering surfaces and the message markup they
// share.
//
// Messages carry lightweight markup: GT{KEY} is translated, ROOM{KEY} is a
// translated room name, and ACTION{..}, ITEM{..}, SUBTLE{..} and DENIED{..}
// style their operand. Each renderer turns the markup into its own styling.
package renderer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"

	"portfoliohouse/pkg/engine/locale"
)

// TextStyle represents a styling option for a span of text.
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleAction
	StyleItem
	StyleSubtle
	StyleDenied
)

// Terminal styles.
var (
	ColorRoom        = color.Style{color.FgCyan, color.OpBold}
	ColorAction      = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorItem        = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle      = color.Style{color.FgGray}
	ColorDenied      = color.Style{color.FgRed, color.OpBold}
	ColorActive      = color.Style{color.FgBlack, color.BgCyan, color.OpBold}
)

var markupPattern = regexp.MustCompile(`([A-Z]+){([^{}]+)}`)

// Span is a run of text with a single style.
type Span struct {
	Text  string
	Style TextStyle
}

func sprintf(msg string, a ...any) string {
	if len(a) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, a...)
}

// Parse formats msg with a and splits the result into styled spans.
func Parse(msg string, a ...any) []Span {
	return Spans(sprintf(msg, a...))
}

// Spans splits an already formatted message into styled spans. Unknown
// markup functions are kept verbatim.
func Spans(s string) []Span {
	var spans []Span
	last := 0
	for _, m := range markupPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: s[last:m[0]]})
		}
		spans = append(spans, markupSpan(s[m[2]:m[3]], s[m[4]:m[5]], s[m[0]:m[1]]))
		last = m[1]
	}
	if last < len(s) {
		spans = append(spans, Span{Text: s[last:]})
	}
	return spans
}

func markupSpan(function, operand, raw string) Span {
	switch function {
	case "GT":
		return Span{Text: locale.T(operand)}
	case "ROOM":
		return Span{Text: locale.T(operand), Style: StyleRoom}
	case "ACTION":
		return Span{Text: operand, Style: StyleAction}
	case "ITEM":
		return Span{Text: operand, Style: StyleItem}
	case "SUBTLE":
		return Span{Text: operand, Style: StyleSubtle}
	case "DENIED":
		return Span{Text: operand, Style: StyleDenied}
	default:
		return Span{Text: raw}
	}
}

// FormatString formats a message for the terminal, turning markup into ANSI
// styles.
func FormatString(msg string, a ...any) string {
	return Styled(sprintf(msg, a...))
}

// Styled turns the markup of an already formatted message into ANSI styles.
func Styled(s string) string {
	var b strings.Builder
	for _, sp := range Spans(s) {
		b.WriteString(StyleText(sp.Text, sp.Style))
	}
	return b.String()
}

// StyleText applies a terminal style to text.
func StyleText(text string, style TextStyle) string {
	switch style {
	case StyleRoom:
		return ColorRoom.Sprint(text)
	case StyleAction:
		// First letter highlighted, like a keyboard shortcut.
		_, n := utf8.DecodeRuneInString(text)
		return ColorActionShort.Sprint(text[:n]) + ColorAction.Sprint(text[n:])
	case StyleItem:
		return ColorItem.Sprint(text)
	case StyleSubtle:
		return ColorSubtle.Sprint(text)
	case StyleDenied:
		return ColorDenied.Sprint(text)
	default:
		return text
	}
}

// PlainString formats a message and strips the markup.
func PlainString(msg string, a ...any) string {
	return Plain(sprintf(msg, a...))
}

// Plain strips the markup from an already formatted message.
func Plain(s string) string {
	var b strings.Builder
	for _, sp := range Spans(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// VisibleWidth returns the printed width of a terminal-formatted string.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(color.ClearCode(s))
}
