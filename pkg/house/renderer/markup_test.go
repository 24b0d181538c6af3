package renderer

import (
	"testing"

	"github.com/gookit/color"
)

func TestParse(t *testing.T) {
	spans := Parse("Saved to ITEM{%s} in SUBTLE{0.2s}", "/tmp/index.html")
	want := []Span{
		{Text: "Saved to "},
		{Text: "/tmp/index.html", Style: StyleItem},
		{Text: " in "},
		{Text: "0.2s", Style: StyleSubtle},
	}
	if len(spans) != len(want) {
		t.Fatalf("Parse() = %v, want %v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, spans[i], want[i])
		}
	}
}

func TestParse_UnknownFunctionKept(t *testing.T) {
	if got := PlainString("a BOGUS{x} b"); got != "a BOGUS{x} b" {
		t.Errorf("PlainString() = %q, want %q", got, "a BOGUS{x} b")
	}
}

func TestPlain_KeepsPercent(t *testing.T) {
	msg := "100% ACTION{done} at 50%d"
	if got := Plain(msg); got != "100% done at 50%d" {
		t.Errorf("Plain(%q) = %q, want %q", msg, got, "100% done at 50%d")
	}
	if got := color.ClearCode(Styled(msg)); got != "100% done at 50%d" {
		t.Errorf("ClearCode(Styled(%q)) = %q, want %q", msg, got, "100% done at 50%d")
	}
}

func TestFormatString_VisibleText(t *testing.T) {
	got := FormatString("Press ACTION{next} for ITEM{more}")
	if plain := color.ClearCode(got); plain != "Press next for more" {
		t.Errorf("ClearCode(FormatString()) = %q, want %q", plain, "Press next for more")
	}
}

func TestFormatText_NoRenderer(t *testing.T) {
	SetRenderer(nil)
	if got := FormatText("GT{UNTRANSLATED_KEY}"); got != "UNTRANSLATED_KEY" {
		t.Errorf("FormatText() = %q, want %q", got, "UNTRANSLATED_KEY")
	}
}
