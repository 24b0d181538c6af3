package input

import (
	"errors"
	"strings"
	"testing"
)

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Intent
	}{
		{"arrow_left", Intent{Action: ActionPrevious}},
		{"arrow_right", Intent{Action: ActionNext}},
		{"1", GoTo(0)},
		{"6", GoTo(5)},
		{"9", GoTo(8)},
		{"t", Intent{Action: ActionToggleTheme}},
		{"+", Intent{Action: ActionZoomIn}},
		{"gamepad_b", Intent{Action: ActionQuit}},
		{"%", Intent{Action: ActionNone}},
	}
	for _, tt := range tests {
		got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: tt.code})
		if got != tt.want {
			t.Errorf("MapToIntent(%q) = %+v, want %+v", tt.code, got, tt.want)
		}
	}
}

func TestReadKey(t *testing.T) {
	r := NewKeyReader(strings.NewReader("\x1b[D\x1b[Cq3 \r\x1bOA"))
	want := []string{"arrow_left", "arrow_right", "q", "3", "space", "enter", "arrow_up"}
	for _, w := range want {
		got, err := r.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey() error = %v, want %q", err, w)
		}
		if got != w {
			t.Errorf("ReadKey() = %q, want %q", got, w)
		}
	}
}

func TestReadKey_F9(t *testing.T) {
	r := NewKeyReader(strings.NewReader("\x1b[20~"))
	if got, err := r.ReadKey(); err != nil || got != "f9" {
		t.Errorf("ReadKey() = (%q, %v), want f9", got, err)
	}
}

func TestReadKey_Interrupt(t *testing.T) {
	r := NewKeyReader(strings.NewReader("\x03"))
	if _, err := r.ReadKey(); !errors.Is(err, ErrInterrupt) {
		t.Errorf("ReadKey() error = %v, want ErrInterrupt", err)
	}
}

func TestSetSingleBinding_KeepsReserved(t *testing.T) {
	t.Cleanup(ResetBindings)
	SetSingleBinding(ActionPrevious, "b")

	if got := MapToIntent(DebouncedInput{Code: "b"}); got.Action != ActionPrevious {
		t.Errorf("MapToIntent(b) = %+v, want previous", got)
	}
	if got := MapToIntent(DebouncedInput{Code: "arrow_left"}); got.Action != ActionPrevious {
		t.Errorf("arrow_left unbound after rebinding, got %+v", got)
	}
	if got := MapToIntent(DebouncedInput{Code: "p"}); got.Action != ActionNone {
		t.Errorf("MapToIntent(p) = %+v, want none after rebinding", got)
	}

	SetSingleBinding(ActionHelp, "4")
	if got := MapToIntent(DebouncedInput{Code: "4"}); got != GoTo(3) {
		t.Errorf("room digit was rebound: %+v", got)
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionZoomIn]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}

func TestApplyBindings(t *testing.T) {
	t.Cleanup(ResetBindings)

	if err := ApplyBindings(map[string]string{"toggle_theme": "m", "zoom_in": "i"}); err != nil {
		t.Fatalf("ApplyBindings() error = %v", err)
	}
	if got := MapToIntent(DebouncedInput{Code: "m"}); got.Action != ActionToggleTheme {
		t.Errorf("MapToIntent(m) = %+v, want toggle theme", got)
	}
	if got := MapToIntent(DebouncedInput{Code: "t"}); got.Action != ActionNone {
		t.Errorf("MapToIntent(t) = %+v, want none after rebinding", got)
	}
	if got := GetBindingsByAction()[ActionZoomIn]; len(got) != 1 || got[0] != "i" {
		t.Errorf("zoom in bindings = %v, want [i]", got)
	}

	err := ApplyBindings(map[string]string{"teleport": "z"})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("ApplyBindings(teleport) error = %v, want ErrUnknownAction", err)
	}
}

func TestResetBindings(t *testing.T) {
	SetSingleBinding(ActionPrevious, "b")
	ResetBindings()

	for _, code := range []string{"h", "p", "previous"} {
		if got := MapToIntent(DebouncedInput{Code: code}); got.Action != ActionPrevious {
			t.Errorf("MapToIntent(%q) = %+v after reset, want previous", code, got)
		}
	}
	if got := MapToIntent(DebouncedInput{Code: "b"}); got.Action != ActionNone {
		t.Errorf("MapToIntent(b) = %+v after reset, want none", got)
	}
}
