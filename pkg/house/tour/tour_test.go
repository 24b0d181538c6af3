package tour

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/house/camera"
	"portfoliohouse/pkg/house/config"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/state"
	"portfoliohouse/pkg/house/theme"
)

func newView(t *testing.T, prefs config.Preferences) (*state.View, *frame.Manual) {
	t.Helper()
	config.Init("", prefs, prefs)
	sched := frame.NewManual()
	return BuildView(prefs, content.Default(), sched), sched
}

func TestBuildView_StartRoom(t *testing.T) {
	prefs := config.Defaults()
	prefs.StartRoom = "projects"
	v, sched := newView(t, prefs)

	if v.Nav.Active() != 4 {
		t.Fatalf("Nav.Active() = %d, want 4", v.Nav.Active())
	}
	v.Mount()
	sched.RunUntilIdle(1000)
	if v.Camera.Position() != 60 {
		t.Errorf("Camera.Position() = %v, want 60", v.Camera.Position())
	}
}

func TestBuildView_UnknownStartRoom(t *testing.T) {
	prefs := config.Defaults()
	prefs.StartRoom = "attic"
	v, _ := newView(t, prefs)
	if v.Nav.Active() != 0 {
		t.Errorf("Nav.Active() = %d, want 0", v.Nav.Active())
	}
}

func TestBuildView_Zoom(t *testing.T) {
	prefs := config.Defaults()
	prefs.Zoom = 10
	v, _ := newView(t, prefs)
	if d := v.Rig.Distance(); d < 9.99 || d > 10.01 {
		t.Errorf("Rig.Distance() = %v, want 10", d)
	}
}

func TestProcessIntent_Navigation(t *testing.T) {
	v, _ := newView(t, config.Defaults())

	tests := []struct {
		intent input.Intent
		want   int
	}{
		{input.Intent{Action: input.ActionPrevious}, 0},
		{input.Intent{Action: input.ActionNext}, 1},
		{input.GoTo(5), 5},
		{input.Intent{Action: input.ActionNext}, 5},
		{input.GoTo(9), 5},
		{input.GoTo(-1), 5},
		{input.Intent{Action: input.ActionPrevious}, 4},
	}

	for _, tt := range tests {
		ProcessIntent(v, tt.intent)
		if v.Nav.Active() != tt.want {
			t.Errorf("after %+v Nav.Active() = %d, want %d", tt.intent, v.Nav.Active(), tt.want)
		}
	}
	if v.Camera.Target() != 60 {
		t.Errorf("Camera.Target() = %v, want 60", v.Camera.Target())
	}
}

func TestProcessIntent_InvalidRoomLogsMessage(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	ProcessIntent(v, input.GoTo(6))
	if len(v.Messages) != 1 {
		t.Errorf("Messages = %v, want one entry", v.Messages)
	}
}

func TestProcessIntent_ToggleThemePersists(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	v.Mount()
	v.Theme.Resolve(theme.Dark)

	ProcessIntent(v, input.Intent{Action: input.ActionToggleTheme})
	if v.Theme.IsDark() {
		t.Error("IsDark() = true after toggling from dark")
	}
	if got := config.Current().Get().Theme; got != "light" {
		t.Errorf("saved theme = %q, want %q", got, "light")
	}
}

func TestProcessIntent_ZoomClamped(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	for i := 0; i < 50; i++ {
		ProcessIntent(v, input.Intent{Action: input.ActionZoomOut})
	}
	if d := v.Rig.Distance(); d != camera.MaxDistance {
		t.Errorf("Rig.Distance() = %v, want %v", d, camera.MaxDistance)
	}
	if got := config.Current().Get().Zoom; got != camera.MaxDistance {
		t.Errorf("saved zoom = %v, want %v", got, camera.MaxDistance)
	}
}

func TestProcessIntent_QuitAndHelp(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	ProcessIntent(v, input.Intent{Action: input.ActionHelp})
	if !v.ShowHelp {
		t.Error("ShowHelp = false after help intent")
	}
	ProcessIntent(v, input.Intent{Action: input.ActionQuit})
	if !v.Quit {
		t.Error("Quit = false after quit intent")
	}
}

func TestProcessIntent_Export(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	ExportDir = t.TempDir()
	ProcessIntent(v, input.Intent{Action: input.ActionExport})

	if _, err := os.Stat(filepath.Join(ExportDir, "index.html")); err != nil {
		t.Errorf("export not written: %v", err)
	}
}

func TestResolveTheme_PostsToView(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	v.Mount()
	ResolveTheme(v, theme.Fixed(theme.Light))

	deadline := time.Now().Add(2 * time.Second)
	for v.Drain() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("theme resolution never posted")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if v.Theme.IsDark() {
		t.Error("IsDark() = true after resolving light")
	}
}

func TestResolveThemeNow(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	v.Mount()
	ResolveThemeNow(v, theme.Fixed(theme.Light))

	if v.Theme.IsDark() {
		t.Error("IsDark() = true after resolving light")
	}
	if n := v.Drain(); n != 0 {
		t.Errorf("Drain() = %d, want 0", n)
	}
}

func TestProcessIntent_ZoomSavedOnFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.toml")
	prefs := config.Defaults()
	config.Init(path, prefs, prefs)
	v := BuildView(prefs, content.Default(), frame.NewManual())

	for i := 0; i < 5; i++ {
		ProcessIntent(v, input.Intent{Action: input.ActionZoomIn})
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("preferences written while zooming: %v", err)
	}

	Flush()
	saved, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if saved.Zoom != v.Rig.Distance() {
		t.Errorf("saved zoom = %v, want %v", saved.Zoom, v.Rig.Distance())
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestPostDocument_LogsDropWhenQueueFull(t *testing.T) {
	v, _ := newView(t, config.Defaults())
	for v.Post(func(*state.View) {}) {
	}
	buf := captureLog(t)

	if postDocument(v, "portfolio.yaml", content.Default()) {
		t.Error("postDocument() = true with a full queue, want false")
	}
	if !strings.Contains(buf.String(), "Dropped reloaded content from portfolio.yaml") {
		t.Errorf("log = %q, want a dropped-content line", buf.String())
	}
	if postReloadError(v, errors.New("bad yaml")) {
		t.Error("postReloadError() = true with a full queue, want false")
	}

	v.Drain()
	if !postDocument(v, "portfolio.yaml", content.Default()) {
		t.Error("postDocument() = false after draining, want true")
	}
}
