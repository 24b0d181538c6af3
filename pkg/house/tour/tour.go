// Package tour connects visitor intents to the view: it builds the view from
// preferences and applies each intent to navigation, camera and theme.
package tour

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/leonelquinteros/gotext"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/house/config"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/devtools"
	"portfoliohouse/pkg/house/nav"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/state"
	"portfoliohouse/pkg/house/theme"
)

// Orbit and zoom steps for keyboard control.
const (
	OrbitStep = 15  // degrees of azimuth
	TiltStep  = 10  // degrees of polar angle
	ZoomStep  = 0.1 // fraction of the current distance
)

// Where the export and dump intents write. An empty DumpPath uses the
// devtools default.
var (
	ExportDir = "export"
	DumpPath  = ""
)

// BuildView creates the view described by prefs.
func BuildView(prefs config.Preferences, doc *content.Document, sched frame.Scheduler) *state.View {
	reg := rooms.Default()
	v := state.New(reg, doc, sched, prefs.Camera())

	if prefs.Zoom > 0 {
		v.Rig.Zoom(prefs.Zoom/v.Rig.Distance() - 1)
	}

	if prefs.StartRoom != "" {
		if i := reg.IndexOf(prefs.StartRoom); i >= 0 {
			_ = v.Nav.GoTo(i)
		} else {
			log.Printf("Unknown start room %q, starting at the entrance", prefs.StartRoom)
		}
	}

	return v
}

// ResolveTheme runs r off the loop goroutine and posts the result to v.
// Only for renderers that do not read the terminal: a terminal resolver
// queries the tty and must not race the TUI's key reader.
func ResolveTheme(v *state.View, r theme.Resolver) {
	go func() {
		m := r.Resolve()
		if !v.Post(func(v *state.View) { v.Theme.Resolve(m) }) {
			log.Printf("Dropped theme resolution %s: view queue full", m)
		}
	}()
}

// ResolveThemeNow resolves on the calling goroutine, before any renderer
// takes over the terminal.
func ResolveThemeNow(v *state.View, r theme.Resolver) {
	v.Theme.Resolve(r.Resolve())
}

// WatchContent reloads the document at path while ctx is live, posting each
// valid document to v. Invalid documents leave the current one in place.
func WatchContent(ctx context.Context, v *state.View, path string) error {
	return content.Watch(ctx, path,
		func(doc *content.Document) { postDocument(v, path, doc) },
		func(err error) { postReloadError(v, err) })
}

func postDocument(v *state.View, path string, doc *content.Document) bool {
	ok := v.Post(func(v *state.View) {
		v.SetDocument(doc)
		logMessage(v, "%s", gotext.Get("CONTENT_RELOADED"))
		log.Printf("Content reloaded from %s", path)
	})
	if !ok {
		log.Printf("Dropped reloaded content from %s: view queue full", path)
	}
	return ok
}

func postReloadError(v *state.View, err error) bool {
	log.Printf("Content reload failed: %v", err)
	ok := v.Post(func(v *state.View) {
		logMessage(v, "DENIED{%s}", err.Error())
	})
	if !ok {
		log.Printf("Dropped content reload error: view queue full")
	}
	return ok
}

// Flush saves preference changes made while touring, such as zoom.
func Flush() {
	persist(config.Current().Flush())
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(v *state.View, intent input.Intent) {
	switch intent.Action {
	case input.ActionNone:
		return

	case input.ActionPrevious:
		v.Nav.GoToPrevious()
		return

	case input.ActionNext:
		v.Nav.GoToNext()
		return

	case input.ActionGoToRoom:
		if err := v.Nav.GoTo(intent.Room); err != nil {
			if errors.Is(err, nav.ErrInvalidIndex) {
				logMessage(v, gotext.Get("INVALID_ROOM"), intent.Room+1)
			}
		}
		return

	case input.ActionZoomIn:
		v.Rig.Zoom(-ZoomStep)
		persist(config.Current().SetZoom(v.Rig.Distance()))
		return

	case input.ActionZoomOut:
		v.Rig.Zoom(ZoomStep)
		persist(config.Current().SetZoom(v.Rig.Distance()))
		return

	case input.ActionOrbitLeft:
		v.Rig.Orbit(-OrbitStep, 0)
		return

	case input.ActionOrbitRight:
		v.Rig.Orbit(OrbitStep, 0)
		return

	case input.ActionOrbitUp:
		v.Rig.Orbit(0, -TiltStep)
		return

	case input.ActionOrbitDown:
		v.Rig.Orbit(0, TiltStep)
		return

	case input.ActionResetView:
		v.Rig.Reset()
		return

	case input.ActionToggleTheme:
		m := v.Theme.Toggle()
		persist(config.Current().SetTheme(m.String()))
		logMessage(v, gotext.Get("THEME_CHANGED"), "GT{THEME_"+strings.ToUpper(m.String())+"}")
		return

	case input.ActionHelp:
		v.ShowHelp = !v.ShowHelp
		return

	case input.ActionExport:
		path, err := devtools.ExportHTML(ExportDir, v)
		if err != nil {
			logMessage(v, "DENIED{%s}", err.Error())
		} else {
			logMessage(v, gotext.Get("EXPORTED_TO"), "ITEM{"+path+"}")
		}
		return

	case input.ActionDumpScene:
		path, err := devtools.DumpScene(DumpPath, v)
		if err != nil {
			logMessage(v, "DENIED{%s}", err.Error())
		} else {
			logMessage(v, gotext.Get("SCENE_DUMPED_TO"), "ITEM{"+path+"}")
		}
		return

	case input.ActionQuit:
		v.Quit = true
		return
	}

	logMessage(v, "%s", gotext.Get("UNKNOWN_COMMAND"))
}

func persist(err error) {
	if err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}
