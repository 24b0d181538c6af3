package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/engine/locale"
	"portfoliohouse/pkg/house/config"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/devtools"
	"portfoliohouse/pkg/house/renderer"
	ebitenrenderer "portfoliohouse/pkg/house/renderer/ebiten"
	"portfoliohouse/pkg/house/renderer/tui"
	"portfoliohouse/pkg/house/state"
	"portfoliohouse/pkg/house/theme"
	"portfoliohouse/pkg/house/tour"
)

type options struct {
	configPath string
	localesDir string
	renderer   string
	room       string
	content    string
	theme      string
	watch      bool
	export     string
	dump       string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", config.DefaultPath, "preferences file")
	flag.StringVar(&o.localesDir, "locales", "locales", "directory holding <lang>/default.po catalogues")
	flag.StringVar(&o.renderer, "renderer", "", "renderer to use: ebiten or tui")
	flag.StringVar(&o.room, "room", "", "room to start in (entrance, about, skills, experience, projects, contact)")
	flag.StringVar(&o.content, "content", "", "portfolio content file (JSON or YAML)")
	flag.StringVar(&o.theme, "theme", "", "theme: system, dark or light")
	flag.BoolVar(&o.watch, "watch", false, "reload the content file when it changes")
	flag.StringVar(&o.export, "export", "", "write a static HTML rendition to this directory and exit")
	flag.StringVar(&o.dump, "dump", "", "write a scene dump to this file and exit")
	flag.Parse()
	return o
}

// applyFlags overrides preferences with any flags given on the command line.
func applyFlags(prefs *config.Preferences, o options) {
	if o.renderer != "" {
		prefs.Renderer = o.renderer
	}
	if o.room != "" {
		prefs.StartRoom = o.room
	}
	if o.content != "" {
		prefs.Content = o.content
	}
	if o.theme != "" {
		prefs.Theme = o.theme
	}
	if o.watch {
		prefs.Watch = true
	}
}

func main() {
	o := parseFlags()

	saved, err := config.LoadFile(o.configPath)
	if err != nil {
		log.Fatalf("Failed to load preferences: %v", err)
	}
	prefs := saved
	if err := config.ParseEnv(&prefs); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	applyFlags(&prefs, o)
	if err := prefs.Validate(); err != nil {
		log.Fatalf("Invalid preferences: %v", err)
	}
	config.Init(o.configPath, saved, prefs)

	if err := input.ApplyBindings(prefs.Bindings); err != nil {
		log.Fatalf("Invalid key bindings: %v", err)
	}

	lang := locale.Init(o.localesDir, prefs.Language)
	log.Printf("Using language %s", lang)

	doc, err := content.OrDefault(prefs.Content)
	if err != nil {
		log.Fatalf("Failed to load portfolio content: %v", err)
	}

	loop := frame.NewLoop()
	v := tour.BuildView(prefs, doc, loop)

	if o.export != "" || o.dump != "" {
		if err := runHeadless(v, prefs, o); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if prefs.Watch && prefs.Content != "" {
		go func() {
			if err := tour.WatchContent(ctx, v, prefs.Content); err != nil {
				log.Printf("Content watcher stopped: %v", err)
			}
		}()
	}

	var r renderer.Renderer
	switch prefs.Renderer {
	case "tui":
		tour.ResolveThemeNow(v, theme.ForPreference(prefs.Theme))
		r = tui.New(loop)
	default:
		tour.ResolveTheme(v, theme.ForPreference(prefs.Theme))
		r = ebitenrenderer.New(loop, prefs.Width, prefs.Height)
	}
	renderer.SetRenderer(r)
	renderer.Init()

	err = r.Run(v, func(i input.Intent) { tour.ProcessIntent(v, i) })
	tour.Flush()
	if err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}
}

// runHeadless writes the requested artefacts without opening a renderer.
// The theme is resolved synchronously and the view mounted so the output
// reflects the visitor's palette.
func runHeadless(v *state.View, prefs config.Preferences, o options) error {
	tour.ResolveThemeNow(v, theme.ForPreference(prefs.Theme))
	v.Theme.Mount()

	if o.export != "" {
		path, err := devtools.ExportHTML(o.export, v)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.Printf("Exported to %s", path)
	}
	if o.dump != "" {
		path, err := devtools.DumpScene(o.dump, v)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		log.Printf("Scene dumped to %s", path)
	}
	return nil
}
