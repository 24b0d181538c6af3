// Package config loads user preferences: built-in defaults, then the TOML
// preferences file, then PORTFOLIO_* environment variables. Command-line flags
// are applied last by main.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/house/camera"
)

// DefaultPath is where preferences are read from and saved to.
const DefaultPath = "~/.config/portfoliohouse/preferences.toml"

var (
	ErrUnknownTheme    = errors.New("config: unknown theme")
	ErrUnknownRenderer = errors.New("config: unknown renderer")
)

// Preferences are the user-tunable settings.
type Preferences struct {
	Theme     string  `toml:"theme" env:"PORTFOLIO_THEME"`
	Renderer  string  `toml:"renderer" env:"PORTFOLIO_RENDERER"`
	Damping   float64 `toml:"damping" env:"PORTFOLIO_DAMPING"`
	Epsilon   float64 `toml:"epsilon" env:"PORTFOLIO_EPSILON"`
	Width     int     `toml:"width" env:"PORTFOLIO_WIDTH"`
	Height    int     `toml:"height" env:"PORTFOLIO_HEIGHT"`
	Language  string  `toml:"language" env:"PORTFOLIO_LANGUAGE"`
	Content   string  `toml:"content" env:"PORTFOLIO_CONTENT"`
	StartRoom string  `toml:"start_room" env:"PORTFOLIO_START_ROOM"`
	Watch     bool    `toml:"watch" env:"PORTFOLIO_WATCH"`
	Zoom      float32 `toml:"zoom" env:"PORTFOLIO_ZOOM"` // Camera distance; 0 keeps the start pose

	// Bindings maps an action name ("next", "zoom_in", ...) to the single key
	// that replaces its default keys.
	Bindings map[string]string `toml:"bindings,omitempty"`
}

// Defaults returns the built-in preferences.
func Defaults() Preferences {
	return Preferences{
		Theme:    "system",
		Renderer: "ebiten",
		Damping:  camera.DefaultDamping,
		Epsilon:  camera.DefaultEpsilon,
		Width:    1280,
		Height:   800,
	}
}

// Camera returns the easing parameters.
func (p Preferences) Camera() camera.Config {
	return camera.Config{Damping: p.Damping, Epsilon: p.Epsilon}
}

// Validate checks enumerated and numeric fields.
func (p Preferences) Validate() error {
	switch p.Theme {
	case "system", "dark", "light":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, p.Theme)
	}
	switch p.Renderer {
	case "ebiten", "tui":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, p.Renderer)
	}
	if err := p.Camera().Validate(); err != nil {
		return err
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", p.Width, p.Height)
	}
	for name := range p.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("config: binding: %w: %q", input.ErrUnknownAction, name)
		}
	}
	return nil
}

// ParseEnv applies PORTFOLIO_* environment variables to p.
func ParseEnv(p *Preferences) error {
	if err := env.Parse(p); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads preferences from path and applies PORTFOLIO_* environment
// variables. A missing file is not an error.
func Load(path string) (Preferences, error) {
	prefs, err := LoadFile(path)
	if err != nil {
		return prefs, err
	}
	if err := ParseEnv(&prefs); err != nil {
		return prefs, err
	}
	return prefs, prefs.Validate()
}

// LoadFile reads the defaults and the preferences file only, without
// environment overrides. This is the copy Store writes back.
func LoadFile(path string) (Preferences, error) {
	prefs := Defaults()

	expanded, err := homedir.Expand(path)
	if err != nil {
		return prefs, fmt.Errorf("expand preferences path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return prefs, fmt.Errorf("read preferences: %w", err)
	default:
		if err := toml.Unmarshal(data, &prefs); err != nil {
			return prefs, fmt.Errorf("decode %s: %w", expanded, err)
		}
	}

	return prefs, prefs.Validate()
}

// Save writes preferences to path, creating its directory.
func Save(path string, prefs Preferences) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand preferences path: %w", err)
	}
	data, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	return os.WriteFile(expanded, data, 0o644)
}

// Store holds the process-wide preferences and where to persist them.
// It keeps two copies: the preferences as read from the file, and the
// effective ones with environment and flag overrides applied. Setters change
// both but only the file copy is ever written back.
type Store struct {
	mu    sync.RWMutex
	path  string
	saved Preferences
	prefs Preferences
	dirty bool
}

var (
	currentMu sync.RWMutex
	current   = &Store{saved: Defaults(), prefs: Defaults()}
)

// Init makes effective the process-wide preferences. saved is what was read
// from path and what setters persist to it. An empty path disables
// persistence.
func Init(path string, saved, effective Preferences) *Store {
	s := &Store{path: path, saved: saved, prefs: effective}
	currentMu.Lock()
	current = s
	currentMu.Unlock()
	return s
}

// Current returns the process-wide store.
func Current() *Store {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// Get returns a copy of the effective preferences.
func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Saved returns a copy of the preferences as they are (or will be) on disk.
func (s *Store) Saved() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved
}

// SetTheme records the theme and saves.
func (s *Store) SetTheme(name string) error {
	if err := s.update(func(p *Preferences) { p.Theme = name }); err != nil {
		return err
	}
	return s.Flush()
}

// SetZoom records the camera distance. It is saved by the next Flush, so
// a burst of wheel events writes the file once.
func (s *Store) SetZoom(distance float32) error {
	return s.update(func(p *Preferences) { p.Zoom = distance })
}

// Flush writes the file copy if it has unsaved changes.
func (s *Store) Flush() error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	saved, path := s.saved, s.path
	s.mu.Unlock()

	if path == "" {
		return nil
	}
	return Save(path, saved)
}

func (s *Store) update(fn func(*Preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.prefs
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	s.prefs = next
	fn(&s.saved)
	s.dirty = true
	return nil
}
