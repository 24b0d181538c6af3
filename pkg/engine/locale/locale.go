// Package locale selects the UI language and loads its gettext catalogue.
package locale

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"github.com/leonelquinteros/gotext"
)

// Fallback is used when the system language has no catalogue.
const Fallback = "en_GB"

// Domain is the catalogue name, locales/<lang>/default.po.
const Domain = "default"

// Normalize turns "en-GB", "en_GB.UTF-8" or "en" into gettext form ("en_GB", "en").
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "-", "_")
	parts := strings.SplitN(tag, "_", 2)
	if len(parts) == 2 {
		return strings.ToLower(parts[0]) + "_" + strings.ToUpper(parts[1])
	}
	return strings.ToLower(tag)
}

// Detect returns the system language, or "" if it cannot be determined.
func Detect() string {
	tag, err := golocale.GetLocale()
	if err != nil || tag == "" || tag == "C" || tag == "POSIX" {
		return ""
	}
	return Normalize(tag)
}

// Available reports whether dir has a catalogue for lang, either under the
// full tag or its two-letter language.
func Available(dir, lang string) bool {
	if lang == "" {
		return false
	}
	candidates := []string{lang}
	if len(lang) > 2 {
		candidates = append(candidates, lang[:2])
	}
	for _, l := range candidates {
		if _, err := os.Stat(filepath.Join(dir, l, Domain+".po")); err == nil {
			return true
		}
	}
	return false
}

// Resolve picks the language to use: the preferred one if it has a
// catalogue, then the system language, then Fallback.
func Resolve(dir, preferred string) string {
	if preferred != "" {
		if p := Normalize(preferred); Available(dir, p) {
			return p
		}
	}
	if sys := Detect(); Available(dir, sys) {
		return sys
	}
	return Fallback
}

// Init configures gettext for the resolved language and returns it.
func Init(dir, preferred string) string {
	lang := Resolve(dir, preferred)
	if !Available(dir, lang) {
		log.Printf("No %s catalogue under %s; showing message keys", lang, dir)
	}
	gotext.Configure(dir, lang, Domain)
	return lang
}

// T returns the translation of key. The key is never used as a format
// string; callers that need arguments format the result themselves.
func T(key string) string {
	var none []any
	return gotext.Get(key, none...)
}
