package content

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when a key the rooms index into is absent or empty.
var ErrMissingField = errors.New("content: missing field")

// Validate checks every field a room renders by fixed key. All problems are
// reported together.
func (d *Document) Validate() error {
	var errs []error
	require := func(path, v string) {
		if v == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, path))
		}
	}

	require("personal.name", d.Personal.Name)
	require("personal.title", d.Personal.Title)
	require("personal.tagline", d.Personal.Tagline)
	require("personal.email", d.Personal.Email)

	require("about.heading", d.About.Heading)
	if len(d.About.Paragraphs) == 0 {
		errs = append(errs, fmt.Errorf("%w: about.paragraphs", ErrMissingField))
	}
	for i, s := range d.About.Stats {
		require(fmt.Sprintf("about.stats[%d].value", i), s.Value)
		require(fmt.Sprintf("about.stats[%d].label", i), s.Label)
	}

	require("skills.heading", d.Skills.Heading)
	for i, c := range d.Skills.Categories {
		require(fmt.Sprintf("skills.categories[%d].title", i), c.Title)
	}

	require("experience.heading", d.Experience.Heading)
	for i, e := range d.Experience.Items {
		require(fmt.Sprintf("experience.items[%d].title", i), e.Title)
		require(fmt.Sprintf("experience.items[%d].company", i), e.Company)
		require(fmt.Sprintf("experience.items[%d].period", i), e.Period)
	}

	require("projects.heading", d.Projects.Heading)
	for i, p := range d.Projects.Items {
		require(fmt.Sprintf("projects.items[%d].title", i), p.Title)
		require(fmt.Sprintf("projects.items[%d].description", i), p.Description)
	}

	require("contact.heading", d.Contact.Heading)
	require("contact.description", d.Contact.Description)

	return errors.Join(errs...)
}
