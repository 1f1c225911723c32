// Package content holds the static content of the site: the projects shown on
// the projects page and the referral card. Everything here is fixed at build
// time and never mutated.
package content

import (
	"errors"
	"fmt"
	"net/url"

	"folio.dev/internal/models"
)

// projects is listed in display order.
var projects = []models.Project{
	{
		Title:       "Softmaple, A Paper Typesetting Editor.",
		Description: `Simplify your writing process with the intuitive <b>WYSIWYG</b> editor. Focus on your content while it handles the typesetting—just click to seamlessly transform rich text into clean, professional LaTeX code.`,
		ImgSrc:      "https://ik.imagekit.io/1winv85cn8g/SoftMaple/logo.png",
		Href:        "https://github.com/softmaple/softmaple",
	},
	// Placeholder entry: no link or image yet, copy to be replaced.
	{
		Title:       "Velokit, A Modern Fullstack Starter Kit.",
		Description: `A <b>fullstack</b> starter kit.`,
	},
}

// Projects returns a copy of the project list in display order
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	return out
}

// Validate checks project entries for authoring mistakes. Every problem found
// is reported, each wrapping models.ErrInvalidProject.
func Validate(entries []models.Project) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: project list is empty", models.ErrInvalidProject)
	}

	var errs []error
	for i, p := range entries {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d: missing title", models.ErrInvalidProject, i))
		}
		if p.Description == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d: missing description", models.ErrInvalidProject, i))
		}
		if p.Href != "" && !IsAbsoluteURI(p.Href) {
			errs = append(errs, fmt.Errorf("%w: entry %d: href %q is not an absolute URI", models.ErrInvalidProject, i, p.Href))
		}
		if p.ImgSrc != "" && !IsAbsoluteURI(p.ImgSrc) {
			errs = append(errs, fmt.Errorf("%w: entry %d: imgSrc %q is not an absolute URI", models.ErrInvalidProject, i, p.ImgSrc))
		}
	}
	return errors.Join(errs...)
}

// IsAbsoluteURI reports whether s parses as an absolute URI: a scheme
// followed by an authority, an opaque part (mailto:, urn:) or a path (file:///).
func IsAbsoluteURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return false
	}
	return u.Host != "" || u.Opaque != "" || u.Path != ""
}
