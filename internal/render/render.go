// Package render turns site content into HTML. Templates are embedded and
// parsed once; every render is a pure function of its input, so rendering the
// same content twice produces identical bytes.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the view model of the full projects page
type Page struct {
	Title        string
	Description  string
	BaseURL      string
	Projects     []models.Project
	ShowReferral bool
}

// Renderer renders projects and the referral card
type Renderer struct {
	tmpl        *template.Template
	policy      *bluemonday.Policy
	placeholder string
}

// linkData feeds the "link" partial
type linkData struct {
	Href      string
	AriaLabel string
	Class     string
	Text      string
	External  bool
}

// tile is a project prepared for the project_tiles template
type tile struct {
	Slug        string
	Title       string
	Description template.HTML
	Href        string
	Image       string
}

type pageData struct {
	Title       string
	Description string
	Canonical   string
	Tiles       []tile
	Referral    *models.ReferralCard
}

// New parses the embedded templates. placeholder is the image used for
// projects that have none of their own.
func New(placeholder string) (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"link": newLink,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		tmpl:        tmpl,
		policy:      descriptionPolicy(),
		placeholder: placeholder,
	}, nil
}

// descriptionPolicy allows the inline markup project descriptions use
func descriptionPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "code", "br")
	return p
}

// newLink builds the data for the link partial. Absolute http(s) links open
// in a new tab.
func newLink(href, ariaLabel, class, text string) linkData {
	return linkData{
		Href:      href,
		AriaLabel: ariaLabel,
		Class:     class,
		Text:      text,
		External:  isExternal(href),
	}
}

func isExternal(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Description sanitises a project description down to inline markup
func (r *Renderer) Description(s string) template.HTML {
	return template.HTML(r.policy.Sanitize(s))
}

// ReferralCard writes the referral card fragment
func (r *Renderer) ReferralCard(w io.Writer) error {
	card := content.Referral()
	if err := r.tmpl.ExecuteTemplate(w, "referral_card", card); err != nil {
		return fmt.Errorf("render referral card: %w", err)
	}
	return nil
}

// ProjectTiles writes one tile per project, in the given order
func (r *Renderer) ProjectTiles(w io.Writer, projects []models.Project) error {
	if err := r.tmpl.ExecuteTemplate(w, "project_tiles", r.tiles(projects)); err != nil {
		return fmt.Errorf("render project tiles: %w", err)
	}
	return nil
}

// ProjectsPage writes the full projects page document
func (r *Renderer) ProjectsPage(w io.Writer, page Page) error {
	data := pageData{
		Title:       page.Title,
		Description: page.Description,
		Tiles:       r.tiles(page.Projects),
	}
	if page.BaseURL != "" {
		data.Canonical = strings.TrimRight(page.BaseURL, "/") + "/projects"
	}
	if page.ShowReferral {
		card := content.Referral()
		data.Referral = &card
	}

	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("render projects page: %w", err)
	}
	return nil
}

func (r *Renderer) tiles(projects []models.Project) []tile {
	tiles := make([]tile, 0, len(projects))
	for _, p := range projects {
		img := p.ImgSrc
		if img == "" {
			img = r.placeholder
		}
		tiles = append(tiles, tile{
			Slug:        content.Slug(p.Title),
			Title:       p.Title,
			Description: r.Description(p.Description),
			Href:        p.Href,
			Image:       img,
		})
	}
	return tiles
}
