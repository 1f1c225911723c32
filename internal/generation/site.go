package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/models"
	"folio.dev/internal/render"
	"folio.dev/internal/static"
)

// SiteFile is one file written by the generator
type SiteFile struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

// Manifest lists everything a Generate run wrote, in write order
type Manifest struct {
	Projects int        `json:"projects"`
	Files    []SiteFile `json:"files"`
}

// SiteGenerator writes the site as static files
type SiteGenerator struct {
	site     config.Site
	renderer *render.Renderer
	projects []models.Project

	files []SiteFile
}

// NewSiteGenerator creates a generator for the given site settings
func NewSiteGenerator(site config.Site, renderer *render.Renderer) *SiteGenerator {
	return &SiteGenerator{
		site:     site,
		renderer: renderer,
		projects: content.Projects(),
	}
}

// Generate writes the site under outDir and returns its manifest
func (sg *SiteGenerator) Generate(outDir string) (*Manifest, error) {
	// Each run reports only its own files
	sg.files = make([]SiteFile, 0)

	// 1. Refuse to publish broken content
	if err := content.Validate(sg.projects); err != nil {
		return nil, fmt.Errorf("validating content: %w", err)
	}

	// 2. Render the projects page (served at / and /projects)
	var page bytes.Buffer
	if err := sg.renderer.ProjectsPage(&page, sg.page()); err != nil {
		return nil, err
	}
	if err := sg.write(outDir, "index.html", page.Bytes()); err != nil {
		return nil, err
	}
	if err := sg.write(outDir, filepath.Join("projects", "index.html"), page.Bytes()); err != nil {
		return nil, err
	}

	// 3. Render the referral card fragment
	var card bytes.Buffer
	if err := sg.renderer.ReferralCard(&card); err != nil {
		return nil, err
	}
	if err := sg.write(outDir, filepath.Join("partials", "referral-card.html"), card.Bytes()); err != nil {
		return nil, err
	}

	// 4. Mirror the JSON API
	if err := sg.writeJSON(outDir, filepath.Join("api", "projects.json"), sg.views()); err != nil {
		return nil, err
	}
	if err := sg.writeJSON(outDir, filepath.Join("api", "referral.json"), content.Referral()); err != nil {
		return nil, err
	}

	// 5. Copy static assets
	if err := sg.copyStatic(outDir); err != nil {
		return nil, fmt.Errorf("copying static assets: %w", err)
	}

	return &Manifest{Projects: len(sg.projects), Files: sg.files}, nil
}

func (sg *SiteGenerator) page() render.Page {
	return render.Page{
		Title:        sg.site.Title,
		Description:  sg.site.Description,
		BaseURL:      sg.site.BaseURL,
		Projects:     sg.projects,
		ShowReferral: sg.site.ShowReferral,
	}
}

func (sg *SiteGenerator) views() []models.ProjectView {
	views := make([]models.ProjectView, 0, len(sg.projects))
	for _, p := range sg.projects {
		views = append(views, models.ProjectView{Project: p, Slug: content.Slug(p.Title)})
	}
	return views
}

func (sg *SiteGenerator) writeJSON(outDir, rel string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", rel, err)
	}
	return sg.write(outDir, rel, append(data, '\n'))
}

func (sg *SiteGenerator) write(outDir, rel string, data []byte) error {
	path := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	sg.files = append(sg.files, SiteFile{Path: filepath.ToSlash(rel), Bytes: len(data)})
	return nil
}

func (sg *SiteGenerator) copyStatic(outDir string) error {
	assets := static.FS()
	return fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}
		return sg.write(outDir, filepath.Join("static", filepath.FromSlash(name)), data)
	})
}
