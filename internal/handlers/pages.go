package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"folio.dev/internal/config"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// PageHandler serves server-rendered HTML
type PageHandler struct {
	site           config.Site
	projectService *services.ProjectService
	renderer       *render.Renderer
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(site config.Site, ps *services.ProjectService, renderer *render.Renderer) *PageHandler {
	return &PageHandler{
		site:           site,
		projectService: ps,
		renderer:       renderer,
	}
}

// Projects handles GET / and GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	page := render.Page{
		Title:        h.site.Title,
		Description:  h.site.Description,
		BaseURL:      h.site.BaseURL,
		Projects:     h.projectService.GetAll(),
		ShowReferral: h.site.ShowReferral,
	}

	var buf bytes.Buffer
	if err := h.renderer.ProjectsPage(&buf, page); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	respondHTML(w, buf.Bytes())
}

// ReferralCard handles GET /partials/referral-card
func (h *PageHandler) ReferralCard(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.ReferralCard(&buf); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	respondHTML(w, buf.Bytes())
}

func (h *PageHandler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("failed to render page", "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// respondHTML writes a fully rendered HTML body
func respondHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write HTML response", "error", err)
	}
}
