package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"alexjohnson.dev/internal/models"
	"alexjohnson.dev/internal/services"
	"alexjohnson.dev/internal/templates"
	"alexjohnson.dev/internal/theme"
	"alexjohnson.dev/internal/views"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	jobService     *services.JobService
	projectService *services.ProjectService
	profile        models.Profile
	siteURL        string
	now            func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(js *services.JobService, ps *services.ProjectService, profile models.Profile, siteURL string, now func() time.Time) *PageHandler {
	return &PageHandler{
		jobService:     js,
		projectService: ps,
		profile:        profile,
		siteURL:        siteURL,
		now:            now,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, views.RenderHome(h.profile, h.projectService.Featured()))
}

// ListJobs handles GET /jobs
func (h *PageHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, views.RenderList(h.jobService.GetAll()))
}

// GetJob handles GET /jobs/{slug}
func (h *PageHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	res := h.jobService.GetBySlug(chi.URLParam(r, "slug"))
	annotateResolution(r, "job", res.Slug, res.Found())
	h.write(w, r, views.Render(res))
}

// ListProjects handles GET /projects
func (h *PageHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, views.RenderList(h.projectService.GetAll()))
}

// GetProject handles GET /projects/{slug}
func (h *PageHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	res := h.projectService.GetBySlug(chi.URLParam(r, "slug"))
	annotateResolution(r, "project", res.Slug, res.Found())
	h.write(w, r, views.Render(res))
}

// NotFound renders the generic 404 page for unknown routes
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, views.PageNotFoundView())
}

// chrome builds the per-request layout state
func (h *PageHandler) chrome(r *http.Request) templates.Chrome {
	socials := make([]views.Link, 0, len(h.profile.Socials))
	for _, s := range h.profile.Socials {
		socials = append(socials, views.Link{Label: s.Label, Href: s.URL, External: true})
	}
	return templates.Chrome{
		SiteName:   h.profile.Name,
		SiteURL:    h.siteURL,
		Path:       r.URL.Path,
		Theme:      theme.FromRequest(r),
		Year:       h.now().Year(),
		Background: h.profile.Background,
		Socials:    socials,
	}
}

// write renders the page into a buffer first so a template failure can
// still produce a clean 500.
func (h *PageHandler) write(w http.ResponseWriter, r *http.Request, v views.View) {
	var buf bytes.Buffer
	if err := templates.Page(v, h.chrome(r)).Render(r.Context(), &buf); err != nil {
		slog.ErrorContext(r.Context(), "render page", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	status := v.Status
	if status <= 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
