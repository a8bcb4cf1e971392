package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"alexjohnson.dev/internal/config"
	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/models"
	"alexjohnson.dev/internal/parallax"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{ServerAddr: ":0", SiteURL: "https://alexjohnson.dev"}
	return SetupRoutes(cfg, content.Default())
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestPageRoutes(t *testing.T) {
	router := newTestRouter(t)
	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "Featured Work"},
		{"/jobs", http.StatusOK, "Work Experience"},
		{"/jobs/techcorp-senior-frontend", http.StatusOK, "<h1>Senior Frontend Developer</h1>"},
		{"/jobs/nonexistent", http.StatusNotFound, "Job Not Found"},
		{"/jobs/TechCorp-Senior-Frontend", http.StatusNotFound, "Job Not Found"},
		{"/projects", http.StatusOK, "A collection of my recent work and personal projects"},
		{"/projects/ecommerce-platform", http.StatusOK, "<h1>E-commerce Platform</h1>"},
		{"/projects/missing", http.StatusNotFound, "Project Not Found"},
		{"/nowhere", http.StatusNotFound, "Page Not Found"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec := get(t, router, tc.path)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Fatalf("content type = %q", ct)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("body missing %q", tc.want)
			}
		})
	}
}

func TestJobNotFoundPageLinksToListing(t *testing.T) {
	rec := get(t, newTestRouter(t), "/jobs/nonexistent")
	body := rec.Body.String()
	if !strings.Contains(body, `<a class="button primary" href="/jobs">`) {
		t.Fatalf("expected back link to /jobs in %s", body)
	}
}

func TestPageUsesThemeCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	rec := do(t, newTestRouter(t), req)
	if !strings.Contains(rec.Body.String(), `<html lang="en" class="dark">`) {
		t.Fatal("expected dark class on html element")
	}
}

func TestAPIProject(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/projects/ecommerce-platform")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var project models.Project
	if err := json.NewDecoder(rec.Body).Decode(&project); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if project.Name != "E-commerce Platform" {
		t.Fatalf("name = %q", project.Name)
	}
	if diff := cmp.Diff([]string{"Next.js", "TypeScript", "Prisma", "Stripe"}, project.Technologies); diff != "" {
		t.Fatalf("technologies mismatch (-want +got):\n%s", diff)
	}
}

func TestAPINotFound(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/api/projects/nope", "/api/jobs/nonexistent"} {
		rec := get(t, router, path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status = %d, want 404", path, rec.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if body["error"] == "" {
			t.Fatalf("%s: expected error message", path)
		}
	}
}

func TestAPIListJobsOrder(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/jobs")
	var jobs []models.Job
	if err := json.NewDecoder(rec.Body).Decode(&jobs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := content.Default().Jobs()
	if diff := cmp.Diff(want, jobs); diff != "" {
		t.Fatalf("jobs mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIParallax(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/parallax?offset=500")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got parallax.Offsets
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != parallax.ComputeOffsets(500) {
		t.Fatalf("offsets = %+v", got)
	}

	rec = get(t, router, "/api/parallax")
	var zero parallax.Offsets
	if err := json.NewDecoder(rec.Body).Decode(&zero); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if zero.Orbit1 != (parallax.Point{X: 0, Y: 20}) {
		t.Fatalf("orbit_1 at rest = %+v", zero.Orbit1)
	}

	for _, bad := range []string{"abc", "NaN", "Inf"} {
		if rec := get(t, router, "/api/parallax?offset="+bad); rec.Code != http.StatusBadRequest {
			t.Fatalf("offset %q: status = %d, want 400", bad, rec.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health response: %d %s", rec.Code, rec.Body.String())
	}
}

func postTheme(t *testing.T, h http.Handler, form url.Values, referer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	return do(t, h, req)
}

func TestSetTheme(t *testing.T) {
	router := newTestRouter(t)

	rec := postTheme(t, router, url.Values{"theme": {"dark"}, "return_to": {"/projects"}}, "")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/projects" {
		t.Fatalf("location = %q", loc)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "dark" {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
}

func TestSetThemeRedirectTargets(t *testing.T) {
	router := newTestRouter(t)
	tests := []struct {
		name     string
		returnTo string
		referer  string
		want     string
	}{
		{"referer fallback", "", "http://example.com/jobs", "/jobs"},
		{"foreign referer", "", "http://evil.test/jobs", "/"},
		{"protocol relative", "//evil.test/x", "", "/"},
		{"absolute url", "https://evil.test/", "", "/"},
		{"tab before slash", "/\t/evil.test", "", "/"},
		{"newline before slash", "/\n/evil.test", "", "/"},
		{"carriage return", "/\r\n/evil.test", "", "/"},
		{"encoded tab in referer", "", "http://example.com/%09/evil.test", "/"},
		{"nothing", "", "", "/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{"theme": {"light"}}
			if tc.returnTo != "" {
				form.Set("return_to", tc.returnTo)
			}
			rec := postTheme(t, router, form, tc.referer)
			if loc := rec.Header().Get("Location"); loc != tc.want {
				t.Fatalf("location = %q, want %q", loc, tc.want)
			}
		})
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	rec := postTheme(t, newTestRouter(t), url.Values{"theme": {"sepia"}}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no cookie should be set for an invalid theme")
	}
}

func TestStaticAssets(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/static/css/site.css", "/static/js/parallax.js", "/placeholder.svg"} {
		if rec := get(t, router, path); rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", path, rec.Code)
		}
	}
}

func TestRecordImagesAreServed(t *testing.T) {
	router := newTestRouter(t)
	reg := content.Default()

	refs := []string{reg.Profile().Portrait, reg.Profile().Background}
	for _, job := range reg.Jobs() {
		refs = append(refs, job.ImageRef())
	}
	for _, project := range reg.Projects() {
		refs = append(refs, project.ImageRef())
	}
	for _, ref := range refs {
		rec := get(t, router, ref)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", ref, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
			t.Fatalf("%s: content type = %q", ref, ct)
		}
	}
}

func TestHomeDrawsProfileBackground(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")
	want := `<img class="parallax-image" src="` + content.Default().Profile().Background + `" alt="">`
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("expected body to contain %q", want)
	}
}
