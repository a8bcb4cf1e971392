package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/models"
	"alexjohnson.dev/internal/services"
	"alexjohnson.dev/internal/theme"
	"alexjohnson.dev/internal/views"
)

func testChrome(path string) Chrome {
	return Chrome{
		SiteName: "Alex Johnson",
		SiteURL:  "https://alexjohnson.dev/",
		Path:     path,
		Theme:    theme.System,
		Year:     2026,
		Socials:  []views.Link{{Label: "GitHub", Href: "https://github.com", External: true}},
	}
}

func renderPage(t *testing.T, v views.View, chrome Chrome) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Page(v, chrome).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render page: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, body string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(body, part) {
			t.Fatalf("expected body to contain %q", part)
		}
	}
}

func TestComposePageTitle(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Projects", "Projects | Alex Johnson"},
		{"", "Alex Johnson"},
		{"Alex Johnson | Full Stack Developer", "Alex Johnson | Full Stack Developer"},
		{"Projects | Alex Johnson", "Projects | Alex Johnson"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.title, "Alex Johnson"); got != tc.want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestJobNotFoundPageLinksBackToJobs(t *testing.T) {
	res := services.Resolve(content.Default().Jobs(), "nonexistent")
	body := renderPage(t, views.Render(res), testChrome("/jobs/nonexistent"))

	assertContains(t, body,
		"<title>Job Not Found | Alex Johnson</title>",
		"<h1>Job Not Found</h1>",
		`href="/jobs"`,
		"Back to Jobs",
	)
	if strings.Contains(body, "Key Responsibilities") {
		t.Fatal("not-found page must not render detail sections")
	}
}

func TestProjectDetailPage(t *testing.T) {
	res := services.Resolve(content.Default().Projects(), "ecommerce-platform")
	body := renderPage(t, views.Render(res), testChrome("/projects/ecommerce-platform"))

	assertContains(t, body,
		"<h1>E-commerce Platform</h1>",
		"Project Overview",
		"Key Features",
		`<li class="badge">Next.js</li><li class="badge">TypeScript</li><li class="badge">Prisma</li><li class="badge">Stripe</li>`,
		"View GitHub Repository",
		"Visit Live Site",
		`target="_blank" rel="noopener noreferrer"`,
		`<link rel="canonical" href="https://alexjohnson.dev/projects/ecommerce-platform">`,
	)
	if strings.Contains(body, "data-parallax") {
		t.Fatal("detail pages do not carry the parallax background")
	}
}

func TestJobDetailPageEscapesText(t *testing.T) {
	job := models.Job{
		Slug:    "x",
		Title:   "R&D <Lead>",
		Company: "Acme",
		Skills:  []string{"C++"},
	}
	body := renderPage(t, views.Render(services.Resolve([]models.Job{job}, "x")), testChrome("/jobs/x"))
	assertContains(t, body, "R&amp;D &lt;Lead&gt;", `src="/placeholder.svg"`)
	if strings.Contains(body, "<Lead>") {
		t.Fatal("expected title to be escaped")
	}
	if strings.Contains(body, "Team Size") || strings.Contains(body, "Location") {
		t.Fatal("absent optional fields must be omitted")
	}
}

func TestRichTextParagraphs(t *testing.T) {
	project := models.Project{Slug: "p", Name: "P", Description: []string{"Built with **Go**"}}
	body := renderPage(t, views.Render(services.Resolve([]models.Project{project}, "p")), testChrome("/projects/p"))
	assertContains(t, body, "<p>Built with <strong>Go</strong></p>")
}

func TestRichTextBlocksAreNotNested(t *testing.T) {
	project := models.Project{
		Slug:        "p",
		Name:        "P",
		Description: []string{"intro\n\n- one\n- two"},
		Features:    []string{"first\n\nsecond", "*single*"},
	}
	body := renderPage(t, views.Render(services.Resolve([]models.Project{project}, "p")), testChrome("/projects/p"))

	assertContains(t, body,
		"<div class=\"prose\"><p>intro</p>\n<ul>\n<li>one</li>\n<li>two</li>\n</ul></div>",
		"<li><p>first</p>\n<p>second</p></li>",
		"<li><em>single</em></li>",
	)
	if strings.Contains(body, "<p><p>") || strings.Contains(body, "<p><ul>") {
		t.Fatal("block markup must not be nested inside a paragraph")
	}
}

func TestListingPageOrder(t *testing.T) {
	body := renderPage(t, views.RenderList(content.Default().Jobs()), testChrome("/jobs"))

	last := -1
	for _, job := range content.Default().Jobs() {
		i := strings.Index(body, `href="/jobs/`+job.Slug+`"`)
		if i < 0 {
			t.Fatalf("missing link to %s", job.Slug)
		}
		if i < last {
			t.Fatalf("job %s rendered out of order", job.Slug)
		}
		last = i
	}
	assertContains(t, body, `<a class="nav-link" href="/jobs" aria-current="page">Experience</a>`)
}

func TestHomePageCarriesParallaxLayers(t *testing.T) {
	reg := content.Default()
	v := views.RenderHome(reg.Profile(), services.NewProjectService(reg).Featured())
	body := renderPage(t, v, testChrome("/"))

	assertContains(t, body,
		"<title>Alex Johnson | Full Stack Developer</title>",
		`/static/js/parallax.js`,
		`data-kind="orbit" data-coefficient="0.002" data-phase="1" data-amplitude="15" data-rotate="0"`,
		`style="transform: translate(0px, 20px);"`,
		`style="transform: translateY(0px) rotate(30deg);"`,
		"Featured Work",
		`href="/projects/financial-dashboard"`,
	)
	if n := strings.Count(body, "data-parallax "); n != 10 {
		t.Fatalf("expected 10 parallax layers, got %d", n)
	}
	if strings.Contains(body, "parallax-image") {
		t.Fatal("no background image configured")
	}
}

func TestParallaxBackgroundImage(t *testing.T) {
	reg := content.Default()
	v := views.RenderHome(reg.Profile(), services.NewProjectService(reg).Featured())
	chrome := testChrome("/")
	chrome.Background = "/static/images/background.svg"
	body := renderPage(t, v, chrome)

	assertContains(t, body,
		`data-layer="background" data-parallax data-kind="linear" data-coefficient="0.2"`,
		`<img class="parallax-image" src="/static/images/background.svg" alt="">`,
	)
	if n := strings.Count(body, "parallax-image"); n != 1 {
		t.Fatalf("expected the image on the background layer only, got %d", n)
	}
}

func TestThemeClassAndMenu(t *testing.T) {
	chrome := testChrome("/projects")
	chrome.Theme = theme.Dark
	body := renderPage(t, views.RenderList(content.Default().Projects()), chrome)

	assertContains(t, body,
		`<html lang="en" class="dark">`,
		`<form class="theme-menu" method="post" action="/theme">`,
		`<input type="hidden" name="return_to" value="/projects">`,
		`<button type="submit" name="theme" value="dark" aria-pressed="true">Dark</button>`,
	)

	chrome.Theme = theme.System
	body = renderPage(t, views.RenderList(content.Default().Projects()), chrome)
	assertContains(t, body, `<html lang="en">`)
}

func TestFooter(t *testing.T) {
	body := renderPage(t, views.PageNotFoundView(), testChrome("/missing"))
	assertContains(t, body, "&copy; 2026 Alex Johnson. All rights reserved.", "Page Not Found", `href="/"`)
}

func TestUnsafeLinkIsSanitized(t *testing.T) {
	project := models.Project{
		Slug:  "p",
		Links: []models.ProjectLink{{Label: "bad", URL: "javascript:alert(1)", Icon: models.LinkIconExternal}},
	}
	body := renderPage(t, views.Render(services.Resolve([]models.Project{project}, "p")), testChrome("/projects/p"))
	if strings.Contains(body, "javascript:") {
		t.Fatal("expected unsafe URL to be sanitized")
	}
}
