package views

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/models"
	"alexjohnson.dev/internal/services"
)

func strPtr(s string) *string { return &s }

func TestRenderNotFoundJob(t *testing.T) {
	res := services.Resolve(content.Default().Jobs(), "nonexistent")
	got := Render(res)

	want := View{
		Title:  "Job Not Found",
		Status: http.StatusNotFound,
		NotFound: &NotFound{
			Heading: "Job Not Found",
			Message: "The job you're looking for doesn't exist or has been removed.",
			Back:    Link{Label: "Back to Jobs", Href: "/jobs", Icon: IconBack},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("not-found view mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NotFoundView(KindJob), got); diff != "" {
		t.Fatalf("render of a miss differs from the fixed view:\n%s", diff)
	}
}

func TestRenderNotFoundProject(t *testing.T) {
	got := Render(services.Resolve(content.Default().Projects(), "TechCorp-Senior-Frontend"))
	if got.NotFound == nil {
		t.Fatal("expected not-found view")
	}
	if got.NotFound.Back.Href != "/projects" {
		t.Fatalf("back href = %q", got.NotFound.Back.Href)
	}
	if got.Detail != nil {
		t.Fatal("not-found view must not carry a detail")
	}
}

func TestRenderProjectDetail(t *testing.T) {
	got := Render(services.Resolve(content.Default().Projects(), "ecommerce-platform"))
	if got.Status != http.StatusOK || got.Detail == nil {
		t.Fatalf("expected detail view, got %+v", got)
	}
	d := got.Detail
	if d.Title != "E-commerce Platform" || d.Image != "/static/images/project1.svg" {
		t.Fatalf("unexpected header: %q %q", d.Title, d.Image)
	}

	wantSidebar := []SidebarBlock{
		{Heading: "Project Timeline", Text: "Jan 2023 - Apr 2023"},
		{Heading: "Technologies Used", Tags: []string{"Next.js", "TypeScript", "Prisma", "Stripe"}},
		{Heading: "Links", Links: []Link{
			{Label: "View GitHub Repository", Href: "https://github.com", Icon: IconCode, External: true},
			{Label: "Visit Live Site", Href: "https://example.com", Icon: IconExternal, External: true},
		}},
	}
	if diff := cmp.Diff(wantSidebar, d.Sidebar); diff != "" {
		t.Fatalf("sidebar mismatch (-want +got):\n%s", diff)
	}
	if len(d.Sections) != 2 || d.Sections[1].Heading != "Key Features" || len(d.Sections[1].Items) != 5 {
		t.Fatalf("unexpected sections: %+v", d.Sections)
	}
}

func TestRenderJobDetailWithOptionalFields(t *testing.T) {
	job := models.Job{
		Slug:             "acme",
		Title:            "Engineer",
		Company:          "Acme",
		Description:      []string{"one", "two"},
		Responsibilities: []string{"r1"},
		Achievements:     []string{"a1", "a2"},
		Skills:           []string{"Go", "Ada", "C"},
		Dates:            "2020 - 2021",
		Location:         strPtr("Remote"),
		Team:             strPtr("3 people"),
	}
	got := Render(services.Resolve([]models.Job{job}, "acme")).Detail

	wantMeta := []Meta{{Icon: IconCalendar, Text: "2020 - 2021"}, {Icon: IconMapPin, Text: "Remote"}}
	if diff := cmp.Diff(wantMeta, got.Meta); diff != "" {
		t.Fatalf("meta mismatch (-want +got):\n%s", diff)
	}
	wantSidebar := []SidebarBlock{
		{Heading: "Employment Period", Text: "2020 - 2021"},
		{Heading: "Location", Text: "Remote"},
		{Heading: "Skills & Technologies", Tags: []string{"Go", "Ada", "C"}},
		{Heading: "Team Size", Text: "3 people"},
	}
	if diff := cmp.Diff(wantSidebar, got.Sidebar); diff != "" {
		t.Fatalf("sidebar mismatch (-want +got):\n%s", diff)
	}
	wantSections := []Section{
		{Heading: "Job Description", Paragraphs: []string{"one", "two"}},
		{Heading: "Key Responsibilities", Items: []string{"r1"}},
		{Heading: "Achievements", Items: []string{"a1", "a2"}},
	}
	if diff := cmp.Diff(wantSections, got.Sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
	if got.Image != models.PlaceholderImage {
		t.Fatalf("image = %q, want placeholder", got.Image)
	}
	if got.Subtitle != "Acme" || got.ImageAlt != "Acme" {
		t.Fatalf("unexpected subtitle/alt: %q %q", got.Subtitle, got.ImageAlt)
	}
}

func TestRenderJobDetailOmitsMissingOptionalFields(t *testing.T) {
	job := models.Job{Slug: "bare", Title: "Intern", Dates: "2014", Skills: []string{"HTML"}}
	got := Render(services.Resolve([]models.Job{job}, "bare")).Detail

	var headings []string
	for _, b := range got.Sidebar {
		headings = append(headings, b.Heading)
	}
	if diff := cmp.Diff([]string{"Employment Period", "Skills & Technologies"}, headings); diff != "" {
		t.Fatalf("sidebar headings mismatch (-want +got):\n%s", diff)
	}
	if len(got.Meta) != 1 {
		t.Fatalf("expected only the date meta, got %+v", got.Meta)
	}
}

func TestRenderJobDetailKeepsEmptyPresentLocation(t *testing.T) {
	job := models.Job{Slug: "x", Location: strPtr("")}
	got := Render(services.Resolve([]models.Job{job}, "x")).Detail
	if got.Sidebar[1].Heading != "Location" {
		t.Fatalf("present location should be rendered, got %+v", got.Sidebar)
	}
}

func TestRenderProjectWithoutLinks(t *testing.T) {
	project := models.Project{Slug: "p", Name: "P", Technologies: []string{"Go"}}
	got := Render(services.Resolve([]models.Project{project}, "p")).Detail
	for _, b := range got.Sidebar {
		if b.Heading == "Links" {
			t.Fatal("expected links block to be omitted")
		}
	}

	project.Links = []models.ProjectLink{}
	got = Render(services.Resolve([]models.Project{project}, "p")).Detail
	if last := got.Sidebar[len(got.Sidebar)-1]; last.Heading != "Links" {
		t.Fatalf("declared empty link list should keep the block, got %+v", got.Sidebar)
	}
}

func TestRenderListKeepsRegistryOrder(t *testing.T) {
	jobs := content.Default().Jobs()
	got := RenderList(jobs)
	if got.List == nil || got.List.Kind != KindJob {
		t.Fatalf("expected job listing, got %+v", got)
	}
	if len(got.List.Cards) != len(jobs) {
		t.Fatalf("expected %d cards, got %d", len(jobs), len(got.List.Cards))
	}
	for i, card := range got.List.Cards {
		if card.Title != jobs[i].Title {
			t.Fatalf("card %d = %q, want %q", i, card.Title, jobs[i].Title)
		}
		if want := "/jobs/" + jobs[i].Slug; card.Link.Href != want {
			t.Fatalf("card %d href = %q, want %q", i, card.Link.Href, want)
		}
	}
}

func TestRenderListProjectCard(t *testing.T) {
	got := RenderList(content.Default().Projects())
	want := Card{
		Title:   "E-commerce Platform",
		Summary: "A modern e-commerce solution with real-time inventory management.",
		Dates:   "Jan 2023 - Apr 2023",
		Image:   "/static/images/project1.svg",
		Tags:    []string{"Next.js", "TypeScript", "Prisma", "Stripe"},
		Link:    Link{Label: "View Details", Href: "/projects/ecommerce-platform", Icon: IconArrow},
	}
	if diff := cmp.Diff(want, got.List.Cards[0]); diff != "" {
		t.Fatalf("card mismatch (-want +got):\n%s", diff)
	}
	if got.List.Heading != "Projects" {
		t.Fatalf("heading = %q", got.List.Heading)
	}
}

func TestRenderListEmpty(t *testing.T) {
	got := RenderList[models.Project](nil)
	if got.List == nil || len(got.List.Cards) != 0 {
		t.Fatalf("expected empty listing, got %+v", got.List)
	}
}

func TestRenderHome(t *testing.T) {
	reg := content.Default()
	featured := services.NewProjectService(reg).Featured()
	got := RenderHome(reg.Profile(), featured)

	if got.Home == nil {
		t.Fatal("expected home view")
	}
	var hrefs []string
	for _, c := range got.Home.Featured {
		hrefs = append(hrefs, c.Link.Href)
	}
	want := []string{"/projects/ecommerce-platform", "/projects/health-tracker", "/projects/financial-dashboard"}
	if diff := cmp.Diff(want, hrefs); diff != "" {
		t.Fatalf("featured hrefs mismatch (-want +got):\n%s", diff)
	}
	if got.Home.Featured[0].Link.Label != "View Project" {
		t.Fatalf("featured action = %q", got.Home.Featured[0].Link.Label)
	}
	if len(got.Home.Socials) != 4 {
		t.Fatalf("expected 4 socials, got %d", len(got.Home.Socials))
	}
}

func TestKindPaths(t *testing.T) {
	if KindOf[models.Job]() != KindJob || KindOf[models.Project]() != KindProject {
		t.Fatal("KindOf mismatch")
	}
	if KindJob.DetailPath("a") != "/jobs/a" || KindProject.DetailPath("b") != "/projects/b" {
		t.Fatal("detail paths mismatch")
	}
}
