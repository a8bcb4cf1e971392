package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/models"
)

func TestResolveFindsEverySlug(t *testing.T) {
	jobs := content.Default().Jobs()
	for _, job := range jobs {
		res := Resolve(jobs, job.Slug)
		if !res.Found() {
			t.Fatalf("expected %s to resolve", job.Slug)
		}
		if res.Record.Slug != job.Slug {
			t.Fatalf("resolved %s, want %s", res.Record.Slug, job.Slug)
		}
	}
}

func TestResolveMissingSlug(t *testing.T) {
	res := Resolve(content.Default().Jobs(), "nonexistent")
	if res.Found() {
		t.Fatalf("expected not found, got %+v", res.Record)
	}
	if res.Slug != "nonexistent" {
		t.Fatalf("resolution slug = %q", res.Slug)
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	jobs := content.Default().Jobs()
	for _, slug := range []string{"TechCorp-Senior-Frontend", " techcorp-senior-frontend", "techcorp-senior-frontend/"} {
		if Resolve(jobs, slug).Found() {
			t.Fatalf("expected %q not to match", slug)
		}
	}
	if !Resolve(jobs, "techcorp-senior-frontend").Found() {
		t.Fatal("expected exact slug to match")
	}
}

func TestResolveReturnsFirstMatch(t *testing.T) {
	projects := []models.Project{
		{Slug: "a", Name: "first"},
		{Slug: "a", Name: "second"},
	}
	res := Resolve(projects, "a")
	if res.Record.Name != "first" {
		t.Fatalf("resolved %q, want first", res.Record.Name)
	}
}

func TestResolveEmptyCollection(t *testing.T) {
	if Resolve[models.Job](nil, "anything").Found() {
		t.Fatal("expected empty collection to resolve nothing")
	}
}

func TestProjectServiceResolvesEcommercePlatform(t *testing.T) {
	svc := NewProjectService(content.Default())

	res := svc.GetBySlug("ecommerce-platform")
	if !res.Found() {
		t.Fatal("expected ecommerce-platform to resolve")
	}
	project := res.Record
	if project.Name != "E-commerce Platform" {
		t.Fatalf("name = %q", project.Name)
	}
	if diff := cmp.Diff([]string{"Next.js", "TypeScript", "Prisma", "Stripe"}, project.Technologies); diff != "" {
		t.Fatalf("technologies mismatch (-want +got):\n%s", diff)
	}
	var labels []string
	for _, link := range project.Links {
		labels = append(labels, link.Label)
	}
	if diff := cmp.Diff([]string{"View GitHub Repository", "Visit Live Site"}, labels); diff != "" {
		t.Fatalf("link labels mismatch (-want +got):\n%s", diff)
	}
}

func TestJobServiceMissingSlug(t *testing.T) {
	svc := NewJobService(content.Default())
	if svc.GetBySlug("nonexistent").Found() {
		t.Fatal("expected nonexistent job to be missing")
	}
	if len(svc.GetAll()) != 5 {
		t.Fatalf("expected 5 jobs, got %d", len(svc.GetAll()))
	}
}

func TestProjectServiceFeatured(t *testing.T) {
	svc := NewProjectService(content.Default())

	var got []string
	for _, p := range svc.Featured() {
		got = append(got, p.Slug)
	}
	want := []string{"ecommerce-platform", "health-tracker", "financial-dashboard"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("featured mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectServiceFeaturedSkipsUnknownSlugs(t *testing.T) {
	reg, err := content.New(nil,
		[]models.Project{{Slug: "b"}, {Slug: "a"}},
		models.Profile{FeaturedSlugs: []string{"a", "gone", "b"}},
	)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	var got []string
	for _, p := range NewProjectService(reg).Featured() {
		got = append(got, p.Slug)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("featured mismatch (-want +got):\n%s", diff)
	}
}
