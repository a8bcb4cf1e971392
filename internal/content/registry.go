// Package content holds the site's records: every job, every project and the
// owner profile. The data is compiled into the binary and decoded once.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"alexjohnson.dev/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// Registry is an immutable set of content records, safe for concurrent use.
// Accessors return fresh slices; the records' own lists are shared and must
// be treated as read-only.
type Registry struct {
	jobs     []models.Job
	projects []models.Project
	profile  models.Profile
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from the embedded data.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = mustLoadEmbedded()
	})
	return defaultRegistry
}

// New builds a registry from the given records. It fails when a slug is
// empty or repeated within its collection.
func New(jobs []models.Job, projects []models.Project, profile models.Profile) (*Registry, error) {
	if err := checkSlugs("job", jobs); err != nil {
		return nil, err
	}
	if err := checkSlugs("project", projects); err != nil {
		return nil, err
	}
	profile.Socials = slices.Clone(profile.Socials)
	profile.FeaturedSlugs = slices.Clone(profile.FeaturedSlugs)
	return &Registry{
		jobs:     slices.Clone(jobs),
		projects: slices.Clone(projects),
		profile:  profile,
	}, nil
}

// Jobs returns every job in declaration order.
func (r *Registry) Jobs() []models.Job {
	return slices.Clone(r.jobs)
}

// Projects returns every project in declaration order.
func (r *Registry) Projects() []models.Project {
	return slices.Clone(r.projects)
}

// Profile returns the site owner's profile.
func (r *Registry) Profile() models.Profile {
	p := r.profile
	p.Socials = slices.Clone(p.Socials)
	p.FeaturedSlugs = slices.Clone(p.FeaturedSlugs)
	return p
}

func checkSlugs[T models.Record](kind string, records []T) error {
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		slug := rec.Key()
		if slug == "" {
			return fmt.Errorf("%s #%d has no slug", kind, i)
		}
		if _, dup := seen[slug]; dup {
			return fmt.Errorf("duplicate %s slug: %s", kind, slug)
		}
		seen[slug] = struct{}{}
	}
	return nil
}

// mustLoadEmbedded decodes the compiled-in data files. The files ship with
// the binary, so any failure here is a build defect.
func mustLoadEmbedded() *Registry {
	var jobs models.JobList
	mustDecode("data/jobs.json", &jobs)

	var projects models.ProjectList
	mustDecode("data/projects.json", &projects)

	var profile models.Profile
	mustDecode("data/profile.json", &profile)

	reg, err := New(jobs.Jobs, projects.Projects, profile)
	if err != nil {
		panic("Invalid embedded content: " + err.Error())
	}
	return reg
}

func mustDecode(name string, target any) {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		panic("Failed to load " + name + ": " + err.Error())
	}
	if err := json.Unmarshal(data, target); err != nil {
		panic("Failed to parse " + name + ": " + err.Error())
	}
}
