package models

// LinkIcon selects the glyph drawn next to a project link
type LinkIcon string

const (
	LinkIconGitHub   LinkIcon = "github"
	LinkIconExternal LinkIcon = "external"
)

// ProjectLink is an outbound link attached to a project
type ProjectLink struct {
	Label string   `json:"label"`
	URL   string   `json:"url"`
	Icon  LinkIcon `json:"icon"`
}

// Project represents a portfolio project
type Project struct {
	Slug             string        `json:"slug"`
	Name             string        `json:"name"`
	ShortDescription string        `json:"short_description"`
	Description      []string      `json:"description"`
	Features         []string      `json:"features"`
	Technologies     []string      `json:"technologies"`
	Dates            string        `json:"dates"`
	Image            string        `json:"image,omitempty"`
	Links            []ProjectLink `json:"links,omitempty"`
}

// HasLinks reports whether the project declares a link list at all.
// A nil list means the section is absent; an empty one is still rendered.
func (p Project) HasLinks() bool {
	return p.Links != nil
}

func (p Project) Key() string          { return p.Slug }
func (p Project) DisplayTitle() string { return p.Name }
func (p Project) Summary() string      { return p.ShortDescription }
func (p Project) Paragraphs() []string { return p.Description }
func (p Project) Tags() []string       { return p.Technologies }
func (p Project) ImageRef() string     { return imageOrPlaceholder(p.Image) }
func (p Project) DateRange() string    { return p.Dates }

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
