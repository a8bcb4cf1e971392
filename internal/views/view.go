// Package views turns resolved records into presentation-ready view trees.
//
// Views carry no markup: they are plain data in display order, rendered to
// HTML by package templates and asserted on directly in tests.
package views

import "alexjohnson.dev/internal/models"

// Kind is the record family a page is about.
type Kind string

const (
	KindJob     Kind = "job"
	KindProject Kind = "project"
)

// Listing paths; detail pages live at BasePath + "/" + slug.
const (
	JobsPath     = "/jobs"
	ProjectsPath = "/projects"
)

// BasePath returns the listing path of the kind.
func (k Kind) BasePath() string {
	if k == KindJob {
		return JobsPath
	}
	return ProjectsPath
}

// Noun is the singular display name.
func (k Kind) Noun() string {
	if k == KindJob {
		return "Job"
	}
	return "Project"
}

// Plural is the plural display name.
func (k Kind) Plural() string {
	return k.Noun() + "s"
}

// DetailPath is the URL of a record's detail page.
func (k Kind) DetailPath(slug string) string {
	return k.BasePath() + "/" + slug
}

// Icon names a glyph the templates know how to draw.
type Icon string

const (
	IconNone     Icon = ""
	IconArrow    Icon = "arrow-right"
	IconBack     Icon = "arrow-left"
	IconCalendar Icon = "calendar"
	IconMapPin   Icon = "map-pin"
	IconCode     Icon = "code"
	IconExternal Icon = "external-link"
)

// Link is a navigation affordance.
type Link struct {
	Label    string
	Href     string
	Icon     Icon
	External bool
}

// View is everything a page needs. Exactly one of Home, List, Detail and
// NotFound is set.
type View struct {
	Title       string
	Description string
	Status      int

	Home     *Home
	List     *List
	Detail   *Detail
	NotFound *NotFound
}

// NotFound is the terminal page shown when a slug resolves to nothing.
type NotFound struct {
	Heading string
	Message string
	Back    Link
}

// Meta is a single line of the detail header, such as the date range.
type Meta struct {
	Icon Icon
	Text string
}

// Section is a headed block of the detail body. Paragraphs and Items hold
// rich text.
type Section struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

// SidebarBlock is one entry of the detail sidebar. Only one of Text, Tags
// and Links is populated.
type SidebarBlock struct {
	Heading string
	Text    string
	Tags    []string
	Links   []Link
}

// Detail is a full record page.
type Detail struct {
	Kind     Kind
	Title    string
	Subtitle string
	Image    string
	ImageAlt string
	Back     Link
	Meta     []Meta
	Sections []Section
	Sidebar  []SidebarBlock
}

// Card is the narrow projection of a record used on listings.
type Card struct {
	Title    string
	Subtitle string
	Summary  string
	Dates    string
	Image    string
	Tags     []string
	Link     Link
}

// List is a listing page.
type List struct {
	Kind    Kind
	Heading string
	Intro   string
	Cards   []Card
}

// Home is the landing page.
type Home struct {
	Name            string
	Headline        string
	Intro           string
	Portrait        string
	Actions         []Link
	Socials         []Link
	FeaturedHeading string
	Featured        []Card
}

func imageAlt(rec models.Record) string {
	if job, ok := rec.(models.Job); ok {
		return job.Company
	}
	return rec.DisplayTitle()
}
