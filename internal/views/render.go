package views

import (
	"net/http"
	"strings"

	"alexjohnson.dev/internal/models"
	"alexjohnson.dev/internal/services"
)

// KindOf reports which record family T belongs to.
func KindOf[T models.Record]() Kind {
	var zero T
	if _, ok := any(zero).(models.Job); ok {
		return KindJob
	}
	return KindProject
}

// Render builds the detail page for a resolution, or the not-found page when
// the slug matched nothing.
func Render[T models.Record](res services.Resolution[T]) View {
	if !res.Found() {
		return NotFoundView(KindOf[T]())
	}
	switch rec := any(*res.Record).(type) {
	case models.Job:
		return jobDetail(rec)
	case models.Project:
		return projectDetail(rec)
	default:
		return NotFoundView(KindOf[T]())
	}
}

// NotFoundView is the fixed page for an unknown slug of the given kind.
func NotFoundView(kind Kind) View {
	noun := kind.Noun()
	return View{
		Title:  noun + " Not Found",
		Status: http.StatusNotFound,
		NotFound: &NotFound{
			Heading: noun + " Not Found",
			Message: "The " + strings.ToLower(noun) + " you're looking for doesn't exist or has been removed.",
			Back:    backLink(kind),
		},
	}
}

// PageNotFoundView is shown for routes the site does not serve at all.
func PageNotFoundView() View {
	return View{
		Title:  "Page Not Found",
		Status: http.StatusNotFound,
		NotFound: &NotFound{
			Heading: "Page Not Found",
			Message: "The page you're looking for doesn't exist.",
			Back:    Link{Label: "Back to Home", Href: "/", Icon: IconBack},
		},
	}
}

func backLink(kind Kind) Link {
	return Link{Label: "Back to " + kind.Plural(), Href: kind.BasePath(), Icon: IconBack}
}

func jobDetail(job models.Job) View {
	meta := []Meta{{Icon: IconCalendar, Text: job.DateRange()}}
	if job.Location != nil {
		meta = append(meta, Meta{Icon: IconMapPin, Text: *job.Location})
	}

	sidebar := []SidebarBlock{{Heading: "Employment Period", Text: job.DateRange()}}
	if job.Location != nil {
		sidebar = append(sidebar, SidebarBlock{Heading: "Location", Text: *job.Location})
	}
	sidebar = append(sidebar, SidebarBlock{Heading: "Skills & Technologies", Tags: job.Tags()})
	if job.Team != nil {
		sidebar = append(sidebar, SidebarBlock{Heading: "Team Size", Text: *job.Team})
	}

	return View{
		Title:       job.DisplayTitle() + " at " + job.Company,
		Description: job.Summary(),
		Status:      http.StatusOK,
		Detail: &Detail{
			Kind:     KindJob,
			Title:    job.DisplayTitle(),
			Subtitle: job.Company,
			Image:    job.ImageRef(),
			ImageAlt: imageAlt(job),
			Back:     backLink(KindJob),
			Meta:     meta,
			Sections: []Section{
				{Heading: "Job Description", Paragraphs: job.Paragraphs()},
				{Heading: "Key Responsibilities", Items: job.Responsibilities},
				{Heading: "Achievements", Items: job.Achievements},
			},
			Sidebar: sidebar,
		},
	}
}

func projectDetail(project models.Project) View {
	sidebar := []SidebarBlock{
		{Heading: "Project Timeline", Text: project.DateRange()},
		{Heading: "Technologies Used", Tags: project.Tags()},
	}
	if project.HasLinks() {
		links := make([]Link, 0, len(project.Links))
		for _, l := range project.Links {
			links = append(links, Link{Label: l.Label, Href: l.URL, Icon: linkIcon(l.Icon), External: true})
		}
		sidebar = append(sidebar, SidebarBlock{Heading: "Links", Links: links})
	}

	return View{
		Title:       project.DisplayTitle(),
		Description: project.Summary(),
		Status:      http.StatusOK,
		Detail: &Detail{
			Kind:     KindProject,
			Title:    project.DisplayTitle(),
			Image:    project.ImageRef(),
			ImageAlt: imageAlt(project),
			Back:     backLink(KindProject),
			Meta:     []Meta{{Icon: IconCalendar, Text: project.DateRange()}},
			Sections: []Section{
				{Heading: "Project Overview", Paragraphs: project.Paragraphs()},
				{Heading: "Key Features", Items: project.Features},
			},
			Sidebar: sidebar,
		},
	}
}

func linkIcon(icon models.LinkIcon) Icon {
	if icon == models.LinkIconGitHub {
		return IconCode
	}
	return IconExternal
}

// RenderList builds the listing page for a collection, in collection order.
func RenderList[T models.Record](records []T) View {
	kind := KindOf[T]()
	list := &List{Kind: kind, Cards: make([]Card, 0, len(records))}
	if kind == KindJob {
		list.Heading = "Work Experience"
		list.Intro = "My professional journey and career highlights"
	} else {
		list.Heading = "Projects"
		list.Intro = "A collection of my recent work and personal projects"
	}
	for _, rec := range records {
		list.Cards = append(list.Cards, cardFor(kind, rec, "View Details"))
	}
	return View{
		Title:       list.Heading,
		Description: list.Intro,
		Status:      http.StatusOK,
		List:        list,
	}
}

func cardFor(kind Kind, rec models.Record, action string) Card {
	card := Card{
		Title:   rec.DisplayTitle(),
		Summary: rec.Summary(),
		Dates:   rec.DateRange(),
		Image:   rec.ImageRef(),
		Tags:    rec.Tags(),
		Link:    Link{Label: action, Href: kind.DetailPath(rec.Key()), Icon: IconArrow},
	}
	if job, ok := rec.(models.Job); ok {
		card.Subtitle = job.Company
	}
	return card
}

// RenderHome builds the landing page from the owner profile and the
// featured projects, which keep the order they are given in.
func RenderHome(profile models.Profile, featured []models.Project) View {
	home := &Home{
		Name:     profile.Name,
		Headline: profile.Headline,
		Intro:    profile.Intro,
		Portrait: profile.Portrait,
		Actions: []Link{
			{Label: "View Projects", Href: ProjectsPath, Icon: IconArrow},
			{Label: "My Experience", Href: JobsPath},
		},
		FeaturedHeading: "Featured Work",
		Featured:        make([]Card, 0, len(featured)),
	}
	for _, s := range profile.Socials {
		home.Socials = append(home.Socials, Link{Label: s.Label, Href: s.URL, External: true})
	}
	for _, p := range featured {
		home.Featured = append(home.Featured, cardFor(KindProject, p, "View Project"))
	}
	return View{
		Title:       profile.Name + " | " + profile.Headline,
		Description: profile.Intro,
		Status:      http.StatusOK,
		Home:        home,
	}
}
