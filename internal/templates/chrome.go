// Package templates renders view trees to HTML with templ components.
//
// Markup lives in the .templ files; run `templ generate` after editing them.
package templates

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"alexjohnson.dev/internal/parallax"
	"alexjohnson.dev/internal/theme"
	"alexjohnson.dev/internal/views"
)

// Chrome is the per-request state shared by every page: who the site belongs
// to, where the visitor is and which colour scheme they picked.
type Chrome struct {
	SiteName   string
	SiteURL    string
	Path       string
	Theme      theme.Preference
	Year       int
	Background string
	Socials    []views.Link
}

var navLinks = []views.Link{
	{Label: "Home", Href: "/"},
	{Label: "Projects", Href: views.ProjectsPath},
	{Label: "Experience", Href: views.JobsPath},
}

// ComposePageTitle appends the site name unless the title already carries it.
func ComposePageTitle(title, siteName string) string {
	title = strings.TrimSpace(title)
	if siteName == "" {
		return title
	}
	if title == "" || title == siteName {
		return siteName
	}
	if strings.HasPrefix(title, siteName+" | ") || strings.HasSuffix(title, " | "+siteName) {
		return title
	}
	return title + " | " + siteName
}

func canonicalURL(chrome Chrome) string {
	return strings.TrimRight(chrome.SiteURL, "/") + chrome.Path
}

func isActive(path, href string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// restingStyle places a layer where it sits at scroll offset zero, before
// the script takes over.
func restingStyle(l parallax.Layer) templ.SafeCSS {
	return templ.SafeCSS("transform: " + l.Transform(0))
}

// imageSrc routes record images through templ's URL sanitiser.
func imageSrc(src string) string {
	return string(templ.URL(src))
}

func iconLeads(icon views.Icon) bool {
	return icon == views.IconBack || icon == views.IconCode || icon == views.IconExternal
}
