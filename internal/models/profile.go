package models

// SocialLink points at one of the owner's public profiles
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Profile holds the site owner's landing page content
type Profile struct {
	Name          string       `json:"name"`
	Headline      string       `json:"headline"`
	Intro         string       `json:"intro"`
	Portrait      string       `json:"portrait"`
	Background    string       `json:"background"`
	Socials       []SocialLink `json:"socials"`
	FeaturedSlugs []string     `json:"featured"`
}
