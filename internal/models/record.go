package models

// PlaceholderImage is served when a record carries no image of its own.
const PlaceholderImage = "/placeholder.svg"

// Record is the part of a job or project every page renders the same way.
type Record interface {
	Key() string
	DisplayTitle() string
	Summary() string
	Paragraphs() []string
	Tags() []string
	ImageRef() string
	DateRange() string
}

// imageOrPlaceholder returns ref, or the placeholder when ref is empty.
func imageOrPlaceholder(ref string) string {
	if ref == "" {
		return PlaceholderImage
	}
	return ref
}
