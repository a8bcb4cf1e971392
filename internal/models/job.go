package models

// Job represents one position in the work history
type Job struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	ShortDescription string   `json:"short_description"`
	Description      []string `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Skills           []string `json:"skills"`
	Dates            string   `json:"dates"`
	Location         *string  `json:"location,omitempty"`
	Team             *string  `json:"team,omitempty"`
	Logo             string   `json:"logo,omitempty"`
}

func (j Job) Key() string          { return j.Slug }
func (j Job) DisplayTitle() string { return j.Title }
func (j Job) Summary() string      { return j.ShortDescription }
func (j Job) Paragraphs() []string { return j.Description }
func (j Job) Tags() []string       { return j.Skills }
func (j Job) ImageRef() string     { return imageOrPlaceholder(j.Logo) }
func (j Job) DateRange() string    { return j.Dates }

// JobList wraps the array of jobs
type JobList struct {
	Jobs []Job `json:"jobs"`
}
