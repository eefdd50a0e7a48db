package cv

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/folio/internal/timeline"
)

// Section titles, in page order.
const (
	SectionExperience = "Work Experience"
	SectionEducation  = "Education"
)

// ErrMissingStart is returned for an entry without a start date.
var ErrMissingStart = errors.New("missing start date")

// RawEntry is an entry exactly as it appears in the source document.
// Dates are kept as strings until the section is built.
type RawEntry struct {
	Title       string `json:"title" yaml:"title"`
	Institution string `json:"institution" yaml:"institution"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Start       string `json:"start,omitempty" yaml:"start,omitempty"`
	End         string `json:"end,omitempty" yaml:"end,omitempty"`
}

// Document is the CV data file.
type Document struct {
	Experience []RawEntry `json:"experience" yaml:"experience"`
	Education  []RawEntry `json:"education" yaml:"education"`
}

// ValidationError describes one bad entry in a section.
type ValidationError struct {
	Section string
	Index   int
	Title   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("%s: entry %d (%q): %v", e.Section, e.Index, e.Title, e.Err)
	}
	return fmt.Sprintf("%s: entry %d: %v", e.Section, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// SectionResult is a built section, or the reason it could not be built.
type SectionResult struct {
	Title string
	Rows  []timeline.Row
	Err   error
}
