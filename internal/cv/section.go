package cv

import (
	"strings"
	"time"

	"github.com/ziadkadry99/folio/internal/timeline"
)

// ToEntry converts a raw entry into a timeline entry. The start date is
// required; an empty end date, or "present", marks the entry as ongoing.
func (r RawEntry) ToEntry() (timeline.Entry, error) {
	e := timeline.Entry{
		Title:       strings.TrimSpace(r.Title),
		Institution: strings.TrimSpace(r.Institution),
		Location:    strings.TrimSpace(r.Location),
		Description: strings.TrimSpace(r.Description),
	}

	if strings.TrimSpace(r.Start) == "" {
		return timeline.Entry{}, ErrMissingStart
	}
	start, err := timeline.ParseYearMonth(r.Start)
	if err != nil {
		return timeline.Entry{}, err
	}
	e.Start = start

	end := strings.TrimSpace(r.End)
	if end != "" && !strings.EqualFold(end, "present") {
		v, err := timeline.ParseYearMonth(end)
		if err != nil {
			return timeline.Entry{}, err
		}
		e.End = &v
	}
	return e, nil
}

// Section validates raw entries and returns them as a timeline section.
// The first invalid entry fails the whole section.
func Section(title string, raw []RawEntry) (timeline.Section, error) {
	sec := timeline.Section{Title: title, Entries: make([]timeline.Entry, 0, len(raw))}
	for i, r := range raw {
		e, err := r.ToEntry()
		if err != nil {
			return timeline.Section{Title: title}, &ValidationError{
				Section: title,
				Index:   i,
				Title:   strings.TrimSpace(r.Title),
				Err:     err,
			}
		}
		sec.Entries = append(sec.Entries, e)
	}
	return sec, nil
}

// BuildSections turns the document into grouped timeline sections. A
// section with invalid data carries its error; the others are unaffected.
func (d *Document) BuildSections(now time.Time) []SectionResult {
	inputs := []struct {
		title string
		raw   []RawEntry
	}{
		{SectionExperience, d.Experience},
		{SectionEducation, d.Education},
	}

	results := make([]SectionResult, 0, len(inputs))
	for _, in := range inputs {
		sec, err := Section(in.title, in.raw)
		if err != nil {
			results = append(results, SectionResult{Title: in.title, Err: err})
			continue
		}
		results = append(results, SectionResult{
			Title: sec.Title,
			Rows:  timeline.Build(sec.Entries, now),
		})
	}
	return results
}
