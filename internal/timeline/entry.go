package timeline

// Entry is one résumé line item with a date range. A nil End means the
// entry is ongoing.
type Entry struct {
	Title       string     `json:"title"`
	Institution string     `json:"institution"`
	Location    string     `json:"location"`
	Description string     `json:"description,omitempty"`
	Start       YearMonth  `json:"start"`
	End         *YearMonth `json:"end,omitempty"`
}

// Ongoing reports whether the entry has no end date.
func (e Entry) Ongoing() bool {
	return e.End == nil
}

// DateRange renders "<start> - <end>", with "Present" for ongoing entries.
func (e Entry) DateRange() string {
	return e.Start.Format() + " - " + FormatEnd(e.End)
}

// Row is one rendered timeline group: an anchor entry plus the closed
// entries absorbed under it.
type Row struct {
	Primary    Entry   `json:"primary"`
	Concurrent []Entry `json:"concurrent"`
}

// Section is a named collection of entries.
type Section struct {
	Title   string
	Entries []Entry
}
