package render

import (
	"html/template"

	"github.com/ziadkadry99/folio/internal/cv"
	"github.com/ziadkadry99/folio/internal/timeline"
)

// EntryView is the display form of one timeline entry.
type EntryView struct {
	Title       string
	Institution string
	Location    string
	Description string
	DateRange   string
	Current     bool
}

// RowView is the display form of a timeline row.
type RowView struct {
	Primary    EntryView
	Concurrent []EntryView
}

// SectionView is a titled timeline, or an inline error in its place.
type SectionView struct {
	Title string
	Rows  []RowView
	Error string
}

// NavLink is one in-site navigation link.
type NavLink struct {
	ID     string
	Title  string
	Href   string
	Active bool
}

// PhotoView is one image in the photo strip.
type PhotoView struct {
	Name string
	URL  string
}

// PhotoStrip is the photo gallery fragment.
type PhotoStrip struct {
	Photos       []PhotoView
	ScrollOffset int
}

// ShellData is everything the full page needs.
type ShellData struct {
	SiteTitle  string
	PageID     string
	Nav        []NavLink
	DarkMode   bool
	Content    template.HTML
	LiveReload bool
}

func entryView(e timeline.Entry) EntryView {
	return EntryView{
		Title:       e.Title,
		Institution: e.Institution,
		Location:    e.Location,
		Description: e.Description,
		DateRange:   e.DateRange(),
		Current:     e.Ongoing(),
	}
}

// NewSection maps builder output to a section view.
func NewSection(title string, rows []timeline.Row, err error) SectionView {
	view := SectionView{Title: title, Rows: make([]RowView, 0, len(rows))}
	if err != nil {
		view.Error = err.Error()
		return view
	}
	for _, r := range rows {
		rv := RowView{Primary: entryView(r.Primary), Concurrent: make([]EntryView, 0, len(r.Concurrent))}
		for _, c := range r.Concurrent {
			rv.Concurrent = append(rv.Concurrent, entryView(c))
		}
		view.Rows = append(view.Rows, rv)
	}
	return view
}

// FromResults converts built CV sections into views, preserving order.
func FromResults(results []cv.SectionResult) []SectionView {
	views := make([]SectionView, 0, len(results))
	for _, r := range results {
		views = append(views, NewSection(r.Title, r.Rows, r.Err))
	}
	return views
}
