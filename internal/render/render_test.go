package render

import (
	"errors"
	"html/template"
	"io"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/cv"
	"github.com/ziadkadry99/folio/internal/timeline"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func month(y, m int) *timeline.YearMonth {
	return &timeline.YearMonth{Year: y, Month: m}
}

func sampleRows() []timeline.Row {
	return []timeline.Row{
		{
			Primary: timeline.Entry{
				Title: "Lead Engineer", Institution: "Acme", Location: "Berlin",
				Description: "Builds <things>", Start: timeline.YearMonth{Year: 2023, Month: 1},
			},
			Concurrent: []timeline.Entry{
				{Title: "Advisor", Institution: "Lab", Location: "Remote",
					Start: timeline.YearMonth{Year: 2023, Month: 6}, End: month(2023, 9)},
			},
		},
		{
			Primary: timeline.Entry{
				Title: "Developer", Institution: "Initech", Location: "Austin",
				Start: timeline.YearMonth{Year: 2020, Month: 1}, End: month(2022, 12),
			},
			Concurrent: []timeline.Entry{},
		},
	}
}

func TestSectionRendersRows(t *testing.T) {
	r := newRenderer(t)
	var sb strings.Builder
	if err := r.Section(&sb, NewSection("Work Experience", sampleRows(), nil)); err != nil {
		t.Fatalf("Section: %v", err)
	}
	out := sb.String()

	checks := []string{
		"<h2>Work Experience</h2>",
		`<div class="timeline-date current">Jan 2023 - Present</div>`,
		`<div class="timeline-date">Jan 2020 - Dec 2022</div>`,
		`<span class="concurrent-marker">Concurrent</span>`,
		`<div class="timeline-date">Jun 2023 - Sep 2023</div>`,
		"Builds &lt;things&gt;",
		"Initech",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if n := strings.Count(out, `class="timeline-item"`); n != 2 {
		t.Errorf("timeline items = %d, want 2", n)
	}
	if n := strings.Count(out, "timeline-description"); n != 1 {
		t.Errorf("descriptions = %d, want 1 (empty ones omitted)", n)
	}
	if n := strings.Count(out, "timeline-date current"); n != 1 {
		t.Errorf("current labels = %d, want 1", n)
	}
}

func TestSectionEmpty(t *testing.T) {
	r := newRenderer(t)
	var sb strings.Builder
	if err := r.Section(&sb, NewSection("Education", nil, nil)); err != nil {
		t.Fatalf("Section: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "<h2>Education</h2>") {
		t.Errorf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, `<div class="timeline">`) {
		t.Errorf("missing timeline container:\n%s", out)
	}
	if strings.Contains(out, "timeline-item") {
		t.Errorf("empty section should have no items:\n%s", out)
	}
}

func TestSectionError(t *testing.T) {
	r := newRenderer(t)
	var sb strings.Builder
	view := NewSection("Education", nil, errors.New("entry 0: missing start date"))
	if err := r.Section(&sb, view); err != nil {
		t.Fatalf("Section: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `class="error-message"`) || !strings.Contains(out, "missing start date") {
		t.Errorf("expected inline error:\n%s", out)
	}
	if strings.Contains(out, `class="timeline"`) {
		t.Errorf("failed section should not render a timeline:\n%s", out)
	}
}

func TestCVRendersAllSections(t *testing.T) {
	r := newRenderer(t)
	views := FromResults([]cv.SectionResult{
		{Title: cv.SectionExperience, Rows: sampleRows()},
		{Title: cv.SectionEducation, Err: errors.New("bad")},
	})
	var sb strings.Builder
	if err := r.CV(&sb, views); err != nil {
		t.Fatalf("CV: %v", err)
	}
	out := sb.String()
	exp := strings.Index(out, "<h2>Work Experience</h2>")
	edu := strings.Index(out, "<h2>Education</h2>")
	if exp < 0 || edu < 0 || exp > edu {
		t.Errorf("sections missing or out of order:\n%s", out)
	}
}

func TestPhotos(t *testing.T) {
	r := newRenderer(t)
	var sb strings.Builder
	err := r.Photos(&sb, PhotoStrip{
		Photos:       []PhotoView{{Name: "a.jpg", URL: "https://example.com/a.jpg"}},
		ScrollOffset: 250,
	})
	if err != nil {
		t.Fatalf("Photos: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `src="https://example.com/a.jpg"`) {
		t.Errorf("missing image:\n%s", out)
	}
	if !strings.Contains(out, `data-scroll-offset="250"`) {
		t.Errorf("missing scroll offset:\n%s", out)
	}
	if strings.Count(out, `data-scroll="`) != 2 {
		t.Errorf("expected left and right scroll controls:\n%s", out)
	}
}

func TestShell(t *testing.T) {
	r := newRenderer(t)
	var sb strings.Builder
	err := r.Shell(&sb, ShellData{
		SiteTitle: "Jane Doe",
		PageID:    "cv",
		Nav: []NavLink{
			{ID: "home", Title: "Home", Href: "/"},
			{ID: "cv", Title: "CV", Href: "/cv", Active: true},
		},
		DarkMode: true,
		Content:  template.HTML("<p>hello</p>"),
	})
	if err != nil {
		t.Fatalf("Shell: %v", err)
	}
	out := sb.String()
	checks := []string{
		`<body class="dark-mode">`,
		`<a href="/cv" data-page="cv" class="active">CV</a>`,
		`data-current-page="cv"`,
		"<p>hello</p>",
		"Light",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("shell missing %q", want)
		}
	}
	if strings.Contains(out, "data-live-reload") {
		t.Error("live reload should be off by default")
	}
}

func TestString(t *testing.T) {
	r := newRenderer(t)
	html, err := String(func(w io.Writer) error { return r.Error(w, "boom <b>") })
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if !strings.Contains(string(html), "boom &lt;b&gt;") {
		t.Errorf("error message not escaped: %s", html)
	}
}

func TestScriptSendsExplicitTheme(t *testing.T) {
	if strings.Contains(ScriptJS, "/dark-mode/toggle") {
		t.Error("script should not ask the server to flip the theme")
	}
	for _, want := range []string{
		"fetch('/api/preferences/dark-mode', {",
		"method: 'PUT'",
		"JSON.stringify({ darkMode: value })",
	} {
		if !strings.Contains(ScriptJS, want) {
			t.Errorf("script missing %q", want)
		}
	}
}
