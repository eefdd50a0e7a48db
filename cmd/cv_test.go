package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/folio/internal/cv"
)

func TestFormatTimeline(t *testing.T) {
	doc := &cv.Document{
		Experience: []cv.RawEntry{
			{Title: "Lead", Institution: "Acme", Location: "Berlin", Start: "2021-03"},
			{Title: "Advisor", Institution: "Board", Start: "2021-06", End: "2022-01"},
		},
	}
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	out := formatTimeline(doc.BuildSections(now))

	for _, want := range []string{
		"Work Experience",
		"Mar 2021 - Present",
		"Lead",
		"Acme",
		"(Berlin)",
		"Concurrent",
		"Jun 2021 - Jan 2022",
		"Education",
		"(no entries)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Lead") > strings.Index(out, "Advisor") {
		t.Error("primary should print before its concurrent entry")
	}
}

func TestFormatTimelineSectionError(t *testing.T) {
	results := []cv.SectionResult{{Title: "Education", Err: errors.New("bad date")}}

	out := formatTimeline(results)
	if !strings.Contains(out, "error: bad date") {
		t.Errorf("expected inline error, got:\n%s", out)
	}
}

func TestSectionsJSON(t *testing.T) {
	doc := &cv.Document{
		Experience: []cv.RawEntry{
			{Title: "Lead", Institution: "Acme", Start: "2021-03"},
			{Title: "Advisor", Institution: "Board", Start: "2021-06", End: "2022-01"},
		},
		Education: []cv.RawEntry{{Title: "BSc", Institution: "Uni"}},
	}
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	data, err := sectionsJSON(doc.BuildSections(now))
	if err != nil {
		t.Fatalf("sectionsJSON: %v", err)
	}

	var got []struct {
		Title string `json:"title"`
		Rows  []struct {
			Primary struct {
				Title string `json:"title"`
				Start string `json:"start"`
			} `json:"primary"`
			Concurrent []struct {
				Title string `json:"title"`
				End   string `json:"end"`
			} `json:"concurrent"`
		} `json:"rows"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, data)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}

	exp := got[0]
	if len(exp.Rows) != 1 || exp.Rows[0].Primary.Title != "Lead" || exp.Rows[0].Primary.Start != "2021-03" {
		t.Fatalf("experience rows = %+v", exp.Rows)
	}
	if len(exp.Rows[0].Concurrent) != 1 || exp.Rows[0].Concurrent[0].End != "2022-01" {
		t.Errorf("concurrent = %+v", exp.Rows[0].Concurrent)
	}

	if got[1].Error == "" || got[1].Rows == nil {
		t.Errorf("education should carry an error and empty rows: %+v", got[1])
	}
}
