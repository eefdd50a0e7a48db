package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/cv"
	"github.com/ziadkadry99/folio/internal/timeline"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("5"))
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	currentDateStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("2"))
	titleStyle = lipgloss.NewStyle().
			Bold(true)
	concurrentStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
	indentStyle = lipgloss.NewStyle().
			PaddingLeft(4)
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Print the CV timeline in the terminal",
	Long:  `Loads the CV data, groups concurrent entries the same way the site does, and prints the result. Use it to check a CV file before publishing.`,
	RunE:  runCV,
}

func init() {
	cvCmd.Flags().String("file", "", "CV file or URL (overrides cv_source)")
	cvCmd.Flags().Bool("json", false, "print the grouped rows as JSON instead")
	rootCmd.AddCommand(cvCmd)
}

func runCV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	location, _ := cmd.Flags().GetString("file")
	if location == "" {
		location = cfg.CVSource
	}

	doc, err := cv.NewSource(location).Load(context.Background())
	if err != nil {
		return err
	}

	results := doc.BuildSections(time.Now())

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := sectionsJSON(results)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(formatTimeline(results))
	return nil
}

type sectionJSON struct {
	Title string         `json:"title"`
	Rows  []timeline.Row `json:"rows"`
	Error string         `json:"error,omitempty"`
}

// sectionsJSON encodes built sections with their grouped rows.
func sectionsJSON(results []cv.SectionResult) ([]byte, error) {
	out := make([]sectionJSON, 0, len(results))
	for _, res := range results {
		sec := sectionJSON{Title: res.Title, Rows: res.Rows}
		if sec.Rows == nil {
			sec.Rows = []timeline.Row{}
		}
		if res.Err != nil {
			sec.Error = res.Err.Error()
		}
		out = append(out, sec)
	}
	return sonic.MarshalIndent(out, "", "  ")
}

// formatTimeline renders built sections for the terminal.
func formatTimeline(results []cv.SectionResult) string {
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(res.Title))
		b.WriteString("\n\n")

		if res.Err != nil {
			b.WriteString(errorStyle.Render("error: " + res.Err.Error()))
			b.WriteString("\n")
			continue
		}
		if len(res.Rows) == 0 {
			b.WriteString(dateStyle.Render("(no entries)"))
			b.WriteString("\n")
			continue
		}

		for _, row := range res.Rows {
			b.WriteString(formatEntry(row.Primary))
			for _, c := range row.Concurrent {
				b.WriteString(indentStyle.Render(concurrentStyle.Render("Concurrent") + "\n" + strings.TrimSuffix(formatEntry(c), "\n")))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatEntry(e timeline.Entry) string {
	date := dateStyle.Render(e.DateRange())
	if e.Ongoing() {
		date = currentDateStyle.Render(e.DateRange())
	}

	var b strings.Builder
	b.WriteString(date)
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(e.Title))
	if e.Institution != "" {
		b.WriteString(" · " + e.Institution)
	}
	if e.Location != "" {
		b.WriteString(" (" + e.Location + ")")
	}
	b.WriteString("\n")
	if e.Description != "" {
		b.WriteString(e.Description)
		b.WriteString("\n")
	}
	return b.String()
}
