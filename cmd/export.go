package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static files",
	Long:  `Renders every page, its fragment, the CV data and the assets into a directory that any static file host can serve.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to export_dir)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.ExportDir
	}

	st, err := site.New(cfg)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	exporter := site.NewExporter(st, outputDir, progress.NewReporter())
	pageCount, err := exporter.Export(context.Background())
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
