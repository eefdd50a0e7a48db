package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal site server with a CV timeline",
	Long: `Folio serves a small personal website: content pages written in
Markdown or HTML, a CV rendered as a timeline that groups concurrent
roles under the ongoing one, and an optional photo strip. Pages load
without full reloads and can be exported as a static site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
