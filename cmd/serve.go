package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/cv"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/livereload"
	"github.com/ziadkadry99/folio/internal/prefs"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long: `Serves the site shell, page fragments, the CV timeline and the
preferences API. With --watch, edits to the content directory or the
CV file reload open browsers.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", false, "watch content for changes and live-reload browsers")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch, _ = cmd.Flags().GetBool("watch")
	}

	// Open database.
	database, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	st, err := site.New(cfg)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *livereload.Hub
	if cfg.Watch {
		hub, err = startWatcher(ctx, cfg, st)
		if err != nil {
			return err
		}
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
	}, st, prefs.NewSQLStore(database), hub)

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "folio %s starting on port %d\n", Version, cfg.Port)
	fmt.Fprintf(os.Stderr, "  Content: %s\n", cfg.ContentDir)
	fmt.Fprintf(os.Stderr, "  CV: %s\n", cfg.CVSource)
	fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.Database)
	if hub != nil {
		fmt.Fprintln(os.Stderr, "  Live reload: on")
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// startWatcher invalidates cached fragments and reloads browsers whenever
// content changes.
func startWatcher(ctx context.Context, cfg *config.Config, st *site.Site) (*livereload.Hub, error) {
	hub := livereload.NewHub()

	extra := map[string]string{}
	if src, ok := st.CV.(*cv.FileSource); ok {
		extra[src.Path] = config.PageCV
	}

	w, err := livereload.NewWatcher(cfg.ContentDir, extra, func(page string) {
		st.Pages.Invalidate(page)
		if verbose {
			fmt.Fprintf(os.Stderr, "changed: %s\n", page)
		}
		hub.Reload(page)
	})
	if err != nil {
		return nil, fmt.Errorf("starting watcher: %w", err)
	}
	go w.Run(ctx)
	return hub, nil
}
