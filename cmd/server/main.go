package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/generation"
	"folio.dev/internal/handlers"
	"folio.dev/internal/logger"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "folio",
		Usage: "Projects page and referral card for the blog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "site-file",
				Usage:   "YAML file with site title, description and base URL",
				EnvVars: []string{"SITE_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Value:   config.DefaultServerAddr,
						Usage:   "HTTP listen address",
						EnvVars: []string{"SERVER_ADDR"},
					},
				},
				Action: runServe,
			},
			{
				Name:      "export",
				Usage:     "Write the site as static files",
				ArgsUsage: "<output-dir>",
				Action:    runExport,
			},
			{
				Name:   "validate",
				Usage:  "Check project entries for authoring mistakes",
				Action: runValidate,
			},
		},
		Action: runServe,
	}
}

// loadConfig merges environment, site file and command-line flags
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if c.IsSet("site-file") {
		site, err := config.LoadSite(c.String("site-file"))
		if err != nil {
			return nil, err
		}
		if cfg.BaseURL != "" {
			site.BaseURL = cfg.BaseURL
		}
		cfg.Site = site
	}
	if c.IsSet("addr") {
		cfg.ServerAddr = c.String("addr")
	}
	return cfg, nil
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := content.Validate(content.Projects()); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}

	router, err := handlers.SetupRoutes(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, server)
}

// serve runs server until ctx is done, then shuts it down gracefully
func serve(ctx context.Context, server *http.Server) error {
	serverErr := make(chan error, 1)

	go func() {
		slog.Info("starting server", "server_addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	<-serverErr

	slog.Info("server stopped")
	return nil
}

func runExport(c *cli.Context) error {
	outDir := c.Args().First()
	if outDir == "" {
		return fmt.Errorf("export: output directory is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	renderer, err := render.New(cfg.Site.PlaceholderImage)
	if err != nil {
		return err
	}

	manifest, err := generation.NewSiteGenerator(cfg.Site, renderer).Generate(outDir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	slog.Info("site exported", "dir", outDir, "files", len(manifest.Files), "projects", manifest.Projects)
	return nil
}

func runValidate(c *cli.Context) error {
	projects := content.Projects()
	if err := content.Validate(projects); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%d projects OK\n", services.NewProjectService(projects).Count())
	return nil
}
