package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LianHaeming/raw2hdr-site/handlers"
	"github.com/LianHaeming/raw2hdr-site/storage"
	"github.com/LianHaeming/raw2hdr-site/tmpl"
)

var serveDev bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website",
	Long: `Serves the landing page, the explainer and its session API, the synthetic
sample series and chart images, hero previews and the app download.

Configuration comes from the config file, then PORT and RAW2HDR_* environment
variables. --dev reloads templates and markdown when they change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "Reload templates on change")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveDev {
		cfg.Server.Dev = true
	}

	templates, err := tmpl.Load(cfg.Server.TemplatesDir, cfg.Server.ContentDir, assetVersion())
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	sessions := storage.NewSessionStore(cfg.Sessions.StatePath, cfg.GetSessionTTL(), logger.Named("sessions"))
	sessions.SetMaxSessions(cfg.Sessions.Max)
	if n := sessions.Load(); n > 0 {
		logger.Info("restored explainer sessions", zap.Int("count", n))
	}

	deps := &handlers.Deps{
		Sessions:       sessions,
		Assets:         storage.NewAssetStore(cfg.Assets.Dir, cfg.Assets.Download),
		Templates:      templates,
		Log:            logger.Named("http"),
		StaticDir:      cfg.Server.StaticDir,
		RequestTimeout: cfg.GetRequestTimeout(),
		FrameInterval:  cfg.GetFrameInterval(),
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Server.Port),
		Handler:           deps.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Shutdown leaves request contexts alone; end the frame streams so it
	// does not wait out the timeout.
	srv.RegisterOnShutdown(deps.CloseStreams)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("raw2hdr-site listening", zap.String("addr", "http://localhost:"+cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return sessions.RunSweeper(ctx, cfg.GetSweepInterval())
	})
	if cfg.Server.Dev {
		g.Go(func() error {
			return templates.Watch(ctx, logger.Named("templates"))
		})
	}

	err = g.Wait()
	if serr := sessions.Save(); serr != nil {
		logger.Error("save sessions", zap.Error(serr))
	}
	return err
}
