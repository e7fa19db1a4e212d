package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/zmajumder/portfolio/internal/content"
	"github.com/zmajumder/portfolio/internal/visits"
	"github.com/zmajumder/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("watch", false, "reload the content file when it changes")
	serveCmd.Flags().Bool("no-analytics", false, "disable visit tracking")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Mode)

	site, err := loadSite(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	var purged sync.WaitGroup
	var store *visits.Store
	defer func() {
		// Background work must be finished before the store goes away.
		stop()
		purged.Wait()
		if store != nil {
			store.Close()
		}
	}()

	retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour

	noAnalytics, _ := cmd.Flags().GetBool("no-analytics")
	if !noAnalytics && cfg.DBPath != "" {
		store, err = visits.Open(ctx, cfg.DBPath, cfg.HashSalt)
		if err != nil {
			return err
		}

		if cfg.HashSalt == "" {
			slog.Info("no hash_salt configured, visitor hashes reset on restart")
		}
		if cfg.AdminToken == "" {
			slog.Info("no admin_token configured, analytics endpoints disabled")
		}
		purged.Add(1)
		go func() {
			defer purged.Done()
			purgeVisits(ctx, store, retention)
		}()
	}

	srv, err := web.New(site, store, web.Options{
		StaticDir:   cfg.StaticDir,
		AdminToken:  cfg.AdminToken,
		Retention:   retention,
		FocusOffset: cfg.FocusOffset,
		Logger:      slog.Default(),
	})
	if err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		if cfg.ContentFile == "" {
			return fmt.Errorf("--watch needs a content file")
		}
		go func() {
			err := content.Watch(ctx, cfg.ContentFile, func(s *content.Site) {
				if err := srv.SetSite(s); err != nil {
					slog.Warn("ignoring reloaded content", "err", err)
				}
			})
			if err != nil {
				slog.Error("content watcher stopped", "err", err)
			}
		}()
	}

	return srv.Run(ctx, ":"+cfg.Port)
}

// purgeVisits removes expired visits at startup and then daily.
func purgeVisits(ctx context.Context, store *visits.Store, retention time.Duration) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		n, err := store.Cleanup(ctx, retention)
		if err != nil {
			slog.Warn("visit cleanup failed", "err", err)
		} else if n > 0 {
			slog.Info("visit cleanup", "removed", n)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
