package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/vpstudios/backlot/internal/catalog"
	"github.com/vpstudios/backlot/internal/config"
	"github.com/vpstudios/backlot/internal/domain/asset"
	"github.com/vpstudios/backlot/internal/domain/credits"
	"github.com/vpstudios/backlot/internal/domain/history"
	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/sqlite"
	"github.com/vpstudios/backlot/internal/storage"
	"github.com/vpstudios/backlot/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			logger.Error("failed to load catalog", "error", err)
			os.Exit(1)
		}
	}

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	files, err := storage.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		logger.Error("failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	submissionSvc := submission.NewService(sqlite.NewSubmissionRepository(db), logger)
	historySvc := history.NewService(sqlite.NewHistoryRepository(db), logger)
	assetSvc := asset.NewService(sqlite.NewAssetRepository(db), logger)
	creditsSvc := credits.NewService(sqlite.NewCreditsRepository(db), logger)

	// Keep the state machine pure: the audit trail subscribes to transitions
	// instead of the service writing it inline.
	submissionSvc.OnTransition(func(ctx context.Context, event submission.TransitionEvent) {
		entry := &history.Entry{
			SubmissionID: event.SubmissionID,
			FromStatus:   string(event.From),
			ToStatus:     string(event.To),
			CreatedAt:    event.At,
		}
		if id, ok := transport.IdentityFromContext(ctx); ok {
			entry.ChangedBy = id.Subject
		}
		if err := historySvc.Record(ctx, entry); err != nil {
			logger.Error("failed to record transition", "id", event.SubmissionID, "error", err)
		}
	})

	router := transport.NewServer(transport.Services{
		Submissions: submissionSvc,
		History:     historySvc,
		Assets:      assetSvc,
		Credits:     creditsSvc,
		Catalog:     cat,
		Files:       files,
		Logger:      logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "db", cfg.DB.Path)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
