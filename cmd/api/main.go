package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"notekeeper/internal/clock"
	"notekeeper/internal/config"
	"notekeeper/internal/http"
	"notekeeper/internal/notes"
	"notekeeper/internal/service"
	"notekeeper/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, closeLog := newLogger(cfg, os.Stdout)
	defer func() {
		_ = closeLog()
	}()
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat, "file", cfg.LogFile)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewStore(db)
	core, err := notes.Open(ctx, store, clock.System{}, notes.NewSearchIndex(cfg.SearchCacheTTL),
		notes.WithRetention(cfg.Retention))
	if err != nil {
		log.Fatalf("Failed to load notes: %v", err)
	}
	slog.Info("Notes loaded", "active_notes", core.Notes.CountActive(), "retention", cfg.Retention.String())

	notesService := service.NewNotesService(core)

	// Purge anything that expired while the service was down
	if res, err := notesService.Sweep(ctx); err != nil {
		slog.Error("Startup trash sweep failed", "error", err)
	} else {
		slog.Info("Startup trash sweep finished", "notes_purged", res.NotesPurged, "sections_purged", res.SectionsPurged)
	}

	router := http.NewRouter(&http.Deps{
		NotesService:       notesService,
		Store:              store,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	addr := ":" + cfg.APIPort
	srv := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down API server", "timeout", cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
	slog.Info("API server stopped")
}

// newLogger builds the process logger. When LOG_FILE is set, output is
// written to both out and a size-rotated file.
func newLogger(cfg *config.Config, out io.Writer) (*slog.Logger, func() error) {
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(out, rotator)
		closeFn = rotator.Close
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closeFn
}
