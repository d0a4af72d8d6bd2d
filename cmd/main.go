package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jvaldezr/palindromo/config"
	"github.com/jvaldezr/palindromo/internal/checklog"
	"github.com/jvaldezr/palindromo/internal/handler"
	"github.com/jvaldezr/palindromo/internal/httpserver"
	"github.com/jvaldezr/palindromo/internal/metrics"
	"github.com/jvaldezr/palindromo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, true, cfg.Server.Environment)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	collector := metrics.NewCollector(1000, log)
	collector.Start(ctx)

	recorder := openRecorder(cfg.CheckLog.Path, log)
	if closer, ok := recorder.(io.Closer); ok {
		defer closer.Close()
	}

	palindromeHandler := handler.NewPalindromeHandler(log, recorder, collector)

	mux := setupRouter(palindromeHandler, collector)

	srv, err := httpserver.New(cfg.Server.Address, mux)
	if err != nil {
		log.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("Palindrome service listening", slog.String("address", cfg.Server.Address))

	srvErrCh := make(chan error, 1)

	go func() {
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting server", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

// openRecorder opens the file-backed check log. A failing open is an
// operational problem, not a fatal one: checks keep working, records
// are discarded.
func openRecorder(path string, log *slog.Logger) checklog.Recorder {
	recorder, err := checklog.NewFileRecorder(path)
	if err != nil {
		log.Error("Failed to open check log, records will be discarded",
			slog.String("path", path),
			slog.Any("err", err))
		return checklog.Discard
	}

	return recorder
}
