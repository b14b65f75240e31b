// Command voicebill runs the VoiceBill transcript parsing server: a
// websocket endpoint that turns a live grocery-billing speech transcript
// into structured line items.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MSathish01/VoiceBill/internal/config"
	"github.com/MSathish01/VoiceBill/internal/formalize"
	"github.com/MSathish01/VoiceBill/internal/lexicon"
	"github.com/MSathish01/VoiceBill/internal/observe"
	"github.com/MSathish01/VoiceBill/internal/parse"
	"github.com/MSathish01/VoiceBill/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to the YAML configuration file (optional)")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voicebill: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	logger := newLogger(cfg.Server.LogLevel)
	slog.SetDefault(logger)

	slog.Info("voicebill starting",
		"listen_addr", cfg.Server.ListenAddr,
		"log_level", cfg.Server.LogLevel,
		"lexicon", lexiconLabel(cfg.Parser.LexiconPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry provider with the Prometheus bridge for /metrics.
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	metrics, err := observe.Default()
	if err != nil {
		slog.Error("failed to create metrics", "err", err)
		return 1
	}

	// Lexicon tables: built-in defaults, or a locale overlay from disk.
	tables := lexicon.Default()
	if cfg.Parser.LexiconPath != "" {
		tables, err = lexicon.Load(cfg.Parser.LexiconPath)
		if err != nil {
			slog.Error("failed to load lexicon", "err", err)
			return 1
		}
	}
	if err := tables.Validate(); err != nil {
		slog.Error("lexicon validation failed", "err", err)
		return 1
	}

	var formalizerOpts []formalize.Option
	if cfg.Parser.FuzzyThreshold != 0 {
		formalizerOpts = append(formalizerOpts, formalize.WithFuzzyThreshold(cfg.Parser.FuzzyThreshold))
	}
	formalizer := formalize.New(tables, formalizerOpts...)
	parser := parse.New(tables, formalizer)

	srv := server.New(parser, formalizer, metrics)
	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server ready, press Ctrl+C to shut down")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutdown signal received, stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}
	slog.Info("goodbye")
	return 0
}

func lexiconLabel(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}

func newLogger(level config.LogLevel) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
