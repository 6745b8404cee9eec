package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/okian/elo/internal/adapters/http/api"
	"github.com/okian/elo/internal/adapters/http/swagger"
	"github.com/okian/elo/internal/adapters/report"
	app "github.com/okian/elo/internal/app"
	"github.com/okian/elo/internal/config"
	"github.com/okian/elo/internal/domain/validation"
	"github.com/okian/elo/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Logs go to stderr so stdout carries only the standings.
	if err := logger.InitWithWriter(os.Stderr); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Get().Error(ctx, "elo failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// run rates the match file named by args[0], or the configured one, and
// prints the standings to stdout.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	log := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	path := cfg.MatchesFile
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	svc := newService(cfg, log)
	rep, err := svc.RunFile(ctx, path)
	if err != nil {
		return err
	}
	if err := report.WriteSummary(stdout, rep.Summary, rep.Standings); err != nil {
		return err
	}
	if cfg.ReportFile != "" {
		if err := report.SaveJSON(ctx, cfg.ReportFile, rep.Document()); err != nil {
			return err
		}
		log.Info(ctx, "report written", logger.String("report_file", cfg.ReportFile))
	}

	if !cfg.Serve {
		return nil
	}
	return serve(ctx, cfg, newRouter(ctx, cfg, svc), log)
}

func newService(cfg *config.Config, log logger.Logger) *app.Service {
	return app.New(
		app.WithLogger(log),
		app.WithInitialRating(cfg.InitialRating),
		app.WithKFactor(cfg.KFactor),
		app.WithValidation(
			validation.WithSequenceCheck(cfg.ValidateSequence),
			validation.WithWinnerCheck(cfg.ValidateWinners),
			validation.WithDateOrderCheck(cfg.ValidateDates),
		),
		app.WithStrictValidation(cfg.StrictValidation),
	)
}

func newRouter(ctx context.Context, cfg *config.Config, svc *app.Service) chi.Router {
	r := api.NewRouter()
	swagger.Register(ctx, r)
	api.NewServer(svc, svc, api.WithMaxLimit(cfg.MaxStandingsLimit)).Register(ctx, r)
	return r
}

// serve runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info(ctx, "server stopped")
	return nil
}
