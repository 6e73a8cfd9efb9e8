package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ramoniswack/vinc/internal/api"
	"github.com/Ramoniswack/vinc/internal/cart"
	"github.com/Ramoniswack/vinc/internal/catalog"
	"github.com/Ramoniswack/vinc/internal/config"
	"github.com/Ramoniswack/vinc/internal/imaging"
	"github.com/Ramoniswack/vinc/internal/session"
	"github.com/Ramoniswack/vinc/internal/storage"
)

// splitHandler is a slog.Handler that sends ERROR and above to one underlying
// handler and everything else (from INFO up) to another.
type splitHandler struct {
	out    slog.Handler
	errOut slog.Handler
}

func (h *splitHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return h.errOut.Handle(ctx, r)
	}
	return h.out.Handle(ctx, r)
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{out: h.out.WithAttrs(attrs), errOut: h.errOut.WithAttrs(attrs)}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{out: h.out.WithGroup(name), errOut: h.errOut.WithGroup(name)}
}

// setupLogger installs the default logger: INFO/WARN on stdout, ERROR on
// stderr, and every level mirrored to logPath when one is given. The returned
// cleanup closes the log file; it is nil when no file was opened.
func setupLogger(logPath string) (func(), error) {
	var logFile *os.File
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
	}

	textHandler := func(w io.Writer) slog.Handler {
		if logFile != nil {
			w = io.MultiWriter(w, logFile)
		}
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	slog.SetDefault(slog.New(&splitHandler{
		out:    textHandler(os.Stdout),
		errOut: textHandler(os.Stderr),
	}))

	if logFile == nil {
		return nil, nil
	}
	return func() { logFile.Close() }, nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("vinc", flag.ContinueOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", cfg.DBPath, "")
	fs.StringVar(&dbPath, "d", cfg.DBPath, "")

	var addr string
	fs.StringVar(&addr, "addr", cfg.Addr, "")
	fs.StringVar(&addr, "a", cfg.Addr, "")

	var logPath string
	fs.StringVar(&logPath, "log", cfg.LogPath, "")
	fs.StringVar(&logPath, "l", cfg.LogPath, "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: vinc [flags]

Flags:
  -d, -db <path>          SQLite storage path (default: vinc.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit

Environment:
  VINC_ADDR, VINC_DB, VINC_LOG            defaults for the flags above
  VINC_ADMIN_USER, VINC_ADMIN_PASSWORD    admin console credentials
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	// Open durable storage.
	kv, err := storage.Open(dbPath)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	slog.Info("storage ready", "path", dbPath)

	ctx := context.Background()

	// Load JWT secret from storage (auto-generated on first run).
	jwtSecret, err := storage.JWTSecret(ctx, kv)
	if err != nil {
		slog.Error("failed to get JWT secret", "error", err)
		os.Exit(1)
	}

	// Rehydrate the state containers.
	catalogStore, err := catalog.New(ctx, kv)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	if catalogStore.Empty() {
		catalogStore.SeedDefaults(ctx)
		slog.Info("seeded launch catalog", "products", len(catalogStore.List()))
	}

	cartStore, err := cart.New(ctx, kv)
	if err != nil {
		slog.Error("failed to load cart", "error", err)
		os.Exit(1)
	}

	verifier, err := session.NewStaticVerifier(cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		slog.Error("failed to set up credential verifier", "error", err)
		os.Exit(1)
	}
	if cfg.AdminPassword == session.DefaultAdminPassword {
		slog.Warn("admin console is using the default password; set VINC_ADMIN_PASSWORD")
	}

	sessionStore, err := session.New(ctx, kv, verifier)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(catalogStore, cartStore, sessionStore, imaging.NewPreviewCache(), jwtSecret)
	handler := api.LoggingMiddleware(router)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing storage")
}
