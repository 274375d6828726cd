package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/noteboard/cliparse"
	"github.com/danielhkuo/noteboard/journal"
	"github.com/danielhkuo/noteboard/ledger"
	"github.com/danielhkuo/noteboard/metrics"
	"github.com/danielhkuo/noteboard/middleware"
	"github.com/danielhkuo/noteboard/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Build the ledger
	board, err := ledger.New(ledger.Config{
		Users:       cfg.Users,
		DefaultUser: cfg.DefaultUser,
		Policy:      ledger.Policy(cfg.Policy),
	})
	if err != nil {
		slog.Error("ledger configuration invalid", "error", err)
		os.Exit(1)
	}
	slog.Info("Ledger ready",
		"users", cfg.Users,
		"current_user", board.CurrentUser(),
		"policy", board.Policy(),
	)

	// Open the session journal
	store, err := journal.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("journal open failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Journal ready", "type", cfg.DatabaseType, "session_id", store.SessionID())

	// Create router
	mux := router.NewRouter(board, store, metrics.New())

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
