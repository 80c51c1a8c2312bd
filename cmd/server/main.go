package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rayzor/contacts-api/internal/config"
	"github.com/rayzor/contacts-api/internal/platform/logger"
	"github.com/rayzor/contacts-api/internal/platform/postgres"
	"github.com/rayzor/contacts-api/internal/service"
	"github.com/rayzor/contacts-api/internal/service/auth"
	"github.com/rayzor/contacts-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

// application holds the long-lived dependencies wired at startup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore

	userService    service.UserService
	contactService service.ContactService
	addressService service.AddressService
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := openDatabase(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	if err := runMigrations(context.Background(), db, log); err != nil {
		return err
	}

	app := newApplication(cfg, log, db)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.setupRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newApplication wires the stores, services, and credential
// collaborators together.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) *application {
	userStore := postgres.NewPostgresUserStore(db, log)
	contactStore := postgres.NewPostgresContactStore(db, log)
	addressStore := postgres.NewPostgresAddressStore(db, log)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewUUIDTokenGenerator()

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		userStore:      userStore,
		userService:    service.NewUserService(userStore, hasher, hasher, tokens, db, log),
		contactService: service.NewContactService(contactStore, log),
		addressService: service.NewAddressService(contactStore, addressStore, log),
	}
}
