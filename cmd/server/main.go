package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/adisyon/internal/auth"
	"github.com/mmynk/adisyon/internal/config"
	"github.com/mmynk/adisyon/internal/events"
	"github.com/mmynk/adisyon/internal/metrics"
	"github.com/mmynk/adisyon/internal/session"
	"github.com/mmynk/adisyon/internal/storage"
	"github.com/mmynk/adisyon/internal/storage/postgres"
	"github.com/mmynk/adisyon/internal/storage/sqlite"
	"github.com/mmynk/adisyon/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.SetupWith(cfg.Log.Level, cfg.Log.Format)
	if cfg.InsecureJWTSecret() {
		slog.Warn("JWT_SECRET is not set; signing tokens with the built-in development secret")
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	backend, err := openBackend(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer backend.Close()

	publisher, err := openPublisher(cfg.Messaging)
	if err != nil {
		return err
	}
	defer publisher.Close()

	m := metrics.New()

	cafe := session.New(backend, cfg.Cafe.TableCount,
		session.WithPublisher(publisher),
		session.WithMetrics(m),
	)
	if err := cafe.Load(ctx); err != nil {
		return fmt.Errorf("failed to load café state: %w", err)
	}

	authenticator := auth.NewPasswordAuthenticator(backend, cfg.Auth.MinPasswordLen)
	if _, err := authenticator.EnsureUser(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	router := newRouter(routerDeps{
		cafe:          cafe,
		authenticator: authenticator,
		users:         backend,
		jwtManager:    auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		metrics:       m,
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h2c.NewHandler(router, &http2.Server{}),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting",
			"address", srv.Addr,
			"storage", cfg.Storage.Driver,
			"tables", cfg.Cafe.TableCount,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server stopped gracefully")
	return nil
}

func openBackend(ctx context.Context, cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres storage: %w", err)
		}
		slog.Info("Storage initialized", "driver", cfg.Driver)
		return store, nil
	default:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite storage: %w", err)
		}
		slog.Info("Storage initialized", "driver", cfg.Driver, "database", cfg.DBPath)
		return store, nil
	}
}

func openPublisher(cfg config.MessagingConfig) (events.Publisher, error) {
	if cfg.RabbitMQURL == "" {
		slog.Info("No RABBITMQ_URL set, sale events are not published")
		return events.NopPublisher{}, nil
	}
	publisher, err := events.NewAMQPPublisher(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}
	slog.Info("Publishing sale events", "exchange", events.Exchange)
	return publisher, nil
}
