package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tiendafacil/lending-service/internal/application/usecase"
	"github.com/tiendafacil/lending-service/internal/infrastructure/config"
	"github.com/tiendafacil/lending-service/internal/infrastructure/kafka"
	pgRepo "github.com/tiendafacil/lending-service/internal/infrastructure/postgres"
	grpcPresentation "github.com/tiendafacil/lending-service/internal/presentation/grpc"
	"github.com/tiendafacil/lending-service/internal/presentation/rest"
	"github.com/tiendafacil/lending-service/pkg/auth"
	pkgkafka "github.com/tiendafacil/lending-service/pkg/kafka"
	"github.com/tiendafacil/lending-service/pkg/observability"
	pkgpostgres "github.com/tiendafacil/lending-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})
	slog.SetDefault(logger)

	logger.Info("starting lending-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort meter shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://"+cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	loanRepo := pgRepo.NewLoanRepo(pool)
	paymentRepo := pgRepo.NewPaymentRepo(pool)
	treasuryRepo := pgRepo.NewTreasuryRepo(pool)

	if err := treasuryRepo.EnsureExists(ctx, cfg.InitialCapital, time.Now().UTC()); err != nil {
		logger.Error("failed to seed treasury", "error", err)
		os.Exit(1)
	}

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewKafkaEventPublisher(kafkaProducer, "lending-events", logger)

	// Wire use cases.
	createLoanUC := usecase.NewCreateLoanUseCase(loanRepo, treasuryRepo, publisher)
	makePaymentUC := usecase.NewMakePaymentUseCase(loanRepo, paymentRepo, treasuryRepo, publisher)
	accrueFeesUC := usecase.NewAccrueLateFeesUseCase(loanRepo, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	listLoansUC := usecase.NewListLoansUseCase(loanRepo)
	getCapitalUC := usecase.NewGetCapitalUseCase(treasuryRepo)
	adjustCapitalUC := usecase.NewAdjustCapitalUseCase(treasuryRepo, publisher)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: cfg.Auth.Issuer,
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.Auth.JWTSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewLoanHandler(
		createLoanUC, makePaymentUC, accrueFeesUC,
		getLoanUC, listLoansUC, getCapitalUC, adjustCapitalUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, func() error {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer pingCancel()
		return pkgpostgres.HealthCheck(pingCtx, pool)
	})
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("lending-service stopped")
}
