package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	paychangu "github.com/Xausdorf/paychangu-go"
	grpcdelivery "github.com/Xausdorf/paychangu-go/internal/delivery/grpc"
	httpdelivery "github.com/Xausdorf/paychangu-go/internal/delivery/http"
	"github.com/Xausdorf/paychangu-go/internal/infrastructure/config"
	"github.com/Xausdorf/paychangu-go/internal/infrastructure/postgres"
	"github.com/Xausdorf/paychangu-go/internal/infrastructure/provider"
	"github.com/Xausdorf/paychangu-go/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/paychangu-go/internal/usecase/createlink"
	"github.com/Xausdorf/paychangu-go/internal/usecase/generateqr"
	"github.com/Xausdorf/paychangu-go/internal/usecase/verify"
)

const (
	qrCodeSize            = 256
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
	healthCheckInterval   = 10 * time.Second

	dbMaxConns        = 10
	dbMinConns        = 2
	dbMaxConnLifetime = 30 * time.Minute
	dbMaxConnIdleTime = 5 * time.Minute
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	pool, err := initDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		logger.Error("migration failed", "error", err)
		return
	}

	api, err := paychangu.New(cfg.SecretKey,
		paychangu.WithBaseURL(cfg.BaseURL),
		paychangu.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		paychangu.WithLogger(logger),
	)
	if err != nil {
		logger.Error("paychangu client init failed", "error", err)
		return
	}

	uow := postgres.NewUnitOfWork(pool)
	gateway := provider.NewClient(api)
	qrGen := qrgenerator.NewGenerator(qrCodeSize)

	createLinkUC := createlink.NewUseCase(uow, gateway)
	verifyUC := verify.NewUseCase(uow, gateway)
	generateQRUC := generateqr.NewUseCase(uow.Payments(), qrGen)

	handler := httpdelivery.NewHandler(createLinkUC, verifyUC, generateQRUC, logger)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	health := grpcdelivery.NewHealthServer(pool, logger)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "error", err)
		return
	}

	go health.Watch(ctx, healthCheckInterval)

	go func() {
		logger.Info("gRPC health server starting", "addr", cfg.GRPCAddr)
		if serveErr := health.Serve(lis); serveErr != nil {
			logger.Error("grpc serve failed", "error", serveErr)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	health.GracefulStop()
}

func initDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = dbMaxConns
	cfg.MinConns = dbMinConns
	cfg.MaxConnLifetime = dbMaxConnLifetime
	cfg.MaxConnIdleTime = dbMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
