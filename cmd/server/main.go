package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bibbank/onboarding/internal/application/usecase"
	"github.com/bibbank/onboarding/internal/assistant"
	"github.com/bibbank/onboarding/internal/domain/service"
	"github.com/bibbank/onboarding/internal/infrastructure/adapter"
	"github.com/bibbank/onboarding/internal/infrastructure/config"
	"github.com/bibbank/onboarding/internal/infrastructure/memory"
	"github.com/bibbank/onboarding/internal/infrastructure/messaging"
	pgRepo "github.com/bibbank/onboarding/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/bibbank/onboarding/internal/presentation/grpc"
	"github.com/bibbank/onboarding/internal/presentation/rest"
	"github.com/bibbank/onboarding/pkg/auth"
	"github.com/bibbank/onboarding/pkg/kafka"
	"github.com/bibbank/onboarding/pkg/observability"
	"github.com/bibbank/onboarding/pkg/postgres"
)

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  "json",
		Service: cfg.ServiceName,
	})
	logger.Info("starting onboarding service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Database -----------------------------------------------------------
	dbCfg := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		MaxConns: int32(cfg.DB.MaxConns),
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if err := postgres.RunMigrations(dbCfg.DSN(), "file://./migrations"); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	// --- Metrics ------------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = meterProvider.Shutdown(context.Background()) //nolint:errcheck
	}()

	// --- Infrastructure adapters -------------------------------------------
	producer := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close() //nolint:errcheck

	appRepo := pgRepo.NewApplicationRepo(pool)
	auditRepo := pgRepo.NewAuditLogRepo(pool)
	publisher := messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger)
	sessions := memory.NewSessionStore()
	identity := adapter.NewClaimsIdentityProvider()
	assessor := service.NewAssessor()
	bridge := assistant.NewBridge()

	// --- Use cases ----------------------------------------------------------
	startWizardUC := usecase.NewStartWizardUseCase(sessions)
	updateDraftUC := usecase.NewUpdateDraftUseCase(sessions)
	nextStepUC := usecase.NewAdvanceStepUseCase(sessions)
	stepBackUC := usecase.NewStepBackUseCase(sessions)
	jumpToStepUC := usecase.NewJumpToStepUseCase(sessions)
	submitUC := usecase.NewSubmitApplicationUseCase(sessions, appRepo, auditRepo, publisher, identity, assessor)
	reviewUC := usecase.NewReviewApplicationUseCase(appRepo, auditRepo, publisher, identity)
	getAppUC := usecase.NewGetApplicationUseCase(appRepo)
	listAppsUC := usecase.NewListApplicationsUseCase(appRepo)
	deleteAppUC := usecase.NewDeleteApplicationUseCase(appRepo, auditRepo, identity)
	listAuditUC := usecase.NewListAuditLogUseCase(auditRepo)

	// --- gRPC server --------------------------------------------------------
	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.JWT.HMACSecret,
		Issuer: cfg.JWT.Issuer,
	})
	if err != nil {
		logger.Error("failed to init JWT service", "error", err)
		os.Exit(1)
	}

	handler := grpcPresentation.NewOnboardingHandler(
		startWizardUC,
		updateDraftUC,
		nextStepUC,
		stepBackUC,
		jumpToStepUC,
		submitUC,
		reviewUC,
		getAppUC,
		listAppsUC,
		deleteAppUC,
		listAuditUC,
		bridge,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtService, cfg.EnableReflection)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server -------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"database": func(ctx context.Context) error {
			return postgres.HealthCheck(ctx, pool)
		},
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("/metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("onboarding service stopped")
}
