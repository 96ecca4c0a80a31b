package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"merchant-settlement/config"
	"merchant-settlement/internal/adapter/client"
	httpHandler "merchant-settlement/internal/adapter/http/handler"
	kafkaAdapter "merchant-settlement/internal/adapter/messaging/kafka"
	pgStorage "merchant-settlement/internal/adapter/storage/postgres"
	redisStorage "merchant-settlement/internal/adapter/storage/redis"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/internal/service"
	"merchant-settlement/internal/worker"
	"merchant-settlement/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Merchant Settlement Service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	txRepo := pgStorage.NewTransactionRepo(pool)
	payoutRepo := pgStorage.NewPayoutRepo(pool)
	linkRepo := pgStorage.NewPayoutTransactionRepo(pool)
	attemptRepo := pgStorage.NewAttemptHistoryRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Kafka publisher
	publisher := kafkaAdapter.NewPublisher(cfg.Kafka)
	defer publisher.Close()

	// Initialize outbound clients
	merchantClient := client.NewMerchantClient(
		cfg.MerchantService.BaseURL,
		&http.Client{Timeout: cfg.MerchantService.Timeout},
	)
	bankClient := client.NewBankClient(
		cfg.PaymentGateway.BaseURL,
		&http.Client{Timeout: cfg.PaymentGateway.Timeout},
	)

	// Initialize distributed sweep lock
	sweepLock := redisStorage.NewSweepLock(rdb, uuid.New().String())

	// Initialize business services
	txSvc := service.NewTransactionService(txRepo, publisher, log)
	validationSvc := service.NewValidationService(merchantClient, publisher, log)
	ledgerSvc := service.NewLedgerService(
		txSvc, payoutRepo, linkRepo, merchantClient,
		publisher, transactor, cfg.Sweep.PageSize, log,
	)
	payoutSvc := service.NewPayoutService(
		payoutRepo, attemptRepo, linkRepo, bankClient,
		merchantClient, txSvc, log,
	)

	// Initialize rate limit store and health checkers
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TransactionSvc: txSvc,
		SettlementSvc:  ledgerSvc,
		PayoutSvc:      payoutSvc,
		SweepLock:      sweepLock,
		SweepLockTTL:   cfg.Sweep.LockTTL,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	var wg sync.WaitGroup

	// Kafka consumers: validation, verdict application, payout pickup.
	var consumers []*kafkaAdapter.Consumer
	if cfg.Kafka.ConsumersEnabled {
		consumers = startConsumers(ctx, &wg, cfg, txSvc, validationSvc, payoutSvc, log)
	}

	// Scheduled aggregation sweep
	if cfg.Sweep.Interval > 0 {
		sweeper := worker.NewSweeper(ledgerSvc, sweepLock, cfg.Sweep.Interval, cfg.Sweep.LockTTL, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			sweeper.Run(ctx)
		}()
	}

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			log.Error().Err(err).Msg("Consumer close failed")
		}
	}
	wg.Wait()

	log.Info().Msg("Server exited")
}

// startConsumers wires the pipeline topics to their services. Each handler
// parses its message at the boundary; malformed payloads are dropped by the
// consumer loop after logging.
func startConsumers(
	ctx context.Context,
	wg *sync.WaitGroup,
	cfg *config.Config,
	txSvc ports.TransactionService,
	validationSvc ports.ValidationService,
	payoutSvc ports.PayoutProcessingService,
	log zerolog.Logger,
) []*kafkaAdapter.Consumer {
	created := kafkaAdapter.NewConsumer(
		cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.TransactionsTopic,
		func(ctx context.Context, value []byte) error {
			var ev domain.TransactionCreatedEvent
			if err := json.Unmarshal(value, &ev); err != nil {
				return fmt.Errorf("decode transaction created event: %w", err)
			}
			return validationSvc.HandleTransactionCreated(ctx, ev)
		},
		log,
	)

	validated := kafkaAdapter.NewConsumer(
		cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ValidationResultTopic,
		func(ctx context.Context, value []byte) error {
			var ev domain.ValidationResultEvent
			if err := json.Unmarshal(value, &ev); err != nil {
				return fmt.Errorf("decode validation result event: %w", err)
			}
			return txSvc.ApplyValidationResult(ctx, ev.ID, ev.Status)
		},
		log,
	)

	ready := kafkaAdapter.NewConsumer(
		cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PayoutsReadyTopic,
		func(ctx context.Context, value []byte) error {
			var ev domain.PayoutReadyEvent
			if err := json.Unmarshal(value, &ev); err != nil {
				return fmt.Errorf("decode payout ready event: %w", err)
			}
			_, err := payoutSvc.ProcessPayout(ctx, ev.ID)
			return err
		},
		log,
	)

	consumers := []*kafkaAdapter.Consumer{created, validated, ready}
	for _, c := range consumers {
		wg.Add(1)
		go func(c *kafkaAdapter.Consumer) {
			defer wg.Done()
			c.Run(ctx)
		}(c)
	}
	return consumers
}
