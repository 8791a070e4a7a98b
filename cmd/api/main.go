package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wallet-transaction-engine/config"
	"wallet-transaction-engine/internal/adapter/client"
	httpHandler "wallet-transaction-engine/internal/adapter/http/handler"
	kafkaAdapter "wallet-transaction-engine/internal/adapter/kafka"
	pgStorage "wallet-transaction-engine/internal/adapter/storage/postgres"
	redisStorage "wallet-transaction-engine/internal/adapter/storage/redis"
	"wallet-transaction-engine/internal/cache"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/internal/service"
	"wallet-transaction-engine/internal/sharding"
	"wallet-transaction-engine/pkg/logger"

	"github.com/shopspring/decimal"
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
		Int("port", cfg.Server.Port).
		Int("partitions", len(cfg.Sharding.Partitions)).
		Msg("Starting Wallet Transaction Engine")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize shard router and PostgreSQL pools
	router, err := sharding.NewRouter(cfg.Sharding)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid sharding configuration")
	}
	pools, closePools, err := pgStorage.NewShardPools(ctx, cfg.Sharding, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL partitions")
	}
	defer closePools()
	shards, err := pgStorage.NewShardSet(pools, router)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build shard set")
	}
	log.Info().Msg("PostgreSQL partitions connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize Kafka producer
	writer := kafkaAdapter.NewWriter(cfg.Kafka.Brokers)
	defer writer.Close() //nolint:errcheck
	producer := kafkaAdapter.NewProducer(writer, cfg.Kafka.Topics, logger.Component(log, "producer"))

	// Initialize repositories
	walletRepo := pgStorage.NewWalletRepo(shards)
	walletTypeRepo := pgStorage.NewWalletTypeRepo(shards)
	txRepo := pgStorage.NewTransactionRepo(shards)
	transactor := pgStorage.NewTransactor(shards)

	// Initialize Redis stores
	dedupStore := redisStorage.NewDedupStore(rdb)

	// Initialize init request cache with background sweeper
	initCache := cache.NewInitRequestCache(cfg.InitCache.TTL, logger.Component(log, "init-cache"))
	sweeperDone := initCache.StartSweeper(ctx, cfg.InitCache.SweepInterval)

	// Initialize external service clients
	personClient := client.NewPersonServiceClient(cfg.PersonService.BaseURL, cfg.PersonService.Timeout, logger.Component(log, "person-client"))
	identityClient := client.NewIdentityProviderClient(cfg.Identity, logger.Component(log, "identity-client"))

	// Initialize core services
	feeCalc := service.NewFeeCalculator(service.FeePolicy{
		DepositPercent:    decimal.NewFromFloat(cfg.Fees.DepositPercent),
		WithdrawalPercent: decimal.NewFromFloat(cfg.Fees.WithdrawalPercent),
		TransferPercent:   decimal.NewFromFloat(cfg.Fees.TransferPercent),
	})
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Initialize business services
	walletSvc := service.NewWalletService(walletRepo, walletTypeRepo, logger.Component(log, "wallet-service"))
	txnSvc := service.NewTransactionService(
		walletRepo,
		txRepo,
		feeCalc,
		initCache,
		producer,
		transactor,
		router,
		logger.Component(log, "transaction-service"),
	)
	settlementSvc := service.NewSettlementService(
		walletRepo,
		txRepo,
		dedupStore,
		transactor,
		cfg.Kafka.DedupTTL,
		logger.Component(log, "settlement-service"),
	)
	registrationSvc := service.NewRegistrationService(personClient, identityClient, logger.Component(log, "registration-service"))

	// Start settlement consumer
	consumer := kafkaAdapter.NewConsumer(kafkaAdapter.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.GroupID,
		Topics:  cfg.Kafka.Topics,
	}, settlementSvc, logger.Component(log, "consumer"))
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := consumer.Run(ctx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Settlement consumer stopped")
		}
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(shards)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	engine := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RegistrationSvc: registrationSvc,
		WalletSvc:       walletSvc,
		TransactionSvc:  txnSvc,
		TokenSvc:        tokenSvc,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          logger.Component(log, "http"),
	})

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// The signal context is already canceled; wait for the consumer and
	// sweeper goroutines to drain.
	<-consumerDone
	<-sweeperDone

	log.Info().Msg("Server exited")
}
