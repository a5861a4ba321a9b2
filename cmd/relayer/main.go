package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/alert"
	"github.com/feral-file/invoice-lottery/internal/api/middleware"
	"github.com/feral-file/invoice-lottery/internal/api/server"
	"github.com/feral-file/invoice-lottery/internal/api/shared/executor"
	"github.com/feral-file/invoice-lottery/internal/config"
	"github.com/feral-file/invoice-lottery/internal/holder"
	"github.com/feral-file/invoice-lottery/internal/listener"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/lottery"
	"github.com/feral-file/invoice-lottery/internal/messaging"
	"github.com/feral-file/invoice-lottery/internal/oracle"
	"github.com/feral-file/invoice-lottery/internal/providers/ethereum"
	"github.com/feral-file/invoice-lottery/internal/providers/govinvoice"
	"github.com/feral-file/invoice-lottery/internal/providers/jetstream"
	"github.com/feral-file/invoice-lottery/internal/relayer"
	"github.com/feral-file/invoice-lottery/internal/scheduler"
	"github.com/feral-file/invoice-lottery/internal/settlement"
	"github.com/feral-file/invoice-lottery/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadRelayerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service":  "invoice-lottery-relayer",
			"chain_id": fmt.Sprintf("%d", cfg.Ethereum.ChainID),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting invoice lottery relayer",
		zap.Bool("api", cfg.EnableAPI),
		zap.Bool("scheduler", cfg.EnableScheduler),
		zap.Bool("event_listener", cfg.EnableEventListener))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	ethDialer := adapter.NewEthClientDialer()

	// Initialize ethereum RPC client
	rpcClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err))
	}
	defer rpcClient.Close()

	clientConfig := ethereum.ClientConfig{
		InvoiceTokenAddress: cfg.Ethereum.InvoiceTokenAddress,
		PoolAddress:         cfg.Ethereum.PoolAddress,
		RateLimit:           cfg.Ethereum.RPCRateLimit,
		Burst:               cfg.Ethereum.RPCBurst,
	}
	ethereumClient := ethereum.NewClient(clientConfig, rpcClient)

	signers, err := relayer.NewSigners(cfg.Ethereum.RelayerPrivateKey, cfg.Ethereum.OraclePrivateKey, cfg.Ethereum.AdminPrivateKey)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load signing keys", zap.Error(err))
	}

	transactor := ethereum.NewTransactor(ethereum.TransactorConfig{
		ChainID:             cfg.Ethereum.ChainID,
		ConfirmationTimeout: cfg.Ethereum.ConfirmationTimeout,
		PollInterval:        cfg.Ethereum.ReceiptPollInterval,
	}, rpcClient, ethereum.NewNonceManager())

	alerter := alert.NewAlerter(alert.Config{
		WebhookURL:    cfg.Monitor.AlertWebhookURL,
		WebhookSecret: cfg.Monitor.AlertWebhookSecret,
	}, dataStore, adapter.NewHTTPClient(10*time.Second, adapter.DefaultRetryConfig()), jsonAdapter, clockAdapter)

	minBalance, ok := new(big.Int).SetString(cfg.Monitor.MinBalanceWei, 10)
	if !ok {
		logger.FatalCtx(ctx, "Invalid monitor.min_balance_wei", zap.String("value", cfg.Monitor.MinBalanceWei))
	}

	chainRelayer := relayer.New(relayer.Config{
		InvoiceTokenAddress: cfg.Ethereum.InvoiceTokenAddress,
		PoolAddress:         cfg.Ethereum.PoolAddress,
		MinBalance:          minBalance,
	}, signers, transactor, ethereumClient, dataStore, alerter, clockAdapter)

	// Initialize NATS publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream")
	} else {
		publisher = jetstream.NewNoopPublisher()
		logger.WarnCtx(ctx, "NATS not configured, lifecycle events will not be published")
	}
	defer publisher.Close()

	lotteryOracle := oracle.New(
		lottery.NewSelector(dataStore),
		govinvoice.NewClient(cfg.Lottery.GovAPIURL, cfg.Lottery.GovAPIKey, adapter.NewHTTPClient(cfg.Lottery.GovAPITimeout, adapter.DefaultRetryConfig())),
		chainRelayer,
		dataStore,
		publisher,
	)

	var wg sync.WaitGroup
	errCh := make(chan error, 3)

	// Lottery result listener
	if cfg.EnableEventListener {
		wsClient, err := ethDialer.Dial(ctx, cfg.Ethereum.WebSocketURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to dial Ethereum WebSocket", zap.Error(err))
		}
		defer wsClient.Close()

		holderResolver := holder.NewResolver(holder.Config{
			CacheTTL:        cfg.Lottery.HolderCacheTTL,
			ScanConcurrency: cfg.Lottery.HolderScanConcurrency,
		}, dataStore, ethereumClient, clockAdapter)
		defer holderResolver.Close()

		driver := settlement.NewDriver(settlement.Config{
			BatchSize:  cfg.Lottery.ClaimBatchSize,
			BatchDelay: cfg.Lottery.ClaimBatchDelay,
		}, dataStore, holderResolver, chainRelayer, ethereumClient, clockAdapter)

		resultListener := listener.NewListener(
			ethereum.NewSubscriber(ethereum.SubscriberConfig{PoolAddress: cfg.Ethereum.PoolAddress}, ethereum.NewClient(clientConfig, wsClient)),
			publisher,
			driver,
			alerter,
			dataStore,
			listener.Config{ChainID: cfg.Ethereum.ChainID, StartBlock: cfg.Ethereum.StartBlock},
		)
		defer resultListener.Close()

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := resultListener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("listener: %w", err)
			}
		}()
	}

	// Lottery and balance schedules
	var lotteryScheduler scheduler.Scheduler
	if cfg.EnableScheduler {
		lotteryScheduler, err = scheduler.New(scheduler.Config{
			LotterySchedule:      cfg.Lottery.Schedule,
			Timezone:             cfg.Lottery.Timezone,
			BalanceCheckSchedule: cfg.Monitor.BalanceCheckSchedule,
		}, lotteryOracle, chainRelayer, alerter, clockAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create scheduler", zap.Error(err))
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := lotteryScheduler.Start(ctx); err != nil {
				errCh <- fmt.Errorf("scheduler: %w", err)
			}
		}()
	}

	// HTTP API
	var srv *server.Server
	if cfg.EnableAPI {
		adminAddress := cfg.Ethereum.AdminAddress
		if adminAddress == "" {
			adminAddress = signers.Admin.Address.Hex()
		}

		exec := executor.NewExecutor(executor.Config{
			AdminAddress:   adminAddress,
			DonationPolicy: cfg.Donation.Policy(),
		}, dataStore, chainRelayer, ethereumClient, lotteryOracle)

		srv = server.New(server.Config{
			Debug:          cfg.Debug,
			Host:           cfg.Server.Host,
			Port:           cfg.Server.Port,
			ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Auth: middleware.AuthConfig{
				JWTPublicKey: cfg.Auth.JWTPublicKey,
				APIKeys:      cfg.Auth.APIKeys,
			},
		}, exec)

		go func() {
			if err := srv.Start(); err != nil {
				errCh <- fmt.Errorf("server: %w", err)
			}
		}()
	}

	// Wait for interrupt signal or a component failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("message", "Component failed, shutting down"))
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, zap.String("message", "Server forced to shutdown"))
		}
	}
	if lotteryScheduler != nil {
		if err := lotteryScheduler.Stop(shutdownCtx); err != nil {
			logger.Error(err, zap.String("message", "Scheduler did not stop in time"))
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		logger.Warn("Timed out waiting for background components")
	}

	logger.Info("Invoice lottery relayer stopped")
}
