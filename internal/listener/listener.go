package listener

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/alert"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/messaging"
	"github.com/feral-file/invoice-lottery/internal/settlement"
	"github.com/feral-file/invoice-lottery/internal/store"
)

// Config holds the configuration for the lottery result listener
type Config struct {
	ChainID    int64
	StartBlock uint64
}

// CursorName returns the block cursor name of the lottery result subscription
func (c Config) CursorName() string {
	return fmt.Sprintf("%d:lottery", c.ChainID)
}

// Listener defines the interface for the lottery result listener
//
//go:generate mockgen -source=listener.go -destination=../mocks/listener.go -package=mocks -mock_names=Listener=MockListener
type Listener interface {
	// Run subscribes to lottery results and settles each one until ctx is done or the subscription fails
	Run(ctx context.Context) error
	// Close closes the listener and cleans up resources
	Close()
}

// listener settles every LotteryResultNotified event seen on the pool contract
type listener struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	driver     settlement.Driver
	alerter    alert.Alerter
	store      store.Store
	config     Config
}

// NewListener creates a new lottery result listener
func NewListener(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	driver settlement.Driver,
	alerter alert.Alerter,
	st store.Store,
	cfg Config,
) Listener {
	return &listener{
		subscriber: sub,
		publisher:  pub,
		driver:     driver,
		alerter:    alerter,
		store:      st,
		config:     cfg,
	}
}

// Run starts the lottery result listener
func (l *listener) Run(ctx context.Context) error {
	startBlock, err := l.startBlock(ctx)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)

	go func() {
		logger.InfoCtx(ctx, "Starting lottery result subscription",
			zap.Int64("chainId", l.config.ChainID),
			zap.Uint64("fromBlock", startBlock))

		if err := l.subscriber.SubscribeLotteryResults(ctx, startBlock, l.handle); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startBlock resolves the first block to subscribe from.
// The cursor block itself is replayed since settlement is a no-op for distributed token types.
func (l *listener) startBlock(ctx context.Context) (uint64, error) {
	if l.config.StartBlock > 0 {
		logger.InfoCtx(ctx, "Starting from configured block", zap.Uint64("block", l.config.StartBlock))
		return l.config.StartBlock, nil
	}

	lastBlock, err := l.store.GetBlockCursor(ctx, l.config.CursorName())
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	if lastBlock > 0 {
		logger.InfoCtx(ctx, "Resuming from last processed block", zap.Uint64("block", lastBlock))
		return lastBlock, nil
	}

	latestBlock, err := l.subscriber.GetLatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	logger.InfoCtx(ctx, "Starting from latest block", zap.Uint64("block", latestBlock))
	return latestBlock, nil
}

// handle settles one lottery result. Failures are reported but never stop the subscription.
func (l *listener) handle(ctx context.Context, result *domain.LotteryResult) error {
	logger.InfoCtx(ctx, "Lottery result notified",
		zap.String("tokenTypeId", result.TokenTypeID.String()),
		zap.String("txHash", result.TxHash),
		zap.Uint64("block", result.BlockNumber))

	report, err := l.driver.Settle(ctx, settlement.Request{
		TokenTypeID:    result.TokenTypeID,
		PoolID:         result.PoolID,
		TotalAmount:    result.TotalAmount,
		DonationAmount: result.DonationAmount,
	})
	if err != nil {
		message := fmt.Sprintf("settlement of token type %s failed: %s", report.TokenTypeID, err.Error())
		if alertErr := l.alerter.SendAlert(ctx, alert.TypeSettlementFailed, message); alertErr != nil {
			logger.ErrorCtx(ctx, alertErr, zap.String("message", "Failed to send settlement alert"))
		}
	}

	if err := l.publisher.PublishSettlement(ctx, report); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to publish settlement report"), zap.String("runId", report.RunID))
	}

	if err := l.store.SetBlockCursor(ctx, l.config.CursorName(), result.BlockNumber); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to save block cursor"), zap.Uint64("block", result.BlockNumber))
	}

	return nil
}

// Close closes the listener and cleans up resources
func (l *listener) Close() {
	l.subscriber.Close()
}
