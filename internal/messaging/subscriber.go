package messaging

import (
	"context"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

// LotteryResultHandler is called for every LotteryResultNotified event received
type LotteryResultHandler func(ctx context.Context, result *domain.LotteryResult) error

// Subscriber defines the interface for subscribing to pool contract events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeLotteryResults streams LotteryResultNotified events starting at fromBlock (0 for latest).
	// It returns when the context is done or the subscription fails.
	SubscribeLotteryResults(ctx context.Context, fromBlock uint64, handler LotteryResultHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
