package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/messaging"
)

// SubscriberConfig holds the configuration for pool event subscription
type SubscriberConfig struct {
	PoolAddress string
}

type ethSubscriber struct {
	client EthereumClient
	pool   common.Address
}

// NewSubscriber creates a new LotteryResultNotified subscriber over a websocket client
func NewSubscriber(cfg SubscriberConfig, ethereumClient EthereumClient) messaging.Subscriber {
	return &ethSubscriber{
		client: ethereumClient,
		pool:   common.HexToAddress(cfg.PoolAddress),
	}
}

// SubscribeLotteryResults subscribes to LotteryResultNotified events of the pool contract
func (s *ethSubscriber) SubscribeLotteryResults(ctx context.Context, fromBlock uint64, handler messaging.LotteryResultHandler) error {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{s.pool},
		Topics:    [][]common.Hash{{lotteryResultNotifiedEventSignature}},
	}
	if fromBlock > 0 {
		query.FromBlock = new(big.Int).SetUint64(fromBlock)
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSubscriptionFailed, err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from pool events")
		sub.Unsubscribe()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("%w: %w", domain.ErrSubscriptionFailed, err)
		case vLog := <-logs:
			if vLog.Removed {
				logger.WarnCtx(ctx, "Ignoring removed log", zap.String("txHash", vLog.TxHash.Hex()))
				continue
			}

			result, err := ParseLotteryResultLog(vLog)
			if err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"), zap.String("txHash", vLog.TxHash.Hex()))
				continue
			}

			if err := handler(ctx, result); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling lottery result"),
					zap.String("tokenTypeId", result.TokenTypeID.String()))
			}
		}
	}
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}
