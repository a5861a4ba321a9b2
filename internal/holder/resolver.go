package holder

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/providers/ethereum"
	"github.com/feral-file/invoice-lottery/internal/store"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

// Config holds the configuration for the holder resolver
type Config struct {
	// CacheTTL is how long a cached balance is served without asking the chain
	CacheTTL time.Duration
	// ScanConcurrency bounds the parallel balanceOf calls of a cache miss
	ScanConcurrency int
}

// Resolver resolves the wallets holding a token type
//
//go:generate mockgen -source=resolver.go -destination=../mocks/holder_resolver.go -package=mocks -mock_names=Resolver=MockHolderResolver
type Resolver interface {
	// GetHolders returns the wallets with a positive balance of a token type.
	// Fresh cache entries are served directly, otherwise balances of every invoice owner are read from the chain.
	// Any chain failure aborts the resolution.
	GetHolders(ctx context.Context, tokenTypeID string) ([]domain.Holder, error)

	// Close stops the scan worker pool
	Close()
}

type resolver struct {
	config Config
	store  store.Store
	client ethereum.EthereumClient
	clock  adapter.Clock
	pool   pond.ResultPool[*big.Int]
}

// NewResolver creates a new holder resolver
func NewResolver(cfg Config, st store.Store, client ethereum.EthereumClient, clock adapter.Clock) Resolver {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.ScanConcurrency <= 0 {
		cfg.ScanConcurrency = 8
	}

	return &resolver{
		config: cfg,
		store:  st,
		client: client,
		clock:  clock,
		pool:   pond.NewResultPool[*big.Int](cfg.ScanConcurrency),
	}
}

// isFresh reports whether a cache entry was updated within the TTL
func (r *resolver) isFresh(entry schema.TokenHolder, now time.Time) bool {
	return entry.LastUpdated.After(now.Add(-r.config.CacheTTL))
}

func (r *resolver) GetHolders(ctx context.Context, tokenTypeID string) ([]domain.Holder, error) {
	id, ok := new(big.Int).SetString(tokenTypeID, 10)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid token type id %q", domain.ErrValidation, tokenTypeID)
	}

	cached, err := r.cachedHolders(ctx, tokenTypeID)
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		logger.InfoCtx(ctx, "Using cached holders", zap.String("tokenTypeId", tokenTypeID), zap.Int("count", len(cached)))
		return cached, nil
	}

	return r.scanHolders(ctx, tokenTypeID, id)
}

func (r *resolver) cachedHolders(ctx context.Context, tokenTypeID string) ([]domain.Holder, error) {
	entries, err := r.store.GetTokenHolders(ctx, tokenTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cached holders: %w", err)
	}

	now := r.clock.Now()
	var holders []domain.Holder
	for _, entry := range entries {
		if !r.isFresh(entry, now) {
			continue
		}

		balance, ok := new(big.Int).SetString(entry.Balance, 10)
		if !ok {
			logger.WarnCtx(ctx, "Ignoring cached holder with invalid balance",
				zap.String("tokenTypeId", tokenTypeID),
				zap.String("walletAddress", entry.WalletAddress),
				zap.String("balance", entry.Balance))
			continue
		}
		if balance.Sign() > 0 {
			holders = append(holders, domain.Holder{WalletAddress: entry.WalletAddress, Balance: balance})
		}
	}

	return holders, nil
}

func (r *resolver) scanHolders(ctx context.Context, tokenTypeID string, id *big.Int) ([]domain.Holder, error) {
	wallets, err := r.store.GetInvoiceWalletsByTokenType(ctx, tokenTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice owners: %w", err)
	}
	if len(wallets) == 0 {
		return nil, nil
	}

	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group := r.pool.NewGroupContext(scanCtx)
	for _, wallet := range wallets {
		group.SubmitErr(func() (*big.Int, error) {
			balance, err := r.client.BalanceOf(scanCtx, wallet, id)
			if err != nil {
				cancel()
				return nil, fmt.Errorf("failed to get balance of %s: %w", wallet, err)
			}
			return balance, nil
		})
	}

	balances, err := group.Wait()
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	holders := make([]domain.Holder, 0, len(wallets))
	entries := make([]schema.TokenHolder, 0, len(wallets))
	for i, wallet := range wallets {
		balance := balances[i]
		if balance == nil || balance.Sign() <= 0 {
			continue
		}
		holders = append(holders, domain.Holder{WalletAddress: wallet, Balance: balance})
		entries = append(entries, schema.TokenHolder{
			TokenTypeID:   tokenTypeID,
			WalletAddress: wallet,
			Balance:       balance.String(),
			LastUpdated:   now,
		})
	}

	if len(entries) > 0 {
		if err := r.store.UpsertTokenHolders(ctx, entries); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to refresh holder cache"), zap.String("tokenTypeId", tokenTypeID))
		}
	}

	logger.InfoCtx(ctx, "Fetched holders from chain",
		zap.String("tokenTypeId", tokenTypeID),
		zap.Int("candidates", len(wallets)),
		zap.Int("holders", len(holders)))

	return holders, nil
}

// Close stops the scan worker pool
func (r *resolver) Close() {
	r.pool.StopAndWait()
}
