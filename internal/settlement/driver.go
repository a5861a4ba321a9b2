package settlement

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/holder"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/lottery"
	"github.com/feral-file/invoice-lottery/internal/providers/ethereum"
	"github.com/feral-file/invoice-lottery/internal/relayer"
	"github.com/feral-file/invoice-lottery/internal/store"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

// Config holds the batching configuration of the settlement driver
type Config struct {
	// BatchSize is the number of holders per batchClaimReward transaction
	BatchSize int
	// BatchDelay is the pause after each claim batch
	BatchDelay time.Duration
}

// Request identifies a notified lottery result to settle
type Request struct {
	TokenTypeID    *big.Int
	PoolID         *big.Int
	TotalAmount    *big.Int
	DonationAmount *big.Int
}

// Driver settles notified lottery results on-chain
//
//go:generate mockgen -source=driver.go -destination=../mocks/settlement_driver.go -package=mocks -mock_names=Driver=MockSettlementDriver
type Driver interface {
	// Settle updates the reward per unit, claims for every holder in batches and marks the token type distributed.
	// Steps are strictly sequential and a failure stops the remaining ones. Completed work is skipped on re-runs,
	// judged by the chain: holders with nothing left to claim are not claimed again, and a pending
	// markAsDistributed that has since been mined counts as done.
	// The returned report is never nil; a FAILED report comes with the causing error.
	Settle(ctx context.Context, req Request) (*domain.SettlementReport, error)
}

type driver struct {
	config  Config
	store   store.Store
	holders holder.Resolver
	relayer relayer.Relayer
	client  ethereum.EthereumClient
	clock   adapter.Clock
}

// NewDriver creates a new settlement driver
func NewDriver(cfg Config, st store.Store, holders holder.Resolver, r relayer.Relayer, client ethereum.EthereumClient, clock adapter.Clock) Driver {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = domain.DEFAULT_CLAIM_BATCH_SIZE
	}

	return &driver{
		config:  cfg,
		store:   st,
		holders: holders,
		relayer: r,
		client:  client,
		clock:   clock,
	}
}

func (d *driver) Settle(ctx context.Context, req Request) (*domain.SettlementReport, error) {
	report := &domain.SettlementReport{
		RunID: uuid.NewString(),
		State: domain.SettlementStatePending,
	}
	if req.TokenTypeID == nil {
		return d.fail(ctx, report, fmt.Errorf("%w: token type id is required", domain.ErrValidation))
	}
	tokenTypeID := req.TokenTypeID.String()
	report.TokenTypeID = tokenTypeID
	if req.PoolID != nil {
		report.PoolID = req.PoolID.String()
	}

	logger.InfoCtx(ctx, "Settling lottery result",
		zap.String("runId", report.RunID),
		zap.String("tokenTypeId", tokenTypeID),
		zap.String("poolId", report.PoolID))

	distributed, err := d.alreadyDistributed(ctx, tokenTypeID)
	if err != nil {
		return d.fail(ctx, report, err)
	}
	if distributed {
		logger.InfoCtx(ctx, "Token type already distributed, skipping", zap.String("tokenTypeId", tokenTypeID))
		report.State = domain.SettlementStateDistributed
		return d.complete(report), nil
	}

	holders, err := d.holders.GetHolders(ctx, tokenTypeID)
	if err != nil {
		return d.fail(ctx, report, fmt.Errorf("failed to resolve holders: %w", err))
	}
	report.HolderCount = len(holders)
	if len(holders) == 0 {
		logger.WarnCtx(ctx, "No holders found for token type, nothing to distribute", zap.String("tokenTypeId", tokenTypeID))
		report.State = domain.SettlementStateSkipped
		return d.complete(report), nil
	}

	totalSupply := lottery.TotalSupply(holders)
	report.TotalSupply = totalSupply.String()

	rewardPerUnit, err := lottery.ComputeRewardPerUnit(req.TotalAmount, req.DonationAmount, totalSupply)
	if err != nil {
		return d.fail(ctx, report, err)
	}
	report.RewardPerUnit = rewardPerUnit.String()

	logger.InfoCtx(ctx, "Reward calculated",
		zap.String("tokenTypeId", tokenTypeID),
		zap.String("totalSupply", totalSupply.String()),
		zap.String("rewardPerUnit", rewardPerUnit.String()))

	// Step 1: reward per unit, must confirm before any claim
	result, err := d.relayer.UpdateRewardPerToken(ctx, req.TokenTypeID, rewardPerUnit)
	if err != nil {
		return d.fail(ctx, report, fmt.Errorf("failed to update reward per token: %w", err))
	}
	report.RewardTxHash = result.TxHash
	report.State = domain.SettlementStateRewardUpdated

	// Step 2: batched claims for holders with a reward left to claim
	pending, err := d.unclaimedHolders(ctx, req.TokenTypeID, holders)
	if err != nil {
		return d.fail(ctx, report, err)
	}
	if err := d.claimInBatches(ctx, report, req.TokenTypeID, pending); err != nil {
		return d.fail(ctx, report, err)
	}
	report.State = domain.SettlementStateClaimsBatched

	// Step 3: one-way distributed flag
	result, err = d.relayer.MarkAsDistributed(ctx, req.TokenTypeID)
	if err != nil {
		return d.fail(ctx, report, fmt.Errorf("failed to mark as distributed: %w", err))
	}
	report.DistributeTxHash = result.TxHash
	report.State = domain.SettlementStateDistributed

	logger.InfoCtx(ctx, "Lottery result settled",
		zap.String("tokenTypeId", tokenTypeID),
		zap.Int("holders", len(holders)),
		zap.Int("claimBatches", len(report.ClaimTxHashes)))

	return d.complete(report), nil
}

// alreadyDistributed checks the recorded markAsDistributed transactions, settling any that were left pending
func (d *driver) alreadyDistributed(ctx context.Context, tokenTypeID string) (bool, error) {
	done, err := d.store.HasSuccessfulTokenTypeTransaction(ctx, schema.RelayerTxTypeMarkAsDistributed, tokenTypeID)
	if err != nil {
		return false, fmt.Errorf("failed to check distribution status: %w", err)
	}
	if done {
		return true, nil
	}

	done, err = d.relayer.ReconcilePending(ctx, schema.RelayerTxTypeMarkAsDistributed, tokenTypeID)
	if err != nil {
		return false, fmt.Errorf("failed to reconcile pending distribution: %w", err)
	}
	return done, nil
}

// unclaimedHolders drops holders whose invoices are claimed locally, then those with nothing left to claim on-chain.
// Holders with nothing left on-chain are recorded as claimed.
func (d *driver) unclaimedHolders(ctx context.Context, tokenTypeID *big.Int, holders []domain.Holder) ([]domain.Holder, error) {
	id := tokenTypeID.String()
	claimed, err := d.store.GetClaimedWalletsByTokenType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get claimed wallets: %w", err)
	}

	skip := make(map[string]struct{}, len(claimed))
	for _, wallet := range claimed {
		skip[strings.ToLower(wallet)] = struct{}{}
	}

	pending := make([]domain.Holder, 0, len(holders))
	var settled []string
	for _, h := range holders {
		if _, ok := skip[strings.ToLower(h.WalletAddress)]; ok {
			continue
		}

		claimable, err := d.client.GetClaimableReward(ctx, h.WalletAddress, tokenTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get claimable reward of %s: %w", h.WalletAddress, err)
		}
		if claimable.Sign() > 0 {
			pending = append(pending, h)
		} else {
			settled = append(settled, h.WalletAddress)
		}
	}

	if len(settled) > 0 {
		marked, err := d.store.MarkInvoicesClaimed(ctx, id, settled, d.clock.Now())
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to record holders with nothing left to claim"),
				zap.String("tokenTypeId", id))
		} else {
			logger.InfoCtx(ctx, "Recorded holders with nothing left to claim",
				zap.String("tokenTypeId", id),
				zap.Int("holders", len(settled)),
				zap.Int64("invoices", marked))
		}
	}

	if skipped := len(holders) - len(pending); skipped > 0 {
		logger.InfoCtx(ctx, "Skipping already claimed holders",
			zap.String("tokenTypeId", id),
			zap.Int("skipped", skipped))
	}
	return pending, nil
}

func (d *driver) claimInBatches(ctx context.Context, report *domain.SettlementReport, tokenTypeID *big.Int, holders []domain.Holder) error {
	batchCount := (len(holders) + d.config.BatchSize - 1) / d.config.BatchSize

	for i := 0; i < len(holders); i += d.config.BatchSize {
		end := min(i+d.config.BatchSize, len(holders))
		wallets := make([]string, 0, end-i)
		for _, h := range holders[i:end] {
			wallets = append(wallets, h.WalletAddress)
		}
		batchNumber := i/d.config.BatchSize + 1

		logger.InfoCtx(ctx, "Claiming rewards for batch",
			zap.String("tokenTypeId", tokenTypeID.String()),
			zap.Int("batch", batchNumber),
			zap.Int("batches", batchCount),
			zap.Int("size", len(wallets)))

		result, err := d.relayer.BatchClaimReward(ctx, wallets, tokenTypeID)
		if err != nil {
			return fmt.Errorf("failed to claim batch %d/%d: %w", batchNumber, batchCount, err)
		}
		report.ClaimTxHashes = append(report.ClaimTxHashes, result.TxHash)

		// the batch is confirmed on-chain, a bookkeeping failure must not stop the remaining batches
		marked, err := d.store.MarkInvoicesClaimed(ctx, tokenTypeID.String(), wallets, d.clock.Now())
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to mark invoices claimed"),
				zap.String("txHash", result.TxHash),
				zap.Int("batch", batchNumber))
		} else {
			logger.InfoCtx(ctx, "Batch claim recorded",
				zap.String("txHash", result.TxHash),
				zap.Int64("invoices", marked))
		}

		if err := d.clock.Sleep(ctx, d.config.BatchDelay); err != nil {
			return fmt.Errorf("interrupted after batch %d/%d: %w", batchNumber, batchCount, err)
		}
	}

	return nil
}

func (d *driver) fail(ctx context.Context, report *domain.SettlementReport, err error) (*domain.SettlementReport, error) {
	fields := []zap.Field{
		zap.String("message", "Settlement failed"),
		zap.String("runId", report.RunID),
		zap.String("tokenTypeId", report.TokenTypeID),
		zap.String("state", string(report.State)),
	}
	if errors.Is(err, domain.ErrTransactionReverted) {
		fields = append(fields, zap.Bool("reverted", true))
	}
	logger.ErrorCtx(ctx, err, fields...)

	report.State = domain.SettlementStateFailed
	report.Error = err.Error()
	return d.complete(report), err
}

func (d *driver) complete(report *domain.SettlementReport) *domain.SettlementReport {
	report.CompletedAt = d.clock.Now()
	return report
}
