package settlement_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/mocks"
	"github.com/feral-file/invoice-lottery/internal/settlement"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

var now = time.Date(2025, 3, 25, 12, 0, 0, 0, time.UTC)

type driverMocks struct {
	store   *mocks.MockStore
	holders *mocks.MockHolderResolver
	relayer *mocks.MockRelayer
	client  *mocks.MockEthereumClient
	clock   *mocks.MockClock
}

func setupDriver(t *testing.T) (*driverMocks, settlement.Driver) {
	ctrl := gomock.NewController(t)
	m := &driverMocks{
		store:   mocks.NewMockStore(ctrl),
		holders: mocks.NewMockHolderResolver(ctrl),
		relayer: mocks.NewMockRelayer(ctrl),
		client:  mocks.NewMockEthereumClient(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	d := settlement.NewDriver(settlement.Config{BatchSize: 50, BatchDelay: time.Second}, m.store, m.holders, m.relayer, m.client, m.clock)
	return m, d
}

func request() settlement.Request {
	return settlement.Request{
		TokenTypeID:    big.NewInt(12),
		PoolID:         big.NewInt(3),
		TotalAmount:    big.NewInt(1000),
		DonationAmount: big.NewInt(100),
	}
}

// notDistributed expects the distribution checks of a token type that has not been distributed
func notDistributed(m *driverMocks) {
	m.store.EXPECT().HasSuccessfulTokenTypeTransaction(gomock.Any(), schema.RelayerTxTypeMarkAsDistributed, "12").Return(false, nil)
	m.relayer.EXPECT().ReconcilePending(gomock.Any(), schema.RelayerTxTypeMarkAsDistributed, "12").Return(false, nil)
}

// claimable makes every holder report a positive claimable reward
func claimable(m *driverMocks) {
	m.client.EXPECT().GetClaimableReward(gomock.Any(), gomock.Any(), big.NewInt(12)).Return(big.NewInt(7), nil).AnyTimes()
}

func makeHolders(n int) []domain.Holder {
	holders := make([]domain.Holder, n)
	for i := range holders {
		holders[i] = domain.Holder{WalletAddress: fmt.Sprintf("0x%040x", i+1), Balance: big.NewInt(1)}
	}
	return holders
}

func TestSettle_BatchesAndPacing(t *testing.T) {
	m, d := setupDriver(t)
	ctx := context.Background()
	holders := makeHolders(120)

	notDistributed(m)
	claimable(m)
	m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(holders, nil)

	var sizes []int
	gomock.InOrder(
		// floor(900 / 120) = 7
		m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), big.NewInt(12), big.NewInt(7)).Return(&domain.TxResult{TxHash: "0xreward"}, nil),
		m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return(nil, nil),
		m.relayer.EXPECT().BatchClaimReward(gomock.Any(), gomock.Any(), big.NewInt(12)).DoAndReturn(
			func(_ context.Context, wallets []string, _ *big.Int) (*domain.TxResult, error) {
				sizes = append(sizes, len(wallets))
				return &domain.TxResult{TxHash: "0xclaim1"}, nil
			}),
		m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", gomock.Len(50), now).Return(int64(50), nil),
		m.clock.EXPECT().Sleep(gomock.Any(), time.Second).Return(nil),
		m.relayer.EXPECT().BatchClaimReward(gomock.Any(), gomock.Any(), big.NewInt(12)).DoAndReturn(
			func(_ context.Context, wallets []string, _ *big.Int) (*domain.TxResult, error) {
				sizes = append(sizes, len(wallets))
				return &domain.TxResult{TxHash: "0xclaim2"}, nil
			}),
		m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", gomock.Len(50), now).Return(int64(50), nil),
		m.clock.EXPECT().Sleep(gomock.Any(), time.Second).Return(nil),
		m.relayer.EXPECT().BatchClaimReward(gomock.Any(), gomock.Any(), big.NewInt(12)).DoAndReturn(
			func(_ context.Context, wallets []string, _ *big.Int) (*domain.TxResult, error) {
				sizes = append(sizes, len(wallets))
				assert.Equal(t, holders[100].WalletAddress, wallets[0])
				assert.Equal(t, holders[119].WalletAddress, wallets[19])
				return &domain.TxResult{TxHash: "0xclaim3"}, nil
			}),
		m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", gomock.Len(20), now).Return(int64(20), nil),
		m.clock.EXPECT().Sleep(gomock.Any(), time.Second).Return(nil),
		m.relayer.EXPECT().MarkAsDistributed(gomock.Any(), big.NewInt(12)).Return(&domain.TxResult{TxHash: "0xdone"}, nil),
	)

	report, err := d.Settle(ctx, request())
	require.NoError(t, err)
	assert.Equal(t, []int{50, 50, 20}, sizes)
	assert.Equal(t, domain.SettlementStateDistributed, report.State)
	assert.Equal(t, "12", report.TokenTypeID)
	assert.Equal(t, "3", report.PoolID)
	assert.Equal(t, 120, report.HolderCount)
	assert.Equal(t, "120", report.TotalSupply)
	assert.Equal(t, "7", report.RewardPerUnit)
	assert.Equal(t, "0xreward", report.RewardTxHash)
	assert.Equal(t, []string{"0xclaim1", "0xclaim2", "0xclaim3"}, report.ClaimTxHashes)
	assert.Equal(t, "0xdone", report.DistributeTxHash)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, now, report.CompletedAt)
}

func TestSettle_ZeroHolders(t *testing.T) {
	m, d := setupDriver(t)

	notDistributed(m)
	m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(nil, nil)

	report, err := d.Settle(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStateSkipped, report.State)
	assert.Empty(t, report.RewardPerUnit)
}

func TestSettle_AlreadyDistributed(t *testing.T) {
	m, d := setupDriver(t)

	m.store.EXPECT().HasSuccessfulTokenTypeTransaction(gomock.Any(), schema.RelayerTxTypeMarkAsDistributed, "12").Return(true, nil)

	report, err := d.Settle(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStateDistributed, report.State)
}

func TestSettle_RerunSkipsClaimedHolders(t *testing.T) {
	m, d := setupDriver(t)
	holders := makeHolders(3)

	notDistributed(m)
	claimable(m)
	m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(holders, nil)
	m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), big.NewInt(300)).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
	// claimed wallets are compared case-insensitively
	m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return([]string{
		holders[0].WalletAddress,
		holders[2].WalletAddress,
	}, nil)
	m.relayer.EXPECT().BatchClaimReward(gomock.Any(), []string{holders[1].WalletAddress}, gomock.Any()).Return(&domain.TxResult{TxHash: "0xclaim"}, nil)
	m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", []string{holders[1].WalletAddress}, now).Return(int64(1), nil)
	m.clock.EXPECT().Sleep(gomock.Any(), time.Second).Return(nil)
	m.relayer.EXPECT().MarkAsDistributed(gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xdone"}, nil)

	report, err := d.Settle(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStateDistributed, report.State)
	assert.Len(t, report.ClaimTxHashes, 1)
}

func TestSettle_AllClaimedGoesStraightToDistribution(t *testing.T) {
	m, d := setupDriver(t)
	holders := makeHolders(2)

	notDistributed(m)
	m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(holders, nil)
	m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), big.NewInt(450)).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
	m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return([]string{holders[0].WalletAddress, holders[1].WalletAddress}, nil)
	m.relayer.EXPECT().MarkAsDistributed(gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xdone"}, nil)

	report, err := d.Settle(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStateDistributed, report.State)
	assert.Empty(t, report.ClaimTxHashes)
}

func TestSettle_RevertedClaimStopsPipeline(t *testing.T) {
	m, d := setupDriver(t)
	holders := makeHolders(60)

	notDistributed(m)
	claimable(m)
	m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(holders, nil)
	m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
	m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return(nil, nil)
	m.relayer.EXPECT().BatchClaimReward(gomock.Any(), gomock.Len(50), gomock.Any()).Return(&domain.TxResult{TxHash: "0xclaim1"}, nil)
	m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", gomock.Len(50), now).Return(int64(50), nil)
	m.clock.EXPECT().Sleep(gomock.Any(), time.Second).Return(nil)
	m.relayer.EXPECT().BatchClaimReward(gomock.Any(), gomock.Len(10), gomock.Any()).
		Return(nil, fmt.Errorf("batch_claim_reward 0xabc: %w", domain.ErrTransactionReverted))

	report, err := d.Settle(context.Background(), request())
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
	require.NotNil(t, report)
	assert.Equal(t, domain.SettlementStateFailed, report.State)
	assert.Equal(t, []string{"0xclaim1"}, report.ClaimTxHashes)
	assert.Contains(t, report.Error, "batch 2/2")
}

func TestSettle_Failures(t *testing.T) {
	t.Run("holder resolution failure", func(t *testing.T) {
		m, d := setupDriver(t)
		notDistributed(m)
		m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(nil, errors.New("rpc down"))

		report, err := d.Settle(context.Background(), request())
		assert.Error(t, err)
		assert.Equal(t, domain.SettlementStateFailed, report.State)
	})

	t.Run("reward update failure stops before claims", func(t *testing.T) {
		m, d := setupDriver(t)
		notDistributed(m)
		m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(makeHolders(1), nil)
		m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrConfirmationTimeout)

		report, err := d.Settle(context.Background(), request())
		assert.ErrorIs(t, err, domain.ErrConfirmationTimeout)
		assert.Equal(t, domain.SettlementStateFailed, report.State)
		assert.Empty(t, report.RewardTxHash)
	})

	t.Run("donation exceeds prize", func(t *testing.T) {
		m, d := setupDriver(t)
		notDistributed(m)
		m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(makeHolders(1), nil)

		req := request()
		req.DonationAmount = big.NewInt(5000)
		_, err := d.Settle(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("mark as distributed failure", func(t *testing.T) {
		m, d := setupDriver(t)
		notDistributed(m)
		claimable(m)
		m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(makeHolders(1), nil)
		m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
		m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return(nil, nil)
		m.relayer.EXPECT().BatchClaimReward(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xclaim"}, nil)
		m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
		m.clock.EXPECT().Sleep(gomock.Any(), gomock.Any()).Return(nil)
		m.relayer.EXPECT().MarkAsDistributed(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTransactionReverted)

		report, err := d.Settle(context.Background(), request())
		assert.ErrorIs(t, err, domain.ErrTransactionReverted)
		assert.Equal(t, domain.SettlementStateFailed, report.State)
		assert.Equal(t, []string{"0xclaim"}, report.ClaimTxHashes)
	})

	t.Run("cancelled during pacing", func(t *testing.T) {
		m, d := setupDriver(t)
		notDistributed(m)
		claimable(m)
		m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(makeHolders(1), nil)
		m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
		m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return(nil, nil)
		m.relayer.EXPECT().BatchClaimReward(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xclaim"}, nil)
		m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.clock.EXPECT().Sleep(gomock.Any(), gomock.Any()).Return(context.Canceled)

		report, err := d.Settle(context.Background(), request())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, domain.SettlementStateFailed, report.State)
	})
}

func TestSettle_PendingDistributionMinedSinceTimeout(t *testing.T) {
	m, d := setupDriver(t)

	m.store.EXPECT().HasSuccessfulTokenTypeTransaction(gomock.Any(), schema.RelayerTxTypeMarkAsDistributed, "12").Return(false, nil)
	m.relayer.EXPECT().ReconcilePending(gomock.Any(), schema.RelayerTxTypeMarkAsDistributed, "12").Return(true, nil)

	report, err := d.Settle(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStateDistributed, report.State)
	assert.Empty(t, report.ClaimTxHashes)
}

func TestSettle_RerunAfterUnrecordedClaim(t *testing.T) {
	m, d := setupDriver(t)
	holders := makeHolders(3)

	notDistributed(m)
	m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(holders, nil)
	m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), big.NewInt(300)).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
	// the earlier batch confirmed but its claimed flags were never written
	m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return(nil, nil)
	m.client.EXPECT().GetClaimableReward(gomock.Any(), holders[0].WalletAddress, big.NewInt(12)).Return(big.NewInt(0), nil)
	m.client.EXPECT().GetClaimableReward(gomock.Any(), holders[1].WalletAddress, big.NewInt(12)).Return(big.NewInt(0), nil)
	m.client.EXPECT().GetClaimableReward(gomock.Any(), holders[2].WalletAddress, big.NewInt(12)).Return(big.NewInt(300), nil)
	m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", []string{holders[0].WalletAddress, holders[1].WalletAddress}, now).Return(int64(2), nil)
	m.relayer.EXPECT().BatchClaimReward(gomock.Any(), []string{holders[2].WalletAddress}, big.NewInt(12)).Return(&domain.TxResult{TxHash: "0xclaim"}, nil)
	m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", []string{holders[2].WalletAddress}, now).Return(int64(1), nil)
	m.clock.EXPECT().Sleep(gomock.Any(), time.Second).Return(nil)
	m.relayer.EXPECT().MarkAsDistributed(gomock.Any(), big.NewInt(12)).Return(&domain.TxResult{TxHash: "0xdone"}, nil)

	report, err := d.Settle(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStateDistributed, report.State)
	assert.Equal(t, []string{"0xclaim"}, report.ClaimTxHashes)
}

func TestSettle_NothingLeftToClaimOnChain(t *testing.T) {
	m, d := setupDriver(t)
	holders := makeHolders(2)

	notDistributed(m)
	m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(holders, nil)
	m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
	m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return(nil, nil)
	m.client.EXPECT().GetClaimableReward(gomock.Any(), gomock.Any(), big.NewInt(12)).Return(big.NewInt(0), nil).Times(2)
	// recording the flags again may fail as well, the chain already says the claims are done
	m.store.EXPECT().MarkInvoicesClaimed(gomock.Any(), "12", gomock.Len(2), now).Return(int64(0), errors.New("db down"))
	m.relayer.EXPECT().MarkAsDistributed(gomock.Any(), big.NewInt(12)).Return(&domain.TxResult{TxHash: "0xdone"}, nil)

	report, err := d.Settle(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStateDistributed, report.State)
	assert.Empty(t, report.ClaimTxHashes)
	assert.Equal(t, "0xdone", report.DistributeTxHash)
}

func TestSettle_ChainCheckFailures(t *testing.T) {
	t.Run("claimable reward read failure stops before claims", func(t *testing.T) {
		m, d := setupDriver(t)
		notDistributed(m)
		m.holders.EXPECT().GetHolders(gomock.Any(), "12").Return(makeHolders(2), nil)
		m.relayer.EXPECT().UpdateRewardPerToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.TxResult{TxHash: "0xreward"}, nil)
		m.store.EXPECT().GetClaimedWalletsByTokenType(gomock.Any(), "12").Return(nil, nil)
		m.client.EXPECT().GetClaimableReward(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("rpc down"))

		report, err := d.Settle(context.Background(), request())
		assert.Error(t, err)
		assert.Equal(t, domain.SettlementStateFailed, report.State)
		assert.Empty(t, report.ClaimTxHashes)
	})

	t.Run("pending distribution lookup failure", func(t *testing.T) {
		m, d := setupDriver(t)
		m.store.EXPECT().HasSuccessfulTokenTypeTransaction(gomock.Any(), gomock.Any(), "12").Return(false, nil)
		m.relayer.EXPECT().ReconcilePending(gomock.Any(), schema.RelayerTxTypeMarkAsDistributed, "12").Return(false, errors.New("rpc down"))

		report, err := d.Settle(context.Background(), request())
		assert.Error(t, err)
		assert.Equal(t, domain.SettlementStateFailed, report.State)
	})
}
