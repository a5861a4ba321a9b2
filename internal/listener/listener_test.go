package listener_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/invoice-lottery/internal/alert"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/listener"
	"github.com/feral-file/invoice-lottery/internal/messaging"
	"github.com/feral-file/invoice-lottery/internal/mocks"
	"github.com/feral-file/invoice-lottery/internal/settlement"
)

const cursorName = "48899:lottery"

// testListenerMocks contains all the mocks needed for testing the listener
type testListenerMocks struct {
	subscriber *mocks.MockSubscriber
	publisher  *mocks.MockPublisher
	driver     *mocks.MockSettlementDriver
	alerter    *mocks.MockAlerter
	store      *mocks.MockStore
}

func setupTestListener(t *testing.T, startBlock uint64) (*testListenerMocks, listener.Listener) {
	ctrl := gomock.NewController(t)

	tm := &testListenerMocks{
		subscriber: mocks.NewMockSubscriber(ctrl),
		publisher:  mocks.NewMockPublisher(ctrl),
		driver:     mocks.NewMockSettlementDriver(ctrl),
		alerter:    mocks.NewMockAlerter(ctrl),
		store:      mocks.NewMockStore(ctrl),
	}

	l := listener.NewListener(tm.subscriber, tm.publisher, tm.driver, tm.alerter, tm.store, listener.Config{
		ChainID:    48899,
		StartBlock: startBlock,
	})
	return tm, l
}

func lotteryResult(tokenTypeID int64, block uint64) *domain.LotteryResult {
	return &domain.LotteryResult{
		TokenTypeID:    big.NewInt(tokenTypeID),
		PoolID:         big.NewInt(1),
		TotalAmount:    big.NewInt(1000),
		DonationAmount: big.NewInt(100),
		TxHash:         "0xnotify",
		BlockNumber:    block,
	}
}

func TestConfig_CursorName(t *testing.T) {
	assert.Equal(t, cursorName, listener.Config{ChainID: 48899}.CursorName())
}

func TestListener_Run_SettlesEvents(t *testing.T) {
	tm, l := setupTestListener(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.store.EXPECT().GetBlockCursor(gomock.Any(), cursorName).Return(uint64(500), nil)

	first := lotteryResult(7, 501)
	second := lotteryResult(8, 502)

	tm.subscriber.EXPECT().
		SubscribeLotteryResults(gomock.Any(), uint64(500), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fromBlock uint64, handler messaging.LotteryResultHandler) error {
			assert.NoError(t, handler(ctx, first))
			assert.NoError(t, handler(ctx, second))
			cancel()
			return nil
		})

	distributed := &domain.SettlementReport{RunID: "r1", TokenTypeID: "7", State: domain.SettlementStateDistributed}
	failed := &domain.SettlementReport{RunID: "r2", TokenTypeID: "8", State: domain.SettlementStateFailed}
	settleErr := errors.New("reverted")

	gomock.InOrder(
		tm.driver.EXPECT().Settle(gomock.Any(), settlement.Request{
			TokenTypeID:    first.TokenTypeID,
			PoolID:         first.PoolID,
			TotalAmount:    first.TotalAmount,
			DonationAmount: first.DonationAmount,
		}).Return(distributed, nil),
		tm.publisher.EXPECT().PublishSettlement(gomock.Any(), distributed).Return(nil),
		tm.store.EXPECT().SetBlockCursor(gomock.Any(), cursorName, uint64(501)).Return(nil),

		tm.driver.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(failed, settleErr),
		tm.alerter.EXPECT().SendAlert(gomock.Any(), alert.TypeSettlementFailed, gomock.Any()).Return(nil),
		tm.publisher.EXPECT().PublishSettlement(gomock.Any(), failed).Return(nil),
		tm.store.EXPECT().SetBlockCursor(gomock.Any(), cursorName, uint64(502)).Return(nil),
	)

	err := l.Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestListener_Run_HandlerNeverFails(t *testing.T) {
	tm, l := setupTestListener(t, 900)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	report := &domain.SettlementReport{RunID: "r1", TokenTypeID: "7", State: domain.SettlementStateFailed}

	tm.subscriber.EXPECT().
		SubscribeLotteryResults(gomock.Any(), uint64(900), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uint64, handler messaging.LotteryResultHandler) error {
			assert.NoError(t, handler(ctx, lotteryResult(7, 901)))
			cancel()
			return nil
		})
	tm.driver.EXPECT().Settle(gomock.Any(), gomock.Any()).Return(report, errors.New("rpc down"))
	tm.alerter.EXPECT().SendAlert(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("webhook down"))
	tm.publisher.EXPECT().PublishSettlement(gomock.Any(), report).Return(errors.New("nats down"))
	tm.store.EXPECT().SetBlockCursor(gomock.Any(), cursorName, uint64(901)).Return(errors.New("db down"))

	err := l.Run(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestListener_Run_StartsFromLatestBlock(t *testing.T) {
	tm, l := setupTestListener(t, 0)
	ctx := context.Background()

	subErr := errors.New("websocket closed")
	tm.store.EXPECT().GetBlockCursor(gomock.Any(), cursorName).Return(uint64(0), nil)
	tm.subscriber.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(12345), nil)
	tm.subscriber.EXPECT().SubscribeLotteryResults(gomock.Any(), uint64(12345), gomock.Any()).Return(subErr)

	err := l.Run(ctx)
	assert.ErrorIs(t, err, subErr)
}

func TestListener_Run_StartBlockErrors(t *testing.T) {
	t.Run("cursor read failure", func(t *testing.T) {
		tm, l := setupTestListener(t, 0)
		tm.store.EXPECT().GetBlockCursor(gomock.Any(), cursorName).Return(uint64(0), errors.New("db down"))

		err := l.Run(context.Background())
		assert.ErrorContains(t, err, "block cursor")
	})

	t.Run("latest block failure", func(t *testing.T) {
		tm, l := setupTestListener(t, 0)
		tm.store.EXPECT().GetBlockCursor(gomock.Any(), cursorName).Return(uint64(0), nil)
		tm.subscriber.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(0), errors.New("rpc down"))

		err := l.Run(context.Background())
		assert.ErrorContains(t, err, "latest block")
	})
}

func TestListener_Close(t *testing.T) {
	tm, l := setupTestListener(t, 0)
	tm.subscriber.EXPECT().Close()

	l.Close()
}
