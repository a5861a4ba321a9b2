package holder_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/holder"
	"github.com/feral-file/invoice-lottery/internal/mocks"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

var now = time.Date(2025, 3, 25, 12, 0, 0, 0, time.UTC)

type resolverMocks struct {
	store  *mocks.MockStore
	client *mocks.MockEthereumClient
	clock  *mocks.MockClock
}

func setupResolver(t *testing.T) (*resolverMocks, holder.Resolver) {
	ctrl := gomock.NewController(t)
	m := &resolverMocks{
		store:  mocks.NewMockStore(ctrl),
		client: mocks.NewMockEthereumClient(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	r := holder.NewResolver(holder.Config{CacheTTL: time.Hour, ScanConcurrency: 4}, m.store, m.client, m.clock)
	t.Cleanup(r.Close)
	return m, r
}

func TestGetHolders_FreshCache(t *testing.T) {
	m, r := setupResolver(t)

	m.store.EXPECT().GetTokenHolders(gomock.Any(), "5").Return([]schema.TokenHolder{
		{TokenTypeID: "5", WalletAddress: "0xa", Balance: "3", LastUpdated: now.Add(-30 * time.Minute)},
		{TokenTypeID: "5", WalletAddress: "0xb", Balance: "0", LastUpdated: now.Add(-10 * time.Minute)},
		{TokenTypeID: "5", WalletAddress: "0xc", Balance: "9", LastUpdated: now.Add(-61 * time.Minute)},
	}, nil)

	holders, err := r.GetHolders(context.Background(), "5")
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Equal(t, "0xa", holders[0].WalletAddress)
	assert.Equal(t, int64(3), holders[0].Balance.Int64())
}

func TestGetHolders_StaleCacheScansChain(t *testing.T) {
	m, r := setupResolver(t)

	m.store.EXPECT().GetTokenHolders(gomock.Any(), "5").Return([]schema.TokenHolder{
		{TokenTypeID: "5", WalletAddress: "0xa", Balance: "3", LastUpdated: now.Add(-61 * time.Minute)},
	}, nil)
	m.store.EXPECT().GetInvoiceWalletsByTokenType(gomock.Any(), "5").Return([]string{"0xa", "0xb", "0xc"}, nil)
	m.client.EXPECT().BalanceOf(gomock.Any(), "0xa", big.NewInt(5)).Return(big.NewInt(2), nil)
	m.client.EXPECT().BalanceOf(gomock.Any(), "0xb", big.NewInt(5)).Return(big.NewInt(0), nil)
	m.client.EXPECT().BalanceOf(gomock.Any(), "0xc", big.NewInt(5)).Return(big.NewInt(7), nil)
	m.store.EXPECT().UpsertTokenHolders(gomock.Any(), []schema.TokenHolder{
		{TokenTypeID: "5", WalletAddress: "0xa", Balance: "2", LastUpdated: now},
		{TokenTypeID: "5", WalletAddress: "0xc", Balance: "7", LastUpdated: now},
	}).Return(nil)

	holders, err := r.GetHolders(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, []domain.Holder{
		{WalletAddress: "0xa", Balance: big.NewInt(2)},
		{WalletAddress: "0xc", Balance: big.NewInt(7)},
	}, holders)
}

func TestGetHolders_NoCandidates(t *testing.T) {
	m, r := setupResolver(t)

	m.store.EXPECT().GetTokenHolders(gomock.Any(), "5").Return(nil, nil)
	m.store.EXPECT().GetInvoiceWalletsByTokenType(gomock.Any(), "5").Return(nil, nil)

	holders, err := r.GetHolders(context.Background(), "5")
	require.NoError(t, err)
	assert.Empty(t, holders)
}

func TestGetHolders_ChainFailureAborts(t *testing.T) {
	m, r := setupResolver(t)

	m.store.EXPECT().GetTokenHolders(gomock.Any(), "5").Return(nil, nil)
	m.store.EXPECT().GetInvoiceWalletsByTokenType(gomock.Any(), "5").Return([]string{"0xa", "0xb"}, nil)
	m.client.EXPECT().BalanceOf(gomock.Any(), "0xa", gomock.Any()).Return(big.NewInt(1), nil).MaxTimes(1)
	m.client.EXPECT().BalanceOf(gomock.Any(), "0xb", gomock.Any()).Return(nil, errors.New("rpc down"))

	holders, err := r.GetHolders(context.Background(), "5")
	assert.Error(t, err)
	assert.Nil(t, holders)
}

func TestGetHolders_CacheWriteFailureIsNotFatal(t *testing.T) {
	m, r := setupResolver(t)

	m.store.EXPECT().GetTokenHolders(gomock.Any(), "5").Return(nil, nil)
	m.store.EXPECT().GetInvoiceWalletsByTokenType(gomock.Any(), "5").Return([]string{"0xa"}, nil)
	m.client.EXPECT().BalanceOf(gomock.Any(), "0xa", gomock.Any()).Return(big.NewInt(1), nil)
	m.store.EXPECT().UpsertTokenHolders(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	holders, err := r.GetHolders(context.Background(), "5")
	require.NoError(t, err)
	assert.Len(t, holders, 1)
}

func TestGetHolders_InvalidTokenType(t *testing.T) {
	_, r := setupResolver(t)

	_, err := r.GetHolders(context.Background(), "abc")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
