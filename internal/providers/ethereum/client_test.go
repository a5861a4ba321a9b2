package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/mocks"
	ethprovider "github.com/feral-file/invoice-lottery/internal/providers/ethereum"
)

const (
	testTokenAddress = "0x1111111111111111111111111111111111111111"
	testPoolAddress  = "0x2222222222222222222222222222222222222222"
	testWallet       = "0x3333333333333333333333333333333333333333"
)

func newTestClient(t *testing.T) (*mocks.MockEthClient, ethprovider.EthereumClient) {
	ctrl := gomock.NewController(t)
	ethClient := mocks.NewMockEthClient(ctrl)
	client := ethprovider.NewClient(ethprovider.ClientConfig{
		InvoiceTokenAddress: testTokenAddress,
		PoolAddress:         testPoolAddress,
		RateLimit:           1000,
		Burst:               10,
	}, ethClient)
	return ethClient, client
}

func packOutputs(t *testing.T, method string, contractABI interface {
	Pack(...interface{}) ([]byte, error)
}, values ...interface{}) []byte {
	t.Helper()
	data, err := contractABI.Pack(values...)
	require.NoError(t, err, method)
	return data
}

func TestBalanceOf(t *testing.T) {
	ethClient, client := newTestClient(t)
	ctx := context.Background()

	output := packOutputs(t, "balanceOf", ethprovider.InvoiceTokenABI.Methods["balanceOf"].Outputs, big.NewInt(3))
	ethClient.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			assert.Equal(t, common.HexToAddress(testTokenAddress), *msg.To)
			expected, err := ethprovider.InvoiceTokenABI.Pack("balanceOf", common.HexToAddress(testWallet), big.NewInt(7))
			require.NoError(t, err)
			assert.Equal(t, expected, msg.Data)
			return output, nil
		})

	balance, err := client.BalanceOf(ctx, testWallet, big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance.Int64())

	_, err = client.BalanceOf(ctx, "not-an-address", big.NewInt(7))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetTokenTypeData(t *testing.T) {
	tests := []struct {
		name        string
		percent     uint8
		expectError error
	}{
		{name: "existing token type", percent: 50},
		{name: "zero donation percent is not found", percent: 0, expectError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ethClient, client := newTestClient(t)

			output := packOutputs(t, "getTokenTypeData", ethprovider.InvoiceTokenABI.Methods["getTokenTypeData"].Outputs,
				tt.percent, big.NewInt(2), big.NewInt(1742860800), true)
			ethClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(output, nil)

			data, err := client.GetTokenTypeData(context.Background(), big.NewInt(9))
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "9", data.TokenTypeID)
			assert.Equal(t, uint8(50), data.DonationPercent)
			assert.Equal(t, "2", data.PoolID)
			assert.Equal(t, "2025-03-25", data.LotteryDay.Format(domain.LOTTERY_DATE_LAYOUT))
			assert.True(t, data.HasBeenDrawn)
		})
	}
}

func TestGetPool(t *testing.T) {
	beneficiary := common.HexToAddress(testWallet)

	t.Run("existing pool", func(t *testing.T) {
		ethClient, client := newTestClient(t)
		output := packOutputs(t, "pools", ethprovider.PoolABI.Methods["pools"].Outputs,
			big.NewInt(4), beneficiary, "Harbor Kids", big.NewInt(202503), true, uint8(25),
			big.NewInt(1000), big.NewInt(300), big.NewInt(0))
		ethClient.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
				assert.Equal(t, common.HexToAddress(testPoolAddress), *msg.To)
				return output, nil
			})

		pool, err := client.GetPool(context.Background(), big.NewInt(4))
		require.NoError(t, err)
		assert.Equal(t, "4", pool.PoolID)
		assert.Equal(t, beneficiary.Hex(), pool.Beneficiary)
		assert.Equal(t, "Harbor Kids", pool.Name)
		assert.Equal(t, "202503", pool.LotteryMonth)
		assert.True(t, pool.Active)
		assert.Equal(t, uint8(25), pool.MinDonationPercent)
		assert.Equal(t, "1000", pool.TotalDonationReceived)
		assert.Equal(t, "300", pool.PendingDonation)
	})

	t.Run("zero pool id is not found", func(t *testing.T) {
		ethClient, client := newTestClient(t)
		output := packOutputs(t, "pools", ethprovider.PoolABI.Methods["pools"].Outputs,
			big.NewInt(0), common.Address{}, "", big.NewInt(0), false, uint8(0),
			big.NewInt(0), big.NewInt(0), big.NewInt(0))
		ethClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(output, nil)

		_, err := client.GetPool(context.Background(), big.NewInt(99))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGetAllPoolIDs(t *testing.T) {
	ethClient, client := newTestClient(t)
	output := packOutputs(t, "getAllPoolIds", ethprovider.PoolABI.Methods["getAllPoolIds"].Outputs,
		[]*big.Int{big.NewInt(1), big.NewInt(2)})
	ethClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(output, nil)

	ids, err := client.GetAllPoolIDs(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, int64(2), ids[1].Int64())
}

func TestGetClaimableReward(t *testing.T) {
	ethClient, client := newTestClient(t)
	output := packOutputs(t, "getClaimableReward", ethprovider.PoolABI.Methods["getClaimableReward"].Outputs, domain.ToWei(300))
	ethClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(output, nil)

	amount, err := client.GetClaimableReward(context.Background(), testWallet, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, domain.ToWei(300).String(), amount.String())
}

func TestNativeBalance(t *testing.T) {
	ethClient, client := newTestClient(t)
	ethClient.EXPECT().BalanceAt(gomock.Any(), common.HexToAddress(testWallet), gomock.Nil()).Return(big.NewInt(5), nil)

	balance, err := client.NativeBalance(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, int64(5), balance.Int64())
}

func TestTransactionReceipt(t *testing.T) {
	hash := "0x00000000000000000000000000000000000000000000000000000000000000aa"

	t.Run("mined", func(t *testing.T) {
		ethClient, client := newTestClient(t)
		ethClient.EXPECT().TransactionReceipt(gomock.Any(), common.HexToHash(hash)).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

		receipt, err := client.TransactionReceipt(context.Background(), hash)
		require.NoError(t, err)
		assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	})

	t.Run("not mined", func(t *testing.T) {
		ethClient, client := newTestClient(t)
		ethClient.EXPECT().TransactionReceipt(gomock.Any(), common.HexToHash(hash)).Return(nil, ethereum.NotFound)

		_, err := client.TransactionReceipt(context.Background(), hash)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rpc failure", func(t *testing.T) {
		ethClient, client := newTestClient(t)
		ethClient.EXPECT().TransactionReceipt(gomock.Any(), common.HexToHash(hash)).Return(nil, errors.New("connection reset"))

		_, err := client.TransactionReceipt(context.Background(), hash)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}
