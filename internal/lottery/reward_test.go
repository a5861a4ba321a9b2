package lottery

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

func TestComputeRewardPerUnit(t *testing.T) {
	tests := []struct {
		name     string
		total    *big.Int
		donation *big.Int
		supply   *big.Int
		expected string
	}{
		{"exact division", big.NewInt(1000), big.NewInt(100), big.NewInt(3), "300"},
		{"remainder discarded", big.NewInt(1000), big.NewInt(100), big.NewInt(7), "128"},
		{"full donation", big.NewInt(1000), big.NewInt(1000), big.NewInt(7), "0"},
		{"wei scale", domain.ToWei(200000), domain.ToWei(100000), big.NewInt(3), "33333333333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reward, err := ComputeRewardPerUnit(tt.total, tt.donation, tt.supply)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reward.String())
		})
	}
}

func TestComputeRewardPerUnit_Invalid(t *testing.T) {
	_, err := ComputeRewardPerUnit(big.NewInt(1000), big.NewInt(100), big.NewInt(0))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ComputeRewardPerUnit(big.NewInt(1000), big.NewInt(100), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ComputeRewardPerUnit(big.NewInt(100), big.NewInt(1000), big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ComputeRewardPerUnit(big.NewInt(-1), big.NewInt(0), big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestComputeRewardPerUnit_DoesNotMutateInputs(t *testing.T) {
	total, donation, supply := big.NewInt(1000), big.NewInt(100), big.NewInt(7)
	_, err := ComputeRewardPerUnit(total, donation, supply)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total.Int64())
	assert.Equal(t, int64(100), donation.Int64())
	assert.Equal(t, int64(7), supply.Int64())
}

func TestTotalSupply(t *testing.T) {
	assert.Equal(t, "0", TotalSupply(nil).String())
	assert.Equal(t, "6", TotalSupply([]domain.Holder{
		{WalletAddress: "a", Balance: big.NewInt(1)},
		{WalletAddress: "b", Balance: big.NewInt(5)},
		{WalletAddress: "c"},
	}).String())
}
