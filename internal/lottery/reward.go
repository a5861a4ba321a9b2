package lottery

import (
	"fmt"
	"math/big"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

// ComputeRewardPerUnit returns floor((totalPrize - donation) / totalSupply).
// The remainder is not distributed.
func ComputeRewardPerUnit(totalPrize, donation, totalSupply *big.Int) (*big.Int, error) {
	if totalSupply == nil || totalSupply.Sign() <= 0 {
		return nil, fmt.Errorf("%w: total supply must be positive", domain.ErrValidation)
	}
	if totalPrize == nil || donation == nil || totalPrize.Sign() < 0 || donation.Sign() < 0 {
		return nil, fmt.Errorf("%w: prize and donation must be non-negative", domain.ErrValidation)
	}
	if donation.Cmp(totalPrize) > 0 {
		return nil, fmt.Errorf("%w: donation %s exceeds prize %s", domain.ErrValidation, donation, totalPrize)
	}

	reward := new(big.Int).Sub(totalPrize, donation)
	return reward.Quo(reward, totalSupply), nil
}

// TotalSupply sums the balances of holders
func TotalSupply(holders []domain.Holder) *big.Int {
	total := new(big.Int)
	for _, h := range holders {
		if h.Balance != nil {
			total.Add(total, h.Balance)
		}
	}
	return total
}
