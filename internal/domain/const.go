package domain

import "math/big"

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// LOTTERY_DATE_LAYOUT is the layout of lottery dates exchanged with clients and the government API
	LOTTERY_DATE_LAYOUT = "2006-01-02"

	// DEFAULT_CLAIM_BATCH_SIZE is the number of holders per batchClaimReward transaction
	DEFAULT_CLAIM_BATCH_SIZE = 50
)

// WeiPerUnit is 10^18, the fixed-point scale of on-chain amounts
var WeiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// ToWei converts a whole TWD amount into its 18-decimal on-chain representation
func ToWei(amount int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(amount), WeiPerUnit)
}
