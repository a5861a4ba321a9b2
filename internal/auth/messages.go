package auth

import "fmt"

// Messages signed by the admin, a pool beneficiary or a wallet owner.
// Verifier and signer must build byte-identical strings.

func RegisterPoolMessage(poolID string, beneficiary string) string {
	return fmt.Sprintf("Register pool %s with beneficiary %s", poolID, beneficiary)
}

func UpdateMinDonationPercentMessage(poolID string, percent int) string {
	return fmt.Sprintf("Update minDonationPercent for pool %s to %d", poolID, percent)
}

func WithdrawDonationMessage(poolID string) string {
	return fmt.Sprintf("Withdraw donations from pool %s", poolID)
}

func UpdateBeneficiaryMessage(poolID string, beneficiary string) string {
	return fmt.Sprintf("Update beneficiary for pool %s to %s", poolID, beneficiary)
}

func DeactivatePoolMessage(poolID string) string {
	return fmt.Sprintf("Deactivate pool %s", poolID)
}

func ClaimRewardMessage(tokenTypeID string) string {
	return fmt.Sprintf("Claim reward for token type %s", tokenTypeID)
}

func SetTokenURIMessage(uri string) string {
	return fmt.Sprintf("Set token URI to %s", uri)
}

func SetPoolContractMessage(address string) string {
	return fmt.Sprintf("Set pool contract to %s", address)
}
