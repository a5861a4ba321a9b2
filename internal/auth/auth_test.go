package auth

import (
	"crypto/ecdsa"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

func personalSign(t *testing.T, key *ecdsa.PrivateKey, message string, walletStyleV bool) string {
	t.Helper()
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	if walletStyleV {
		sig[crypto.RecoveryIDOffset] += 27
	}
	return hexutil.Encode(sig)
}

func TestAuthorize(t *testing.T) {
	admin, err := crypto.GenerateKey()
	require.NoError(t, err)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)
	adminAddress := crypto.PubkeyToAddress(admin.PublicKey)

	message := RegisterPoolMessage("1", "0x2222222222222222222222222222222222222222")

	t.Run("admin signature with wallet v", func(t *testing.T) {
		signer, err := Authorize(message, personalSign(t, admin, message, true), adminAddress.Hex())
		require.NoError(t, err)
		assert.Equal(t, adminAddress, signer)
	})

	t.Run("admin signature with raw v", func(t *testing.T) {
		_, err := Authorize(message, personalSign(t, admin, message, false), adminAddress.Hex())
		assert.NoError(t, err)
	})

	t.Run("expected signer compared case-insensitively", func(t *testing.T) {
		_, err := Authorize(message, personalSign(t, admin, message, true), strings.ToLower(adminAddress.Hex()))
		assert.NoError(t, err)
	})

	t.Run("valid signature from non-admin wallet", func(t *testing.T) {
		_, err := Authorize(message, personalSign(t, other, message, true), adminAddress.Hex())
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("signature over different parameters", func(t *testing.T) {
		sig := personalSign(t, admin, RegisterPoolMessage("2", "0x2222222222222222222222222222222222222222"), true)
		_, err := Authorize(message, sig, adminAddress.Hex())
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("malformed signature", func(t *testing.T) {
		badRecoveryID := make([]byte, 65)
		badRecoveryID[64] = 40
		for _, sig := range []string{"", "0x", "not-hex", "0x1234", hexutil.Encode(badRecoveryID)} {
			_, err := Authorize(message, sig, adminAddress.Hex())
			assert.ErrorIs(t, err, domain.ErrInvalidSignature, "signature %q", sig)
		}
	})
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Register pool 3 with beneficiary 0xabc", RegisterPoolMessage("3", "0xabc"))
	assert.Equal(t, "Update minDonationPercent for pool 3 to 40", UpdateMinDonationPercentMessage("3", 40))
	assert.Equal(t, "Withdraw donations from pool 3", WithdrawDonationMessage("3"))
	assert.Equal(t, "Update beneficiary for pool 3 to 0xdef", UpdateBeneficiaryMessage("3", "0xdef"))
	assert.Equal(t, "Deactivate pool 3", DeactivatePoolMessage("3"))
	assert.Equal(t, "Claim reward for token type 12", ClaimRewardMessage("12"))
	assert.Equal(t, "Set token URI to ipfs://x/{id}", SetTokenURIMessage("ipfs://x/{id}"))
	assert.Equal(t, "Set pool contract to 0x01", SetPoolContractMessage("0x01"))
}
