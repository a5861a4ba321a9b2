package auth

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

// RecoverSigner recovers the address that produced an EIP-191 personal_sign signature over message
func RecoverSigner(message string, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(strings.TrimSpace(signature))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: malformed signature: %w", domain.ErrInvalidSignature, err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: signature must be %d bytes, got %d", domain.ErrInvalidSignature, crypto.SignatureLength, len(sig))
	}

	// Wallets produce v as 27/28, crypto expects 0/1
	sig = append([]byte(nil), sig...)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", domain.ErrInvalidSignature, err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}

// Authorize checks that signature over message was produced by expectedSigner and returns the signer.
// Addresses are compared case-insensitively.
func Authorize(message string, signature string, expectedSigner string) (common.Address, error) {
	signer, err := RecoverSigner(message, signature)
	if err != nil {
		return common.Address{}, err
	}

	if !strings.EqualFold(signer.Hex(), strings.TrimSpace(expectedSigner)) {
		return common.Address{}, fmt.Errorf("%w: signer %s is not %s", domain.ErrInvalidSignature, signer.Hex(), expectedSigner)
	}

	return signer, nil
}
