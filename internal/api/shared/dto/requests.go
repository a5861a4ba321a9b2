package dto

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/feral-file/invoice-lottery/internal/api/shared/constants"
	apierrors "github.com/feral-file/invoice-lottery/internal/api/shared/errors"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/lottery"
)

// ParseUint256 parses a decimal on-chain identifier such as a pool or token type id
func ParseUint256(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return nil, apierrors.NewValidationError(fmt.Sprintf("%s must be a non-negative integer", field))
	}
	return n, nil
}

// ValidateAddress checks an Ethereum address
func ValidateAddress(field, value string) error {
	if !common.IsHexAddress(value) {
		return apierrors.NewValidationError(fmt.Sprintf("%s must be a valid Ethereum address", field))
	}
	return nil
}

func requireSignature(signature string) error {
	if signature == "" {
		return apierrors.NewValidationError("signature is required")
	}
	return nil
}

// RegisterUserRequest represents the request body for registering a carrier code
type RegisterUserRequest struct {
	WalletAddress   string `json:"walletAddress"`
	CarrierNumber   string `json:"carrierNumber"`
	PoolID          string `json:"poolId"`
	DonationPercent int    `json:"donationPercent"`
}

// Validate validates the request body
func (r *RegisterUserRequest) Validate(policy domain.DonationPolicy) error {
	if err := ValidateAddress("walletAddress", r.WalletAddress); err != nil {
		return err
	}
	if strings.TrimSpace(r.CarrierNumber) == "" {
		return apierrors.NewValidationError("carrierNumber is required")
	}
	if _, err := ParseUint256("poolId", r.PoolID); err != nil {
		return err
	}
	if err := policy.Validate(r.DonationPercent); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// UpdateUserRequest represents the request body for updating a user's pool and donation settings
type UpdateUserRequest struct {
	PoolID          *string `json:"poolId,omitempty"`
	DonationPercent *int    `json:"donationPercent,omitempty"`
}

// Validate validates the request body
func (r *UpdateUserRequest) Validate(policy domain.DonationPolicy) error {
	if r.PoolID == nil && r.DonationPercent == nil {
		return apierrors.NewValidationError("no fields to update")
	}
	if r.PoolID != nil {
		if _, err := ParseUint256("poolId", *r.PoolID); err != nil {
			return err
		}
	}
	if r.DonationPercent != nil {
		if err := policy.Validate(*r.DonationPercent); err != nil {
			return apierrors.NewValidationError(err.Error())
		}
	}
	return nil
}

// RegisterInvoiceRequest represents one invoice reported by the value-added center
type RegisterInvoiceRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`
	CarrierNumber string `json:"carrierNumber"`
	Amount        string `json:"amount"`
	PurchaseDate  string `json:"purchaseDate"`
	LotteryDay    string `json:"lotteryDay"`
}

// Validate validates the request body
func (r *RegisterInvoiceRequest) Validate() error {
	if err := lottery.ValidateInvoiceNumber(r.InvoiceNumber); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(r.CarrierNumber) == "" {
		return apierrors.NewValidationError("carrierNumber is required")
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || !amount.IsPositive() {
		return apierrors.NewValidationError("amount must be a positive number")
	}
	if _, err := lottery.ParseLotteryDate(r.PurchaseDate); err != nil {
		return apierrors.NewValidationError("purchaseDate must be YYYY-MM-DD")
	}
	if _, err := lottery.ParseLotteryDate(r.LotteryDay); err != nil {
		return apierrors.NewValidationError("lotteryDay must be YYYY-MM-DD")
	}
	return nil
}

// BatchRegisterInvoicesRequest represents the request body for registering invoices in bulk
type BatchRegisterInvoicesRequest struct {
	Invoices []RegisterInvoiceRequest `json:"invoices"`
}

// Validate validates the envelope only, items are validated one by one during registration
func (r *BatchRegisterInvoicesRequest) Validate() error {
	if len(r.Invoices) == 0 {
		return apierrors.NewValidationError("invoices is required and must not be empty")
	}
	if len(r.Invoices) > constants.MAX_INVOICES_PER_BATCH {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d invoices allowed", constants.MAX_INVOICES_PER_BATCH))
	}
	return nil
}

// RegisterPoolRequest represents the request body for registering a charity pool
type RegisterPoolRequest struct {
	PoolID       string `json:"poolId"`
	Beneficiary  string `json:"beneficiary"`
	Name         string `json:"name"`
	LotteryMonth string `json:"lotteryMonth"`
	Signature    string `json:"signature"`
}

// Validate validates the request body
func (r *RegisterPoolRequest) Validate() error {
	if _, err := ParseUint256("poolId", r.PoolID); err != nil {
		return err
	}
	if err := ValidateAddress("beneficiary", r.Beneficiary); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" || len(r.Name) > constants.MAX_POOL_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name is required and at most %d characters", constants.MAX_POOL_NAME_LENGTH))
	}
	if _, err := ParseUint256("lotteryMonth", r.LotteryMonth); err != nil {
		return err
	}
	return requireSignature(r.Signature)
}

// UpdateMinDonationPercentRequest represents the request body for changing a pool's minimum donation percent
type UpdateMinDonationPercentRequest struct {
	MinDonationPercent *int   `json:"minDonationPercent"`
	Signature          string `json:"signature"`
}

// Validate validates the request body
func (r *UpdateMinDonationPercentRequest) Validate() error {
	if r.MinDonationPercent == nil {
		return apierrors.NewValidationError("minDonationPercent is required")
	}
	if *r.MinDonationPercent < 0 || *r.MinDonationPercent > 100 {
		return apierrors.NewValidationError("minDonationPercent must be between 0 and 100")
	}
	return requireSignature(r.Signature)
}

// SignedRequest represents a request body carrying only an authorization signature
type SignedRequest struct {
	Signature string `json:"signature"`
}

// Validate validates the request body
func (r *SignedRequest) Validate() error {
	return requireSignature(r.Signature)
}

// UpdateBeneficiaryRequest represents the request body for replacing a pool beneficiary
type UpdateBeneficiaryRequest struct {
	Beneficiary string `json:"beneficiary"`
	Signature   string `json:"signature"`
}

// Validate validates the request body
func (r *UpdateBeneficiaryRequest) Validate() error {
	if err := ValidateAddress("beneficiary", r.Beneficiary); err != nil {
		return err
	}
	return requireSignature(r.Signature)
}

// ClaimRewardRequest represents the request body for claiming a reward on behalf of a wallet
type ClaimRewardRequest struct {
	WalletAddress string `json:"walletAddress"`
	TokenTypeID   string `json:"tokenTypeId"`
	Signature     string `json:"signature"`
}

// Validate validates the request body
func (r *ClaimRewardRequest) Validate() error {
	if err := ValidateAddress("walletAddress", r.WalletAddress); err != nil {
		return err
	}
	if _, err := ParseUint256("tokenTypeId", r.TokenTypeID); err != nil {
		return err
	}
	return requireSignature(r.Signature)
}

// SetTokenURIRequest represents the request body for changing the invoice token metadata URI
type SetTokenURIRequest struct {
	URI       string `json:"uri"`
	Signature string `json:"signature"`
}

// Validate validates the request body
func (r *SetTokenURIRequest) Validate() error {
	if strings.TrimSpace(r.URI) == "" || len(r.URI) > constants.MAX_TOKEN_URI_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("uri is required and at most %d characters", constants.MAX_TOKEN_URI_LENGTH))
	}
	return requireSignature(r.Signature)
}

// SetPoolContractRequest represents the request body for pointing the invoice token at a new pool contract
type SetPoolContractRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// Validate validates the request body
func (r *SetPoolContractRequest) Validate() error {
	if err := ValidateAddress("address", r.Address); err != nil {
		return err
	}
	return requireSignature(r.Signature)
}

// ProcessLotteryRequest represents the request body for manual lottery processing
type ProcessLotteryRequest struct {
	LotteryDate  string `json:"lotteryDate"`
	SpecialPrize string `json:"specialPrize"`
	GrandPrize   string `json:"grandPrize"`
	FirstPrize   string `json:"firstPrize"`
}

// WinningNumbers returns the winning numbers of the request
func (r *ProcessLotteryRequest) WinningNumbers() domain.WinningNumbers {
	return domain.WinningNumbers{
		SpecialPrize: r.SpecialPrize,
		GrandPrize:   r.GrandPrize,
		FirstPrize:   r.FirstPrize,
	}
}

// Validate validates the request body
func (r *ProcessLotteryRequest) Validate() error {
	if _, err := lottery.ParseLotteryDate(r.LotteryDate); err != nil {
		return apierrors.NewValidationError("lotteryDate must be YYYY-MM-DD")
	}
	if err := lottery.ValidateWinningNumbers(r.WinningNumbers()); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}
