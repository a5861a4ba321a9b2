package dto

import (
	"time"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

// UserResponse represents a registered carrier code
type UserResponse struct {
	WalletAddress   string    `json:"walletAddress"`
	CarrierNumber   string    `json:"carrierNumber"`
	PoolID          string    `json:"poolId"`
	DonationPercent int       `json:"donationPercent"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MapUserToDTO maps a user record to its response
func MapUserToDTO(user *schema.User) *UserResponse {
	return &UserResponse{
		WalletAddress:   user.WalletAddress,
		CarrierNumber:   user.CarrierNumber,
		PoolID:          user.PoolID,
		DonationPercent: user.DonationPercent,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// InvoiceResponse represents a registered invoice
type InvoiceResponse struct {
	ID              uint64     `json:"id"`
	InvoiceNumber   string     `json:"invoiceNumber"`
	CarrierNumber   string     `json:"carrierNumber"`
	WalletAddress   string     `json:"walletAddress"`
	PoolID          string     `json:"poolId"`
	DonationPercent int        `json:"donationPercent"`
	Amount          string     `json:"amount"`
	PurchaseDate    string     `json:"purchaseDate"`
	LotteryDay      string     `json:"lotteryDay"`
	TokenTypeID     *string    `json:"tokenTypeId"`
	Drawn           bool       `json:"drawn"`
	PrizeAmount     int64      `json:"prizeAmount"`
	Claimed         bool       `json:"claimed"`
	ClaimedAt       *time.Time `json:"claimedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// MapInvoiceToDTO maps an invoice record to its response
func MapInvoiceToDTO(invoice *schema.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:              invoice.ID,
		InvoiceNumber:   invoice.InvoiceNumber,
		CarrierNumber:   invoice.CarrierNumber,
		WalletAddress:   invoice.WalletAddress,
		PoolID:          invoice.PoolID,
		DonationPercent: invoice.DonationPercent,
		Amount:          invoice.Amount,
		PurchaseDate:    invoice.PurchaseDate.Format(domain.LOTTERY_DATE_LAYOUT),
		LotteryDay:      invoice.LotteryDay.Format(domain.LOTTERY_DATE_LAYOUT),
		TokenTypeID:     invoice.TokenTypeID,
		Drawn:           invoice.Drawn,
		PrizeAmount:     invoice.PrizeAmount,
		Claimed:         invoice.Claimed,
		ClaimedAt:       invoice.ClaimedAt,
		CreatedAt:       invoice.CreatedAt,
	}
}

// MapInvoicesToDTO maps invoice records to responses
func MapInvoicesToDTO(invoices []schema.Invoice) []InvoiceResponse {
	result := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		result[i] = MapInvoiceToDTO(&invoices[i])
	}
	return result
}

// InvoiceListResponse represents a page of invoices
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	Total      uint64            `json:"total"`
	NextOffset *uint64           `json:"nextOffset,omitempty"`
}

// PoolListResponse represents the registered pool ids
type PoolListResponse struct {
	PoolIDs []string `json:"poolIds"`
}

// ClaimableRewardResponse represents the reward a wallet can still claim for a token type
type ClaimableRewardResponse struct {
	WalletAddress   string `json:"walletAddress"`
	TokenTypeID     string `json:"tokenTypeId"`
	ClaimableReward string `json:"claimableReward"`
}

// HealthResponse represents the health status of the API
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
