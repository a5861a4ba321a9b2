package domain

import (
	"math/big"
	"time"
)

// PrizeTier represents a Taiwan uniform-invoice prize tier
type PrizeTier string

const (
	PrizeTierSpecial PrizeTier = "SPECIAL"
	PrizeTierGrand   PrizeTier = "GRAND"
	PrizeTierFirst   PrizeTier = "FIRST"
	PrizeTierSecond  PrizeTier = "SECOND"
	PrizeTierThird   PrizeTier = "THIRD"
	PrizeTierFourth  PrizeTier = "FOURTH"
	PrizeTierFifth   PrizeTier = "FIFTH"
	PrizeTierSixth   PrizeTier = "SIXTH"
	PrizeTierNone    PrizeTier = "NONE"

	// PrizeTierExternal marks prizes supplied by the government API rather than matched locally
	PrizeTierExternal PrizeTier = "EXTERNAL"
)

// Prize amounts in TWD
const (
	PrizeAmountSpecial int64 = 10_000_000
	PrizeAmountGrand   int64 = 2_000_000
	PrizeAmountFirst   int64 = 200_000
	PrizeAmountSecond  int64 = 40_000
	PrizeAmountThird   int64 = 10_000
	PrizeAmountFourth  int64 = 4_000
	PrizeAmountFifth   int64 = 1_000
	PrizeAmountSixth   int64 = 200
)

// PrizeMatch is the outcome of matching an invoice number against the winning numbers
type PrizeMatch struct {
	Tier      PrizeTier `json:"prizeTier"`
	AmountTWD int64     `json:"prizeAmountTWD"`
}

// WinningNumbers holds the three published 8-digit numbers of a draw
type WinningNumbers struct {
	SpecialPrize string `json:"specialPrize"`
	GrandPrize   string `json:"grandPrize"`
	FirstPrize   string `json:"firstPrize"`
}

// ExternalWinningNumber is a pre-matched winning invoice number as published by the government API
type ExternalWinningNumber struct {
	Number string `json:"number"`
	Prize  int64  `json:"prize"`
}

// Holder is a wallet holding a positive balance of a token type
type Holder struct {
	WalletAddress string
	Balance       *big.Int
}

// LotteryResult is a decoded LotteryResultNotified event
type LotteryResult struct {
	TokenTypeID    *big.Int
	PoolID         *big.Int
	TotalAmount    *big.Int
	DonationAmount *big.Int
	RewardPerToken *big.Int
	TxHash         string
	BlockNumber    uint64
	LogIndex       uint
}

// SettlementState is the state of a token type's settlement pipeline
type SettlementState string

const (
	SettlementStatePending       SettlementState = "PENDING"
	SettlementStateRewardUpdated SettlementState = "REWARD_UPDATED"
	SettlementStateClaimsBatched SettlementState = "CLAIMS_BATCHED"
	SettlementStateDistributed   SettlementState = "DISTRIBUTED"
	SettlementStateFailed        SettlementState = "FAILED"
	// SettlementStateSkipped is reached when there is nothing to distribute (no holders)
	SettlementStateSkipped SettlementState = "SKIPPED"
)

// SettlementReport describes the outcome of one settlement run for a token type
type SettlementReport struct {
	RunID            string          `json:"runId"`
	TokenTypeID      string          `json:"tokenTypeId"`
	PoolID           string          `json:"poolId,omitempty"`
	State            SettlementState `json:"state"`
	HolderCount      int             `json:"holderCount"`
	TotalSupply      string          `json:"totalSupply,omitempty"`
	RewardPerUnit    string          `json:"rewardPerUnit,omitempty"`
	RewardTxHash     string          `json:"rewardTxHash,omitempty"`
	ClaimTxHashes    []string        `json:"claimTxHashes,omitempty"`
	DistributeTxHash string          `json:"distributeTxHash,omitempty"`
	Error            string          `json:"error,omitempty"`
	CompletedAt      time.Time       `json:"completedAt"`
}

// NotifyItemResult is the per-invoice outcome of a lottery notification
type NotifyItemResult struct {
	InvoiceNumber  string    `json:"invoiceNumber"`
	TokenTypeID    string    `json:"tokenTypeId,omitempty"`
	PrizeTier      PrizeTier `json:"prizeTier"`
	PrizeAmountTWD int64     `json:"prizeAmountTWD"`
	Success        bool      `json:"success"`
	TxHash         string    `json:"txHash,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// NotifySummary aggregates per-invoice notification outcomes for a lottery date
type NotifySummary struct {
	LotteryDate string             `json:"lotteryDate"`
	Total       int                `json:"total"`
	Success     int                `json:"success"`
	Failed      int                `json:"failed"`
	Results     []NotifyItemResult `json:"results"`
}

// Add appends an item and updates the counters
func (s *NotifySummary) Add(item NotifyItemResult) {
	s.Results = append(s.Results, item)
	s.Total++
	if item.Success {
		s.Success++
	} else {
		s.Failed++
	}
}

// TokenTypeData is the immutable on-chain data of a token type
type TokenTypeData struct {
	TokenTypeID     string    `json:"tokenTypeId"`
	DonationPercent uint8     `json:"donationPercent"`
	PoolID          string    `json:"poolId"`
	LotteryDay      time.Time `json:"lotteryDay"`
	HasBeenDrawn    bool      `json:"hasBeenDrawn"`
}

// PoolInfo is a pool record as stored by the pool contract
type PoolInfo struct {
	PoolID                string    `json:"poolId"`
	Beneficiary           string    `json:"beneficiary"`
	Name                  string    `json:"name"`
	LotteryMonth          string    `json:"lotteryMonth"`
	Active                bool      `json:"active"`
	MinDonationPercent    uint8     `json:"minDonationPercent"`
	TotalDonationReceived string    `json:"totalDonationReceived"`
	PendingDonation       string    `json:"pendingDonation"`
	LastWithdrawalTime    time.Time `json:"lastWithdrawalTime"`
}

// TxResult is the confirmed outcome of a state-changing chain call
type TxResult struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
}

// MintResult is the outcome of minting an invoice token
type MintResult struct {
	TxResult
	TokenTypeID string `json:"tokenTypeId"`
}

// InvoiceRegistrationResult is the per-invoice outcome of a registration request
type InvoiceRegistrationResult struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Success       bool   `json:"success"`
	InvoiceID     uint64 `json:"invoiceId,omitempty"`
	TokenTypeID   string `json:"tokenTypeId,omitempty"`
	TxHash        string `json:"txHash,omitempty"`
	Error         string `json:"error,omitempty"`
}

// BatchRegistrationSummary aggregates per-invoice registration outcomes
type BatchRegistrationSummary struct {
	Total   int                         `json:"total"`
	Success int                         `json:"success"`
	Failed  int                         `json:"failed"`
	Results []InvoiceRegistrationResult `json:"results"`
}

// Add appends an item and updates the counters
func (s *BatchRegistrationSummary) Add(item InvoiceRegistrationResult) {
	s.Results = append(s.Results, item)
	s.Total++
	if item.Success {
		s.Success++
	} else {
		s.Failed++
	}
}
