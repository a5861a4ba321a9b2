package alert

import "time"

// Alert types
const (
	// TypeLowBalance is raised when the relayer native balance drops below the configured minimum
	TypeLowBalance = "low_balance"

	// TypeSettlementFailed is raised when a token type settlement ends in FAILED
	TypeSettlementFailed = "settlement_failed"

	// TypeLotteryProcessingFailed is raised when the scheduled lottery run fails as a whole
	TypeLotteryProcessingFailed = "lottery_processing_failed"
)

// Event is the JSON body delivered to the alert webhook
type Event struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
