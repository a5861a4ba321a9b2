package messaging

import (
	"context"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

// Publisher defines the interface for publishing lottery outcomes to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSettlement publishes the outcome of a token type settlement run
	PublishSettlement(ctx context.Context, report *domain.SettlementReport) error
	// PublishNotifySummary publishes the outcome of a lottery notification run
	PublishNotifySummary(ctx context.Context, summary *domain.NotifySummary) error
	// Close closes the connection
	Close()
}
