package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/messaging"
)

const subjectPrefix = "lottery"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher connects to NATS, ensures the lottery stream exists and returns a publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{subjectPrefix + ".>"},
		Retention: jetstream.LimitsPolicy,
		MaxAge:    30 * 24 * time.Hour,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishSettlement publishes a settlement report on lottery.settlement.<state>
func (p *publisher) PublishSettlement(ctx context.Context, report *domain.SettlementReport) error {
	subject := fmt.Sprintf("%s.settlement.%s", subjectPrefix, strings.ToLower(string(report.State)))
	return p.publish(ctx, subject, report)
}

// PublishNotifySummary publishes a notification summary on lottery.notify
func (p *publisher) PublishNotifySummary(ctx context.Context, summary *domain.NotifySummary) error {
	return p.publish(ctx, subjectPrefix+".notify", summary)
}

func (p *publisher) publish(ctx context.Context, subject string, payload interface{}) error {
	logger.DebugCtx(ctx, "Publishing NATS message", zap.String("subject", subject))

	data, err := p.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(uuid.NewString())); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every message, used when NATS is not configured
func NewNoopPublisher() messaging.Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishSettlement(ctx context.Context, report *domain.SettlementReport) error {
	logger.DebugCtx(ctx, "NATS disabled, settlement report not published", zap.String("tokenTypeId", report.TokenTypeID))
	return nil
}

func (noopPublisher) PublishNotifySummary(ctx context.Context, summary *domain.NotifySummary) error {
	logger.DebugCtx(ctx, "NATS disabled, notify summary not published", zap.String("lotteryDate", summary.LotteryDate))
	return nil
}

func (noopPublisher) Close() {}
