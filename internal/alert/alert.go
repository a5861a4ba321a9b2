package alert

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/store"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

const (
	SignatureHeader = "X-Signature"
	TimestampHeader = "X-Timestamp"
)

// Config holds the optional alert webhook settings
type Config struct {
	WebhookURL    string
	WebhookSecret string
}

// Alerter records operational alerts
//
//go:generate mockgen -source=alert.go -destination=../mocks/alert.go -package=mocks -mock_names=Alerter=MockAlerter
type Alerter interface {
	// SendAlert appends an alert to the system log and forwards it to the webhook when configured
	SendAlert(ctx context.Context, alertType string, message string) error
}

type alerter struct {
	cfg        Config
	store      store.Store
	httpClient adapter.HTTPClient
	json       adapter.JSON
	clock      adapter.Clock
}

// NewAlerter creates a new alerter
func NewAlerter(cfg Config, st store.Store, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, clock adapter.Clock) Alerter {
	return &alerter{
		cfg:        cfg,
		store:      st,
		httpClient: httpClient,
		json:       jsonAdapter,
		clock:      clock,
	}
}

func (a *alerter) SendAlert(ctx context.Context, alertType string, message string) error {
	logger.WarnCtx(ctx, "Alert raised", zap.String("type", alertType), zap.String("message", message))

	if err := a.store.CreateSystemLog(ctx, schema.SystemLogLevelAlert, message, map[string]interface{}{"type": alertType}); err != nil {
		return fmt.Errorf("failed to record alert: %w", err)
	}

	if a.cfg.WebhookURL == "" {
		return nil
	}

	now := a.clock.Now()
	payload, err := a.json.Marshal(Event{Type: alertType, Message: message, Timestamp: now.UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	headers := map[string]string{
		TimestampHeader: strconv.FormatInt(now.Unix(), 10),
	}
	if a.cfg.WebhookSecret != "" {
		headers[SignatureHeader] = SignPayload(a.cfg.WebhookSecret, now.Unix(), payload)
	}

	if _, err := a.httpClient.PostJSON(ctx, a.cfg.WebhookURL, headers, payload); err != nil {
		return fmt.Errorf("failed to deliver alert webhook: %w", err)
	}

	return nil
}
