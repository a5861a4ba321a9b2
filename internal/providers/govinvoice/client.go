package govinvoice

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/domain"
)

// LotteryResponse represents a lottery result from the government invoice API
type LotteryResponse struct {
	LotteryDate    string                         `json:"lotteryDate"`
	WinningNumbers []domain.ExternalWinningNumber `json:"winningNumbers"`
}

// Client defines an interface for government invoice API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/govinvoice_client.go -package=mocks -mock_names=Client=MockGovInvoiceClient
type Client interface {
	// FetchWinningNumbers retrieves the pre-matched winning invoice numbers of a lottery date
	FetchWinningNumbers(ctx context.Context, lotteryDate time.Time) ([]domain.ExternalWinningNumber, error)
}

// client is the concrete implementation of Client
type client struct {
	baseURL    string
	apiKey     string
	httpClient adapter.HTTPClient
}

// NewClient creates a new government invoice API client
func NewClient(baseURL, apiKey string, httpClient adapter.HTTPClient) Client {
	return &client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// FetchWinningNumbers retrieves the winning numbers of a lottery date.
// Retries on rate limiting and network errors are handled by the HTTP client.
func (c *client) FetchWinningNumbers(ctx context.Context, lotteryDate time.Time) ([]domain.ExternalWinningNumber, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: government API url is not configured", domain.ErrValidation)
	}

	date := lotteryDate.Format(domain.LOTTERY_DATE_LAYOUT)
	query := url.Values{}
	query.Set("date", date)
	query.Set("apiKey", c.apiKey)
	endpoint := fmt.Sprintf("%s/lottery?%s", c.baseURL, query.Encode())

	var resp LotteryResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch lottery results for %s: %w", date, err)
	}

	return resp.WinningNumbers, nil
}
