package lottery

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/store"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

// Winner is an undrawn invoice with a non-zero prize
type Winner struct {
	Invoice schema.Invoice
	Match   domain.PrizeMatch
}

// Selector finds the winning invoices of a lottery day
type Selector struct {
	store store.Store
}

// NewSelector creates a new winning invoice selector
func NewSelector(st store.Store) *Selector {
	return &Selector{store: st}
}

// SelectWinners matches every undrawn invoice of a lottery day against the winning numbers
// and returns those with a prize. No invoices or no winners is not an error.
func (s *Selector) SelectWinners(ctx context.Context, lotteryDay time.Time, winning domain.WinningNumbers) ([]Winner, error) {
	if err := ValidateWinningNumbers(winning); err != nil {
		return nil, err
	}

	invoices, err := s.store.GetUndrawnInvoices(ctx, lotteryDay)
	if err != nil {
		return nil, fmt.Errorf("failed to get undrawn invoices: %w", err)
	}

	var winners []Winner
	for _, invoice := range invoices {
		match := MatchPrize(invoice.InvoiceNumber, winning)
		if match.AmountTWD > 0 {
			winners = append(winners, Winner{Invoice: invoice, Match: match})
		}
	}

	logger.InfoCtx(ctx, "Winning invoices selected",
		zap.String("lotteryDay", lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)),
		zap.Int("candidates", len(invoices)),
		zap.Int("winners", len(winners)))

	return winners, nil
}

// SelectExternalWinners merges pre-matched winning numbers with the undrawn invoices of a lottery day.
// Numbers compare in canonical form so "AB-12345678" and "ab12345678" name the same invoice.
// A number listed twice keeps its first prize.
func (s *Selector) SelectExternalWinners(ctx context.Context, lotteryDay time.Time, winning []domain.ExternalWinningNumber) ([]Winner, error) {
	prizes := make(map[string]int64, len(winning))
	var numbers []string
	for _, w := range winning {
		if w.Prize <= 0 {
			continue
		}
		canonical := CanonicalInvoiceNumber(w.Number)
		if canonical == "" {
			continue
		}
		if _, ok := prizes[canonical]; ok {
			continue
		}
		prizes[canonical] = w.Prize
		numbers = append(numbers, storedForms(canonical)...)
	}

	if len(numbers) == 0 {
		return nil, nil
	}

	invoices, err := s.store.GetUndrawnInvoicesByNumbers(ctx, lotteryDay, numbers)
	if err != nil {
		return nil, fmt.Errorf("failed to get undrawn invoices: %w", err)
	}

	winners := make([]Winner, 0, len(invoices))
	for _, invoice := range invoices {
		prize, ok := prizes[CanonicalInvoiceNumber(invoice.InvoiceNumber)]
		if !ok {
			continue
		}
		winners = append(winners, Winner{
			Invoice: invoice,
			Match:   domain.PrizeMatch{Tier: domain.PrizeTierExternal, AmountTWD: prize},
		})
	}

	logger.InfoCtx(ctx, "External winning invoices selected",
		zap.String("lotteryDay", lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)),
		zap.Int("numbers", len(prizes)),
		zap.Int("winners", len(winners)))

	return winners, nil
}

// storedForms lists the spellings an invoice number may be stored under, a prefixed number is
// accepted with or without its dash
func storedForms(canonical string) []string {
	if len(canonical) == 10 && canonical[0] >= 'A' && canonical[1] >= 'A' {
		return []string{canonical, canonical[:2] + "-" + canonical[2:]}
	}
	return []string{canonical}
}
