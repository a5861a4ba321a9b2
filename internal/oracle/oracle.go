package oracle

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/lottery"
	"github.com/feral-file/invoice-lottery/internal/messaging"
	"github.com/feral-file/invoice-lottery/internal/providers/govinvoice"
	"github.com/feral-file/invoice-lottery/internal/relayer"
	"github.com/feral-file/invoice-lottery/internal/store"
)

// Oracle notifies the pool contract of the winning invoices of a lottery day
//
//go:generate mockgen -source=oracle.go -destination=../mocks/oracle.go -package=mocks -mock_names=Oracle=MockOracle
type Oracle interface {
	// ProcessManual matches the undrawn invoices of a lottery day against operator supplied winning numbers
	ProcessManual(ctx context.Context, lotteryDay time.Time, winning domain.WinningNumbers) (*domain.NotifySummary, error)
	// ProcessFromGovernment fetches the pre-matched winning numbers of a lottery day from the government API
	ProcessFromGovernment(ctx context.Context, lotteryDay time.Time) (*domain.NotifySummary, error)
}

type oracle struct {
	selector  *lottery.Selector
	gov       govinvoice.Client
	relayer   relayer.Relayer
	store     store.Store
	publisher messaging.Publisher
}

// New creates a new lottery oracle
func New(selector *lottery.Selector, gov govinvoice.Client, r relayer.Relayer, st store.Store, publisher messaging.Publisher) Oracle {
	return &oracle{
		selector:  selector,
		gov:       gov,
		relayer:   r,
		store:     st,
		publisher: publisher,
	}
}

func (o *oracle) ProcessManual(ctx context.Context, lotteryDay time.Time, winning domain.WinningNumbers) (*domain.NotifySummary, error) {
	logger.InfoCtx(ctx, "Processing lottery results",
		zap.String("lotteryDate", lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)),
		zap.String("source", "manual"))

	winners, err := o.selector.SelectWinners(ctx, lotteryDay, winning)
	if err != nil {
		return nil, err
	}

	return o.notify(ctx, lotteryDay, winners), nil
}

func (o *oracle) ProcessFromGovernment(ctx context.Context, lotteryDay time.Time) (*domain.NotifySummary, error) {
	logger.InfoCtx(ctx, "Processing lottery results",
		zap.String("lotteryDate", lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)),
		zap.String("source", "government"))

	numbers, err := o.gov.FetchWinningNumbers(ctx, lotteryDay)
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		logger.InfoCtx(ctx, "No winning numbers published", zap.String("lotteryDate", lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)))
		return o.notify(ctx, lotteryDay, nil), nil
	}

	winners, err := o.selector.SelectExternalWinners(ctx, lotteryDay, numbers)
	if err != nil {
		return nil, err
	}

	return o.notify(ctx, lotteryDay, winners), nil
}

// notify reports every winner on-chain one by one. A failed invoice never stops the others.
func (o *oracle) notify(ctx context.Context, lotteryDay time.Time, winners []lottery.Winner) *domain.NotifySummary {
	summary := &domain.NotifySummary{
		LotteryDate: lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT),
		Results:     []domain.NotifyItemResult{},
	}

	for _, w := range winners {
		summary.Add(o.notifyWinner(ctx, w))
	}

	logger.InfoCtx(ctx, "Lottery results processed",
		zap.String("lotteryDate", summary.LotteryDate),
		zap.Int("total", summary.Total),
		zap.Int("success", summary.Success),
		zap.Int("failed", summary.Failed))

	if err := o.publisher.PublishNotifySummary(ctx, summary); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to publish notify summary"), zap.String("lotteryDate", summary.LotteryDate))
	}

	return summary
}

func (o *oracle) notifyWinner(ctx context.Context, w lottery.Winner) domain.NotifyItemResult {
	item := domain.NotifyItemResult{
		InvoiceNumber:  w.Invoice.InvoiceNumber,
		PrizeTier:      w.Match.Tier,
		PrizeAmountTWD: w.Match.AmountTWD,
	}

	if w.Invoice.TokenTypeID == nil || *w.Invoice.TokenTypeID == "" {
		item.Error = domain.ErrTokenTypeNotMinted.Error()
		logger.WarnCtx(ctx, "Winning invoice has no token type", zap.String("invoiceNumber", item.InvoiceNumber))
		return item
	}
	item.TokenTypeID = *w.Invoice.TokenTypeID

	tokenTypeID, ok := new(big.Int).SetString(item.TokenTypeID, 10)
	if !ok {
		item.Error = fmt.Errorf("%w: invalid token type id %q", domain.ErrValidation, item.TokenTypeID).Error()
		return item
	}

	result, err := o.relayer.NotifyLotteryResult(ctx, tokenTypeID, domain.ToWei(w.Match.AmountTWD))
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to notify lottery result"),
			zap.String("invoiceNumber", item.InvoiceNumber),
			zap.String("tokenTypeId", item.TokenTypeID))
		item.Error = err.Error()
		return item
	}
	item.Success = true
	item.TxHash = result.TxHash

	// the notification is confirmed on-chain, a bookkeeping failure is logged only
	marked, err := o.store.MarkInvoiceDrawn(ctx, w.Invoice.ID, w.Match.AmountTWD)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to mark invoice drawn"),
			zap.String("invoiceNumber", item.InvoiceNumber),
			zap.String("txHash", result.TxHash))
	} else if !marked {
		logger.WarnCtx(ctx, "Invoice was already drawn", zap.String("invoiceNumber", item.InvoiceNumber))
	}

	return item
}
