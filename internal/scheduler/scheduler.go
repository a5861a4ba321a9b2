package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/alert"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/oracle"
	"github.com/feral-file/invoice-lottery/internal/relayer"
)

// Config holds the cron specs of the scheduled jobs
type Config struct {
	// LotterySchedule triggers processing of the previous day's lottery results
	LotterySchedule string
	// Timezone is the location both schedules and lottery days are evaluated in
	Timezone string
	// BalanceCheckSchedule triggers the relayer balance check
	BalanceCheckSchedule string
}

// Scheduler runs the periodic lottery and monitoring jobs
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	// Start registers the jobs and blocks until the context is canceled or Stop is called
	Start(ctx context.Context) error
	// Stop stops the scheduler and waits for running jobs to complete
	Stop(ctx context.Context) error
	// Name returns the scheduler's name for logging and identification
	Name() string
}

type scheduler struct {
	config   Config
	location *time.Location
	cron     *cron.Cron
	oracle   oracle.Oracle
	relayer  relayer.Relayer
	alerter  alert.Alerter
	clock    adapter.Clock

	started   atomic.Bool
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// New creates a new scheduler, failing on an unknown timezone or an invalid cron spec
func New(cfg Config, o oracle.Oracle, r relayer.Relayer, alerter alert.Alerter, clock adapter.Clock) (Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}
	for _, spec := range []string{cfg.LotterySchedule, cfg.BalanceCheckSchedule} {
		if _, err := cron.ParseStandard(spec); err != nil {
			return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
		}
	}

	cronLogger := logger.CronLogger()
	s := &scheduler{
		config:   cfg,
		location: location,
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		oracle:    o,
		relayer:   r,
		alerter:   alerter,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}

	return s, nil
}

// Name returns the scheduler's name
func (s *scheduler) Name() string {
	return "lottery-scheduler"
}

// Start registers the jobs and runs them until stopped
func (s *scheduler) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already started")
	}
	s.running.Store(true)
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	if _, err := s.cron.AddFunc(s.config.LotterySchedule, func() { s.RunLottery(ctx) }); err != nil {
		return fmt.Errorf("invalid lottery schedule %q: %w", s.config.LotterySchedule, err)
	}
	if _, err := s.cron.AddFunc(s.config.BalanceCheckSchedule, func() { s.CheckBalance(ctx) }); err != nil {
		return fmt.Errorf("invalid balance check schedule %q: %w", s.config.BalanceCheckSchedule, err)
	}

	logger.InfoCtx(ctx, "Starting scheduler",
		zap.String("lotterySchedule", s.config.LotterySchedule),
		zap.String("balanceCheckSchedule", s.config.BalanceCheckSchedule),
		zap.String("timezone", s.location.String()))

	s.cron.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Scheduler stopping due to context cancellation")
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Scheduler stop requested")
	}

	<-s.cron.Stop().Done()
	return nil
}

// Stop gracefully stops the scheduler with timeout support
func (s *scheduler) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	s.stopOnce.Do(func() { close(s.stopChan) })

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// LotteryDay returns the lottery day processed by a run at now: the previous calendar day in the scheduler's timezone
func (s *scheduler) LotteryDay(now time.Time) time.Time {
	local := now.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day()-1, 0, 0, 0, 0, time.UTC)
}

// RunLottery processes the previous day's lottery results from the government API
func (s *scheduler) RunLottery(ctx context.Context) {
	lotteryDay := s.LotteryDay(s.clock.Now())
	date := lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)

	logger.InfoCtx(ctx, "Running scheduled lottery processing", zap.String("lotteryDate", date))

	summary, err := s.oracle.ProcessFromGovernment(ctx, lotteryDay)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Lottery processing failed"), zap.String("lotteryDate", date))
		message := fmt.Sprintf("lottery processing for %s failed: %s", date, err.Error())
		if alertErr := s.alerter.SendAlert(ctx, alert.TypeLotteryProcessingFailed, message); alertErr != nil {
			logger.ErrorCtx(ctx, alertErr, zap.String("message", "Failed to send lottery alert"))
		}
		return
	}

	if summary.Failed > 0 {
		message := fmt.Sprintf("lottery processing for %s: %d of %d notifications failed", date, summary.Failed, summary.Total)
		if alertErr := s.alerter.SendAlert(ctx, alert.TypeLotteryProcessingFailed, message); alertErr != nil {
			logger.ErrorCtx(ctx, alertErr, zap.String("message", "Failed to send lottery alert"))
		}
	}
}

// CheckBalance reads the relayer balance, the relayer raises the low balance alert itself
func (s *scheduler) CheckBalance(ctx context.Context) {
	balance, err := s.relayer.CheckBalance(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to check relayer balance"))
		return
	}

	logger.DebugCtx(ctx, "Relayer balance checked", zap.String("balance", balance.String()))
}
