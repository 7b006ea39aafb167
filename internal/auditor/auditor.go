// Package auditor re-verifies the audit chain on a fixed cadence so that
// tampering in the store is noticed without waiting for an on-demand check.
package auditor

import (
	"context"
	"errors"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/clock"
	"github.com/scholarpay/scholarpay-backend/internal/ledger"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the chain being audited.
	Ledger interface {
		Verify(ctx context.Context) (ledger.Report, error)
	}

	// Metrics publishes verification outcomes.
	Metrics interface {
		ObserveVerify(err error, started time.Time)
		SetChainValid(valid bool)
		SetChainBlocks(count uint64)
	}
)

const (
	defaultInterval = time.Minute
	backoffInterval = 10 * time.Second
)

// Service runs the verification loop until its context is canceled.
type Service struct {
	ledger   Ledger
	metrics  Metrics
	logger   *zap.Logger
	interval time.Duration
	sleep    func(context.Context, time.Duration) error
}

// NewService builds a Service. A non-positive interval falls back to the
// default cadence.
func NewService(ledger Ledger, metrics Metrics, interval time.Duration, logger *zap.Logger) (*Service, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("auditor metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Service{
		ledger:   ledger,
		metrics:  metrics,
		logger:   logger.Named("auditor"),
		interval: interval,
		sleep:    clock.SleepWithContext,
	}, nil
}

// Run verifies the chain every interval. Store errors back off and retry;
// a broken chain is reported through the gauge and the log, not by exiting.
func (s *Service) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runOnce(ctx); err != nil {
			s.logger.Warn("verification failed, backing off",
				zap.Error(err),
				zap.Duration("sleep", backoffInterval),
			)
			if sleepErr := s.sleep(ctx, backoffInterval); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if sleepErr := s.sleep(ctx, s.interval); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *Service) runOnce(ctx context.Context) error {
	started := time.Now()
	report, err := s.ledger.Verify(ctx)
	s.metrics.ObserveVerify(err, started)
	if err != nil {
		return err
	}

	s.metrics.SetChainValid(report.Valid)
	s.metrics.SetChainBlocks(report.Blocks)

	if !report.Valid {
		s.logger.Error("audit chain is broken",
			zap.Int64("firstBrokenIndex", report.FirstBrokenIndex),
			zap.Uint64("blocks", report.Blocks),
		)
		return nil
	}

	s.logger.Debug("audit chain verified", zap.Uint64("blocks", report.Blocks))
	return nil
}
