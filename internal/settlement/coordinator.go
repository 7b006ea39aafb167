// Package settlement drives one application's funding through payment
// collection and payout while keeping the transaction record, the
// application aggregates and the audit ledger consistent.
package settlement

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
	"github.com/scholarpay/scholarpay-backend/pkg/money"
	"go.uber.org/zap"
)

const defaultCurrency = "INR"

// Coordinator orchestrates settlement attempts. Transitions only move
// forward; a failed attempt is terminal and a retry is a new transaction.
type Coordinator struct {
	applications ApplicationStore
	scholarships ScholarshipStore
	transactions TransactionStore
	gateway      PaymentGateway
	ledger       Ledger
	notifier     Notifier
	metrics      Metrics
	logger       *zap.Logger

	gatewaySecret []byte
	now           func() time.Time
	random        io.Reader
}

// Deps bundles the coordinator's collaborators.
type Deps struct {
	Applications ApplicationStore
	Scholarships ScholarshipStore
	Transactions TransactionStore
	Gateway      PaymentGateway
	Ledger       Ledger
	Notifier     Notifier
	Metrics      Metrics
}

// NewCoordinator builds a Coordinator. The gateway webhook secret is
// injected here so signature checks are deterministic under test.
func NewCoordinator(deps Deps, gatewaySecret string, logger *zap.Logger) (*Coordinator, error) {
	switch {
	case deps.Applications == nil:
		return nil, errors.New("application store is required")
	case deps.Scholarships == nil:
		return nil, errors.New("scholarship store is required")
	case deps.Transactions == nil:
		return nil, errors.New("transaction store is required")
	case deps.Gateway == nil:
		return nil, errors.New("payment gateway is required")
	case deps.Ledger == nil:
		return nil, errors.New("ledger is required")
	case deps.Metrics == nil:
		return nil, errors.New("settlement metrics is required")
	case gatewaySecret == "":
		return nil, errors.New("gateway secret is required")
	}

	return &Coordinator{
		applications:  deps.Applications,
		scholarships:  deps.Scholarships,
		transactions:  deps.Transactions,
		gateway:       deps.Gateway,
		ledger:        deps.Ledger,
		notifier:      deps.Notifier,
		metrics:       deps.Metrics,
		logger:        logger.Named("settlement"),
		gatewaySecret: []byte(gatewaySecret),
		now:           time.Now,
		random:        rand.Reader,
	}, nil
}

// loadApplication resolves an application or classifies its absence.
func (c *Coordinator) loadApplication(ctx context.Context, id string) (*model.Application, error) {
	app, err := c.applications.ApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load application %s: %w", id, err)
	}
	if app == nil {
		return nil, fmt.Errorf("application %s: %w", id, ErrNotFound)
	}
	return app, nil
}

func (c *Coordinator) loadScholarship(ctx context.Context, id string) (*model.Scholarship, error) {
	scholarship, err := c.scholarships.ScholarshipByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load scholarship %s: %w", id, err)
	}
	if scholarship == nil {
		return nil, fmt.Errorf("scholarship %s: %w", id, ErrNotFound)
	}
	return scholarship, nil
}

// settlementAmount selects the attempt amount in paise: the running raised
// total when one exists, the scholarship amount otherwise.
func settlementAmount(app *model.Application, scholarship *model.Scholarship) (int64, error) {
	rupees := scholarship.Amount
	if app.FundRaised > 0 {
		rupees = app.FundRaised
	}
	paise, err := money.Paise(rupees)
	if err != nil {
		return 0, fmt.Errorf("settlement amount: %v: %w", err, ErrValidation)
	}
	if paise <= 0 {
		return 0, fmt.Errorf("settlement amount is zero: %w", ErrValidation)
	}
	return paise, nil
}

// newTransactionID mints a row id for a settlement attempt.
func (c *Coordinator) newTransactionID() string {
	buf := make([]byte, 12)
	if _, err := io.ReadFull(c.random, buf); err != nil {
		// Fall back to a time-based id; row ids only need uniqueness.
		return fmt.Sprintf("txn_%d", c.now().UnixNano())
	}
	return "txn_" + hex.EncodeToString(buf)
}

// recordFailedAttempt writes an auditable failed transaction. Failures here
// are logged but never mask the error being reported.
func (c *Coordinator) recordFailedAttempt(ctx context.Context, tx model.Transaction, reason string) {
	now := c.now().UTC()
	tx.ID = c.newTransactionID()
	tx.Status = model.TransactionFailed
	tx.FailureReason = reason
	tx.InitiatedAt = now
	tx.UpdatedAt = now

	if err := c.transactions.InsertTransaction(ctx, tx); err != nil {
		c.logger.Error("record failed transaction",
			zap.String("applicationId", tx.ApplicationID),
			zap.Error(err),
		)
	}
}
