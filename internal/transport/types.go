package transport

import (
	"context"

	"github.com/scholarpay/scholarpay-backend/internal/gateway"
	"github.com/scholarpay/scholarpay-backend/internal/ledger"
	"github.com/scholarpay/scholarpay-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Settlement drives payment collection and payouts.
	Settlement interface {
		CreateOrder(ctx context.Context, applicationID string) (*model.Transaction, *gateway.Order, error)
		VerifyPayment(ctx context.Context, applicationID, orderID, paymentID, signature string) (*model.Transaction, error)
		InitiatePayout(ctx context.Context, applicationID string) (*model.Transaction, error)
	}

	// Ledger exposes chain verification and summary reads.
	Ledger interface {
		Verify(ctx context.Context) (ledger.Report, error)
		Stats(ctx context.Context) (ledger.Stats, error)
	}

	// SettlementReader serves audit reads of an application's attempts.
	SettlementReader interface {
		TransactionsByApplication(ctx context.Context, applicationID string) ([]model.Transaction, error)
		PayoutHistory(ctx context.Context, applicationID string) ([]model.PayoutAttempt, error)
	}
)
