package settlement

import (
	"context"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/gateway"
	"github.com/scholarpay/scholarpay-backend/internal/ledger"
	"github.com/scholarpay/scholarpay-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ApplicationStore reads and updates applications and their payout
	// history. Lookups return (nil, nil) when the row is absent.
	ApplicationStore interface {
		ApplicationByID(ctx context.Context, id string) (*model.Application, error)
		UpsertApplication(ctx context.Context, app model.Application) error
		InsertPayoutAttempt(ctx context.Context, attempt model.PayoutAttempt) error
	}

	// ScholarshipStore resolves the scholarship an application draws from.
	ScholarshipStore interface {
		ScholarshipByID(ctx context.Context, id string) (*model.Scholarship, error)
	}

	// TransactionStore persists settlement transactions. Writes are
	// versioned upserts; TransactionByOrder returns the latest version for
	// the (application, order) pair or (nil, nil).
	TransactionStore interface {
		InsertTransaction(ctx context.Context, tx model.Transaction) error
		TransactionByOrder(ctx context.Context, applicationID, orderID string) (*model.Transaction, error)
	}

	// PaymentGateway is the external order and payout API.
	PaymentGateway interface {
		CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error)
		CreatePayout(ctx context.Context, req gateway.PayoutRequest) (*gateway.Payout, error)
	}

	// Ledger records verified payments in the audit chain.
	Ledger interface {
		Append(ctx context.Context, event ledger.Event) (model.Block, error)
		MintTransactionID(applicationID, gatewayPaymentID string) (string, error)
	}

	// Notifier delivers receipts after successful verification. Calls must
	// not block; delivery is best-effort and never awaited for correctness.
	Notifier interface {
		SendReceipt(receipt Receipt)
	}

	// Metrics records duration and outcome of coordinator operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Receipt is the notification payload sent to the student and verifier
// contacts after a verified payment.
type Receipt struct {
	ApplicationID string
	StudentName   string
	StudentEmail  string
	VerifierEmail string
	AmountRupees  float64
	Currency      string
	OrderID       string
	PaymentID     string
	PaidAt        time.Time
}
