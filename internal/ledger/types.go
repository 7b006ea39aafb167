package ledger

import (
	"context"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockStore persists ledger blocks. LatestBlock returns (nil, nil) when
	// the chain is empty.
	BlockStore interface {
		LatestBlock(ctx context.Context) (*model.Block, error)
		BlocksAscending(ctx context.Context) ([]model.Block, error)
		CountBlocks(ctx context.Context) (uint64, error)
		InsertBlock(ctx context.Context, block model.Block) error
	}

	// Metrics records duration and outcome of ledger operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Event is one financial event to be recorded in the ledger. Identifier
// fields are redacted before storage; the remaining fields stay in clear.
type Event struct {
	ApplicationID    string
	TransactionID    string
	UserID           string
	Amount           int64 // paise
	Currency         string
	Status           string
	GatewayPaymentID string
	GatewayOrderID   string
}

// Report is the outcome of a full chain verification.
type Report struct {
	Valid            bool
	FirstBrokenIndex int64 // -1 when the chain is intact
	Blocks           uint64
}

// Stats summarizes the ledger for audit dashboards.
type Stats struct {
	TotalBlocks      uint64
	LatestBlockIndex int64 // -1 when the chain is empty
	LatestBlockHash  string
	Valid            bool
	LastValidated    time.Time
}
