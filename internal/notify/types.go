package notify

import (
	"context"

	"github.com/scholarpay/scholarpay-backend/internal/settlement"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Sender delivers one receipt to its recipients.
type Sender interface {
	SendReceipt(ctx context.Context, receipt settlement.Receipt) error
}
