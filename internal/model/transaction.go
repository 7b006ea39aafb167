package model

import "time"

// TransactionStatus describes the current step of one settlement attempt.
type TransactionStatus string

var (
	// TransactionQueued marks a transaction accepted but not yet sent to the gateway.
	TransactionQueued TransactionStatus = "queued"
	// TransactionOrderCreated marks a transaction with a collection order open at the gateway.
	TransactionOrderCreated TransactionStatus = "order_created"
	// TransactionProcessing marks a transaction whose payout has been issued.
	TransactionProcessing TransactionStatus = "processing"
	// TransactionPaid marks a transaction with a verified payment.
	TransactionPaid TransactionStatus = "paid"
	// TransactionFailed marks a transaction that ended in an error. Terminal.
	TransactionFailed TransactionStatus = "failed"
)

// Transaction is the mutable record of one settlement attempt. Rows are
// never deleted; a new attempt creates a new row.
type Transaction struct {
	ID            string
	ApplicationID string
	AdminID       string
	BeneficiaryID string
	Amount        int64 // paise
	Currency      string
	Status        TransactionStatus

	OrderID    string
	PaymentID  string
	TransferID string

	// HashedTransactionID links into the ledger. Unique when present,
	// absent until a payment is verified.
	HashedTransactionID string
	// BlockIndex is a weak back-reference to the ledger block recording
	// this transaction, for audit lookup only.
	BlockIndex *uint64

	FailureReason string
	PayoutDetails *PayoutDetails
	RawResponse   string

	InitiatedAt time.Time
	PaidAt      *time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}
