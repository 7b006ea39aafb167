// Package gateway defines the payment-gateway contract shared by the
// settlement coordinator and the concrete client implementations.
package gateway

// OrderRequest asks the gateway to open a payment-collection order.
// Amount is in paise.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order is a gateway payment-collection order.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
	Raw      string
}

// PayoutRequest asks the gateway to transfer funds to a beneficiary.
// Amount is in paise.
type PayoutRequest struct {
	BeneficiaryID string
	Amount        int64
	Currency      string
	Mode          string
	Purpose       string
	ReferenceID   string
	Narration     string
}

// Payout is a gateway transfer record.
type Payout struct {
	ID          string
	Status      string
	Amount      int64
	Currency    string
	ReferenceID string
	Raw         string
}
