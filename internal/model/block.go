// Package model defines domain models for the settlement core.
package model

import "time"

// GenesisPrevHash is the prevHash value carried by the genesis block.
const GenesisPrevHash = "0"

// Block is one immutable record in the hash-chained audit ledger.
// Blocks are append-only: written once, never mutated or deleted.
type Block struct {
	Index     uint64
	Timestamp time.Time
	PrevHash  string
	DataHash  string
	Hash      string
	Nonce     uint32
	Data      BlockData
}

// BlockData is the redacted payload wrapped by a block. Identifier fields
// hold keyed hashes of their original values; amount, currency, status and
// gateway references stay in clear.
type BlockData struct {
	HashedApplicationID string
	HashedTransactionID string
	HashedUserID        string
	Amount              int64 // paise
	Currency            string
	Status              string
	GatewayPaymentID    string
	GatewayOrderID      string
}
