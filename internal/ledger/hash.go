package ledger

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/scholarpay/scholarpay-backend/internal/model"
)

func hmacHex(secret []byte, value string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

func sha256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// dataHash hashes the canonical JSON form of the redacted payload. The
// payload is marshaled as a map so keys are serialized in sorted order and
// the hash does not depend on field insertion order.
func dataHash(data model.BlockData) (string, error) {
	canonical := map[string]any{
		"hashedApplicationId": data.HashedApplicationID,
		"hashedTransactionId": data.HashedTransactionID,
		"hashedUserId":        data.HashedUserID,
		"amount":              data.Amount,
		"currency":            data.Currency,
		"status":              data.Status,
		"gatewayPaymentId":    data.GatewayPaymentID,
		"gatewayOrderId":      data.GatewayOrderID,
	}
	raw, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("marshal block data: %w", err)
	}
	return sha256Hex(string(raw)), nil
}

// blockHash hashes the block header fields. The timestamp enters as unix
// milliseconds so the hash survives the store's millisecond precision.
func blockHash(index uint64, timestamp time.Time, prevHash, dataHash string, nonce uint32) string {
	input := strconv.FormatUint(index, 10) +
		strconv.FormatInt(timestamp.UnixMilli(), 10) +
		prevHash +
		dataHash +
		strconv.FormatUint(uint64(nonce), 10)
	return sha256Hex(input)
}
