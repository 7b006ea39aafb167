package settlement

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// paymentSignature computes the gateway's payment-confirmation signature:
// HMAC-SHA256 over "orderID|paymentID" keyed with the shared secret.
func paymentSignature(secret []byte, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// signatureValid compares a presented signature in constant time.
func signatureValid(secret []byte, orderID, paymentID, signature string) bool {
	expected := paymentSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
