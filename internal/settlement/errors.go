package settlement

import "errors"

// Error taxonomy for settlement operations. Callers classify failures with
// errors.Is; transports map them onto status codes.
var (
	// ErrValidation marks missing or malformed input, rejected before any
	// external call.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced application, scholarship or transaction
	// that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPreconditionFailed marks an application not ready for the requested
	// step, such as a missing or malformed payout beneficiary.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrSignatureMismatch marks a payment confirmation whose signature does
	// not verify. Treated as a security event; no state changes.
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	// ErrGatewayFailure marks an upstream payment-provider failure, recorded
	// as a failed transaction before being surfaced.
	ErrGatewayFailure = errors.New("payment gateway failure")
)
