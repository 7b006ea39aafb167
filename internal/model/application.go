package model

import "time"

// ApplicationStatus describes the lifecycle of a scholarship application.
type ApplicationStatus string

var (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationFunded    ApplicationStatus = "funded"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// DonorDecision describes the donor's review outcome for an application.
type DonorDecision string

var (
	DonorDecisionPending  DonorDecision = "pending"
	DonorDecisionApproved DonorDecision = "approved"
	DonorDecisionRejected DonorDecision = "rejected"
	DonorDecisionFunded   DonorDecision = "funded"
)

// PayoutDetails is the beneficiary banking snapshot used for transfers.
// Account numbers are stored masked; the gateway-side beneficiary id is the
// only payout routing handle.
type PayoutDetails struct {
	BeneficiaryID       string
	AccountHolderName   string
	MaskedAccountNumber string
	IFSC                string
	BankName            string
	Email               string
	Phone               string
}

// Application is the scholarship application consumed and mutated by the
// settlement coordinator. FundRaised is kept in rupees with two-decimal
// precision; only the coordinator writes it.
type Application struct {
	ID            string
	ScholarshipID string
	VerifierID    string
	StudentID     string
	StudentName   string
	StudentEmail  string
	VerifierEmail string

	Status        ApplicationStatus
	DonorDecision DonorDecision
	DonorActionAt *time.Time
	FundRaised    float64 // rupees

	PayoutDetails PayoutDetails
	UpdatedAt     time.Time
}

// PayoutAttempt is one entry of an application's append-only payout history.
type PayoutAttempt struct {
	ApplicationID string
	TransferID    string
	Amount        int64 // paise
	Currency      string
	Status        TransactionStatus
	InitiatedAt   time.Time
	CompletedAt   *time.Time
	FailureReason string
}
