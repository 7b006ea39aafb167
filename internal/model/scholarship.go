package model

import "time"

// Scholarship is the funding source an application draws from. CreatedBy is
// the owning donor; the coordinator resolves the payer identity from it and
// never from request input.
type Scholarship struct {
	ID                  string
	Name                string
	Provider            string
	Amount              float64 // rupees
	CreatedBy           string
	ApplicationDeadline time.Time
	IsActive            bool
}
