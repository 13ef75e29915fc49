package models

import "time"

// Payment statuses. A submission starts pending and only the admin decision
// moves it.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Payment is one submitted proof-of-payment. ID is supplied by the client
// and in practice is the submitting user's uid, so two submissions by the
// same user share an id and status updates hit the first match.
type Payment struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	Type      string    `json:"type"`
	Proof     string    `json:"proof"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatusResponse is what the status endpoint returns to the frontend.
type StatusResponse struct {
	Approved bool `json:"approved"`
}
