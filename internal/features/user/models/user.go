package models

import "time"

// User is a registered wallet owner. The (email, wallet) pair is the natural
// key; uid is the server-assigned identifier the rest of the system uses.
type User struct {
	UID        string    `json:"uid"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Wallet     string    `json:"wallet"`
	WalletType string    `json:"walletType"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LoginResponse is what the login endpoint returns to the frontend.
type LoginResponse struct {
	UID      string `json:"uid"`
	Approved bool   `json:"approved"`
}
