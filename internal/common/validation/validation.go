package validation

import (
	"fmt"
	"strings"
)

const (
	MaxEmailLength   = 254
	MaxWalletLength  = 128
	MaxMessageLength = 2000
)

// ValidateEmail checks a login email. The address is only an identity
// attribute here, so presence and length are enforced, not RFC shape.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("cannot be empty")
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("cannot exceed %d characters", MaxEmailLength)
	}
	return nil
}

// ValidateWallet checks a wallet address string. The address is an opaque
// identifier; nothing chain-specific is assumed.
func ValidateWallet(wallet string) error {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return fmt.Errorf("cannot be empty")
	}
	if len(wallet) > MaxWalletLength {
		return fmt.Errorf("cannot exceed %d characters", MaxWalletLength)
	}
	return nil
}

// ValidateMessageText checks a support message body.
func ValidateMessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("cannot be empty")
	}
	if len(text) > MaxMessageLength {
		return fmt.Errorf("cannot exceed %d characters", MaxMessageLength)
	}
	return nil
}
