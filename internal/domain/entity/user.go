// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered traveller. The token balance is never stored here;
// the token ledger is the only authority for it.
type User struct {
	ID                  uuid.UUID `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	WalletAddress       *string   `json:"walletAddress,omitempty"` // Set once by the wallet-creation step.
	EncryptedPrivateKey *string   `json:"-"`                       // Sealed custodial key, never leaves the custody layer in clear.
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// HasWallet reports whether the wallet-creation step has completed.
func (u *User) HasWallet() bool {
	return u.WalletAddress != nil && *u.WalletAddress != ""
}
