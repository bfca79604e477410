package service

import (
	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
)

// ErrNoSigningKey is returned when a user has a wallet but no key this custody model can use.
var ErrNoSigningKey = errors.New("no signing key held for wallet")

// WalletCustody decides how wallet keys are held and hands out signers for them.
type WalletCustody interface {
	// Seal turns a private key into the form stored on the user row.
	Seal(privateKey string) (string, error)

	// SignerFor returns a signer for the user's wallet.
	SignerFor(user *entity.User) (Signer, error)
}
