package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// Signer is the capability to authorise ledger debits for one wallet.
// It is resolved per request so the custody model can change without touching callers.
type Signer interface {
	// Address is the wallet the signer acts for.
	Address() string

	// Credential returns the secret the ledger needs to authorise a debit.
	Credential(ctx context.Context) (string, error)
}

// Receipt is returned by ledger operations that write a transaction.
type Receipt struct {
	TransactionHash string          `json:"transactionHash"`
	Amount          decimal.Decimal `json:"amount"`
	OldBalance      decimal.Decimal `json:"oldBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
}

// Wallet is a freshly created ledger wallet.
type Wallet struct {
	Address    string
	PrivateKey string
}

// TokenLedger is the external token-ledger collaborator. It is the single
// authority for token balances.
type TokenLedger interface {
	Balance(ctx context.Context, address string) (decimal.Decimal, error)

	// Burn irreversibly debits amount from the signer's wallet. A nil error means
	// the ledger confirmed the debit.
	Burn(ctx context.Context, signer Signer, amount int64) (*Receipt, error)

	Mint(ctx context.Context, address string, amount int64) (*Receipt, error)
	Transfer(ctx context.Context, from Signer, to string, amount int64) (*Receipt, error)
	CreateWallet(ctx context.Context, username string) (*Wallet, error)
}
