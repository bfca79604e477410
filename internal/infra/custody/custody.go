// Package custody holds server-side wallet keys sealed at rest.
package custody

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"strings"

	"greenlake/config"
	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealedPrefix = "sb1:"
	nonceSize    = 24
	keySize      = 32

	// Argon2id parameters for deriving the sealing key from the passphrase
	argonIterations  = 3
	argonMemory      = 64 * 1024 // 64 MB
	argonParallelism = 2
)

var errMalformedSeal = errors.New("malformed sealed key")

// CustodialWallet seals wallet private keys with NaCl secretbox under a key
// derived from the configured passphrase.
type CustodialWallet struct {
	key [keySize]byte
}

// NewCustodialWallet derives the sealing key from configuration.
func NewCustodialWallet(cfg *config.Config) (service.WalletCustody, error) {
	if cfg.Custody == nil || cfg.Custody.Passphrase == "" || cfg.Custody.Salt == "" {
		return nil, errors.New("custody passphrase and salt are required")
	}

	derived := argon2.IDKey(
		[]byte(cfg.Custody.Passphrase),
		[]byte(cfg.Custody.Salt),
		argonIterations,
		argonMemory,
		argonParallelism,
		keySize,
	)

	wallet := &CustodialWallet{}
	copy(wallet.key[:], derived)

	return wallet, nil
}

// Seal encrypts a private key into the text stored on the user row.
func (w *CustodialWallet) Seal(privateKey string) (string, error) {
	if privateKey == "" {
		return "", errors.New("private key is empty")
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := secretbox.Seal(nonce[:], []byte(privateKey), &nonce, &w.key)

	return sealedPrefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

func (w *CustodialWallet) open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return "", errMalformedSeal
	}

	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", errMalformedSeal
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &w.key)
	if !ok {
		return "", errors.New("sealed key failed authentication")
	}

	return string(plain), nil
}

// SignerFor returns a signer that unseals the user's key only when asked for the credential.
func (w *CustodialWallet) SignerFor(user *entity.User) (service.Signer, error) {
	if user == nil || !user.HasWallet() {
		return nil, errors.New("user has no wallet")
	}
	if user.EncryptedPrivateKey == nil || *user.EncryptedPrivateKey == "" {
		return nil, service.ErrNoSigningKey
	}

	return &custodialSigner{
		address: *user.WalletAddress,
		sealed:  *user.EncryptedPrivateKey,
		wallet:  w,
	}, nil
}

type custodialSigner struct {
	address string
	sealed  string
	wallet  *CustodialWallet
}

func (s *custodialSigner) Address() string {
	return s.address
}

func (s *custodialSigner) Credential(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	key, err := s.wallet.open(s.sealed)
	if err != nil {
		return "", errors.Wrap(err, "failed to unseal wallet key")
	}

	return key, nil
}
