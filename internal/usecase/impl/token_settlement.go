package impl

import (
	"context"
	"log/slog"

	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// payer is a user whose wallet can be debited
type payer struct {
	user   *entity.User
	signer service.Signer
}

// tokenSettlement charges tokens against the ledger in two phases: the debit is
// confirmed by the ledger first, then the caller persists its record. A failed
// persist is compensated with a refund mint.
type tokenSettlement struct {
	ledger  service.TokenLedger
	custody service.WalletCustody
}

// payerFor loads the user and resolves the signer for their wallet
func (s *tokenSettlement) payerFor(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*payer, error) {
	user, err := userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to resolve payer")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasWallet() {
		return nil, errors.Wrap(domainerrors.ErrWalletRequired, "user has not created a wallet")
	}

	signer, err := s.custody.SignerFor(user)
	if err != nil {
		if errors.Is(err, service.ErrNoSigningKey) {
			return nil, domainerrors.WrapDomainErrorWithDetails(domainerrors.ErrWalletRequired, err, "wallet cannot sign")
		}

		return nil, errors.Wrap(err, "failed to resolve wallet signer")
	}

	return &payer{user: user, signer: signer}, nil
}

// charge burns cost tokens from the payer, then runs persist. The returned receipt
// belongs to a burn whose record persist stored.
func (s *tokenSettlement) charge(
	ctx context.Context,
	logger *slog.Logger,
	p *payer,
	cost int64,
	persist func(receipt *service.Receipt) error,
) (*service.Receipt, error) {
	if cost <= 0 {
		return nil, domainerrors.NewValidationError("token cost must be positive")
	}

	address := p.signer.Address()

	balance, err := s.ledger.Balance(ctx, address)
	if err != nil {
		return nil, domainerrors.WrapDomainError(domainerrors.ErrLedgerUnavailable, err)
	}
	if balance.LessThan(decimal.NewFromInt(cost)) {
		logger.Info("Insufficient token balance",
			slog.String("wallet", address),
			slog.String("balance", balance.String()),
			slog.Int64("cost", cost),
		)

		return nil, domainerrors.WrapDomainErrorWithDetails(
			domainerrors.ErrInsufficientTokens, nil,
			"balance "+balance.String()+" is below cost "+decimal.NewFromInt(cost).String(),
		)
	}

	receipt, err := s.ledger.Burn(ctx, p.signer, cost)
	if err != nil {
		return nil, domainerrors.WrapDomainError(domainerrors.ErrBurnFailed, err)
	}

	if err := persist(receipt); err != nil {
		s.refund(ctx, logger, address, cost, receipt)

		return nil, domainerrors.WrapDomainError(domainerrors.ErrInternalError, err)
	}

	return receipt, nil
}

// refund mints back a confirmed burn whose record could not be stored
func (s *tokenSettlement) refund(ctx context.Context, logger *slog.Logger, address string, cost int64, burn *service.Receipt) {
	// The request may already be cancelled; the refund must still go out
	ctx = context.WithoutCancel(ctx)

	refund, err := s.ledger.Mint(ctx, address, cost)
	if err != nil {
		logger.Error("Refund after failed persist did not go through, manual reconciliation needed",
			slog.String("wallet", address),
			slog.Int64("amount", cost),
			slog.String("burn_tx", burn.TransactionHash),
			slog.Any("error", err),
		)

		return
	}

	logger.Warn("Refunded tokens after failed persist",
		slog.String("wallet", address),
		slog.Int64("amount", cost),
		slog.String("burn_tx", burn.TransactionHash),
		slog.String("refund_tx", refund.TransactionHash),
	)
}
