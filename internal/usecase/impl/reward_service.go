package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"
	"greenlake/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// qrCodeAttempts bounds regeneration after a code collision
const qrCodeAttempts = 3

// rewardService implements the RewardUsecase interface.
type rewardService struct {
	userRepo       repository.UserRepository
	offerRepo      repository.OfferRepository
	redemptionRepo repository.RedemptionRepository
	qrService      service.QRCodeService
	settlement     *tokenSettlement
	logger         *slog.Logger
	now            func() time.Time
	newCode        func() (string, error)
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	OfferRepo      repository.OfferRepository
	RedemptionRepo repository.RedemptionRepository
	QRService      service.QRCodeService
	Ledger         service.TokenLedger
	Custody        service.WalletCustody
	Logger         *slog.Logger
}

// NewRewardService creates the reward redemption service.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		userRepo:       params.UserRepo,
		offerRepo:      params.OfferRepo,
		redemptionRepo: params.RedemptionRepo,
		qrService:      params.QRService,
		settlement: &tokenSettlement{
			ledger:  params.Ledger,
			custody: params.Custody,
		},
		logger:  params.Logger,
		now:     time.Now,
		newCode: util.GenerateSecureToken,
	}
}

func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RedeemDiscount reserves one use of the discount, burns its cost and issues a code.
func (srv *rewardService) RedeemDiscount(ctx context.Context, userID, discountID uuid.UUID) (*usecase.RedemptionResult, error) {
	p, err := srv.settlement.payerFor(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	discount, err := srv.offerRepo.FindDiscountByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDiscountNotFound, "failed to redeem discount")
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}

	if err := validateDiscount(discount, srv.now()); err != nil {
		return nil, err
	}

	reserved, err := srv.offerRepo.ReserveDiscountUse(ctx, discountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reserve discount use")
	}
	if !reserved {
		return nil, errors.Wrap(domainerrors.ErrOfferUsageLimit, "no use left after reservation")
	}

	var redemption *entity.DiscountRedemption
	_, err = srv.settlement.charge(ctx, srv.log(ctx), p, discount.TokenCost, func(receipt *service.Receipt) error {
		redemption = &entity.DiscountRedemption{
			UserID:     userID,
			DiscountID: discountID,
			TokensPaid: discount.TokenCost,
			BurnTxHash: receipt.TransactionHash,
			Status:     entity.RedemptionStatusActive,
		}

		return srv.storeWithFreshCode(&redemption.QRCode, func() error {
			redemption.ID = uuid.New()

			return srv.redemptionRepo.CreateDiscountRedemption(ctx, redemption)
		})
	})
	if err != nil {
		srv.releaseDiscountUse(ctx, discountID)
		srv.log(ctx).Warn("Discount redemption failed",
			slog.String("user_id", userID.String()),
			slog.String("discount_id", discountID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Discount redeemed",
		slog.String("user_id", userID.String()),
		slog.String("discount_id", discountID.String()),
		slog.Int64("tokens_paid", redemption.TokensPaid),
	)

	return &usecase.RedemptionResult{
		Success:    true,
		QRCode:     redemption.QRCode,
		TokensPaid: redemption.TokensPaid,
	}, nil
}

// PurchaseAmenity burns tokenCost * quantity and issues a code.
func (srv *rewardService) PurchaseAmenity(ctx context.Context, userID, amenityID uuid.UUID, quantity int) (*usecase.RedemptionResult, error) {
	if quantity == 0 {
		quantity = 1
	}

	p, err := srv.settlement.payerFor(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	amenity, err := srv.offerRepo.FindAmenityByID(ctx, amenityID)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAmenityNotFound, "failed to purchase amenity")
		}

		return nil, errors.Wrap(err, "failed to find amenity")
	}

	if err := validateAmenity(amenity, quantity); err != nil {
		return nil, err
	}

	cost, ok := amenity.Cost(quantity)
	if !ok {
		return nil, domainerrors.NewValidationError("quantity is too large")
	}

	var purchase *entity.AmenityPurchase
	_, err = srv.settlement.charge(ctx, srv.log(ctx), p, cost, func(receipt *service.Receipt) error {
		purchase = &entity.AmenityPurchase{
			UserID:     userID,
			AmenityID:  amenityID,
			Quantity:   quantity,
			TokensPaid: cost,
			BurnTxHash: receipt.TransactionHash,
			Status:     entity.RedemptionStatusActive,
		}

		return srv.storeWithFreshCode(&purchase.QRCode, func() error {
			purchase.ID = uuid.New()

			return srv.redemptionRepo.CreateAmenityPurchase(ctx, purchase)
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Amenity purchase failed",
			slog.String("user_id", userID.String()),
			slog.String("amenity_id", amenityID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Amenity purchased",
		slog.String("user_id", userID.String()),
		slog.String("amenity_id", amenityID.String()),
		slog.Int("quantity", quantity),
		slog.Int64("tokens_paid", cost),
	)

	return &usecase.RedemptionResult{
		Success:    true,
		QRCode:     purchase.QRCode,
		TokensPaid: cost,
	}, nil
}

// ListRedemptions returns both kinds of redemption of the user.
func (srv *rewardService) ListRedemptions(ctx context.Context, userID uuid.UUID) ([]*entity.Redemption, error) {
	redemptions, err := srv.redemptionRepo.ListRedemptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	return redemptions, nil
}

// RedemptionQRCode renders one of the user's own codes.
func (srv *rewardService) RedemptionQRCode(ctx context.Context, userID uuid.UUID, qrCode string) ([]byte, error) {
	redemption, err := srv.findRedemption(ctx, qrCode)
	if err != nil {
		return nil, err
	}
	if redemption.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrRedemptionNotFound, "code belongs to another user")
	}

	png, err := srv.qrService.GenerateRedemptionQR(redemption.QRCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render redemption QR code")
	}

	return png, nil
}

// UseRedemption checks a code off. The input may be the raw code or the scanned QR payload.
func (srv *rewardService) UseRedemption(ctx context.Context, qrCode string) (*entity.Redemption, error) {
	code := strings.TrimSpace(qrCode)
	if strings.HasPrefix(code, "{") {
		parsed, err := srv.qrService.ParseRedemptionQR(code)
		if err != nil {
			return nil, domainerrors.WrapDomainErrorWithDetails(domainerrors.ErrValidationFailed, err, "unreadable QR payload")
		}
		code = parsed
	}

	redemption, err := srv.findRedemption(ctx, code)
	if err != nil {
		return nil, err
	}
	if redemption.Status == entity.RedemptionStatusUsed {
		return nil, errors.Wrap(domainerrors.ErrRedemptionAlreadyUsed, "failed to use redemption")
	}

	usedAt := srv.now().UTC()
	if err := srv.redemptionRepo.MarkRedemptionUsed(ctx, redemption.Kind, redemption.ID, usedAt); err != nil {
		switch {
		case errors.Is(err, repository.ErrRedemptionAlreadyUsed):
			return nil, errors.Wrap(domainerrors.ErrRedemptionAlreadyUsed, "code was used concurrently")
		case errors.Is(err, repository.ErrRedemptionNotFound):
			return nil, errors.Wrap(domainerrors.ErrRedemptionNotFound, "failed to use redemption")
		default:
			return nil, errors.Wrap(err, "failed to mark redemption used")
		}
	}

	redemption.Status = entity.RedemptionStatusUsed
	redemption.UsedAt = &usedAt

	srv.log(ctx).Info("Redemption used",
		slog.String("kind", string(redemption.Kind)),
		slog.String("redemption_id", redemption.ID.String()),
	)

	return redemption, nil
}

func (srv *rewardService) findRedemption(ctx context.Context, code string) (*entity.Redemption, error) {
	if code == "" {
		return nil, domainerrors.NewValidationError("redemption code is required")
	}

	redemption, err := srv.redemptionRepo.FindRedemptionByQRCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRedemptionNotFound, "failed to find redemption")
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}

	return redemption, nil
}

// storeWithFreshCode fills *code and runs create, drawing a new code on collision
func (srv *rewardService) storeWithFreshCode(code *string, create func() error) error {
	var err error
	for range qrCodeAttempts {
		*code, err = srv.newCode()
		if err != nil {
			return errors.Wrap(err, "failed to generate redemption code")
		}

		err = create()
		if !errors.Is(err, repository.ErrDuplicateQRCode) {
			return err
		}
	}

	return errors.Wrap(err, "could not draw a unique redemption code")
}

func (srv *rewardService) releaseDiscountUse(ctx context.Context, discountID uuid.UUID) {
	if err := srv.offerRepo.ReleaseDiscountUse(context.WithoutCancel(ctx), discountID); err != nil {
		srv.log(ctx).Error("Failed to release discount use",
			slog.String("discount_id", discountID.String()),
			slog.Any("error", err),
		)
	}
}

func validateDiscount(discount *entity.Discount, now time.Time) error {
	if !discount.IsActive {
		return errors.Wrap(domainerrors.ErrOfferInactive, "discount is disabled")
	}
	if now.Before(discount.ValidFrom) {
		return errors.Wrap(domainerrors.ErrOfferNotStarted, "discount window has not opened")
	}
	if now.After(discount.ValidUntil) {
		return errors.Wrap(domainerrors.ErrOfferExpired, "discount window has closed")
	}
	if !discount.HasRemainingUses() {
		return errors.Wrap(domainerrors.ErrOfferUsageLimit, "discount is used up")
	}

	return nil
}

func validateAmenity(amenity *entity.Amenity, quantity int) error {
	if !amenity.IsActive {
		return errors.Wrap(domainerrors.ErrOfferInactive, "amenity is disabled")
	}
	if quantity < 1 {
		return domainerrors.NewValidationError("quantity must be at least 1")
	}
	if amenity.MaxQuantity != nil && quantity > *amenity.MaxQuantity {
		return domainerrors.WrapDomainErrorWithDetails(domainerrors.ErrQuantityExceeded, nil,
			"at most "+strconv.Itoa(*amenity.MaxQuantity)+" per purchase")
	}

	return nil
}
