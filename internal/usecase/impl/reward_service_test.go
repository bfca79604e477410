package impl

import (
	"context"
	"testing"
	"time"

	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	mockRepo "greenlake/internal/mocks/repository"
	mockSvc "greenlake/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var rewardNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type rewardServiceFixtures struct {
	service        *rewardService
	userRepo       *mockRepo.MockUserRepository
	offerRepo      *mockRepo.MockOfferRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	qrService      *mockSvc.MockQRCodeService
	ledger         *mockSvc.MockTokenLedger
	custody        *mockSvc.MockWalletCustody
	signer         *mockSvc.MockSigner
}

func createTestRewardService(t *testing.T) rewardServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	ledger := mockSvc.NewMockTokenLedger(t)
	custody := mockSvc.NewMockWalletCustody(t)

	srv, ok := NewRewardService(RewardServiceParams{
		UserRepo:       userRepo,
		OfferRepo:      offerRepo,
		RedemptionRepo: redemptionRepo,
		QRService:      qrService,
		Ledger:         ledger,
		Custody:        custody,
		Logger:         newDiscardLogger(),
	}).(*rewardService)
	require.True(t, ok)
	srv.now = func() time.Time { return rewardNow }

	return rewardServiceFixtures{
		service:        srv,
		userRepo:       userRepo,
		offerRepo:      offerRepo,
		redemptionRepo: redemptionRepo,
		qrService:      qrService,
		ledger:         ledger,
		custody:        custody,
		signer:         mockSvc.NewMockSigner(t),
	}
}

// expectPayer wires a wallet user whose signer reports address
func (fx rewardServiceFixtures) expectPayer(ctx context.Context, address string) *entity.User {
	user := newWalletUser(address)
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.custody.EXPECT().SignerFor(user).Return(fx.signer, nil)

	return user
}

func openDiscount(tokenCost int64) *entity.Discount {
	maxUses := 10

	return &entity.Discount{
		ID:         uuid.New(),
		Code:       "SUMMER",
		TokenCost:  tokenCost,
		ValidFrom:  rewardNow.AddDate(0, -1, 0),
		ValidUntil: rewardNow.AddDate(0, 1, 0),
		MaxUses:    &maxUses,
		UsedCount:  3,
		IsActive:   true,
	}
}

func TestRewardService_RedeemDiscount_Success(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	discount := openDiscount(50)

	fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)
	fx.offerRepo.EXPECT().ReserveDiscountUse(ctx, discount.ID).Return(true, nil)
	fx.signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(50), nil)
	fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(50)).Return(newReceipt("0xburn", 50), nil)
	fx.redemptionRepo.EXPECT().
		CreateDiscountRedemption(ctx, mock.AnythingOfType("*entity.DiscountRedemption")).
		Run(func(_ context.Context, r *entity.DiscountRedemption) {
			assert.Equal(t, "0xburn", r.BurnTxHash)
			assert.Equal(t, entity.RedemptionStatusActive, r.Status)
			assert.NotEmpty(t, r.QRCode)
		}).
		Return(nil)

	result, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(50), result.TokensPaid)
	assert.NotEmpty(t, result.QRCode)
}

func TestRewardService_RedeemDiscount_LastUseIssuesHexCode(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	maxUses := 1
	discount := &entity.Discount{
		ID:         uuid.New(),
		Code:       "ONCE",
		TokenCost:  50,
		ValidFrom:  rewardNow.AddDate(0, 0, -1),
		ValidUntil: rewardNow.AddDate(0, 0, 1),
		MaxUses:    &maxUses,
		IsActive:   true,
	}

	fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)
	fx.offerRepo.EXPECT().ReserveDiscountUse(ctx, discount.ID).Return(true, nil)
	fx.signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(100), nil)
	fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(50)).Return(newReceipt("0xburn", 50), nil)
	fx.redemptionRepo.EXPECT().
		CreateDiscountRedemption(ctx, mock.AnythingOfType("*entity.DiscountRedemption")).
		Return(nil)

	result, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(50), result.TokensPaid)
	assert.Regexp(t, `^[0-9a-f]{64}$`, result.QRCode)
}

func TestRewardService_RedeemDiscount_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *entity.Discount)
		wantErr error
	}{
		{name: "inactive", mutate: func(d *entity.Discount) { d.IsActive = false }, wantErr: domainerrors.ErrOfferInactive},
		{name: "not started", mutate: func(d *entity.Discount) { d.ValidFrom = rewardNow.Add(time.Hour) }, wantErr: domainerrors.ErrOfferNotStarted},
		{name: "expired", mutate: func(d *entity.Discount) { d.ValidUntil = rewardNow.Add(-time.Hour) }, wantErr: domainerrors.ErrOfferExpired},
		{name: "used up", mutate: func(d *entity.Discount) { d.UsedCount = *d.MaxUses }, wantErr: domainerrors.ErrOfferUsageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRewardService(t)

			ctx := context.Background()
			user := fx.expectPayer(ctx, "0xabc")
			discount := openDiscount(50)
			tt.mutate(discount)
			fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)

			result, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRewardService_RedeemDiscount_LostReservationRace(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	discount := openDiscount(50)

	fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)
	fx.offerRepo.EXPECT().ReserveDiscountUse(ctx, discount.ID).Return(false, nil)

	_, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOfferUsageLimit)
}

func TestRewardService_RedeemDiscount_InsufficientTokensReleasesUse(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	discount := openDiscount(50)

	fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)
	fx.offerRepo.EXPECT().ReserveDiscountUse(ctx, discount.ID).Return(true, nil)
	fx.signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(49), nil)
	fx.offerRepo.EXPECT().ReleaseDiscountUse(mock.Anything, discount.ID).Return(nil)

	_, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientTokens)
	fx.ledger.AssertNotCalled(t, "Burn", mock.Anything, mock.Anything, mock.Anything)
}

func TestRewardService_RedeemDiscount_BurnFailureStoresNothing(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	discount := openDiscount(50)

	fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)
	fx.offerRepo.EXPECT().ReserveDiscountUse(ctx, discount.ID).Return(true, nil)
	fx.signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(80), nil)
	fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(50)).Return(nil, errors.New("execution reverted"))
	fx.offerRepo.EXPECT().ReleaseDiscountUse(mock.Anything, discount.ID).Return(nil)

	result, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBurnFailed)
	fx.redemptionRepo.AssertNotCalled(t, "CreateDiscountRedemption", mock.Anything, mock.Anything)
	fx.ledger.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything, mock.Anything)
}

func TestRewardService_RedeemDiscount_PersistFailureRefunds(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	discount := openDiscount(50)

	fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)
	fx.offerRepo.EXPECT().ReserveDiscountUse(ctx, discount.ID).Return(true, nil)
	fx.signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(80), nil)
	fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(50)).Return(newReceipt("0xburn", 50), nil)
	fx.redemptionRepo.EXPECT().
		CreateDiscountRedemption(ctx, mock.AnythingOfType("*entity.DiscountRedemption")).
		Return(errors.New("connection reset"))
	fx.ledger.EXPECT().Mint(mock.Anything, "0xabc", int64(50)).Return(newReceipt("0xrefund", 50), nil)
	fx.offerRepo.EXPECT().ReleaseDiscountUse(mock.Anything, discount.ID).Return(nil)

	_, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestRewardService_RedeemDiscount_RedrawsCollidingCode(t *testing.T) {
	fx := createTestRewardService(t)

	codes := []string{"dup", "fresh"}
	fx.service.newCode = func() (string, error) {
		code := codes[0]
		codes = codes[1:]

		return code, nil
	}

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	discount := openDiscount(5)

	fx.offerRepo.EXPECT().FindDiscountByID(ctx, discount.ID).Return(discount, nil)
	fx.offerRepo.EXPECT().ReserveDiscountUse(ctx, discount.ID).Return(true, nil)
	fx.signer.EXPECT().Address().Return("0xabc")
	fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(5), nil)
	fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(5)).Return(newReceipt("0xburn", 5), nil)
	fx.redemptionRepo.EXPECT().
		CreateDiscountRedemption(ctx, mock.AnythingOfType("*entity.DiscountRedemption")).
		RunAndReturn(func(_ context.Context, r *entity.DiscountRedemption) error {
			if r.QRCode == "dup" {
				return repository.ErrDuplicateQRCode
			}

			return nil
		}).
		Times(2)

	result, err := fx.service.RedeemDiscount(ctx, user.ID, discount.ID)

	require.NoError(t, err)
	assert.Equal(t, "fresh", result.QRCode)
}

func TestRewardService_PurchaseAmenity(t *testing.T) {
	maxQuantity := 4
	amenity := &entity.Amenity{ID: uuid.New(), Code: "BIKE", TokenCost: 15, IsActive: true, MaxQuantity: &maxQuantity}

	t.Run("defaults quantity to one", func(t *testing.T) {
		fx := createTestRewardService(t)

		ctx := context.Background()
		user := fx.expectPayer(ctx, "0xabc")
		fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenity.ID).Return(amenity, nil)
		fx.signer.EXPECT().Address().Return("0xabc")
		fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(15), nil)
		fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(15)).Return(newReceipt("0xburn", 15), nil)
		fx.redemptionRepo.EXPECT().
			CreateAmenityPurchase(ctx, mock.AnythingOfType("*entity.AmenityPurchase")).
			Return(nil)

		result, err := fx.service.PurchaseAmenity(ctx, user.ID, amenity.ID, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(15), result.TokensPaid)
	})

	t.Run("multiplies cost by quantity", func(t *testing.T) {
		fx := createTestRewardService(t)

		ctx := context.Background()
		user := fx.expectPayer(ctx, "0xabc")
		fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenity.ID).Return(amenity, nil)
		fx.signer.EXPECT().Address().Return("0xabc")
		fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(100), nil)
		fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(45)).Return(newReceipt("0xburn", 45), nil)
		fx.redemptionRepo.EXPECT().
			CreateAmenityPurchase(ctx, mock.AnythingOfType("*entity.AmenityPurchase")).
			Run(func(_ context.Context, p *entity.AmenityPurchase) {
				assert.Equal(t, 3, p.Quantity)
			}).
			Return(nil)

		result, err := fx.service.PurchaseAmenity(ctx, user.ID, amenity.ID, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(45), result.TokensPaid)
	})

	t.Run("above max quantity", func(t *testing.T) {
		fx := createTestRewardService(t)

		ctx := context.Background()
		user := fx.expectPayer(ctx, "0xabc")
		fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenity.ID).Return(amenity, nil)

		_, err := fx.service.PurchaseAmenity(ctx, user.ID, amenity.ID, 5)

		assert.ErrorIs(t, err, domainerrors.ErrQuantityExceeded)
	})

	t.Run("burn failure", func(t *testing.T) {
		fx := createTestRewardService(t)

		ctx := context.Background()
		user := fx.expectPayer(ctx, "0xabc")
		fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenity.ID).Return(amenity, nil)
		fx.signer.EXPECT().Address().Return("0xabc")
		fx.ledger.EXPECT().Balance(ctx, "0xabc").Return(decimal.NewFromInt(100), nil)
		fx.ledger.EXPECT().Burn(ctx, fx.signer, int64(30)).Return(nil, errors.New("execution reverted"))

		result, err := fx.service.PurchaseAmenity(ctx, user.ID, amenity.ID, 2)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrBurnFailed)
		fx.redemptionRepo.AssertNotCalled(t, "CreateAmenityPurchase", mock.Anything, mock.Anything)
	})

	t.Run("negative quantity", func(t *testing.T) {
		fx := createTestRewardService(t)

		ctx := context.Background()
		user := fx.expectPayer(ctx, "0xabc")
		fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenity.ID).Return(amenity, nil)

		_, err := fx.service.PurchaseAmenity(ctx, user.ID, amenity.ID, -2)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestRewardService_PurchaseAmenity_CostOverflow(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	amenity := &entity.Amenity{ID: uuid.New(), Code: "SPA", TokenCost: 20, IsActive: true}
	fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenity.ID).Return(amenity, nil)

	result, err := fx.service.PurchaseAmenity(ctx, user.ID, amenity.ID, 461168601842738791)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.ledger.AssertNotCalled(t, "Balance", mock.Anything, mock.Anything)
	fx.ledger.AssertNotCalled(t, "Burn", mock.Anything, mock.Anything, mock.Anything)
}

func TestRewardService_PurchaseAmenity_ZeroCostNeverCharges(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	amenity := &entity.Amenity{ID: uuid.New(), Code: "TOWEL", TokenCost: 0, IsActive: true}
	fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenity.ID).Return(amenity, nil)

	_, err := fx.service.PurchaseAmenity(ctx, user.ID, amenity.ID, 1)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.ledger.AssertNotCalled(t, "Burn", mock.Anything, mock.Anything, mock.Anything)
	fx.redemptionRepo.AssertNotCalled(t, "CreateAmenityPurchase", mock.Anything, mock.Anything)
}

func TestRewardService_PurchaseAmenity_UnknownAmenity(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	user := fx.expectPayer(ctx, "0xabc")
	amenityID := uuid.New()
	fx.offerRepo.EXPECT().FindAmenityByID(ctx, amenityID).Return(nil, repository.ErrAmenityNotFound)

	_, err := fx.service.PurchaseAmenity(ctx, user.ID, amenityID, 1)

	assert.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)
}

func TestRewardService_UseRedemption(t *testing.T) {
	ctx := context.Background()

	t.Run("raw code", func(t *testing.T) {
		fx := createTestRewardService(t)
		redemption := &entity.Redemption{Kind: entity.RedemptionKindAmenity, ID: uuid.New(), QRCode: "abc", Status: entity.RedemptionStatusActive}
		fx.redemptionRepo.EXPECT().FindRedemptionByQRCode(ctx, "abc").Return(redemption, nil)
		fx.redemptionRepo.EXPECT().
			MarkRedemptionUsed(ctx, entity.RedemptionKindAmenity, redemption.ID, rewardNow).
			Return(nil)

		got, err := fx.service.UseRedemption(ctx, " abc ")

		require.NoError(t, err)
		assert.Equal(t, entity.RedemptionStatusUsed, got.Status)
		require.NotNil(t, got.UsedAt)
		assert.Equal(t, rewardNow, *got.UsedAt)
	})

	t.Run("scanned payload", func(t *testing.T) {
		fx := createTestRewardService(t)
		payload := `{"type":"greenlake_redemption","code":"abc"}`
		redemption := &entity.Redemption{Kind: entity.RedemptionKindDiscount, ID: uuid.New(), QRCode: "abc", Status: entity.RedemptionStatusActive}
		fx.qrService.EXPECT().ParseRedemptionQR(payload).Return("abc", nil)
		fx.redemptionRepo.EXPECT().FindRedemptionByQRCode(ctx, "abc").Return(redemption, nil)
		fx.redemptionRepo.EXPECT().
			MarkRedemptionUsed(ctx, entity.RedemptionKindDiscount, redemption.ID, rewardNow).
			Return(nil)

		_, err := fx.service.UseRedemption(ctx, payload)

		require.NoError(t, err)
	})

	t.Run("already used", func(t *testing.T) {
		fx := createTestRewardService(t)
		redemption := &entity.Redemption{Kind: entity.RedemptionKindDiscount, ID: uuid.New(), QRCode: "abc", Status: entity.RedemptionStatusUsed}
		fx.redemptionRepo.EXPECT().FindRedemptionByQRCode(ctx, "abc").Return(redemption, nil)

		_, err := fx.service.UseRedemption(ctx, "abc")

		assert.ErrorIs(t, err, domainerrors.ErrRedemptionAlreadyUsed)
	})

	t.Run("used concurrently", func(t *testing.T) {
		fx := createTestRewardService(t)
		redemption := &entity.Redemption{Kind: entity.RedemptionKindDiscount, ID: uuid.New(), QRCode: "abc", Status: entity.RedemptionStatusActive}
		fx.redemptionRepo.EXPECT().FindRedemptionByQRCode(ctx, "abc").Return(redemption, nil)
		fx.redemptionRepo.EXPECT().
			MarkRedemptionUsed(ctx, entity.RedemptionKindDiscount, redemption.ID, rewardNow).
			Return(repository.ErrRedemptionAlreadyUsed)

		_, err := fx.service.UseRedemption(ctx, "abc")

		assert.ErrorIs(t, err, domainerrors.ErrRedemptionAlreadyUsed)
	})

	t.Run("unknown code", func(t *testing.T) {
		fx := createTestRewardService(t)
		fx.redemptionRepo.EXPECT().FindRedemptionByQRCode(ctx, "nope").Return(nil, repository.ErrRedemptionNotFound)

		_, err := fx.service.UseRedemption(ctx, "nope")

		assert.ErrorIs(t, err, domainerrors.ErrRedemptionNotFound)
	})
}

func TestRewardService_RedemptionQRCode_OtherUser(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	redemption := &entity.Redemption{ID: uuid.New(), UserID: uuid.New(), QRCode: "abc"}
	fx.redemptionRepo.EXPECT().FindRedemptionByQRCode(ctx, "abc").Return(redemption, nil)

	png, err := fx.service.RedemptionQRCode(ctx, uuid.New(), "abc")

	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrRedemptionNotFound)
}

func TestRewardService_RedemptionQRCode_Owner(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	userID := uuid.New()
	redemption := &entity.Redemption{ID: uuid.New(), UserID: userID, QRCode: "abc"}
	fx.redemptionRepo.EXPECT().FindRedemptionByQRCode(ctx, "abc").Return(redemption, nil)
	fx.qrService.EXPECT().GenerateRedemptionQR("abc").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.RedemptionQRCode(ctx, userID, "abc")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
