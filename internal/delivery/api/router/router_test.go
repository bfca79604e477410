package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"greenlake/internal/delivery/api/middleware"
	"greenlake/internal/delivery/api/router/handler"
	"greenlake/internal/delivery/api/validator"
	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/service"
	mockSvc "greenlake/internal/mocks/service"
	mockUsecase "greenlake/internal/mocks/usecase"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type apiFixtures struct {
	echo     *echo.Echo
	userID   uuid.UUID
	userUC   *mockUsecase.MockUserUsecase
	catalog  *mockUsecase.MockCatalogUsecase
	cartUC   *mockUsecase.MockCartUsecase
	orderUC  *mockUsecase.MockOrderUsecase
	rewardUC *mockUsecase.MockRewardUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{UserID: userID}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.MatchedBy(func(s string) bool { return s != testToken })).
		Return(nil, errors.New("token is expired")).Maybe()

	fx := apiFixtures{
		echo:     echo.New(),
		userID:   userID,
		userUC:   mockUsecase.NewMockUserUsecase(t),
		catalog:  mockUsecase.NewMockCatalogUsecase(t),
		cartUC:   mockUsecase.NewMockCartUsecase(t),
		orderUC:  mockUsecase.NewMockOrderUsecase(t),
		rewardUC: mockUsecase.NewMockRewardUsecase(t),
	}

	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, Logger: logger}),
		CatalogHandler: handler.NewCatalogHandler(fx.catalog),
		CartHandler:    handler.NewCartHandler(handler.CartHandlerParams{CartUC: fx.cartUC, Logger: logger}),
		OrderHandler:   handler.NewOrderHandler(fx.orderUC),
		RewardHandler:  handler.NewRewardHandler(handler.RewardHandlerParams{RewardUC: fx.rewardUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx apiFixtures) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRouter_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.userUC.EXPECT().
			Register(mock.Anything, usecase.RegisterInput{Username: "traveller", Email: "t@example.com", Password: "Password123!"}).
			Return(&entity.User{ID: uuid.New(), Username: "traveller", Email: "t@example.com"}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/auth/register",
			`{"username":"traveller","email":"t@example.com","password":"Password123!"}`, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		fx := createTestAPI(t)

		rec := fx.do(http.MethodPost, "/api/v1/auth/register", `{"username":"ab","email":"nope","password":"short"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "username: min=3")
		assert.Contains(t, env.Error.Details, "email: email")
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration rejected"))

		rec := fx.do(http.MethodPost, "/api/v1/auth/register",
			`{"username":"traveller","email":"t@example.com","password":"Password123!"}`, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})
}

func TestRouter_Login(t *testing.T) {
	fx := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Email: "t@example.com"}
	fx.userUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "t@example.com", Password: "pw"}).
		Return(&usecase.LoginOutput{AccessToken: "jwt", User: user}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/auth/login", `{"email":"t@example.com","password":"pw"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, "jwt", body.AccessToken)
	assert.Equal(t, "Bearer", body.TokenType)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	fx := createTestAPI(t)

	for _, path := range []string{"/api/v1/cart", "/api/v1/orders", "/api/v1/wallet/balance", "/api/v1/rewards/redemptions"} {
		t.Run(path, func(t *testing.T) {
			rec := fx.do(http.MethodGet, path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			rec = fx.do(http.MethodGet, path, "", "expired")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, decode(t, rec).Error.Details)
		})
	}
}

func TestRouter_Balance(t *testing.T) {
	fx := createTestAPI(t)
	fx.userUC.EXPECT().Balance(mock.Anything, fx.userID).Return(decimal.RequireFromString("12.5"), nil)

	rec := fx.do(http.MethodGet, "/api/v1/wallet/balance", "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":"12.5"}`, string(decode(t, rec).Data))
}

func TestRouter_Catalog(t *testing.T) {
	fx := createTestAPI(t)
	fx.catalog.EXPECT().ListHotels(mock.Anything, "GreenLake").Return([]*entity.Hotel{{ID: uuid.New(), Name: "Lakeside"}}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/hotels?city=GreenLake", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pricePerNight")
}

func TestRouter_GetHotel_BadID(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/v1/hotels/not-a-uuid", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestRouter_AddCartItem(t *testing.T) {
	t.Run("passes dates and type through", func(t *testing.T) {
		fx := createTestAPI(t)
		hotelID := uuid.New()
		fx.cartUC.EXPECT().
			AddItem(mock.Anything, fx.userID, mock.AnythingOfType("usecase.AddCartItemInput")).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, in usecase.AddCartItemInput) (*entity.CartItem, error) {
				assert.Equal(t, entity.ItemTypeHotel, in.ItemType)
				assert.Equal(t, hotelID, in.ItemID)
				assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), in.StartDate)
				require.NotNil(t, in.EndDate)
				assert.True(t, in.Price.Equal(decimal.RequireFromString("240.00")))

				return &entity.CartItem{ID: uuid.New(), ItemType: in.ItemType, ItemID: in.ItemID}, nil
			})

		body := `{"itemType":"hotel","itemId":"` + hotelID.String() + `","quantity":1,"price":"240.00",` +
			`"startDate":"2025-07-01","endDate":"2025-07-04","additionalInfo":{"guests":3}}`
		rec := fx.do(http.MethodPost, "/api/v1/cart", body, testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unavailable", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.cartUC.EXPECT().
			AddItem(mock.Anything, fx.userID, mock.Anything).
			Return(nil, domainerrors.NewAvailabilityError(domainerrors.AvailabilityVehicleBooked, "vehicle is already booked for the selected dates"))

		body := `{"itemType":"VEHICLE","itemId":"` + uuid.NewString() + `","quantity":1,"price":90,"startDate":"2025-08-01"}`
		rec := fx.do(http.MethodPost, "/api/v1/cart", body, testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VEHICLE_UNAVAILABLE", decode(t, rec).Error.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		fx := createTestAPI(t)

		body := `{"itemType":"HOTEL","itemId":"` + uuid.NewString() + `","quantity":1,"startDate":"July 1st"}`
		rec := fx.do(http.MethodPost, "/api/v1/cart", body, testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_RemoveCartItem(t *testing.T) {
	fx := createTestAPI(t)
	itemID := uuid.New()
	fx.cartUC.EXPECT().RemoveItem(mock.Anything, fx.userID, itemID).Return(&entity.CartItem{ID: itemID}, nil)

	rec := fx.do(http.MethodDelete, "/api/v1/cart?itemId="+itemID.String(), "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Checkout(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.cartUC.EXPECT().Checkout(mock.Anything, fx.userID, usecase.CheckoutInput{}).Return(&entity.Order{ID: uuid.New()}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/cart/checkout", "", testToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.cartUC.EXPECT().Checkout(mock.Anything, fx.userID, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrCartEmpty, "nothing to check out"))

		rec := fx.do(http.MethodPost, "/api/v1/cart/checkout", `{"paymentMethod":"card","discount":"2.5"}`, testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "CART_EMPTY", decode(t, rec).Error.Code)
	})
}

func TestRouter_CancelOrder(t *testing.T) {
	fx := createTestAPI(t)
	orderID := uuid.New()
	fx.orderUC.EXPECT().
		CancelOrder(mock.Anything, fx.userID, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusCancelled}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", "", testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CANCELLED"`)
}

func TestRouter_CreateOrder_InternalErrorHidesCause(t *testing.T) {
	fx := createTestAPI(t)
	fx.orderUC.EXPECT().CreateOrder(mock.Anything, fx.userID, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	rec := fx.do(http.MethodPost, "/api/v1/orders", `{"totalAmount":"10","orderType":"SERVICE"}`, testToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestRouter_Rewards(t *testing.T) {
	t.Run("redeem discount", func(t *testing.T) {
		fx := createTestAPI(t)
		discountID := uuid.New()
		fx.rewardUC.EXPECT().
			RedeemDiscount(mock.Anything, fx.userID, discountID).
			Return(&usecase.RedemptionResult{Success: true, QRCode: "abc", TokensPaid: 50}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/rewards/redeem-discount", `{"discountId":"`+discountID.String()+`"}`, testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"qrCode":"abc","tokensPaid":50}`, string(decode(t, rec).Data))
	})

	t.Run("insufficient tokens", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.rewardUC.EXPECT().
			PurchaseAmenity(mock.Anything, fx.userID, mock.Anything, 2).
			Return(nil, domainerrors.WrapDomainErrorWithDetails(domainerrors.ErrInsufficientTokens, nil, "balance 10 is below cost 30"))

		rec := fx.do(http.MethodPost, "/api/v1/rewards/purchase-amenity", `{"amenityId":"`+uuid.NewString()+`","quantity":2}`, testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INSUFFICIENT_TOKENS", env.Error.Code)
		assert.Equal(t, "balance 10 is below cost 30", env.Error.Details)
	})

	t.Run("qr code image", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.rewardUC.EXPECT().RedemptionQRCode(mock.Anything, fx.userID, "abc").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		rec := fx.do(http.MethodGet, "/api/v1/rewards/redemptions/abc/qr", "", testToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("use twice", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.rewardUC.EXPECT().
			UseRedemption(mock.Anything, "abc").
			Return(nil, errors.Wrap(domainerrors.ErrRedemptionAlreadyUsed, "failed to use redemption"))

		rec := fx.do(http.MethodPost, "/api/v1/rewards/redemptions/abc/use", "", testToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "REDEMPTION_ALREADY_USED", decode(t, rec).Error.Code)
	})
}
