package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"greenlake/config"
	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/constants"
	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
	"greenlake/internal/infra/broker"
	mockUsecase "greenlake/internal/mocks/usecase"
	"greenlake/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func pushBody(t *testing.T, data []byte, attributes map[string]string) string {
	t.Helper()

	var msg broker.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/greenlake/subscriptions/datasets"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockDatasetIngestUsecase) {
	ingest := mockUsecase.NewMockDatasetIngestUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: discardLogger(),
		Ingest: ingest,
	})

	return h, ingest
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	record, data := encodedRecord(t)

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		ingestErr  error
		expectCall bool
		wantStatus int
	}{
		{
			name:       "stored",
			body:       func(t *testing.T) string { return pushBody(t, data, map[string]string{"request_id": "req-1"}) },
			expectCall: true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "transient failure asks for redelivery",
			body:       func(t *testing.T) string { return pushBody(t, data, nil) },
			ingestErr:  errors.New("db down"),
			expectCall: true,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed record is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, data, nil) },
			ingestErr:  errors.Wrap(usecase.ErrMalformedRecord, "seats: not an integer"),
			expectCall: true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "undecodable payload is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, []byte("{broken"), nil) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad envelope",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ingest := newTestPushHandler(t)
			if tt.expectCall {
				ingest.EXPECT().Ingest(mock.Anything, record).Return(tt.ingestErr).Once()
			}

			rec := servePush(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequestIDReachesIngest(t *testing.T) {
	h, ingest := newTestPushHandler(t)
	record, data := encodedRecord(t)

	ingest.EXPECT().
		Ingest(mock.Anything, record).
		Run(func(ctx context.Context, _ *entity.DatasetRecord) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := servePush(h, pushBody(t, data, map[string]string{"request_id": "req-42"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	_, data := encodedRecord(t)

	newVerifyingHandler := func(t *testing.T, validate tokenValidator) (*PushHandler, *mockUsecase.MockDatasetIngestUsecase) {
		cfg := &config.Config{
			Broker: &config.BrokerConfig{Provider: constants.BrokerProviderGoogle},
			Worker: &config.WorkerConfig{VerifyPushAuth: true},
		}
		cfg.Env.Env = "production"
		ingest := mockUsecase.NewMockDatasetIngestUsecase(t)
		h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: discardLogger(), Ingest: ingest})
		require.True(t, h.verifyPushAuth)
		h.validate = validate

		return h, ingest
	}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, func(context.Context, string, string) (*idtoken.Payload, error) {
			t.Fatal("validator must not be called without a token")

			return nil, nil
		})

		rec := servePush(h, pushBody(t, data, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newVerifyingHandler(t, func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		})

		rec := servePush(h, pushBody(t, data, nil), http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, ingest := newVerifyingHandler(t, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		})
		ingest.EXPECT().Ingest(mock.Anything, mock.AnythingOfType("*entity.DatasetRecord")).Return(nil)

		rec := servePush(h, pushBody(t, data, nil), http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
