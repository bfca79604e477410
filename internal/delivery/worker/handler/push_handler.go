package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"greenlake/config"
	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/constants"
	"greenlake/internal/errors"
	"greenlake/internal/infra/broker"
	"greenlake/internal/infra/metrics"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push deliveries of dataset records
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	logger         *slog.Logger
	ingest         usecase.DatasetIngestUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Ingest usecase.DatasetIngestUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and never in develop
	verifyPushAuth := params.Config.Worker != nil && params.Config.Worker.VerifyPushAuth &&
		params.Config.Broker != nil && params.Config.Broker.Provider == constants.BrokerProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		ingest:         params.Ingest,
	}
}

// HandlePush handles one pushed record. It answers 503 when a retry may succeed, so
// the subscription redelivers it, and 200 once the record is stored or known to be bad.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg broker.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	start := time.Now()
	defer func() {
		metrics.DatasetProcessingTime.Observe(time.Since(start).Seconds())
	}()

	record, err := broker.DecodeRecord(data)
	if err != nil {
		// Redelivery cannot fix the payload
		metrics.DatasetMessagesFailed.WithLabelValues(datasetLabel(""), "malformed").Inc()
		reqLogger.Error("[Worker] Dropping undecodable record", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	if err := h.ingest.Ingest(ctx, record); err != nil {
		permanent := usecase.IsPermanent(err)
		reqLogger.Error("[Worker] Failed to ingest record",
			slog.String("dataset", string(record.Dataset)),
			slog.String("key", record.Key),
			slog.Any("error", err),
			slog.Bool("retryable", !permanent),
		)
		if !permanent {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		metrics.DatasetMessagesFailed.WithLabelValues(string(record.Dataset), "malformed").Inc()

		return c.NoContent(http.StatusOK)
	}

	metrics.DatasetMessagesProcessed.WithLabelValues(string(record.Dataset)).Inc()
	reqLogger.Info("[Worker] Record ingested",
		slog.String("dataset", string(record.Dataset)),
		slog.String("key", record.Key),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the publisher's request_id attribute, then the request header
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *broker.PushMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
