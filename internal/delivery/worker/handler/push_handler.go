package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/constants"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator validates a Google-signed OIDC token for an audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying sync requests
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	logger         *slog.Logger
	syncUC         usecase.SyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		syncUC:         params.SyncUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.SyncRequestedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse sync request event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing sync request",
		slog.String("user_id", event.UserID),
		slog.String("sync_type", event.SyncType),
		slog.Int("device_count", len(event.DeviceIDs)),
	)

	if err := h.processSyncRequest(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process sync request",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Sync request processed")

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.SyncRequestedEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes[constants.AttributeRequestID]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processSyncRequest runs a batch sync for the devices of the event
func (h *PushHandler) processSyncRequest(ctx context.Context, logger *slog.Logger, event *service.SyncRequestedEvent) error {
	items, err := buildSyncItems(event)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		logger.Info("[Worker] No devices to sync")

		return nil
	}

	results := h.syncUC.SyncBatch(ctx, items)

	succeeded := 0
	var retryErr error
	for _, result := range results {
		if result.Err == nil {
			succeeded++

			continue
		}

		logger.Warn("[Worker] Device sync failed",
			slog.String("device_id", result.DeviceID.String()),
			slog.Any("error", result.Err),
		)
		if retryErr == nil && isInfrastructureError(result.Err) {
			retryErr = newRetryableError(result.Err)
		}
	}

	logger.Info("[Worker] Batch sync completed",
		slog.Int("total", len(results)),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", len(results)-succeeded),
	)

	return retryErr
}

// buildSyncItems turns the event into batch items. A malformed user id drops the whole event
// while malformed device ids are skipped.
func buildSyncItems(event *service.SyncRequestedEvent) ([]usecase.SyncItem, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid user id %q", event.UserID)
	}

	syncType := entity.SyncType(event.SyncType)
	if syncType == "" {
		syncType = entity.SyncTypeAuxiliary
	}

	dataTypes := make([]entity.DataType, 0, len(event.DataTypes))
	for _, dt := range event.DataTypes {
		dataTypes = append(dataTypes, entity.DataType(dt))
	}

	items := make([]usecase.SyncItem, 0, len(event.DeviceIDs))
	seen := make(map[uuid.UUID]struct{}, len(event.DeviceIDs))
	for _, raw := range event.DeviceIDs {
		deviceID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			continue
		}
		if _, dup := seen[deviceID]; dup {
			continue
		}
		seen[deviceID] = struct{}{}

		items = append(items, usecase.SyncItem{
			UserID:    userID,
			DeviceID:  deviceID,
			DataTypes: dataTypes,
			SyncType:  syncType,
		})
	}

	return items, nil
}

// isInfrastructureError reports whether a sync failed for reasons on our side that a
// redelivery may fix. Provider outcomes are already recorded in the sync history.
func isInfrastructureError(err error) bool {
	var syncFailure *domainerrors.SyncFailure
	if errors.As(err, &syncFailure) {
		return false
	}

	var dbErr *domainerrors.DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return true
	}

	if errors.IsAny(err, domainerrors.ErrTransactionFailed, domainerrors.ErrInternalError) {
		return true
	}

	var appErr domainerrors.AppError

	return !errors.As(err, &appErr)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
