package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	executeSyncPath = "/execute-sync"
	apiKeyHeader    = "X-API-Key"

	// Responses larger than this are rejected instead of buffered.
	maxResponseBytes = 32 << 20
)

// client implements SyncGateway over the execute-sync HTTP endpoint
type client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type executeSyncRequest struct {
	DeviceID       string   `json:"device_id"`
	Provider       string   `json:"provider"`
	ProviderUserID string   `json:"provider_user_id,omitempty"`
	AccessToken    string   `json:"access_token"`
	DataTypes      []string `json:"data_types"`
	Since          string   `json:"since"`
	Until          string   `json:"until"`
}

type gatewayError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	AuthError bool   `json:"auth_error,omitempty"`
}

type executeSyncResponse struct {
	Results []struct {
		DataType string          `json:"data_type"`
		Payload  json.RawMessage `json:"payload"`
		Count    int             `json:"count"`
		Error    *gatewayError   `json:"error,omitempty"`
	} `json:"results"`
}

type errorResponse struct {
	Error gatewayError `json:"error"`
}

// NewClient creates a SyncGateway for the configured gateway URL.
// The per-call deadline comes from the caller's context.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.SyncGateway, error) {
	if cfg.Sync == nil || cfg.Sync.GatewayURL == "" {
		return nil, errors.New("sync gateway url is required")
	}

	return &client{
		endpoint: strings.TrimRight(cfg.Sync.GatewayURL, "/") + executeSyncPath,
		apiKey:   cfg.Sync.GatewayAPIKey,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}, nil
}

// ExecuteSync posts one sync request and splits the answer per data type
func (c *client) ExecuteSync(ctx context.Context, req *service.SyncRequest) (*service.SyncResult, error) {
	dataTypes := make([]string, len(req.DataTypes))
	for i, dt := range req.DataTypes {
		dataTypes[i] = string(dt)
	}

	body, err := json.Marshal(executeSyncRequest{
		DeviceID:       req.DeviceID,
		Provider:       string(req.Provider),
		ProviderUserID: req.ProviderUserID,
		AccessToken:    req.AccessToken,
		DataTypes:      dataTypes,
		Since:          req.Since.UTC().Format(time.RFC3339),
		Until:          req.Until.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domainerrors.NewSyncFailure(domainerrors.ErrSyncTimeout, "", "", err)
		}

		return nil, domainerrors.NewSyncFailure(domainerrors.ErrSyncFailed, "", "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.NewSyncFailure(domainerrors.ErrSyncFailed, "", "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.failure(req, resp.StatusCode, raw)
	}

	var decoded executeSyncResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, domainerrors.NewSyncFailure(domainerrors.ErrSyncFailed, "INVALID_RESPONSE", "gateway returned malformed JSON", err)
	}

	result := &service.SyncResult{Payloads: make([]service.DataTypePayload, 0, len(decoded.Results))}
	for _, r := range decoded.Results {
		payload := service.DataTypePayload{
			DataType: entity.DataType(r.DataType),
			Payload:  []byte(r.Payload),
			Count:    r.Count,
		}
		if r.Error != nil {
			payload.ErrorCode = r.Error.Code
			payload.ErrorMessage = r.Error.Message
		}
		result.Payloads = append(result.Payloads, payload)
	}

	return result, nil
}

func (c *client) failure(req *service.SyncRequest, status int, raw []byte) error {
	var decoded errorResponse
	if err := json.Unmarshal(raw, &decoded); err != nil || decoded.Error.Code == "" {
		decoded.Error.Code = "HTTP_" + strconv.Itoa(status)
		decoded.Error.Message = strings.TrimSpace(string(raw))
	}

	kind := domainerrors.ErrSyncFailed
	switch {
	case decoded.Error.AuthError:
		kind = domainerrors.ErrProviderAuth
	case status == http.StatusGatewayTimeout || status == http.StatusRequestTimeout:
		kind = domainerrors.ErrSyncTimeout
	}

	c.logger.Warn("Sync gateway rejected request",
		slog.String("device_id", req.DeviceID),
		slog.String("provider", string(req.Provider)),
		slog.Int("status", status),
		slog.String("code", decoded.Error.Code),
	)

	return domainerrors.NewSyncFailure(kind, decoded.Error.Code, decoded.Error.Message, errors.Errorf("gateway returned status %d", status))
}
