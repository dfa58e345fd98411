package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.SyncGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw, err := NewClient(&config.Config{Sync: &config.SyncConfig{
		GatewayURL:    server.URL + "/",
		GatewayAPIKey: "gateway-key",
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return gw
}

func testRequest() *service.SyncRequest {
	return &service.SyncRequest{
		DeviceID:       "device-1",
		Provider:       entity.ProviderFitbit,
		ProviderUserID: "ABC123",
		AccessToken:    "access",
		DataTypes:      []entity.DataType{entity.DataTypeSteps, entity.DataTypeSleep},
		Since:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Until:          time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestClient_ExecuteSync(t *testing.T) {
	gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/execute-sync", r.URL.Path)
		assert.Equal(t, "gateway-key", r.Header.Get("X-API-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "device-1", body["device_id"])
		assert.Equal(t, "fitbit", body["provider"])
		assert.Equal(t, "ABC123", body["provider_user_id"])
		assert.Equal(t, []any{"steps", "sleep"}, body["data_types"])
		assert.Equal(t, "2024-03-01T00:00:00Z", body["since"])
		assert.Equal(t, "2024-03-08T00:00:00Z", body["until"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"data_type":"steps","payload":{"activities-steps":[{"dateTime":"2024-03-01","value":"8000"}]},"count":1},
			{"data_type":"sleep","error":{"code":"RATE_LIMITED","message":"Too many requests"}}
		]}`))
	})

	result, err := gw.ExecuteSync(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, result.Payloads, 2)

	steps := result.Payloads[0]
	assert.Equal(t, entity.DataTypeSteps, steps.DataType)
	assert.Equal(t, 1, steps.Count)
	assert.JSONEq(t, `{"activities-steps":[{"dateTime":"2024-03-01","value":"8000"}]}`, string(steps.Payload))
	assert.Empty(t, steps.ErrorCode)

	sleep := result.Payloads[1]
	assert.Equal(t, entity.DataTypeSleep, sleep.DataType)
	assert.Equal(t, "RATE_LIMITED", sleep.ErrorCode)
	assert.Equal(t, "Too many requests", sleep.ErrorMessage)
}

func TestClient_ExecuteSync_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    *domainerrors.BaseError
		wantCode    string
		wantMessage string
	}{
		{
			name:        "provider rejected credential",
			status:      http.StatusBadGateway,
			body:        `{"error":{"code":"invalid_token","message":"Access token expired","auth_error":true}}`,
			wantKind:    domainerrors.ErrProviderAuth,
			wantCode:    "invalid_token",
			wantMessage: "Access token expired",
		},
		{
			name:        "gateway timeout",
			status:      http.StatusGatewayTimeout,
			body:        `{"error":{"code":"UPSTREAM_TIMEOUT","message":"provider did not answer"}}`,
			wantKind:    domainerrors.ErrSyncTimeout,
			wantCode:    "UPSTREAM_TIMEOUT",
			wantMessage: "provider did not answer",
		},
		{
			name:        "plain text error",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantKind:    domainerrors.ErrSyncFailed,
			wantCode:    "HTTP_500",
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.ExecuteSync(context.Background(), testRequest())
			require.ErrorIs(t, err, tt.wantKind)

			var failure *domainerrors.SyncFailure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, tt.wantCode, failure.HistoryCode())
			assert.Equal(t, tt.wantMessage, failure.HistoryMessage())
		})
	}
}

func TestClient_ExecuteSync_MalformedResponse(t *testing.T) {
	gw := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	})

	_, err := gw.ExecuteSync(context.Background(), testRequest())
	require.ErrorIs(t, err, domainerrors.ErrSyncFailed)

	var failure *domainerrors.SyncFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "INVALID_RESPONSE", failure.HistoryCode())
}

func TestClient_ExecuteSync_Deadline(t *testing.T) {
	release := make(chan struct{})
	gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := gw.ExecuteSync(ctx, testRequest())
	assert.ErrorIs(t, err, domainerrors.ErrSyncTimeout)
}
