package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	mockService "wearsync/internal/mocks/service"
	mockUsecase "wearsync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockDeviceUsecase) {
	e, deviceUC, _ := newDeviceTestServerWithQR(t, userID)

	return e, deviceUC
}

func newDeviceTestServerWithQR(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockDeviceUsecase, *mockService.MockQRCodeService) {
	t.Helper()

	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	qrcodeSvc := mockService.NewMockQRCodeService(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, QRCodeSvc: qrcodeSvc, Logger: newDiscardLogger()})

	e := newTestEcho(userID)
	e.POST("/devices/connect", h.ConnectDevice)
	e.POST("/devices/callback", h.HandleOAuthCallback)
	e.GET("/devices", h.ListDevices)
	e.GET("/devices/:id", h.GetDevice)
	e.POST("/devices/:id/disconnect", h.DisconnectDevice)
	e.DELETE("/devices/:id", h.DeleteDevice)

	return e, deviceUC, qrcodeSvc
}

func TestDeviceHandler_ConnectDevice(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestServer(t, userID)

	expiresAt := time.Date(2026, 1, 1, 10, 10, 0, 0, time.UTC)
	deviceUC.EXPECT().
		ConnectDevice(mock.Anything, userID, entity.ProviderGoogleFit, "https://app.example.com/callback").
		Return(&entity.AuthFlow{
			State:        "state-token",
			ExpiresAt:    expiresAt,
			AuthorizeURL: "https://accounts.google.com/o/oauth2/auth?state=state-token",
		}, nil)

	rec := doRequest(e, http.MethodPost, "/devices/connect",
		`{"provider":"google_fit","redirect_uri":"https://app.example.com/callback"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var flow entity.AuthFlow
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &flow))
	assert.Equal(t, "state-token", flow.State)
	assert.True(t, expiresAt.Equal(flow.ExpiresAt))
	assert.Contains(t, flow.AuthorizeURL, "state=state-token")
}

func TestDeviceHandler_ConnectDeviceWithQR(t *testing.T) {
	userID := uuid.New()
	e, deviceUC, qrcodeSvc := newDeviceTestServerWithQR(t, userID)

	authorizeURL := "https://www.fitbit.com/oauth2/authorize?state=s1"
	deviceUC.EXPECT().
		ConnectDevice(mock.Anything, userID, entity.ProviderFitbit, "https://app.example.com/callback").
		Return(&entity.AuthFlow{State: "s1", AuthorizeURL: authorizeURL}, nil)
	qrcodeSvc.EXPECT().GenerateLinkQR(authorizeURL).Return([]byte("png"), nil)

	rec := doRequest(e, http.MethodPost, "/devices/connect",
		`{"provider":"fitbit","redirect_uri":"https://app.example.com/callback","qr":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
	assert.Equal(t, "s1", resp["state"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png")), resp["authorize_qr"])
}

func TestDeviceHandler_ConnectDeviceRejectsInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown provider", body: `{"provider":"myspace","redirect_uri":"https://app.example.com/cb"}`},
		{name: "missing redirect", body: `{"provider":"fitbit"}`},
		{name: "redirect not a url", body: `{"provider":"fitbit","redirect_uri":"callback"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newDeviceTestServer(t, uuid.New())

			rec := doRequest(e, http.MethodPost, "/devices/connect", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestDeviceHandler_RequiresUser(t *testing.T) {
	e, _ := newDeviceTestServer(t, uuid.Nil)

	rec := doRequest(e, http.MethodGet, "/devices", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_AUTHENTICATED", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_HandleOAuthCallbackInvalidState(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestServer(t, userID)

	deviceUC.EXPECT().
		HandleOAuthCallback(mock.Anything, userID, "code-1", "stale").
		Return(nil, domainerrors.ErrExpiredOrInvalidState)

	rec := doRequest(e, http.MethodPost, "/devices/callback", `{"code":"code-1","state":"stale"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EXPIRED_OR_INVALID_STATE", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_HandleOAuthCallback(t *testing.T) {
	userID := uuid.New()
	e, deviceUC := newDeviceTestServer(t, userID)

	device := &entity.ConnectedDevice{
		ID:       uuid.New(),
		UserID:   userID,
		Provider: entity.ProviderFitbit,
		Status:   entity.DeviceStatusConnected,
	}
	deviceUC.EXPECT().HandleOAuthCallback(mock.Anything, userID, "code-1", "state-1").Return(device, nil)

	rec := doRequest(e, http.MethodPost, "/devices/callback", `{"code":"code-1","state":"state-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), device.ID.String())
}

func TestDeviceHandler_GetDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		e, _ := newDeviceTestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/devices/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "invalid device id", env.Error.Details)
	})

	t.Run("not found", func(t *testing.T) {
		e, deviceUC := newDeviceTestServer(t, userID)
		deviceUC.EXPECT().GetDevice(mock.Anything, userID, deviceID).Return(nil, domainerrors.ErrDeviceNotFound)

		rec := doRequest(e, http.MethodGet, "/devices/"+deviceID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DEVICE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestDeviceHandler_DisconnectAndDelete(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()
	e, deviceUC := newDeviceTestServer(t, userID)

	deviceUC.EXPECT().DisconnectDevice(mock.Anything, userID, deviceID).Return(&entity.ConnectedDevice{
		ID:     deviceID,
		UserID: userID,
		Status: entity.DeviceStatusDisconnected,
	}, nil)
	deviceUC.EXPECT().DeleteDevice(mock.Anything, userID, deviceID).Return(nil)

	rec := doRequest(e, http.MethodPost, "/devices/"+deviceID.String()+"/disconnect", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), string(entity.DeviceStatusDisconnected))

	rec = doRequest(e, http.MethodDelete, "/devices/"+deviceID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
