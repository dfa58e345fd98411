package handler

import (
	"net/http"
	"testing"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	mockUsecase "wearsync/internal/mocks/usecase"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushDeviceTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockPushDeviceUsecase) {
	t.Helper()

	pushUC := mockUsecase.NewMockPushDeviceUsecase(t)
	h := NewPushDeviceHandler(PushDeviceHandlerParams{PushDeviceUC: pushUC})

	e := newTestEcho(userID)
	e.POST("/push-devices", h.RegisterPushDevice)
	e.GET("/push-devices", h.GetPushDevices)
	e.PUT("/push-devices/:id/token", h.UpdateFCMToken)
	e.DELETE("/push-devices/:id", h.DeactivatePushDevice)

	return e, pushUC
}

func TestPushDeviceHandler_RegisterPushDevice(t *testing.T) {
	userID := uuid.New()
	e, pushUC := newPushDeviceTestServer(t, userID)

	info := &usecase.PushDeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-8", Platform: "android"}
	pushUC.EXPECT().RegisterPushDevice(mock.Anything, userID, info).
		Return(&entity.PushDevice{ID: uuid.New(), UserID: userID, FCMToken: "fcm-1", IsActive: true}, nil)

	rec := doRequest(e, http.MethodPost, "/push-devices",
		`{"fcm_token":"fcm-1","device_id":"pixel-8","platform":"android"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"fcm_token":"fcm-1"`)
}

func TestPushDeviceHandler_RegisterPushDeviceRejectsPlatform(t *testing.T) {
	e, _ := newPushDeviceTestServer(t, uuid.New())

	rec := doRequest(e, http.MethodPost, "/push-devices",
		`{"fcm_token":"fcm-1","device_id":"x","platform":"windows"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushDeviceHandler_UpdateAndDeactivate(t *testing.T) {
	userID := uuid.New()
	pushDeviceID := uuid.New()
	e, pushUC := newPushDeviceTestServer(t, userID)

	pushUC.EXPECT().UpdateFCMToken(mock.Anything, userID, pushDeviceID, "fcm-2").Return(nil)
	pushUC.EXPECT().DeactivatePushDevice(mock.Anything, userID, pushDeviceID).Return(domainerrors.ErrNotFound)

	rec := doRequest(e, http.MethodPut, "/push-devices/"+pushDeviceID.String()+"/token", `{"fcm_token":"fcm-2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/push-devices/"+pushDeviceID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPushDeviceHandler_DeactivateForeignDevice(t *testing.T) {
	userID := uuid.New()
	pushDeviceID := uuid.New()
	e, pushUC := newPushDeviceTestServer(t, userID)

	pushUC.EXPECT().
		DeactivatePushDevice(mock.Anything, userID, pushDeviceID).
		Return(domainerrors.ErrForbidden.WrapMessage("unauthorized to access this push device"))

	rec := doRequest(e, http.MethodDelete, "/push-devices/"+pushDeviceID.String(), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}
