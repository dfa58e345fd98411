package handler

import (
	"net/http"
	"testing"

	"wearsync/internal/domain/entity"
	mockUsecase "wearsync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferencesHandler_UpdatePreferences(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	prefsUC := mockUsecase.NewMockPreferencesUsecase(t)
	h := NewPreferencesHandler(PreferencesHandlerParams{PreferencesUC: prefsUC})
	e := newTestEcho(userID)
	e.GET("/devices/:id/preferences", h.GetPreferences)
	e.PATCH("/devices/:id/preferences", h.UpdatePreferences)

	prefsUC.EXPECT().
		UpdatePreferences(mock.Anything, userID, deviceID, mock.MatchedBy(func(update entity.SyncPreferencesUpdate) bool {
			return update.SyncFrequencyMinutes != nil && *update.SyncFrequencyMinutes == 30 &&
				update.AutoSyncEnabled == nil &&
				update.DataTypesEnabled != nil &&
				assert.ObjectsAreEqual([]entity.DataType{entity.DataTypeSleep}, *update.DataTypesEnabled)
		})).
		Return(&entity.SyncPreferences{DeviceID: deviceID, AutoSyncEnabled: true, SyncFrequencyMinutes: 30}, nil)

	rec := doRequest(e, http.MethodPatch, "/devices/"+deviceID.String()+"/preferences",
		`{"sync_frequency_minutes":30,"data_types_enabled":["sleep"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"sync_frequency_minutes":30`)
}

func TestPreferencesHandler_UpdatePreferencesRejectsUnknownType(t *testing.T) {
	prefsUC := mockUsecase.NewMockPreferencesUsecase(t)
	h := NewPreferencesHandler(PreferencesHandlerParams{PreferencesUC: prefsUC})
	e := newTestEcho(uuid.New())
	e.PATCH("/devices/:id/preferences", h.UpdatePreferences)

	rec := doRequest(e, http.MethodPatch, "/devices/"+uuid.NewString()+"/preferences",
		`{"data_types_enabled":["sleep","vibes"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreferencesHandler_GetPreferencesNone(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	prefsUC := mockUsecase.NewMockPreferencesUsecase(t)
	h := NewPreferencesHandler(PreferencesHandlerParams{PreferencesUC: prefsUC})
	e := newTestEcho(userID)
	e.GET("/devices/:id/preferences", h.GetPreferences)

	prefsUC.EXPECT().GetPreferences(mock.Anything, userID, deviceID).Return(nil, nil)

	rec := doRequest(e, http.MethodGet, "/devices/"+deviceID.String()+"/preferences", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(decodeEnvelope(t, rec).Data))
}
