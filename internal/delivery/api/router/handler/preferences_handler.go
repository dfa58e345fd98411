package handler

import (
	"net/http"

	"wearsync/internal/delivery/api/response"
	"wearsync/internal/domain/entity"
	"wearsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferencesHandlerParams holds dependencies for PreferencesHandler, injected by Fx.
type PreferencesHandlerParams struct {
	fx.In

	PreferencesUC usecase.PreferencesUsecase
}

// PreferencesHandler handles per-device sync preferences
type PreferencesHandler struct {
	preferencesUC usecase.PreferencesUsecase
}

// NewPreferencesHandler is the constructor for PreferencesHandler
func NewPreferencesHandler(params PreferencesHandlerParams) *PreferencesHandler {
	return &PreferencesHandler{preferencesUC: params.PreferencesUC}
}

// UpdatePreferencesRequest is a partial update; omitted fields keep their value
type UpdatePreferencesRequest struct {
	AutoSyncEnabled      *bool     `json:"auto_sync_enabled"`
	SyncFrequencyMinutes *int      `json:"sync_frequency_minutes"`
	DataTypesEnabled     *[]string `json:"data_types_enabled" validate:"omitempty,dive,datatype"`
	SyncOnlyWifi         *bool     `json:"sync_only_wifi"`
	NotifyOnSync         *bool     `json:"notify_on_sync"`
	NotifyOnError        *bool     `json:"notify_on_error"`
	BackfillDays         *int      `json:"backfill_days"`
}

func (r *UpdatePreferencesRequest) toUpdate() entity.SyncPreferencesUpdate {
	update := entity.SyncPreferencesUpdate{
		AutoSyncEnabled:      r.AutoSyncEnabled,
		SyncFrequencyMinutes: r.SyncFrequencyMinutes,
		SyncOnlyWifi:         r.SyncOnlyWifi,
		NotifyOnSync:         r.NotifyOnSync,
		NotifyOnError:        r.NotifyOnError,
		BackfillDays:         r.BackfillDays,
	}
	if r.DataTypesEnabled != nil {
		dataTypes := make([]entity.DataType, len(*r.DataTypesEnabled))
		for i, dt := range *r.DataTypesEnabled {
			dataTypes[i] = entity.DataType(dt)
		}
		update.DataTypesEnabled = &dataTypes
	}

	return update
}

// GetPreferences returns the stored preferences, or null when none exist
func (h *PreferencesHandler) GetPreferences(c echo.Context) error {
	userID, deviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	prefs, err := h.preferencesUC.GetPreferences(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// UpdatePreferences merges the given fields into the device preferences
func (h *PreferencesHandler) UpdatePreferences(c echo.Context) error {
	userID, deviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prefs, err := h.preferencesUC.UpdatePreferences(c.Request().Context(), userID, deviceID, req.toUpdate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}
