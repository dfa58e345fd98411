package handler

import (
	"net/http"

	"wearsync/internal/delivery/api/middleware"
	"wearsync/internal/delivery/api/response"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushDeviceHandlerParams holds dependencies for PushDeviceHandler, injected by Fx.
type PushDeviceHandlerParams struct {
	fx.In

	PushDeviceUC usecase.PushDeviceUsecase
}

// PushDeviceHandler handles phones registered for sync notifications
type PushDeviceHandler struct {
	pushDeviceUC usecase.PushDeviceUsecase
}

// NewPushDeviceHandler is the constructor for PushDeviceHandler
func NewPushDeviceHandler(params PushDeviceHandlerParams) *PushDeviceHandler {
	return &PushDeviceHandler{pushDeviceUC: params.PushDeviceUC}
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterPushDevice registers a phone or refreshes its token
func (h *PushDeviceHandler) RegisterPushDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	var req usecase.PushDeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.pushDeviceUC.RegisterPushDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetPushDevices lists the active phones of the user
func (h *PushDeviceHandler) GetPushDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	devices, err := h.pushDeviceUC.GetPushDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken replaces the FCM token of a phone
func (h *PushDeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, pushDeviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.pushDeviceUC.UpdateFCMToken(c.Request().Context(), userID, pushDeviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated successfully"})
}

// DeactivatePushDevice stops notifications to a phone
func (h *PushDeviceHandler) DeactivatePushDevice(c echo.Context) error {
	userID, pushDeviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	if err := h.pushDeviceUC.DeactivatePushDevice(c.Request().Context(), userID, pushDeviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
