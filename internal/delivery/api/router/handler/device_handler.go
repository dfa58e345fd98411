package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"wearsync/internal/delivery/api/middleware"
	"wearsync/internal/delivery/api/response"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC  usecase.DeviceUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// DeviceHandler handles linking and unlinking wearable providers
type DeviceHandler struct {
	deviceUC  usecase.DeviceUsecase
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC:  params.DeviceUC,
		qrcodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// ConnectDeviceRequest starts linking a provider account
type ConnectDeviceRequest struct {
	Provider    string `json:"provider" validate:"required,provider"`
	RedirectURI string `json:"redirect_uri" validate:"required,url"`
	QR          bool   `json:"qr"` // Also return the consent URL as a QR code
}

// ConnectDeviceResponse is the started flow, with an optional base64 PNG of the consent URL
type ConnectDeviceResponse struct {
	*entity.AuthFlow
	AuthorizeQR string `json:"authorize_qr,omitempty"`
}

// OAuthCallbackRequest completes linking with the provider's authorization code
type OAuthCallbackRequest struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state" validate:"required"`
}

// ConnectDevice returns the provider consent URL for a new link
func (h *DeviceHandler) ConnectDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	var req ConnectDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	flow, err := h.deviceUC.ConnectDevice(c.Request().Context(), userID, entity.ProviderID(req.Provider), req.RedirectURI)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := ConnectDeviceResponse{AuthFlow: flow}
	if req.QR {
		png, err := h.qrcodeSvc.GenerateLinkQR(flow.AuthorizeURL)
		if err != nil {
			// Non-fatal, the URL is still returned.
			h.logger.Warn("Failed to render consent QR code", slog.Any("error", err))
		} else {
			resp.AuthorizeQR = base64.StdEncoding.EncodeToString(png)
		}
	}

	return response.Success(c, http.StatusOK, resp)
}

// HandleOAuthCallback exchanges the authorization code and stores the link
func (h *DeviceHandler) HandleOAuthCallback(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	var req OAuthCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.deviceUC.HandleOAuthCallback(c.Request().Context(), userID, req.Code, req.State)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// ListDevices returns every device of the user
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// GetDevice returns one device
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	userID, deviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DisconnectDevice revokes the link and keeps the device listed
func (h *DeviceHandler) DisconnectDevice(c echo.Context) error {
	userID, deviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	device, err := h.deviceUC.DisconnectDevice(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeleteDevice removes the device and everything synced from it
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	userID, deviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ownerAndDevice reads the authenticated user and the :id path parameter.
// The returned error is rendered by the HTTP error handler.
func ownerAndDevice(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrNotAuthenticated
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid device id")
	}

	return userID, deviceID, nil
}
