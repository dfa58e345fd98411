package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"wearsync/internal/delivery/api/middleware"
	"wearsync/internal/delivery/api/response"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHistoryLimit = 20

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// SyncHandler handles manual syncs and sync history
type SyncHandler struct {
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// TriggerSyncRequest optionally narrows a sync to some data types
type TriggerSyncRequest struct {
	DataTypes []string `json:"data_types" validate:"omitempty,dive,datatype"`
}

// RequestSyncRequest queues an asynchronous sync of several devices
type RequestSyncRequest struct {
	DeviceIDs []string `json:"device_ids" validate:"required,min=1,max=50,dive,uuid"`
	DataTypes []string `json:"data_types" validate:"omitempty,dive,datatype"`
}

// TriggerSync runs one sync and answers with its history row
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	userID, deviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	var req TriggerSyncRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid sync request")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}
	}

	history, err := h.syncUC.TriggerSync(c.Request().Context(), userID, deviceID, toDataTypes(req.DataTypes), entity.SyncTypeManual)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// RequestSync queues syncs for the worker and answers 202 with the request id
func (h *SyncHandler) RequestSync(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	var req RequestSyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	deviceIDs := make([]uuid.UUID, 0, len(req.DeviceIDs))
	for _, raw := range req.DeviceIDs {
		deviceIDs = append(deviceIDs, uuid.MustParse(raw))
	}

	requestID, err := h.syncUC.RequestSync(c.Request().Context(), userID, deviceIDs, toDataTypes(req.DataTypes))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"request_id": requestID})
}

// GetSyncHistory returns the latest sync attempts of a device
func (h *SyncHandler) GetSyncHistory(c echo.Context) error {
	userID, deviceID, err := ownerAndDevice(c)
	if err != nil {
		return err
	}

	limit, err := queryInt(c, "limit", defaultHistoryLimit)
	if err != nil {
		return err
	}

	history, err := h.syncUC.GetSyncHistory(c.Request().Context(), userID, deviceID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

func toDataTypes(raw []string) []entity.DataType {
	if len(raw) == 0 {
		return nil
	}

	dataTypes := make([]entity.DataType, len(raw))
	for i, dt := range raw {
		dataTypes[i] = entity.DataType(dt)
	}

	return dataTypes
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be a positive integer")
	}

	return value, nil
}
