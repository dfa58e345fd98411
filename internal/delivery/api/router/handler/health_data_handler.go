package handler

import (
	"net/http"
	"time"

	"wearsync/internal/delivery/api/middleware"
	"wearsync/internal/delivery/api/response"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultWorkoutLimit = 10

// HealthDataHandlerParams holds dependencies for HealthDataHandler, injected by Fx.
type HealthDataHandlerParams struct {
	fx.In

	HealthDataUC usecase.HealthDataUsecase
}

// HealthDataHandler serves canonical health data
type HealthDataHandler struct {
	healthDataUC usecase.HealthDataUsecase
}

// NewHealthDataHandler is the constructor for HealthDataHandler
func NewHealthDataHandler(params HealthDataHandlerParams) *HealthDataHandler {
	return &HealthDataHandler{healthDataUC: params.HealthDataUC}
}

// GetHealthData returns samples of one data type. start and end are optional RFC 3339 times.
func (h *HealthDataHandler) GetHealthData(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	dataType := entity.DataType(c.QueryParam("data_type"))
	start, err := queryTime(c, "start")
	if err != nil {
		return err
	}
	end, err := queryTime(c, "end")
	if err != nil {
		return err
	}

	data, err := h.healthDataUC.GetHealthData(c.Request().Context(), userID, dataType, start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data)
}

// GetAggregatedData returns daily means between the required start and end
func (h *HealthDataHandler) GetAggregatedData(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	start, err := queryTime(c, "start")
	if err != nil {
		return err
	}
	end, err := queryTime(c, "end")
	if err != nil {
		return err
	}
	if start == nil || end == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("start and end are required")
	}

	values, err := h.healthDataUC.GetAggregatedData(c.Request().Context(), userID, entity.DataType(c.QueryParam("data_type")), *start, *end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, values)
}

// GetLatestWorkouts returns the most recent workouts across providers
func (h *HealthDataHandler) GetLatestWorkouts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthenticated
	}

	limit, err := queryInt(c, "limit", defaultWorkoutLimit)
	if err != nil {
		return err
	}

	workouts, err := h.healthDataUC.GetLatestWorkouts(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, workouts)
}

// queryTime parses an optional RFC 3339 or YYYY-MM-DD query parameter
func queryTime(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WrapMessage(name + " must be an RFC 3339 time or YYYY-MM-DD date")
}
