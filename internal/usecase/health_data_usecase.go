package usecase

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// HealthDataUsecase reads canonical health data.
type HealthDataUsecase interface {
	// GetHealthData returns samples of one type, newest first.
	GetHealthData(ctx context.Context, userID uuid.UUID, dataType entity.DataType, start, end *time.Time) ([]*entity.WearableHealthData, error)

	// GetLatestWorkouts returns the most recent workouts across providers.
	GetLatestWorkouts(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NormalizedWorkout, error)

	// GetAggregatedData returns daily means of one type between start and end.
	GetAggregatedData(ctx context.Context, userID uuid.UUID, dataType entity.DataType, start, end time.Time) ([]entity.DailyValue, error)
}
