package impl

import (
	"context"
	"sort"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/normalizer"
	"wearsync/internal/domain/repository"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	healthDataQueryLimit = 1000
	defaultWorkoutLimit  = 10
	maxWorkoutLimit      = 100
)

type healthDataService struct {
	healthRepo repository.HealthDataRepository
}

// NewHealthDataService creates a new health data service instance
func NewHealthDataService(healthRepo repository.HealthDataRepository) usecase.HealthDataUsecase {
	return &healthDataService{
		healthRepo: healthRepo,
	}
}

// GetHealthData returns samples of one type, newest first.
func (s *healthDataService) GetHealthData(
	ctx context.Context,
	userID uuid.UUID,
	dataType entity.DataType,
	start, end *time.Time,
) ([]*entity.WearableHealthData, error) {
	if err := validateHealthQuery(userID, dataType); err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("end must not be before start")
	}

	records, err := s.healthRepo.FindHealthData(ctx, repository.HealthDataQuery{
		UserID:   userID,
		DataType: dataType,
		Start:    start,
		End:      end,
		Limit:    healthDataQueryLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find health data")
	}

	return records, nil
}

// GetLatestWorkouts returns the most recent workouts across providers.
func (s *healthDataService) GetLatestWorkouts(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NormalizedWorkout, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if limit <= 0 {
		limit = defaultWorkoutLimit
	}
	limit = min(limit, maxWorkoutLimit)

	records, err := s.healthRepo.FindHealthData(ctx, repository.HealthDataQuery{
		UserID:   userID,
		DataType: entity.DataTypeWorkout,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find workouts")
	}

	workouts := make([]*entity.NormalizedWorkout, 0, len(records))
	for _, record := range records {
		workout := normalizer.NormalizeWorkoutJSON(record.RawData)
		if workout == nil {
			continue
		}
		if workout.Provider == "" {
			workout.Provider = record.Provider
		}
		workouts = append(workouts, workout)
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].StartTime.After(workouts[j].StartTime)
	})

	return workouts, nil
}

// GetAggregatedData returns daily means of one type between start and end.
func (s *healthDataService) GetAggregatedData(
	ctx context.Context,
	userID uuid.UUID,
	dataType entity.DataType,
	start, end time.Time,
) ([]entity.DailyValue, error) {
	if err := validateHealthQuery(userID, dataType); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("end must not be before start")
	}

	records, err := s.healthRepo.FindHealthData(ctx, repository.HealthDataQuery{
		UserID:   userID,
		DataType: dataType,
		Start:    &start,
		End:      &end,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find health data")
	}

	return normalizer.AggregateDaily(records), nil
}

func validateHealthQuery(userID uuid.UUID, dataType entity.DataType) error {
	if userID == uuid.Nil {
		return domainerrors.ErrNotAuthenticated
	}
	if !dataType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown data type")
	}

	return nil
}
