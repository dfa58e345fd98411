package repository

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// HealthDataQuery selects health samples of one user.
type HealthDataQuery struct {
	UserID   uuid.UUID
	DataType entity.DataType
	Start    *time.Time
	End      *time.Time
	Limit    int
}

// HealthDataRepository defines the interface for canonical health data.
type HealthDataRepository interface {
	// UpsertHealthData stores samples, overwriting rows with the same
	// (device, data type, timestamp, source workout) key. It returns the number of rows written.
	UpsertHealthData(ctx context.Context, records []*entity.WearableHealthData) (int, error)

	// FindHealthData returns samples matching query, newest first.
	FindHealthData(ctx context.Context, query HealthDataQuery) ([]*entity.WearableHealthData, error)

	// DeleteHealthDataByDevice removes all samples of a device.
	DeleteHealthDataByDevice(ctx context.Context, deviceID uuid.UUID) error
}
