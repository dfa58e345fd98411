package repository

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncHistoryRepository is append-only: history rows are never updated.
type SyncHistoryRepository interface {
	// AppendHistory stores one sync attempt.
	AppendHistory(ctx context.Context, history *entity.DeviceSyncHistory) error

	// FindHistoryByDevice returns the latest attempts of a device, newest first.
	FindHistoryByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.DeviceSyncHistory, error)

	// DeleteHistoryByDevice removes the history of a deleted device.
	DeleteHistoryByDevice(ctx context.Context, deviceID uuid.UUID) error
}
