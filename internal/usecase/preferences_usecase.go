package usecase

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferencesUsecase manages the per-device sync policy.
type PreferencesUsecase interface {
	// GetPreferences returns the device preferences, or nil when none were stored.
	GetPreferences(ctx context.Context, userID, deviceID uuid.UUID) (*entity.SyncPreferences, error)

	// UpdatePreferences merges the set fields of update into the stored preferences.
	UpdatePreferences(ctx context.Context, userID, deviceID uuid.UUID, update entity.SyncPreferencesUpdate) (*entity.SyncPreferences, error)
}
