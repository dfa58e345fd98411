package repository

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrPreferencesNotFound is returned when a device has no sync preferences.
	ErrPreferencesNotFound = errors.New("sync preferences not found")
)

// SyncPreferencesRepository defines the interface for per-device sync policy.
type SyncPreferencesRepository interface {
	// FindPreferences retrieves the preferences of a device.
	FindPreferences(ctx context.Context, deviceID uuid.UUID) (*entity.SyncPreferences, error)

	// SavePreferences creates or replaces the preferences of a device.
	SavePreferences(ctx context.Context, prefs *entity.SyncPreferences) error

	// CreateDefaultPreferences stores prefs only if the device has none yet.
	CreateDefaultPreferences(ctx context.Context, prefs *entity.SyncPreferences) error

	// FindAutoSyncPreferences retrieves all preferences with auto sync enabled.
	FindAutoSyncPreferences(ctx context.Context) ([]*entity.SyncPreferences, error)

	// DeletePreferences removes the preferences of a device.
	DeletePreferences(ctx context.Context, deviceID uuid.UUID) error
}
