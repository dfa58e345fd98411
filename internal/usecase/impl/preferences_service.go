package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/provider"
	"wearsync/internal/domain/repository"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// preferencesService implements the PreferencesUsecase interface.
type preferencesService struct {
	deviceRepo repository.ConnectedDeviceRepository
	prefsRepo  repository.SyncPreferencesRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewPreferencesService is the constructor for preferencesService.
func NewPreferencesService(
	deviceRepo repository.ConnectedDeviceRepository,
	prefsRepo repository.SyncPreferencesRepository,
	logger *slog.Logger,
) usecase.PreferencesUsecase {
	return &preferencesService{
		deviceRepo: deviceRepo,
		prefsRepo:  prefsRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// GetPreferences returns the device preferences, or nil when none were stored.
func (srv *preferencesService) GetPreferences(ctx context.Context, userID, deviceID uuid.UUID) (*entity.SyncPreferences, error) {
	if _, err := findOwnedDevice(ctx, srv.deviceRepo, userID, deviceID); err != nil {
		return nil, err
	}

	prefs, err := srv.prefsRepo.FindPreferences(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find sync preferences")
	}

	return prefs, nil
}

// UpdatePreferences merges the set fields of update into the stored preferences.
func (srv *preferencesService) UpdatePreferences(
	ctx context.Context,
	userID, deviceID uuid.UUID,
	update entity.SyncPreferencesUpdate,
) (*entity.SyncPreferences, error) {
	device, err := findOwnedDevice(ctx, srv.deviceRepo, userID, deviceID)
	if err != nil {
		return nil, err
	}

	p, ok := provider.Lookup(device.Provider)
	if !ok {
		return nil, domainerrors.ErrInvalidProvider
	}
	if err := validatePreferencesUpdate(p, update); err != nil {
		return nil, err
	}

	now := srv.now()
	prefs, err := srv.prefsRepo.FindPreferences(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, errors.Wrap(err, "failed to find sync preferences")
		}
		prefs = entity.DefaultSyncPreferences(deviceID, p.DataTypes())
		prefs.CreatedAt = now
	}

	update.Apply(prefs)
	prefs.UpdatedAt = now

	if err := srv.prefsRepo.SavePreferences(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to save sync preferences")
	}

	srv.logger.Debug("Sync preferences updated", "deviceID", deviceID)

	return prefs, nil
}

func validatePreferencesUpdate(p *provider.Provider, update entity.SyncPreferencesUpdate) error {
	if f := update.SyncFrequencyMinutes; f != nil &&
		(*f < entity.MinSyncFrequencyMinutes || *f > entity.MaxSyncFrequencyMinutes) {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf(
			"sync_frequency_minutes must be between %d and %d",
			entity.MinSyncFrequencyMinutes, entity.MaxSyncFrequencyMinutes))
	}

	if d := update.BackfillDays; d != nil && (*d < entity.MinBackfillDays || *d > entity.MaxBackfillDays) {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf(
			"backfill_days must be between %d and %d",
			entity.MinBackfillDays, entity.MaxBackfillDays))
	}

	if update.DataTypesEnabled != nil {
		for _, dt := range *update.DataTypesEnabled {
			if !p.Supports(dt) {
				return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf(
					"data type %q is not supported by %s", dt, p.DisplayName))
			}
		}
	}

	return nil
}
