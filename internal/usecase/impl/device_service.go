package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/provider"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	authFlow   usecase.AuthFlowUsecase
	deviceRepo repository.ConnectedDeviceRepository
	txManager  repository.TransactionManager
	exchanger  service.OAuthExchanger
	sealer     service.CredentialSealer
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	AuthFlow   usecase.AuthFlowUsecase
	DeviceRepo repository.ConnectedDeviceRepository
	TxManager  repository.TransactionManager
	Exchanger  service.OAuthExchanger
	Sealer     service.CredentialSealer
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		authFlow:   params.AuthFlow,
		deviceRepo: params.DeviceRepo,
		txManager:  params.TxManager,
		exchanger:  params.Exchanger,
		sealer:     params.Sealer,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// ConnectDevice starts linking a provider account and returns the consent URL
func (s *deviceService) ConnectDevice(
	ctx context.Context,
	userID uuid.UUID,
	providerID entity.ProviderID,
	redirectURI string,
) (*entity.AuthFlow, error) {
	flow, err := s.authFlow.CreateFlow(ctx, userID, providerID, redirectURI)
	if err != nil {
		return nil, err
	}

	authorizeURL, err := s.exchanger.AuthorizeURL(providerID, flow.State, redirectURI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build authorize URL")
	}
	flow.AuthorizeURL = authorizeURL

	return flow, nil
}

// HandleOAuthCallback completes linking with the code returned by the provider
func (s *deviceService) HandleOAuthCallback(ctx context.Context, userID uuid.UUID, code, state string) (*entity.ConnectedDevice, error) {
	consumed, err := s.authFlow.ConsumeFlow(ctx, userID, state)
	if err != nil {
		return nil, err
	}

	p, ok := provider.Lookup(consumed.Provider)
	if !ok {
		return nil, domainerrors.ErrInvalidProvider
	}

	grant, err := s.exchanger.Exchange(ctx, consumed.Provider, code, consumed.RedirectURI)
	if err != nil {
		var failure *domainerrors.SyncFailure
		if errors.As(err, &failure) {
			return nil, err
		}

		return nil, domainerrors.NewSyncFailure(domainerrors.ErrProviderAuth, "", "", err)
	}

	sealed, err := s.sealer.Seal(&grant.Credential)
	if err != nil {
		return nil, errors.Wrap(err, "failed to seal provider credential")
	}

	scopes := grant.Scopes
	if len(scopes) == 0 {
		scopes = append([]string(nil), p.Scopes...)
	}

	now := s.now()
	device := &entity.ConnectedDevice{
		ID:             uuid.New(),
		UserID:         consumed.UserID,
		Provider:       consumed.Provider,
		ProviderUserID: grant.ProviderUserID,
		DisplayName:    p.DisplayName,
		DeviceType:     p.DeviceType,
		Status:         entity.DeviceStatusConnected,
		Scopes:         scopes,
		ConnectedAt:    &now,
		Credential:     sealed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !grant.Credential.Expiry.IsZero() {
		expiry := grant.Credential.Expiry
		device.TokenExpiresAt = &expiry
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewConnectedDeviceRepository().UpsertDevice(ctx, device); err != nil {
			return errors.Wrap(err, "failed to upsert device")
		}

		prefs := entity.DefaultSyncPreferences(device.ID, p.DataTypes())
		prefs.CreatedAt = now
		prefs.UpdatedAt = now
		if err := repoFactory.NewSyncPreferencesRepository().CreateDefaultPreferences(ctx, prefs); err != nil {
			return errors.Wrap(err, "failed to create default preferences")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to link device")
	}

	s.log(ctx).Info("Device connected",
		slog.String("device_id", device.ID.String()),
		slog.String("provider", string(device.Provider)),
	)

	return device, nil
}

// ListDevices retrieves all devices of a user
func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.ConnectedDevice, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// GetDevice retrieves one device owned by the user
func (s *deviceService) GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.ConnectedDevice, error) {
	return findOwnedDevice(ctx, s.deviceRepo, userID, deviceID)
}

// DisconnectDevice revokes the link but keeps the device listed
func (s *deviceService) DisconnectDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.ConnectedDevice, error) {
	device, err := findOwnedDevice(ctx, s.deviceRepo, userID, deviceID)
	if err != nil {
		return nil, err
	}

	if device.Status == entity.DeviceStatusDisconnected && device.Credential == nil {
		return device, nil
	}

	if err := s.deviceRepo.MarkDisconnected(ctx, device.ID); err != nil {
		return nil, errors.Wrap(err, "failed to disconnect device")
	}

	device.Status = entity.DeviceStatusDisconnected
	device.Credential = nil
	device.TokenExpiresAt = nil
	device.UpdatedAt = s.now()

	s.log(ctx).Info("Device disconnected", slog.String("device_id", device.ID.String()))

	return device, nil
}

// DeleteDevice removes the device with its preferences, history and health data
func (s *deviceService) DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := findOwnedDevice(ctx, s.deviceRepo, userID, deviceID); err != nil {
		return err
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewHealthDataRepository().DeleteHealthDataByDevice(ctx, deviceID); err != nil {
			return errors.Wrap(err, "failed to delete health data")
		}
		if err := repoFactory.NewSyncHistoryRepository().DeleteHistoryByDevice(ctx, deviceID); err != nil {
			return errors.Wrap(err, "failed to delete sync history")
		}
		if err := repoFactory.NewSyncPreferencesRepository().DeletePreferences(ctx, deviceID); err != nil {
			return errors.Wrap(err, "failed to delete preferences")
		}
		if err := repoFactory.NewConnectedDeviceRepository().DeleteDevice(ctx, deviceID); err != nil {
			return errors.Wrap(err, "failed to delete device")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	s.log(ctx).Info("Device deleted", slog.String("device_id", deviceID.String()))

	return nil
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// findOwnedDevice loads a device and hides devices of other users behind ErrDeviceNotFound.
func findOwnedDevice(
	ctx context.Context,
	deviceRepo repository.ConnectedDeviceRepository,
	userID, deviceID uuid.UUID,
) (*entity.ConnectedDevice, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if !device.OwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
	}

	return device, nil
}
