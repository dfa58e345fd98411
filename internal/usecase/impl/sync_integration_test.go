package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	"wearsync/internal/infra/persistence/postgres"
	mockSvc "wearsync/internal/mocks/service"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openIntegrationDB opens a private in-memory database with the full schema.
func openIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	return db
}

func TestSyncIntegration_ConcurrentTriggersSyncOnce(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()

	deviceRepo := postgres.NewConnectedDeviceRepository(db)
	historyRepo := postgres.NewSyncHistoryRepository(db)
	healthRepo := postgres.NewHealthDataRepository(db)
	prefsRepo := postgres.NewSyncPreferencesRepository(db)

	userID := uuid.New()
	device := &entity.ConnectedDevice{
		UserID:      userID,
		Provider:    entity.ProviderGoogleFit,
		DisplayName: "Google Fit",
		DeviceType:  "app",
		Status:      entity.DeviceStatusConnected,
		Credential:  []byte("sealed"),
	}
	require.NoError(t, deviceRepo.UpsertDevice(ctx, device))

	gateway := mockSvc.NewMockSyncGateway(t)
	exchanger := mockSvc.NewMockOAuthExchanger(t)
	sealer := mockSvc.NewMockCredentialSealer(t)

	cred := &entity.ProviderCredential{AccessToken: "access", RefreshToken: "refresh"}
	sealer.EXPECT().Open([]byte("sealed")).Return(cred, nil)
	exchanger.EXPECT().Refresh(mock.Anything, entity.ProviderGoogleFit, cred).Return(cred, false, nil)

	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	gateway.EXPECT().
		ExecuteSync(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.SyncRequest) (*service.SyncResult, error) {
			entered <- struct{}{}
			<-release

			return &service.SyncResult{Payloads: []service.DataTypePayload{
				{DataType: entity.DataTypeSteps, Payload: googleFitSteps, Count: 2},
			}}, nil
		})

	svc := newSyncService(SyncServiceParams{
		DeviceRepo:  deviceRepo,
		HistoryRepo: historyRepo,
		HealthRepo:  healthRepo,
		PrefsRepo:   prefsRepo,
		Gateway:     gateway,
		Exchanger:   exchanger,
		Sealer:      sealer,
		Config:      &config.Config{Sync: &config.SyncConfig{Timeout: 10 * time.Second}},
		Logger:      newTestLogger(),
	})

	start := make(chan struct{})
	errs := make(chan error, 2)
	for range 2 {
		go func() {
			<-start
			_, err := svc.TriggerSync(ctx, userID, device.ID, []entity.DataType{entity.DataTypeSteps}, entity.SyncTypeManual)
			errs <- err
		}()
	}
	close(start)

	// The winner is parked in the gateway, so the first result is the loser's.
	select {
	case err := <-errs:
		assert.ErrorIs(t, err, domainerrors.ErrAlreadySyncing)
	case <-time.After(5 * time.Second):
		t.Fatal("no trigger returned while the other was syncing")
	}

	close(release)
	select {
	case err := <-errs:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("winning sync did not finish")
	}
	assert.Len(t, entered, 1)

	history, err := historyRepo.FindHistoryByDevice(ctx, device.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.SyncStatusSuccess, history[0].Status)
	assert.Equal(t, 2, history[0].RecordsStored)

	stored, err := deviceRepo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusConnected, stored.Status)
	require.NotNil(t, stored.LastSyncAt)

	records, err := healthRepo.FindHealthData(ctx, repository.HealthDataQuery{UserID: userID, DataType: entity.DataTypeSteps})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

// disconnectOnLock disconnects a device as soon as a sync has locked it.
type disconnectOnLock struct {
	repository.ConnectedDeviceRepository

	devices usecase.DeviceUsecase
	userID  uuid.UUID
}

func (r *disconnectOnLock) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from []entity.DeviceStatus,
	next entity.DeviceStatus,
) (bool, error) {
	ok, err := r.ConnectedDeviceRepository.TransitionStatus(ctx, id, from, next)
	if err != nil || !ok || next != entity.DeviceStatusSyncing {
		return ok, err
	}

	if _, err := r.devices.DisconnectDevice(ctx, r.userID, id); err != nil {
		return ok, err
	}

	return ok, nil
}

func TestSyncIntegration_DisconnectDuringSyncSticks(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()

	deviceRepo := postgres.NewConnectedDeviceRepository(db)
	userID := uuid.New()
	device := &entity.ConnectedDevice{
		UserID:      userID,
		Provider:    entity.ProviderGoogleFit,
		DisplayName: "Google Fit",
		DeviceType:  "app",
		Status:      entity.DeviceStatusConnected,
		Credential:  []byte("sealed"),
	}
	require.NoError(t, deviceRepo.UpsertDevice(ctx, device))

	gateway := mockSvc.NewMockSyncGateway(t)
	exchanger := mockSvc.NewMockOAuthExchanger(t)
	sealer := mockSvc.NewMockCredentialSealer(t)

	// The refresh hands back a new credential that must not outlive the disconnect.
	stale := &entity.ProviderCredential{AccessToken: "old", RefreshToken: "refresh"}
	fresh := &entity.ProviderCredential{AccessToken: "access", RefreshToken: "refresh-2", Expiry: time.Now().Add(time.Hour)}
	sealer.EXPECT().Open([]byte("sealed")).Return(stale, nil)
	exchanger.EXPECT().Refresh(mock.Anything, entity.ProviderGoogleFit, stale).Return(fresh, true, nil)
	sealer.EXPECT().Seal(fresh).Return([]byte("resealed"), nil)
	gateway.EXPECT().ExecuteSync(mock.Anything, mock.Anything).Return(&service.SyncResult{Payloads: []service.DataTypePayload{
		{DataType: entity.DataTypeSteps, Payload: googleFitSteps, Count: 2},
	}}, nil)

	devices := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		TxManager:  postgres.NewTransactionManager(db),
		Exchanger:  exchanger,
		Sealer:     sealer,
		Logger:     newTestLogger(),
	})

	svc := newSyncService(SyncServiceParams{
		DeviceRepo:  &disconnectOnLock{ConnectedDeviceRepository: deviceRepo, devices: devices, userID: userID},
		HistoryRepo: postgres.NewSyncHistoryRepository(db),
		HealthRepo:  postgres.NewHealthDataRepository(db),
		PrefsRepo:   postgres.NewSyncPreferencesRepository(db),
		Gateway:     gateway,
		Exchanger:   exchanger,
		Sealer:      sealer,
		Config:      &config.Config{Sync: &config.SyncConfig{Timeout: 10 * time.Second}},
		Logger:      newTestLogger(),
	})

	_, err := svc.TriggerSync(ctx, userID, device.ID, []entity.DataType{entity.DataTypeSteps}, entity.SyncTypeManual)
	require.NoError(t, err)

	stored, err := deviceRepo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusDisconnected, stored.Status)
	assert.Empty(t, stored.Credential)
	assert.Nil(t, stored.TokenExpiresAt)
}

func TestSyncIntegration_AuthFlowIsSingleUse(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()

	svc, ok := NewAuthFlowService(AuthFlowServiceParams{
		FlowRepo:   postgres.NewAuthFlowRepository(db),
		DeviceRepo: postgres.NewConnectedDeviceRepository(db),
		Config:     &config.Config{OAuth: &config.OAuthConfig{StateTTL: 10 * time.Minute}},
		Logger:     newTestLogger(),
	}).(*authFlowService)
	require.True(t, ok)

	userID := uuid.New()
	flow, err := svc.CreateFlow(ctx, userID, entity.ProviderGoogleFit, "https://app.example.com/callback")
	require.NoError(t, err)

	consumed, err := svc.ConsumeFlow(ctx, userID, flow.State)
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderGoogleFit, consumed.Provider)
	assert.Equal(t, "https://app.example.com/callback", consumed.RedirectURI)

	_, err = svc.ConsumeFlow(ctx, userID, flow.State)
	assert.ErrorIs(t, err, domainerrors.ErrExpiredOrInvalidState)
}

func TestSyncIntegration_AuthFlowExpires(t *testing.T) {
	db := openIntegrationDB(t)
	ctx := context.Background()

	svc, ok := NewAuthFlowService(AuthFlowServiceParams{
		FlowRepo:   postgres.NewAuthFlowRepository(db),
		DeviceRepo: postgres.NewConnectedDeviceRepository(db),
		Config:     &config.Config{OAuth: &config.OAuthConfig{StateTTL: 10 * time.Minute}},
		Logger:     newTestLogger(),
	}).(*authFlowService)
	require.True(t, ok)

	userID := uuid.New()
	flow, err := svc.CreateFlow(ctx, userID, entity.ProviderFitbit, "https://app.example.com/callback")
	require.NoError(t, err)

	later := time.Now().Add(11 * time.Minute)
	svc.now = func() time.Time { return later }

	_, err = svc.ConsumeFlow(ctx, userID, flow.State)
	assert.ErrorIs(t, err, domainerrors.ErrExpiredOrInvalidState)
}
