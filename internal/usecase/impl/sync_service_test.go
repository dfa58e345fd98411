package impl

import (
	"context"
	"testing"
	"time"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/provider"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	mockRepo "wearsync/internal/mocks/repository"
	mockSvc "wearsync/internal/mocks/service"
	mockUsecase "wearsync/internal/mocks/usecase"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var googleFitSteps = []byte(`{"point": [
	{"startTimeNanos": "1709276400000000000", "endTimeNanos": "1709280000000000000", "value": [{"intVal": 800}]},
	{"startTimeNanos": "1709280000000000000", "endTimeNanos": "1709283600000000000", "value": [{"intVal": 1200}]}
]}`)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service     *syncService
	deviceRepo  *mockRepo.MockConnectedDeviceRepository
	historyRepo *mockRepo.MockSyncHistoryRepository
	healthRepo  *mockRepo.MockHealthDataRepository
	prefsRepo   *mockRepo.MockSyncPreferencesRepository
	gateway     *mockSvc.MockSyncGateway
	exchanger   *mockSvc.MockOAuthExchanger
	sealer      *mockSvc.MockCredentialSealer
	archive     *mockSvc.MockPayloadArchive
	publisher   *mockSvc.MockEventPublisher
	notifier    *mockUsecase.MockSyncNotifier
	now         time.Time
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	fx := syncServiceFixtures{
		deviceRepo:  mockRepo.NewMockConnectedDeviceRepository(t),
		historyRepo: mockRepo.NewMockSyncHistoryRepository(t),
		healthRepo:  mockRepo.NewMockHealthDataRepository(t),
		prefsRepo:   mockRepo.NewMockSyncPreferencesRepository(t),
		gateway:     mockSvc.NewMockSyncGateway(t),
		exchanger:   mockSvc.NewMockOAuthExchanger(t),
		sealer:      mockSvc.NewMockCredentialSealer(t),
		archive:     mockSvc.NewMockPayloadArchive(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		notifier:    mockUsecase.NewMockSyncNotifier(t),
		now:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	// Archive, publisher and notifier are optional; tests opt in.
	fx.service = newSyncService(SyncServiceParams{
		DeviceRepo:  fx.deviceRepo,
		HistoryRepo: fx.historyRepo,
		HealthRepo:  fx.healthRepo,
		PrefsRepo:   fx.prefsRepo,
		Gateway:     fx.gateway,
		Exchanger:   fx.exchanger,
		Sealer:      fx.sealer,
		Config: &config.Config{Sync: &config.SyncConfig{
			Timeout:             5 * time.Second,
			WatchdogGrace:       30 * time.Second,
			MaxConcurrency:      2,
			NotificationTimeout: time.Second,
		}},
		Logger: newTestLogger(),
	})
	fx.service.now = fixedClock(fx.now)

	return fx
}

func (fx syncServiceFixtures) connectedDevice(userID uuid.UUID) *entity.ConnectedDevice {
	return &entity.ConnectedDevice{
		ID:          uuid.New(),
		UserID:      userID,
		Provider:    entity.ProviderGoogleFit,
		DisplayName: "Google Fit",
		Status:      entity.DeviceStatusConnected,
		Credential:  []byte("sealed"),
		UpdatedAt:   fx.now.Add(-time.Hour),
	}
}

func (fx syncServiceFixtures) expectLock(ctx context.Context, device *entity.ConnectedDevice, acquired bool) {
	fx.deviceRepo.EXPECT().
		TransitionStatus(ctx, device.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing).
		Return(acquired, nil)
}

func (fx syncServiceFixtures) expectCredential(device *entity.ConnectedDevice) {
	cred := &entity.ProviderCredential{AccessToken: "access", RefreshToken: "refresh", Expiry: fx.now.Add(time.Hour)}
	fx.sealer.EXPECT().Open(device.Credential).Return(cred, nil)
	fx.exchanger.EXPECT().Refresh(mock.Anything, device.Provider, cred).Return(cred, false, nil)
}

func (fx syncServiceFixtures) expectRelease(device *entity.ConnectedDevice, next entity.DeviceStatus) {
	fx.deviceRepo.EXPECT().
		ReleaseSync(mock.Anything, mock.MatchedBy(func(d *entity.ConnectedDevice) bool {
			return d.ID == device.ID && d.Status == next
		})).
		Return(true, nil)
}

// expectSuccessfulSync wires a full successful sync of google fit steps.
func (fx syncServiceFixtures) expectSuccessfulSync(ctx context.Context, device *entity.ConnectedDevice) {
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.expectCredential(device)
	fx.gateway.EXPECT().ExecuteSync(mock.Anything, mock.Anything).Return(&service.SyncResult{
		Payloads: []service.DataTypePayload{{DataType: entity.DataTypeSteps, Payload: googleFitSteps, Count: 2}},
	}, nil)
	fx.healthRepo.EXPECT().UpsertHealthData(mock.Anything, mock.Anything).Return(2, nil)
	fx.expectRelease(device, entity.DeviceStatusConnected)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)
}

func TestSyncService_TriggerSync_Success(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)
	device.ErrorCount = 3
	device.LastError = "previous failure"
	device.Status = entity.DeviceStatusError

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(&entity.SyncPreferences{
		DeviceID:         device.ID,
		DataTypesEnabled: []entity.DataType{entity.DataTypeSteps},
		BackfillDays:     3,
	}, nil)
	fx.expectCredential(device)
	fx.gateway.EXPECT().
		ExecuteSync(mock.Anything, mock.MatchedBy(func(req *service.SyncRequest) bool {
			return req.AccessToken == "access" &&
				len(req.DataTypes) == 1 && req.DataTypes[0] == entity.DataTypeSteps &&
				req.Since.Equal(fx.now.AddDate(0, 0, -3)) &&
				req.Until.Equal(fx.now)
		})).
		Return(&service.SyncResult{Payloads: []service.DataTypePayload{
			{DataType: entity.DataTypeSteps, Payload: googleFitSteps, Count: 2},
		}}, nil)

	var stored []*entity.WearableHealthData
	fx.healthRepo.EXPECT().
		UpsertHealthData(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []*entity.WearableHealthData) { stored = records }).
		Return(2, nil)
	fx.deviceRepo.EXPECT().
		ReleaseSync(mock.Anything, mock.MatchedBy(func(d *entity.ConnectedDevice) bool {
			return d.Status == entity.DeviceStatusConnected && d.ErrorCount == 0 && d.LastError == "" && d.LastSyncAt != nil
		})).
		Return(true, nil)
	fx.historyRepo.EXPECT().
		AppendHistory(mock.Anything, mock.AnythingOfType("*entity.DeviceSyncHistory")).
		Return(nil).Once()

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	require.NoError(t, err)

	assert.Equal(t, entity.SyncStatusSuccess, history.Status)
	assert.Equal(t, entity.SyncTypeManual, history.SyncType)
	assert.Equal(t, 2, history.RecordsFetched)
	assert.Equal(t, 2, history.RecordsStored)
	assert.Equal(t, []entity.DataType{entity.DataTypeSteps}, history.DataTypesSynced)
	assert.Empty(t, history.ErrorCode)

	require.NotNil(t, device.LastSyncAt)
	assert.False(t, device.LastSyncAt.Before(history.StartedAt))
	assert.Equal(t, 0, device.ErrorCount)

	require.Len(t, stored, 2)
	for _, record := range stored {
		assert.Equal(t, device.ID, record.DeviceID)
		assert.Equal(t, userID, record.UserID)
		assert.Equal(t, entity.DataTypeSteps, record.DataType)
		assert.True(t, record.Value.IsValid())
	}
}

func TestSyncService_TriggerSync_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.DeviceStatus
		wantErr error
	}{
		{name: "disconnected", status: entity.DeviceStatusDisconnected, wantErr: domainerrors.ErrDeviceDisconnected},
		{name: "pending auth", status: entity.DeviceStatusPendingAuth, wantErr: domainerrors.ErrDeviceDisconnected},
		{name: "token expired", status: entity.DeviceStatusTokenExpired, wantErr: domainerrors.ErrTokenExpired},
		{name: "fresh syncing", status: entity.DeviceStatusSyncing, wantErr: domainerrors.ErrAlreadySyncing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSyncService(t)
			ctx := context.Background()
			userID := uuid.New()
			device := fx.connectedDevice(userID)
			device.Status = tt.status
			device.UpdatedAt = fx.now.Add(-10 * time.Second)

			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

			history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
			assert.Nil(t, history)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSyncService_TriggerSync_RequiresUser(t *testing.T) {
	fx := createTestSyncService(t)

	_, err := fx.service.TriggerSync(context.Background(), uuid.Nil, uuid.New(), nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestSyncService_TriggerSync_ForeignDevice(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	device := fx.connectedDevice(uuid.New())
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.service.TriggerSync(ctx, uuid.New(), device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestSyncService_TriggerSync_LockLost(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, false)

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.Nil(t, history)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySyncing)
	fx.historyRepo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
}

func TestSyncService_TriggerSync_UnsupportedDataTypes(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.service.TriggerSync(ctx, userID, device.ID, []entity.DataType{entity.DataTypeRecovery}, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSyncService_TriggerSync_GatewayFailureIsRecorded(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)
	device.ErrorCount = 1

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.expectCredential(device)
	fx.gateway.EXPECT().
		ExecuteSync(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewSyncFailure(domainerrors.ErrSyncFailed, "UPSTREAM_500", "Backend Error", nil))
	fx.deviceRepo.EXPECT().
		ReleaseSync(mock.Anything, mock.MatchedBy(func(d *entity.ConnectedDevice) bool {
			return d.Status == entity.DeviceStatusError && d.ErrorCount == 2 && d.LastError == "Backend Error" && d.LastSyncAt == nil
		})).
		Return(true, nil)
	fx.historyRepo.EXPECT().
		AppendHistory(mock.Anything, mock.MatchedBy(func(h *entity.DeviceSyncHistory) bool {
			return h.Status == entity.SyncStatusFailed
		})).
		Return(nil).Once()

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrSyncFailed)
	require.NotNil(t, history)
	assert.Equal(t, entity.SyncStatusFailed, history.Status)
	assert.Equal(t, "UPSTREAM_500", history.ErrorCode)
	assert.Equal(t, "Backend Error", history.ErrorMessage)
	assert.Zero(t, history.RecordsStored)
}

func TestSyncService_TriggerSync_CredentialRejected(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)
	cred := &entity.ProviderCredential{AccessToken: "old", RefreshToken: "revoked"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil).Twice()
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.sealer.EXPECT().Open(device.Credential).Return(cred, nil)
	fx.exchanger.EXPECT().
		Refresh(mock.Anything, entity.ProviderGoogleFit, cred).
		Return(nil, false, domainerrors.NewSyncFailure(domainerrors.ErrTokenExpired, "invalid_grant", "Token has been expired or revoked.", nil))
	fx.expectRelease(device, entity.DeviceStatusTokenExpired)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil).Once()

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	require.NotNil(t, history)
	assert.Equal(t, "invalid_grant", history.ErrorCode)

	assert.Equal(t, entity.DeviceStatusTokenExpired, device.Status)
	assert.Equal(t, 1, device.ErrorCount)
	assert.Equal(t, "Token has been expired or revoked.", device.LastError)

	// Nothing works again until the user re-authorizes.
	history, err = fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.Nil(t, history)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestSyncService_TriggerSync_Timeout(t *testing.T) {
	fx := createTestSyncService(t)
	fx.service.timeout = 20 * time.Millisecond

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.expectCredential(device)
	fx.gateway.EXPECT().
		ExecuteSync(mock.Anything, mock.Anything).
		RunAndReturn(func(callCtx context.Context, _ *service.SyncRequest) (*service.SyncResult, error) {
			<-callCtx.Done()

			return nil, callCtx.Err()
		})
	fx.expectRelease(device, entity.DeviceStatusError)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrSyncTimeout)
	require.NotNil(t, history)
	assert.Equal(t, "SYNC_TIMEOUT", history.ErrorCode)
	assert.Equal(t, entity.DeviceStatusError, device.Status)
}

func TestSyncService_TriggerSync_RefreshSharesSyncDeadline(t *testing.T) {
	fx := createTestSyncService(t)
	fx.service.timeout = 20 * time.Millisecond

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)
	cred := &entity.ProviderCredential{AccessToken: "old", RefreshToken: "refresh"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.sealer.EXPECT().Open(device.Credential).Return(cred, nil)

	var deadline time.Time
	fx.exchanger.EXPECT().
		Refresh(mock.Anything, entity.ProviderGoogleFit, cred).
		RunAndReturn(func(refreshCtx context.Context, _ entity.ProviderID, _ *entity.ProviderCredential) (*entity.ProviderCredential, bool, error) {
			deadline, _ = refreshCtx.Deadline()
			<-refreshCtx.Done()

			return nil, false, refreshCtx.Err()
		})
	fx.expectRelease(device, entity.DeviceStatusError)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)

	started := time.Now()
	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrSyncTimeout)
	require.NotNil(t, history)
	assert.Equal(t, "SYNC_TIMEOUT", history.ErrorCode)
	require.False(t, deadline.IsZero(), "the refresh must run under the sync deadline")
	assert.WithinDuration(t, started.Add(fx.service.timeout), deadline, time.Second)
	assert.Equal(t, entity.DeviceStatusError, device.Status)
}

func TestSyncService_TriggerSync_PartialWhenSomeTypesFail(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.expectCredential(device)
	fx.gateway.EXPECT().ExecuteSync(mock.Anything, mock.Anything).Return(&service.SyncResult{Payloads: []service.DataTypePayload{
		{DataType: entity.DataTypeSteps, Payload: googleFitSteps, Count: 2},
		{DataType: entity.DataTypeHeartRate, ErrorCode: "RATE_LIMITED", ErrorMessage: "quota exceeded"},
	}}, nil)
	fx.healthRepo.EXPECT().UpsertHealthData(mock.Anything, mock.Anything).Return(2, nil)
	fx.expectRelease(device, entity.DeviceStatusConnected)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeScheduled)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusPartial, history.Status)
	assert.Equal(t, "RATE_LIMITED", history.ErrorCode)
	assert.Contains(t, history.ErrorMessage, "quota exceeded")
	assert.Equal(t, []entity.DataType{entity.DataTypeSteps}, history.DataTypesSynced)
	assert.Equal(t, entity.DeviceStatusConnected, device.Status)
}

func TestSyncService_TriggerSync_AllTypesFailed(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.expectCredential(device)
	fx.gateway.EXPECT().ExecuteSync(mock.Anything, mock.Anything).Return(&service.SyncResult{Payloads: []service.DataTypePayload{
		{DataType: entity.DataTypeSteps, ErrorCode: "RATE_LIMITED", ErrorMessage: "quota exceeded"},
	}}, nil)
	fx.expectRelease(device, entity.DeviceStatusError)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrSyncFailed)
	assert.Equal(t, entity.SyncStatusFailed, history.Status)
	assert.Equal(t, "RATE_LIMITED", history.ErrorCode)
}

func TestSyncService_TriggerSync_StorageFailureIsRecorded(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.expectCredential(device)
	fx.gateway.EXPECT().ExecuteSync(mock.Anything, mock.Anything).Return(&service.SyncResult{Payloads: []service.DataTypePayload{
		{DataType: entity.DataTypeSteps, Payload: googleFitSteps, Count: 2},
	}}, nil)
	fx.healthRepo.EXPECT().UpsertHealthData(mock.Anything, mock.Anything).Return(0, errors.New("disk full"))
	fx.expectRelease(device, entity.DeviceStatusError)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrSyncFailed)
	assert.Equal(t, "SYNC_FAILED", history.ErrorCode)
	assert.Contains(t, history.ErrorMessage, "disk full")
	assert.Equal(t, 1, device.ErrorCount)
}

func TestSyncService_TriggerSync_RefreshedCredentialIsResealed(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)
	old := &entity.ProviderCredential{AccessToken: "old", RefreshToken: "refresh"}
	fresh := &entity.ProviderCredential{AccessToken: "new", RefreshToken: "refresh", Expiry: fx.now.Add(time.Hour)}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectLock(ctx, device, true)
	fx.prefsRepo.EXPECT().FindPreferences(mock.Anything, device.ID).Return(nil, repository.ErrPreferencesNotFound)
	fx.sealer.EXPECT().Open([]byte("sealed")).Return(old, nil)
	fx.exchanger.EXPECT().Refresh(mock.Anything, entity.ProviderGoogleFit, old).Return(fresh, true, nil)
	fx.sealer.EXPECT().Seal(fresh).Return([]byte("resealed"), nil)
	fx.gateway.EXPECT().
		ExecuteSync(mock.Anything, mock.MatchedBy(func(req *service.SyncRequest) bool { return req.AccessToken == "new" })).
		Return(&service.SyncResult{}, nil)
	fx.deviceRepo.EXPECT().
		ReleaseSync(mock.Anything, mock.MatchedBy(func(d *entity.ConnectedDevice) bool {
			return string(d.Credential) == "resealed" && d.TokenExpiresAt != nil
		})).
		Return(true, nil)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil)

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusSuccess, history.Status)
	assert.Zero(t, history.RecordsStored)
}

func TestSyncService_TriggerSync_ArchivesPayloads(t *testing.T) {
	fx := createTestSyncService(t)
	fx.service.archive = fx.archive

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectSuccessfulSync(ctx, device)
	fx.archive.EXPECT().
		Store(mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > 0 && key[:len(userID.String())] == userID.String()
		}), googleFitSteps).
		Return(errors.New("bucket unavailable"))

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	require.NoError(t, err, "archive failures never fail a sync")
	assert.Equal(t, entity.SyncStatusSuccess, history.Status)
}

func TestSyncService_TriggerSync_WatchdogResolvesStuckDevice(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := fx.connectedDevice(userID)
	device.Status = entity.DeviceStatusSyncing
	device.UpdatedAt = fx.now.Add(-2 * time.Minute)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().
		ReleaseSync(mock.Anything, mock.MatchedBy(func(d *entity.ConnectedDevice) bool {
			return d.ID == device.ID && d.Status == entity.DeviceStatusError && d.ErrorCount == 1
		})).
		Return(true, nil)
	fx.historyRepo.EXPECT().
		AppendHistory(mock.Anything, mock.MatchedBy(func(h *entity.DeviceSyncHistory) bool {
			return h.ErrorCode == watchdogErrorCode && h.SyncType == entity.SyncTypeWatchdog && h.Status == entity.SyncStatusFailed
		})).
		Return(nil)
	// Someone else takes the lock right after the watchdog released it.
	fx.expectLock(ctx, device, false)

	_, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySyncing)
	assert.Equal(t, entity.DeviceStatusError, device.Status)
}

func TestSyncService_TriggerSync_NotificationIsDetached(t *testing.T) {
	fx := createTestSyncService(t)
	fx.service.notifier = fx.notifier

	ctx, cancel := context.WithCancel(context.Background())
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	release := make(chan struct{})
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.expectSuccessfulSync(ctx, device)
	fx.notifier.EXPECT().
		NotifySyncResult(mock.Anything, mock.AnythingOfType("*entity.ConnectedDevice"), mock.AnythingOfType("*entity.DeviceSyncHistory")).
		RunAndReturn(func(notifyCtx context.Context, d *entity.ConnectedDevice, _ *entity.DeviceSyncHistory) error {
			<-release
			assert.NoError(t, notifyCtx.Err(), "caller cancellation does not reach the notification")
			assert.Equal(t, device.ID, d.ID)

			return errors.New("fcm unavailable")
		})

	history, err := fx.service.TriggerSync(ctx, userID, device.ID, nil, entity.SyncTypeManual)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusSuccess, history.Status)

	cancel()
	close(release)
	fx.service.pending.Wait()
}

func TestSyncService_SyncBatch_SettlesEveryItem(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	ok := fx.connectedDevice(userID)
	disconnected := fx.connectedDevice(userID)
	disconnected.Status = entity.DeviceStatusDisconnected
	missingID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, ok.ID).Return(ok, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, disconnected.ID).Return(disconnected, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, missingID).Return(nil, repository.ErrDeviceNotFound)
	fx.expectSuccessfulSync(ctx, ok)

	results := fx.service.SyncBatch(ctx, []usecase.SyncItem{
		{UserID: userID, DeviceID: missingID},
		{UserID: userID, DeviceID: ok.ID},
		{UserID: userID, DeviceID: disconnected.ID},
	})
	require.Len(t, results, 3)

	assert.Equal(t, missingID, results[0].DeviceID)
	assert.ErrorIs(t, results[0].Err, domainerrors.ErrDeviceNotFound)

	assert.Equal(t, ok.ID, results[1].DeviceID)
	require.NoError(t, results[1].Err)
	assert.Equal(t, entity.SyncTypeAuxiliary, results[1].History.SyncType)

	assert.Equal(t, disconnected.ID, results[2].DeviceID)
	assert.ErrorIs(t, results[2].Err, domainerrors.ErrDeviceDisconnected)
}

func TestSyncService_SyncDueDevices(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	userID := uuid.New()
	lastSync := fx.now.Add(-10 * time.Minute)

	neverSynced := fx.connectedDevice(userID)
	recentlySynced := fx.connectedDevice(userID)
	recentlySynced.LastSyncAt = &lastSync
	manualOnly := fx.connectedDevice(userID)

	fx.prefsRepo.EXPECT().FindAutoSyncPreferences(ctx).Return([]*entity.SyncPreferences{
		{DeviceID: neverSynced.ID, AutoSyncEnabled: true, SyncFrequencyMinutes: 60},
		{DeviceID: recentlySynced.ID, AutoSyncEnabled: true, SyncFrequencyMinutes: 60},
	}, nil)
	fx.deviceRepo.EXPECT().
		FindDevicesByStatus(ctx, entity.SyncableStatuses).
		Return([]*entity.ConnectedDevice{neverSynced, recentlySynced, manualOnly}, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, neverSynced.ID).Return(neverSynced, nil)
	fx.expectLock(ctx, neverSynced, false)

	results, err := fx.service.SyncDueDevices(ctx, fx.now)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, neverSynced.ID, results[0].DeviceID)
	assert.ErrorIs(t, results[0].Err, domainerrors.ErrAlreadySyncing)
}

func TestSyncService_ResolveStuckSyncs(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	stuck := fx.connectedDevice(uuid.New())
	stuck.Status = entity.DeviceStatusSyncing
	stuck.UpdatedAt = fx.now.Add(-time.Hour)
	raced := fx.connectedDevice(uuid.New())
	raced.Status = entity.DeviceStatusSyncing
	raced.UpdatedAt = fx.now.Add(-time.Hour)

	fx.deviceRepo.EXPECT().
		FindStuckSyncingDevices(ctx, fx.now.Add(-35*time.Second)).
		Return([]*entity.ConnectedDevice{stuck, raced}, nil)
	fx.deviceRepo.EXPECT().
		ReleaseSync(mock.Anything, mock.MatchedBy(func(d *entity.ConnectedDevice) bool {
			return d.ID == stuck.ID && d.Status == entity.DeviceStatusError && d.LastError == watchdogErrorMessage
		})).
		Return(true, nil)
	fx.deviceRepo.EXPECT().
		ReleaseSync(mock.Anything, mock.MatchedBy(func(d *entity.ConnectedDevice) bool {
			return d.ID == raced.ID
		})).
		Return(false, nil)
	fx.historyRepo.EXPECT().AppendHistory(mock.Anything, mock.Anything).Return(nil).Once()

	resolved, err := fx.service.ResolveStuckSyncs(ctx, fx.now)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)
	assert.Equal(t, watchdogErrorMessage, stuck.LastError)
	assert.Equal(t, entity.DeviceStatusSyncing, raced.Status)
	assert.Empty(t, raced.LastError)
}

func TestSyncService_RequestSync_Publishes(t *testing.T) {
	fx := createTestSyncService(t)
	fx.service.publisher = fx.publisher

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	userID := uuid.New()
	device := fx.connectedDevice(userID)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.publisher.EXPECT().
		PublishSyncRequested(ctx, &service.SyncRequestedEvent{
			RequestID: "req-42",
			UserID:    userID.String(),
			DeviceIDs: []string{device.ID.String()},
			DataTypes: []string{"steps"},
			SyncType:  string(entity.SyncTypeAuxiliary),
		}).
		Return(nil)

	requestID, err := fx.service.RequestSync(ctx, userID, []uuid.UUID{device.ID}, []entity.DataType{entity.DataTypeSteps})
	require.NoError(t, err)
	assert.Equal(t, "req-42", requestID)
}

func TestSyncService_RequestSync_Rejections(t *testing.T) {
	fx := createTestSyncService(t)
	fx.service.publisher = fx.publisher

	ctx := context.Background()
	userID := uuid.New()
	foreign := fx.connectedDevice(uuid.New())

	_, err := fx.service.RequestSync(ctx, userID, nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RequestSync(ctx, userID, []uuid.UUID{foreign.ID}, []entity.DataType{"bogus"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, foreign.ID).Return(foreign, nil)
	_, err = fx.service.RequestSync(ctx, userID, []uuid.UUID{foreign.ID}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)

	fx.publisher.AssertNotCalled(t, "PublishSyncRequested", mock.Anything, mock.Anything)
}

func TestSyncService_GetSyncHistory_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: defaultHistoryLimit},
		{name: "explicit", limit: 5, wantLimit: 5},
		{name: "capped", limit: 500, wantLimit: maxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSyncService(t)
			ctx := context.Background()
			userID := uuid.New()
			device := fx.connectedDevice(userID)

			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
			fx.historyRepo.EXPECT().
				FindHistoryByDevice(ctx, device.ID, tt.wantLimit).
				Return([]*entity.DeviceSyncHistory{}, nil)

			history, err := fx.service.GetSyncHistory(ctx, userID, device.ID, tt.limit)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestResolveDataTypes(t *testing.T) {
	googleFit, ok := provider.Lookup(entity.ProviderGoogleFit)
	require.True(t, ok)

	tests := []struct {
		name      string
		requested []entity.DataType
		prefs     *entity.SyncPreferences
		want      []entity.DataType
	}{
		{
			name:      "explicit request filtered by provider",
			requested: []entity.DataType{entity.DataTypeSteps, entity.DataTypeRecovery},
			prefs:     &entity.SyncPreferences{DataTypesEnabled: []entity.DataType{entity.DataTypeHeartRate}},
			want:      []entity.DataType{entity.DataTypeSteps},
		},
		{
			name:  "enabled preferences",
			prefs: &entity.SyncPreferences{DataTypesEnabled: []entity.DataType{entity.DataTypeHeartRate}},
			want:  []entity.DataType{entity.DataTypeHeartRate},
		},
		{
			name: "everything supported",
			want: googleFit.DataTypes(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveDataTypes(googleFit, tt.requested, tt.prefs))
		})
	}
}
