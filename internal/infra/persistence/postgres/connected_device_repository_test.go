package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wearsync/internal/domain/entity"
	"wearsync/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedDeviceRepository_UpsertDevice_RelinkKeepsID(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t)).(*connectedDeviceRepository)
	ctx := context.Background()
	userID := uuid.New()

	first := seedDevice(t, repo, userID, entity.ProviderFitbit, entity.DeviceStatusConnected)
	require.NotEqual(t, uuid.Nil, first.ID)

	relinked := &entity.ConnectedDevice{
		UserID:         userID,
		Provider:       entity.ProviderFitbit,
		ProviderUserID: "fitbit-42",
		DisplayName:    "Fitbit",
		Status:         entity.DeviceStatusConnected,
		Scopes:         []string{"activity", "sleep"},
		Credential:     []byte("sealed-2"),
	}
	require.NoError(t, repo.UpsertDevice(ctx, relinked))

	assert.Equal(t, first.ID, relinked.ID)
	assert.Equal(t, "fitbit-42", relinked.ProviderUserID)
	assert.Equal(t, []string{"activity", "sleep"}, relinked.Scopes)
	assert.Equal(t, []byte("sealed-2"), relinked.Credential)

	devices, err := repo.FindDevicesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestConnectedDeviceRepository_FindDeviceByID_NotFound(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t))

	_, err := repo.FindDeviceByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestConnectedDeviceRepository_ReleaseSync(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t)).(*connectedDeviceRepository)
	ctx := context.Background()
	device := seedDevice(t, repo, uuid.New(), entity.ProviderOura, entity.DeviceStatusConnected)

	ok, err := repo.TransitionStatus(ctx, device.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing)
	require.NoError(t, err)
	require.True(t, ok)

	syncedAt := time.Now().UTC().Truncate(time.Second)
	expiresAt := syncedAt.Add(time.Hour)
	device.Status = entity.DeviceStatusConnected
	device.LastSyncAt = &syncedAt
	device.ErrorCount = 0
	device.LastError = ""
	device.Credential = []byte("sealed-refreshed")
	device.TokenExpiresAt = &expiresAt

	released, err := repo.ReleaseSync(ctx, device)
	require.NoError(t, err)
	assert.True(t, released)

	stored, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusConnected, stored.Status)
	require.NotNil(t, stored.LastSyncAt)
	assert.True(t, syncedAt.Equal(*stored.LastSyncAt))
	assert.Equal(t, []byte("sealed-refreshed"), stored.Credential)
	require.NotNil(t, stored.TokenExpiresAt)
	assert.True(t, expiresAt.Equal(*stored.TokenExpiresAt))

	released, err = repo.ReleaseSync(ctx, device)
	require.NoError(t, err)
	assert.False(t, released, "a device no longer syncing must not be released")
}

func TestConnectedDeviceRepository_ReleaseSync_KeepsDisconnect(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t)).(*connectedDeviceRepository)
	ctx := context.Background()
	device := seedDevice(t, repo, uuid.New(), entity.ProviderFitbit, entity.DeviceStatusConnected)

	ok, err := repo.TransitionStatus(ctx, device.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, repo.MarkDisconnected(ctx, device.ID))

	syncedAt := time.Now().UTC()
	device.Status = entity.DeviceStatusConnected
	device.LastSyncAt = &syncedAt
	device.Credential = []byte("sealed-refreshed")

	released, err := repo.ReleaseSync(ctx, device)
	require.NoError(t, err)
	assert.False(t, released)

	stored, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusDisconnected, stored.Status)
	assert.Empty(t, stored.Credential)
	assert.Nil(t, stored.TokenExpiresAt)
	assert.Nil(t, stored.LastSyncAt)
}

func TestConnectedDeviceRepository_MarkDisconnected(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t)).(*connectedDeviceRepository)
	ctx := context.Background()
	device := seedDevice(t, repo, uuid.New(), entity.ProviderOura, entity.DeviceStatusConnected)

	require.NoError(t, repo.MarkDisconnected(ctx, device.ID))

	stored, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusDisconnected, stored.Status)
	assert.Empty(t, stored.Credential)
	assert.Nil(t, stored.TokenExpiresAt)

	assert.ErrorIs(t, repo.MarkDisconnected(ctx, uuid.New()), repository.ErrDeviceNotFound)
}

func TestConnectedDeviceRepository_TransitionStatus(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t)).(*connectedDeviceRepository)
	ctx := context.Background()
	device := seedDevice(t, repo, uuid.New(), entity.ProviderWhoop, entity.DeviceStatusConnected)

	ok, err := repo.TransitionStatus(ctx, device.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TransitionStatus(ctx, device.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing)
	require.NoError(t, err)
	assert.False(t, ok, "a syncing device must not be locked twice")

	stored, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusSyncing, stored.Status)
}

func TestConnectedDeviceRepository_TransitionStatus_SingleWinner(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t)).(*connectedDeviceRepository)
	device := seedDevice(t, repo, uuid.New(), entity.ProviderGarmin, entity.DeviceStatusConnected)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.TransitionStatus(context.Background(), device.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing)
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestConnectedDeviceRepository_FindStuckSyncingDevices(t *testing.T) {
	db := newTestDB(t)
	repo := NewConnectedDeviceRepository(db).(*connectedDeviceRepository)
	ctx := context.Background()

	stuck := seedDevice(t, repo, uuid.New(), entity.ProviderPolar, entity.DeviceStatusConnected)
	fresh := seedDevice(t, repo, uuid.New(), entity.ProviderPolar, entity.DeviceStatusConnected)
	for _, d := range []*entity.ConnectedDevice{stuck, fresh} {
		ok, err := repo.TransitionStatus(ctx, d.ID, entity.SyncableStatuses, entity.DeviceStatusSyncing)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.NoError(t, db.Exec("UPDATE connected_devices SET updated_at = ? WHERE id = ?",
		time.Now().Add(-time.Hour), stuck.ID).Error)

	devices, err := repo.FindStuckSyncingDevices(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, stuck.ID, devices[0].ID)
}

func TestConnectedDeviceRepository_FindDevicesByStatus_AndDelete(t *testing.T) {
	repo := NewConnectedDeviceRepository(newTestDB(t)).(*connectedDeviceRepository)
	ctx := context.Background()
	userID := uuid.New()

	connected := seedDevice(t, repo, userID, entity.ProviderStrava, entity.DeviceStatusConnected)
	seedDevice(t, repo, userID, entity.ProviderWithings, entity.DeviceStatusTokenExpired)

	devices, err := repo.FindDevicesByStatus(ctx, []entity.DeviceStatus{entity.DeviceStatusConnected, entity.DeviceStatusError})
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, connected.ID, devices[0].ID)

	none, err := repo.FindDevicesByStatus(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.DeleteDevice(ctx, connected.ID))
	assert.ErrorIs(t, repo.DeleteDevice(ctx, connected.ID), repository.ErrDeviceNotFound)
}
