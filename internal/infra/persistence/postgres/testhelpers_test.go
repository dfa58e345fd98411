package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
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

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedDevice(t *testing.T, repo *connectedDeviceRepository, userID uuid.UUID, provider entity.ProviderID, status entity.DeviceStatus) *entity.ConnectedDevice {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	device := &entity.ConnectedDevice{
		UserID:      userID,
		Provider:    provider,
		DisplayName: string(provider),
		DeviceType:  "watch",
		Status:      status,
		Scopes:      []string{"activity"},
		Credential:  []byte("sealed"),
		ConnectedAt: &now,
	}
	require.NoError(t, repo.UpsertDevice(context.Background(), device))

	return device
}
