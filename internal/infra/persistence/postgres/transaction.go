// Package postgres implements the domain repositories with GORM on PostgreSQL.
package postgres

import (
	"context"

	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the Fx provider of repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. An error from fn rolls back and is
// returned unchanged; a failure to begin or commit becomes ErrTransactionFailed.
// A panic in fn rolls back and is re-raised by gorm.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewConnectedDeviceRepository() repository.ConnectedDeviceRepository {
	return NewConnectedDeviceRepository(r.tx)
}

func (r txRepositories) NewSyncHistoryRepository() repository.SyncHistoryRepository {
	return NewSyncHistoryRepository(r.tx)
}

func (r txRepositories) NewHealthDataRepository() repository.HealthDataRepository {
	return NewHealthDataRepository(r.tx)
}

func (r txRepositories) NewSyncPreferencesRepository() repository.SyncPreferencesRepository {
	return NewSyncPreferencesRepository(r.tx)
}
