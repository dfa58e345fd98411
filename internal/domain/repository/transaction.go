package repository

import "context"

// TransactionManager lets usecases group repository writes atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories that share the caller's transaction.
type RepositoryFactory interface {
	NewConnectedDeviceRepository() ConnectedDeviceRepository
	NewSyncHistoryRepository() SyncHistoryRepository
	NewHealthDataRepository() HealthDataRepository
	NewSyncPreferencesRepository() SyncPreferencesRepository
}
