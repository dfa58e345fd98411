package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncType tells what started a sync.
type SyncType string

const (
	SyncTypeManual    SyncType = "manual"
	SyncTypeScheduled SyncType = "scheduled"
	SyncTypeAuxiliary SyncType = "auxiliary"
	SyncTypeWatchdog  SyncType = "watchdog"
)

// SyncStatus is the outcome recorded in sync history.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
)

// DeviceSyncHistory is an append-only record of one sync attempt.
type DeviceSyncHistory struct {
	ID              uuid.UUID  `json:"id"`
	DeviceID        uuid.UUID  `json:"device_id"`
	UserID          uuid.UUID  `json:"user_id"`
	SyncType        SyncType   `json:"sync_type"`
	Status          SyncStatus `json:"status"`
	DataTypesSynced []DataType `json:"data_types_synced"`
	RecordsFetched  int        `json:"records_fetched"`
	RecordsStored   int        `json:"records_stored"`
	DurationMs      int64      `json:"duration_ms"`
	ErrorMessage    string     `json:"error_message,omitempty"`
	ErrorCode       string     `json:"error_code,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     time.Time  `json:"completed_at"`
}

// Succeeded reports whether the attempt stored data.
func (h *DeviceSyncHistory) Succeeded() bool {
	return h.Status == SyncStatusSuccess || h.Status == SyncStatusPartial
}
