package service

import (
	"context"
)

// SyncRequestedEvent asks the sync worker to run a batch sync
type SyncRequestedEvent struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	UserID    string   `json:"user_id"`
	DeviceIDs []string `json:"device_ids"`
	DataTypes []string `json:"data_types,omitempty"`
	SyncType  string   `json:"sync_type"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncRequested publishes a sync request for async processing
	PublishSyncRequested(ctx context.Context, event *SyncRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
