package service

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"
)

// SyncRequest is one call to the remote execute-sync gateway.
type SyncRequest struct {
	DeviceID       string
	Provider       entity.ProviderID
	ProviderUserID string
	AccessToken    string
	DataTypes      []entity.DataType
	Since          time.Time
	Until          time.Time
}

// DataTypePayload is the raw provider answer for one data type.
// A non-empty ErrorCode means this data type failed while others may have succeeded.
type DataTypePayload struct {
	DataType     entity.DataType
	Payload      []byte
	Count        int
	ErrorCode    string
	ErrorMessage string
}

// SyncResult is a successful gateway response.
type SyncResult struct {
	Payloads []DataTypePayload
}

// SyncGateway fetches provider data through the remote execute-sync endpoint.
// Failures are returned as *errors.SyncFailure carrying the provider's code and message.
type SyncGateway interface {
	ExecuteSync(ctx context.Context, req *SyncRequest) (*SyncResult, error)
}
