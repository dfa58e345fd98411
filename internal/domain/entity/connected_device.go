package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the lifecycle state of a connected device.
type DeviceStatus string

const (
	DeviceStatusDisconnected DeviceStatus = "disconnected"
	DeviceStatusPendingAuth  DeviceStatus = "pending_auth"
	DeviceStatusConnected    DeviceStatus = "connected"
	DeviceStatusSyncing      DeviceStatus = "syncing"
	DeviceStatusError        DeviceStatus = "error"
	DeviceStatusTokenExpired DeviceStatus = "token_expired"
)

var deviceTransitions = map[DeviceStatus][]DeviceStatus{
	DeviceStatusDisconnected: {DeviceStatusPendingAuth, DeviceStatusConnected},
	DeviceStatusPendingAuth:  {DeviceStatusConnected, DeviceStatusPendingAuth},
	DeviceStatusConnected:    {DeviceStatusSyncing, DeviceStatusPendingAuth},
	DeviceStatusError:        {DeviceStatusSyncing, DeviceStatusPendingAuth},
	DeviceStatusSyncing:      {DeviceStatusConnected, DeviceStatusError, DeviceStatusTokenExpired},
	DeviceStatusTokenExpired: {DeviceStatusPendingAuth, DeviceStatusConnected},
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
// Disconnecting is always allowed.
func (s DeviceStatus) CanTransitionTo(next DeviceStatus) bool {
	if next == DeviceStatusDisconnected {
		return true
	}
	for _, allowed := range deviceTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CanStartSync reports whether a sync may take the device lock from this state.
func (s DeviceStatus) CanStartSync() bool {
	return s == DeviceStatusConnected || s == DeviceStatusError
}

// SyncableStatuses are the states a sync lock may be acquired from.
var SyncableStatuses = []DeviceStatus{DeviceStatusConnected, DeviceStatusError}

// ConnectedDevice is a user's link to one wearable provider account.
type ConnectedDevice struct {
	ID             uuid.UUID      `json:"id"`               // Unique identifier of the device link.
	UserID         uuid.UUID      `json:"user_id"`          // Owner of the link.
	Provider       ProviderID     `json:"provider"`         // Provider this device is linked to.
	ProviderUserID string         `json:"provider_user_id"` // Account id on the provider side.
	DisplayName    string         `json:"display_name"`     // Human readable name, defaults to the provider name.
	DeviceType     string         `json:"device_type"`      // Kind of hardware (watch, ring, band, scale, app).
	Status         DeviceStatus   `json:"status"`           // Current lifecycle state.
	Scopes         []string       `json:"scopes"`           // Scopes granted by the provider.
	LastSyncAt     *time.Time     `json:"last_sync_at"`     // Completion time of the last successful sync.
	LastError      string         `json:"last_error"`       // Message of the last failure, empty after a success.
	ErrorCount     int            `json:"error_count"`      // Consecutive failures, reset by a successful sync.
	Metadata       map[string]any `json:"metadata"`         // Opaque provider extras.
	ConnectedAt    *time.Time     `json:"connected_at"`     // Time of the last successful OAuth callback.
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Sealed provider credential, never serialized.
	Credential     []byte     `json:"-"`
	TokenExpiresAt *time.Time `json:"-"`
}

// OwnedBy reports whether the device belongs to userID.
func (d *ConnectedDevice) OwnedBy(userID uuid.UUID) bool {
	return d != nil && d.UserID == userID
}

// ProviderCredential is the decrypted OAuth token set of a device.
type ProviderCredential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
}
