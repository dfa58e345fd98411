package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSyncFrequencyMinutes = 60
	DefaultBackfillDays         = 7

	MinSyncFrequencyMinutes = 5
	MaxSyncFrequencyMinutes = 1440
	MinBackfillDays         = 1
	MaxBackfillDays         = 90
)

// SyncPreferences is the per-device sync policy.
type SyncPreferences struct {
	DeviceID             uuid.UUID  `json:"device_id"`
	AutoSyncEnabled      bool       `json:"auto_sync_enabled"`
	SyncFrequencyMinutes int        `json:"sync_frequency_minutes"`
	DataTypesEnabled     []DataType `json:"data_types_enabled"`
	SyncOnlyWifi         bool       `json:"sync_only_wifi"`
	NotifyOnSync         bool       `json:"notify_on_sync"`
	NotifyOnError        bool       `json:"notify_on_error"`
	BackfillDays         int        `json:"backfill_days"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// DefaultSyncPreferences returns the policy created when a device is first connected.
func DefaultSyncPreferences(deviceID uuid.UUID, dataTypes []DataType) *SyncPreferences {
	enabled := make([]DataType, len(dataTypes))
	copy(enabled, dataTypes)

	return &SyncPreferences{
		DeviceID:             deviceID,
		AutoSyncEnabled:      true,
		SyncFrequencyMinutes: DefaultSyncFrequencyMinutes,
		DataTypesEnabled:     enabled,
		NotifyOnError:        true,
		BackfillDays:         DefaultBackfillDays,
	}
}

// SyncPreferencesUpdate is a partial update; nil fields are left untouched.
type SyncPreferencesUpdate struct {
	AutoSyncEnabled      *bool
	SyncFrequencyMinutes *int
	DataTypesEnabled     *[]DataType
	SyncOnlyWifi         *bool
	NotifyOnSync         *bool
	NotifyOnError        *bool
	BackfillDays         *int
}

// Apply merges the non-nil fields of u into p.
func (u SyncPreferencesUpdate) Apply(p *SyncPreferences) {
	if u.AutoSyncEnabled != nil {
		p.AutoSyncEnabled = *u.AutoSyncEnabled
	}
	if u.SyncFrequencyMinutes != nil {
		p.SyncFrequencyMinutes = *u.SyncFrequencyMinutes
	}
	if u.DataTypesEnabled != nil {
		p.DataTypesEnabled = append([]DataType(nil), (*u.DataTypesEnabled)...)
	}
	if u.SyncOnlyWifi != nil {
		p.SyncOnlyWifi = *u.SyncOnlyWifi
	}
	if u.NotifyOnSync != nil {
		p.NotifyOnSync = *u.NotifyOnSync
	}
	if u.NotifyOnError != nil {
		p.NotifyOnError = *u.NotifyOnError
	}
	if u.BackfillDays != nil {
		p.BackfillDays = *u.BackfillDays
	}
}

// IsDue reports whether an automatic sync should run at now.
func (p *SyncPreferences) IsDue(lastSyncAt *time.Time, now time.Time) bool {
	if p == nil || !p.AutoSyncEnabled {
		return false
	}
	if lastSyncAt == nil {
		return true
	}

	return !now.Before(lastSyncAt.Add(time.Duration(p.SyncFrequencyMinutes) * time.Minute))
}
