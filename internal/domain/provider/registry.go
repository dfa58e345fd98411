// Package provider holds the static catalogue of supported wearable platforms.
package provider

import (
	"sort"

	"wearsync/internal/domain/entity"
)

// PayloadFormat names the payload shape a provider returns for a data type.
type PayloadFormat string

const (
	FormatPointSeries     PayloadFormat = "point_series"      // dataset points with nanosecond bounds
	FormatDateValueSeries PayloadFormat = "date_value_series" // [{dateTime, value}] keyed by resource name
	FormatDailySummary    PayloadFormat = "daily_summary"     // one scored record per day
	FormatSampleList      PayloadFormat = "sample_list"       // timestamped samples
	FormatWorkoutList     PayloadFormat = "workout_list"      // workout sessions
)

// Provider is the registry entry of one platform.
type Provider struct {
	ID          entity.ProviderID
	DisplayName string
	DeviceType  string
	AuthURL     string
	TokenURL    string
	Scopes      []string

	// Extra query parameters for the authorize URL.
	AuthParams map[string]string

	// Token response field carrying the provider account id. Dotted paths walk nested objects.
	UserIDField string

	// Data types this provider can deliver and the payload shape of each.
	Formats map[entity.DataType]PayloadFormat

	// Unit used by the provider when the payload does not say.
	SourceUnits map[entity.DataType]string
}

// Supports reports whether the provider delivers dataType.
func (p *Provider) Supports(dataType entity.DataType) bool {
	_, ok := p.Formats[dataType]

	return ok
}

// FormatFor returns the payload shape used for dataType.
func (p *Provider) FormatFor(dataType entity.DataType) (PayloadFormat, bool) {
	f, ok := p.Formats[dataType]

	return f, ok
}

// SourceUnit returns the implicit unit for dataType, if any.
func (p *Provider) SourceUnit(dataType entity.DataType) string {
	return p.SourceUnits[dataType]
}

// DataTypes lists the supported data types in canonical order.
func (p *Provider) DataTypes() []entity.DataType {
	types := make([]entity.DataType, 0, len(p.Formats))
	for _, dt := range entity.AllDataTypes {
		if p.Supports(dt) {
			types = append(types, dt)
		}
	}

	return types
}

// FilterSupported keeps the requested types the provider supports, dropping duplicates.
func (p *Provider) FilterSupported(requested []entity.DataType) []entity.DataType {
	seen := make(map[entity.DataType]struct{}, len(requested))
	out := make([]entity.DataType, 0, len(requested))
	for _, dt := range requested {
		if _, dup := seen[dt]; dup || !p.Supports(dt) {
			continue
		}
		seen[dt] = struct{}{}
		out = append(out, dt)
	}

	return out
}

// Lookup returns the provider registered under id.
func Lookup(id entity.ProviderID) (*Provider, bool) {
	p, ok := registry[id]

	return p, ok
}

// All returns every registered provider sorted by id.
func All() []*Provider {
	out := make([]*Provider, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// IsSupported reports whether id names a registered provider.
func IsSupported(id entity.ProviderID) bool {
	_, ok := registry[id]

	return ok
}
