package provider

import (
	"testing"

	"wearsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownProviders(t *testing.T) {
	for _, id := range []entity.ProviderID{
		entity.ProviderGoogleFit,
		entity.ProviderFitbit,
		entity.ProviderGarmin,
		entity.ProviderOura,
		entity.ProviderWhoop,
		entity.ProviderStrava,
		entity.ProviderWithings,
		entity.ProviderPolar,
	} {
		t.Run(string(id), func(t *testing.T) {
			p, ok := Lookup(id)
			require.True(t, ok)
			assert.Equal(t, id, p.ID)
			assert.NotEmpty(t, p.DisplayName)
			assert.NotEmpty(t, p.AuthURL)
			assert.NotEmpty(t, p.TokenURL)
			assert.NotEmpty(t, p.DataTypes())
		})
	}
}

func TestLookup_UnknownProvider(t *testing.T) {
	_, ok := Lookup("myspace")
	assert.False(t, ok)
	assert.False(t, IsSupported("myspace"))
}

func TestAll_SortedByID(t *testing.T) {
	all := All()
	require.Len(t, all, len(registry))
	for i := 1; i < len(all); i++ {
		assert.Less(t, string(all[i-1].ID), string(all[i].ID))
	}
}

func TestProvider_FilterSupported(t *testing.T) {
	p, _ := Lookup(entity.ProviderStrava)

	got := p.FilterSupported([]entity.DataType{
		entity.DataTypeSteps,
		entity.DataTypeWorkout,
		entity.DataTypeWorkout,
	})

	assert.Equal(t, []entity.DataType{entity.DataTypeWorkout}, got)
}

func TestProvider_DataTypesInCanonicalOrder(t *testing.T) {
	p, _ := Lookup(entity.ProviderGoogleFit)

	types := p.DataTypes()
	require.NotEmpty(t, types)
	assert.Equal(t, entity.DataTypeSteps, types[0])
	assert.Equal(t, entity.DataTypeWorkout, types[len(types)-1])
}

func TestCatalog_EveryFormatIsKnown(t *testing.T) {
	known := map[PayloadFormat]bool{
		FormatPointSeries:     true,
		FormatDateValueSeries: true,
		FormatDailySummary:    true,
		FormatSampleList:      true,
		FormatWorkoutList:     true,
	}

	for _, p := range All() {
		for dt, f := range p.Formats {
			assert.True(t, dt.IsValid(), "%s: unknown data type %s", p.ID, dt)
			assert.True(t, known[f], "%s: unknown format %s", p.ID, f)
			if dt == entity.DataTypeWorkout {
				assert.Equal(t, FormatWorkoutList, f, p.ID)
			}
		}
	}
}
