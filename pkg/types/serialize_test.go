package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationSerializeRoundTrip(t *testing.T) {
	cfg := NewConfiguration("cart-base").
		AddOption("wheels-offroad").
		AddOption("suspension-lift-6").
		SetMaterial(ZoneBody, "paint-gloss-white").
		WithNotes("deliver before member-guest weekend")

	data, err := cfg.Serialize()
	require.NoError(t, err)

	got, err := DeserializeConfiguration(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.ConfigID, got.ConfigID)
	assert.Equal(t, cfg.PlatformID, got.PlatformID)
	assert.Equal(t, cfg.SelectedOptions, got.SelectedOptions)
	assert.Equal(t, cfg.MaterialSelections, got.MaterialSelections)
	assert.Equal(t, cfg.BuildNotes, got.BuildNotes)
	// Timestamps reconstruct to the original instant, not an opaque string.
	assert.True(t, got.CreatedAt.Equal(cfg.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(cfg.UpdatedAt))
}

func TestConfigurationSerializeRoundTripEmpty(t *testing.T) {
	cfg := NewConfiguration("cart-base")

	data, err := cfg.Serialize()
	require.NoError(t, err)

	got, err := DeserializeConfiguration(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.ConfigID, got.ConfigID)
	assert.Empty(t, got.SelectedOptions)
	assert.Empty(t, got.MaterialSelections)
	assert.True(t, got.CreatedAt.Equal(cfg.CreatedAt))
}

func TestDeserializeConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not JSON", data: "not json"},
		{name: "bad created_at", data: `{"config_id":"c1","platform_id":"p1","created_at":"yesterday","updated_at":"2026-01-02T03:04:05Z"}`},
		{name: "bad updated_at", data: `{"config_id":"c1","platform_id":"p1","created_at":"2026-01-02T03:04:05Z","updated_at":"later"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeserializeConfiguration([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
