package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration(t *testing.T) {
	cfg := NewConfiguration("cart-base")

	assert.NotEmpty(t, cfg.ConfigID)
	assert.Equal(t, "cart-base", cfg.PlatformID)
	assert.Empty(t, cfg.SelectedOptions)
	assert.Empty(t, cfg.MaterialSelections)
	assert.Empty(t, cfg.BuildNotes)
	assert.False(t, cfg.CreatedAt.IsZero())
	assert.True(t, cfg.UpdatedAt.Equal(cfg.CreatedAt))
}

func TestConfigurationAddOption(t *testing.T) {
	cfg := NewConfiguration("cart-base")

	withWheels := cfg.AddOption("wheels-offroad")
	assert.Equal(t, []string{"wheels-offroad"}, withWheels.SelectedOptions)
	assert.True(t, withWheels.HasOption("wheels-offroad"))

	// The receiver is untouched.
	assert.Empty(t, cfg.SelectedOptions)
	assert.False(t, cfg.HasOption("wheels-offroad"))

	// Insertion order is preserved.
	withBoth := withWheels.AddOption("suspension-lift-6")
	assert.Equal(t, []string{"wheels-offroad", "suspension-lift-6"}, withBoth.SelectedOptions)
}

func TestConfigurationAddOptionIdempotent(t *testing.T) {
	cfg := NewConfiguration("cart-base").AddOption("wheels-offroad")

	again := cfg.AddOption("wheels-offroad")

	assert.Equal(t, cfg.SelectedOptions, again.SelectedOptions)
	// A no-op does not advance UpdatedAt.
	assert.True(t, again.UpdatedAt.Equal(cfg.UpdatedAt))
}

func TestConfigurationRemoveOption(t *testing.T) {
	cfg := NewConfiguration("cart-base").
		AddOption("wheels-offroad").
		AddOption("suspension-lift-6").
		AddOption("light-bar")

	removed := cfg.RemoveOption("suspension-lift-6")
	assert.Equal(t, []string{"wheels-offroad", "light-bar"}, removed.SelectedOptions)

	// Receiver unchanged.
	assert.Equal(t, []string{"wheels-offroad", "suspension-lift-6", "light-bar"}, cfg.SelectedOptions)

	// Removing an absent option is a no-op.
	same := removed.RemoveOption("suspension-lift-6")
	assert.Equal(t, removed.SelectedOptions, same.SelectedOptions)
	assert.True(t, same.UpdatedAt.Equal(removed.UpdatedAt))
}

func TestConfigurationSetMaterial(t *testing.T) {
	cfg := NewConfiguration("cart-base")

	withBody := cfg.SetMaterial(ZoneBody, "paint-gloss-white")
	require.Len(t, withBody.MaterialSelections, 1)
	assert.Equal(t, MaterialSelection{Zone: ZoneBody, MaterialID: "paint-gloss-white"}, withBody.MaterialSelections[0])

	// Same zone replaces, never duplicates.
	repainted := withBody.SetMaterial(ZoneBody, "paint-matte-black")
	require.Len(t, repainted.MaterialSelections, 1)
	assert.Equal(t, "paint-matte-black", repainted.MaterialSelections[0].MaterialID)

	// Different zone appends.
	withSeats := repainted.SetMaterial(ZoneSeats, "vinyl-tan")
	require.Len(t, withSeats.MaterialSelections, 2)

	id, ok := withSeats.Material(ZoneSeats)
	assert.True(t, ok)
	assert.Equal(t, "vinyl-tan", id)

	_, ok = withSeats.Material(ZoneRoof)
	assert.False(t, ok)

	// Receiver unchanged throughout.
	assert.Empty(t, cfg.MaterialSelections)
}

func TestConfigurationWithNotes(t *testing.T) {
	cfg := NewConfiguration("cart-base")

	noted := cfg.WithNotes("club logo on both doors")
	assert.Equal(t, "club logo on both doors", noted.BuildNotes)
	assert.Empty(t, cfg.BuildNotes)
}

func TestValidZone(t *testing.T) {
	for _, zone := range []string{ZoneBody, ZoneSeats, ZoneRoof, ZoneMetal, ZoneGlass} {
		assert.True(t, ValidZone(zone), zone)
	}
	assert.False(t, ValidZone("hull"))
	assert.False(t, ValidZone(""))
}
