package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwayworks/cartwright/pkg/catalog"
	"github.com/fairwayworks/cartwright/pkg/types"
)

func testCatalog() *catalog.Catalog {
	platforms := []types.Platform{
		{PlatformID: "cart-base", Name: "Fairway Base", BasePrice: 8999},
	}
	options := []types.Option{
		{OptionID: "wheels-offroad", Name: "Off-Road Wheel Set", PartPrice: 0, LaborHours: 2},
		{OptionID: "suspension-lift-6", Name: "6-Inch Lift Kit", PartPrice: 2400, LaborHours: 6, Requires: []string{"wheels-offroad"}},
		{OptionID: "light-bar", Name: "LED Light Bar", PartPrice: 450, LaborHours: 1.5},
	}
	materials := []types.Material{
		{MaterialID: "paint-gloss-white", Zone: types.ZoneBody, Name: "Gloss White", PriceMultiplier: 1.0},
		{MaterialID: "paint-pearl", Zone: types.ZoneBody, Name: "Pearlescent", PriceMultiplier: 1.6},
		{MaterialID: "vinyl-tan", Zone: types.ZoneSeats, Name: "Tan Vinyl", PriceMultiplier: 1.25},
	}
	return catalog.New(platforms, options, materials, nil)
}

func testRates() Rates {
	return Rates{
		LaborRate: 85,
		ZoneBaseCosts: map[string]float64{
			types.ZoneBody:  1200,
			types.ZoneSeats: 800,
		},
	}
}

func TestPriceEmptyConfiguration(t *testing.T) {
	cfg := types.NewConfiguration("cart-base")

	b, err := Price(cfg, testCatalog(), testRates())
	require.NoError(t, err)

	assert.Equal(t, 8999.0, b.BasePrice)
	assert.Empty(t, b.Options)
	assert.Empty(t, b.Materials)
	assert.Equal(t, 8999.0, b.Total)
}

func TestPriceOffroadBuild(t *testing.T) {
	cfg := types.NewConfiguration("cart-base").
		AddOption("wheels-offroad").
		AddOption("suspension-lift-6")

	b, err := Price(cfg, testCatalog(), testRates())
	require.NoError(t, err)

	require.Len(t, b.Options, 2)

	wheels := b.Options[0]
	assert.Equal(t, "wheels-offroad", wheels.OptionID)
	assert.Equal(t, 0.0, wheels.PartPrice)
	assert.Equal(t, 170.0, wheels.LaborCost) // 2h × 85

	lift := b.Options[1]
	assert.Equal(t, "suspension-lift-6", lift.OptionID)
	assert.Equal(t, 2400.0, lift.PartPrice)
	assert.Equal(t, 510.0, lift.LaborCost) // 6h × 85
	assert.Equal(t, 2910.0, lift.Subtotal)

	assert.Equal(t, 2400.0, b.PartsSubtotal)
	assert.Equal(t, 680.0, b.LaborSubtotal)
	// base + parts + labor for both options, no materials.
	assert.Equal(t, 8999.0+2400.0+680.0, b.Total)
}

func TestPriceMaterialAdjustment(t *testing.T) {
	cfg := types.NewConfiguration("cart-base").
		SetMaterial(types.ZoneBody, "paint-pearl").
		SetMaterial(types.ZoneSeats, "vinyl-tan")

	b, err := Price(cfg, testCatalog(), testRates())
	require.NoError(t, err)

	require.Len(t, b.Materials, 2)

	body := b.Materials[0]
	assert.Equal(t, types.ZoneBody, body.Zone)
	assert.Equal(t, 1200.0, body.BaseCost)
	assert.Equal(t, 1.6, body.Multiplier)
	assert.Equal(t, 1920.0, body.Adjustment) // 1200 × 1.6

	seats := b.Materials[1]
	assert.Equal(t, 1000.0, seats.Adjustment) // 800 × 1.25

	assert.Equal(t, 2920.0, b.MaterialAdjustment)
	assert.Equal(t, 8999.0+2920.0, b.Total)
}

func TestPriceZoneWithoutBaseCost(t *testing.T) {
	// No attributable base configured for the zone: the multiplier applies
	// to zero and the line contributes nothing.
	cfg := types.NewConfiguration("cart-base").SetMaterial(types.ZoneBody, "paint-pearl")
	rates := Rates{LaborRate: 85}

	b, err := Price(cfg, testCatalog(), rates)
	require.NoError(t, err)
	require.Len(t, b.Materials, 1)
	assert.Equal(t, 0.0, b.Materials[0].Adjustment)
	assert.Equal(t, 8999.0, b.Total)
}

func TestPriceOrderIndependent(t *testing.T) {
	cat := testCatalog()
	rates := testRates()

	forward := types.NewConfiguration("cart-base").
		AddOption("wheels-offroad").
		AddOption("suspension-lift-6").
		AddOption("light-bar")
	backward := types.NewConfiguration("cart-base").
		AddOption("light-bar").
		AddOption("wheels-offroad").
		AddOption("suspension-lift-6")

	fb, err := Price(forward, cat, rates)
	require.NoError(t, err)
	bb, err := Price(backward, cat, rates)
	require.NoError(t, err)

	assert.Equal(t, fb.Total, bb.Total)
	assert.Equal(t, fb.PartsSubtotal, bb.PartsSubtotal)
	assert.Equal(t, fb.LaborSubtotal, bb.LaborSubtotal)
}

func TestPriceDoesNotMutateInputs(t *testing.T) {
	cfg := types.NewConfiguration("cart-base").AddOption("light-bar")
	before := append([]string(nil), cfg.SelectedOptions...)
	updatedAt := cfg.UpdatedAt

	_, err := Price(cfg, testCatalog(), testRates())
	require.NoError(t, err)

	assert.Equal(t, before, cfg.SelectedOptions)
	assert.True(t, cfg.UpdatedAt.Equal(updatedAt))
}

func TestPriceUnknownIDs(t *testing.T) {
	cat := testCatalog()
	rates := testRates()

	tests := []struct {
		name    string
		cfg     types.Configuration
		wantErr error
	}{
		{
			name:    "unknown platform",
			cfg:     types.NewConfiguration("hovercraft"),
			wantErr: types.ErrUnknownPlatform,
		},
		{
			name:    "unknown option",
			cfg:     types.NewConfiguration("cart-base").AddOption("ghost-option"),
			wantErr: types.ErrUnknownOption,
		},
		{
			name:    "unknown material",
			cfg:     types.NewConfiguration("cart-base").SetMaterial(types.ZoneBody, "chrome-wrap"),
			wantErr: types.ErrUnknownMaterial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Price(tt.cfg, cat, rates)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
