package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwayworks/cartwright/pkg/types"
)

func testPlatforms() []types.Platform {
	return []types.Platform{
		{PlatformID: "cart-base", Name: "Fairway Base", BasePrice: 8999},
	}
}

func testOptions() []types.Option {
	return []types.Option{
		{OptionID: "wheels-offroad", Category: types.CategoryWheels, Name: "Off-Road Wheel Set"},
		{
			OptionID: "suspension-lift-6",
			Category: types.CategorySuspension,
			Name:     "6-Inch Lift Kit",
			Requires: []string{"wheels-offroad"},
		},
		{
			OptionID: "seat-captain",
			Category: types.CategorySeating,
			Name:     "Captain Seats",
			Excludes: []string{"seat-standard"},
		},
		{
			OptionID: "seat-standard",
			Category: types.CategorySeating,
			Name:     "Standard Bench Seats",
			Excludes: []string{"seat-captain"},
		},
	}
}

func testMaterials() []types.Material {
	return []types.Material{
		{MaterialID: "paint-gloss-white", Zone: types.ZoneBody, Name: "Gloss White", PriceMultiplier: 1.0},
		{MaterialID: "paint-pearl", Zone: types.ZoneBody, Name: "Pearlescent", PriceMultiplier: 1.6},
		{MaterialID: "vinyl-tan", Zone: types.ZoneSeats, Name: "Tan Vinyl", PriceMultiplier: 1.0},
	}
}

func TestNewBuildsLookups(t *testing.T) {
	cat := New(testPlatforms(), testOptions(), testMaterials(), nil)

	p, ok := cat.PlatformByID("cart-base")
	require.True(t, ok)
	assert.Equal(t, "Fairway Base", p.Name)

	o, ok := cat.OptionByID("suspension-lift-6")
	require.True(t, ok)
	assert.Equal(t, "6-Inch Lift Kit", o.Name)

	m, ok := cat.MaterialByID("vinyl-tan")
	require.True(t, ok)
	assert.Equal(t, types.ZoneSeats, m.Zone)

	_, ok = cat.OptionByID("nonexistent")
	assert.False(t, ok)
}

func TestConstraintsMergeInlineAndRelations(t *testing.T) {
	relations := []types.OptionRelation{
		// Duplicate of the inline requirement: must not double up.
		{RelationID: "r1", OptionID: "suspension-lift-6", RelatedID: "wheels-offroad", RelationType: types.RelationRequires},
		// New edge only present in the relation table.
		{RelationID: "r2", OptionID: "suspension-lift-6", RelatedID: "seat-standard", RelationType: types.RelationExcludes, Reason: "bench mount interferes with the lift frame"},
		// Unknown relation type contributes nothing to the index.
		{RelationID: "r3", OptionID: "wheels-offroad", RelatedID: "seat-captain", RelationType: "suggests"},
	}
	cat := New(testPlatforms(), testOptions(), testMaterials(), relations)

	cons := cat.ConstraintsFor("suspension-lift-6")
	assert.Equal(t, []string{"wheels-offroad"}, cons.Requires)
	assert.Equal(t, []string{"seat-standard"}, cons.Excludes)

	assert.Empty(t, cat.ConstraintsFor("wheels-offroad").Excludes)
	assert.Empty(t, cat.ConstraintsFor("nonexistent").Requires)
}

func TestOptionNameFallback(t *testing.T) {
	cat := New(testPlatforms(), testOptions(), testMaterials(), nil)

	assert.Equal(t, "Off-Road Wheel Set", cat.OptionName("wheels-offroad"))
	// Unknown IDs resolve to the raw ID, keeping messages useful on
	// inconsistent data.
	assert.Equal(t, "turbo-charger", cat.OptionName("turbo-charger"))
}

func TestMaterialsForZone(t *testing.T) {
	cat := New(testPlatforms(), testOptions(), testMaterials(), nil)

	body := cat.MaterialsForZone(types.ZoneBody)
	require.Len(t, body, 2)
	assert.Equal(t, "paint-gloss-white", body[0].MaterialID)
	assert.Equal(t, "paint-pearl", body[1].MaterialID)

	assert.Empty(t, cat.MaterialsForZone(types.ZoneGlass))
}
