// Package pricing computes a deterministic price breakdown for a
// configuration against a catalog snapshot. Rates are injected by the caller,
// never hardcoded: the labor rate and the per-zone attributable base costs
// are business configuration. Price never mutates its inputs, and the total
// is additive, so selection order does not change the result.
package pricing

import (
	"fmt"

	"github.com/fairwayworks/cartwright/pkg/catalog"
	"github.com/fairwayworks/cartwright/pkg/types"
)

// Rates carries the externally configured pricing parameters.
type Rates struct {
	// LaborRate is the hourly labor rate applied to each option's labor
	// hours.
	LaborRate float64 `json:"labor_rate" yaml:"labor_rate"`

	// ZoneBaseCosts maps a zone to the base amount its material multiplier
	// applies to. A body paint multiplier scales the body-shell base cost,
	// not the whole platform price. Zones absent from the table contribute
	// nothing.
	ZoneBaseCosts map[string]float64 `json:"zone_costs" yaml:"zone_costs"`
}

// OptionLine is the priced line item for one selected option.
type OptionLine struct {
	OptionID   string  `json:"option_id"`
	Name       string  `json:"name"`
	PartPrice  float64 `json:"part_price"`
	LaborHours float64 `json:"labor_hours"`
	LaborCost  float64 `json:"labor_cost"`
	Subtotal   float64 `json:"subtotal"`
}

// MaterialLine is the priced line item for one material selection.
type MaterialLine struct {
	Zone       string  `json:"zone"`
	MaterialID string  `json:"material_id"`
	Name       string  `json:"name"`
	BaseCost   float64 `json:"base_cost"`
	Multiplier float64 `json:"multiplier"`
	Adjustment float64 `json:"adjustment"`
}

// Breakdown is the full structured price of a configuration, one line per
// selected option and material, suitable for display as-is.
type Breakdown struct {
	PlatformID         string         `json:"platform_id"`
	PlatformName       string         `json:"platform_name"`
	BasePrice          float64        `json:"base_price"`
	Options            []OptionLine   `json:"options,omitempty"`
	Materials          []MaterialLine `json:"materials,omitempty"`
	PartsSubtotal      float64        `json:"parts_subtotal"`
	LaborSubtotal      float64        `json:"labor_subtotal"`
	MaterialAdjustment float64        `json:"material_adjustment"`
	Total              float64        `json:"total"`
}

// Price computes the breakdown for cfg:
//
//	total = base price
//	      + Σ part price of selected options
//	      + Σ labor hours of selected options × labor rate
//	      + Σ zone base cost × material multiplier for selected materials
//
// Price expects a configuration that already passed validation; unknown
// platform, option, or material IDs are returned as errors wrapping the types
// sentinels rather than silently skipped.
func Price(cfg types.Configuration, cat *catalog.Catalog, rates Rates) (Breakdown, error) {
	platform, ok := cat.PlatformByID(cfg.PlatformID)
	if !ok {
		return Breakdown{}, fmt.Errorf("pricing platform %q: %w", cfg.PlatformID, types.ErrUnknownPlatform)
	}

	b := Breakdown{
		PlatformID:   platform.PlatformID,
		PlatformName: platform.Name,
		BasePrice:    platform.BasePrice,
	}

	for _, optionID := range cfg.SelectedOptions {
		opt, ok := cat.OptionByID(optionID)
		if !ok {
			return Breakdown{}, fmt.Errorf("pricing option %q: %w", optionID, types.ErrUnknownOption)
		}
		laborCost := opt.LaborHours * rates.LaborRate
		line := OptionLine{
			OptionID:   opt.OptionID,
			Name:       opt.Name,
			PartPrice:  opt.PartPrice,
			LaborHours: opt.LaborHours,
			LaborCost:  laborCost,
			Subtotal:   opt.PartPrice + laborCost,
		}
		b.Options = append(b.Options, line)
		b.PartsSubtotal += opt.PartPrice
		b.LaborSubtotal += laborCost
	}

	for _, sel := range cfg.MaterialSelections {
		mat, ok := cat.MaterialByID(sel.MaterialID)
		if !ok {
			return Breakdown{}, fmt.Errorf("pricing material %q: %w", sel.MaterialID, types.ErrUnknownMaterial)
		}
		baseCost := rates.ZoneBaseCosts[sel.Zone]
		line := MaterialLine{
			Zone:       sel.Zone,
			MaterialID: mat.MaterialID,
			Name:       mat.Name,
			BaseCost:   baseCost,
			Multiplier: mat.PriceMultiplier,
			Adjustment: baseCost * mat.PriceMultiplier,
		}
		b.Materials = append(b.Materials, line)
		b.MaterialAdjustment += line.Adjustment
	}

	b.Total = b.BasePrice + b.PartsSubtotal + b.LaborSubtotal + b.MaterialAdjustment
	return b, nil
}
