package catalog

import (
	"fmt"

	"github.com/fairwayworks/cartwright/pkg/types"
)

// Issue describes one catalog-authoring problem found by Validate.
type Issue struct {
	Kind     string `json:"kind"` // self_reference, contradiction, dangling_reference, bad_price, bad_multiplier, bad_relation
	OptionID string `json:"option_id,omitempty"`
	Message  string `json:"message"`
}

// Validate checks the catalog for authoring errors: options that require or
// exclude themselves, options whose requires and excludes overlap, references
// to options absent from the catalog, negative prices, and non-positive
// material multipliers. Contradictory data is reported, never repaired; the
// engines stay total over a bad catalog regardless.
func (c *Catalog) Validate() []Issue {
	var issues []Issue

	for _, p := range c.platforms {
		if p.BasePrice < 0 {
			issues = append(issues, Issue{
				Kind:    "bad_price",
				Message: fmt.Sprintf("Platform %q has negative base price %v", p.PlatformID, p.BasePrice),
			})
		}
	}

	for _, o := range c.options {
		if o.PartPrice < 0 {
			issues = append(issues, Issue{
				Kind:     "bad_price",
				OptionID: o.OptionID,
				Message:  fmt.Sprintf("Option %q has negative part price %v", o.OptionID, o.PartPrice),
			})
		}
		if o.LaborHours < 0 {
			issues = append(issues, Issue{
				Kind:     "bad_price",
				OptionID: o.OptionID,
				Message:  fmt.Sprintf("Option %q has negative labor hours %v", o.OptionID, o.LaborHours),
			})
		}

		cons := c.constraints[o.OptionID]
		excluded := make(map[string]bool, len(cons.Excludes))
		for _, id := range cons.Excludes {
			excluded[id] = true
		}
		for _, id := range cons.Requires {
			if id == o.OptionID {
				issues = append(issues, Issue{
					Kind:     "self_reference",
					OptionID: o.OptionID,
					Message:  fmt.Sprintf("Option %q requires itself", o.OptionID),
				})
			}
			if excluded[id] {
				issues = append(issues, Issue{
					Kind:     "contradiction",
					OptionID: o.OptionID,
					Message:  fmt.Sprintf("Option %q both requires and excludes %q", o.OptionID, id),
				})
			}
			if _, ok := c.optionByID[id]; !ok {
				issues = append(issues, Issue{
					Kind:     "dangling_reference",
					OptionID: o.OptionID,
					Message:  fmt.Sprintf("Option %q requires unknown option %q", o.OptionID, id),
				})
			}
		}
		for _, id := range cons.Excludes {
			if id == o.OptionID {
				issues = append(issues, Issue{
					Kind:     "self_reference",
					OptionID: o.OptionID,
					Message:  fmt.Sprintf("Option %q excludes itself", o.OptionID),
				})
			}
			if _, ok := c.optionByID[id]; !ok {
				issues = append(issues, Issue{
					Kind:     "dangling_reference",
					OptionID: o.OptionID,
					Message:  fmt.Sprintf("Option %q excludes unknown option %q", o.OptionID, id),
				})
			}
		}
	}

	for _, rel := range c.relations {
		if rel.RelationType != types.RelationRequires && rel.RelationType != types.RelationExcludes {
			issues = append(issues, Issue{
				Kind:     "bad_relation",
				OptionID: rel.OptionID,
				Message:  fmt.Sprintf("Relation %q has unknown type %q", rel.RelationID, rel.RelationType),
			})
		}
	}

	for _, m := range c.materials {
		if m.PriceMultiplier <= 0 {
			issues = append(issues, Issue{
				Kind:    "bad_multiplier",
				Message: fmt.Sprintf("Material %q has non-positive price multiplier %v", m.MaterialID, m.PriceMultiplier),
			})
		}
	}

	return issues
}
