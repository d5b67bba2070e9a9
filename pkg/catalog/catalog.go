// Package catalog aggregates the platform, option, and material data a
// configuration is validated and priced against, and builds the authoritative
// requires/excludes adjacency index the rules engine depends on.
package catalog

import "github.com/fairwayworks/cartwright/pkg/types"

// Constraints holds the merged requirement and exclusion sets for one option.
// Order is deterministic: inline catalog order first, relation-table rows
// after, duplicates dropped.
type Constraints struct {
	Requires []string
	Excludes []string
}

// Catalog is an immutable snapshot of the option catalog. Build one with New
// per catalog load; the rules and pricing engines read it and never write it.
type Catalog struct {
	platforms []types.Platform
	options   []types.Option
	materials []types.Material
	relations []types.OptionRelation

	platformByID map[string]types.Platform
	optionByID   map[string]types.Option
	materialByID map[string]types.Material
	constraints  map[string]Constraints
}

// New builds a catalog snapshot. Inline Requires/Excludes lists and
// OptionRelation rows describe the same relationship in two storage shapes;
// New reconciles both into one adjacency index so the engines depend on
// neither representation.
func New(platforms []types.Platform, options []types.Option, materials []types.Material, relations []types.OptionRelation) *Catalog {
	c := &Catalog{
		platforms:    platforms,
		options:      options,
		materials:    materials,
		relations:    relations,
		platformByID: make(map[string]types.Platform, len(platforms)),
		optionByID:   make(map[string]types.Option, len(options)),
		materialByID: make(map[string]types.Material, len(materials)),
		constraints:  make(map[string]Constraints, len(options)),
	}
	for _, p := range platforms {
		c.platformByID[p.PlatformID] = p
	}
	for _, m := range materials {
		c.materialByID[m.MaterialID] = m
	}
	for _, o := range options {
		c.optionByID[o.OptionID] = o
		c.constraints[o.OptionID] = Constraints{
			Requires: appendUnique(nil, o.Requires...),
			Excludes: appendUnique(nil, o.Excludes...),
		}
	}
	for _, rel := range relations {
		cons := c.constraints[rel.OptionID]
		switch rel.RelationType {
		case types.RelationRequires:
			cons.Requires = appendUnique(cons.Requires, rel.RelatedID)
		case types.RelationExcludes:
			cons.Excludes = appendUnique(cons.Excludes, rel.RelatedID)
		default:
			// Unknown relation types are authoring errors reported by
			// Validate; they contribute nothing to the index.
			continue
		}
		c.constraints[rel.OptionID] = cons
	}
	return c
}

// appendUnique appends each id to list unless already present.
func appendUnique(list []string, ids ...string) []string {
	for _, id := range ids {
		seen := false
		for _, have := range list {
			if have == id {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, id)
		}
	}
	return list
}

// Platforms returns the platforms in catalog order.
func (c *Catalog) Platforms() []types.Platform { return c.platforms }

// Options returns the options in catalog order.
func (c *Catalog) Options() []types.Option { return c.options }

// Materials returns the materials in catalog order.
func (c *Catalog) Materials() []types.Material { return c.materials }

// Relations returns the relation-table rows the catalog was built from.
func (c *Catalog) Relations() []types.OptionRelation { return c.relations }

// PlatformByID looks up a platform by ID.
func (c *Catalog) PlatformByID(id string) (types.Platform, bool) {
	p, ok := c.platformByID[id]
	return p, ok
}

// OptionByID looks up an option by ID.
func (c *Catalog) OptionByID(id string) (types.Option, bool) {
	o, ok := c.optionByID[id]
	return o, ok
}

// MaterialByID looks up a material by ID.
func (c *Catalog) MaterialByID(id string) (types.Material, bool) {
	m, ok := c.materialByID[id]
	return m, ok
}

// MaterialsForZone returns the materials available for a zone, in catalog
// order.
func (c *Catalog) MaterialsForZone(zone string) []types.Material {
	var out []types.Material
	for _, m := range c.materials {
		if m.Zone == zone {
			out = append(out, m)
		}
	}
	return out
}

// ConstraintsFor returns the merged requirement and exclusion sets for an
// option. Unknown IDs return empty constraints.
func (c *Catalog) ConstraintsFor(optionID string) Constraints {
	return c.constraints[optionID]
}

// OptionName resolves an option's display name, falling back to the raw ID
// when the option is not in the catalog. The fallback keeps validation
// messages useful on inconsistent data instead of failing.
func (c *Catalog) OptionName(id string) string {
	if o, ok := c.optionByID[id]; ok {
		return o.Name
	}
	return id
}
