package types

// Option categories. The set is open: catalogs may introduce categories
// beyond these without code changes.
const (
	CategorySeating     = "seating"
	CategoryRoof        = "roof"
	CategoryWheels      = "wheels"
	CategoryLighting    = "lighting"
	CategoryStorage     = "storage"
	CategoryElectronics = "electronics"
	CategorySuspension  = "suspension"
	CategoryFabrication = "fabrication"
)

// Option is a selectable add-on carrying cost, labor, and dependency
// constraints against other options.
type Option struct {
	OptionID    string   `json:"option_id"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PartPrice   float64  `json:"part_price"`  // non-negative
	LaborHours  float64  `json:"labor_hours"` // non-negative
	Requires    []string `json:"requires,omitempty"`
	Excludes    []string `json:"excludes,omitempty"`
	AssetRef    string   `json:"asset_ref"`
}

// Relation types for OptionRelation rows.
const (
	RelationRequires = "requires"
	RelationExcludes = "excludes"
)

// OptionRelation is the relation-table representation of a requires/excludes
// edge. It carries an authoring reason for display but is reconciled into the
// option adjacency index at catalog load; the rules engine never reads it
// directly.
type OptionRelation struct {
	RelationID   string `json:"relation_id"`
	OptionID     string `json:"option_id"`
	RelatedID    string `json:"related_id"`
	RelationType string `json:"relation_type"` // requires or excludes
	Reason       string `json:"reason,omitempty"`
}
