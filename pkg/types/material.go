package types

// Zones name the regions of the cart to which exactly one material may be
// assigned.
const (
	ZoneBody  = "body"
	ZoneSeats = "seats"
	ZoneRoof  = "roof"
	ZoneMetal = "metal"
	ZoneGlass = "glass"
)

// validZones is the set of recognized zone values.
var validZones = map[string]bool{
	ZoneBody:  true,
	ZoneSeats: true,
	ZoneRoof:  true,
	ZoneMetal: true,
	ZoneGlass: true,
}

// ValidZone reports whether zone is a recognized zone value.
func ValidZone(zone string) bool {
	return validZones[zone]
}

// Material is a selectable finish for a zone. Its multiplier applies to the
// zone's attributable base cost, not to the whole platform price.
type Material struct {
	MaterialID      string  `json:"material_id"`
	Zone            string  `json:"zone"`
	MaterialType    string  `json:"material_type"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Color           string  `json:"color"`
	Finish          string  `json:"finish"`
	PriceMultiplier float64 `json:"price_multiplier"` // > 0
}

// MaterialSelection pairs a zone with the material chosen for it. A
// configuration holds at most one selection per zone.
type MaterialSelection struct {
	Zone       string `json:"zone"`
	MaterialID string `json:"material_id"`
}
