// First-attach seeding of the built-in demo catalog.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fairwayworks/cartwright/pkg/types"
)

// seedOption describes an option to seed on first startup.
type seedOption struct {
	id         string
	category   string
	name       string
	desc       string
	partPrice  float64
	laborHours float64
	requires   []string
	excludes   []string
}

// seedMaterial describes a material to seed on first startup.
type seedMaterial struct {
	id         string
	zone       string
	matType    string
	name       string
	color      string
	finish     string
	multiplier float64
}

// seedRelation describes an authored relation row to seed alongside the
// inline edges, so both constraint sources are exercised from first run.
type seedRelation struct {
	optionID  string
	relatedID string
	relType   string
	reason    string
}

var seedPlatform = types.Platform{
	PlatformID:  "cart-base",
	Name:        "Fairway Base",
	Description: "Two-seat electric cart platform, 48V drivetrain",
	BasePrice:   8999,
}

var seedOptions = []seedOption{
	{
		id: "wheels-street", category: types.CategoryWheels,
		name: "Street Wheel Package", desc: "12-inch alloy wheels with turf tires",
		partPrice: 900, laborHours: 2,
	},
	{
		id: "wheels-offroad", category: types.CategoryWheels,
		name: "Off-Road Wheel Package", desc: "14-inch wheels with all-terrain tires",
		partPrice: 1350, laborHours: 2.5,
		excludes: []string{"wheels-street"},
	},
	{
		id: "suspension-lift-6", category: types.CategorySuspension,
		name: "6-Inch Lift Kit", desc: "Heavy-duty A-arm lift, requires off-road clearance",
		partPrice: 2400, laborHours: 6,
		requires: []string{"wheels-offroad"},
	},
	{
		id: "seat-captain", category: types.CategorySeating,
		name: "Captain's Chairs", desc: "Individual bucket seats with armrests",
		partPrice: 1600, laborHours: 3,
		excludes: []string{"seat-standard"},
	},
	{
		id: "seat-standard", category: types.CategorySeating,
		name: "Standard Bench Seat", desc: "Two-passenger bench seat",
		partPrice: 650, laborHours: 1.5,
		excludes: []string{"seat-captain"},
	},
	{
		id: "light-bar", category: types.CategoryLighting,
		name: "LED Light Bar", desc: "Roof-mounted 30-inch LED bar",
		partPrice: 450, laborHours: 1,
	},
	{
		id: "stereo-premium", category: types.CategoryElectronics,
		name: "Premium Stereo", desc: "Marine-grade amplifier and four speakers",
		partPrice: 1200, laborHours: 2.5,
	},
	{
		id: "cooler-rack", category: types.CategoryStorage,
		name: "Rear Cooler Rack", desc: "Bolt-on rear rack with cooler tie-downs",
		partPrice: 380, laborHours: 1,
	},
}

// seedRelations carries edges authored through the relation table rather than
// inline on the option, with reasons for display.
var seedRelations = []seedRelation{
	{
		optionID: "stereo-premium", relatedID: "seat-captain",
		relType: types.RelationRequires,
		reason:  "Speaker pods mount in the captain's chair bases",
	},
}

var seedMaterials = []seedMaterial{
	{id: "paint-gloss-white", zone: types.ZoneBody, matType: "paint", name: "Gloss White", color: "white", finish: "gloss", multiplier: 1.0},
	{id: "paint-matte-black", zone: types.ZoneBody, matType: "paint", name: "Matte Black", color: "black", finish: "matte", multiplier: 1.25},
	{id: "wrap-carbon", zone: types.ZoneBody, matType: "wrap", name: "Carbon Fiber Wrap", color: "black", finish: "textured", multiplier: 1.6},
	{id: "vinyl-standard", zone: types.ZoneSeats, matType: "vinyl", name: "Standard Vinyl", color: "gray", finish: "smooth", multiplier: 1.0},
	{id: "marine-vinyl", zone: types.ZoneSeats, matType: "vinyl", name: "Marine Vinyl", color: "white", finish: "smooth", multiplier: 1.35},
	{id: "leather-premium", zone: types.ZoneSeats, matType: "leather", name: "Premium Leather", color: "tan", finish: "perforated", multiplier: 1.6},
}

// seedDemoCatalog populates the catalog tables with the built-in demo data
// when the platforms table is empty (first run). Seeding is idempotent: any
// existing platform suppresses it entirely.
func seedDemoCatalog(db *sql.DB, dataDir string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM platforms").Scan(&count); err != nil {
		return fmt.Errorf("counting platforms: %w", err)
	}
	if count > 0 {
		return nil
	}

	nowStr := time.Now().UTC().Format(time.RFC3339)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO platforms (platform_id, name, description, base_price, asset_ref, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		seedPlatform.PlatformID, seedPlatform.Name, seedPlatform.Description,
		seedPlatform.BasePrice, seedPlatform.AssetRef, nowStr, nowStr,
	)
	if err != nil {
		return fmt.Errorf("seeding platform %s: %w", seedPlatform.PlatformID, err)
	}

	for _, so := range seedOptions {
		requires, err := marshalIDList(so.requires)
		if err != nil {
			return fmt.Errorf("encoding requires for %s: %w", so.id, err)
		}
		excludes, err := marshalIDList(so.excludes)
		if err != nil {
			return fmt.Errorf("encoding excludes for %s: %w", so.id, err)
		}
		_, err = tx.Exec(
			"INSERT INTO options (option_id, category, name, description, part_price, labor_hours, requires, excludes, asset_ref) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			so.id, so.category, so.name, so.desc, so.partPrice, so.laborHours, requires, excludes, "",
		)
		if err != nil {
			return fmt.Errorf("seeding option %s: %w", so.id, err)
		}
	}

	for _, sr := range seedRelations {
		_, err = tx.Exec(
			"INSERT INTO option_relations (relation_id, option_id, related_id, relation_type, reason) VALUES (?, ?, ?, ?, ?)",
			newID(), sr.optionID, sr.relatedID, sr.relType, sr.reason,
		)
		if err != nil {
			return fmt.Errorf("seeding relation %s -> %s: %w", sr.optionID, sr.relatedID, err)
		}
	}

	for _, sm := range seedMaterials {
		_, err = tx.Exec(
			"INSERT INTO materials (material_id, zone, material_type, name, description, color, finish, price_multiplier) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			sm.id, sm.zone, sm.matType, sm.name, "", sm.color, sm.finish, sm.multiplier,
		)
		if err != nil {
			return fmt.Errorf("seeding material %s: %w", sm.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	for table, file := range map[string]string{
		"platforms":        "platforms.jsonl",
		"options":          "options.jsonl",
		"option_relations": "option_relations.jsonl",
		"materials":        "materials.jsonl",
	} {
		if err := persistTable(db, dataDir, table, file); err != nil {
			return fmt.Errorf("persisting seeded %s: %w", table, err)
		}
	}

	return nil
}
