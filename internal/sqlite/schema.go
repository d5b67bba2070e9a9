package sqlite

// Schema DDL for the catalog and quote tables. Timestamps are stored as
// RFC 3339 text; option requires/excludes lists and configuration snapshots
// travel as JSON text columns.
const (
	createPlatforms = `CREATE TABLE platforms (
    platform_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    base_price REAL NOT NULL,
    asset_ref TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createOptions = `CREATE TABLE options (
    option_id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    part_price REAL NOT NULL,
    labor_hours REAL NOT NULL,
    requires TEXT NOT NULL,
    excludes TEXT NOT NULL,
    asset_ref TEXT
);`

	createOptionRelations = `CREATE TABLE option_relations (
    relation_id TEXT PRIMARY KEY,
    option_id TEXT NOT NULL,
    related_id TEXT NOT NULL,
    relation_type TEXT NOT NULL,
    reason TEXT
);`

	createMaterials = `CREATE TABLE materials (
    material_id TEXT PRIMARY KEY,
    zone TEXT NOT NULL,
    material_type TEXT,
    name TEXT NOT NULL,
    description TEXT,
    color TEXT,
    finish TEXT,
    price_multiplier REAL NOT NULL
);`

	createQuotes = `CREATE TABLE quotes (
    quote_id TEXT PRIMARY KEY,
    configuration TEXT NOT NULL,
    customer_name TEXT,
    customer_email TEXT,
    total REAL NOT NULL,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxOptionsCategory      = `CREATE INDEX idx_options_category ON options(category);`
	idxRelationsOption      = `CREATE INDEX idx_option_relations_option ON option_relations(option_id);`
	idxRelationsUnique      = `CREATE UNIQUE INDEX idx_option_relations_unique ON option_relations(option_id, related_id, relation_type);`
	idxMaterialsZone        = `CREATE INDEX idx_materials_zone ON materials(zone);`
	idxQuotesStatus         = `CREATE INDEX idx_quotes_status ON quotes(status);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createPlatforms,
	createOptions,
	createOptionRelations,
	createMaterials,
	createQuotes,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxOptionsCategory,
	idxRelationsOption,
	idxRelationsUnique,
	idxMaterialsZone,
	idxQuotesStatus,
}
