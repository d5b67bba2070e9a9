// Catalog persistence: loading the catalog snapshot and authoring CRUD.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fairwayworks/cartwright/pkg/catalog"
	"github.com/fairwayworks/cartwright/pkg/types"
)

// LoadCatalog reads the platform, option, relation, and material tables and
// builds a catalog snapshot with its constraint index. Callers hold the
// snapshot for the duration of a request; it never changes under them.
func (s *Store) LoadCatalog() (*catalog.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return nil, err
	}

	platforms, err := s.queryPlatforms()
	if err != nil {
		return nil, err
	}
	options, err := s.queryOptions()
	if err != nil {
		return nil, err
	}
	relations, err := s.queryRelations()
	if err != nil {
		return nil, err
	}
	materials, err := s.queryMaterials()
	if err != nil {
		return nil, err
	}

	return catalog.New(platforms, options, materials, relations), nil
}

func (s *Store) queryPlatforms() ([]types.Platform, error) {
	rows, err := s.db.Query(
		"SELECT platform_id, name, description, base_price, asset_ref, created_at, updated_at FROM platforms ORDER BY created_at ASC, platform_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying platforms: %w", err)
	}
	defer rows.Close()

	var out []types.Platform
	for rows.Next() {
		var p types.Platform
		var desc, assetRef sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&p.PlatformID, &p.Name, &desc, &p.BasePrice, &assetRef, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning platform: %w", err)
		}
		p.Description = desc.String
		p.AssetRef = assetRef.String
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing platform created_at: %w", err)
		}
		if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing platform updated_at: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) queryOptions() ([]types.Option, error) {
	rows, err := s.db.Query(
		"SELECT option_id, category, name, description, part_price, labor_hours, requires, excludes, asset_ref FROM options ORDER BY category ASC, option_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying options: %w", err)
	}
	defer rows.Close()

	var out []types.Option
	for rows.Next() {
		var o types.Option
		var desc, assetRef sql.NullString
		var requires, excludes string
		if err := rows.Scan(&o.OptionID, &o.Category, &o.Name, &desc, &o.PartPrice, &o.LaborHours, &requires, &excludes, &assetRef); err != nil {
			return nil, fmt.Errorf("scanning option: %w", err)
		}
		o.Description = desc.String
		o.AssetRef = assetRef.String
		if err := json.Unmarshal([]byte(requires), &o.Requires); err != nil {
			return nil, fmt.Errorf("parsing requires for option %s: %w", o.OptionID, err)
		}
		if err := json.Unmarshal([]byte(excludes), &o.Excludes); err != nil {
			return nil, fmt.Errorf("parsing excludes for option %s: %w", o.OptionID, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) queryRelations() ([]types.OptionRelation, error) {
	rows, err := s.db.Query(
		"SELECT relation_id, option_id, related_id, relation_type, reason FROM option_relations ORDER BY option_id ASC, relation_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying option relations: %w", err)
	}
	defer rows.Close()

	var out []types.OptionRelation
	for rows.Next() {
		var rel types.OptionRelation
		var reason sql.NullString
		if err := rows.Scan(&rel.RelationID, &rel.OptionID, &rel.RelatedID, &rel.RelationType, &reason); err != nil {
			return nil, fmt.Errorf("scanning option relation: %w", err)
		}
		rel.Reason = reason.String
		out = append(out, rel)
	}
	return out, rows.Err()
}

func (s *Store) queryMaterials() ([]types.Material, error) {
	rows, err := s.db.Query(
		"SELECT material_id, zone, material_type, name, description, color, finish, price_multiplier FROM materials ORDER BY zone ASC, material_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying materials: %w", err)
	}
	defer rows.Close()

	var out []types.Material
	for rows.Next() {
		var m types.Material
		var matType, desc, color, finish sql.NullString
		if err := rows.Scan(&m.MaterialID, &m.Zone, &matType, &m.Name, &desc, &color, &finish, &m.PriceMultiplier); err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		m.MaterialType = matType.String
		m.Description = desc.String
		m.Color = color.String
		m.Finish = finish.String
		out = append(out, m)
	}
	return out, rows.Err()
}

// SavePlatform creates or updates a platform. An empty PlatformID gets a
// generated UUID v7. Returns the ID used.
func (s *Store) SavePlatform(p types.Platform) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return "", err
	}
	if p.Name == "" {
		return "", types.ErrInvalidName
	}

	now := time.Now().UTC()
	if p.PlatformID == "" {
		p.PlatformID = newID()
		p.CreatedAt = now
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := s.db.Exec(
		`INSERT INTO platforms (platform_id, name, description, base_price, asset_ref, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(platform_id) DO UPDATE SET
		   name = excluded.name, description = excluded.description,
		   base_price = excluded.base_price, asset_ref = excluded.asset_ref,
		   updated_at = excluded.updated_at`,
		p.PlatformID, p.Name, p.Description, p.BasePrice, p.AssetRef,
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("persisting platform: %w", err)
	}

	if err := s.persistTableJSONL("platforms", "platforms.jsonl"); err != nil {
		return "", fmt.Errorf("persisting platforms.jsonl: %w", err)
	}
	return p.PlatformID, nil
}

// SaveOption creates or updates an option. An empty OptionID gets a generated
// UUID v7. Returns the ID used.
func (s *Store) SaveOption(o types.Option) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return "", err
	}
	if o.Name == "" {
		return "", types.ErrInvalidName
	}
	if o.OptionID == "" {
		o.OptionID = newID()
	}

	requires, err := marshalIDList(o.Requires)
	if err != nil {
		return "", fmt.Errorf("encoding requires: %w", err)
	}
	excludes, err := marshalIDList(o.Excludes)
	if err != nil {
		return "", fmt.Errorf("encoding excludes: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO options (option_id, category, name, description, part_price, labor_hours, requires, excludes, asset_ref)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(option_id) DO UPDATE SET
		   category = excluded.category, name = excluded.name,
		   description = excluded.description, part_price = excluded.part_price,
		   labor_hours = excluded.labor_hours, requires = excluded.requires,
		   excludes = excluded.excludes, asset_ref = excluded.asset_ref`,
		o.OptionID, o.Category, o.Name, o.Description, o.PartPrice, o.LaborHours, requires, excludes, o.AssetRef,
	)
	if err != nil {
		return "", fmt.Errorf("persisting option: %w", err)
	}

	if err := s.persistTableJSONL("options", "options.jsonl"); err != nil {
		return "", fmt.Errorf("persisting options.jsonl: %w", err)
	}
	return o.OptionID, nil
}

// DeleteOption removes an option and its relation rows. Returns ErrNotFound
// when the option does not exist. Configurations referencing a deleted option
// are caught later by wholesale validation, not repaired here.
func (s *Store) DeleteOption(optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return err
	}
	if optionID == "" {
		return types.ErrInvalidID
	}

	res, err := s.db.Exec("DELETE FROM options WHERE option_id = ?", optionID)
	if err != nil {
		return fmt.Errorf("deleting option: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	if _, err := s.db.Exec("DELETE FROM option_relations WHERE option_id = ? OR related_id = ?", optionID, optionID); err != nil {
		return fmt.Errorf("deleting option relations: %w", err)
	}

	if err := s.persistTableJSONL("options", "options.jsonl"); err != nil {
		return fmt.Errorf("persisting options.jsonl: %w", err)
	}
	if err := s.persistTableJSONL("option_relations", "option_relations.jsonl"); err != nil {
		return fmt.Errorf("persisting option_relations.jsonl: %w", err)
	}
	return nil
}

// SaveRelation creates or updates an option relation row. An empty RelationID
// gets a generated UUID v7. Returns the ID used.
func (s *Store) SaveRelation(rel types.OptionRelation) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return "", err
	}
	if rel.OptionID == "" || rel.RelatedID == "" {
		return "", types.ErrInvalidID
	}
	if rel.RelationType != types.RelationRequires && rel.RelationType != types.RelationExcludes {
		return "", types.ErrInvalidData
	}
	if rel.RelationID == "" {
		rel.RelationID = newID()
	}

	_, err := s.db.Exec(
		`INSERT INTO option_relations (relation_id, option_id, related_id, relation_type, reason)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(relation_id) DO UPDATE SET
		   option_id = excluded.option_id, related_id = excluded.related_id,
		   relation_type = excluded.relation_type, reason = excluded.reason`,
		rel.RelationID, rel.OptionID, rel.RelatedID, rel.RelationType, rel.Reason,
	)
	if err != nil {
		return "", fmt.Errorf("persisting option relation: %w", err)
	}

	if err := s.persistTableJSONL("option_relations", "option_relations.jsonl"); err != nil {
		return "", fmt.Errorf("persisting option_relations.jsonl: %w", err)
	}
	return rel.RelationID, nil
}

// SaveMaterial creates or updates a material. An empty MaterialID gets a
// generated UUID v7. Returns the ID used.
func (s *Store) SaveMaterial(m types.Material) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return "", err
	}
	if m.Name == "" {
		return "", types.ErrInvalidName
	}
	if !types.ValidZone(m.Zone) {
		return "", types.ErrInvalidZone
	}
	if m.MaterialID == "" {
		m.MaterialID = newID()
	}

	_, err := s.db.Exec(
		`INSERT INTO materials (material_id, zone, material_type, name, description, color, finish, price_multiplier)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(material_id) DO UPDATE SET
		   zone = excluded.zone, material_type = excluded.material_type,
		   name = excluded.name, description = excluded.description,
		   color = excluded.color, finish = excluded.finish,
		   price_multiplier = excluded.price_multiplier`,
		m.MaterialID, m.Zone, m.MaterialType, m.Name, m.Description, m.Color, m.Finish, m.PriceMultiplier,
	)
	if err != nil {
		return "", fmt.Errorf("persisting material: %w", err)
	}

	if err := s.persistTableJSONL("materials", "materials.jsonl"); err != nil {
		return "", fmt.Errorf("persisting materials.jsonl: %w", err)
	}
	return m.MaterialID, nil
}

// catalogTables maps the catalog tables to their JSONL files, in import
// order. Quotes are deliberately excluded: import/export moves catalog data
// only.
var catalogTables = []struct {
	table string
	file  string
}{
	{"platforms", "platforms.jsonl"},
	{"options", "options.jsonl"},
	{"option_relations", "option_relations.jsonl"},
	{"materials", "materials.jsonl"},
}

// ExportCatalog writes the catalog tables as JSONL files into destDir,
// creating it if needed.
func (s *Store) ExportCatalog(destDir string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	for _, ct := range catalogTables {
		if err := persistTable(s.db, destDir, ct.table, ct.file); err != nil {
			return fmt.Errorf("exporting %s: %w", ct.table, err)
		}
	}
	return nil
}

// ImportCatalog replaces the catalog tables with the JSONL files found in
// srcDir and persists the result. Files absent from srcDir are skipped,
// leaving their tables untouched. Quotes are never imported.
func (s *Store) ImportCatalog(srcDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	imported := false
	for _, ct := range catalogTables {
		path := filepath.Join(srcDir, ct.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		records, err := readJSONL(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", ct.file, err)
		}
		if _, err := tx.Exec("DELETE FROM " + ct.table); err != nil {
			return fmt.Errorf("clearing %s: %w", ct.table, err)
		}
		for _, mapping := range jsonlTableMapping {
			if mapping.table != ct.table {
				continue
			}
			if err := insertRecords(tx, mapping.table, mapping.columns, records); err != nil {
				return fmt.Errorf("importing %s: %w", ct.table, err)
			}
		}
		imported = true
	}
	if !imported {
		return fmt.Errorf("no catalog files found in %s: %w", srcDir, types.ErrInvalidData)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import transaction: %w", err)
	}

	for _, ct := range catalogTables {
		if err := s.persistTableJSONL(ct.table, ct.file); err != nil {
			return fmt.Errorf("persisting imported %s: %w", ct.table, err)
		}
	}
	return nil
}

// marshalIDList encodes an ID list as JSON text, normalizing nil to [] so the
// column is never null.
func marshalIDList(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
