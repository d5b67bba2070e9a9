// Package sqlite implements the Cartwright store: SQLite as the query engine
// with JSONL files in the data directory as the durable source of truth.
// The catalog tables and the quotes table load from their JSONL files on
// Attach, and every write persists back atomically.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fairwayworks/cartwright/pkg/types"
)

// Store provides catalog and quote persistence. The zero value is not usable;
// create one with NewStore and call Attach before use.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a detached store. Call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the store: validates the config, creates the data directory,
// builds the SQLite schema, loads the JSONL files, and seeds the built-in
// demo catalog when the catalog files are empty.
// Returns ErrAlreadyAttached if called while attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	config.DataDir = dataDir

	// The database file is rebuilt from the JSONL files on every attach;
	// the JSONL files are the source of truth.
	dbPath := filepath.Join(dataDir, "cartwright.db")
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return fmt.Errorf("initializing JSONL files: %w", err)
	}

	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("loading JSONL: %w", err)
	}

	if err := seedDemoCatalog(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("seeding catalog: %w", err)
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached store
// succeeds. After Detach, operations return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// DataDir returns the resolved data directory of an attached store.
func (s *Store) DataDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.DataDir
}

// checkAttached returns ErrStoreDetached when the store is not attached.
// The caller must hold s.mu (read or write).
func (s *Store) checkAttached() error {
	if !s.attached {
		return types.ErrStoreDetached
	}
	return nil
}

// newID generates a UUID v7 entity ID, falling back to v4 if v7 generation
// fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// placeholders returns n comma-joined SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
