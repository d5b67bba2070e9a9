// Shared helpers for cartwright CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fairwayworks/cartwright/internal/sqlite"
	"github.com/fairwayworks/cartwright/pkg/catalog"
	"github.com/fairwayworks/cartwright/pkg/rules"
	"github.com/fairwayworks/cartwright/pkg/types"
)

// buildFileName is the active build file kept in the data directory.
const buildFileName = "build.json"

// attachStore resolves the data directory, creates a store, and attaches it.
// The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: cliConfig.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// loadBuild reads the active build from build.json in the data directory.
func loadBuild(store *sqlite.Store) (types.Configuration, error) {
	path := filepath.Join(store.DataDir(), buildFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return types.Configuration{}, fmt.Errorf("no active build; run 'cartwright new --platform <id>' first")
	}
	if err != nil {
		return types.Configuration{}, fmt.Errorf("read build: %w", err)
	}
	cfg, err := types.DeserializeConfiguration(data)
	if err != nil {
		return types.Configuration{}, fmt.Errorf("parse build: %w", err)
	}
	return cfg, nil
}

// saveBuild writes the active build to build.json in the data directory.
func saveBuild(store *sqlite.Store, cfg types.Configuration) error {
	data, err := cfg.Serialize()
	if err != nil {
		return fmt.Errorf("serialize build: %w", err)
	}
	path := filepath.Join(store.DataDir(), buildFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write build: %w", err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printViolations writes each violation to stderr, one per line.
func printViolations(violations []rules.Violation) {
	for _, v := range violations {
		fmt.Fprintln(os.Stderr, " -", v.Message)
	}
}

// mustCatalog loads the catalog from an attached store, exiting on failure.
func mustCatalog(store *sqlite.Store) *catalog.Catalog {
	cat, err := store.LoadCatalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load catalog:", err)
		os.Exit(exitSysError)
	}
	return cat
}
