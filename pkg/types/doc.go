// Package types defines the catalog entities, the configuration value type
// and its mutation helpers, and the standard error values for the Cartwright
// configurator.
package types
