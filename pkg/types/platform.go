package types

import "time"

// Platform is the base product definition a configuration is built on: the
// cart chassis, drivetrain, and everything included before any option is
// selected. Catalog edits never retroactively change a saved quote's stored
// data, only future recalculation.
type Platform struct {
	PlatformID  string    `json:"platform_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"` // non-negative
	AssetRef    string    `json:"asset_ref"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
