package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// configurationJSON mirrors the serialized form of a Configuration.
// Timestamps travel as RFC 3339 strings with nanoseconds so the instant
// survives the round trip.
type configurationJSON struct {
	ConfigID           string              `json:"config_id"`
	PlatformID         string              `json:"platform_id"`
	SelectedOptions    []string            `json:"selected_options"`
	MaterialSelections []MaterialSelection `json:"material_selections"`
	BuildNotes         string              `json:"build_notes"`
	CreatedAt          string              `json:"created_at"`
	UpdatedAt          string              `json:"updated_at"`
}

// Serialize encodes the configuration as JSON. Serialize and
// DeserializeConfiguration are inverse operations: every field, timestamps
// included, reconstructs to an equal value.
func (c Configuration) Serialize() ([]byte, error) {
	rec := configurationJSON{
		ConfigID:           c.ConfigID,
		PlatformID:         c.PlatformID,
		SelectedOptions:    c.SelectedOptions,
		MaterialSelections: c.MaterialSelections,
		BuildNotes:         c.BuildNotes,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:          c.UpdatedAt.Format(time.RFC3339Nano),
	}
	return json.Marshal(rec)
}

// MarshalJSON reuses the serialized form, so configurations embedded in
// larger payloads (quotes, API responses) carry the same wire format as
// Serialize.
func (c Configuration) MarshalJSON() ([]byte, error) {
	return c.Serialize()
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	cfg, err := DeserializeConfiguration(data)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// DeserializeConfiguration decodes a configuration serialized by Serialize,
// reconstructing timestamps to their original instant.
func DeserializeConfiguration(data []byte) (Configuration, error) {
	var rec configurationJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return Configuration{}, fmt.Errorf("decoding configuration: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return Configuration{}, fmt.Errorf("parsing created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if err != nil {
		return Configuration{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return Configuration{
		ConfigID:           rec.ConfigID,
		PlatformID:         rec.PlatformID,
		SelectedOptions:    rec.SelectedOptions,
		MaterialSelections: rec.MaterialSelections,
		BuildNotes:         rec.BuildNotes,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}
