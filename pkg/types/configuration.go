package types

import (
	"time"

	"github.com/google/uuid"
)

// Configuration is the selection state being validated and priced: the chosen
// platform, the selected options in insertion order, one material per zone,
// and free-text build notes.
//
// Configuration is a value. Every mutation helper returns a new value with
// UpdatedAt advanced and leaves the receiver untouched, so configurations can
// be shared across goroutines without coordination. Validation lives in the
// rules package; the helpers here never check constraints, which lets callers
// decide their own flow (for example, asking for confirmation before a
// removal that strands a dependent option).
type Configuration struct {
	ConfigID           string
	PlatformID         string
	SelectedOptions    []string
	MaterialSelections []MaterialSelection
	BuildNotes         string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewConfiguration creates an empty configuration for the given platform with
// a generated UUID v7 identifier and both timestamps set to now.
func NewConfiguration(platformID string) Configuration {
	now := time.Now().UTC()
	return Configuration{
		ConfigID:   newID(),
		PlatformID: platformID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// newID generates a UUID v7, falling back to v4 if v7 generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// clone returns a deep copy of the configuration with fresh slices, so that
// mutations on the copy never alias the receiver's backing arrays.
func (c Configuration) clone() Configuration {
	out := c
	out.SelectedOptions = make([]string, len(c.SelectedOptions))
	copy(out.SelectedOptions, c.SelectedOptions)
	out.MaterialSelections = make([]MaterialSelection, len(c.MaterialSelections))
	copy(out.MaterialSelections, c.MaterialSelections)
	return out
}

// HasOption reports whether the option is currently selected.
func (c Configuration) HasOption(optionID string) bool {
	for _, id := range c.SelectedOptions {
		if id == optionID {
			return true
		}
	}
	return false
}

// AddOption returns a configuration with the option appended to the
// selection. Adding an already-selected option is a deliberate no-op: the
// receiver is returned unchanged, UpdatedAt included. Callers that need to
// surface "already selected" run the rules engine first.
func (c Configuration) AddOption(optionID string) Configuration {
	if c.HasOption(optionID) {
		return c
	}
	out := c.clone()
	out.SelectedOptions = append(out.SelectedOptions, optionID)
	out.UpdatedAt = time.Now().UTC()
	return out
}

// RemoveOption returns a configuration with the option filtered out of the
// selection. Removing an absent option is a no-op. Dependent-safety is the
// rules engine's concern; no check happens here.
func (c Configuration) RemoveOption(optionID string) Configuration {
	if !c.HasOption(optionID) {
		return c
	}
	out := c.clone()
	kept := out.SelectedOptions[:0]
	for _, id := range out.SelectedOptions {
		if id != optionID {
			kept = append(kept, id)
		}
	}
	out.SelectedOptions = kept
	out.UpdatedAt = time.Now().UTC()
	return out
}

// SetMaterial returns a configuration with the zone's material set to
// materialID, replacing any existing selection for that zone. A zone never
// holds two materials.
func (c Configuration) SetMaterial(zone, materialID string) Configuration {
	out := c.clone()
	for i, sel := range out.MaterialSelections {
		if sel.Zone == zone {
			out.MaterialSelections[i].MaterialID = materialID
			out.UpdatedAt = time.Now().UTC()
			return out
		}
	}
	out.MaterialSelections = append(out.MaterialSelections, MaterialSelection{Zone: zone, MaterialID: materialID})
	out.UpdatedAt = time.Now().UTC()
	return out
}

// Material returns the material selected for the zone, if any.
func (c Configuration) Material(zone string) (string, bool) {
	for _, sel := range c.MaterialSelections {
		if sel.Zone == zone {
			return sel.MaterialID, true
		}
	}
	return "", false
}

// WithNotes returns a configuration with the build notes replaced.
func (c Configuration) WithNotes(notes string) Configuration {
	out := c.clone()
	out.BuildNotes = notes
	out.UpdatedAt = time.Now().UTC()
	return out
}
