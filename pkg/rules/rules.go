// Package rules enforces the requires/excludes dependency graph over the
// option catalog. Every function is pure and read-only: it takes the current
// configuration and a catalog snapshot, and reports constraint violations as
// structured values, never as Go errors. Data-level problems such as unknown
// IDs or a contradictory catalog are encoded in the result; nothing here
// panics or loops on bad data.
package rules

import (
	"fmt"

	"github.com/fairwayworks/cartwright/pkg/catalog"
	"github.com/fairwayworks/cartwright/pkg/types"
)

// Violation codes.
const (
	CodeAlreadySelected    = "already_selected"
	CodeMissingRequirement = "missing_requirement"
	CodeExclusionConflict  = "exclusion_conflict"
	CodeRemovalBlocked     = "removal_blocked"
	CodeUnknownOption      = "unknown_option"
)

// Violation is one constraint violation, human-readable and structured enough
// for a UI to highlight the options involved.
type Violation struct {
	Code     string `json:"code"`
	OptionID string `json:"option_id"`
	// RelatedID is the other option involved: the missing requirement, the
	// conflicting selection, or the dependent blocking a removal.
	RelatedID string `json:"related_id,omitempty"`
	Message   string `json:"message"`
}

// Result is the outcome of a validation. Valid iff Errors is empty.
type Result struct {
	Valid  bool        `json:"valid"`
	Errors []Violation `json:"errors,omitempty"`
}

// result builds a Result from the collected violations.
func result(violations []Violation) Result {
	return Result{Valid: len(violations) == 0, Errors: violations}
}

// ValidateAddition decides whether optionID may be added to cfg.
//
// An already-selected option fails immediately with a single violation; no
// further checks run. Otherwise every unmet requirement and every active
// exclusion is reported together, in catalog constraint order, so the caller
// can show the full story at once. Display names resolve through the catalog
// with a raw-ID fallback for inconsistent data.
func ValidateAddition(cfg types.Configuration, optionID string, cat *catalog.Catalog) Result {
	if cfg.HasOption(optionID) {
		return result([]Violation{{
			Code:     CodeAlreadySelected,
			OptionID: optionID,
			Message:  fmt.Sprintf("Option %s is already selected", cat.OptionName(optionID)),
		}})
	}

	if _, ok := cat.OptionByID(optionID); !ok {
		return result([]Violation{{
			Code:     CodeUnknownOption,
			OptionID: optionID,
			Message:  fmt.Sprintf("Unknown option ID: %s", optionID),
		}})
	}

	var violations []Violation
	cons := cat.ConstraintsFor(optionID)
	for _, reqID := range cons.Requires {
		if !cfg.HasOption(reqID) {
			violations = append(violations, Violation{
				Code:      CodeMissingRequirement,
				OptionID:  optionID,
				RelatedID: reqID,
				Message:   fmt.Sprintf("%s requires %s, which is not selected", cat.OptionName(optionID), cat.OptionName(reqID)),
			})
		}
	}
	for _, exclID := range cons.Excludes {
		if cfg.HasOption(exclID) {
			violations = append(violations, Violation{
				Code:      CodeExclusionConflict,
				OptionID:  optionID,
				RelatedID: exclID,
				Message:   fmt.Sprintf("%s conflicts with selected option %s", cat.OptionName(optionID), cat.OptionName(exclID)),
			})
		}
	}
	return result(violations)
}

// ValidateRemoval decides whether optionID may be removed from cfg. Removal
// is blocked by every currently-selected option whose requirements include
// it. The check is one hop only: requirements are direct references, and a
// requirement's own requirements were already enforced when it was added.
func ValidateRemoval(cfg types.Configuration, optionID string, cat *catalog.Catalog) Result {
	var violations []Violation
	for _, selectedID := range cfg.SelectedOptions {
		if selectedID == optionID {
			continue
		}
		for _, reqID := range cat.ConstraintsFor(selectedID).Requires {
			if reqID == optionID {
				violations = append(violations, Violation{
					Code:      CodeRemovalBlocked,
					OptionID:  optionID,
					RelatedID: selectedID,
					Message:   fmt.Sprintf("%s cannot be removed: %s requires it", cat.OptionName(optionID), cat.OptionName(selectedID)),
				})
			}
		}
	}
	return result(violations)
}

// ValidateConfiguration re-checks every selected option against the catalog
// as if it were being re-added. This is the authoritative internal
// consistency check, used after catalog edits or bulk import. Unknown IDs are
// reported and skipped; known IDs report unmet requirements and active
// exclusions exactly as ValidateAddition does.
func ValidateConfiguration(cfg types.Configuration, cat *catalog.Catalog) Result {
	var violations []Violation
	for _, selectedID := range cfg.SelectedOptions {
		if _, ok := cat.OptionByID(selectedID); !ok {
			violations = append(violations, Violation{
				Code:     CodeUnknownOption,
				OptionID: selectedID,
				Message:  fmt.Sprintf("Unknown option ID: %s", selectedID),
			})
			continue
		}
		cons := cat.ConstraintsFor(selectedID)
		for _, reqID := range cons.Requires {
			if !cfg.HasOption(reqID) {
				violations = append(violations, Violation{
					Code:      CodeMissingRequirement,
					OptionID:  selectedID,
					RelatedID: reqID,
					Message:   fmt.Sprintf("%s requires %s, which is not selected", cat.OptionName(selectedID), cat.OptionName(reqID)),
				})
			}
		}
		for _, exclID := range cons.Excludes {
			if cfg.HasOption(exclID) {
				violations = append(violations, Violation{
					Code:      CodeExclusionConflict,
					OptionID:  selectedID,
					RelatedID: exclID,
					Message:   fmt.Sprintf("%s conflicts with selected option %s", cat.OptionName(selectedID), cat.OptionName(exclID)),
				})
			}
		}
	}
	return result(violations)
}

// AvailableOptions returns the legal-move frontier: exactly the options for
// which ValidateAddition would succeed, in catalog order. The frontier is
// derived from the full current selection, so it must be recomputed after
// every configuration change; it is never cached here.
func AvailableOptions(cfg types.Configuration, cat *catalog.Catalog) []types.Option {
	var out []types.Option
	for _, opt := range cat.Options() {
		if ValidateAddition(cfg, opt.OptionID, cat).Valid {
			out = append(out, opt)
		}
	}
	return out
}
