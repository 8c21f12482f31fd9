package differ

import (
	"fmt"

	"github.com/erraggy/specdiff/internal/severity"
	"github.com/erraggy/specdiff/model"
)

// ChangeType indicates whether a change is an addition, removal, modification
// or deprecation
type ChangeType string

const (
	// ChangeTypeAdded indicates a new element was added
	ChangeTypeAdded ChangeType = "ADDED"
	// ChangeTypeModified indicates an existing element was changed
	ChangeTypeModified ChangeType = "MODIFIED"
	// ChangeTypeRemoved indicates an element was removed
	ChangeTypeRemoved ChangeType = "REMOVED"
	// ChangeTypeDeprecated indicates an element was newly marked deprecated
	ChangeTypeDeprecated ChangeType = "DEPRECATED"
)

// Category indicates which part of the API description changed
type Category string

const (
	// CategoryEndpoint indicates an endpoint change
	CategoryEndpoint Category = "ENDPOINT"
	// CategoryParameter indicates a parameter change
	CategoryParameter Category = "PARAMETER"
	// CategoryRequestBody indicates a request body change
	CategoryRequestBody Category = "REQUEST_BODY"
	// CategoryResponse indicates a response change
	CategoryResponse Category = "RESPONSE"
	// CategorySchema indicates a schema change
	CategorySchema Category = "SCHEMA"
	// CategorySchemaProperty indicates a change to one property of a schema
	CategorySchemaProperty Category = "SCHEMA_PROPERTY"
	// CategorySecurity indicates a security scheme change
	CategorySecurity Category = "SECURITY"
)

// Categories returns every category in reporting order.
func Categories() []Category {
	return []Category{
		CategoryEndpoint,
		CategoryParameter,
		CategoryRequestBody,
		CategoryResponse,
		CategorySchema,
		CategorySchemaProperty,
		CategorySecurity,
	}
}

// Severity indicates the severity level of a change
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational changes (additions, relaxed requirements)
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates changes clients should review (deprecations, removed optional elements)
	SeverityWarning = severity.SeverityWarning
	// SeverityDangerous indicates removals that may affect clients without breaking the wire contract
	SeverityDangerous = severity.SeverityDangerous
	// SeverityBreaking indicates changes expected to break existing clients
	SeverityBreaking = severity.SeverityBreaking
)

// Change represents a single classified difference between two specifications
type Change struct {
	// Type indicates if this is an addition, removal, modification or deprecation
	Type ChangeType `json:"type" yaml:"type"`
	// Category indicates which part of the API description changed
	Category Category `json:"category" yaml:"category"`
	// Severity indicates the impact level
	Severity Severity `json:"severity" yaml:"severity"`
	// Path is a human-readable locator (e.g., "GET /users > query:limit")
	Path string `json:"path" yaml:"path"`
	// Description is a human-readable description of the change
	Description string `json:"description" yaml:"description"`
	// OldValue is the value in the old spec (nil for additions)
	OldValue any `json:"oldValue,omitempty" yaml:"oldValue,omitempty"`
	// NewValue is the value in the new spec (nil for removals)
	NewValue any `json:"newValue,omitempty" yaml:"newValue,omitempty"`
}

// String returns a formatted string representation of the change
func (c Change) String() string {
	var symbol string
	switch c.Severity {
	case SeverityBreaking:
		symbol = "✗"
	case SeverityDangerous:
		symbol = "!"
	case SeverityWarning:
		symbol = "⚠"
	case SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "·"
	}
	return fmt.Sprintf("%s %s [%s] %s: %s", symbol, c.Path, c.Type, c.Category, c.Description)
}

// BreakingChange is a Change with BREAKING severity, extended with a
// migration hint and an impact weight used by the risk scorer.
type BreakingChange struct {
	Change `yaml:",inline"`
	// MigrationSuggestion tells client authors how to adapt
	MigrationSuggestion string `json:"migrationSuggestion" yaml:"migrationSuggestion"`
	// ImpactScore is a 0-100 weight
	ImpactScore int `json:"impactScore" yaml:"impactScore"`
}

// Result contains the output of comparing two specifications
type Result struct {
	// Changes contains all detected changes: endpoints first, then schemas,
	// then security schemes
	Changes []Change
	// BreakingChanges is the BREAKING subset of Changes in the same relative order
	BreakingChanges []BreakingChange
	// Summary holds per-category counters derived from Changes
	Summary Summary
}

// Compare computes the classified differences between an old and a new
// specification. It never fails; a nil spec compares as an empty one.
//
// Within each collection, removals are reported first (in old order), then
// additions (in new order), then changes to entities present in both.
func Compare(oldSpec, newSpec *model.ApiSpec) *Result {
	if oldSpec == nil {
		oldSpec = &model.ApiSpec{}
	}
	if newSpec == nil {
		newSpec = &model.ApiSpec{}
	}

	var changes []Change
	changes = compareEndpoints(changes, oldSpec.Endpoints, newSpec.Endpoints)
	changes = compareSchemas(changes, oldSpec.Schemas, newSpec.Schemas)
	changes = compareSecurity(changes, oldSpec.Security, newSpec.Security)
	if changes == nil {
		changes = []Change{}
	}

	return &Result{
		Changes:         changes,
		BreakingChanges: Breaking(changes),
		Summary:         Summarize(changes),
	}
}

// Breaking promotes every BREAKING change to a BreakingChange, preserving order.
func Breaking(changes []Change) []BreakingChange {
	breaking := make([]BreakingChange, 0, len(changes))
	for _, c := range changes {
		if c.Severity != SeverityBreaking {
			continue
		}
		breaking = append(breaking, BreakingChange{
			Change:              c,
			MigrationSuggestion: MigrationSuggestion(c),
			ImpactScore:         ImpactScore(c),
		})
	}
	return breaking
}
