package detector

import (
	"slices"

	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/model"
	"github.com/erraggy/specdiff/risk"
)

// ComparisonResult is the complete outcome of comparing two versions of a
// specification. Its field names are a stable contract for report
// renderers. Treat it as a value: Filter returns a new result instead of
// narrowing this one.
type ComparisonResult struct {
	// APIName is the name of the compared API (new version, falling back to old)
	APIName string `json:"apiName" yaml:"apiName"`
	// FromVersion is the old version string
	FromVersion string `json:"fromVersion" yaml:"fromVersion"`
	// ToVersion is the new version string
	ToVersion string `json:"toVersion" yaml:"toVersion"`
	// Format is the detected source format
	Format model.SpecType `json:"format" yaml:"format"`
	// Changes lists every reported change: endpoints, then schemas, then security
	Changes []differ.Change `json:"changes" yaml:"changes"`
	// BreakingChanges is the complete BREAKING subset; it is never filtered
	BreakingChanges []differ.BreakingChange `json:"breakingChanges" yaml:"breakingChanges"`
	// TotalChanges always equals len(Changes)
	TotalChanges int `json:"totalChanges" yaml:"totalChanges"`
	// RiskScore is the 0-100 risk score of the unfiltered comparison
	RiskScore int `json:"riskScore" yaml:"riskScore"`
	// RiskLevel is the tier of RiskScore
	RiskLevel risk.Level `json:"riskLevel" yaml:"riskLevel"`
	// SemverRecommendation is the minimal version bump for the unfiltered comparison
	SemverRecommendation risk.SemverBump `json:"semverRecommendation" yaml:"semverRecommendation"`
	// Summary counts Changes by category and change type
	Summary differ.Summary `json:"summary" yaml:"summary"`
}

// HasBreakingChanges reports whether the comparison found any BREAKING change.
func (r *ComparisonResult) HasBreakingChanges() bool {
	return len(r.BreakingChanges) > 0
}

// Filter returns a new result whose Changes keep only changes at or above
// threshold, dropping DEPRECATED changes unless includeDeprecations is set.
// TotalChanges and Summary are recomputed from the kept changes.
// BreakingChanges, the risk fields and the semver recommendation describe
// the full comparison and are carried over unchanged.
//
// The receiver is not modified and shares no slices with the result.
func (r *ComparisonResult) Filter(threshold differ.Severity, includeDeprecations bool) *ComparisonResult {
	kept := make([]differ.Change, 0, len(r.Changes))
	for _, c := range r.Changes {
		if !c.Severity.AtLeast(threshold) {
			continue
		}
		if !includeDeprecations && c.Type == differ.ChangeTypeDeprecated {
			continue
		}
		kept = append(kept, c)
	}

	out := *r
	out.Changes = kept
	out.BreakingChanges = slices.Clone(r.BreakingChanges)
	if out.BreakingChanges == nil {
		out.BreakingChanges = []differ.BreakingChange{}
	}
	out.TotalChanges = len(kept)
	out.Summary = differ.Summarize(kept)
	return &out
}
