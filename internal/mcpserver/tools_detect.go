package mcpserver

import (
	"context"

	"github.com/erraggy/specdiff/detector"
	"github.com/erraggy/specdiff/differ"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type detectInput struct {
	Old            specInput `json:"old"                       jsonschema:"The old version of the document"`
	New            specInput `json:"new"                       jsonschema:"The new version of the document"`
	Filename       string    `json:"filename,omitempty"        jsonschema:"Filename whose extension selects the format (defaults to the base name of old.file)"`
	Severity       string    `json:"severity,omitempty"        jsonschema:"Lowest severity to report in changes: INFO, WARNING, DANGEROUS or BREAKING"`
	NoDeprecations bool      `json:"no_deprecations,omitempty" jsonschema:"Omit newly deprecated endpoints from changes"`
}

type detectChange struct {
	Severity    string `json:"severity"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type detectBreakingChange struct {
	Severity            string `json:"severity"`
	Type                string `json:"type"`
	Category            string `json:"category"`
	Path                string `json:"path"`
	Description         string `json:"description"`
	MigrationSuggestion string `json:"migration_suggestion"`
	ImpactScore         int    `json:"impact_score"`
}

type detectOutput struct {
	APIName              string                 `json:"api_name"`
	FromVersion          string                 `json:"from_version"`
	ToVersion            string                 `json:"to_version"`
	Format               string                 `json:"format"`
	TotalChanges         int                    `json:"total_changes"`
	BreakingCount        int                    `json:"breaking_count"`
	RiskScore            int                    `json:"risk_score"`
	RiskLevel            string                 `json:"risk_level"`
	SemverRecommendation string                 `json:"semver_recommendation"`
	Changes              []detectChange         `json:"changes,omitempty"`
	BreakingChanges      []detectBreakingChange `json:"breaking_changes,omitempty"`
	Summary              string                 `json:"summary"`
}

func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	pair := versionPair{Old: input.Old, New: input.New, Filename: input.Filename}
	oldContent, newContent, filename, err := pair.resolve()
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}

	d, err := newDetector(input.Severity, input.NoDeprecations)
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}

	result, err := d.Detect(oldContent, newContent, filename)
	if err != nil {
		return errResult(err), detectOutput{}, nil
	}
	return nil, toDetectOutput(result), nil
}

// newDetector applies per-call overrides on top of the server defaults.
func newDetector(severityName string, noDeprecations bool) (*detector.Detector, error) {
	d := detector.New()
	d.SeverityThreshold = cfg.SeverityThreshold
	d.IncludeDeprecations = cfg.IncludeDeprecations && !noDeprecations
	d.Concurrency = cfg.BatchConcurrency
	if severityName != "" {
		sev, err := detector.ParseSeverity(severityName)
		if err != nil {
			return nil, err
		}
		d.SeverityThreshold = sev
	}
	return d, nil
}

func toDetectOutput(result *detector.ComparisonResult) detectOutput {
	output := detectOutput{
		APIName:              result.APIName,
		FromVersion:          result.FromVersion,
		ToVersion:            result.ToVersion,
		Format:               string(result.Format),
		TotalChanges:         result.TotalChanges,
		BreakingCount:        len(result.BreakingChanges),
		RiskScore:            result.RiskScore,
		RiskLevel:            string(result.RiskLevel),
		SemverRecommendation: string(result.SemverRecommendation),
		Changes:              makeSlice[detectChange](len(result.Changes)),
		BreakingChanges:      makeSlice[detectBreakingChange](len(result.BreakingChanges)),
	}
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, toDetectChange(c))
	}
	for _, bc := range result.BreakingChanges {
		c := toDetectChange(bc.Change)
		output.BreakingChanges = append(output.BreakingChanges, detectBreakingChange{
			Severity:            c.Severity,
			Type:                c.Type,
			Category:            c.Category,
			Path:                c.Path,
			Description:         c.Description,
			MigrationSuggestion: bc.MigrationSuggestion,
			ImpactScore:         bc.ImpactScore,
		})
	}
	output.Summary = buildDetectSummary(output)
	return output
}

func toDetectChange(c differ.Change) detectChange {
	return detectChange{
		Severity:    c.Severity.String(),
		Type:        string(c.Type),
		Category:    string(c.Category),
		Path:        c.Path,
		Description: c.Description,
	}
}

func buildDetectSummary(output detectOutput) string {
	if output.TotalChanges == 0 && output.BreakingCount == 0 {
		return "No changes detected. Recommended version bump: " + output.SemverRecommendation + "."
	}

	summary := ""
	if output.BreakingCount > 0 {
		summary = "Breaking changes detected. "
	}
	summary += formatCount(output.TotalChanges, "change") + " reported"
	if output.BreakingCount > 0 {
		summary += " (" + formatCount(output.BreakingCount, "breaking change") + ")"
	}
	summary += ". Risk " + output.RiskLevel + ", recommended version bump: " + output.SemverRecommendation + "."
	return summary
}
