package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/specdiff/detector"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type detectBatchInput struct {
	Files          []versionPair `json:"files"                     jsonschema:"Old/new pairs to compare, one entry per document"`
	Concurrency    int           `json:"concurrency,omitempty"     jsonschema:"Maximum comparisons run at once (default: SPECDIFF_BATCH_CONCURRENCY)"`
	Severity       string        `json:"severity,omitempty"        jsonschema:"Lowest severity to report: INFO, WARNING, DANGEROUS or BREAKING"`
	NoDeprecations bool          `json:"no_deprecations,omitempty" jsonschema:"Omit newly deprecated endpoints from change counts"`
}

type batchFileResult struct {
	Filename             string `json:"filename"`
	APIName              string `json:"api_name"`
	FromVersion          string `json:"from_version"`
	ToVersion            string `json:"to_version"`
	TotalChanges         int    `json:"total_changes"`
	BreakingCount        int    `json:"breaking_count"`
	RiskScore            int    `json:"risk_score"`
	RiskLevel            string `json:"risk_level"`
	SemverRecommendation string `json:"semver_recommendation"`
}

type batchFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type batchAggregate struct {
	Files                int    `json:"files"`
	TotalChanges         int    `json:"total_changes"`
	BreakingChanges      int    `json:"breaking_changes"`
	RiskScore            int    `json:"risk_score"`
	RiskLevel            string `json:"risk_level"`
	SemverRecommendation string `json:"semver_recommendation"`
}

type detectBatchOutput struct {
	Results   []batchFileResult `json:"results,omitempty"`
	Failures  []batchFailure    `json:"failures,omitempty"`
	Aggregate batchAggregate    `json:"aggregate"`
	Summary   string            `json:"summary"`
}

func handleDetectBatch(ctx context.Context, _ *mcp.CallToolRequest, input detectBatchInput) (*mcp.CallToolResult, detectBatchOutput, error) {
	if len(input.Files) == 0 {
		return errResult(fmt.Errorf("at least one file entry is required")), detectBatchOutput{}, nil
	}
	if len(input.Files) > cfg.MaxBatchFiles {
		return errResult(fmt.Errorf("%d file entries exceeds maximum %d; set SPECDIFF_MAX_BATCH_FILES to increase",
			len(input.Files), cfg.MaxBatchFiles)), detectBatchOutput{}, nil
	}

	d, err := newDetector(input.Severity, input.NoDeprecations)
	if err != nil {
		return errResult(err), detectBatchOutput{}, nil
	}
	if input.Concurrency > 0 {
		d.Concurrency = input.Concurrency
	}

	// Entries whose inputs cannot be loaded are reported alongside parse
	// failures, in entry order.
	var loadFailures []batchFailure
	inputs := make([]detector.Input, 0, len(input.Files))
	for i, pair := range input.Files {
		oldContent, newContent, filename, err := pair.resolve()
		if err != nil {
			label := pair.Filename
			if label == "" {
				label = fmt.Sprintf("files[%d]", i)
			}
			loadFailures = append(loadFailures, batchFailure{Filename: label, Error: sanitizeError(err)})
			continue
		}
		inputs = append(inputs, detector.Input{Filename: filename, OldContent: oldContent, NewContent: newContent})
	}

	batch := d.DetectBatch(ctx, inputs)

	output := detectBatchOutput{
		Results:  makeSlice[batchFileResult](len(batch.Results)),
		Failures: makeSlice[batchFailure](len(loadFailures) + len(batch.Failures)),
		Aggregate: batchAggregate{
			Files:                batch.Aggregate.Files,
			TotalChanges:         batch.Aggregate.TotalChanges,
			BreakingChanges:      batch.Aggregate.BreakingChanges,
			RiskScore:            batch.Aggregate.RiskScore,
			RiskLevel:            string(batch.Aggregate.RiskLevel),
			SemverRecommendation: string(batch.Aggregate.SemverRecommendation),
		},
	}
	for _, fr := range batch.Results {
		r := fr.Result
		output.Results = append(output.Results, batchFileResult{
			Filename:             fr.Filename,
			APIName:              r.APIName,
			FromVersion:          r.FromVersion,
			ToVersion:            r.ToVersion,
			TotalChanges:         r.TotalChanges,
			BreakingCount:        len(r.BreakingChanges),
			RiskScore:            r.RiskScore,
			RiskLevel:            string(r.RiskLevel),
			SemverRecommendation: string(r.SemverRecommendation),
		})
	}
	output.Failures = append(output.Failures, loadFailures...)
	for _, f := range batch.Failures {
		output.Failures = append(output.Failures, batchFailure{Filename: f.Filename, Error: sanitizeError(f.Err)})
	}

	output.Summary = fmt.Sprintf("Compared %s, %s failed. %s across all files (%s). Risk %s (%d), recommended version bump: %s.",
		formatCount(len(output.Results), "file"),
		formatCount(len(output.Failures), "file"),
		formatCount(output.Aggregate.TotalChanges, "change"),
		formatCount(output.Aggregate.BreakingChanges, "breaking change"),
		output.Aggregate.RiskLevel, output.Aggregate.RiskScore,
		output.Aggregate.SemverRecommendation)
	return nil, output, nil
}
