package detector

import (
	"context"

	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/risk"
	"golang.org/x/sync/errgroup"
)

// Input is one file to compare in a batch
type Input struct {
	// Filename selects the parser and labels results and failures
	Filename   string `json:"filename" yaml:"filename"`
	OldContent string `json:"-" yaml:"-"`
	NewContent string `json:"-" yaml:"-"`
}

// FileResult is the comparison of one batch input
type FileResult struct {
	Filename string            `json:"filename" yaml:"filename"`
	Result   *ComparisonResult `json:"result" yaml:"result"`
}

// FileFailure records a batch input that could not be compared
type FileFailure struct {
	Filename string `json:"filename" yaml:"filename"`
	Err      error  `json:"-" yaml:"-"`
	// Error is Err's message, kept for serialization
	Error string `json:"error" yaml:"error"`
}

// BatchResult holds the outcome of DetectBatch. Results and Failures each
// keep input order.
type BatchResult struct {
	Results  []FileResult  `json:"results" yaml:"results"`
	Failures []FileFailure `json:"failures" yaml:"failures"`
	// Aggregate rolls up every successful result
	Aggregate Aggregate `json:"aggregate" yaml:"aggregate"`
}

// DetectBatch compares every input independently, running up to
// Concurrency comparisons at once. A failing input never aborts the
// others: it is logged at warn level and reported in Failures. Inputs not
// yet started when ctx is cancelled are reported as failures with ctx's error.
func (d *Detector) DetectBatch(ctx context.Context, inputs []Input) *BatchResult {
	limit := d.Concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}

	type outcome struct {
		result *ComparisonResult
		err    error
	}
	outcomes := make([]outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i].err = err
				return nil
			}
			outcomes[i].result, outcomes[i].err = d.Detect(in.OldContent, in.NewContent, in.Filename)
			return nil
		})
	}
	// Goroutines never return an error; failures are collected per input
	_ = g.Wait()

	batch := &BatchResult{
		Results:  make([]FileResult, 0, len(inputs)),
		Failures: []FileFailure{},
	}
	results := make([]*ComparisonResult, 0, len(inputs))
	for i, o := range outcomes {
		filename := inputs[i].Filename
		if o.err != nil {
			d.log().Warn("skipping file", "file", filename, "error", o.err)
			batch.Failures = append(batch.Failures, FileFailure{Filename: filename, Err: o.err, Error: o.err.Error()})
			continue
		}
		batch.Results = append(batch.Results, FileResult{Filename: filename, Result: o.result})
		results = append(results, o.result)
	}
	batch.Aggregate = AggregateResults(results)
	return batch
}

// Aggregate is the roll-up of several comparison results
type Aggregate struct {
	// Files is the number of results aggregated
	Files int `json:"files" yaml:"files"`
	// TotalChanges sums TotalChanges over all results
	TotalChanges int `json:"totalChanges" yaml:"totalChanges"`
	// BreakingChanges counts breaking changes over all results
	BreakingChanges int `json:"breakingChanges" yaml:"breakingChanges"`
	// RiskScore is the maximum risk score of any result
	RiskScore int `json:"riskScore" yaml:"riskScore"`
	// RiskLevel is recomputed from RiskScore
	RiskLevel risk.Level `json:"riskLevel" yaml:"riskLevel"`
	// SemverRecommendation is recomputed from the union of all results
	SemverRecommendation risk.SemverBump `json:"semverRecommendation" yaml:"semverRecommendation"`
}

// AggregateResults combines results by taking the maximum risk score and
// recomputing the level and semver recommendation for the whole set. An
// empty set aggregates to a zero score, LOW and PATCH. Nil entries are skipped.
func AggregateResults(results []*ComparisonResult) Aggregate {
	var agg Aggregate
	hasBreaking, hasAdded := false, false
	for _, r := range results {
		if r == nil {
			continue
		}
		agg.Files++
		agg.TotalChanges += r.TotalChanges
		agg.BreakingChanges += len(r.BreakingChanges)
		agg.RiskScore = max(agg.RiskScore, r.RiskScore)

		hasBreaking = hasBreaking || r.HasBreakingChanges()
		// Changes may be filtered; the per-result recommendation reflects
		// additions that the filter dropped.
		hasAdded = hasAdded || r.SemverRecommendation == risk.SemverMinor || containsAddition(r.Changes)
	}
	agg.RiskLevel = risk.LevelFor(agg.RiskScore)
	agg.SemverRecommendation = risk.Recommend(hasBreaking, hasAdded)
	return agg
}

func containsAddition(changes []differ.Change) bool {
	for _, c := range changes {
		if c.Type == differ.ChangeTypeAdded {
			return true
		}
	}
	return false
}
