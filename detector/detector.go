package detector

import (
	"fmt"

	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/internal/severity"
	"github.com/erraggy/specdiff/model"
	"github.com/erraggy/specdiff/parser"
	"github.com/erraggy/specdiff/risk"
	"github.com/erraggy/specdiff/specerrors"
)

// DefaultConcurrency is the number of files DetectBatch compares at once
// when Concurrency is not set.
const DefaultConcurrency = 4

// Detector runs the parse, compare and score pipeline over two versions of
// a specification. A Detector holds no per-call state and may be shared
// between goroutines.
type Detector struct {
	// SeverityThreshold drops changes below this severity from Changes.
	// BreakingChanges are never filtered. Default: SeverityInfo (keep all).
	SeverityThreshold differ.Severity
	// IncludeDeprecations keeps DEPRECATED changes in Changes. Default: true
	IncludeDeprecations bool
	// Concurrency bounds the number of concurrent comparisons in DetectBatch.
	// Values below 1 use DefaultConcurrency.
	Concurrency int
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Detector instance with default settings
func New() *Detector {
	return &Detector{
		SeverityThreshold:   differ.SeverityInfo,
		IncludeDeprecations: true,
		Concurrency:         DefaultConcurrency,
	}
}

func (d *Detector) log() parser.Logger {
	return parser.OrNop(d.Logger)
}

// Detect parses both versions of a document with the same filename,
// compares them and scores the result. The format is detected once, from
// the old version; the new version is normalized the same way even if its
// own root keys say otherwise.
//
// Parse failures are returned as-is (wrapped with which version failed) and
// prevent the comparison from running.
func (d *Detector) Detect(oldContent, newContent, filename string) (*ComparisonResult, error) {
	if !d.SeverityThreshold.IsValid() {
		return nil, &specerrors.ConfigError{
			Option:  "severityThreshold",
			Value:   int(d.SeverityThreshold),
			Message: "must be one of INFO, WARNING, DANGEROUS, BREAKING",
		}
	}

	p := &parser.Parser{Logger: d.Logger}
	oldSpec, err := p.Parse(oldContent, filename)
	if err != nil {
		return nil, fmt.Errorf("detector: old version: %w", err)
	}
	// The old version fixes the format for both.
	newSpec, err := p.ParseAs(newContent, filename, oldSpec.Type)
	if err != nil {
		return nil, fmt.Errorf("detector: new version: %w", err)
	}

	result := Build(oldSpec, newSpec)
	d.log().Debug("compared specifications",
		"file", filename,
		"changes", result.TotalChanges,
		"breaking", len(result.BreakingChanges),
		"riskScore", result.RiskScore,
		"riskLevel", string(result.RiskLevel),
	)

	if d.SeverityThreshold != differ.SeverityInfo || !d.IncludeDeprecations {
		result = result.Filter(d.SeverityThreshold, d.IncludeDeprecations)
	}
	return result, nil
}

// Detect is a convenience function equivalent to New().Detect(oldContent, newContent, filename).
func Detect(oldContent, newContent, filename string) (*ComparisonResult, error) {
	return New().Detect(oldContent, newContent, filename)
}

// Build compares two already-parsed specifications and assembles an
// unfiltered ComparisonResult.
func Build(oldSpec, newSpec *model.ApiSpec) *ComparisonResult {
	cmp := differ.Compare(oldSpec, newSpec)
	assessment := risk.Assess(cmp.BreakingChanges, cmp.Changes)

	result := &ComparisonResult{
		Changes:              cmp.Changes,
		BreakingChanges:      cmp.BreakingChanges,
		TotalChanges:         len(cmp.Changes),
		RiskScore:            assessment.Score,
		RiskLevel:            assessment.Level,
		SemverRecommendation: assessment.Semver,
		Summary:              cmp.Summary,
	}
	if oldSpec != nil {
		result.APIName = oldSpec.Name
		result.FromVersion = oldSpec.Version
		result.Format = oldSpec.Type
	}
	if newSpec != nil {
		if newSpec.Name != "" {
			result.APIName = newSpec.Name
		}
		result.ToVersion = newSpec.Version
		result.Format = newSpec.Type
	}
	return result
}

// ParseSeverity converts a severity name (INFO, WARNING, DANGEROUS or
// BREAKING, case-insensitive) into a threshold.
func ParseSeverity(name string) (differ.Severity, error) {
	sev, err := severity.Parse(name)
	if err != nil {
		return differ.SeverityInfo, &specerrors.ConfigError{
			Option:  "severityThreshold",
			Value:   name,
			Message: "must be one of INFO, WARNING, DANGEROUS, BREAKING",
			Cause:   err,
		}
	}
	return sev, nil
}
