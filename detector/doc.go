/*
Package detector is the entry point of specdiff: it parses two versions of a
specification, compares them, scores the result and returns a
ComparisonResult.

# Usage

	result, err := detector.Detect(oldText, newText, "openapi.yaml")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %s -> %s: %d changes, risk %d (%s), bump %s\n",
		result.APIName, result.FromVersion, result.ToVersion,
		result.TotalChanges, result.RiskScore, result.RiskLevel,
		result.SemverRecommendation)

Both versions are parsed with the same filename, so the format is chosen
once. Any parse failure is returned before comparison runs.

# Filtering

A Detector with a SeverityThreshold above INFO, or with
IncludeDeprecations disabled, narrows Changes. BreakingChanges are always
complete, and the risk score and semver recommendation always describe the
full comparison. Use ComparisonResult.Filter to narrow an existing result;
it returns a new value and leaves the original untouched.

# Batches

DetectBatch compares many files concurrently. A file that fails to parse
is logged, reported in BatchResult.Failures, and does not stop the others.
AggregateResults rolls several results up into one risk score and semver
recommendation.
*/
package detector
