/*
Package differ compares two canonical specifications and classifies every
difference by severity.

# Overview

Compare walks three keyed collections of a model.ApiSpec in a fixed order:
endpoints (keyed by Endpoint.ID), schemas (keyed by name) and security
schemes (keyed by name). For each collection it reports removals, then
additions, then changes to entities present in both versions. Entities
present in both are compared in detail: endpoint parameters are keyed by
"location:name", responses by status code, schema properties by name.

Compare is pure and total: it never fails and never mutates its inputs.

# Severity Levels

  - SeverityBreaking: client code is expected to fail (removed endpoints,
    new required parameters, type changes, removed security schemes)
  - SeverityDangerous: something clients may depend on disappeared without
    breaking the wire contract (removed schemas and properties)
  - SeverityWarning: review recommended (deprecations, removed optional
    parameters, removed responses, new required properties)
  - SeverityInfo: additive or relaxing changes

# Breaking Changes

Every BREAKING change is also returned as a BreakingChange carrying a
migration suggestion (looked up by category and change type) and an impact
score from 0 to 100 used by package risk.

# Example

	result := differ.Compare(oldSpec, newSpec)
	for _, c := range result.BreakingChanges {
		fmt.Printf("%s (impact %d): %s\n", c.Path, c.ImpactScore, c.MigrationSuggestion)
	}
*/
package differ
