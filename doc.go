// Package specdiff detects breaking changes between two versions of an API
// description and recommends a semantic version bump.
//
// specdiff reads four description formats and normalizes each into one
// canonical model before comparing:
//
//   - OpenAPI 3.x and Swagger 2.0 (YAML or JSON)
//   - AsyncAPI (YAML or JSON)
//   - GraphQL SDL (.graphql, .gql)
//   - Protocol Buffer service definitions (.proto)
//
// # Overview
//
// The library is a one-way pipeline of pure stages:
//
//   - parser: detect the format and normalize a document into a model.ApiSpec
//   - differ: compare two ApiSpec values and classify every change as
//     BREAKING, DANGEROUS, WARNING or INFO
//   - risk: roll the changes up into a 0-100 risk score, a risk level and a
//     MAJOR/MINOR/PATCH recommendation
//   - detector: run the whole pipeline and package a ComparisonResult;
//     batch mode compares many files concurrently
//
// No stage performs I/O or mutates its inputs. Front ends (the specdiff
// command and its MCP server) read files and render results.
//
// # Installation
//
//	go get github.com/erraggy/specdiff
//
// # Quick Start
//
//	import "github.com/erraggy/specdiff/detector"
//
//	result, err := detector.Detect(oldText, newText, "openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.HasBreakingChanges() {
//		for _, bc := range result.BreakingChanges {
//			fmt.Printf("%s: %s\n  %s\n", bc.Path, bc.Description, bc.MigrationSuggestion)
//		}
//	}
//	fmt.Printf("risk %d (%s), recommend %s\n",
//		result.RiskScore, result.RiskLevel, result.SemverRecommendation)
//
// Narrow the reported changes with a severity threshold. Breaking changes,
// the risk score and the recommendation always describe the full comparison:
//
//	d := detector.New()
//	d.SeverityThreshold = differ.SeverityWarning
//	d.IncludeDeprecations = false
//	result, err := d.Detect(oldText, newText, "schema.graphql")
//
// # Command-Line Tool
//
//	specdiff diff old.yaml new.yaml
//	specdiff diff --format json --fail-on-breaking old.proto new.proto
//	specdiff batch --concurrency 8 old/ new/
//	specdiff mcp
//
// See cmd/specdiff for details.
package specdiff
