package commands

import (
	"io"
	"strconv"
	"strings"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/detector"
	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/internal/cliutil"
)

// renderResult writes the human-readable report for one comparison.
func renderResult(w io.Writer, oldPath, newPath string, result *detector.ComparisonResult) {
	cliutil.Writef(w, "API Specification Diff\n")
	cliutil.Writef(w, "======================\n\n")
	cliutil.Writef(w, "specdiff version: %s\n", specdiff.Version())
	cliutil.Writef(w, "API: %s (%s)\n", result.APIName, result.Format)
	cliutil.Writef(w, "Old: %s (%s)\n", oldPath, result.FromVersion)
	cliutil.Writef(w, "New: %s (%s)\n\n", newPath, result.ToVersion)

	if len(result.Changes) == 0 {
		cliutil.Writef(w, "✓ No changes reported\n\n")
	}

	// Changes grouped by category, in category order
	byCategory := make(map[differ.Category][]differ.Change)
	for _, c := range result.Changes {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}
	for _, category := range differ.Categories() {
		changes := byCategory[category]
		if len(changes) == 0 {
			continue
		}
		cliutil.Writef(w, "%s Changes (%d):\n", cliutil.Label(string(category)), len(changes))
		for _, c := range changes {
			cliutil.Writef(w, "  %s\n", c.String())
		}
		cliutil.Writef(w, "\n")
	}

	if len(result.BreakingChanges) > 0 {
		cliutil.Writef(w, "Migration Guide (%d):\n", len(result.BreakingChanges))
		for _, bc := range result.BreakingChanges {
			cliutil.Writef(w, "  %s (impact %d)\n", bc.Path, bc.ImpactScore)
			cliutil.Writef(w, "    %s\n", bc.MigrationSuggestion)
		}
		cliutil.Writef(w, "\n")
	}

	renderSummary(w, result)
}

func renderSummary(w io.Writer, result *detector.ComparisonResult) {
	cliutil.Writef(w, "Summary:\n")
	cliutil.Writef(w, "  Total changes: %d\n", result.TotalChanges)
	for _, category := range differ.Categories() {
		counts := result.Summary.For(category)
		if counts.Total() == 0 {
			continue
		}
		cliutil.Writef(w, "  %s: %s\n", cliutil.Label(string(category)), formatCounts(counts))
	}
	if result.HasBreakingChanges() {
		cliutil.Writef(w, "  ✗ Breaking changes: %d\n", len(result.BreakingChanges))
	} else {
		cliutil.Writef(w, "  ✓ Breaking changes: 0\n")
	}
	cliutil.Writef(w, "  Risk: %s (%d/100)\n", cliutil.Label(string(result.RiskLevel)), result.RiskScore)
	cliutil.Writef(w, "  Recommended version bump: %s\n", cliutil.Label(string(result.SemverRecommendation)))
}

// formatCounts renders the non-zero counts, e.g. "1 added, 2 removed".
func formatCounts(c differ.CategoryCounts) string {
	var parts []string
	for _, p := range []struct {
		n    int
		verb string
	}{
		{c.Added, "added"},
		{c.Removed, "removed"},
		{c.Modified, "modified"},
		{c.Deprecated, "deprecated"},
	} {
		if p.n > 0 {
			parts = append(parts, strconv.Itoa(p.n)+" "+p.verb)
		}
	}
	return strings.Join(parts, ", ")
}
