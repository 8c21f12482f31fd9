// Package risk rolls the classified changes of a comparison up into a single
// 0-100 risk score, a four-tier risk level and a semantic version
// recommendation.
//
// Every function in this package is pure; Assess may be called concurrently.
package risk

import (
	"github.com/erraggy/specdiff/differ"
)

// Level is a risk tier derived from a score
type Level string

const (
	// LevelLow is a score below 25
	LevelLow Level = "LOW"
	// LevelMedium is a score from 25 to 49
	LevelMedium Level = "MEDIUM"
	// LevelHigh is a score from 50 to 74
	LevelHigh Level = "HIGH"
	// LevelCritical is a score of 75 or more
	LevelCritical Level = "CRITICAL"
)

// SemverBump is the minimal semantic version increment implied by a set of changes
type SemverBump string

const (
	// SemverMajor is required when any breaking change exists
	SemverMajor SemverBump = "MAJOR"
	// SemverMinor is recommended when something was added
	SemverMinor SemverBump = "MINOR"
	// SemverPatch covers everything else, including no changes at all
	SemverPatch SemverBump = "PATCH"
)

// Scoring constants.
const (
	maxScore        = 100
	maxBonus        = 20
	dangerousWeight = 5
	warningWeight   = 2
)

// Assessment is the output of the risk scorer
type Assessment struct {
	Score  int        `json:"riskScore" yaml:"riskScore"`
	Level  Level      `json:"riskLevel" yaml:"riskLevel"`
	Semver SemverBump `json:"semverRecommendation" yaml:"semverRecommendation"`
}

// Assess scores a comparison from its breaking subset and its full change list.
func Assess(breaking []differ.BreakingChange, all []differ.Change) Assessment {
	score := Score(breaking, all)
	return Assessment{
		Score:  score,
		Level:  LevelFor(score),
		Semver: Recommend(len(breaking) > 0, hasAdditions(all)),
	}
}

// Score computes the 0-100 risk score.
//
// The base is the mean impact of the breaking changes, normalized against
// max(len(breaking)*100, 100). DANGEROUS and WARNING changes add a bonus of
// 5 and 2 points each, capped at 20. The total is capped at 100. A
// comparison with no changes scores 0.
//
// Because the base is a mean, adding a breaking change whose impact is
// below the current mean lowers the score. Adding changes of equal or
// higher impact never does.
func Score(breaking []differ.BreakingChange, all []differ.Change) int {
	if len(all) == 0 {
		return 0
	}

	sum := 0
	for _, bc := range breaking {
		sum += bc.ImpactScore
	}
	denominator := max(len(breaking)*maxScore, maxScore)
	base := (sum*maxScore + denominator/2) / denominator

	bonus := 0
	for _, c := range all {
		switch c.Severity {
		case differ.SeverityDangerous:
			bonus += dangerousWeight
		case differ.SeverityWarning:
			bonus += warningWeight
		}
	}

	return max(0, min(base+min(bonus, maxBonus), maxScore))
}

// LevelFor maps a score to its risk tier. Each tier includes its lower bound.
func LevelFor(score int) Level {
	switch {
	case score >= 75:
		return LevelCritical
	case score >= 50:
		return LevelHigh
	case score >= 25:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Recommend picks MAJOR when breaking changes exist, MINOR when something
// was added, and PATCH otherwise.
func Recommend(hasBreaking, hasAdded bool) SemverBump {
	switch {
	case hasBreaking:
		return SemverMajor
	case hasAdded:
		return SemverMinor
	default:
		return SemverPatch
	}
}

func hasAdditions(changes []differ.Change) bool {
	for _, c := range changes {
		if c.Type == differ.ChangeTypeAdded {
			return true
		}
	}
	return false
}
