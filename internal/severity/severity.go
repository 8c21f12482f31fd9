// Package severity provides the severity levels attached to every change
// reported by the differ and consumed by the detector and risk packages.
//
// The levels are ordered from least to most severe:
// Info < Warning < Dangerous < Breaking
//
// Ordering is meaningful: threshold filtering keeps every change whose
// severity is greater than or equal to the threshold.
package severity

import (
	"fmt"
	"strings"
)

// Severity indicates how likely a change is to affect existing clients.
type Severity int

const (
	// SeverityInfo indicates a purely additive or relaxing change.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a change clients should review, such as a
	// deprecation or a removed optional element.
	SeverityWarning

	// SeverityDangerous indicates a change that does not break the wire
	// contract but removes something clients may depend on.
	SeverityDangerous

	// SeverityBreaking indicates a change that is expected to break clients.
	SeverityBreaking
)

// All returns every severity level in ascending order.
func All() []Severity {
	return []Severity{SeverityInfo, SeverityWarning, SeverityDangerous, SeverityBreaking}
}

// String returns the upper-case name of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityDangerous:
		return "DANGEROUS"
	case SeverityBreaking:
		return "BREAKING"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether s is one of the defined levels.
func (s Severity) IsValid() bool {
	return s >= SeverityInfo && s <= SeverityBreaking
}

// AtLeast reports whether s is at or above threshold.
func (s Severity) AtLeast(threshold Severity) bool {
	return s >= threshold
}

// Parse converts a severity name (case-insensitive) into a Severity.
func Parse(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "INFO":
		return SeverityInfo, nil
	case "WARNING":
		return SeverityWarning, nil
	case "DANGEROUS":
		return SeverityDangerous, nil
	case "BREAKING":
		return SeverityBreaking, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
