package detector

import (
	"fmt"

	"github.com/erraggy/specdiff/differ"
	"github.com/erraggy/specdiff/parser"
	"github.com/erraggy/specdiff/specerrors"
)

// Option is a function that configures a detection operation
type Option func(*detectConfig) error

// detectConfig holds configuration for a detection operation
type detectConfig struct {
	oldContent          *string
	newContent          *string
	filename            string
	threshold           differ.Severity
	includeDeprecations bool
	logger              parser.Logger
}

// DetectWithOptions compares two versions of a specification using
// functional options.
//
// Example:
//
//	result, err := detector.DetectWithOptions(
//	    detector.WithOldContent(v1),
//	    detector.WithNewContent(v2),
//	    detector.WithFilename("openapi.yaml"),
//	    detector.WithSeverityThreshold(differ.SeverityWarning),
//	)
func DetectWithOptions(opts ...Option) (*ComparisonResult, error) {
	cfg := &detectConfig{
		threshold:           differ.SeverityInfo,
		includeDeprecations: true,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("detector: invalid options: %w", err)
		}
	}
	if cfg.oldContent == nil || cfg.newContent == nil {
		return nil, fmt.Errorf("detector: invalid options: %w",
			&specerrors.ConfigError{Option: "content", Message: "must specify both versions (use WithOldContent and WithNewContent)"})
	}
	if cfg.filename == "" {
		return nil, fmt.Errorf("detector: invalid options: %w",
			&specerrors.ConfigError{Option: "filename", Message: "must specify a filename (use WithFilename)"})
	}

	d := &Detector{
		SeverityThreshold:   cfg.threshold,
		IncludeDeprecations: cfg.includeDeprecations,
		Logger:              cfg.logger,
	}
	return d.Detect(*cfg.oldContent, *cfg.newContent, cfg.filename)
}

// WithOldContent sets the text of the old version
func WithOldContent(content string) Option {
	return func(cfg *detectConfig) error {
		cfg.oldContent = &content
		return nil
	}
}

// WithNewContent sets the text of the new version
func WithNewContent(content string) Option {
	return func(cfg *detectConfig) error {
		cfg.newContent = &content
		return nil
	}
}

// WithFilename sets the filename used for format detection and error messages
func WithFilename(filename string) Option {
	return func(cfg *detectConfig) error {
		cfg.filename = filename
		return nil
	}
}

// WithSeverityThreshold drops changes below threshold from Changes
// Default: SeverityInfo
func WithSeverityThreshold(threshold differ.Severity) Option {
	return func(cfg *detectConfig) error {
		if !threshold.IsValid() {
			return &specerrors.ConfigError{Option: "severityThreshold", Value: int(threshold), Message: "unknown severity"}
		}
		cfg.threshold = threshold
		return nil
	}
}

// WithSeverityName is WithSeverityThreshold for a severity name such as "WARNING"
func WithSeverityName(name string) Option {
	return func(cfg *detectConfig) error {
		sev, err := ParseSeverity(name)
		if err != nil {
			return err
		}
		cfg.threshold = sev
		return nil
	}
}

// WithIncludeDeprecations keeps or drops DEPRECATED changes
// Default: true
func WithIncludeDeprecations(include bool) Option {
	return func(cfg *detectConfig) error {
		cfg.includeDeprecations = include
		return nil
	}
}

// WithLogger sets a structured logger for debug output
func WithLogger(l parser.Logger) Option {
	return func(cfg *detectConfig) error {
		cfg.logger = l
		return nil
	}
}
