// Package commands provides CLI command handlers for specdiff.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/erraggy/specdiff/detector"
	"github.com/erraggy/specdiff/internal/logging"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrBreakingChanges is returned by a command run with --fail-on-breaking
// when breaking changes were found. Output has already been written.
var ErrBreakingChanges = errors.New("breaking changes detected")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w in the specified format (json or yaml).
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, string(bytes))
	return err
}

// detectionFlags are the flags shared by diff and batch.
type detectionFlags struct {
	Format         string
	Severity       string
	NoDeprecations bool
	FailOnBreaking bool
	LogLevel       string
}

// newDetector builds a Detector from the shared flags. The returned
// logger must be synced by the caller.
func (f *detectionFlags) newDetector() (*detector.Detector, *logging.ZapAdapter, error) {
	if err := ValidateOutputFormat(f.Format); err != nil {
		return nil, nil, err
	}

	threshold, err := detector.ParseSeverity(f.Severity)
	if err != nil {
		return nil, nil, err
	}

	zl, err := logging.New(f.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewZapAdapter(zl)

	d := detector.New()
	d.SeverityThreshold = threshold
	d.IncludeDeprecations = !f.NoDeprecations
	d.Logger = logger
	return d, logger, nil
}

// bind registers the shared flags on fs.
func (f *detectionFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&f.Severity, "severity", "INFO", "lowest severity to report: INFO, WARNING, DANGEROUS, or BREAKING")
	fs.BoolVar(&f.NoDeprecations, "no-deprecations", false, "omit newly deprecated endpoints from the reported changes")
	fs.BoolVar(&f.FailOnBreaking, "fail-on-breaking", false, "exit with status 1 when breaking changes are found")
	fs.StringVar(&f.LogLevel, "log-level", "warn", "log level for stderr diagnostics: debug, info, warn, or error")
}
