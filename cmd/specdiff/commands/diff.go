package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/specdiff/internal/cliutil"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	detectionFlags
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}
	flags.bind(fs)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: specdiff diff [flags] <old> <new>\n\n")
		cliutil.Writef(fs.Output(), "Compare two versions of an API description and report classified changes,\n")
		cliutil.Writef(fs.Output(), "breaking changes, a risk score and a semver recommendation.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nSupported Formats (by extension of <old>):\n")
		cliutil.Writef(fs.Output(), "  .yaml, .yml, .json  OpenAPI 3.x, Swagger 2.0 or AsyncAPI\n")
		cliutil.Writef(fs.Output(), "  .graphql, .gql      GraphQL SDL\n")
		cliutil.Writef(fs.Output(), "  .proto              Protocol Buffer service definitions\n")
		cliutil.Writef(fs.Output(), "\nSeverities:\n")
		cliutil.Writef(fs.Output(), "  BREAKING   Client code fails without modification\n")
		cliutil.Writef(fs.Output(), "  DANGEROUS  Something clients may depend on disappeared\n")
		cliutil.Writef(fs.Output(), "  WARNING    Deprecations and new required fields\n")
		cliutil.Writef(fs.Output(), "  INFO       Additions and relaxations\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  specdiff diff api-v1.yaml api-v2.yaml\n")
		cliutil.Writef(fs.Output(), "  specdiff diff --severity DANGEROUS old.graphql new.graphql\n")
		cliutil.Writef(fs.Output(), "  specdiff diff --format json --fail-on-breaking old.proto new.proto | jq '.riskScore'\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Comparison completed (and no breaking changes with --fail-on-breaking)\n")
		cliutil.Writef(fs.Output(), "  1    Error, or breaking changes found with --fail-on-breaking\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - --severity narrows the reported changes only; breaking changes, the\n")
		cliutil.Writef(fs.Output(), "    risk score and the recommendation always describe the full comparison\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command, writing the report to w
func HandleDiff(w io.Writer, args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths")
	}

	oldPath := fs.Arg(0)
	newPath := fs.Arg(1)

	d, logger, err := flags.newDetector()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	oldContent, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("reading old version: %w", err)
	}
	newContent, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("reading new version: %w", err)
	}

	result, err := d.Detect(string(oldContent), string(newContent), oldPath)
	if err != nil {
		return fmt.Errorf("comparing specifications: %w", err)
	}

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(w, result, flags.Format); err != nil {
			return err
		}
	} else {
		renderResult(w, oldPath, newPath, result)
	}

	if flags.FailOnBreaking && result.HasBreakingChanges() {
		return ErrBreakingChanges
	}
	return nil
}
