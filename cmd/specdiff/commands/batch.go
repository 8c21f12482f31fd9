package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/detector"
	"github.com/erraggy/specdiff/internal/cliutil"
	"github.com/erraggy/specdiff/parser"
)

// BatchFlags contains flags for the batch command
type BatchFlags struct {
	detectionFlags
	Concurrency int
}

// SetupBatchFlags creates and configures a FlagSet for the batch command.
// Returns the FlagSet and a BatchFlags struct with bound flag variables.
func SetupBatchFlags() (*flag.FlagSet, *BatchFlags) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	flags := &BatchFlags{}
	flags.bind(fs)
	fs.IntVar(&flags.Concurrency, "concurrency", detector.DefaultConcurrency, "number of files compared at once")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: specdiff batch [flags] <old-dir> <new-dir>\n\n")
		cliutil.Writef(fs.Output(), "Compare every supported file under <old-dir> with the file at the same\n")
		cliutil.Writef(fs.Output(), "relative path under <new-dir>, and aggregate the results.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  specdiff batch specs-v1/ specs-v2/\n")
		cliutil.Writef(fs.Output(), "  specdiff batch --concurrency 8 --format yaml old/ new/\n")
		cliutil.Writef(fs.Output(), "  specdiff batch --fail-on-breaking main-specs/ pr-specs/\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Files that fail to parse, or exist on only one side, are reported as\n")
		cliutil.Writef(fs.Output(), "    failures and do not stop the other comparisons\n")
		cliutil.Writef(fs.Output(), "  - The aggregate risk score is the maximum over all compared files\n")
	}

	return fs, flags
}

// HandleBatch executes the batch command, writing the report to w
func HandleBatch(ctx context.Context, w io.Writer, args []string) error {
	fs, flags := SetupBatchFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("batch command requires exactly two directories")
	}
	if flags.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency %d: must be at least 1", flags.Concurrency)
	}

	d, logger, err := flags.newDetector()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	d.Concurrency = flags.Concurrency

	inputs, failures, err := collectInputs(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return err
	}
	if len(inputs) == 0 && len(failures) == 0 {
		return fmt.Errorf("no supported files found under %s", fs.Arg(0))
	}

	batch := d.DetectBatch(ctx, inputs)
	batch.Failures = append(failures, batch.Failures...)

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(w, batch, flags.Format); err != nil {
			return err
		}
	} else {
		renderBatch(w, batch)
	}

	if flags.FailOnBreaking && batch.Aggregate.BreakingChanges > 0 {
		return ErrBreakingChanges
	}
	return nil
}

// collectInputs pairs the supported files of oldDir and newDir by relative
// path. Files present on only one side, or that cannot be read, become
// failures. Inputs are in lexical path order.
func collectInputs(oldDir, newDir string) ([]detector.Input, []detector.FileFailure, error) {
	oldFiles, err := supportedFiles(oldDir)
	if err != nil {
		return nil, nil, err
	}
	newFiles, err := supportedFiles(newDir)
	if err != nil {
		return nil, nil, err
	}

	inNew := make(map[string]bool, len(newFiles))
	for _, rel := range newFiles {
		inNew[rel] = true
	}

	var inputs []detector.Input
	failures := []detector.FileFailure{}
	fail := func(rel string, err error) {
		failures = append(failures, detector.FileFailure{Filename: rel, Err: err, Error: err.Error()})
	}

	inOld := make(map[string]bool, len(oldFiles))
	for _, rel := range oldFiles {
		inOld[rel] = true
		if !inNew[rel] {
			fail(rel, fmt.Errorf("removed: no counterpart under %s", newDir))
			continue
		}
		oldContent, err := os.ReadFile(filepath.Join(oldDir, rel))
		if err != nil {
			fail(rel, err)
			continue
		}
		newContent, err := os.ReadFile(filepath.Join(newDir, rel))
		if err != nil {
			fail(rel, err)
			continue
		}
		inputs = append(inputs, detector.Input{
			Filename:   rel,
			OldContent: string(oldContent),
			NewContent: string(newContent),
		})
	}
	for _, rel := range newFiles {
		if !inOld[rel] {
			fail(rel, fmt.Errorf("added: no counterpart under %s", oldDir))
		}
	}
	return inputs, failures, nil
}

// supportedFiles lists the relative paths of files under root whose
// extension the parser accepts, in lexical order.
func supportedFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !parser.IsSupportedFile(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}

func renderBatch(w io.Writer, batch *detector.BatchResult) {
	cliutil.Writef(w, "API Specification Batch Diff\n")
	cliutil.Writef(w, "============================\n\n")
	cliutil.Writef(w, "specdiff version: %s\n\n", specdiff.Version())

	if len(batch.Results) > 0 {
		cliutil.Writef(w, "Files (%d):\n", len(batch.Results))
		for _, fr := range batch.Results {
			r := fr.Result
			marker := "✓"
			if r.HasBreakingChanges() {
				marker = "✗"
			}
			cliutil.Writef(w, "  %s %s: %d changes, %d breaking, risk %s (%d), bump %s\n",
				marker, fr.Filename, r.TotalChanges, len(r.BreakingChanges),
				cliutil.Label(string(r.RiskLevel)), r.RiskScore, cliutil.Label(string(r.SemverRecommendation)))
		}
		cliutil.Writef(w, "\n")
	}

	if len(batch.Failures) > 0 {
		cliutil.Writef(w, "Failures (%d):\n", len(batch.Failures))
		for _, f := range batch.Failures {
			cliutil.Writef(w, "  %s: %s\n", f.Filename, f.Error)
		}
		cliutil.Writef(w, "\n")
	}

	agg := batch.Aggregate
	cliutil.Writef(w, "Aggregate:\n")
	cliutil.Writef(w, "  Files compared: %d\n", agg.Files)
	cliutil.Writef(w, "  Total changes: %d\n", agg.TotalChanges)
	cliutil.Writef(w, "  Breaking changes: %d\n", agg.BreakingChanges)
	cliutil.Writef(w, "  Risk: %s (%d/100)\n", cliutil.Label(string(agg.RiskLevel)), agg.RiskScore)
	cliutil.Writef(w, "  Recommended version bump: %s\n", cliutil.Label(string(agg.SemverRecommendation)))
}
