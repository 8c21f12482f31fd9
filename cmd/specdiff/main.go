package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/specdiff"
	"github.com/erraggy/specdiff/cmd/specdiff/commands"
	"github.com/erraggy/specdiff/internal/mcpserver"
)

// commandNames lists the commands suggestCommand can propose.
var commandNames = []string{"diff", "batch", "mcp", "version", "build-info", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := os.Args[1]
	var err error

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("specdiff v%s\n", specdiff.Version())
	case "build-info":
		fmt.Println(specdiff.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "diff":
		err = commands.HandleDiff(os.Stdout, os.Args[2:])
	case "batch":
		err = commands.HandleBatch(ctx, os.Stdout, os.Args[2:])
	case "mcp":
		err = mcpserver.Run(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n\n", suggestion)
		}
		printUsage()
		stop()
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, commands.ErrBreakingChanges) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDistance := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`specdiff - API Specification Breaking Change Detector

Usage:
  specdiff <command> [options]

Commands:
  diff        Compare two versions of an API description
  batch       Compare two directories of API descriptions
  mcp         Start the MCP server over stdio
  version     Show version information
  build-info  Show version, commit, build time and Go version
  help        Show this help message

Supported formats: OpenAPI 3.x, Swagger 2.0, AsyncAPI (.yaml, .yml, .json),
GraphQL SDL (.graphql, .gql) and Protocol Buffers (.proto).

Examples:
  specdiff diff api-v1.yaml api-v2.yaml
  specdiff diff --format json --fail-on-breaking old.proto new.proto
  specdiff batch --concurrency 8 specs-v1/ specs-v2/
  specdiff mcp

Run 'specdiff <command> --help' for more information on a command.`)
}
