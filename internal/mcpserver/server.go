// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes specdiff's breaking change detection as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"strconv"

	"github.com/erraggy/specdiff"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `specdiff MCP server: compares two versions of an API description (OpenAPI/Swagger, AsyncAPI, GraphQL SDL, Protocol Buffers) and reports classified changes, breaking changes with migration suggestions, a 0-100 risk score and a semver recommendation.

Configuration: defaults are configurable via SPECDIFF_* environment variables set in your MCP client config.

Key settings:
- SPECDIFF_SEVERITY_THRESHOLD (default: INFO) - lowest severity reported in changes (INFO, WARNING, DANGEROUS, BREAKING)
- SPECDIFF_INCLUDE_DEPRECATIONS (default: true) - report newly deprecated endpoints
- SPECDIFF_BATCH_CONCURRENCY (default: 4) - files compared at once by detect_batch
- SPECDIFF_MAX_INLINE_SIZE (default: 10MiB) - maximum inline content size
- SPECDIFF_MAX_BATCH_FILES (default: 50) - maximum files per detect_batch call

Breaking changes, the risk score and the semver recommendation always describe the full comparison, whatever the threshold.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer()
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "specdiff", Version: specdiff.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Compare two versions of one API description and report every classified change (BREAKING, DANGEROUS, WARNING, INFO), the breaking changes with migration suggestions and impact scores, a 0-100 risk score with its level, and a MAJOR/MINOR/PATCH recommendation. Provide old and new as file paths or inline content; filename selects the format by extension (.yaml, .yml, .json, .graphql, .gql, .proto) and defaults to the old file's name. Use severity to report only changes at or above a level.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_batch",
		Description: "Compare several API descriptions at once. Each file entry has its own old/new inputs and filename. Files that fail to parse are reported in failures and do not stop the others. Returns a per-file summary and an aggregate with the maximum risk score and the semver recommendation for the whole set. Concurrency defaults to SPECDIFF_BATCH_CONCURRENCY.",
	}, handleDetectBatch)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
