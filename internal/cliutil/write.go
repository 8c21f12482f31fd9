// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Label turns an upper snake case enum value such as REQUEST_BODY into a
// display label such as "Request Body".
func Label(value string) string {
	// A Caser is stateful; never share one between calls.
	return cases.Title(language.English).String(strings.ToLower(strings.ReplaceAll(value, "_", " ")))
}
