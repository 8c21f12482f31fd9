// Package specerrors provides structured error types for the specdiff library.
//
// Import path: github.com/erraggy/specdiff/specerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing collaborators (CLI, CI action, editor integration) to distinguish a
// malformed document from an unsupported file type.
//
// # Error Types
//
//   - [ParseError]: malformed document for a recognized format, always carrying the filename
//   - [UnsupportedFormatError]: the filename extension is not recognized
//   - [UnknownSpecShapeError]: YAML/JSON content matches neither OpenAPI/Swagger nor AsyncAPI
//   - [ConfigError]: invalid options such as an unknown severity threshold
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrUnsupportedFormat]: Matches any [UnsupportedFormatError]
//   - [ErrUnknownSpecShape]: Matches any [UnknownSpecShapeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := detector.New().Detect(oldText, newText, "api.yaml")
//	if errors.Is(err, specerrors.ErrUnsupportedFormat) {
//	    // Reject the file before reading anything else
//	}
//
//	var parseErr *specerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("cannot read %s: %v\n", parseErr.Path, parseErr.Cause)
//	}
package specerrors
