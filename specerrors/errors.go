package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a document could not be parsed or normalized.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedFormat indicates the filename extension is not recognized.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrUnknownSpecShape indicates a YAML/JSON document that is neither
	// OpenAPI/Swagger nor AsyncAPI.
	ErrUnknownSpecShape = errors.New("unknown spec shape")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse a specification document of a
// recognized format.
type ParseError struct {
	// Path is the filename the document was supplied under
	Path string
	// Format is the detected format (openapi, asyncapi, graphql, grpc), if known
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message prefixed with the filename.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// UnsupportedFormatError is returned when a filename extension does not map
// to any known specification format.
type UnsupportedFormatError struct {
	// Path is the filename that was rejected
	Path string
	// Extension is the extension that was not recognized (may be empty)
	Extension string
}

// Error returns a human-readable error message naming the extension.
func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "<none>"
	}
	msg := "unsupported format: extension " + ext
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// UnknownSpecShapeError is returned when a YAML/JSON document parses but
// carries neither an openapi/swagger nor an asyncapi root key.
type UnknownSpecShapeError struct {
	// Path is the filename of the document
	Path string
}

// Error returns a human-readable error message.
func (e *UnknownSpecShapeError) Error() string {
	msg := "unknown spec shape"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	return msg + ": expected an openapi, swagger, or asyncapi root key"
}

// Is reports whether target matches this error type.
func (e *UnknownSpecShapeError) Is(target error) bool {
	return target == ErrUnknownSpecShape
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
