package specerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("yaml: line 3: did not find expected key")
		err := &ParseError{
			Path:    "api.yaml",
			Format:  "openapi",
			Message: "invalid document",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in api.yaml (openapi): invalid document: yaml: line 3: did not find expected key" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrUnsupportedFormat) {
			t.Error("ParseError should not match ErrUnsupportedFormat")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{Path: "schema.graphql"})
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatal("errors.As should succeed")
		}
		if parseErr.Path != "schema.graphql" {
			t.Errorf("unexpected path: %s", parseErr.Path)
		}
	})
}

func TestUnsupportedFormatError(t *testing.T) {
	t.Run("Error message names extension", func(t *testing.T) {
		err := &UnsupportedFormatError{Path: "api.txt", Extension: ".txt"}
		if err.Error() != "unsupported format: extension .txt (api.txt)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without extension", func(t *testing.T) {
		err := &UnsupportedFormatError{Path: "Makefile"}
		if err.Error() != "unsupported format: extension <none> (Makefile)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedFormat", func(t *testing.T) {
		err := fmt.Errorf("detect: %w", &UnsupportedFormatError{Extension: ".xml"})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Error("should match ErrUnsupportedFormat")
		}
		if errors.Is(err, ErrParse) {
			t.Error("should not match ErrParse")
		}
	})
}

func TestUnknownSpecShapeError(t *testing.T) {
	err := &UnknownSpecShapeError{Path: "config.yaml"}
	if err.Error() != "unknown spec shape in config.yaml: expected an openapi, swagger, or asyncapi root key" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrUnknownSpecShape) {
		t.Error("should match ErrUnknownSpecShape")
	}
}

func TestConfigError(t *testing.T) {
	cause := errors.New("unknown severity")
	err := &ConfigError{Option: "severityThreshold", Value: "CRITICAL", Message: "invalid", Cause: cause}
	expected := "configuration error for severityThreshold (value: CRITICAL): invalid: unknown severity"
	if err.Error() != expected {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("should match ErrConfig")
	}
	if !errors.Is(err, cause) {
		t.Error("should unwrap to cause")
	}
}
