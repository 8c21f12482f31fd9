package parser

import (
	"fmt"

	"github.com/erraggy/specdiff/model"
	"github.com/erraggy/specdiff/specerrors"
)

// Parser normalizes specification documents into the canonical model.
// A Parser holds no per-document state and may be shared between goroutines.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

// Parse is a convenience function equivalent to New().Parse(content, filename).
func Parse(content, filename string) (*model.ApiSpec, error) {
	return New().Parse(content, filename)
}

// Parse normalizes content into an ApiSpec. The filename selects the
// parsing strategy by extension and prefixes every error.
//
// Errors:
//   - *specerrors.UnsupportedFormatError for an unrecognized extension
//   - *specerrors.ParseError for malformed YAML/JSON
//   - *specerrors.UnknownSpecShapeError for YAML/JSON that is neither
//     OpenAPI/Swagger nor AsyncAPI
func (p *Parser) Parse(content, filename string) (*model.ApiSpec, error) {
	return p.ParseAs(content, filename, "")
}

// ParseAs is like Parse but applies the normalizer for format to YAML/JSON
// content instead of sniffing its root keys, so that two versions of one
// document are read the same way even when the newer one claims another
// shape. format must be model.SpecTypeOpenAPI or model.SpecTypeAsyncAPI to
// take effect; any other value, including "", falls back to sniffing.
// A document that is neither OpenAPI nor AsyncAPI is still rejected with
// *specerrors.UnknownSpecShapeError. GraphQL and Protobuf files are
// selected by extension alone and ignore format.
func (p *Parser) ParseAs(content, filename string, format model.SpecType) (*model.ApiSpec, error) {
	spec, err := p.parse(content, filename, format)
	if err != nil {
		p.log().Debug("parse failed", "file", filename, "error", err)
		return nil, err
	}
	p.log().Debug("parsed specification",
		"file", filename,
		"format", string(spec.Type),
		"endpoints", len(spec.Endpoints),
		"schemas", len(spec.Schemas),
		"security", len(spec.Security),
	)
	return spec, nil
}

func (p *Parser) parse(content, filename string, format model.SpecType) (*model.ApiSpec, error) {
	kind, ext := classifyExtension(filename)
	switch kind {
	case extensionGraphQL:
		return normalizeGraphQL(content), nil
	case extensionProto:
		return normalizeProtobuf(content), nil
	case extensionDocument:
		root, err := decodeDocument(content)
		if err != nil {
			return nil, &specerrors.ParseError{Path: filename, Message: "invalid YAML/JSON document", Cause: err}
		}
		shape := documentShape(root)
		if shape != model.SpecTypeUnknown && (format == model.SpecTypeOpenAPI || format == model.SpecTypeAsyncAPI) {
			if shape != format {
				p.log().Debug("document shape overridden",
					"file", filename, "detected", string(shape), "using", string(format))
			}
			shape = format
		}
		switch shape {
		case model.SpecTypeOpenAPI:
			return normalizeOpenAPI(root), nil
		case model.SpecTypeAsyncAPI:
			return normalizeAsyncAPI(root), nil
		default:
			return nil, &specerrors.UnknownSpecShapeError{Path: filename}
		}
	default:
		return nil, &specerrors.UnsupportedFormatError{Path: filename, Extension: ext}
	}
}

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	content  *string
	filename string
	logger   Logger
}

// ParseWithOptions parses a specification using functional options.
//
// Example:
//
//	spec, err := parser.ParseWithOptions(
//	    parser.WithContent(text),
//	    parser.WithFilename("openapi.yaml"),
//	)
func ParseWithOptions(opts ...Option) (*model.ApiSpec, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("parser: invalid options: %w", err)
		}
	}
	if cfg.content == nil {
		return nil, fmt.Errorf("parser: invalid options: %w",
			&specerrors.ConfigError{Option: "content", Message: "must specify content (use WithContent)"})
	}
	if cfg.filename == "" {
		return nil, fmt.Errorf("parser: invalid options: %w",
			&specerrors.ConfigError{Option: "filename", Message: "must specify a filename (use WithFilename)"})
	}

	p := &Parser{Logger: cfg.logger}
	return p.Parse(*cfg.content, cfg.filename)
}

// WithContent sets the raw document text to parse
func WithContent(content string) Option {
	return func(cfg *parseConfig) error {
		cfg.content = &content
		return nil
	}
}

// WithFilename sets the filename used for format detection and error messages
func WithFilename(filename string) Option {
	return func(cfg *parseConfig) error {
		cfg.filename = filename
		return nil
	}
}

// WithLogger sets a structured logger for debug output
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}
