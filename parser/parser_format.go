package parser

import (
	"path/filepath"
	"strings"

	"github.com/erraggy/specdiff/model"
	"github.com/erraggy/specdiff/specerrors"
	"go.yaml.in/yaml/v4"
)

// extensionKind groups filename extensions by parsing strategy.
type extensionKind int

const (
	extensionUnsupported extensionKind = iota
	extensionGraphQL
	extensionProto
	extensionDocument // YAML or JSON; content decides openapi vs asyncapi
)

// classifyExtension maps a filename's extension (case-insensitive) to a
// parsing strategy and returns the normalized extension.
func classifyExtension(filename string) (extensionKind, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".graphql", ".gql":
		return extensionGraphQL, ext
	case ".proto":
		return extensionProto, ext
	case ".yaml", ".yml", ".json":
		return extensionDocument, ext
	default:
		return extensionUnsupported, ext
	}
}

// IsSupportedFile reports whether filename has an extension Parse accepts.
// The check is by extension only.
func IsSupportedFile(filename string) bool {
	kind, _ := classifyExtension(filename)
	return kind != extensionUnsupported
}

// DetectFormat picks the specification format for a file.
//
// GraphQL (.graphql, .gql) and Protobuf (.proto) files are classified by
// extension alone. YAML and JSON files are decoded and classified by their
// root keys: openapi or swagger means openapi, asyncapi means asyncapi,
// anything else (including a syntactically invalid document) is unknown.
// Detection is best-effort; Parse performs the authoritative parse and
// reports the real syntax error.
//
// Any other extension yields an *specerrors.UnsupportedFormatError.
func DetectFormat(filename, content string) (model.SpecType, error) {
	kind, ext := classifyExtension(filename)
	switch kind {
	case extensionGraphQL:
		return model.SpecTypeGraphQL, nil
	case extensionProto:
		return model.SpecTypeGRPC, nil
	case extensionDocument:
		root, err := decodeDocument(content)
		if err != nil {
			return model.SpecTypeUnknown, nil
		}
		return documentShape(root), nil
	default:
		return model.SpecTypeUnknown, &specerrors.UnsupportedFormatError{Path: filename, Extension: ext}
	}
}

// documentShape classifies a decoded YAML/JSON root mapping.
func documentShape(root *yaml.Node) model.SpecType {
	switch {
	case hasKey(root, "openapi"), hasKey(root, "swagger"):
		return model.SpecTypeOpenAPI
	case hasKey(root, "asyncapi"):
		return model.SpecTypeAsyncAPI
	default:
		return model.SpecTypeUnknown
	}
}
