/*
Package parser detects the format of a specification document and
normalizes it into the canonical model defined by package model.

# Supported Formats

  - OpenAPI 3.x and Swagger 2.0 (.yaml, .yml, .json with an openapi or swagger root key)
  - AsyncAPI (.yaml, .yml, .json with an asyncapi root key)
  - GraphQL SDL (.graphql, .gql)
  - Protocol Buffer service definitions (.proto)

YAML and JSON documents are decoded with go.yaml.in/yaml/v4 into node trees
so that endpoints, schemas and properties keep the order they have in the
source document. GraphQL and Protobuf files are read with permissive
pattern matching rather than a grammar; they are never validated.

# Usage

	spec, err := parser.Parse(text, "openapi.yaml")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %s: %d endpoints\n", spec.Name, spec.Version, len(spec.Endpoints))

Format detection on its own is best-effort and never fails on a malformed
document:

	format, err := parser.DetectFormat("api.json", text) // openapi, asyncapi, or unknown

# Errors

Every failure names the offending file. Unsupported extensions return
*specerrors.UnsupportedFormatError; malformed YAML/JSON returns
*specerrors.ParseError; YAML/JSON that is neither OpenAPI nor AsyncAPI
returns *specerrors.UnknownSpecShapeError.
*/
package parser
