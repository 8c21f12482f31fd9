package parser

import (
	"regexp"

	"github.com/erraggy/specdiff/model"
)

const protobufServiceName = "Protocol Buffer Service"

var (
	protoBlockPattern = regexp.MustCompile(`\b(service|message)\s+(\w+)\s*\{`)

	// protoRPCPattern matches "rpc Method(Req) returns (Resp)"; stream
	// qualifiers are accepted and dropped.
	protoRPCPattern = regexp.MustCompile(`\brpc\s+(\w+)\s*\(\s*(?:stream\s+)?([\w.]+)\s*\)\s*returns\s*\(\s*(?:stream\s+)?([\w.]+)\s*\)`)

	// protoFieldPattern matches "[modifier] Type name = N" field declarations.
	protoFieldPattern = regexp.MustCompile(`(?m)^\s*(?:(optional|required|repeated)\s+)?([\w.]+)\s+(\w+)\s*=\s*(\d+)`)
)

// normalizeProtobuf extracts services and messages from a .proto file with
// pattern matching. No imports, options or packages are interpreted.
func normalizeProtobuf(content string) *model.ApiSpec {
	spec := &model.ApiSpec{
		Name:      protobufServiceName,
		Version:   defaultVersion,
		Type:      model.SpecTypeGRPC,
		Endpoints: []model.Endpoint{},
		Schemas:   []model.Schema{},
		Security:  []model.SecurityDefinition{},
		Raw:       content,
	}

	for _, b := range scanBlocks(content, protoBlockPattern, "oneof") {
		switch b.keyword {
		case "service":
			for _, m := range protoRPCPattern.FindAllStringSubmatch(b.body, -1) {
				method, req, resp := m[1], m[2], m[3]
				spec.Endpoints = append(spec.Endpoints, model.Endpoint{
					ID:     b.name + "-" + method,
					Path:   "/" + b.name + "/" + method,
					Method: model.MethodRPC,
					Parameters: []model.Parameter{{
						Name:     "request",
						Location: model.LocationBody,
						Type:     req,
						Required: true,
						Schema:   req,
					}},
					Responses: []model.Response{{
						StatusCode:  "200",
						Description: resp,
						Schema:      resp,
					}},
					Tags: []string{},
				})
			}
		case "message":
			schema := model.Schema{
				Name:       b.name,
				Type:       "message",
				Properties: []model.SchemaProperty{},
				Required:   []string{},
			}
			for _, m := range protoFieldPattern.FindAllStringSubmatch(b.body, -1) {
				modifier, typ, field := m[1], m[2], m[3]
				required := modifier == "required"
				if required {
					schema.Required = append(schema.Required, field)
				}
				schema.Properties = append(schema.Properties, model.SchemaProperty{
					Name:     field,
					Type:     typ,
					Required: required,
					Format:   modifier,
				})
			}
			spec.Schemas = append(spec.Schemas, schema)
		}
	}

	return spec
}
