package parser

import (
	"regexp"
	"slices"
	"strings"

	"github.com/erraggy/specdiff/model"
)

const graphQLSchemaName = "GraphQL Schema"

var (
	// graphQLBlockPattern matches the header of a type or input declaration,
	// including an optional implements clause or directives on the same line.
	graphQLBlockPattern = regexp.MustCompile(`\b(type|input)\s+(\w+)[^{}\n]*\s*\{`)

	// graphQLFieldPattern matches "name(args): ReturnType" and "name: Type".
	// The type token keeps its raw ! and [] markers.
	graphQLFieldPattern = regexp.MustCompile(`(\w+)\s*(?:\([^)]*\))?\s*:\s*([\w!\[\]]+)`)
)

// graphQLRootTypes are the operation types whose fields become endpoints.
var graphQLRootTypes = map[string]bool{
	"Query":        true,
	"Mutation":     true,
	"Subscription": true,
}

// normalizeGraphQL extracts endpoints and schemas from GraphQL SDL with
// pattern matching. It is intentionally permissive and performs no
// validation; comments and multi-line descriptions are not understood.
func normalizeGraphQL(content string) *model.ApiSpec {
	spec := &model.ApiSpec{
		Name:      graphQLSchemaName,
		Version:   defaultVersion,
		Type:      model.SpecTypeGraphQL,
		Endpoints: []model.Endpoint{},
		Schemas:   []model.Schema{},
		Security:  []model.SecurityDefinition{},
		Raw:       content,
	}

	// "extend type X" also matches the block header, so a name seen twice
	// is merged into its first declaration and repeated fields are skipped.
	seenEndpoints := make(map[string]bool)
	schemaIndex := make(map[string]int)
	for _, b := range scanBlocks(content, graphQLBlockPattern) {
		if b.keyword == "type" && graphQLRootTypes[b.name] {
			method := strings.ToUpper(b.name)
			for _, m := range graphQLFieldPattern.FindAllStringSubmatch(b.body, -1) {
				field, returnType := m[1], m[2]
				id := b.name + "-" + field
				if seenEndpoints[id] {
					continue
				}
				seenEndpoints[id] = true
				spec.Endpoints = append(spec.Endpoints, model.Endpoint{
					ID:         id,
					Path:       b.name + "." + field,
					Method:     method,
					Parameters: []model.Parameter{},
					Responses: []model.Response{{
						StatusCode:  "200",
						Description: returnType,
					}},
					Tags: []string{},
				})
			}
			continue
		}

		i, ok := schemaIndex[b.name]
		if !ok {
			i = len(spec.Schemas)
			schemaIndex[b.name] = i
			spec.Schemas = append(spec.Schemas, model.Schema{
				Name:       b.name,
				Type:       graphQLSchemaType(b.keyword),
				Properties: []model.SchemaProperty{},
				Required:   []string{},
			})
		}
		schema := &spec.Schemas[i]
		for _, m := range graphQLFieldPattern.FindAllStringSubmatch(b.body, -1) {
			field, rawType := m[1], m[2]
			if slices.ContainsFunc(schema.Properties, func(p model.SchemaProperty) bool { return p.Name == field }) {
				continue
			}
			required := strings.HasSuffix(rawType, "!")
			if required {
				schema.Required = append(schema.Required, field)
			}
			schema.Properties = append(schema.Properties, model.SchemaProperty{
				Name:     field,
				Type:     strings.TrimSuffix(rawType, "!"),
				Required: required,
			})
		}
	}

	return spec
}

func graphQLSchemaType(keyword string) string {
	if keyword == "input" {
		return "input"
	}
	return defaultSchemaType
}
