package parser

import (
	"strings"

	"github.com/erraggy/specdiff/model"
	"go.yaml.in/yaml/v4"
)

const (
	defaultOpenAPITitle  = "Untitled API"
	defaultAsyncAPITitle = "Untitled AsyncAPI"
	defaultVersion       = "1.0.0"
	defaultParamType     = "string"
	defaultSchemaType    = "object"
)

// httpMethods are the operation keys recognized on an OpenAPI path item,
// in the order endpoints are emitted for a single path.
var httpMethods = []string{"get", "post", "put", "delete", "patch", "head", "options"}

// normalizeOpenAPI converts an OpenAPI 3.x or Swagger 2.0 document into the
// canonical model. References are recorded as pointers and never resolved.
func normalizeOpenAPI(root *yaml.Node) *model.ApiSpec {
	info := mapGet(root, "info")
	spec := &model.ApiSpec{
		Name:      orDefault(mapString(info, "title"), defaultOpenAPITitle),
		Version:   orDefault(mapString(info, "version"), defaultVersion),
		Type:      model.SpecTypeOpenAPI,
		Endpoints: []model.Endpoint{},
		Schemas:   []model.Schema{},
		Security:  []model.SecurityDefinition{},
		Raw:       rawTree(root),
	}

	mapEach(mapGet(root, "paths"), func(path string, item *yaml.Node) {
		for _, method := range httpMethods {
			op := mapGet(item, method)
			if op == nil {
				continue
			}
			spec.Endpoints = append(spec.Endpoints, openAPIEndpoint(path, strings.ToUpper(method), op))
		}
	})

	components := mapGet(root, "components")
	schemas := mapGet(components, "schemas")
	if schemas == nil {
		schemas = mapGet(root, "definitions")
	}
	spec.Schemas = schemasFrom(schemas)

	schemes := mapGet(components, "securitySchemes")
	if schemes == nil {
		schemes = mapGet(root, "securityDefinitions")
	}
	mapEach(schemes, func(name string, scheme *yaml.Node) {
		spec.Security = append(spec.Security, model.SecurityDefinition{
			Name:        name,
			Type:        mapString(scheme, "type"),
			Description: mapString(scheme, "description"),
		})
	})

	return spec
}

func openAPIEndpoint(path, method string, op *yaml.Node) model.Endpoint {
	e := model.Endpoint{
		ID:          method + "-" + path,
		Path:        path,
		Method:      method,
		OperationID: mapString(op, "operationId"),
		Summary:     mapString(op, "summary"),
		Description: mapString(op, "description"),
		Parameters:  []model.Parameter{},
		Responses:   []model.Response{},
		Deprecated:  mapBool(op, "deprecated"),
		Tags:        tagsFrom(mapGet(op, "tags")),
	}

	for _, p := range seqItems(mapGet(op, "parameters")) {
		e.Parameters = append(e.Parameters, openAPIParameter(p))
	}

	if body := mapGet(op, "requestBody"); body != nil {
		content := mapGet(body, "content")
		e.RequestBody = &model.RequestBody{
			ContentTypes: nonNil(mapKeys(content)),
			Required:     mapBool(body, "required"),
			Schema:       firstContentRef(content),
			Description:  mapString(body, "description"),
		}
	}

	mapEach(mapGet(op, "responses"), func(code string, resp *yaml.Node) {
		content := mapGet(resp, "content")
		r := model.Response{
			StatusCode:  code,
			Description: mapString(resp, "description"),
			Schema:      firstContentRef(content),
		}
		if keys := mapKeys(content); len(keys) > 0 {
			r.ContentType = keys[0]
		}
		if r.Schema == "" {
			// Swagger 2.0 responses carry the schema directly.
			r.Schema = mapString(mapGet(resp, "schema"), "$ref")
		}
		e.Responses = append(e.Responses, r)
	})

	return e
}

// openAPIParameter reads an OpenAPI 3 or Swagger 2 parameter object. A bare
// $ref parameter is kept as-is, named by its pointer, with no location.
func openAPIParameter(n *yaml.Node) model.Parameter {
	if ref := mapString(n, "$ref"); ref != "" && !hasKey(n, "name") {
		return model.Parameter{Name: ref, Type: defaultParamType, Schema: ref}
	}

	schema := mapGet(n, "schema")
	p := model.Parameter{
		Name:        mapString(n, "name"),
		Location:    mapString(n, "in"),
		Type:        orDefault(typeName(schema), orDefault(typeName(n), defaultParamType)),
		Required:    mapBool(n, "required"),
		Description: mapString(n, "description"),
		Schema:      mapString(schema, "$ref"),
	}
	if hasKey(schema, "default") {
		p.DefaultValue = mapValue(schema, "default")
	} else if hasKey(n, "default") {
		p.DefaultValue = mapValue(n, "default")
	}
	return p
}

// schemasFrom reads a components.schemas / definitions style mapping.
func schemasFrom(n *yaml.Node) []model.Schema {
	schemas := []model.Schema{}
	mapEach(n, func(name string, s *yaml.Node) {
		schema := model.Schema{
			Name:        name,
			Type:        orDefault(typeName(s), defaultSchemaType),
			Properties:  []model.SchemaProperty{},
			Required:    nonNil(mapStrings(s, "required")),
			Description: mapString(s, "description"),
		}
		mapEach(mapGet(s, "properties"), func(propName string, prop *yaml.Node) {
			schema.Properties = append(schema.Properties, model.SchemaProperty{
				Name:        propName,
				Type:        propertyType(prop),
				Required:    schema.IsRequired(propName),
				Description: mapString(prop, "description"),
				Format:      mapString(prop, "format"),
				Enum:        mapStrings(prop, "enum"),
			})
		})
		schemas = append(schemas, schema)
	})
	return schemas
}

// propertyType prefers the declared type, then a $ref pointer, so that
// retargeting a reference still shows up as a type change.
func propertyType(prop *yaml.Node) string {
	if t := typeName(prop); t != "" {
		return t
	}
	if ref := mapString(prop, "$ref"); ref != "" {
		return ref
	}
	return defaultSchemaType
}

// firstContentRef returns the first content.*.schema.$ref pointer.
func firstContentRef(content *yaml.Node) string {
	var ref string
	mapEach(content, func(_ string, media *yaml.Node) {
		if ref == "" {
			ref = mapString(mapGet(media, "schema"), "$ref")
		}
	})
	return ref
}

// tagsFrom accepts both plain string tags (OpenAPI) and {name: ...} tag
// objects (AsyncAPI).
func tagsFrom(n *yaml.Node) []string {
	var tags []string
	for _, item := range seqItems(n) {
		switch item.Kind {
		case yaml.ScalarNode:
			tags = append(tags, item.Value)
		case yaml.MappingNode:
			if name := mapString(item, "name"); name != "" {
				tags = append(tags, name)
			}
		}
	}
	return tags
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
