// Package model defines the canonical, format-independent representation that
// every supported specification format (OpenAPI/Swagger, AsyncAPI, GraphQL SDL,
// Protocol Buffers) is normalized into before comparison.
//
// Values in this package carry no behavior beyond identity-key helpers. A
// parser constructs an ApiSpec once; every later stage treats it as read-only.
package model

// SpecType identifies the source format a specification was normalized from.
type SpecType string

const (
	// SpecTypeOpenAPI covers OpenAPI 3.x and Swagger 2.0 documents
	SpecTypeOpenAPI SpecType = "openapi"
	// SpecTypeAsyncAPI covers AsyncAPI documents
	SpecTypeAsyncAPI SpecType = "asyncapi"
	// SpecTypeGraphQL covers GraphQL SDL files
	SpecTypeGraphQL SpecType = "graphql"
	// SpecTypeGRPC covers Protocol Buffer service definitions
	SpecTypeGRPC SpecType = "grpc"
	// SpecTypeUnknown is returned when a format cannot be determined
	SpecTypeUnknown SpecType = "unknown"
)

// Parameter locations.
const (
	LocationPath   = "path"
	LocationQuery  = "query"
	LocationHeader = "header"
	LocationCookie = "cookie"
	LocationBody   = "body"
)

// Non-REST endpoint methods.
const (
	MethodSubscribe = "SUBSCRIBE"
	MethodPublish   = "PUBLISH"
	MethodQuery     = "QUERY"
	MethodMutation  = "MUTATION"
	MethodRPC       = "RPC"
)

// ApiSpec is the root canonical value produced by a parser.
//
// Endpoints, Schemas and Security each have unique identity keys within one
// ApiSpec (Endpoint.ID, Schema.Name, SecurityDefinition.Name).
type ApiSpec struct {
	Name      string               `json:"name"`
	Version   string               `json:"version"`
	Type      SpecType             `json:"type"`
	Endpoints []Endpoint           `json:"endpoints"`
	Schemas   []Schema             `json:"schemas"`
	Security  []SecurityDefinition `json:"security"`

	// Raw is the decoded source document. It is retained for future
	// extractors and is never compared.
	Raw any `json:"-"`
}

// Endpoint is one callable operation: an HTTP operation, an AsyncAPI
// channel operation, a GraphQL root field, or a gRPC method.
type Endpoint struct {
	// ID is the stable identity key (e.g. "GET-/users", "SUB-user/signup",
	// "Query-users", "UserService-GetUser")
	ID          string       `json:"id"`
	Path        string       `json:"path"`
	Method      string       `json:"method"`
	OperationID string       `json:"operationId,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Description string       `json:"description,omitempty"`
	Parameters  []Parameter  `json:"parameters"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
	Responses   []Response   `json:"responses"`
	Deprecated  bool         `json:"deprecated"`
	Tags        []string     `json:"tags,omitempty"`
}

// Locator returns the human-readable "METHOD path" form used in change paths.
func (e Endpoint) Locator() string {
	return e.Method + " " + e.Path
}

// Parameter is a single operation input. Its identity is Key(), not Name.
type Parameter struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Required     bool   `json:"required"`
	Description  string `json:"description,omitempty"`
	DefaultValue any    `json:"defaultValue,omitempty"`
	// Schema is a $ref-style pointer, not an inline schema
	Schema string `json:"schema,omitempty"`
}

// Key returns the "location:name" identity used when diffing parameters.
func (p Parameter) Key() string {
	return p.Location + ":" + p.Name
}

// RequestBody describes an operation's request payload.
type RequestBody struct {
	ContentTypes []string `json:"contentTypes"`
	Required     bool     `json:"required"`
	Schema       string   `json:"schema,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Response is keyed by StatusCode, which is a string so that "default" and
// wildcard codes such as "2XX" are representable.
type Response struct {
	StatusCode  string `json:"statusCode"`
	Description string `json:"description"`
	ContentType string `json:"contentType,omitempty"`
	Schema      string `json:"schema,omitempty"`
}

// Schema is a named data type.
//
// Required holds the schema-level required set. A property's effective
// required status for diffing is IsRequired(property.Name).
type Schema struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Properties  []SchemaProperty `json:"properties"`
	Required    []string         `json:"required"`
	Description string           `json:"description,omitempty"`
}

// IsRequired reports whether name is in the schema-level required set.
func (s Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// SchemaProperty is one field of a Schema. Required is resolved at parse
// time against the owning Schema's Required set.
type SchemaProperty struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Description string   `json:"description,omitempty"`
	Format      string   `json:"format,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// SecurityDefinition is a named authentication scheme.
type SecurityDefinition struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
