package parser

import (
	"errors"
	"testing"

	"github.com/erraggy/specdiff/model"
	"github.com/erraggy/specdiff/specerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petStoreOAS3 = `openapi: "3.0.3"
info:
  title: Pet Store
  version: "2.1.0"
paths:
  /pets:
    get:
      operationId: listPets
      summary: List pets
      tags: [pets]
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
            default: 20
        - name: X-Request-ID
          in: header
          required: true
          schema:
            type: string
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/PetList"
        default:
          description: Unexpected error
    post:
      operationId: createPet
      deprecated: true
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Pet"
          application/xml:
            schema:
              $ref: "#/components/schemas/PetXML"
      responses:
        "201":
          description: Created
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
        status:
          type: string
          enum: [available, sold]
        owner:
          $ref: "#/components/schemas/Owner"
  securitySchemes:
    api_key:
      type: apiKey
      description: API key header
`

const legacySwagger2 = `swagger: "2.0"
info:
  title: Legacy
paths:
  /users/{id}:
    get:
      parameters:
        - name: id
          in: path
          required: true
          type: integer
        - name: verbose
          in: query
          type: boolean
          default: false
        - $ref: "#/parameters/Trace"
      responses:
        "200":
          description: OK
          schema:
            $ref: "#/definitions/User"
definitions:
  User:
    properties:
      id:
        type: integer
securityDefinitions:
  basic:
    type: basic
`

const eventsAsyncAPI = `asyncapi: "2.6.0"
info:
  title: Events
  version: "0.3.0"
channels:
  user/signedup:
    subscribe:
      operationId: onUserSignup
      summary: User signed up
      tags:
        - name: users
    publish:
      operationId: publishSignup
  order/created:
    publish:
      summary: Order created
      deprecated: true
components:
  schemas:
    User:
      type: object
      properties:
        email:
          type: string
`

const usersGraphQL = `type Query {
  users(limit: Int, offset: Int): [User!]!
  user(id: ID!): User
}

type Mutation {
  createUser(input: CreateUserInput!): User!
}

type User implements Node {
  id: ID!
  name: String
  friends(first: Int): [User]
}

input CreateUserInput {
  name: String!
}
`

const usersProto = `syntax = "proto2";
package users;

service UserService {
  rpc GetUser(GetUserRequest) returns (User);
  rpc WatchUsers(stream WatchRequest) returns (stream User) {
    option deprecated = true;
  }
  rpc DeleteUser(DeleteUserRequest) returns (Empty) {}
}

message User {
  required string id = 1;
  optional string email = 2;
  repeated string tags = 3;
  message Address {
    optional string city = 1;
  }
  optional Address address = 4;
}
`

func endpointIDs(spec *model.ApiSpec) []string {
	ids := make([]string, 0, len(spec.Endpoints))
	for _, e := range spec.Endpoints {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestParseOpenAPI3(t *testing.T) {
	spec, err := Parse(petStoreOAS3, "petstore.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Pet Store", spec.Name)
	assert.Equal(t, "2.1.0", spec.Version)
	assert.Equal(t, model.SpecTypeOpenAPI, spec.Type)
	assert.NotNil(t, spec.Raw)
	require.Equal(t, []string{"GET-/pets", "POST-/pets"}, endpointIDs(spec))

	list := spec.Endpoints[0]
	assert.Equal(t, "GET", list.Method)
	assert.Equal(t, "/pets", list.Path)
	assert.Equal(t, "listPets", list.OperationID)
	assert.Equal(t, []string{"pets"}, list.Tags)
	assert.False(t, list.Deprecated)
	assert.Nil(t, list.RequestBody)

	t.Run("parameters", func(t *testing.T) {
		require.Len(t, list.Parameters, 2)
		limit := list.Parameters[0]
		assert.Equal(t, "limit", limit.Name)
		assert.Equal(t, "query", limit.Location)
		assert.Equal(t, "integer", limit.Type)
		assert.False(t, limit.Required)
		assert.Equal(t, 20, limit.DefaultValue)

		header := list.Parameters[1]
		assert.Equal(t, "header:X-Request-ID", header.Key())
		assert.Equal(t, "string", header.Type)
		assert.True(t, header.Required)
	})

	t.Run("responses", func(t *testing.T) {
		require.Len(t, list.Responses, 2)
		assert.Equal(t, "200", list.Responses[0].StatusCode)
		assert.Equal(t, "application/json", list.Responses[0].ContentType)
		assert.Equal(t, "#/components/schemas/PetList", list.Responses[0].Schema)
		assert.Equal(t, "default", list.Responses[1].StatusCode)
		assert.Equal(t, "Unexpected error", list.Responses[1].Description)
	})

	t.Run("request body", func(t *testing.T) {
		create := spec.Endpoints[1]
		assert.True(t, create.Deprecated)
		require.NotNil(t, create.RequestBody)
		assert.True(t, create.RequestBody.Required)
		assert.Equal(t, []string{"application/json", "application/xml"}, create.RequestBody.ContentTypes)
		assert.Equal(t, "#/components/schemas/Pet", create.RequestBody.Schema)
	})

	t.Run("schemas", func(t *testing.T) {
		require.Len(t, spec.Schemas, 1)
		pet := spec.Schemas[0]
		assert.Equal(t, "Pet", pet.Name)
		assert.Equal(t, "object", pet.Type)
		assert.Equal(t, []string{"id", "name"}, pet.Required)
		require.Len(t, pet.Properties, 4)

		assert.Equal(t, "id", pet.Properties[0].Name)
		assert.Equal(t, "integer", pet.Properties[0].Type)
		assert.Equal(t, "int64", pet.Properties[0].Format)
		assert.True(t, pet.Properties[0].Required)
		assert.True(t, pet.Properties[1].Required)
		assert.False(t, pet.Properties[2].Required)
		assert.Equal(t, []string{"available", "sold"}, pet.Properties[2].Enum)
		assert.Equal(t, "#/components/schemas/Owner", pet.Properties[3].Type)
	})

	t.Run("security", func(t *testing.T) {
		require.Len(t, spec.Security, 1)
		assert.Equal(t, model.SecurityDefinition{Name: "api_key", Type: "apiKey", Description: "API key header"}, spec.Security[0])
	})
}

func TestParseSwagger2(t *testing.T) {
	spec, err := Parse(legacySwagger2, "legacy.yml")
	require.NoError(t, err)

	assert.Equal(t, "Legacy", spec.Name)
	assert.Equal(t, "1.0.0", spec.Version, "missing info.version falls back to the default")
	require.Equal(t, []string{"GET-/users/{id}"}, endpointIDs(spec))

	params := spec.Endpoints[0].Parameters
	require.Len(t, params, 3)
	assert.Equal(t, "integer", params[0].Type, "legacy type is used when there is no schema")
	assert.True(t, params[0].Required)
	assert.Equal(t, false, params[1].DefaultValue)
	assert.Equal(t, "#/parameters/Trace", params[2].Name)
	assert.Equal(t, "#/parameters/Trace", params[2].Schema)
	assert.Equal(t, "", params[2].Location)

	require.Len(t, spec.Endpoints[0].Responses, 1)
	assert.Equal(t, "#/definitions/User", spec.Endpoints[0].Responses[0].Schema)

	require.Len(t, spec.Schemas, 1)
	assert.Equal(t, "User", spec.Schemas[0].Name)
	assert.Equal(t, "object", spec.Schemas[0].Type)

	require.Len(t, spec.Security, 1)
	assert.Equal(t, "basic", spec.Security[0].Type)
}

func TestParseOpenAPIDefaults(t *testing.T) {
	spec, err := Parse(`{"openapi": "3.1.0", "paths": {"/ping": {"get": {"parameters": [{"name": "q", "in": "query"}]}}}}`, "ping.json")
	require.NoError(t, err)

	assert.Equal(t, "Untitled API", spec.Name)
	assert.Equal(t, "1.0.0", spec.Version)
	require.Len(t, spec.Endpoints, 1)
	require.Len(t, spec.Endpoints[0].Parameters, 1)
	assert.Equal(t, "string", spec.Endpoints[0].Parameters[0].Type)
	assert.NotNil(t, spec.Endpoints[0].Responses)
	assert.NotNil(t, spec.Schemas)
	assert.NotNil(t, spec.Security)
}

func TestParseOpenAPI31TypeList(t *testing.T) {
	const doc = `openapi: "3.1.0"
info: {title: T, version: "1"}
paths: {}
components:
  schemas:
    Tag:
      properties:
        label:
          type: [string, "null"]
`
	spec, err := Parse(doc, "tags.yaml")
	require.NoError(t, err)
	require.Len(t, spec.Schemas, 1)
	assert.Equal(t, "string|null", spec.Schemas[0].Properties[0].Type)
}

func TestParseAsyncAPI(t *testing.T) {
	spec, err := Parse(eventsAsyncAPI, "events.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Events", spec.Name)
	assert.Equal(t, "0.3.0", spec.Version)
	assert.Equal(t, model.SpecTypeAsyncAPI, spec.Type)
	assert.Equal(t, []string{"SUB-user/signedup", "PUB-user/signedup", "PUB-order/created"}, endpointIDs(spec))

	sub := spec.Endpoints[0]
	assert.Equal(t, "SUBSCRIBE", sub.Method)
	assert.Equal(t, "user/signedup", sub.Path)
	assert.Equal(t, "onUserSignup", sub.OperationID)
	assert.Equal(t, []string{"users"}, sub.Tags)
	assert.Empty(t, sub.Parameters)
	assert.Empty(t, sub.Responses)

	assert.Equal(t, "PUBLISH", spec.Endpoints[2].Method)
	assert.True(t, spec.Endpoints[2].Deprecated)

	require.Len(t, spec.Schemas, 1)
	assert.Equal(t, "email", spec.Schemas[0].Properties[0].Name)
	assert.Empty(t, spec.Security)
}

func TestParseAsyncAPIDefaults(t *testing.T) {
	spec, err := Parse(`{"asyncapi": "2.0.0", "channels": {}}`, "events.json")
	require.NoError(t, err)
	assert.Equal(t, "Untitled AsyncAPI", spec.Name)
	assert.Equal(t, "1.0.0", spec.Version)
	assert.Empty(t, spec.Endpoints)
}

func TestParseGraphQL(t *testing.T) {
	spec, err := Parse(usersGraphQL, "schema.graphql")
	require.NoError(t, err)

	assert.Equal(t, "GraphQL Schema", spec.Name)
	assert.Equal(t, "1.0.0", spec.Version)
	assert.Equal(t, model.SpecTypeGraphQL, spec.Type)
	require.Equal(t, []string{"Query-users", "Query-user", "Mutation-createUser"}, endpointIDs(spec))

	users := spec.Endpoints[0]
	assert.Equal(t, "QUERY", users.Method)
	assert.Equal(t, "Query.users", users.Path)
	require.Len(t, users.Responses, 1)
	assert.Equal(t, "200", users.Responses[0].StatusCode)
	assert.Equal(t, "[User!]!", users.Responses[0].Description)

	assert.Equal(t, "MUTATION", spec.Endpoints[2].Method)
	assert.Equal(t, "User!", spec.Endpoints[2].Responses[0].Description)

	require.Len(t, spec.Schemas, 2)
	user := spec.Schemas[0]
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, []string{"id"}, user.Required)
	require.Len(t, user.Properties, 3)
	assert.Equal(t, model.SchemaProperty{Name: "id", Type: "ID", Required: true}, user.Properties[0])
	assert.Equal(t, model.SchemaProperty{Name: "name", Type: "String"}, user.Properties[1])
	assert.Equal(t, "friends", user.Properties[2].Name, "field arguments are not mistaken for fields")
	assert.Equal(t, "[User]", user.Properties[2].Type)

	input := spec.Schemas[1]
	assert.Equal(t, "CreateUserInput", input.Name)
	assert.Equal(t, "input", input.Type)
	assert.True(t, input.Properties[0].Required)
}

func TestParseGQLExtension(t *testing.T) {
	spec, err := Parse("type Query { ping: String }", "API.GQL")
	require.NoError(t, err)
	require.Len(t, spec.Endpoints, 1)
	assert.Equal(t, "Query-ping", spec.Endpoints[0].ID)
}

func TestParseGraphQLExtendType(t *testing.T) {
	src := `type Query {
  user(id: ID!): User
}

extend type Query {
  user(id: ID!): User
  users: [User]
}

type User {
  id: ID!
}

extend type User {
  id: ID!
  email: String
}
`
	spec, err := Parse(src, "schema.graphql")
	require.NoError(t, err)

	assert.Equal(t, []string{"Query-user", "Query-users"}, endpointIDs(spec), "ids stay unique and extension fields are merged")
	require.Len(t, spec.Schemas, 1)
	user := spec.Schemas[0]
	assert.Equal(t, "User", user.Name)
	require.Len(t, user.Properties, 2)
	assert.Equal(t, "id", user.Properties[0].Name)
	assert.Equal(t, "email", user.Properties[1].Name)
	assert.Equal(t, []string{"id"}, user.Required)
}

func TestParseProtobuf(t *testing.T) {
	spec, err := Parse(usersProto, "users.proto")
	require.NoError(t, err)

	assert.Equal(t, "Protocol Buffer Service", spec.Name)
	assert.Equal(t, "1.0.0", spec.Version)
	assert.Equal(t, model.SpecTypeGRPC, spec.Type)
	require.Equal(t, []string{"UserService-GetUser", "UserService-WatchUsers", "UserService-DeleteUser"}, endpointIDs(spec))

	get := spec.Endpoints[0]
	assert.Equal(t, "/UserService/GetUser", get.Path)
	assert.Equal(t, "RPC", get.Method)
	require.Len(t, get.Parameters, 1)
	assert.Equal(t, model.Parameter{Name: "request", Location: "body", Type: "GetUserRequest", Required: true, Schema: "GetUserRequest"}, get.Parameters[0])
	require.Len(t, get.Responses, 1)
	assert.Equal(t, "User", get.Responses[0].Description)

	assert.Equal(t, "WatchRequest", spec.Endpoints[1].Parameters[0].Type, "stream qualifier is dropped")

	require.Len(t, spec.Schemas, 2)
	user := spec.Schemas[0]
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, []string{"id"}, user.Required)
	require.Len(t, user.Properties, 4, "nested message fields belong to the nested message")
	assert.Equal(t, "id", user.Properties[0].Name)
	assert.True(t, user.Properties[0].Required)
	assert.False(t, user.Properties[1].Required)
	assert.Equal(t, "repeated", user.Properties[2].Format)
	assert.Equal(t, "Address", user.Properties[3].Type)

	address := spec.Schemas[1]
	assert.Equal(t, "Address", address.Name)
	require.Len(t, address.Properties, 1)
	assert.Equal(t, "city", address.Properties[0].Name)
}

func TestParseProtobufOneof(t *testing.T) {
	src := `message User {
  string id = 1;
  oneof contact {
    string email = 2;
    string phone = 3;
  }
  message Meta { string source = 4; }
  int32 age = 5;
}`
	spec, err := Parse(src, "users.proto")
	require.NoError(t, err)

	require.Len(t, spec.Schemas, 2)
	user := spec.Schemas[0]
	assert.Equal(t, "User", user.Name)
	names := make([]string, 0, len(user.Properties))
	for _, p := range user.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"id", "email", "phone", "age"}, names, "oneof fields belong to the enclosing message")
	assert.Equal(t, "string", user.Properties[2].Type)

	assert.Equal(t, "Meta", spec.Schemas[1].Name)
}

func TestParseAs(t *testing.T) {
	const async = `asyncapi: "2.6.0"
info:
  title: Events
channels:
  user/signup:
    subscribe:
      message:
        name: Signup
`
	sniffed, err := Parse(async, "events.yaml")
	require.NoError(t, err)
	assert.Equal(t, model.SpecTypeAsyncAPI, sniffed.Type)
	require.Len(t, sniffed.Endpoints, 1)

	forced, err := New().ParseAs(async, "events.yaml", model.SpecTypeOpenAPI)
	require.NoError(t, err)
	assert.Equal(t, model.SpecTypeOpenAPI, forced.Type)
	assert.Equal(t, "Events", forced.Name)
	assert.Empty(t, forced.Endpoints, "channels are not OpenAPI paths")

	same, err := New().ParseAs(async, "events.yaml", model.SpecTypeGraphQL)
	require.NoError(t, err)
	assert.Equal(t, model.SpecTypeAsyncAPI, same.Type, "non-document formats fall back to sniffing")

	_, err = New().ParseAs("kind: Deployment\n", "k8s.yaml", model.SpecTypeOpenAPI)
	assert.True(t, errors.Is(err, specerrors.ErrUnknownSpecShape))
}

func TestParseErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Parse("anything", "api.txt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, specerrors.ErrUnsupportedFormat))
		assert.Contains(t, err.Error(), ".txt")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := Parse("openapi: [3.0.0\npaths: {", "broken.yaml")
		require.Error(t, err)
		var parseErr *specerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "broken.yaml", parseErr.Path)
		assert.Contains(t, err.Error(), "broken.yaml")
		assert.NotNil(t, parseErr.Cause)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := Parse("", "empty.json")
		assert.True(t, errors.Is(err, specerrors.ErrParse))
	})

	t.Run("scalar root", func(t *testing.T) {
		_, err := Parse("just a string", "scalar.yaml")
		assert.True(t, errors.Is(err, specerrors.ErrParse))
	})

	t.Run("unknown shape", func(t *testing.T) {
		_, err := Parse("name: my-service\nreplicas: 3\n", "deploy.yaml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, specerrors.ErrUnknownSpecShape))
		assert.Contains(t, err.Error(), "deploy.yaml")
	})
}

func TestParseWithOptions(t *testing.T) {
	t.Run("parses content", func(t *testing.T) {
		spec, err := ParseWithOptions(
			WithContent(usersGraphQL),
			WithFilename("schema.graphql"),
			WithLogger(NopLogger{}),
		)
		require.NoError(t, err)
		assert.Len(t, spec.Endpoints, 3)
	})

	t.Run("missing content", func(t *testing.T) {
		_, err := ParseWithOptions(WithFilename("schema.graphql"))
		assert.True(t, errors.Is(err, specerrors.ErrConfig))
	})

	t.Run("missing filename", func(t *testing.T) {
		_, err := ParseWithOptions(WithContent(usersGraphQL))
		assert.True(t, errors.Is(err, specerrors.ErrConfig))
	})
}

func TestParseEmptyRegexFormats(t *testing.T) {
	for _, filename := range []string{"empty.graphql", "empty.proto"} {
		t.Run(filename, func(t *testing.T) {
			spec, err := Parse("", filename)
			require.NoError(t, err)
			assert.Empty(t, spec.Endpoints)
			assert.NotNil(t, spec.Endpoints)
			assert.Empty(t, spec.Schemas)
		})
	}
}
