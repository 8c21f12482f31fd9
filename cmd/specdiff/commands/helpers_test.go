package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const petsV1 = `openapi: "3.0.0"
info:
  title: Pet Store
  version: "1.0.0"
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: OK
  /pets/{petId}:
    get:
      operationId: getPet
      responses:
        "200":
          description: OK
`

// petsV2 removes getPet, adds createPet and deprecates listPets.
const petsV2 = `openapi: "3.0.0"
info:
  title: Pet Store
  version: "2.0.0"
paths:
  /pets:
    get:
      operationId: listPets
      deprecated: true
      responses:
        "200":
          description: OK
    post:
      operationId: createPet
      responses:
        "201":
          description: Created
`

const usersV1 = `type Query {
  user(id: ID!): User
}

type User {
  id: ID!
  name: String
}
`

// usersV2 only adds a query.
const usersV2 = `type Query {
  user(id: ID!): User
  users: [User]
}

type User {
  id: ID!
  name: String
}
`

// writeFile creates path (and its parent directories) with content.
func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
