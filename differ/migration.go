package differ

type migrationKey struct {
	category Category
	typ      ChangeType
}

// migrationSuggestions maps a breaking (category, type) to client guidance.
var migrationSuggestions = map[migrationKey]string{
	{CategoryEndpoint, ChangeTypeRemoved}:        "Remove references to this endpoint from client code or migrate to a replacement endpoint",
	{CategoryParameter, ChangeTypeRemoved}:       "Remove this parameter from API calls",
	{CategoryParameter, ChangeTypeAdded}:         "Add this required parameter to all API calls",
	{CategoryParameter, ChangeTypeModified}:      "Update client code to handle the new parameter type or requirement",
	{CategoryRequestBody, ChangeTypeAdded}:       "Send a request body with every call to this endpoint",
	{CategoryRequestBody, ChangeTypeRemoved}:     "Switch requests to one of the content types that are still accepted",
	{CategoryRequestBody, ChangeTypeModified}:    "Always send a request body; it is now required",
	{CategorySchema, ChangeTypeModified}:         "Update client models to the new schema type",
	{CategorySchemaProperty, ChangeTypeModified}: "Update client code to handle the new property type or requirement",
	{CategorySecurity, ChangeTypeRemoved}:        "Migrate clients to a security scheme that is still supported",
	{CategorySecurity, ChangeTypeModified}:       "Update client authentication for the changed security scheme",
}

const defaultMigrationSuggestion = "Review this change and update client code accordingly"

// MigrationSuggestion returns the client guidance for a change.
func MigrationSuggestion(c Change) string {
	if s, ok := migrationSuggestions[migrationKey{c.Category, c.Type}]; ok {
		return s
	}
	return defaultMigrationSuggestion
}

// Impact score weights.
const (
	impactBase     = 50
	impactEndpoint = 30
	impactRemoved  = 20
	impactSecurity = 25
	impactMax      = 100
)

// ImpactScore weighs a change from 0 to 100: a base of 50, plus 30 for an
// endpoint, 20 for a removal and 25 for a security scheme, capped at 100.
func ImpactScore(c Change) int {
	score := impactBase
	if c.Category == CategoryEndpoint {
		score += impactEndpoint
	}
	if c.Type == ChangeTypeRemoved {
		score += impactRemoved
	}
	if c.Category == CategorySecurity {
		score += impactSecurity
	}
	return min(score, impactMax)
}
