package differ

// CategoryCounts holds change counters for one category
type CategoryCounts struct {
	Added      int `json:"added" yaml:"added"`
	Removed    int `json:"removed" yaml:"removed"`
	Modified   int `json:"modified" yaml:"modified"`
	Deprecated int `json:"deprecated" yaml:"deprecated"`
}

// Total returns the sum of all counters
func (c CategoryCounts) Total() int {
	return c.Added + c.Removed + c.Modified + c.Deprecated
}

// Summary holds per-category change counters. It is derived from a change
// list and used for reporting only.
type Summary struct {
	Endpoints        CategoryCounts `json:"endpoints" yaml:"endpoints"`
	Parameters       CategoryCounts `json:"parameters" yaml:"parameters"`
	RequestBodies    CategoryCounts `json:"requestBodies" yaml:"requestBodies"`
	Responses        CategoryCounts `json:"responses" yaml:"responses"`
	Schemas          CategoryCounts `json:"schemas" yaml:"schemas"`
	SchemaProperties CategoryCounts `json:"schemaProperties" yaml:"schemaProperties"`
	Security         CategoryCounts `json:"security" yaml:"security"`
}

// Summarize counts changes by category and type.
func Summarize(changes []Change) Summary {
	var s Summary
	for _, c := range changes {
		counts := s.counts(c.Category)
		if counts == nil {
			continue
		}
		switch c.Type {
		case ChangeTypeAdded:
			counts.Added++
		case ChangeTypeRemoved:
			counts.Removed++
		case ChangeTypeModified:
			counts.Modified++
		case ChangeTypeDeprecated:
			counts.Deprecated++
		}
	}
	return s
}

// For returns the counters for one category.
func (s Summary) For(category Category) CategoryCounts {
	if c := s.counts(category); c != nil {
		return *c
	}
	return CategoryCounts{}
}

func (s *Summary) counts(category Category) *CategoryCounts {
	switch category {
	case CategoryEndpoint:
		return &s.Endpoints
	case CategoryParameter:
		return &s.Parameters
	case CategoryRequestBody:
		return &s.RequestBodies
	case CategoryResponse:
		return &s.Responses
	case CategorySchema:
		return &s.Schemas
	case CategorySchemaProperty:
		return &s.SchemaProperties
	case CategorySecurity:
		return &s.Security
	default:
		return nil
	}
}
