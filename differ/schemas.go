package differ

import (
	"fmt"

	"github.com/erraggy/specdiff/model"
)

func compareSchemas(changes []Change, oldSchemas, newSchemas []model.Schema) []Change {
	d := diffKeyed(oldSchemas, newSchemas, func(s model.Schema) string { return s.Name })

	for _, s := range d.removed {
		changes = append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategorySchema,
			Severity:    SeverityDangerous,
			Path:        "schemas." + s.Name,
			Description: fmt.Sprintf("schema %s was removed", s.Name),
			OldValue:    s.Name,
		})
	}
	for _, s := range d.added {
		changes = append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategorySchema,
			Severity:    SeverityInfo,
			Path:        "schemas." + s.Name,
			Description: fmt.Sprintf("schema %s was added", s.Name),
			NewValue:    s.Name,
		})
	}
	for _, p := range d.common {
		changes = compareSchema(changes, p.old, p.new)
	}
	return changes
}

func compareSchema(changes []Change, oldSchema, newSchema model.Schema) []Change {
	base := "schemas." + newSchema.Name

	if oldSchema.Type != newSchema.Type {
		changes = append(changes, Change{
			Type:        ChangeTypeModified,
			Category:    CategorySchema,
			Severity:    SeverityBreaking,
			Path:        base,
			Description: fmt.Sprintf("schema %s type changed from %s to %s", newSchema.Name, oldSchema.Type, newSchema.Type),
			OldValue:    oldSchema.Type,
			NewValue:    newSchema.Type,
		})
	}

	d := diffKeyed(oldSchema.Properties, newSchema.Properties, func(p model.SchemaProperty) string { return p.Name })

	for _, p := range d.removed {
		changes = append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategorySchemaProperty,
			Severity:    SeverityDangerous,
			Path:        base + "." + p.Name,
			Description: fmt.Sprintf("property %s was removed from schema %s", p.Name, newSchema.Name),
			OldValue:    p.Type,
		})
	}
	for _, p := range d.added {
		required := newSchema.IsRequired(p.Name)
		sev := SeverityInfo
		if required {
			sev = SeverityWarning
		}
		changes = append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategorySchemaProperty,
			Severity:    sev,
			Path:        base + "." + p.Name,
			Description: fmt.Sprintf("%s property %s was added to schema %s", requiredWord(required), p.Name, newSchema.Name),
			NewValue:    p.Type,
		})
	}
	for _, pr := range d.common {
		path := base + "." + pr.key
		o, n := pr.old, pr.new
		if o.Type != n.Type {
			changes = append(changes, Change{
				Type:        ChangeTypeModified,
				Category:    CategorySchemaProperty,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("property %s type changed from %s to %s", pr.key, o.Type, n.Type),
				OldValue:    o.Type,
				NewValue:    n.Type,
			})
		}

		wasRequired, isRequired := oldSchema.IsRequired(pr.key), newSchema.IsRequired(pr.key)
		switch {
		case !wasRequired && isRequired:
			changes = append(changes, Change{
				Type:        ChangeTypeModified,
				Category:    CategorySchemaProperty,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("property %s is now required", pr.key),
				OldValue:    false,
				NewValue:    true,
			})
		case wasRequired && !isRequired:
			changes = append(changes, Change{
				Type:        ChangeTypeModified,
				Category:    CategorySchemaProperty,
				Severity:    SeverityInfo,
				Path:        path,
				Description: fmt.Sprintf("property %s is no longer required", pr.key),
				OldValue:    true,
				NewValue:    false,
			})
		}
	}
	return changes
}
