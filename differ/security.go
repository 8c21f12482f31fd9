package differ

import (
	"fmt"

	"github.com/erraggy/specdiff/model"
)

func compareSecurity(changes []Change, oldSchemes, newSchemes []model.SecurityDefinition) []Change {
	d := diffKeyed(oldSchemes, newSchemes, func(s model.SecurityDefinition) string { return s.Name })

	for _, s := range d.removed {
		changes = append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategorySecurity,
			Severity:    SeverityBreaking,
			Path:        "security." + s.Name,
			Description: fmt.Sprintf("security scheme %s was removed", s.Name),
			OldValue:    s.Type,
		})
	}
	for _, s := range d.added {
		changes = append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategorySecurity,
			Severity:    SeverityInfo,
			Path:        "security." + s.Name,
			Description: fmt.Sprintf("security scheme %s was added", s.Name),
			NewValue:    s.Type,
		})
	}
	for _, p := range d.common {
		if p.old.Type == p.new.Type {
			continue
		}
		changes = append(changes, Change{
			Type:        ChangeTypeModified,
			Category:    CategorySecurity,
			Severity:    SeverityBreaking,
			Path:        "security." + p.key,
			Description: fmt.Sprintf("security scheme %s type changed from %s to %s", p.key, p.old.Type, p.new.Type),
			OldValue:    p.old.Type,
			NewValue:    p.new.Type,
		})
	}
	return changes
}
