package differ

import (
	"fmt"

	"github.com/erraggy/specdiff/model"
)

func endpointKey(e model.Endpoint) string {
	if e.ID != "" {
		return e.ID
	}
	return e.Method + "-" + e.Path
}

func compareEndpoints(changes []Change, oldEndpoints, newEndpoints []model.Endpoint) []Change {
	d := diffKeyed(oldEndpoints, newEndpoints, endpointKey)

	for _, e := range d.removed {
		changes = append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategoryEndpoint,
			Severity:    SeverityBreaking,
			Path:        e.Locator(),
			Description: fmt.Sprintf("endpoint %s was removed", e.Locator()),
			OldValue:    e.Locator(),
		})
	}
	for _, e := range d.added {
		changes = append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategoryEndpoint,
			Severity:    SeverityInfo,
			Path:        e.Locator(),
			Description: fmt.Sprintf("endpoint %s was added", e.Locator()),
			NewValue:    e.Locator(),
		})
	}
	for _, p := range d.common {
		changes = compareEndpoint(changes, p.old, p.new)
	}
	return changes
}

func compareEndpoint(changes []Change, oldEndpoint, newEndpoint model.Endpoint) []Change {
	path := newEndpoint.Locator()

	// Un-deprecation is documentation-level and not reported
	if !oldEndpoint.Deprecated && newEndpoint.Deprecated {
		changes = append(changes, Change{
			Type:        ChangeTypeDeprecated,
			Category:    CategoryEndpoint,
			Severity:    SeverityWarning,
			Path:        path,
			Description: fmt.Sprintf("endpoint %s is now deprecated", path),
			OldValue:    false,
			NewValue:    true,
		})
	}

	changes = compareParameters(changes, path, oldEndpoint.Parameters, newEndpoint.Parameters)
	changes = compareRequestBody(changes, path, oldEndpoint.RequestBody, newEndpoint.RequestBody)
	changes = compareResponses(changes, path, oldEndpoint.Responses, newEndpoint.Responses)
	return changes
}

func compareParameters(changes []Change, endpointPath string, oldParams, newParams []model.Parameter) []Change {
	d := diffKeyed(oldParams, newParams, model.Parameter.Key)

	for _, p := range d.removed {
		sev := SeverityWarning
		if p.Required {
			sev = SeverityBreaking
		}
		changes = append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategoryParameter,
			Severity:    sev,
			Path:        endpointPath + " > " + p.Key(),
			Description: fmt.Sprintf("%s parameter %q was removed", requiredWord(p.Required), p.Name),
			OldValue:    p.Type,
		})
	}
	for _, p := range d.added {
		sev := SeverityInfo
		if p.Required {
			sev = SeverityBreaking
		}
		changes = append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategoryParameter,
			Severity:    sev,
			Path:        endpointPath + " > " + p.Key(),
			Description: fmt.Sprintf("%s parameter %q was added", requiredWord(p.Required), p.Name),
			NewValue:    p.Type,
		})
	}
	for _, pr := range d.common {
		path := endpointPath + " > " + pr.key
		o, n := pr.old, pr.new
		if o.Type != n.Type {
			changes = append(changes, Change{
				Type:        ChangeTypeModified,
				Category:    CategoryParameter,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("parameter %q type changed from %s to %s", n.Name, o.Type, n.Type),
				OldValue:    o.Type,
				NewValue:    n.Type,
			})
		}
		switch {
		case !o.Required && n.Required:
			changes = append(changes, Change{
				Type:        ChangeTypeModified,
				Category:    CategoryParameter,
				Severity:    SeverityBreaking,
				Path:        path,
				Description: fmt.Sprintf("parameter %q is now required", n.Name),
				OldValue:    false,
				NewValue:    true,
			})
		case o.Required && !n.Required:
			changes = append(changes, Change{
				Type:        ChangeTypeModified,
				Category:    CategoryParameter,
				Severity:    SeverityInfo,
				Path:        path,
				Description: fmt.Sprintf("parameter %q is no longer required", n.Name),
				OldValue:    true,
				NewValue:    false,
			})
		}
	}
	return changes
}

func compareRequestBody(changes []Change, endpointPath string, oldBody, newBody *model.RequestBody) []Change {
	path := endpointPath + " > requestBody"

	switch {
	case oldBody == nil && newBody == nil:
		return changes
	case oldBody == nil:
		sev := SeverityInfo
		if newBody.Required {
			sev = SeverityBreaking
		}
		return append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategoryRequestBody,
			Severity:    sev,
			Path:        path,
			Description: fmt.Sprintf("%s request body was added", requiredWord(newBody.Required)),
			NewValue:    newBody.ContentTypes,
		})
	case newBody == nil:
		return append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategoryRequestBody,
			Severity:    SeverityWarning,
			Path:        path,
			Description: "request body was removed",
			OldValue:    oldBody.ContentTypes,
		})
	}

	removed, added := stringSetDiff(oldBody.ContentTypes, newBody.ContentTypes)
	for _, ct := range removed {
		changes = append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategoryRequestBody,
			Severity:    SeverityBreaking,
			Path:        path + "." + ct,
			Description: fmt.Sprintf("request body content type %s is no longer accepted", ct),
			OldValue:    ct,
		})
	}
	for _, ct := range added {
		changes = append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategoryRequestBody,
			Severity:    SeverityInfo,
			Path:        path + "." + ct,
			Description: fmt.Sprintf("request body content type %s is now accepted", ct),
			NewValue:    ct,
		})
	}

	switch {
	case !oldBody.Required && newBody.Required:
		changes = append(changes, Change{
			Type:        ChangeTypeModified,
			Category:    CategoryRequestBody,
			Severity:    SeverityBreaking,
			Path:        path,
			Description: "request body is now required",
			OldValue:    false,
			NewValue:    true,
		})
	case oldBody.Required && !newBody.Required:
		changes = append(changes, Change{
			Type:        ChangeTypeModified,
			Category:    CategoryRequestBody,
			Severity:    SeverityInfo,
			Path:        path,
			Description: "request body is no longer required",
			OldValue:    true,
			NewValue:    false,
		})
	}
	return changes
}

func compareResponses(changes []Change, endpointPath string, oldResponses, newResponses []model.Response) []Change {
	d := diffKeyed(oldResponses, newResponses, func(r model.Response) string { return r.StatusCode })

	for _, r := range d.removed {
		changes = append(changes, Change{
			Type:        ChangeTypeRemoved,
			Category:    CategoryResponse,
			Severity:    SeverityWarning,
			Path:        endpointPath + " > responses." + r.StatusCode,
			Description: fmt.Sprintf("response %s was removed", r.StatusCode),
			OldValue:    r.StatusCode,
		})
	}
	for _, r := range d.added {
		changes = append(changes, Change{
			Type:        ChangeTypeAdded,
			Category:    CategoryResponse,
			Severity:    SeverityInfo,
			Path:        endpointPath + " > responses." + r.StatusCode,
			Description: fmt.Sprintf("response %s was added", r.StatusCode),
			NewValue:    r.StatusCode,
		})
	}
	return changes
}

func requiredWord(required bool) string {
	if required {
		return "required"
	}
	return "optional"
}
