package openapi

import "strings"

// ResolveType converts a schema subtree to a single-line canonical type
// descriptor string. Rules are applied in order, first match wins, and the
// resolver never recurses into object properties or array items — that is
// the nested-type walker's job (see Walk).
func ResolveType(schema RawValue) string {
	if schema.Kind != KindObject {
		return "any"
	}

	if refVal, ok := schema.Get("$ref"); ok {
		return lastPathSegment(refVal.String())
	}

	if allOfVal, ok := schema.Get("allOf"); ok && allOfVal.Kind == KindArray {
		parts := make([]string, 0, len(allOfVal.Arr))
		for _, sub := range allOfVal.Arr {
			parts = append(parts, ResolveType(sub))
		}
		return strings.Join(parts, " & ")
	}

	oneOfVal, hasOneOf := schema.Get("oneOf")
	anyOfVal, hasAnyOf := schema.Get("anyOf")
	if hasOneOf || hasAnyOf {
		var parts []string
		if hasOneOf && oneOfVal.Kind == KindArray {
			for _, sub := range oneOfVal.Arr {
				parts = append(parts, ResolveType(sub))
			}
		}
		if hasAnyOf && anyOfVal.Kind == KindArray {
			for _, sub := range anyOfVal.Arr {
				parts = append(parts, ResolveType(sub))
			}
		}
		return strings.Join(parts, " | ")
	}

	if notVal, ok := schema.Get("not"); ok {
		return "Not[" + ResolveType(notVal) + "]"
	}

	if typeVal, ok := schema.Get("type"); ok && typeVal.Kind == KindString {
		return typeVal.Str
	}
	return "any"
}

// lastPathSegment returns the component name from a "#/components/schemas/Name"
// style JSON pointer — the segment after the final '/'.
func lastPathSegment(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
