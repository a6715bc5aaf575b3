package openapi

// combinatorKeys are the keys under which a schema composes other schemas.
var combinatorKeys = [...]string{"allOf", "oneOf", "anyOf", "not"}

// ExtractRefs transitively collects all component names reachable from a
// schema via $ref under allOf/oneOf/anyOf/not. It terminates on cyclic
// component graphs by tracking a per-call visited-set: when a $ref to an
// already-visited component is found, its name is still appended but the
// extractor does not recurse into that component's own schema again.
// Duplicates in traversal order are permitted.
func ExtractRefs(schema RawValue, registry ComponentRegistry) []string {
	return extractRefs(schema, registry, make(map[string]bool))
}

func extractRefs(schema RawValue, registry ComponentRegistry, seen map[string]bool) []string {
	var refs []string
	if schema.Kind != KindObject {
		return refs
	}

	if refVal, ok := schema.Get("$ref"); ok {
		name := lastPathSegment(refVal.String())
		refs = append(refs, name)
		if !seen[name] {
			seen[name] = true
			if component, ok := registry[name]; ok {
				refs = append(refs, extractRefs(component, registry, seen)...)
			}
		}
	}

	for _, key := range combinatorKeys {
		sub, ok := schema.Get(key)
		if !ok {
			continue
		}
		for _, item := range combinatorItems(sub) {
			refs = append(refs, extractRefs(item, registry, seen)...)
		}
	}

	return refs
}

// combinatorItems normalizes a combinator value to a list of schemas: an
// array is used as-is, a scalar "not" schema becomes a single-element list.
func combinatorItems(v RawValue) []RawValue {
	if v.Kind == KindArray {
		return v.Arr
	}
	return []RawValue{v}
}
