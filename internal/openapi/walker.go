package openapi

// Walk recursively resolves the concrete, resolved sub-schemas discovered
// beneath schema, per §4.5:
//
//  1. If schema has a "type", its subtree is traversed in place (mutating
//     every nested $ref/allOf/oneOf/anyOf/not mapping into a SchemaMetadata
//     node, bottom-up by key order) and the (now-mutated) schema itself is
//     appended to the result.
//  2. If schema has a "$ref" and the component resolves, Walk recurses into
//     the component schema and appends everything it discovers.
//  3. For each of allOf/oneOf/anyOf/not present on schema, Walk recurses
//     into every sub-schema (a scalar "not" schema is normalized to a
//     single-element list) and appends everything discovered.
//
// Cycle safety: a single top-level call tracks the component names visited
// during this walk. A repeated $ref to an already-visited component is not
// recursed into again, bounding recursion on cyclic component graphs (a
// self-reference A → A, or A → B → A) without building a cyclic in-memory
// structure.
func Walk(schema RawValue, registry ComponentRegistry) []RawValue {
	return walk(schema, registry, make(map[string]bool))
}

func walk(schema RawValue, registry ComponentRegistry, visited map[string]bool) []RawValue {
	var nested []RawValue
	if schema.Kind != KindObject {
		return nested
	}

	if typeVal, ok := schema.Get("type"); ok && typeVal.Kind == KindString {
		traverseObject(schema, registry, visited)
		nested = append(nested, schema)
	}

	if refVal, ok := schema.Get("$ref"); ok {
		name := lastPathSegment(refVal.String())
		if !visited[name] {
			if component, ok := registry[name]; ok {
				visited[name] = true
				nested = append(nested, walk(component, registry, visited)...)
			}
		}
	}

	for _, key := range combinatorKeys {
		sub, ok := schema.Get(key)
		if !ok {
			continue
		}
		for _, item := range combinatorItems(sub) {
			nested = append(nested, walk(item, registry, visited)...)
		}
	}

	return nested
}

// traverseObject descends every mapping and sequence in obj bottom-up by
// key order, replacing any nested mapping that carries $ref/allOf/oneOf/
// anyOf/not with a SchemaMetadata node in its parent slot. Scalars are
// left untouched.
func traverseObject(obj RawValue, registry ComponentRegistry, visited map[string]bool) {
	for _, key := range obj.Keys {
		val := obj.Fields[key]
		switch val.Kind {
		case KindObject:
			traverseObject(val, registry, visited)
			if hasCombinatorOrRef(val) {
				meta := buildSchemaMetadata(val, registry, visited)
				obj.Fields[key] = RawValue{Kind: KindSchemaMetadata, Meta: meta}
			}
		case KindArray:
			traverseArray(val, registry, visited)
		}
	}
}

func traverseArray(arr RawValue, registry ComponentRegistry, visited map[string]bool) {
	for i, item := range arr.Arr {
		switch item.Kind {
		case KindObject:
			traverseObject(item, registry, visited)
			if hasCombinatorOrRef(item) {
				meta := buildSchemaMetadata(item, registry, visited)
				arr.Arr[i] = RawValue{Kind: KindSchemaMetadata, Meta: meta}
			}
		case KindArray:
			traverseArray(item, registry, visited)
		}
	}
}

func hasCombinatorOrRef(v RawValue) bool {
	if v.Has("$ref") {
		return true
	}
	for _, key := range combinatorKeys {
		if v.Has(key) {
			return true
		}
	}
	return false
}
