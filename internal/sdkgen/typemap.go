package sdkgen

// goType maps a canonical type descriptor (§4.2) to the Go type used in a
// generated method signature. Only the JSON Schema scalar kinds get a
// concrete Go type; component references and composite descriptors
// (`A | B`, `A & B`, `Not[X]`) resolve to `any` — translating those fully
// into generated struct types is the component-schema-to-record work
// spec.md marks as an out-of-scope external collaborator.
func goType(descriptor string) string {
	switch descriptor {
	case "string":
		return "string"
	case "integer":
		return "int64"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "array":
		return "[]any"
	case "object":
		return "map[string]any"
	default:
		return "any"
	}
}
