// Package planner turns a normalized operation's HTTP parameters and request
// body into the ordered method-parameter list a generated client handler
// signature exposes: required parameters first, then optional, HTTP
// parameters before body-derived ones within each group.
package planner

import "github.com/logscore/borea/internal/openapi"

const defaultDescription = "No description provided"

// defaultBodyDescription is the fallback description for the synthetic
// opaque "request_body" parameter, matching the original generator's
// request_body.get("description", "Request body").
const defaultBodyDescription = "Request body"

// MethodParameter is one argument of a generated handler method.
type MethodParameter struct {
	Required     bool
	Name         string
	OriginalName string
	Type         string
	Description  string
}

// EffectiveSchema is the request body schema actually used to derive
// parameters, after the single-nested-schema unwrap in ResolveMethodParams.
// Exactly one of Raw or Metadata is set. When the operation has no JSON
// request body, ResolveMethodParams returns a nil *EffectiveSchema.
type EffectiveSchema struct {
	// Raw is set when the body's SchemaMetadata resolved to exactly one
	// concrete nested schema — that schema itself is used, unwrapped.
	Raw *openapi.RawValue
	// Metadata is set when the body resolved to zero or more than one
	// nested schema — the body is treated as opaque.
	Metadata *openapi.SchemaMetadata
}

// ResolveMethodParams implements the parameter-planning rules: HTTP
// parameters partition directly into required/optional by their own
// Required flag; the request body (if any) is flattened when it resolves to
// exactly one concrete nested schema, and its properties partitioned the
// same way, skipping any property name already claimed by an HTTP
// parameter. A body with no usable properties (opaque) yields a single
// synthetic "request_body" parameter instead. The final lists are
// required-HTTP-then-required-body, optional-HTTP-then-optional-body.
func ResolveMethodParams(parameters []openapi.HttpParameter, requestBody *openapi.SchemaMetadata) (*EffectiveSchema, []MethodParameter, []MethodParameter) {
	schema := getEffectiveSchema(requestBody)

	httpNames := make(map[string]bool, len(parameters))
	var requiredHTTP, optionalHTTP []MethodParameter
	for _, p := range parameters {
		httpNames[p.Name] = true
		mp := MethodParameter{
			Required:     p.Required,
			Name:         p.Name,
			OriginalName: p.OriginalName,
			Type:         p.Type,
			Description:  p.Description,
		}
		if p.Required {
			requiredHTTP = append(requiredHTTP, mp)
		} else {
			optionalHTTP = append(optionalHTTP, mp)
		}
	}

	requiredBody, optionalBody := resolveBodyParams(schema, httpNames)

	required := append(requiredHTTP, requiredBody...)
	optional := append(optionalHTTP, optionalBody...)
	return schema, required, optional
}

// getEffectiveSchema unwraps requestBody to its single nested concrete
// schema when there is exactly one, per the original generator's
// length_nested_json_schemas == 1 special case; otherwise the whole
// SchemaMetadata stands in as an opaque body.
func getEffectiveSchema(requestBody *openapi.SchemaMetadata) *EffectiveSchema {
	if requestBody == nil {
		return nil
	}
	if requestBody.LengthNestedJSONSchemas == 1 {
		nested := requestBody.NestedJSONSchemas[0]
		return &EffectiveSchema{Raw: &nested}
	}
	return &EffectiveSchema{Metadata: requestBody}
}

func resolveBodyParams(schema *EffectiveSchema, httpNames map[string]bool) (required, optional []MethodParameter) {
	if schema == nil {
		return nil, nil
	}

	if schema.Raw != nil {
		raw := *schema.Raw
		if propsVal, ok := raw.Get("properties"); ok && propsVal.Kind == openapi.KindObject {
			return propertiesToParams(raw, propsVal, httpNames)
		}
		return opaqueRawParam(raw)
	}

	return opaqueMetadataParam(schema.Metadata)
}

func propertiesToParams(schema, props openapi.RawValue, httpNames map[string]bool) (required, optional []MethodParameter) {
	schemaRequired := map[string]bool{}
	if reqVal, ok := schema.Get("required"); ok {
		for _, name := range reqVal.StringSlice() {
			schemaRequired[name] = true
		}
	}

	for _, name := range props.Keys {
		if httpNames[name] {
			continue
		}
		prop := props.Fields[name]
		isRequired := schemaRequired[name] || propHasRequiredFlag(prop)
		mp := MethodParameter{
			Required:    isRequired,
			Name:        name,
			Type:        formatType(prop),
			Description: propertyDescription(prop, schema),
		}
		if isRequired {
			required = append(required, mp)
		} else {
			optional = append(optional, mp)
		}
	}
	return required, optional
}

// opaqueRawParam synthesizes the single "request_body" parameter for a
// concrete schema with no usable properties (e.g. an array or scalar body).
func opaqueRawParam(schema openapi.RawValue) (required, optional []MethodParameter) {
	reqVal, hasReq := schema.Get("required")
	isRequired := truthyRequired(reqVal, hasReq)
	mp := MethodParameter{
		Required:    isRequired,
		Name:        "request_body",
		Type:        formatType(schema),
		Description: descriptionOr(schema, defaultBodyDescription),
	}
	if isRequired {
		return []MethodParameter{mp}, nil
	}
	return nil, []MethodParameter{mp}
}

// opaqueMetadataParam synthesizes the "request_body" parameter when the
// body resolved to zero or multiple nested schemas and so was never
// unwrapped to a concrete properties object.
func opaqueMetadataParam(meta *openapi.SchemaMetadata) (required, optional []MethodParameter) {
	isRequired := len(meta.Required) > 0
	mp := MethodParameter{
		Required:    isRequired,
		Name:        "request_body",
		Type:        meta.Type,
		Description: defaultBodyDescription,
	}
	if isRequired {
		return []MethodParameter{mp}, nil
	}
	return nil, []MethodParameter{mp}
}

// formatType resolves a property's canonical type descriptor: the walker
// may already have replaced it with a SchemaMetadata node (if it carried its
// own $ref/combinator), in which case its Type is used directly rather than
// re-resolving the now-opaque node.
func formatType(v openapi.RawValue) string {
	if v.Kind == openapi.KindSchemaMetadata {
		return v.Meta.Type
	}
	return openapi.ResolveType(v)
}

// propHasRequiredFlag checks a property's own "required" boolean field —
// distinct from the parent schema's required name list, and only
// meaningful on a property that is still a plain (unreplaced) object node.
func propHasRequiredFlag(v openapi.RawValue) bool {
	if v.Kind != openapi.KindObject {
		return false
	}
	flag, ok := v.Get("required")
	return ok && flag.Kind == openapi.KindBool && flag.Bool
}

// propertyDescription resolves a property's description, falling back to
// the first schema the walker resolved it to (when the property itself was
// replaced by a SchemaMetadata node), then to the enclosing schema's own
// description, then to the package default.
func propertyDescription(prop, enclosing openapi.RawValue) string {
	if prop.Kind == openapi.KindObject {
		if desc, ok := prop.Get("description"); ok && desc.Kind == openapi.KindString && desc.Str != "" {
			return desc.Str
		}
	}
	if prop.Kind == openapi.KindSchemaMetadata && len(prop.Meta.NestedJSONSchemas) > 0 {
		if d := descriptionOr(prop.Meta.NestedJSONSchemas[0], ""); d != "" {
			return d
		}
	}
	return descriptionOr(enclosing, defaultDescription)
}

func descriptionOr(v openapi.RawValue, def string) string {
	if v.Kind == openapi.KindObject {
		if desc, ok := v.Get("description"); ok && desc.Kind == openapi.KindString && desc.Str != "" {
			return desc.Str
		}
	}
	return def
}

// truthyRequired mirrors the original generator's truthiness check on a
// requestBody's "required" field, which may be a boolean (the OpenAPI
// requestBody wrapper) or a non-empty list of property names (a JSON Schema
// object's required array) depending on which schema it was read off.
func truthyRequired(v openapi.RawValue, ok bool) bool {
	if !ok {
		return false
	}
	switch v.Kind {
	case openapi.KindBool:
		return v.Bool
	case openapi.KindArray:
		return len(v.Arr) > 0
	default:
		return false
	}
}
