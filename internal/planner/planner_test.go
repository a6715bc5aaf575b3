package planner

import (
	"testing"

	"github.com/logscore/borea/internal/openapi"
)

func mustParse(t *testing.T, doc string) openapi.RawValue {
	t.Helper()
	val, err := openapi.ParseRawValue([]byte(doc))
	if err != nil {
		t.Fatalf("ParseRawValue: %v", err)
	}
	return val
}

func names(params []MethodParameter) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Name
	}
	return out
}

func TestResolveMethodParamsHTTPOnly(t *testing.T) {
	params := []openapi.HttpParameter{
		{Name: "orderId", OriginalName: "orderId", In: "path", Required: true, Type: "string"},
		{Name: "expand", OriginalName: "expand", In: "query", Required: false, Type: "string"},
	}

	_, required, optional := ResolveMethodParams(params, nil)

	if got := names(required); len(got) != 1 || got[0] != "orderId" {
		t.Errorf("expected required=[orderId], got %v", got)
	}
	if got := names(optional); len(got) != 1 || got[0] != "expand" {
		t.Errorf("expected optional=[expand], got %v", got)
	}
}

func TestResolveMethodParamsUnwrapsSingleNestedSchema(t *testing.T) {
	registry := openapi.ComponentRegistry{
		"Money": mustParse(t, `{"type": "object", "properties": {"amount": {"type": "integer"}}}`),
	}
	bodySchema := mustParse(t, `{"$ref": "#/components/schemas/Money"}`)
	meta := openapi.BuildSchemaMetadata(bodySchema, registry)

	if meta.LengthNestedJSONSchemas != 1 {
		t.Fatalf("expected exactly 1 nested schema, got %d", meta.LengthNestedJSONSchemas)
	}

	effective, _, _ := ResolveMethodParams(nil, meta)
	if effective == nil || effective.Raw == nil {
		t.Fatalf("expected an unwrapped Raw effective schema, got %+v", effective)
	}
	if effective.Raw.FieldString("type") != "object" {
		t.Errorf("expected unwrapped schema type == object, got %q", effective.Raw.FieldString("type"))
	}
}

func TestResolveMethodParamsBodyPropertiesPartitioned(t *testing.T) {
	registry := openapi.ComponentRegistry{}
	bodySchema := mustParse(t, `{
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "string", "description": "the order id"},
			"note": {"type": "string"}
		}
	}`)
	meta := openapi.BuildSchemaMetadata(bodySchema, registry)

	_, required, optional := ResolveMethodParams(nil, meta)

	if got := names(required); len(got) != 1 || got[0] != "id" {
		t.Fatalf("expected required=[id], got %v", got)
	}
	if required[0].Description != "the order id" {
		t.Errorf("expected property description preserved, got %q", required[0].Description)
	}
	if got := names(optional); len(got) != 1 || got[0] != "note" {
		t.Fatalf("expected optional=[note], got %v", got)
	}
}

func TestResolveMethodParamsHTTPParamSuppressesBodyProperty(t *testing.T) {
	registry := openapi.ComponentRegistry{}
	bodySchema := mustParse(t, `{
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "string"}
		}
	}`)
	meta := openapi.BuildSchemaMetadata(bodySchema, registry)

	httpParams := []openapi.HttpParameter{
		{Name: "id", OriginalName: "id", In: "path", Required: true, Type: "string"},
	}

	_, required, optional := ResolveMethodParams(httpParams, meta)

	if len(required) != 1 || required[0].OriginalName != "id" {
		t.Fatalf("expected only the HTTP param to survive, got required=%v optional=%v", required, optional)
	}
}

func TestResolveMethodParamsOpaqueBodyYieldsRequestBodyParam(t *testing.T) {
	registry := openapi.ComponentRegistry{}
	bodySchema := mustParse(t, `{"type": "array", "items": {"type": "string"}}`)
	meta := openapi.BuildSchemaMetadata(bodySchema, registry)

	_, required, optional := ResolveMethodParams(nil, meta)

	if len(required) != 0 {
		t.Fatalf("expected no required params, got %v", required)
	}
	if len(optional) != 1 || optional[0].Name != "request_body" {
		t.Fatalf("expected a single optional request_body param, got %v", optional)
	}
}

func TestResolveMethodParamsNoRequestBody(t *testing.T) {
	effective, required, optional := ResolveMethodParams(nil, nil)
	if effective != nil {
		t.Errorf("expected nil effective schema, got %+v", effective)
	}
	if len(required) != 0 || len(optional) != 0 {
		t.Errorf("expected no params, got required=%v optional=%v", required, optional)
	}
}

func TestResolveMethodParamsDescriptionFallsBackToEnclosingSchema(t *testing.T) {
	registry := openapi.ComponentRegistry{}
	bodySchema := mustParse(t, `{
		"type": "object",
		"description": "the request payload",
		"properties": {
			"note": {"type": "string"}
		}
	}`)
	meta := openapi.BuildSchemaMetadata(bodySchema, registry)

	_, _, optional := ResolveMethodParams(nil, meta)
	if len(optional) != 1 {
		t.Fatalf("expected 1 optional param, got %v", optional)
	}
	if optional[0].Description != "the request payload" {
		t.Errorf("expected fallback to enclosing description, got %q", optional[0].Description)
	}
}
