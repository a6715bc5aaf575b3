package sdkgen

import (
	"testing"

	"github.com/logscore/borea/internal/openapi"
)

const adapterSampleDoc = `{
  "openapi": "3.0.0",
  "info": {"title": "Orders API"},
  "servers": [{"url": "https://api.example.com"}],
  "tags": [{"name": "orders"}],
  "paths": {
    "/orders/{orderId}": {
      "get": {
        "operationId": "getOrder",
        "tags": ["orders"],
        "parameters": [
          {"name": "orderId", "in": "path", "required": true, "schema": {"type": "string"}}
        ]
      }
    },
    "/health": {
      "get": {
        "operationId": "getHealth"
      }
    }
  }
}`

func loadAdapterSample(t *testing.T) *openapi.OpenAPIMetadata {
	t.Helper()
	doc, err := openapi.ParseDocument([]byte(adapterSampleDoc), "sample.json")
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	return openapi.BuildMetadata(doc, "", "")
}

func TestBuildRootContextOrdersDeclaredTagsFirst(t *testing.T) {
	meta := loadAdapterSample(t)
	root := BuildRootContext(meta, "Client", "example.com/sdk")

	if len(root.Tags) != 2 {
		t.Fatalf("expected 2 tags (orders + default), got %d", len(root.Tags))
	}
	if root.Tags[0].Tag != "orders" {
		t.Errorf("expected declared tag \"orders\" first, got %q", root.Tags[0].Tag)
	}
	if root.Tags[1].Tag != defaultTagName {
		t.Errorf("expected undeclared tag %q second, got %q", defaultTagName, root.Tags[1].Tag)
	}
	if root.BaseURL != "https://api.example.com" {
		t.Errorf("expected base URL from first server, got %q", root.BaseURL)
	}
}

func TestBuildHandlerContextRewritesPathTemplate(t *testing.T) {
	meta := loadAdapterSample(t)
	var op openapi.Operation
	for _, o := range meta.Operations {
		if o.OperationID == "getOrder" {
			op = o
		}
	}
	if op.OperationID == "" {
		t.Fatal("getOrder operation not found")
	}

	handler := BuildHandlerContext("orders", "Orders", "orders", "example.com/sdk", op)

	if handler.PathTemplate != "/orders/%s" {
		t.Errorf("expected rewritten path template \"/orders/%%s\", got %q", handler.PathTemplate)
	}
	if len(handler.PathParamOrder) != 1 || handler.PathParamOrder[0] != "orderId" {
		t.Errorf("expected path param order [orderId], got %v", handler.PathParamOrder)
	}
	if len(handler.RequiredParams) != 1 || handler.RequiredParams[0].Name != "orderId" {
		t.Errorf("expected orderId as the sole required param, got %v", handler.RequiredParams)
	}
	wantImport := "example.com/sdk/src/orders/getorder"
	if handler.ImportPath != wantImport {
		t.Errorf("expected import path %q, got %q", wantImport, handler.ImportPath)
	}
}

func TestBuildSchemaContextsPreservesDeclarationOrder(t *testing.T) {
	doc, err := openapi.ParseDocument([]byte(`{
		"openapi": "3.0.0",
		"info": {"title": "t"},
		"paths": {},
		"components": {
			"schemas": {
				"Zebra": {"type": "object"},
				"Apple": {"type": "object"}
			}
		}
	}`), "x.json")
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	meta := openapi.BuildMetadata(doc, "", "")

	schemas := BuildSchemaContexts(meta)
	if len(schemas) != 2 || schemas[0].Name != "Zebra" || schemas[1].Name != "Apple" {
		t.Errorf("expected declaration order [Zebra Apple], got %+v", schemas)
	}
	if schemas[0].GoName != "Zebra" {
		t.Errorf("expected GoName \"Zebra\", got %q", schemas[0].GoName)
	}
}
