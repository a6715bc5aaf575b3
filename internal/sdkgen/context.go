// Package sdkgen adapts a normalized OpenAPI plan into Go render contexts
// and writes the generated client tree to disk.
package sdkgen

import (
	"github.com/logscore/borea/internal/openapi"
	"github.com/logscore/borea/internal/planner"
)

// defaultTagName buckets operations that declare no tag of their own.
const defaultTagName = "default"

// HandlerContext renders one generated method for a single operation.
type HandlerContext struct {
	Tag            string
	TagStruct      string
	OperationID    string
	PkgName        string
	ImportPath     string
	MethodName     string
	HTTPMethod     string
	Summary        string
	Description    string
	PathTemplate   string
	PathParamOrder []string
	RequiredParams []planner.MethodParameter
	OptionalParams []planner.MethodParameter
	RequestBody    *planner.MethodParameter
}

// TagContext renders one struct holding the base URL, with one method per
// operation declaring that tag.
type TagContext struct {
	Tag        string
	StructName string
	FileName   string
	ImportPath string
	ModulePath string
	Handlers   []HandlerContext
}

// RootContext renders the root SDK struct: base URL, shared headers, and
// one field per non-empty tag.
type RootContext struct {
	Title      string
	StructName string
	ModulePath string
	BaseURL    string
	Headers    []openapi.HttpHeader
	Tags       []TagContext
}

// SchemaContext renders one model file per component schema. Translation
// of the schema body itself is intentionally minimal — spec.md scopes
// component-schema-to-record translation out as "mechanical" and delegates
// it to an external model-file generator; this one emits a named
// map[string]any type per component, with no struct fields or tags.
type SchemaContext struct {
	Name     string
	GoName   string
	FileName string
	Schema   openapi.RawValue
}
