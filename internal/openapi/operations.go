package openapi

import "strings"

// HttpParameter describes a single path/query/header/cookie parameter.
type HttpParameter struct {
	Name         string
	OriginalName string
	In           string
	Required     bool
	Type         string
	Description  string
}

// HttpHeader is an HttpParameter known to have In == "header", deduplicated
// across the whole operation set by (Name, In).
type HttpHeader = HttpParameter

// Operation is a single (path, method) pair with a non-empty operationId.
type Operation struct {
	Tag          string
	OperationID  string
	Method       string
	Path         string
	Summary      string
	Description  string
	Parameters   []HttpParameter
	RequestBody  *SchemaMetadata
}

// httpMethods are the path-item keys that denote an operation, in the
// order OpenAPI 3.x documents conventionally declare them. Any other
// path-item key (parameters, summary, description, servers, $ref, ...) is
// not a candidate operation.
var httpMethods = [...]string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

func isHTTPMethod(key string) bool {
	for _, m := range httpMethods {
		if key == m {
			return true
		}
	}
	return false
}

// ExtractOperations iterates paths × methods in document order and yields
// one Operation per (path, method) pair that declares an operationId and
// passes the tag/operation-id filters. Operations without an operationId
// are silently skipped — this is an existing contract, not an error.
func ExtractOperations(doc *Document, tagFilter, operationIDFilter string) []Operation {
	var operations []Operation

	pathsVal, ok := doc.Raw.Get("paths")
	if !ok || pathsVal.Kind != KindObject {
		return operations
	}

	for _, path := range pathsVal.Keys {
		pathItem := pathsVal.Fields[path]
		if pathItem.Kind != KindObject {
			continue
		}
		for _, method := range pathItem.Keys {
			if !isHTTPMethod(method) {
				continue
			}
			details := pathItem.Fields[method]
			if details.Kind != KindObject {
				continue
			}
			opID, hasOpID := getString(details, "operationId")
			if !hasOpID || opID == "" {
				continue
			}
			if operationIDFilter != "" && operationIDFilter != opID {
				continue
			}
			tags := getStringSlice(details, "tags")
			if tagFilter != "" && !containsString(tags, tagFilter) {
				continue
			}

			operations = append(operations, parseOperation(path, method, details, doc.Components()))
		}
	}

	return operations
}

func parseOperation(path, method string, details RawValue, registry ComponentRegistry) Operation {
	tag := ""
	if tags := getStringSlice(details, "tags"); len(tags) > 0 {
		tag = tags[0]
	}

	summary, _ := getString(details, "summary")
	description, _ := getString(details, "description")
	opID, _ := getString(details, "operationId")

	var parameters []HttpParameter
	if paramsVal, ok := details.Get("parameters"); ok && paramsVal.Kind == KindArray {
		for _, p := range paramsVal.Arr {
			parameters = append(parameters, parseHTTPParameter(p))
		}
	}

	var requestBody *SchemaMetadata
	if bodyVal, ok := details.Get("requestBody"); ok && bodyVal.Kind == KindObject {
		if contentVal, ok := bodyVal.Get("content"); ok {
			if jsonVal, ok := contentVal.Get("application/json"); ok {
				if schemaVal, ok := jsonVal.Get("schema"); ok {
					requestBody = BuildSchemaMetadata(schemaVal, registry)
				}
			}
		}
	}

	return Operation{
		Tag:         tag,
		OperationID: opID,
		Method:      strings.ToUpper(method),
		Path:        path,
		Summary:     summary,
		Description: description,
		Parameters:  parameters,
		RequestBody: requestBody,
	}
}

func parseHTTPParameter(p RawValue) HttpParameter {
	name, _ := getString(p, "name")
	in, _ := getString(p, "in")
	description, _ := getString(p, "description")
	required := false
	if reqVal, ok := p.Get("required"); ok {
		required = reqVal.BoolOr(false)
	}
	var typ string
	if schemaVal, ok := p.Get("schema"); ok {
		typ = ResolveType(schemaVal)
	} else {
		typ = "any"
	}
	return HttpParameter{
		Name:         CleanParameterName(name),
		OriginalName: name,
		In:           in,
		Required:     required,
		Type:         typ,
		Description:  description,
	}
}

func getStringSlice(v RawValue, key string) []string {
	val, ok := v.Get(key)
	if !ok {
		return nil
	}
	return val.StringSlice()
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

// CollectHeaders accumulates headers by scanning every operation's
// parameters and adding the first occurrence of each unique (Name, In)
// pair where In == "header".
func CollectHeaders(operations []Operation) []HttpHeader {
	var headers []HttpHeader
	seen := make(map[[2]string]bool)
	for _, op := range operations {
		for _, p := range op.Parameters {
			if p.In != "header" {
				continue
			}
			key := [2]string{p.Name, p.In}
			if seen[key] {
				continue
			}
			seen[key] = true
			headers = append(headers, p)
		}
	}
	return headers
}
