package sdkgen

import (
	"strings"

	"github.com/logscore/borea/internal/openapi"
	"github.com/logscore/borea/internal/planner"
)

// BuildRootContext projects an OpenAPIMetadata into the root render
// context. Tags are emitted in the order they're declared in the document,
// followed by any tag used by an operation but never declared; a tag with
// zero surviving operations is omitted entirely.
func BuildRootContext(meta *openapi.OpenAPIMetadata, structName, modulePath string) *RootContext {
	byTag := map[string][]openapi.Operation{}
	for _, op := range meta.Operations {
		name := op.Tag
		if name == "" {
			name = defaultTagName
		}
		byTag[name] = append(byTag[name], op)
	}

	var baseURL string
	if len(meta.Servers) > 0 {
		baseURL = meta.Servers[0].URL
	}

	var tags []TagContext
	for _, name := range tagOrder(meta) {
		ops := byTag[name]
		if len(ops) == 0 {
			continue
		}
		tags = append(tags, BuildTagContext(name, ops, modulePath))
	}

	return &RootContext{
		Title:      meta.Info.Title,
		StructName: structName,
		ModulePath: modulePath,
		BaseURL:    baseURL,
		Headers:    meta.Headers,
		Tags:       tags,
	}
}

func tagOrder(meta *openapi.OpenAPIMetadata) []string {
	var order []string
	seen := make(map[string]bool)
	for _, t := range meta.Tags {
		if !seen[t.Name] {
			seen[t.Name] = true
			order = append(order, t.Name)
		}
	}
	for _, op := range meta.Operations {
		name := op.Tag
		if name == "" {
			name = defaultTagName
		}
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	return order
}

// BuildTagContext projects one tag's operations into a TagContext.
func BuildTagContext(tag string, ops []openapi.Operation, modulePath string) TagContext {
	structName := openapi.CleanClassName(tag)
	fileName := openapi.CleanFileName(tag)

	handlers := make([]HandlerContext, 0, len(ops))
	for _, op := range ops {
		handlers = append(handlers, BuildHandlerContext(tag, structName, fileName, modulePath, op))
	}

	return TagContext{
		Tag:        tag,
		StructName: structName,
		FileName:   fileName,
		ImportPath: modulePath + "/src/" + fileName,
		ModulePath: modulePath,
		Handlers:   handlers,
	}
}

// BuildHandlerContext projects one operation into a HandlerContext,
// resolving its method parameters through the planner.
func BuildHandlerContext(tag, tagStruct, tagFileName, modulePath string, op openapi.Operation) HandlerContext {
	schema, required, optional := planner.ResolveMethodParams(op.Parameters, op.RequestBody)

	pathTemplate, rawParamOrder := rewritePathTemplate(op.Path)
	paramOrder := resolvePathParamNames(rawParamOrder, op.Parameters)

	var bodyParam *planner.MethodParameter
	if schema != nil {
		bodyParam = findParam(required, "request_body")
		if bodyParam == nil {
			bodyParam = findParam(optional, "request_body")
		}
	}

	pkgName := openapi.CleanFileName(op.OperationID)

	return HandlerContext{
		Tag:            tag,
		TagStruct:      tagStruct,
		OperationID:    op.OperationID,
		PkgName:        pkgName,
		ImportPath:     modulePath + "/src/" + tagFileName + "/" + pkgName,
		MethodName:     openapi.CleanClassName(op.OperationID),
		HTTPMethod:     op.Method,
		Summary:        op.Summary,
		Description:    op.Description,
		PathTemplate:   pathTemplate,
		PathParamOrder: paramOrder,
		RequiredParams: required,
		OptionalParams: optional,
		RequestBody:    bodyParam,
	}
}

// resolvePathParamNames maps each raw "{placeholder}" name from the path
// template to the corresponding HTTP parameter's cleaned identifier, so
// generated code references the same field name the method parameter list
// uses. A placeholder with no matching path parameter is passed through
// unresolved (malformed input the document loader didn't catch).
func resolvePathParamNames(rawNames []string, parameters []openapi.HttpParameter) []string {
	byOriginal := make(map[string]string, len(parameters))
	for _, p := range parameters {
		if p.In == "path" {
			byOriginal[p.OriginalName] = p.Name
		}
	}
	out := make([]string, len(rawNames))
	for i, raw := range rawNames {
		if cleaned, ok := byOriginal[raw]; ok {
			out[i] = cleaned
		} else {
			out[i] = raw
		}
	}
	return out
}

func findParam(params []planner.MethodParameter, name string) *planner.MethodParameter {
	for i := range params {
		if params[i].Name == name {
			return &params[i]
		}
	}
	return nil
}

// rewritePathTemplate converts an OpenAPI path template's "{name}"
// placeholders into Go fmt verbs, returning the placeholder names in the
// order they appear so callers know which argument fills which verb.
func rewritePathTemplate(path string) (string, []string) {
	var sb strings.Builder
	var params []string

	i := 0
	for i < len(path) {
		if path[i] == '{' {
			end := strings.IndexByte(path[i:], '}')
			if end < 0 {
				sb.WriteString(path[i:])
				break
			}
			params = append(params, path[i+1:i+end])
			sb.WriteString("%s")
			i += end + 1
			continue
		}
		sb.WriteByte(path[i])
		i++
	}
	return sb.String(), params
}

// BuildSchemaContexts projects the document's component registry into one
// SchemaContext per schema, in declaration order.
func BuildSchemaContexts(meta *openapi.OpenAPIMetadata) []SchemaContext {
	out := make([]SchemaContext, 0, len(meta.ComponentOrder))
	for _, name := range meta.ComponentOrder {
		out = append(out, SchemaContext{
			Name:     name,
			GoName:   openapi.CleanClassName(name),
			FileName: openapi.CleanFileName(name),
			Schema:   meta.Components[name],
		})
	}
	return out
}
