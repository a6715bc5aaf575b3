package openapi

// OpenAPIMetadata is the root plan record handed to the parameter planner
// and the template adapter: the normalized operation set, the document's
// declared tags/servers/info, the deduplicated header list, and the
// component registry.
type OpenAPIMetadata struct {
	Version        string
	Info           Info
	Servers        []Server
	Tags           []Tag
	Components     ComponentRegistry
	ComponentOrder []string
	Headers        []HttpHeader
	Operations     []Operation
	SourceFile     string
}

// Parse loads an OpenAPI document from path and normalizes it into an
// OpenAPIMetadata, applying the given tag/operation-id filters exactly as
// ExtractOperations does (empty string disables a filter).
func Parse(path, tagFilter, operationIDFilter string) (*OpenAPIMetadata, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return BuildMetadata(doc, tagFilter, operationIDFilter), nil
}

// BuildMetadata runs the operation extractor and header aggregator over an
// already-loaded Document.
func BuildMetadata(doc *Document, tagFilter, operationIDFilter string) *OpenAPIMetadata {
	operations := ExtractOperations(doc, tagFilter, operationIDFilter)
	headers := CollectHeaders(operations)

	return &OpenAPIMetadata{
		Version:        doc.Version,
		Info:           doc.Info,
		Servers:        doc.Servers,
		Tags:           doc.Tags,
		Components:     doc.Components(),
		ComponentOrder: doc.ComponentNames(),
		Headers:        headers,
		Operations:     operations,
		SourceFile:     doc.Source,
	}
}
