package openapi

import "os"

// Document is the decoded OpenAPI document, kept in its raw ordered-tree
// form plus a few top-level fields callers need by name. components is
// the registry of component.schemas subtrees keyed by name.
type Document struct {
	Raw RawValue
	// Bytes holds the original, unmutated source bytes — the nested-type
	// walker mutates Raw's operation and component subtrees in place (§4.5), so anything
	// that needs a pristine copy of the input (e.g. the orchestrator's
	// "verbatim copy of openapi.json") must re-parse from Bytes rather
	// than re-serialize the (by-then-mutated) Raw tree.
	Bytes      []byte
	Version    string
	Info       Info
	Servers    []Server
	Tags       []Tag
	components ComponentRegistry
	componentOrder []string
	Source     string
}

// Info mirrors the OpenAPI info object fields this generator consumes.
type Info struct {
	Title       string
	Description string
}

// Server mirrors a single OpenAPI server entry.
type Server struct {
	URL         string
	Description string
}

// Tag mirrors a document-level tag declaration.
type Tag struct {
	Name        string
	Description string
}

// ComponentRegistry maps a component schema name to its raw subtree;
// lifetime equals the Document. The subtrees are not copies: they share
// storage with Raw, and Walk replaces $ref/combinator nodes nested inside a
// component it resolves with SchemaMetadata nodes in place, so the registry
// is not left unchanged by a walk.
type ComponentRegistry map[string]RawValue

// Components returns the document's component schema registry.
func (d *Document) Components() ComponentRegistry { return d.components }

// ComponentNames returns component schema names in declaration order — the
// registry itself is a map and so cannot carry that order.
func (d *Document) ComponentNames() []string { return d.componentOrder }

// LoadDocument reads and parses an OpenAPI JSON file from a local path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	return ParseDocument(data, path)
}

// ParseDocument parses OpenAPI JSON bytes already read into memory.
func ParseDocument(data []byte, sourcePath string) (*Document, error) {
	root, err := ParseRawValue(data)
	if err != nil {
		return nil, &ParseError{Path: sourcePath, Err: err}
	}

	info := Info{}
	if infoVal, ok := root.Get("info"); ok {
		info.Title, _ = getString(infoVal, "title")
		info.Description, _ = getString(infoVal, "description")
	}
	if info.Title == "" {
		return nil, &SchemaError{Msg: "info.title is required"}
	}

	var servers []Server
	if serversVal, ok := root.Get("servers"); ok && serversVal.Kind == KindArray {
		for _, s := range serversVal.Arr {
			url, _ := getString(s, "url")
			desc, _ := getString(s, "description")
			servers = append(servers, Server{URL: url, Description: desc})
		}
	}

	var tags []Tag
	if tagsVal, ok := root.Get("tags"); ok && tagsVal.Kind == KindArray {
		for _, t := range tagsVal.Arr {
			name, _ := getString(t, "name")
			desc, _ := getString(t, "description")
			tags = append(tags, Tag{Name: name, Description: desc})
		}
	}

	registry := ComponentRegistry{}
	var order []string
	if componentsVal, ok := root.Get("components"); ok {
		if schemasVal, ok := componentsVal.Get("schemas"); ok && schemasVal.Kind == KindObject {
			for _, name := range schemasVal.Keys {
				registry[name] = schemasVal.Fields[name]
				order = append(order, name)
			}
		}
	}

	return &Document{
		Raw:            root,
		Bytes:          data,
		Version:        root.FieldString("openapi"),
		Info:           info,
		Servers:        servers,
		Tags:           tags,
		components:     registry,
		componentOrder: order,
		Source:         sourcePath,
	}, nil
}

// getString fetches a string field from an object node, reporting whether
// the field existed and held a string.
func getString(v RawValue, key string) (string, bool) {
	field, ok := v.Get(key)
	if !ok || field.Kind != KindString {
		return "", false
	}
	return field.Str, true
}

// FieldString looks up a top-level string field by key on an object
// RawValue, returning "" when absent.
func (v RawValue) FieldString(key string) string {
	val, ok := v.Get(key)
	if !ok {
		return ""
	}
	return val.StringOr("")
}
