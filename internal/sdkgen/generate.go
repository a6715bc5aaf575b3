package sdkgen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/logscore/borea/internal/openapi"
)

// GenerateOptions carries everything the CLI resolves from flags/config
// before calling Generate.
type GenerateOptions struct {
	ModelsDir        string
	Tests            bool
	XCodeSamples     bool
	TagFilter        string
	OperationIDFilter string
	Ignores          []string
}

// Generate runs the full pipeline: load and normalize the OpenAPI document,
// plan every operation's parameters, adapt the plan into render contexts,
// and write the generated tree under sdkOutput.
func Generate(openapiPath, sdkOutput string, opts GenerateOptions) error {
	doc, err := openapi.LoadDocument(openapiPath)
	if err != nil {
		return err
	}

	modelsDir := opts.ModelsDir
	if modelsDir == "" {
		modelsDir = "models"
	}

	meta := openapi.BuildMetadata(doc, opts.TagFilter, opts.OperationIDFilter)

	modulePath := openapi.CleanFileName(meta.Info.Title)
	if modulePath == "" {
		modulePath = "generatedsdk"
	}
	structName := openapi.CleanClassName(meta.Info.Title)
	if structName == "" {
		structName = "Client"
	}

	for _, dir := range []string{sdkOutput, filepath.Join(sdkOutput, modelsDir), filepath.Join(sdkOutput, "src")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &openapi.IoError{Path: dir, Err: err}
		}
	}
	if opts.Tests {
		if err := os.MkdirAll(filepath.Join(sdkOutput, "tests"), 0o755); err != nil {
			return &openapi.IoError{Path: filepath.Join(sdkOutput, "tests"), Err: err}
		}
	}

	if err := writeGoMod(sdkOutput, modulePath, opts.Ignores); err != nil {
		return err
	}

	if err := writeSchemaFiles(sdkOutput, modelsDir, meta, opts.Ignores); err != nil {
		return err
	}

	root := BuildRootContext(meta, structName, modulePath)

	if err := writeRootFile(sdkOutput, root, opts.Ignores); err != nil {
		return err
	}

	for _, tag := range root.Tags {
		if err := writeTagTree(sdkOutput, tag, opts, structName); err != nil {
			return fmt.Errorf("generating tag %q: %w", tag.Tag, err)
		}
	}

	if err := writeFile(sdkOutput, filepath.Join(sdkOutput, "requirements.go.txt"), RequirementsManifest(), opts.Ignores); err != nil {
		return err
	}

	if err := copyOpenAPIDocument(sdkOutput, doc, meta, opts, modulePath); err != nil {
		return err
	}

	return nil
}

func writeGoMod(sdkOutput, modulePath string, ignores []string) error {
	content, err := render("gomod.tmpl", "go.mod", struct{ ModulePath string }{modulePath})
	if err != nil {
		return err
	}
	return writeFile(sdkOutput, filepath.Join(sdkOutput, "go.mod"), content, ignores)
}

func writeSchemaFiles(sdkOutput, modelsDir string, meta *openapi.OpenAPIMetadata, ignores []string) error {
	for _, schema := range BuildSchemaContexts(meta) {
		content, err := render("schema.go.tmpl", "schema:"+schema.Name, schema)
		if err != nil {
			return fmt.Errorf("generating model %q: %w", schema.Name, err)
		}
		path := filepath.Join(sdkOutput, modelsDir, schema.FileName+".go")
		if err := writeFile(sdkOutput, path, content, ignores); err != nil {
			return err
		}
	}
	return nil
}

func writeRootFile(sdkOutput string, root *RootContext, ignores []string) error {
	content, err := render("root.go.tmpl", "root SDK", root)
	if err != nil {
		return err
	}
	path := filepath.Join(sdkOutput, "src", "sdk.go")
	return writeFile(sdkOutput, path, content, ignores)
}

func writeTagTree(sdkOutput string, tag TagContext, opts GenerateOptions, _ string) error {
	tagDir := filepath.Join(sdkOutput, "src", tag.FileName)
	if err := os.MkdirAll(tagDir, 0o755); err != nil {
		return &openapi.IoError{Path: tagDir, Err: err}
	}

	content, err := render("tag.go.tmpl", "tag:"+tag.Tag, tag)
	if err != nil {
		return err
	}
	if err := writeFile(sdkOutput, filepath.Join(tagDir, tag.FileName+".go"), content, opts.Ignores); err != nil {
		return err
	}

	for _, handler := range tag.Handlers {
		if err := writeHandler(sdkOutput, tagDir, handler, opts); err != nil {
			return fmt.Errorf("operation %q: %w", handler.OperationID, err)
		}
	}
	return nil
}

func writeHandler(sdkOutput, tagDir string, handler HandlerContext, opts GenerateOptions) error {
	opDir := filepath.Join(tagDir, handler.PkgName)
	if err := os.MkdirAll(opDir, 0o755); err != nil {
		return &openapi.IoError{Path: opDir, Err: err}
	}

	content, err := render("handler.go.tmpl", "handler:"+handler.OperationID, handler)
	if err != nil {
		return err
	}
	if err := writeFile(sdkOutput, filepath.Join(opDir, handler.PkgName+".go"), content, opts.Ignores); err != nil {
		return err
	}

	if !opts.Tests {
		return nil
	}

	testDir := filepath.Join(sdkOutput, "tests", filepath.Base(tagDir), handler.PkgName)
	if err := os.MkdirAll(testDir, 0o755); err != nil {
		return &openapi.IoError{Path: testDir, Err: err}
	}
	testContent, err := render("test.go.tmpl", "test:"+handler.OperationID, handler)
	if err != nil {
		return err
	}
	return writeFile(sdkOutput, filepath.Join(testDir, handler.PkgName+"_test.go"), testContent, opts.Ignores)
}

// copyOpenAPIDocument re-parses the document's original bytes — not the
// live Raw tree, which the nested-type walker has by now mutated in place
// — so the copy written to disk is verbatim (plus the optional
// x-codeSamples annotation), per spec.md §6.
func copyOpenAPIDocument(sdkOutput string, doc *openapi.Document, meta *openapi.OpenAPIMetadata, opts GenerateOptions, modulePath string) error {
	fresh, err := openapi.ParseRawValue(doc.Bytes)
	if err != nil {
		return err
	}

	if opts.XCodeSamples {
		fresh = AnnotateCodeSamples(fresh, meta.Operations, modulePath)
	}

	out, err := json.MarshalIndent(fresh, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding openapi.json copy: %w", err)
	}
	out = append(out, '\n')

	return writeFile(sdkOutput, filepath.Join(sdkOutput, "openapi.json"), out, opts.Ignores)
}
