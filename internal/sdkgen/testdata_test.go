package sdkgen

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// buildFixtureDoc generates an OpenAPI document with n distinct operations,
// each keyed by a fresh UUID so repeated test runs never collide on a
// stale generated-file path left over from a previous run.
func buildFixtureDoc(t *testing.T, n int) string {
	t.Helper()

	paths := ""
	for i := 0; i < n; i++ {
		opID := "op" + uuid.NewString()[:8]
		if i > 0 {
			paths += ","
		}
		paths += fmt.Sprintf(`"/fixture/%d": {"get": {"operationId": %q, "tags": ["fixtures"]}}`, i, opID)
	}

	doc := fmt.Sprintf(`{
		"openapi": "3.0.0",
		"info": {"title": "Fixture API %s"},
		"paths": {%s}
	}`, uuid.NewString(), paths)

	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateHandlesMultipleDistinctOperations(t *testing.T) {
	input := buildFixtureDoc(t, 3)
	out := filepath.Join(filepath.Dir(input), "sdk")

	if err := Generate(input, out, GenerateOptions{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(out, "src", "fixtures"))
	if err != nil {
		t.Fatalf("reading tag directory: %v", err)
	}
	// one .go file for the tag itself, plus one subdirectory per operation
	var dirs int
	for _, e := range entries {
		if e.IsDir() {
			dirs++
		}
	}
	if dirs != 3 {
		t.Errorf("expected 3 operation subdirectories, got %d", dirs)
	}
}
