package sdkgen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/logscore/borea/internal/openapi"
)

// writeFile writes content to path relative to outputRoot, unless path
// matches one of the ignores globs (in which case it is skipped entirely)
// or the file already holds byte-identical content (in which case the
// write is skipped to avoid needless filesystem churn) — grounded in the
// teacher's write-if-unchanged writeFile helper in its generator.
func writeFile(outputRoot, path string, content []byte, ignores []string) error {
	rel, err := filepath.Rel(outputRoot, path)
	if err != nil {
		rel = path
	}
	for _, pattern := range ignores {
		if matched, _ := filepath.Match(pattern, rel); matched {
			return nil
		}
	}

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &openapi.IoError{Path: filepath.Dir(path), Err: err}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &openapi.IoError{Path: path, Err: err}
	}
	return nil
}
