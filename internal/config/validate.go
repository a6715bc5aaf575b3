package config

import (
	"path/filepath"
	"strings"
)

// ValidationResult separates hard errors (Validate already covers these)
// from non-fatal warnings a caller may want to surface before generating.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// ValidateDetailed runs the same checks as Validate plus advisory warnings,
// collecting everything instead of stopping at the first problem.
func (c *Config) ValidateDetailed() ValidationResult {
	var result ValidationResult

	for _, pattern := range c.Ignores {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			result.Errors = append(result.Errors, "ignores: invalid glob \""+pattern+"\": "+err.Error())
		}
	}

	if c.Input.OpenAPI != "" && !strings.HasSuffix(c.Input.OpenAPI, ".json") {
		result.Warnings = append(result.Warnings, "input.openapi does not end in .json: \""+c.Input.OpenAPI+"\"")
	}

	if c.Output.XCodeSamples && !c.Output.Tests {
		result.Warnings = append(result.Warnings, "output.xCodeSamples is set without output.tests — code samples are still written to openapi.json regardless")
	}

	return result
}
