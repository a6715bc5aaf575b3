package sdkgen

import "strings"

// runtimeImports are the packages every generated handler file imports.
// Kept as a literal list rather than computed from the rendered output: the
// generated client deliberately carries no third-party HTTP dependency
// (spec.md scopes "producing runtime HTTP behavior" out entirely), so the
// set is small and fixed.
var runtimeImports = []string{"fmt"}

// RequirementsManifest renders the plain-text dependency manifest
// alongside the generated go.mod — the Go analogue of the original tool's
// requirements.txt, for operators who want the import list without
// parsing go.mod.
func RequirementsManifest() []byte {
	var sb strings.Builder
	sb.WriteString("# Go runtime dependencies for the generated client\n")
	sb.WriteString("# (standard library only — no third-party HTTP client is emitted)\n")
	for _, imp := range runtimeImports {
		sb.WriteString(imp)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
