package sdkgen

import "fmt"

// TemplateError wraps a template-render failure with the render context
// name so an operator can tell which artifact failed to generate.
type TemplateError struct {
	Context string
	Err     error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Context, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }
