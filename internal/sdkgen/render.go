package sdkgen

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/logscore/borea/internal/openapi"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcMap = template.FuncMap{
	"Title":  openapi.CleanClassName,
	"GoType": goType,
}

var templates = template.Must(template.New("sdkgen").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl"))

// render executes the named template against data and wraps any failure in
// a TemplateError naming the render context for diagnosis.
func render(name, context string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, &TemplateError{Context: context, Err: err}
	}
	return buf.Bytes(), nil
}
