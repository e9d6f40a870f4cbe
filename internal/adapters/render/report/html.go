package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/bnema/workiq-automation/internal/domain"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var htmlTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

type htmlView struct {
	domain.Report
	Generated string
}

// HTML renders a self-contained styled document. Section bodies are escaped
// and keep their line breaks through CSS.
func HTML(r domain.Report) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, htmlView{Report: r, Generated: generatedLine(r)}); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}

	return buf.String(), nil
}
