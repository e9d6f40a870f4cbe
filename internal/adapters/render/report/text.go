package report

import (
	"strings"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerWidth = 68
	ruleWidth   = 70
)

var headerStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Width(headerWidth).
	Align(lipgloss.Center)

// Text renders a plain-text report with a boxed header. The output carries no
// terminal escape sequences so it can be written to disk as is.
func Text(r domain.Report) string {
	header := []string{strings.ToUpper(r.Title)}
	if r.Subtitle != "" {
		header = append(header, r.Subtitle)
	}
	if r.Date != "" {
		header = append(header, r.Date)
	}

	rule := strings.Repeat("─", ruleWidth)

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.Join(header, "\n")))
	b.WriteString("\n\n")

	for _, section := range r.Sections {
		b.WriteString(section.Icon + " " + section.Title + "\n")
		b.WriteString(rule + "\n")
		b.WriteString(section.Body + "\n\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString(generatedLine(r) + "\n")

	return b.String()
}
