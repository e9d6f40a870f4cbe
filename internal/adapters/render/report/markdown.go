package report

import (
	"strings"

	"github.com/bnema/workiq-automation/internal/domain"
)

func Markdown(r domain.Report) string {
	var b strings.Builder
	b.WriteString("# " + r.Title + "\n\n")
	if r.Subtitle != "" {
		b.WriteString("### " + r.Subtitle + "\n\n")
	}
	if r.Date != "" {
		b.WriteString("**" + r.Date + "**\n\n")
	}
	b.WriteString("---\n\n")

	for _, section := range r.Sections {
		b.WriteString("## " + section.Icon + " " + section.Title + "\n\n")
		b.WriteString(section.Body + "\n\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*" + generatedLine(r) + "*\n")

	return b.String()
}
