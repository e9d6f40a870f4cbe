package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/workiq-automation/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown report format")

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// GeneratedLayout renders generation timestamps independently of the locale.
const GeneratedLayout = "Monday, January 2, 2006 at 15:04 MST"

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w %q (want text, markdown or html)", ErrUnknownFormat, s)
	}
}

func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

func Render(f Format, r domain.Report) (string, error) {
	switch f {
	case FormatText:
		return Text(r), nil
	case FormatMarkdown:
		return Markdown(r), nil
	case FormatHTML:
		return HTML(r)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

func generatedLine(r domain.Report) string {
	return "Generated: " + r.GeneratedAt.Format(GeneratedLayout)
}
