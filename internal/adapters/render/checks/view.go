package checks

import (
	"fmt"
	"strings"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	bannerWidth = 68
	ruleWidth   = 70

	DefaultTitle = "Work IQ Setup Verification"
)

type RenderOptions struct {
	Title string
}

// Render lays out a verification run as a checklist followed by the summary
// and the hints of every failing or warning check.
func Render(results []domain.CheckResult, opts RenderOptions) string {
	s := newStyles()
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	lines := []string{s.banner.Render(title), ""}
	for _, result := range results {
		lines = append(lines, checkLine(result, s))
	}

	summary := domain.Summarize(results)
	lines = append(lines,
		s.section.Render(s.rule.Render(strings.Repeat("─", ruleWidth))),
		s.section.Render(s.summary.Render(fmt.Sprintf(
			"Results: %d passed, %d failed, %d warnings", summary.Passed, summary.Failed, summary.Warned,
		))),
	)
	lines = append(lines, s.section.Render(outcome(results, summary, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func checkLine(result domain.CheckResult, s styles) string {
	switch result.Status {
	case domain.CheckPass:
		return s.pass.Render("✅ " + result.Message)
	case domain.CheckFail:
		return s.fail.Render("❌ " + result.Message)
	default:
		return s.warn.Render("⚠️  " + result.Message)
	}
}

func outcome(results []domain.CheckResult, summary domain.CheckSummary, s styles) string {
	switch {
	case summary.Failed > 0:
		lines := []string{s.fail.Render("❌ Setup incomplete. Please address the following:"), ""}
		lines = append(lines, hintLines(results, domain.CheckFail, s)...)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	case summary.Warned > 0:
		lines := []string{s.warn.Render("⚠️  Setup complete with warnings:"), ""}
		lines = append(lines, hintLines(results, domain.CheckWarn, s)...)
		lines = append(lines, "", s.pass.Render("✅ You can proceed, but consider addressing warnings."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			s.pass.Render("✅ All checks passed! You're ready to use Work IQ."),
			"",
			"Next steps:",
			s.hint.Render("  • Run samples: wq queries"),
			s.hint.Render("  • Generate briefing: wq briefing"),
			s.hint.Render("  • Prepare meetings: wq prep"),
		)
	}
}

func hintLines(results []domain.CheckResult, status domain.CheckStatus, s styles) []string {
	var lines []string
	for _, result := range results {
		if result.Status != status || result.Hint == "" {
			continue
		}
		lines = append(lines, s.hint.Render("  • "+result.Hint))
	}

	return lines
}
