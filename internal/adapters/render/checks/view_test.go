package checks

import (
	"testing"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderAllPassing(t *testing.T) {
	output := Render([]domain.CheckResult{
		{Status: domain.CheckPass, Message: "Go: go1.25.0 (OK)"},
		{Status: domain.CheckPass, Message: "Work IQ CLI: 1.4.0 (OK)"},
	}, RenderOptions{})

	assert.Contains(t, output, DefaultTitle)
	assert.Contains(t, output, "✅ Go: go1.25.0 (OK)")
	assert.Contains(t, output, "Results: 2 passed, 0 failed, 0 warnings")
	assert.Contains(t, output, "All checks passed!")
	assert.Contains(t, output, "wq briefing")
}

func TestRenderFailureListsOnlyFailureHints(t *testing.T) {
	output := Render([]domain.CheckResult{
		{Status: domain.CheckPass, Message: "Go: go1.25.0 (OK)"},
		{Status: domain.CheckFail, Message: "Work IQ CLI: Not installed", Hint: "Install with: npm install -g @microsoft/workiq"},
		{Status: domain.CheckWarn, Message: "Environment: .env file not found", Hint: "Copy .env.example to .env and configure"},
	}, RenderOptions{})

	assert.Contains(t, output, "❌ Work IQ CLI: Not installed")
	assert.Contains(t, output, "Results: 1 passed, 1 failed, 1 warnings")
	assert.Contains(t, output, "Setup incomplete")
	assert.Contains(t, output, "• Install with: npm install -g @microsoft/workiq")
	assert.NotContains(t, output, "• Copy .env.example")
}

func TestRenderWarningsListHints(t *testing.T) {
	output := Render([]domain.CheckResult{
		{Status: domain.CheckWarn, Message: "Environment: .env file not found", Hint: "Copy .env.example to .env and configure"},
	}, RenderOptions{Title: "Custom"})

	assert.Contains(t, output, "Custom")
	assert.Contains(t, output, "Setup complete with warnings")
	assert.Contains(t, output, "• Copy .env.example to .env and configure")
	assert.Contains(t, output, "You can proceed")
}
