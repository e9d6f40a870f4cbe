package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() domain.Report {
	return domain.Report{
		Title:       "Daily Briefing",
		Date:        "Monday, March 2, 2026",
		GeneratedAt: time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC),
		Sections: []domain.Section{
			{Title: "Meetings", Icon: "📅", Body: "1. Standup\nTime: 9:00\nParticipants: Alex, Sam"},
			{Title: "Important Emails", Icon: "📧", Body: "Budget review due Friday\n\n---\n\nSend slides"},
			{Title: "Documents", Icon: "📄", Body: "No recent documents"},
		},
	}
}

func TestFormattersKeepEverySectionVerbatim(t *testing.T) {
	t.Parallel()

	r := sampleReport()
	for _, f := range []Format{FormatText, FormatMarkdown, FormatHTML} {
		out, err := Render(f, r)
		require.NoError(t, err, f)

		for _, section := range r.Sections {
			assert.Contains(t, out, section.Title, f)
			assert.Contains(t, out, section.Body, f)
		}
		assert.Contains(t, out, "Generated: Monday, March 2, 2026 at 08:30 UTC", f)
	}
}

func TestHTMLEscapesMarkupCharactersInAnswers(t *testing.T) {
	t.Parallel()

	r := sampleReport()
	r.Sections = []domain.Section{
		{Title: "Alex's notes", Icon: "📝", Body: `Alex's notes on "Q4" <draft> & budget`},
	}

	out, err := Render(FormatHTML, r)
	require.NoError(t, err)
	assert.Contains(t, out, "Alex&#39;s notes on &#34;Q4&#34; &lt;draft&gt; &amp; budget")
	assert.NotContains(t, out, "<draft>")

	for _, f := range []Format{FormatText, FormatMarkdown} {
		out, err := Render(f, r)
		require.NoError(t, err)
		assert.Contains(t, out, r.Sections[0].Body, f)
	}
}

func TestFormattersAreDeterministic(t *testing.T) {
	t.Parallel()

	r := sampleReport()
	for _, f := range []Format{FormatText, FormatMarkdown, FormatHTML} {
		first, err := Render(f, r)
		require.NoError(t, err)
		second, err := Render(f, r)
		require.NoError(t, err)
		assert.Equal(t, first, second, f)
	}
}

func TestTextHasBoxedHeaderAndRules(t *testing.T) {
	t.Parallel()

	out := Text(sampleReport())
	lines := strings.Split(out, "\n")

	assert.Equal(t, "╔"+strings.Repeat("═", headerWidth)+"╗", lines[0])
	assert.Contains(t, lines[1], "DAILY BRIEFING")
	assert.True(t, strings.HasPrefix(lines[1], "║"))
	assert.Contains(t, lines[2], "Monday, March 2, 2026")
	assert.Equal(t, "╚"+strings.Repeat("═", headerWidth)+"╝", lines[3])
	assert.Equal(t, "📅 Meetings", lines[5])
	assert.Equal(t, strings.Repeat("─", ruleWidth), lines[6])
	assert.NotContains(t, out, "\x1b[")
}

func TestMarkdownStructure(t *testing.T) {
	t.Parallel()

	out := Markdown(sampleReport())
	assert.True(t, strings.HasPrefix(out, "# Daily Briefing\n\n**Monday, March 2, 2026**\n\n---\n\n## 📅 Meetings\n\n"))
	assert.True(t, strings.HasSuffix(out, "---\n\n*Generated: Monday, March 2, 2026 at 08:30 UTC*\n"))
}

func TestHTMLEscapesContent(t *testing.T) {
	t.Parallel()

	r := sampleReport()
	r.Sections = []domain.Section{{Title: "Emails", Icon: "📧", Body: "<script>alert(1)</script> & more"}}

	out, err := HTML(r)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; more")
	assert.Contains(t, out, "<title>Daily Briefing - Monday, March 2, 2026</title>")
}

func TestMeetingBriefIncludesSubtitle(t *testing.T) {
	t.Parallel()

	r := domain.Report{Title: "Meeting Preparation Brief", Subtitle: "Q4 Planning", Date: "10:00 AM"}

	assert.Contains(t, Text(r), "MEETING PREPARATION BRIEF")
	assert.Contains(t, Text(r), "Q4 Planning")
	assert.Contains(t, Markdown(r), "### Q4 Planning")

	html, err := HTML(r)
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="subtitle">Q4 Planning</div>`)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want Format
		ext  string
	}{
		{in: "", want: FormatText, ext: ".txt"},
		{in: "TEXT", want: FormatText, ext: ".txt"},
		{in: "md", want: FormatMarkdown, ext: ".md"},
		{in: "markdown", want: FormatMarkdown, ext: ".md"},
		{in: " html ", want: FormatHTML, ext: ".html"},
	}
	for _, tc := range testCases {
		got, err := ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.ext, got.Extension())
	}

	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestArtifactNames(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "briefing-2026-03-02.html", BriefingFilename(day, FormatHTML))
	assert.Equal(t, "2026-03-02-q4-planning-budget.md", MeetingBriefFilename(day, "Q4 Planning: Budget!", FormatMarkdown))
	assert.Equal(t, "meeting", Slug("***"))
}

func TestWriteArtifactCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "output", MeetingBriefsDir)
	path, err := WriteArtifact(dir, "brief.txt", "hello")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "brief.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
