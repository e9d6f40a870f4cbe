package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKeyDeterministicAndTenantScoped(t *testing.T) {
	question := "What meetings do I have today?"

	assert.Equal(t, CacheKey(question, ""), CacheKey(question, ""))
	assert.Equal(t, CacheKey(question, "contoso"), CacheKey(question, "contoso"))
	assert.NotEqual(t, CacheKey(question, ""), CacheKey(question, "contoso"))
	assert.NotEqual(t, CacheKey(question, "contoso"), CacheKey(question, "fabrikam"))
	assert.Len(t, CacheKey(question, ""), 64)
}

func TestCacheEntryExpiry(t *testing.T) {
	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	entry := CacheEntry{Question: "q", CreatedAt: created}

	assert.False(t, entry.Expired(created.Add(59*time.Minute), time.Hour))
	assert.True(t, entry.Expired(created.Add(time.Hour), time.Hour))
	assert.Equal(t, CacheKey("q", ""), entry.Key())
}

func TestExtractJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "direct", text: `{"name":"direct"}`, want: "direct"},
		{name: "fenced", text: "Sure:\n```json\n{\"name\":\"fenced\"}\n```\nDone.", want: "fenced"},
		{name: "embedded object", text: `The answer is {"name":"embedded"} as requested`, want: "embedded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			require.NoError(t, ExtractJSON(tt.text, &got))
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestExtractJSONReportsParseError(t *testing.T) {
	var v map[string]any

	err := ExtractJSON("no structured data here", &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	err = ExtractJSON("", &v)
	assert.ErrorIs(t, err, ErrParse)

	err = ExtractJSON("broken {not json}", &v)
	assert.ErrorIs(t, err, ErrParse)
}

func TestHasUsefulContent(t *testing.T) {
	assert.True(t, HasUsefulContent("Three unread emails", "no emails", "not found"))
	assert.False(t, HasUsefulContent("There are no emails today", "no emails", "not found"))
	assert.False(t, HasUsefulContent("   "))
}

func TestQueryResultAnswerOr(t *testing.T) {
	assert.Equal(t, "answer", QueryResult{Answer: "answer"}.AnswerOr("fallback"))
	assert.Equal(t, "fallback", QueryResult{Answer: ""}.AnswerOr("fallback"))
	assert.Equal(t, "fallback", QueryResult{Answer: "partial", Err: errors.New("boom")}.AnswerOr("fallback"))
}

func TestToolErrorMatchesSentinels(t *testing.T) {
	err := &ToolError{Args: []string{"ask", "--question", "hi"}, ExitCode: 2, Stderr: "EULA not accepted"}

	assert.ErrorIs(t, err, ErrToolFailed)
	assert.ErrorContains(t, err, "exit status 2")
	assert.ErrorContains(t, err, "EULA not accepted")

	var toolErr *ToolError
	require.ErrorAs(t, error(err), &toolErr)
	assert.Equal(t, 2, toolErr.ExitCode)
}

func TestSummarizeChecks(t *testing.T) {
	summary := Summarize([]CheckResult{
		{Status: CheckPass},
		{Status: CheckWarn},
		{Status: CheckWarn},
	})
	assert.Equal(t, CheckSummary{Passed: 1, Warned: 2}, summary)
	assert.Equal(t, 0, summary.ExitCode())

	summary = Summarize([]CheckResult{{Status: CheckPass}, {Status: CheckFail}, {Status: CheckWarn}})
	assert.Equal(t, 1, summary.ExitCode())
	assert.False(t, summary.OK())
}
