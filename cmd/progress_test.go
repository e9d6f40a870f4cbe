package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/workiq-automation/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressModelCounterNeverMovesBackwards(t *testing.T) {
	m := newProgressModel("Generating daily briefing...", "questions answered", nil)
	assert.NotContains(t, m.View(), "/")

	for _, msg := range []progressMsg{{done: 2, total: 13}, {done: 1, total: 13}, {done: 3, total: 13}} {
		updated, _ := m.Update(msg)
		m = updated.(progressModel)
	}
	assert.Contains(t, m.View(), "Generating daily briefing... 3/13 questions answered")

	updated, _ := m.Update(progressMsg{done: 0, total: 2})
	m = updated.(progressModel)
	assert.Contains(t, m.View(), "0/2 questions answered")

	updated, cmd := m.Update(workDoneMsg{})
	m = updated.(progressModel)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestRunWithProgressReturnsWorkResult(t *testing.T) {
	var out bytes.Buffer
	calls := 0

	err := runWithProgress(context.Background(), &out, "Preparing meetings...", "meetings prepared", func(ctx context.Context, progress application.ProgressFunc) error {
		progress(1, 2)
		progress(2, 2)
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	err = runWithProgress(context.Background(), &out, "Preparing meetings...", "meetings prepared", func(context.Context, application.ProgressFunc) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
