package smtp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerNotConfigured(t *testing.T) {
	t.Parallel()

	mailer := NewMailer(Config{})
	assert.False(t, mailer.Configured())

	err := mailer.Send(context.Background(), ports.Message{To: "me@example.com"})
	assert.ErrorIs(t, err, domain.ErrMailNotConfigured)
}

func TestMailerDefaults(t *testing.T) {
	t.Parallel()

	mailer := NewMailer(Config{Host: "smtp.example.com", Username: "bot@example.com"})
	assert.True(t, mailer.Configured())
	assert.Equal(t, DefaultPort, mailer.cfg.Port)
	assert.Equal(t, "bot@example.com", mailer.cfg.From)
}

func TestMailerSendBuildsHTMLMessage(t *testing.T) {
	t.Parallel()

	mailer := NewMailer(Config{Host: "smtp.example.com", Port: 587, Username: "bot@example.com", Password: "pw"})
	mailer.now = func() time.Time { return time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC) }

	var captured []byte
	mailer.deliver = func(ctx context.Context, cfg Config, from string, to []string, msg []byte) error {
		assert.Equal(t, 587, cfg.Port)
		assert.Equal(t, "bot@example.com", from)
		assert.Equal(t, []string{"me@example.com"}, to)
		captured = msg
		return nil
	}

	err := mailer.Send(context.Background(), ports.Message{
		To:       "me@example.com",
		Subject:  "Daily Briefing - Monday, March 2, 2026 📅",
		HTMLBody: "<h1>Daily Briefing</h1>",
	})
	require.NoError(t, err)

	text := string(captured)
	assert.Contains(t, text, "From: bot@example.com\r\n")
	assert.Contains(t, text, "To: me@example.com\r\n")
	assert.Contains(t, text, "Subject: =?utf-8?q?")
	assert.Contains(t, text, "Date: Mon, 02 Mar 2026 08:30:00 +0000\r\n")
	assert.Contains(t, text, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(text, "<h1>Daily Briefing</h1>"))
}

func TestMailerSendWrapsDeliveryError(t *testing.T) {
	t.Parallel()

	mailer := NewMailer(Config{Host: "smtp.example.com", From: "bot@example.com"})
	mailer.deliver = func(ctx context.Context, cfg Config, from string, to []string, msg []byte) error {
		return errors.New("connection refused")
	}

	err := mailer.Send(context.Background(), ports.Message{To: "me@example.com"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "send mail to me@example.com: connection refused")
}

func TestMailerSendRejectsEmptyRecipient(t *testing.T) {
	t.Parallel()

	mailer := NewMailer(Config{Host: "smtp.example.com", From: "bot@example.com"})
	err := mailer.Send(context.Background(), ports.Message{To: " "})
	require.Error(t, err)
}
