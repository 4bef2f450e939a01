package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"unichip/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildPlainMessage(t *testing.T) {
	msg := string(buildPlainMessage(
		"Unichip <noreply@unichip.hk>",
		"sales@unichip.hk",
		[]string{"a@unichip.hk", "b@unichip.hk"},
		"Chip inquiry - Li from Acme",
		"line one\nline two",
		time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	))

	assert.Contains(t, msg, "To: sales@unichip.hk\r\n")
	assert.Contains(t, msg, "Cc: a@unichip.hk, b@unichip.hk\r\n")
	assert.Contains(t, msg, "Subject: Chip inquiry - Li from Acme\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nline one\r\nline two\r\n"))
}

func TestBuildPlainMessageOmitsEmptyCc(t *testing.T) {
	msg := string(buildPlainMessage("a@b.c", "sales@unichip.hk", nil, "s", "b", time.Now()))
	assert.NotContains(t, msg, "Cc:")
}

func TestBuildPlainMessageEncodesSubject(t *testing.T) {
	msg := string(buildPlainMessage("a@b.c", "sales@unichip.hk", nil, "芯片查询", "b", time.Now()))
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
}

func TestConsoleProvider(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Provider: "console", NotifyTimeoutSeconds: 1})

	assert.False(t, svc.IsEnabled())
	assert.NoError(t, svc.Send(context.Background(), "sales@unichip.hk", nil, "s", "b"))
	assert.Error(t, svc.Send(context.Background(), "", nil, "s", "b"))
}

func TestSMTPProviderRequiresCredentials(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Provider: "smtp", SMTPHost: "smtp.example.com", SMTPPort: 587, NotifyTimeoutSeconds: 1})

	assert.True(t, svc.IsEnabled())
	assert.Error(t, svc.Send(context.Background(), "sales@unichip.hk", nil, "s", "b"))
}
