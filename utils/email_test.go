package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendWelcomeEmail_UnconfiguredSMTPFails(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USERNAME", "")
	t.Setenv("SMTP_PASSWORD", "")

	// Callers treat notification failures as log-only; the error itself must
	// still surface.
	err := SendWelcomeEmail("maria@example.com", "Maria")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
