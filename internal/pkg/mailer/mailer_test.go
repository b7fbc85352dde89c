package mailer

import (
	"testing"

	"github.com/prasetya/catatan/internal/pkg/apperrors"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTP_DialFailure(t *testing.T) {
	// Port 1 on loopback is never an SMTP server; the dial fails and the
	// failure must surface as a DeliveryError.
	m := NewSMTPMailer(models.SMTPConfig{
		Host: "127.0.0.1",
		Port: 1,
		From: "noreply@catatan.test",
	})

	err := m.SendOTP("alice@example.com", "123456")
	require.Error(t, err)

	appErr := apperrors.From(err)
	assert.Equal(t, apperrors.CodeDelivery, appErr.Code)
}
