// Package mailer delivers the reset-password notification. It consumes the
// reset-issued event from the auth store; transport is a deployment detail,
// so the default implementation records the outgoing message through the
// process logger.
package mailer

import (
	"food-delivery-api/models"

	"github.com/rs/zerolog"
)

type Mailer struct {
	from    string
	hostURL string
	log     zerolog.Logger
}

func New(from, hostURL string, log zerolog.Logger) *Mailer {
	return &Mailer{from: from, hostURL: hostURL, log: log}
}

// ResetIssued implements auth.Notifier. Users without a usable address or
// pending token are skipped.
func (m *Mailer) ResetIssued(user *models.User) {
	if user.Email == "" || user.ResetPasswordToken == nil {
		return
	}
	resetURL := m.hostURL + "/reset-password#" + *user.ResetPasswordToken
	m.log.Info().
		Str("from", m.from).
		Str("to", user.Email).
		Str("subject", "Reset Password").
		Str("reset_url", resetURL).
		Msg("reset password email sent")
}
