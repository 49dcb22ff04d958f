package service

import "log"

// Mailer delivers reset tokens out-of-band. The production deployment wires a
// real mail sender here; the default implementation only logs server-side.
type Mailer interface {
	SendResetToken(email, token string)
}

// LogMailer writes the reset link to the server log instead of sending mail.
type LogMailer struct {
	BaseURL string
}

var _ Mailer = (*LogMailer)(nil)

// NewLogMailer creates a mailer that logs reset links.
func NewLogMailer(baseURL string) *LogMailer {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &LogMailer{BaseURL: baseURL}
}

// SendResetToken logs the reset link for the operator. The token never goes
// to any client-facing output from here.
func (m *LogMailer) SendResetToken(email, token string) {
	log.Printf("password reset requested for %s: %s/api/auth/reset-password?token=%s", email, m.BaseURL, token)
}
