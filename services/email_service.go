package services

import (
	"fmt"
	"strings"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

// ForgotPasswordMessage is returned whether or not the address is known
const ForgotPasswordMessage = "If an account exists with this email, you will receive password reset instructions."

type mailer interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.EmailConfig
	mailer mailer
}

// NewEmailService only talks to Resend when an API key is configured
func NewEmailService(logger *gecho.Logger, cfg *structs.EmailConfig) *EmailService {
	es := &EmailService{logger: logger, cfg: cfg}
	if cfg.ApiKey != "" {
		es.mailer = resend.NewClient(cfg.ApiKey).Emails
	}
	return es
}

func (es *EmailService) Enabled() bool {
	return es.mailer != nil
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if es.mailer == nil {
		es.logger.Info("Email delivery disabled, skipping send", gecho.Field("to", to), gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	if _, err := es.mailer.Send(params); err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}
	return nil
}

// ForgotPassword sends reset instructions. Only a malformed address is reported;
// delivery problems are logged so callers always answer the same way.
func (es *EmailService) ForgotPassword(email string) error {
	email = strings.TrimSpace(email)
	if !IsValidEmail(email) {
		return lib.ErrInvalidEmail
	}

	code, err := lib.GenerateRandomToken()
	if err != nil {
		es.logger.Error("Failed to generate reset code", gecho.Field("error", err))
		return nil
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"></head>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h1>Reset your password</h1>
			<p>We received a request to reset the password for this address.</p>
			<p>Your reset code: <strong>%s</strong></p>
			<p>If you did not ask for this, you can ignore this email.</p>
		</body>
		</html>
	`, code)

	if err := es.SendEmail([]string{email}, "Reset your WatchMarket password", body); err != nil {
		es.logger.Warn("Password reset email not delivered", gecho.Field("error", err))
	}
	return nil
}
