package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/config"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

const welcomeTemplate = `
<h2>Welcome to FIRSATTO, {{.FullName}}!</h2>
<p>Your account is ready. Post your first bicycle ad or start browsing listings right away.</p>
<p><a href="{{.BaseURL}}">Open FIRSATTO</a></p>
`

const passwordResetTemplate = `
<h2>Password reset</h2>
<p>Hi {{.FullName}},</p>
<p>We received a request to reset your password. The link below is valid for one hour.</p>
<p><a href="{{.BaseURL}}/reset-password?token={{.Token}}">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>
`

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	body, err := renderTemplate(welcomeTemplate, map[string]string{
		"FullName": fullName,
		"BaseURL":  s.config.AppBaseURL,
	})
	if err != nil {
		return err
	}

	return s.send(ctx, toEmail, "Welcome to FIRSATTO", body)
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	body, err := renderTemplate(passwordResetTemplate, map[string]string{
		"FullName": fullName,
		"BaseURL":  s.config.AppBaseURL,
		"Token":    resetToken,
	})
	if err != nil {
		return err
	}

	return s.send(ctx, toEmail, "Reset your FIRSATTO password", body)
}

func (s *service) send(ctx context.Context, toEmail, subject, htmlBody string) error {
	if s.config.ResendAPIKey == "" {
		return fmt.Errorf("email service not configured")
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlBody,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func renderTemplate(tmpl string, data map[string]string) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
