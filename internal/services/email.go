package services

import (
	"context"
	"fmt"

	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
	"github.com/skillup-platform/skillup-backend/internal/platform/sendgrid"
)

type EmailService interface {
	SendWelcome(ctx context.Context, toEmail, firstName string) error
	SendEmailVerification(ctx context.Context, toEmail, firstName, verifyURL string) error
	SendPasswordReset(ctx context.Context, toEmail, firstName, resetURL string) error
}

type sendgridEmail struct {
	client    *sendgrid.Client
	log       *logger.Logger
	fromEmail string
	fromName  string
}

func NewSendgridEmail(client *sendgrid.Client, log *logger.Logger, fromEmail, fromName string) EmailService {
	return &sendgridEmail{
		client:    client,
		log:       log.With("service", "EmailService"),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmail) send(ctx context.Context, toEmail, subject, plain, html string) error {
	msg := sendgrid.Message{
		From:      sendgrid.Address{Email: s.fromEmail, Name: s.fromName},
		To:        []sendgrid.Address{{Email: toEmail}},
		Subject:   subject,
		PlainBody: plain,
		HTMLBody:  html,
	}
	if err := s.client.Send(ctx, msg); err != nil {
		s.log.Error("Failed to send email", "subject", subject, "error", err)
		return err
	}
	return nil
}

func (s *sendgridEmail) SendWelcome(ctx context.Context, toEmail, firstName string) error {
	subject := "Welcome to SkillUp"
	plain := fmt.Sprintf("Hi %s,\n\nYour SkillUp account is ready. Enroll in a learning path to get started.\n", firstName)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your SkillUp account is ready. Enroll in a learning path to get started.</p>", firstName)
	return s.send(ctx, toEmail, subject, plain, html)
}

func (s *sendgridEmail) SendEmailVerification(ctx context.Context, toEmail, firstName, verifyURL string) error {
	subject := "Verify your SkillUp email"
	plain := fmt.Sprintf("Hi %s,\n\nVerify your email address:\n%s\n\nThe link expires in 24 hours.\n", firstName, verifyURL)
	html := fmt.Sprintf(`<p>Hi %s,</p><p><a href="%s">Verify your email address</a>. The link expires in 24 hours.</p>`, firstName, verifyURL)
	return s.send(ctx, toEmail, subject, plain, html)
}

func (s *sendgridEmail) SendPasswordReset(ctx context.Context, toEmail, firstName, resetURL string) error {
	subject := "Reset your SkillUp password"
	plain := fmt.Sprintf("Hi %s,\n\nReset your password:\n%s\n\nIf you did not ask for this, ignore this email.\n", firstName, resetURL)
	html := fmt.Sprintf(`<p>Hi %s,</p><p><a href="%s">Reset your password</a>. If you did not ask for this, ignore this email.</p>`, firstName, resetURL)
	return s.send(ctx, toEmail, subject, plain, html)
}

// noopEmail logs instead of sending. Used when SENDGRID_API_KEY is unset,
// local development mostly.
type noopEmail struct {
	log *logger.Logger
}

func NewNoopEmail(log *logger.Logger) EmailService {
	return &noopEmail{log: log.With("service", "EmailService")}
}

func (s *noopEmail) SendWelcome(_ context.Context, toEmail, _ string) error {
	s.log.Info("Email sending disabled, skipping welcome email", "to", toEmail)
	return nil
}

func (s *noopEmail) SendEmailVerification(_ context.Context, toEmail, _, _ string) error {
	s.log.Info("Email sending disabled, skipping verification email", "to", toEmail)
	return nil
}

func (s *noopEmail) SendPasswordReset(_ context.Context, toEmail, _, _ string) error {
	s.log.Info("Email sending disabled, skipping password reset email", "to", toEmail)
	return nil
}
