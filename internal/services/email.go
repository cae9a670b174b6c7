package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventr/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return errors.New("welcome message data is nil")
	}
	if err := s.send(ctx, "welcome", data.Email, data); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "welcome email sent", "user_id", data.UserID)
	return nil
}

// SendRsvpConfirmation sends the "rsvp_confirmation" email.
func (s *emailService) SendRsvpConfirmation(ctx context.Context, data *domain.RsvpConfirmationEmailData) error {
	if data == nil {
		return errors.New("rsvp confirmation data is nil")
	}
	if err := s.send(ctx, "rsvp_confirmation", data.Email, data); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "rsvp confirmation sent", "event", data.EventTitle, "status", data.Status)
	return nil
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	return nil
}
