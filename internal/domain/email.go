package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeMessageEmailData holds data for the welcome email.
type WelcomeMessageEmailData struct {
	Email  string
	Name   string
	UserID string
}

// RsvpConfirmationEmailData holds data for the RSVP confirmation email.
type RsvpConfirmationEmailData struct {
	Email      string
	Name       string
	EventTitle string
	EventDate  string
	EventTime  string
	Location   string
	Status     RSVPStatus
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
	SendRsvpConfirmation(ctx context.Context, data *RsvpConfirmationEmailData) error
}
