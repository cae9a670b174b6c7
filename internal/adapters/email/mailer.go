package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"eventr/internal/domain"
)

const charsetUTF8 = "UTF-8"

// SESConfig holds the AWS SES credentials and region.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig selects and configures the outgoing mail provider.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// NewMailer returns the mailer for config.Provider: "ses" sends through AWS
// SES, anything else only logs.
func NewMailer(ctx context.Context, config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch config.Provider {
	case "ses":
		return newSESMailer(ctx, config, logger)
	case "noop", "":
	default:
		logger.WarnContext(ctx, "unknown email provider, falling back to noop", "provider", config.Provider)
	}
	return &noopMailer{logger: logger}, nil
}

type sesMailer struct {
	client *ses.Client
	source string
	logger *slog.Logger
}

func newSESMailer(ctx context.Context, config MailerConfig, logger *slog.Logger) (*sesMailer, error) {
	if config.FromAddress == "" {
		return nil, errors.New("ses mailer requires a from address")
	}
	if config.SES.InsecureSkipVerify {
		logger.WarnContext(ctx, "SES TLS verification disabled; development only")
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.SES.InsecureSkipVerify,
			MinVersion:         tls.VersionTLS12,
		},
	}
	creds := credentials.NewStaticCredentialsProvider(config.SES.AccessKeyID, config.SES.SecretAccessKey, "")
	client := ses.NewFromConfig(aws.Config{
		Region:      config.SES.Region,
		Credentials: aws.NewCredentialsCache(creds),
		HTTPClient:  &http.Client{Transport: transport},
	})

	source := config.FromAddress
	if config.FromName != "" {
		source = fmt.Sprintf("%s <%s>", config.FromName, config.FromAddress)
	}
	return &sesMailer{client: client, source: source, logger: logger}, nil
}

func (m *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message:     buildMessage(subject, html, text),
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	m.logger.DebugContext(ctx, "email sent", "provider", "ses", "message_id", aws.ToString(out.MessageId))
	return nil
}

// buildMessage omits empty bodies; SES rejects empty content parts.
func buildMessage(subject, html, text string) *types.Message {
	msg := &types.Message{
		Subject: utf8Content(subject),
		Body:    &types.Body{},
	}
	if html != "" {
		msg.Body.Html = utf8Content(html)
	}
	if text != "" {
		msg.Body.Text = utf8Content(text)
	}
	return msg
}

func utf8Content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String(charsetUTF8)}
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, html, text string) error {
	n.logger.DebugContext(ctx, "email not sent (noop provider)", "to", to, "subject", subject)
	return nil
}
