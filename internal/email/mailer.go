package email

import (
	"context"
	"fmt"

	"github.com/clorywears/storefront/internal/config"
	"github.com/resend/resend-go/v2"
)

// Mailer — порт исходящих уведомлений оператору магазина.
type Mailer interface {
	Send(ctx context.Context, subject, text, html string) error
}

// resendMailer отправляет письма через Resend API, одно письмо на вызов.
type resendMailer struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendMailer создаёт отправителя уведомлений на адрес оператора.
func NewResendMailer(cfg config.EmailConfig) Mailer {
	return &resendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
		to:     cfg.AdminAddress,
	}
}

func (m *resendMailer) Send(ctx context.Context, subject, text, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Text:    text,
		Html:    html,
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
