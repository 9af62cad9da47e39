package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender отправляет письма через Resend API
type ResendSender struct {
	client *resend.Client
	from   string
	logger Logger
}

// NewResendSender создает отправителя с заданным API ключом и
// адресом отправителя по умолчанию
func NewResendSender(apiKey, from string, logger Logger) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger,
	}
}

// Send отправляет одно письмо через Resend
func (s *ResendSender) Send(ctx context.Context, req SendRequest) error {
	from := req.From
	if from == "" {
		from = s.from
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
		Html:    req.HTML,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("Mailer: resend send failed: to=%v, subject=%q, error=%v", req.To, req.Subject, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("Mailer: email sent via resend: message_id=%s, to=%v", sent.Id, req.To)
	return nil
}
