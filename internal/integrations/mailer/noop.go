package mailer

import "context"

// NoopSender заглушка для разработки и тестов: логирует письма,
// но не отправляет их
type NoopSender struct {
	logger Logger
}

// NewNoopSender создает новый NoopSender
func NewNoopSender(logger Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

// Send логирует письмо без реальной отправки
func (s *NoopSender) Send(_ context.Context, req SendRequest) error {
	s.logger.Info("Mailer: noop send: to=%v, subject=%q", req.To, req.Subject)
	return nil
}
