package mailer

import "context"

// SendRequest данные письма для внешнего почтового провайдера
type SendRequest struct {
	To      []string
	From    string // Если пустой, используется адрес отправителя по умолчанию
	Subject string
	Text    string
	HTML    string
}

// Sender интерфейс отправки писем через внешнего провайдера
type Sender interface {
	Send(ctx context.Context, req SendRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
