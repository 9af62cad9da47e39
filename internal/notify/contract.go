package notify

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
)

// Sender интерфейс отправки писем (реализуется клиентами mailer)
type Sender interface {
	Send(ctx context.Context, req mailer.SendRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
