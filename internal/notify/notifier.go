package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
)

// BookingNotification данные уведомления владельца о новой записи
type BookingNotification struct {
	OwnerEmail  string
	ClientName  string
	ServiceName string
	CompanyName string
	Date        string // Уже отформатированная дата (DD.MM.YYYY)
	Time        string // Уже отформатированное время (HH:MM)
}

// Notifier отправляет уведомления о записях владельцам компаний.
//
// Отправка - fire-and-forget: выполняется в отдельной горутине на
// отвязанном от запроса контексте со своим таймаутом. Ошибки отправки
// логируются и никогда не влияют на результат бронирования.
type Notifier struct {
	sender  Sender
	timeout time.Duration
	logger  Logger
}

// NewNotifier создает новый Notifier
func NewNotifier(sender Sender, timeout time.Duration, logger Logger) *Notifier {
	return &Notifier{
		sender:  sender,
		timeout: timeout,
		logger:  logger,
	}
}

// NotifyBooking асинхронно уведомляет владельца компании о новой записи
// Возвращает управление сразу, не дожидаясь отправки
func (n *Notifier) NotifyBooking(note BookingNotification) {
	go n.send(note)
}

func (n *Notifier) send(note BookingNotification) {
	// Контекст запроса к этому моменту может быть уже отменен,
	// поэтому отправляем на отдельном контексте со своим таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	err := n.sender.Send(ctx, mailer.SendRequest{
		To:      []string{note.OwnerEmail},
		Subject: fmt.Sprintf("Новая запись: %s - %s", note.ClientName, note.ServiceName),
		Text:    buildText(note),
		HTML:    buildHTML(note),
	})

	if err != nil {
		n.logger.Warn("NotifyBooking: failed to send notification to %s: %v", note.OwnerEmail, err)
		return
	}

	n.logger.Info("NotifyBooking: notification sent to %s (company=%s)", note.OwnerEmail, note.CompanyName)
}

func buildText(note BookingNotification) string {
	return fmt.Sprintf(
		"Здравствуйте! У вас новая запись.\nКлиент: %s\nУслуга: %s\nКогда: %s в %s",
		note.ClientName, note.ServiceName, note.Date, note.Time,
	)
}

func buildHTML(note BookingNotification) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #ddd; border-radius: 10px; max-width: 500px;">
    <h2 style="color: #9b59b6;">Новая запись в %s</h2>
    <p><strong>Клиент:</strong> %s</p>
    <p><strong>Услуга:</strong> %s</p>
    <p><strong>Дата/время:</strong> %s в %s</p>
    <hr>
    <p style="font-size: 0.8rem; color: #666;">Подробности - в вашей панели управления.</p>
</div>`,
		note.CompanyName, note.ClientName, note.ServiceName, note.Date, note.Time,
	)
}
