package public_booking

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/notify"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/create_schedule"
)

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
}

// ScheduleCreator интерфейс создания записи (реализуется usecase create_schedule)
type ScheduleCreator interface {
	Execute(ctx context.Context, req *create_schedule.Request) (*create_schedule.Response, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetNotificationDetails(ctx context.Context, serviceID int64) (*service.NotificationDetails, error)
}

// Notifier интерфейс асинхронных уведомлений владельца
type Notifier interface {
	NotifyBooking(note notify.BookingNotification)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
