package schedules

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория записей
type ScheduleRepository interface {
	ListByCompany(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
	History(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Schedule, error)
	Delete(ctx context.Context, companyID, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
