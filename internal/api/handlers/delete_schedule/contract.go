package delete_schedule

import "context"

type SchedulesService interface {
	Delete(ctx context.Context, companyID, scheduleID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
