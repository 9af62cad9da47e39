package delete_service

import "context"

type ServicesService interface {
	Delete(ctx context.Context, companyID, serviceID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
