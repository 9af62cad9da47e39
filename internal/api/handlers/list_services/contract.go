package list_services

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

type ServicesService interface {
	List(ctx context.Context, companyID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
