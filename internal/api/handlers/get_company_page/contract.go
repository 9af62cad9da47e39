package get_company_page

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/companies/models"
)

type CompanyService interface {
	GetPublicPage(ctx context.Context, slug string) (*models.PublicPageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
