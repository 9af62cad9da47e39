package companies

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Company, error)
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
	Update(ctx context.Context, id int64, update domain.CompanyUpdate) error
	ListAll(ctx context.Context) ([]*domain.Company, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
