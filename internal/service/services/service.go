package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

// Service сервис для работы с услугами компании
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Create создает услугу компании
func (s *Service) Create(ctx context.Context, companyID int64, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service %q for company=%d", req.Name, companyID)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		CompanyID:       companyID,
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		s.logger.Error("Create: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d for company=%d", created.ID, companyID)
	return models.FromDomainService(created), nil
}

// List получает список услуг компании
func (s *Service) List(ctx context.Context, companyID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services for company=%d", companyID)

	services, err := s.serviceRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d services for company=%d", len(services), companyID)
	return models.FromDomainServiceList(services), nil
}

// Delete удаляет услугу компании. Идемпотентно: удаление несуществующей
// или чужой услуги не является ошибкой
func (s *Service) Delete(ctx context.Context, companyID, serviceID int64) error {
	s.logger.Info("Delete: deleting service id=%d for company=%d", serviceID, companyID)

	if err := s.serviceRepo.Delete(ctx, companyID, serviceID); err != nil {
		s.logger.Error("Delete: repository error for service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateCreate(req *models.CreateServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	return nil
}
