package companies

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/company"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies/models"
)

// Слаг: строчные латинские буквы, цифры и дефисы, без дефисов по краям
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Service сервис для работы с профилями компаний
type Service struct {
	companyRepo CompanyRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса компаний
func NewService(companyRepo CompanyRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		companyRepo: companyRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetMyCompany получает профиль компании текущего пользователя
func (s *Service) GetMyCompany(ctx context.Context, companyID int64) (*models.CompanyResponse, error) {
	s.logger.Info("GetMyCompany: fetching company id=%d", companyID)

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("GetMyCompany: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("GetMyCompany: repository error for company id=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: GetMyCompany - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompany(company), nil
}

// Update обновляет профиль компании
// Слаг проверяется на уникальность до записи; гонку закрывает уникальный
// индекс в БД (репозиторий вернет ErrSlugTaken)
func (s *Service) Update(ctx context.Context, companyID int64, req *models.UpdateCompanyRequest) (*models.CompanyResponse, error) {
	s.logger.Info("Update: updating company id=%d (slug=%q)", companyID, req.Slug)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for company id=%d: %v", companyID, err)
		return nil, err
	}

	taken, err := s.companyRepo.SlugTaken(ctx, req.Slug, companyID)
	if err != nil {
		s.logger.Error("Update: failed to check slug %q: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Update - check slug: %v", ErrInternal, err)
	}
	if taken {
		s.logger.Warn("Update: slug %q already taken (company id=%d)", req.Slug, companyID)
		return nil, ErrSlugTaken
	}

	update := domain.CompanyUpdate{
		Name:    strings.TrimSpace(req.Name),
		Slug:    req.Slug,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.companyRepo.Update(ctx, companyID, update); err != nil {
		switch {
		case errors.Is(err, companyRepo.ErrSlugTaken):
			s.logger.Warn("Update: slug %q taken concurrently (company id=%d)", req.Slug, companyID)
			return nil, ErrSlugTaken
		case errors.Is(err, companyRepo.ErrCompanyNotFound):
			s.logger.Warn("Update: company id=%d not found", companyID)
			return nil, ErrCompanyNotFound
		default:
			s.logger.Error("Update: repository error for company id=%d: %v", companyID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated company id=%d", companyID)
	return s.GetMyCompany(ctx, companyID)
}

// GetPublicPage получает публичную страницу компании по слагу вместе
// со списком её услуг
func (s *Service) GetPublicPage(ctx context.Context, slug string) (*models.PublicPageResponse, error) {
	s.logger.Info("GetPublicPage: fetching company by slug=%q", slug)

	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	company, err := s.companyRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("GetPublicPage: company with slug=%q not found", slug)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("GetPublicPage: repository error for slug=%q: %v", slug, err)
		return nil, fmt.Errorf("%w: GetPublicPage - repository error: %v", ErrInternal, err)
	}

	if !company.HasPublicPage() {
		return nil, ErrCompanyNotFound
	}

	services, err := s.serviceRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		s.logger.Error("GetPublicPage: failed to list services for company id=%d: %v", company.ID, err)
		return nil, fmt.Errorf("%w: GetPublicPage - list services: %v", ErrInternal, err)
	}

	return &models.PublicPageResponse{
		ID:       company.ID,
		Name:     company.Name,
		Slug:     *company.Slug,
		Phone:    company.Phone,
		Address:  company.Address,
		Services: models.FromDomainServices(services),
	}, nil
}

// ListPublic получает каталог компаний с включенной публичной страницей
func (s *Service) ListPublic(ctx context.Context) (*models.CompanyListResponse, error) {
	s.logger.Info("ListPublic: fetching public companies")

	companies, err := s.companyRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	items := make([]models.CompanyListItem, 0, len(companies))
	for _, c := range companies {
		if !c.HasPublicPage() {
			continue
		}
		items = append(items, models.CompanyListItem{
			ID:   c.ID,
			Name: c.Name,
			Slug: *c.Slug,
		})
	}

	s.logger.Info("ListPublic: fetched %d public companies", len(items))
	return &models.CompanyListResponse{Companies: items, Total: len(items)}, nil
}

func validateUpdate(req *models.UpdateCompanyRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if len(req.Slug) > domain.MaxSlugLength {
		return fmt.Errorf("%w: slug is too long", ErrInvalidInput)
	}
	if !slugPattern.MatchString(req.Slug) {
		return fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", ErrInvalidInput)
	}

	if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	return nil
}
