package schedules

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedules/models"
)

// Service сервис для работы с записями компании
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// List получает записи компании, отсортированные по времени начала (ASC)
// Опционально фильтрует по календарной дате
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching schedules for company=%d, date=%v", req.CompanyID, req.Date)

	filter := domain.ScheduleFilter{CompanyID: req.CompanyID}

	if req.Date != nil && *req.Date != "" {
		date, err := parseDate(*req.Date)
		if err != nil {
			s.logger.Warn("List: invalid date %q for company=%d", *req.Date, req.CompanyID)
			return nil, err
		}
		filter.Date = &date
	}

	schedules, err := s.scheduleRepo.ListByCompany(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d schedules for company=%d", len(schedules), req.CompanyID)
	return models.FromDomainScheduleList(schedules, false), nil
}

// History получает историю записей компании за период, отсортированную
// по времени начала (DESC). Границы периода включительные, endDate
// трактуется до конца дня
func (s *Service) History(ctx context.Context, req *models.HistoryRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("History: fetching history for company=%d, start=%v, end=%v",
		req.CompanyID, req.StartDate, req.EndDate)

	filter := domain.HistoryFilter{CompanyID: req.CompanyID}

	if req.StartDate != nil && *req.StartDate != "" {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			s.logger.Warn("History: invalid startDate %q for company=%d", *req.StartDate, req.CompanyID)
			return nil, err
		}
		filter.StartDate = &start
	}

	if req.EndDate != nil && *req.EndDate != "" {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			s.logger.Warn("History: invalid endDate %q for company=%d", *req.EndDate, req.CompanyID)
			return nil, err
		}
		filter.EndDate = &end
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		s.logger.Warn("History: startDate after endDate for company=%d", req.CompanyID)
		return nil, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidDateRange)
	}

	schedules, err := s.scheduleRepo.History(ctx, filter)
	if err != nil {
		s.logger.Error("History: repository error for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("History: fetched %d schedules for company=%d", len(schedules), req.CompanyID)
	return models.FromDomainScheduleList(schedules, true), nil
}

// Delete удаляет запись компании. Идемпотентно: повторное удаление или
// попытка удалить чужую запись завершаются успешно без эффекта
func (s *Service) Delete(ctx context.Context, companyID, scheduleID int64) error {
	s.logger.Info("Delete: deleting schedule id=%d for company=%d", scheduleID, companyID)

	if err := s.scheduleRepo.Delete(ctx, companyID, scheduleID); err != nil {
		s.logger.Error("Delete: repository error for schedule id=%d: %v", scheduleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, value)
	}
	return date, nil
}
