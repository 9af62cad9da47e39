package public_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	companyRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/company"
	"github.com/m04kA/SMC-AppointmentService/internal/notify"
	"github.com/m04kA/SMC-AppointmentService/internal/usecase/create_schedule"
)

// Форматы даты и времени в письме владельцу
const (
	noteDateFormat = "02.01.2006"
	noteTimeFormat = "15:04"
)

// UseCase use case публичной записи клиента по слагу компании
//
// Запись создается через create_schedule (с теми же гарантиями
// атомарности), после чего владельцу компании асинхронно отправляется
// уведомление. Сбой уведомления не влияет на результат записи.
type UseCase struct {
	companyRepo CompanyRepository
	creator     ScheduleCreator
	serviceRepo ServiceRepository
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	companyRepo CompanyRepository,
	creator ScheduleCreator,
	serviceRepo ServiceRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		companyRepo: companyRepo,
		creator:     creator,
		serviceRepo: serviceRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет публичную запись клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PublicBooking: slug=%q, service=%d, client=%q", req.Slug, req.ServiceID, req.ClientName)

	if strings.TrimSpace(req.Slug) == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	company, err := uc.companyRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			uc.logger.Warn("PublicBooking: company with slug=%q not found", req.Slug)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("PublicBooking: failed to get company by slug=%q: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// Слаг в БД не бывает пустым, но выключенную страницу трактуем
	// так же, как отсутствующую компанию
	if !company.HasPublicPage() {
		uc.logger.Warn("PublicBooking: company id=%d has no public page", company.ID)
		return nil, ErrCompanyNotFound
	}

	created, err := uc.creator.Execute(ctx, &create_schedule.Request{
		CompanyID:   company.ID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		StartTime:   req.StartTime,
	})
	if err != nil {
		return nil, mapCreateError(err)
	}

	uc.dispatchNotification(ctx, created)

	return &Response{
		ID:          created.ID,
		CompanyID:   created.CompanyID,
		ServiceID:   created.ServiceID,
		ClientName:  created.ClientName,
		ClientPhone: created.ClientPhone,
		StartTime:   created.StartTime,
		EndTime:     created.EndTime,
		ServiceName: created.ServiceName,
	}, nil
}

// dispatchNotification запускает асинхронное уведомление владельца.
// Запись уже создана: любые проблемы здесь только логируются
func (uc *UseCase) dispatchNotification(ctx context.Context, created *create_schedule.Response) {
	details, err := uc.serviceRepo.GetNotificationDetails(ctx, created.ServiceID)
	if err != nil {
		uc.logger.Warn("PublicBooking: schedule id=%d created, but failed to get notification details: %v",
			created.ID, err)
		return
	}

	if details.OwnerEmail == "" {
		uc.logger.Warn("PublicBooking: schedule id=%d created, owner has no email, skipping notification", created.ID)
		return
	}

	uc.notifier.NotifyBooking(notify.BookingNotification{
		OwnerEmail:  details.OwnerEmail,
		ClientName:  created.ClientName,
		ServiceName: details.ServiceName,
		CompanyName: details.CompanyName,
		Date:        created.StartTime.Format(noteDateFormat),
		Time:        created.StartTime.Format(noteTimeFormat),
	})
}

func mapCreateError(err error) error {
	switch {
	case errors.Is(err, create_schedule.ErrServiceNotFound):
		return ErrServiceNotFound
	case errors.Is(err, create_schedule.ErrSlotNotAvailable):
		return ErrSlotNotAvailable
	case errors.Is(err, create_schedule.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
