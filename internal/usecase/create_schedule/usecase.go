package create_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case создания записи клиента
//
// Инвариант: у одной компании не может быть двух записей с пересекающимися
// полуоткрытыми интервалами [start, end). Проверка пересечения и вставка
// выполняются в одной сериализуемой транзакции; exclusion constraint в БД
// остается последним рубежом на случай деградации изоляции.
type UseCase struct {
	scheduleRepo ScheduleRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
//
// Шаги внутри одной сериализуемой транзакции:
//  1. Поиск услуги в рамках компании (чужая услуга = не найдена)
//  2. Вычисление времени окончания из длительности услуги
//  3. Проверка пересечений с существующими записями компании (FOR UPDATE)
//  4. Вставка записи
//
// Любая ошибка откатывает транзакцию целиком - частичных вставок не бывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: company=%d, service=%d, client=%q, start=%s",
		req.CompanyID, req.ServiceID, req.ClientName, req.StartTime.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// Все временные метки храним в UTC; фильтрация по календарной дате
	// выполняется по хранимой UTC-дате
	startTime := req.StartTime.UTC()

	var result *domain.Schedule
	var serviceName string

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем услугу строго в рамках компании заказчика
		service, err := uc.serviceRepo.GetByCompanyAndID(txCtx, req.CompanyID, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateSchedule: service id=%d not found for company=%d", req.ServiceID, req.CompanyID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateSchedule: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 2. Время окончания выводится из длительности услуги один раз
		// и сохраняется; последующие изменения услуги прошлые записи
		// не затрагивают
		endTime := startTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

		// 3. Проверяем пересечение интервалов [start, end)
		overlapping, err := uc.scheduleRepo.CountOverlapping(txCtx, req.CompanyID, startTime, endTime)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to count overlapping schedules: %v", err)
			return fmt.Errorf("%w: failed to count overlapping schedules: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			uc.logger.Warn("CreateSchedule: slot not available for company=%d: %d overlapping schedule(s)",
				req.CompanyID, overlapping)
			return ErrSlotNotAvailable
		}

		// 4. Создаем запись
		schedule := &domain.Schedule{
			CompanyID:   req.CompanyID,
			ServiceID:   req.ServiceID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			StartTime:   startTime,
			EndTime:     endTime,
		}

		created, err := uc.scheduleRepo.Create(txCtx, schedule)
		if err != nil {
			// Exclusion constraint сработал раньше нашей проверки -
			// для вызывающего это тот же конфликт слота
			if errors.Is(err, scheduleRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateSchedule: exclusion constraint rejected insert for company=%d", req.CompanyID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
		}

		result = created
		serviceName = service.Name
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSchedule: successfully created schedule id=%d (company=%d, %s - %s)",
		result.ID, result.CompanyID,
		result.StartTime.Format(time.RFC3339), result.EndTime.Format(time.RFC3339))

	return &Response{
		ID:          result.ID,
		CompanyID:   result.CompanyID,
		ServiceID:   result.ServiceID,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		ServiceName: serviceName,
		CreatedAt:   result.CreatedAt,
	}, nil
}
