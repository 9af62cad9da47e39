package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с услугами компаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу компании
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"company_id",
			"name",
			"price",
			"duration",
		).
		Values(
			service.CompanyID,
			service.Name,
			service.Price,
			service.DurationMinutes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time

	return service, nil
}

// GetByCompanyAndID получает услугу по id в рамках компании
// Tenant-изоляция обеспечивается на уровне запроса: услуга чужой компании
// неотличима от несуществующей
func (r *Repository) GetByCompanyAndID(ctx context.Context, companyID, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"price",
		"duration",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanyAndID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanService(executor.QueryRowContext(ctx, query, args...), "GetByCompanyAndID")
}

// ListByCompany получает все услуги компании
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"company_id",
		"name",
		"price",
		"duration",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		var createdAt sql.NullTime

		if err := rows.Scan(
			&service.ID,
			&service.CompanyID,
			&service.Name,
			&service.Price,
			&service.DurationMinutes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByCompany - scan row: %v", ErrScanRow, err)
		}

		service.CreatedAt = createdAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Delete удаляет услугу компании
// Удаление идемпотентно: отсутствующий id или id чужой компании - no-op
func (r *Repository) Delete(ctx context.Context, companyID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// NotificationDetails данные для письма владельцу о новой записи
type NotificationDetails struct {
	ServiceName string
	CompanyName string
	OwnerEmail  string
}

// GetNotificationDetails получает данные для уведомления о записи на услугу:
// название услуги, название компании и email её владельца
func (r *Repository) GetNotificationDetails(ctx context.Context, serviceID int64) (*NotificationDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.name AS service_name",
		"c.name AS company_name",
		"u.email AS owner_email",
	).
		From("services s").
		Join("companies c ON c.id = s.company_id").
		Join("users u ON u.company_id = c.id").
		Where(squirrel.Eq{"s.id": serviceID}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetNotificationDetails - build select query: %v", ErrBuildQuery, err)
	}

	var details NotificationDetails
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&details.ServiceName,
		&details.CompanyName,
		&details.OwnerEmail,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetNotificationDetails - scan details: %v", ErrScanRow, err)
	}

	return &details, nil
}

// scanService сканирует одну услугу из строки результата
func (r *Repository) scanService(row *sql.Row, method string) (*domain.Service, error) {
	var service domain.Service
	var createdAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.CompanyID,
		&service.Name,
		&service.Price,
		&service.DurationMinutes,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, method, err)
	}

	service.CreatedAt = createdAt.Time

	return &service, nil
}
