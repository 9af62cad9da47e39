package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL exclusion_violation - нарушение exclusion
// constraint на интервалах записей (см. migrations/001_init.sql)
const pgExclusionViolation = "23P01"

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её.
//
// Время окончания должно быть уже вычислено вызывающей стороной из
// длительности услуги - репозиторий сохраняет интервал как есть.
// Нарушение exclusion constraint на (company_id, [start_time, end_time))
// возвращается как ErrSlotTaken: даже если проверка пересечений в usecase
// была пройдена, БД остается последним рубежом инварианта.
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"company_id",
			"service_id",
			"client_name",
			"client_phone",
			"start_time",
			"end_time",
		).
		Values(
			schedule.CompanyID,
			schedule.ServiceID,
			schedule.ClientName,
			schedule.ClientPhone,
			schedule.StartTime,
			schedule.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgExclusionViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time

	return schedule, nil
}

// CountOverlapping подсчитывает записи компании, пересекающиеся с
// полуоткрытым интервалом [start, end)
//
// Внутри транзакции найденные строки блокируются через FOR UPDATE, чтобы
// конкурентная проверка-вставка на ту же компанию сериализовалась
func (r *Repository) CountOverlapping(ctx context.Context, companyID int64, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("schedules").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountOverlapping - scan id: %v", ErrScanRow, err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListByCompany получает записи компании с названием услуги,
// отсортированные по времени начала (ASC)
//
// Если в фильтре указана дата, выбираются записи, чья календарная дата
// начала (в UTC, как хранится) совпадает с указанной
func (r *Repository) ListByCompany(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.company_id",
		"s.service_id",
		"s.client_name",
		"s.client_phone",
		"s.start_time",
		"s.end_time",
		"s.created_at",
		"svc.name AS service_name",
	).
		From("schedules s").
		Join("services svc ON svc.id = s.service_id").
		Where(squirrel.Eq{"s.company_id": filter.CompanyID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr(
			"s.start_time::date = ?", filter.Date.Format(domain.DateFormat),
		))
	}

	selectBuilder = selectBuilder.OrderBy("s.start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows, false)
}

// History получает историю записей компании с названием и ценой услуги,
// отсортированную по времени начала (DESC - сначала новые)
//
// Обе границы фильтра включительные; EndDate трактуется до конца дня
func (r *Repository) History(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.company_id",
		"s.service_id",
		"s.client_name",
		"s.client_phone",
		"s.start_time",
		"s.end_time",
		"s.created_at",
		"svc.name AS service_name",
		"svc.price AS service_price",
	).
		From("schedules s").
		Join("services svc ON svc.id = s.service_id").
		Where(squirrel.Eq{"s.company_id": filter.CompanyID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.start_time": *filter.StartDate})
	}
	if filter.EndDate != nil {
		endOfDay := filter.EndDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"s.start_time": endOfDay})
	}

	selectBuilder = selectBuilder.OrderBy("s.start_time DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: History - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: History - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows, true)
}

// Delete удаляет запись компании (физическое удаление)
// Удаление идемпотентно: отсутствующий id или id чужой компании - no-op,
// не ошибка
func (r *Repository) Delete(ctx context.Context, companyID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
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

// scanSchedules сканирует результаты запроса в слайс записей
func (r *Repository) scanSchedules(rows *sql.Rows, withPrice bool) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		var schedule domain.Schedule
		var createdAt sql.NullTime

		dest := []interface{}{
			&schedule.ID,
			&schedule.CompanyID,
			&schedule.ServiceID,
			&schedule.ClientName,
			&schedule.ClientPhone,
			&schedule.StartTime,
			&schedule.EndTime,
			&createdAt,
			&schedule.ServiceName,
		}
		if withPrice {
			dest = append(dest, &schedule.ServicePrice)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}

		schedule.CreatedAt = createdAt.Time
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
