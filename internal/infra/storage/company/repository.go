package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с компаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую компанию
// Вызывается из транзакции регистрации вместе с созданием пользователя
func (r *Repository) Create(ctx context.Context, name string) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("companies").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	company := domain.Company{Name: name}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&company.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &company, nil
}

// GetByID получает компанию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := companySelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return scanCompany(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetBySlug получает компанию по слагу публичной страницы
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := companySelect().
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return scanCompany(executor.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// SlugTaken проверяет, занят ли слаг другой компанией (кроме excludeID)
func (r *Repository) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("companies").
		Where(squirrel.Eq{"slug": slug}).
		Where(squirrel.NotEq{"id": excludeID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: SlugTaken - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: SlugTaken - scan id: %v", ErrScanRow, err)
	}

	return true, nil
}

// Update обновляет профиль компании
// Гонка на уникальность слага (две компании одновременно берут один слаг)
// закрывается unique constraint'ом и возвращается как ErrSlugTaken
func (r *Repository) Update(ctx context.Context, id int64, update domain.CompanyUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("companies").
		Set("name", update.Name).
		Set("slug", update.Slug).
		Set("phone", update.Phone).
		Set("address", update.Address).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrSlugTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCompanyNotFound
	}

	return nil
}

// ListAll получает все компании для публичного каталога,
// отсортированные по названию
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "slug").
		From("companies").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Slug); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return companies, nil
}

func companySelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"slug",
		"phone",
		"address",
	).From("companies")
}

func scanCompany(row *sql.Row, method string) (*domain.Company, error) {
	var company domain.Company

	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Slug,
		&company.Phone,
		&company.Address,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan company: %v", ErrScanRow, method, err)
	}

	return &company, nil
}
