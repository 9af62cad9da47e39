package schedule

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepository(db), mock, func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO schedules (company_id,service_id,client_name,client_phone,start_time,end_time) "+
			"VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at",
	)).
		WithArgs(int64(7), int64(10), "Иван Петров", "+79991234567", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, createdAt))

	created, err := repo.Create(context.Background(), &domain.Schedule{
		CompanyID:   7,
		ServiceID:   10,
		ClientName:  "Иван Петров",
		ClientPhone: "+79991234567",
		StartTime:   start,
		EndTime:     end,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
}

func TestCreate_ExclusionViolation(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery("INSERT INTO schedules").
		WillReturnError(&pq.Error{Code: "23P01"})

	created, err := repo.Create(context.Background(), &domain.Schedule{
		CompanyID: 7,
		ServiceID: 10,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, created)
}

func TestCountOverlapping_NoTransaction(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	// Пересечение полуоткрытых интервалов: start_time < end AND end_time > start
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id FROM schedules WHERE company_id = $1 AND start_time < $2 AND end_time > $3",
	)).
		WithArgs(int64(7), end, start).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	count, err := repo.CountOverlapping(context.Background(), 7, start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountOverlapping_InTransactionLocksRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id FROM schedules WHERE company_id = $1 AND start_time < $2 AND end_time > $3 FOR UPDATE",
	)).
		WithArgs(int64(7), end, start).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	defer tx.Rollback()

	ctx := dbmetrics.WithExecutor(context.Background(), tx)

	count, err := repo.CountOverlapping(ctx, 7, start, end)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCompany_DateFilter(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "company_id", "service_id", "client_name", "client_phone",
		"start_time", "end_time", "created_at", "service_name",
	}).AddRow(1, 7, 10, "Иван Петров", "+79991234567", start, start.Add(time.Hour), start, "Стрижка")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT s.id, s.company_id, s.service_id, s.client_name, s.client_phone, "+
			"s.start_time, s.end_time, s.created_at, svc.name AS service_name "+
			"FROM schedules s JOIN services svc ON svc.id = s.service_id "+
			"WHERE s.company_id = $1 AND s.start_time::date = $2 ORDER BY s.start_time ASC",
	)).
		WithArgs(int64(7), "2025-06-02").
		WillReturnRows(rows)

	schedules, err := repo.ListByCompany(context.Background(), domain.ScheduleFilter{
		CompanyID: 7,
		Date:      &date,
	})
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Стрижка", schedules[0].ServiceName)
}

func TestHistory_EndDateIsInclusive(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "company_id", "service_id", "client_name", "client_phone",
		"start_time", "end_time", "created_at", "service_name", "service_price",
	})

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT s.id, s.company_id, s.service_id, s.client_name, s.client_phone, "+
			"s.start_time, s.end_time, s.created_at, svc.name AS service_name, svc.price AS service_price "+
			"FROM schedules s JOIN services svc ON svc.id = s.service_id "+
			"WHERE s.company_id = $1 AND s.start_time >= $2 AND s.start_time <= $3 ORDER BY s.start_time DESC",
	)).
		WithArgs(int64(7), startDate, endOfDay).
		WillReturnRows(rows)

	schedules, err := repo.History(context.Background(), domain.HistoryFilter{
		CompanyID: 7,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestDelete_IsIdempotent(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM schedules WHERE id = $1 AND company_id = $2",
	)).
		WithArgs(int64(999), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 7, 999)
	require.NoError(t, err, "deleting a missing or foreign schedule is not an error")
}
