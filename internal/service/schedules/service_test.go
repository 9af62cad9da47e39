package schedules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedules/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeScheduleRepo struct {
	listFilter    *domain.ScheduleFilter
	historyFilter *domain.HistoryFilter
	schedules     []*domain.Schedule
	deleteArgs    []int64
}

func (f *fakeScheduleRepo) ListByCompany(_ context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	f.listFilter = &filter
	return f.schedules, nil
}

func (f *fakeScheduleRepo) History(_ context.Context, filter domain.HistoryFilter) ([]*domain.Schedule, error) {
	f.historyFilter = &filter
	return f.schedules, nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, companyID, id int64) error {
	f.deleteArgs = []int64{companyID, id}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestList_WithDateFilter(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		{ID: 1, CompanyID: 7, ServiceName: "Стрижка"},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSchedulesRequest{
		CompanyID: 7,
		Date:      ptr.Ptr("2025-06-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	require.NotNil(t, repo.listFilter)
	require.NotNil(t, repo.listFilter.Date)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), *repo.listFilter.Date)
	assert.Nil(t, resp.Schedules[0].ServicePrice, "price is not exposed in the upcoming list")
}

func TestList_InvalidDate(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSchedulesRequest{
		CompanyID: 7,
		Date:      ptr.Ptr("02.06.2025"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Nil(t, resp)
}

func TestHistory_WithPeriod(t *testing.T) {
	repo := &fakeScheduleRepo{schedules: []*domain.Schedule{
		{ID: 1, CompanyID: 7, ServiceName: "Стрижка", ServicePrice: 1500},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.History(context.Background(), &models.HistoryRequest{
		CompanyID: 7,
		StartDate: ptr.Ptr("2025-06-01"),
		EndDate:   ptr.Ptr("2025-06-30"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.historyFilter)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *repo.historyFilter.StartDate)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *repo.historyFilter.EndDate)

	require.Len(t, resp.Schedules, 1)
	require.NotNil(t, resp.Schedules[0].ServicePrice)
	assert.Equal(t, 1500.0, *resp.Schedules[0].ServicePrice)
}

func TestHistory_StartAfterEnd(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, noopLogger{})

	resp, err := svc.History(context.Background(), &models.HistoryRequest{
		CompanyID: 7,
		StartDate: ptr.Ptr("2025-07-01"),
		EndDate:   ptr.Ptr("2025-06-01"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, resp)
}

func TestDelete_PassesTenantScope(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 42}, repo.deleteArgs)
}
