package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

type fakeServiceRepo struct {
	created    *domain.Service
	list       []*domain.Service
	deleteArgs []int64
}

func (f *fakeServiceRepo) Create(_ context.Context, service *domain.Service) (*domain.Service, error) {
	out := *service
	out.ID = 10
	f.created = &out
	return &out, nil
}

func (f *fakeServiceRepo) ListByCompany(_ context.Context, _ int64) ([]*domain.Service, error) {
	return f.list, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, companyID, id int64) error {
	f.deleteArgs = []int64{companyID, id}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), 7, &models.CreateServiceRequest{
		Name:            "  Стрижка  ",
		Price:           1500,
		DurationMinutes: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, int64(7), resp.CompanyID)
	assert.Equal(t, "Стрижка", resp.Name, "name must be trimmed")
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Name: " ", Price: 100, DurationMinutes: 30}},
		{"negative price", models.CreateServiceRequest{Name: "X", Price: -1, DurationMinutes: 30}},
		{"zero duration", models.CreateServiceRequest{Name: "X", Price: 100, DurationMinutes: 0}},
		{"duration over a day", models.CreateServiceRequest{Name: "X", Price: 100, DurationMinutes: 1441}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeServiceRepo{}, noopLogger{})
			resp, err := svc.Create(context.Background(), 7, &tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestList_Success(t *testing.T) {
	repo := &fakeServiceRepo{list: []*domain.Service{
		{ID: 1, CompanyID: 7, Name: "Стрижка", Price: 1500, DurationMinutes: 45},
		{ID: 2, CompanyID: 7, Name: "Бритье", Price: 900, DurationMinutes: 30},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Services, 2)
}

func TestDelete_PassesTenantScope(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 10}, repo.deleteArgs)
}
