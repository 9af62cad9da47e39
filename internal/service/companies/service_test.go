package companies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	companyRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/company"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeCompanyRepo struct {
	byID      *domain.Company
	byIDErr   error
	bySlug    *domain.Company
	bySlugErr error
	slugTaken bool
	updateErr error
	all       []*domain.Company
	updated   *domain.CompanyUpdate
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, _ int64) (*domain.Company, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeCompanyRepo) GetBySlug(_ context.Context, _ string) (*domain.Company, error) {
	if f.bySlugErr != nil {
		return nil, f.bySlugErr
	}
	return f.bySlug, nil
}

func (f *fakeCompanyRepo) SlugTaken(_ context.Context, _ string, _ int64) (bool, error) {
	return f.slugTaken, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, _ int64, update domain.CompanyUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = &update
	return nil
}

func (f *fakeCompanyRepo) ListAll(_ context.Context) ([]*domain.Company, error) {
	return f.all, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
}

func (f *fakeServiceRepo) ListByCompany(_ context.Context, _ int64) ([]*domain.Service, error) {
	return f.services, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeCompanyRepo{
		byID: &domain.Company{ID: 7, Name: "Барбершоп", Slug: ptr.Ptr("barbershop")},
	}
	svc := NewService(repo, &fakeServiceRepo{}, noopLogger{})

	resp, err := svc.Update(context.Background(), 7, &models.UpdateCompanyRequest{
		Name: "Барбершоп",
		Slug: "barbershop",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "barbershop", repo.updated.Slug)
}

func TestUpdate_SlugTaken(t *testing.T) {
	repo := &fakeCompanyRepo{slugTaken: true}
	svc := NewService(repo, &fakeServiceRepo{}, noopLogger{})

	resp, err := svc.Update(context.Background(), 7, &models.UpdateCompanyRequest{
		Name: "Барбершоп",
		Slug: "barbershop",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.Nil(t, resp)
	assert.Nil(t, repo.updated)
}

func TestUpdate_SlugValidation(t *testing.T) {
	tests := []struct {
		name string
		slug string
	}{
		{"empty", ""},
		{"uppercase", "BarberShop"},
		{"spaces", "barber shop"},
		{"leading hyphen", "-barbershop"},
		{"trailing hyphen", "barbershop-"},
		{"cyrillic", "барбершоп"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeCompanyRepo{}, &fakeServiceRepo{}, noopLogger{})
			resp, err := svc.Update(context.Background(), 7, &models.UpdateCompanyRequest{
				Name: "Барбершоп",
				Slug: tt.slug,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestGetPublicPage_Success(t *testing.T) {
	repo := &fakeCompanyRepo{
		bySlug: &domain.Company{ID: 7, Name: "Барбершоп", Slug: ptr.Ptr("barbershop")},
	}
	services := &fakeServiceRepo{services: []*domain.Service{
		{ID: 10, Name: "Стрижка", Price: 1500, DurationMinutes: 45},
	}}
	svc := NewService(repo, services, noopLogger{})

	resp, err := svc.GetPublicPage(context.Background(), "barbershop")
	require.NoError(t, err)
	assert.Equal(t, "barbershop", resp.Slug)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Стрижка", resp.Services[0].Name)
	assert.Equal(t, 45, resp.Services[0].DurationMinutes)
}

func TestGetPublicPage_UnknownSlug(t *testing.T) {
	repo := &fakeCompanyRepo{bySlugErr: companyRepo.ErrCompanyNotFound}
	svc := NewService(repo, &fakeServiceRepo{}, noopLogger{})

	resp, err := svc.GetPublicPage(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.Nil(t, resp)
}

func TestListPublic_SkipsCompaniesWithoutSlug(t *testing.T) {
	repo := &fakeCompanyRepo{all: []*domain.Company{
		{ID: 1, Name: "Видимая", Slug: ptr.Ptr("visible")},
		{ID: 2, Name: "Без страницы", Slug: nil},
		{ID: 3, Name: "Пустой слаг", Slug: ptr.Ptr("")},
	}}
	svc := NewService(repo, &fakeServiceRepo{}, noopLogger{})

	resp, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, "visible", resp.Companies[0].Slug)
	assert.Equal(t, 1, resp.Total)
}
