package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/auth/models"
)

type fakeCompanyRepo struct {
	created []string
}

func (f *fakeCompanyRepo) Create(_ context.Context, name string) (*domain.Company, error) {
	f.created = append(f.created, name)
	return &domain.Company{ID: 7, Name: name}, nil
}

type fakeUserRepo struct {
	createErr  error
	byEmail    *domain.User
	byEmailErr error
	created    *domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *user
	out.ID = 3
	f.created = &out
	return &out, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

type fakeSigner struct{}

func (fakeSigner) Sign(userID, companyID int64) (string, error) {
	return "token", nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestRegister_Success(t *testing.T) {
	companies := &fakeCompanyRepo{}
	users := &fakeUserRepo{}
	svc := NewService(companies, users, fakeSigner{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		CompanyName: "Барбершоп",
		Email:       "Owner@Example.com",
		Password:    "secret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, int64(7), resp.CompanyID)
	assert.Equal(t, int64(3), resp.UserID)

	require.NotNil(t, users.created)
	assert.Equal(t, "owner@example.com", users.created.Email, "email must be normalized")
	assert.Equal(t, domain.RoleAdmin, users.created.Role)
	assert.Equal(t, int64(7), users.created.CompanyID)
	assert.NotEqual(t, "secret-password", users.created.PasswordHash, "password must be hashed")
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := NewService(&fakeCompanyRepo{}, &fakeUserRepo{createErr: userRepo.ErrEmailTaken},
		fakeSigner{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		CompanyName: "Барбершоп",
		Email:       "owner@example.com",
		Password:    "secret-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, resp)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty company name", models.RegisterRequest{CompanyName: " ", Email: "a@b.com", Password: "secret-password"}},
		{"bad email", models.RegisterRequest{CompanyName: "X", Email: "not-an-email", Password: "secret-password"}},
		{"short password", models.RegisterRequest{CompanyName: "X", Email: "a@b.com", Password: "1234567"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeCompanyRepo{}, &fakeUserRepo{}, fakeSigner{}, fakeTxManager{}, noopLogger{})
			resp, err := svc.Register(context.Background(), &tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{byEmail: &domain.User{
		ID:           3,
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		CompanyID:    7,
	}}
	svc := NewService(&fakeCompanyRepo{}, users, fakeSigner{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "owner@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, int64(7), resp.CompanyID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{byEmail: &domain.User{ID: 3, PasswordHash: string(hash)}}
	svc := NewService(&fakeCompanyRepo{}, users, fakeSigner{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := &fakeUserRepo{byEmailErr: userRepo.ErrUserNotFound}
	svc := NewService(&fakeCompanyRepo{}, users, fakeSigner{}, fakeTxManager{}, noopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}
