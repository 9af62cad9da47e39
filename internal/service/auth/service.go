package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/auth/models"
)

const minPasswordLength = 8

// Service сервис регистрации и аутентификации
type Service struct {
	companyRepo CompanyRepository
	userRepo    UserRepository
	signer      TokenSigner
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	companyRepo CompanyRepository,
	userRepo UserRepository,
	signer TokenSigner,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		signer:      signer,
		txManager:   txManager,
		logger:      logger,
	}
}

// Register регистрирует компанию и её администратора
// Компания и пользователь создаются в одной транзакции: осиротевших
// компаний без администратора не бывает
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: registering company=%q, email=%q", req.CompanyName, req.Email)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	var company *domain.Company
	var user *domain.User

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.companyRepo.Create(txCtx, strings.TrimSpace(req.CompanyName))
		if err != nil {
			s.logger.Error("Register: failed to create company: %v", err)
			return fmt.Errorf("%w: Register - create company: %v", ErrInternal, err)
		}

		admin, err := s.userRepo.Create(txCtx, &domain.User{
			Email:        normalizeEmail(req.Email),
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			CompanyID:    created.ID,
		})
		if err != nil {
			if errors.Is(err, userRepo.ErrEmailTaken) {
				s.logger.Warn("Register: email %q already taken", req.Email)
				return ErrEmailTaken
			}
			s.logger.Error("Register: failed to create user: %v", err)
			return fmt.Errorf("%w: Register - create user: %v", ErrInternal, err)
		}

		company = created
		user = admin
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.signer.Sign(user.ID, company.ID)
	if err != nil {
		s.logger.Error("Register: failed to sign token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Register - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered company id=%d, user id=%d", company.ID, user.ID)
	return &models.AuthResponse{
		Token:       token,
		UserID:      user.ID,
		CompanyID:   company.ID,
		CompanyName: company.Name,
	}, nil
}

// Login аутентифицирует пользователя по email и паролю
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: attempt for email=%q", req.Email)

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user with email=%q not found", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%q: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.signer.Sign(user.ID, user.CompanyID)
	if err != nil {
		s.logger.Error("Login: failed to sign token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in (company=%d)", user.ID, user.CompanyID)
	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		CompanyID: user.CompanyID,
	}, nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.CompanyName) == "" {
		return fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}
	if len(req.CompanyName) > domain.MaxNameLength {
		return fmt.Errorf("%w: companyName is too long", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
