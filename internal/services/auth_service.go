package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclecast/internal/models"
	"github.com/terraincognita07/cyclecast/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

type AuthService struct {
	users UserRepository
	cost  int
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users, cost: bcrypt.DefaultCost}
}

// Register creates an owner account with default cycle settings.
func (service *AuthService) Register(ctx context.Context, emailRaw string, passwordRaw string) (models.User, error) {
	return service.CreateUser(ctx, emailRaw, passwordRaw, models.RoleOwner)
}

// CreateUser creates an account with the given role. Partners share the
// owner's view and cannot edit records.
func (service *AuthService) CreateUser(ctx context.Context, emailRaw string, passwordRaw string, role string) (models.User, error) {
	if role != models.RoleOwner && role != models.RolePartner {
		return models.User{}, ErrRoleInvalid
	}
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:           email,
		PasswordHash:    string(hash),
		Role:            role,
		CycleLength:     models.DefaultCycleLength,
		PeriodLength:    models.DefaultPeriodLength,
		PillActiveCount: models.DefaultPillActiveCount,
		PillRestDays:    models.DefaultPillRestDays,
		CreatedAt:       time.Now().UTC(),
	}
	if err := service.users.Create(ctx, &user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *AuthService) Authenticate(ctx context.Context, emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByEmail(ctx context.Context, emailRaw string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrInvalidCredentials
	}
	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrRecordNotFound
	}
	return user, err
}

// ResetPassword replaces the password with a random temporary one that must
// be changed on next login, and returns it.
func (service *AuthService) ResetPassword(ctx context.Context, emailRaw string) (string, error) {
	user, err := service.FindByEmail(ctx, emailRaw)
	if err != nil {
		return "", err
	}

	temporary, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(temporary), service.cost)
	if err != nil {
		return "", fmt.Errorf("hash temporary password: %w", err)
	}
	if err := service.users.UpdatePassword(ctx, user.ID, string(hash), true); err != nil {
		return "", fmt.Errorf("update user password: %w", err)
	}
	return temporary, nil
}
