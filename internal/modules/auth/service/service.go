package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/urbancare/urbancare-api/internal/entity"
	"github.com/urbancare/urbancare-api/internal/modules/auth/dto"
	"github.com/urbancare/urbancare-api/internal/modules/auth/repository"
	"github.com/urbancare/urbancare-api/pkg/apperror"
)

// bcryptCost matches the hashes produced by the original deployment so
// existing seeded credentials keep verifying.
const bcryptCost = 10

type AuthService interface {
	// Register creates a citizen account. There is no self-service path to
	// any other role.
	Register(ctx context.Context, req dto.RegisterRequest) error
	// Login verifies credentials and returns the public profile. No token or
	// session is issued; callers hold the profile in memory.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UserProfile, error)
	// CheckEmail reports whether an account exists for the given address.
	CheckEmail(ctx context.Context, email string) (*dto.CheckEmailProfile, error)
}

type authService struct {
	repo repository.UserRepository
}

func NewAuthService(repo repository.UserRepository) AuthService {
	return &authService{repo: repo}
}

// NormalizeEmail lowercases and trims an address. Both storage and lookup go
// through this so email comparison is effectively case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) error {
	email := NormalizeEmail(req.Email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return apperror.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		Mobile:       req.Mobile,
		Role:         entity.RoleCitizen,
	}

	return s.repo.Create(ctx, user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UserProfile, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unlike the profile endpoints, a missing account on login is an
			// authentication failure, not a 404.
			return nil, apperror.New(http.StatusUnauthorized, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if req.Role != "" && entity.Role(req.Role) != user.Role {
		return nil, apperror.ErrRoleMismatch
	}

	return dto.NewUserProfile(user), nil
}

func (s *authService) CheckEmail(ctx context.Context, email string) (*dto.CheckEmailProfile, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return &dto.CheckEmailProfile{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
	}, nil
}
