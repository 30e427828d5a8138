package service

import (
	"context"
	"honeydew-api/core/cache"
	"honeydew-api/core/errors"
	"honeydew-api/core/logger"
	"honeydew-api/core/utils"
	"honeydew-api/modules/auth/dto"
	"honeydew-api/modules/auth/entity"
	"honeydew-api/modules/auth/repository"
	"strings"

	"github.com/google/uuid"
)

// AuthService handles signup, login and session revocation.
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache *cache.Cache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, c *cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	if name == "" || email == "" || phone == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name, email, phone and password are required", nil)
	}
	if len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 8 characters", nil)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An account with that email already exists", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
	}

	token, err := utils.GenerateToken(created.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.AuthResponse{User: dto.ToUserResponse(created), Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil || !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}, nil
}

// Logout blacklists the token for its remaining lifetime so the cookie cannot
// be replayed after it is cleared.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		// Already invalid, nothing to revoke
		return nil
	}

	if s.cache != nil {
		if err := s.cache.BlacklistToken(ctx, token, utils.TokenRemainingTTL(claims)); err != nil {
			logger.Error("AuthService:Logout:BlacklistToken", err)
			return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
		}
	}

	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}
