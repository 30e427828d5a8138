package service

import (
	"context"
	"honeydew-api/core/errors"
	authDto "honeydew-api/modules/auth/dto"
	authRepo "honeydew-api/modules/auth/repository"
	"honeydew-api/modules/user/dto"
	"honeydew-api/modules/user/repository"
	"strings"

	"github.com/google/uuid"
)

// UserService handles profile and onboarding logic.
type UserService struct {
	repo     repository.UserRepositoryInterface
	authRepo authRepo.AuthRepositoryInterface
}

// UserServiceInterface defines the service contract
type UserServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*authDto.UserResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*authDto.UserResponse, *errors.AppError)
	Onboard(ctx context.Context, userID uuid.UUID) *errors.AppError
}

func NewUserService(repo repository.UserRepositoryInterface, ar authRepo.AuthRepositoryInterface) UserServiceInterface {
	return &UserService{repo: repo, authRepo: ar}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*authDto.UserResponse, *errors.AppError) {
	user, err := s.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	resp := authDto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*authDto.UserResponse, *errors.AppError) {
	user, err := s.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" {
		name = user.Name
	}
	if phone == "" {
		phone = user.Phone
	}

	if err := s.repo.UpdateProfile(ctx, userID, name, phone); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update profile", err)
	}

	user.Name = name
	user.Phone = phone
	resp := authDto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) Onboard(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkOnboarded(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark onboarded", err)
	}
	return nil
}
