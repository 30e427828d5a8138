package service

import (
	"context"
	"fmt"
	"honeydew-api/core/errors"
	"honeydew-api/modules/availability/dto"
	"honeydew-api/modules/availability/entity"
	"honeydew-api/modules/availability/repository"
	groupRepo "honeydew-api/modules/group/repository"

	"github.com/google/uuid"
)

// AvailabilityService handles weekly availability business logic
type AvailabilityService struct {
	repo      repository.AvailabilityRepositoryInterface
	groupRepo groupRepo.GroupRepositoryInterface
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	GetGroupAvailability(ctx context.Context, userID, groupID uuid.UUID) ([]dto.AvailabilityResponse, *errors.AppError)
	SetMyAvailability(ctx context.Context, userID, groupID uuid.UUID, req *dto.PutAvailabilityRequest) ([]dto.AvailabilityResponse, *errors.AppError)
}

func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface, gRepo groupRepo.GroupRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{
		repo:      repo,
		groupRepo: gRepo,
	}
}

func (s *AvailabilityService) GetGroupAvailability(ctx context.Context, userID, groupID uuid.UUID) ([]dto.AvailabilityResponse, *errors.AppError) {
	if appErr := s.requireMember(ctx, userID, groupID); appErr != nil {
		return nil, appErr
	}

	entries, err := s.repo.GetByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	return dto.ToAvailabilityResponses(entries), nil
}

// SetMyAvailability validates every slot up front, then replaces the caller's
// week in one shot.
func (s *AvailabilityService) SetMyAvailability(ctx context.Context, userID, groupID uuid.UUID, req *dto.PutAvailabilityRequest) ([]dto.AvailabilityResponse, *errors.AppError) {
	if appErr := s.requireMember(ctx, userID, groupID); appErr != nil {
		return nil, appErr
	}

	slots := make([]entity.Availability, 0, len(req.Slots))
	seen := make(map[dto.SlotInput]bool, len(req.Slots))
	for _, slot := range req.Slots {
		if !slot.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("Invalid slot: day %d, time %q", slot.DayOfWeek, slot.TimeSlot), nil)
		}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		slots = append(slots, entity.Availability{
			GroupID:   groupID,
			UserID:    userID,
			DayOfWeek: slot.DayOfWeek,
			TimeSlot:  slot.TimeSlot,
		})
	}

	if err := s.repo.ReplaceForUser(ctx, groupID, userID, slots); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	entries, err := s.repo.GetByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	return dto.ToAvailabilityResponses(entries), nil
}

func (s *AvailabilityService) requireMember(ctx context.Context, userID, groupID uuid.UUID) *errors.AppError {
	group, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get group", err)
	}
	if group == nil {
		return errors.NewAppError(errors.ErrNotFound, "Group not found", nil)
	}

	isMember, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to check membership", err)
	}
	if !isMember {
		return errors.NewAppError(errors.ErrForbidden, "Not a member of this group", nil)
	}

	return nil
}
