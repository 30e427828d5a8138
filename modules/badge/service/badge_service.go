package service

import (
	"context"
	"honeydew-api/core/errors"
	"honeydew-api/modules/badge/dto"
	"honeydew-api/modules/badge/repository"

	"github.com/google/uuid"
)

// BadgeService handles badge accrual business logic
type BadgeService struct {
	repo repository.BadgeRepositoryInterface
}

// BadgeServiceInterface defines the service contract
type BadgeServiceInterface interface {
	EvaluateAndGrant(ctx context.Context, userID uuid.UUID) ([]dto.BadgeResponse, *errors.AppError)
	GetBadges(ctx context.Context, userID uuid.UUID) (*dto.BadgesResponse, *errors.AppError)
}

func NewBadgeService(repo repository.BadgeRepositoryInterface) BadgeServiceInterface {
	return &BadgeService{repo: repo}
}

// EvaluateAndGrant checks every badge rule against fresh counters and grants
// whatever is newly met. Grants are idempotent and never revoked; re-running
// after a counter drops leaves earlier grants in place.
func (s *BadgeService) EvaluateAndGrant(ctx context.Context, userID uuid.UUID) ([]dto.BadgeResponse, *errors.AppError) {
	counters, err := s.repo.GetCounters(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to compute badge counters", err)
	}

	for _, rule := range badgeRules {
		if rule.counter(*counters) >= rule.threshold {
			if err := s.repo.InsertIfAbsent(ctx, userID, rule.def.Type); err != nil {
				return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to grant badge", err)
			}
		}
	}

	badges, err := s.repo.GetUserBadges(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get badges", err)
	}

	responses := make([]dto.BadgeResponse, 0, len(badges))
	for i := range badges {
		responses = append(responses, dto.ToBadgeResponse(&badges[i], definitionByType(badges[i].BadgeType)))
	}

	return responses, nil
}

// GetBadges runs an evaluation pass and returns the user's grants plus the
// full catalog.
func (s *BadgeService) GetBadges(ctx context.Context, userID uuid.UUID) (*dto.BadgesResponse, *errors.AppError) {
	badges, appErr := s.EvaluateAndGrant(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.BadgesResponse{
		Badges:      badges,
		Definitions: dto.ToDefinitionResponses(Definitions()),
	}, nil
}
