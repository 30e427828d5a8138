package service

import (
	"context"
	"honeydew-api/core/errors"
	availRepo "honeydew-api/modules/availability/repository"
	groupRepo "honeydew-api/modules/group/repository"
	"honeydew-api/modules/meeting/dto"
	"honeydew-api/modules/meeting/entity"
	"honeydew-api/modules/meeting/repository"

	"github.com/google/uuid"
)

// Guidance messages for the two empty outcomes. The suggest endpoint returns
// these with a 200, not an error.
const (
	msgNoAvailability = "No availability data yet. Ask your crew to set their availability first!"
	msgNoOverlap      = "No overlapping availability found. Ask your crew to update their schedules!"
	msgExhausted      = "Every suggested slot was rejected. Ask your crew to update their availability!"
)

// maxAlternatives shown alongside the top suggestion.
const maxAlternatives = 3

// MeetingService handles meeting suggestion and negotiation business logic
type MeetingService struct {
	repo      repository.MeetingRepositoryInterface
	groupRepo groupRepo.GroupRepositoryInterface
	availRepo availRepo.AvailabilityRepositoryInterface
	ranker    *SlotRanker
}

// MeetingServiceInterface defines the service contract
type MeetingServiceInterface interface {
	Suggest(ctx context.Context, userID, groupID uuid.UUID) (*dto.SuggestResponse, *errors.AppError)
	HandleMeetingAction(ctx context.Context, userID, groupID uuid.UUID, req *dto.MeetingActionRequest) (*dto.MeetingActionResponse, *errors.AppError)
}

func NewMeetingService(
	repo repository.MeetingRepositoryInterface,
	gRepo groupRepo.GroupRepositoryInterface,
	aRepo availRepo.AvailabilityRepositoryInterface,
) MeetingServiceInterface {
	return &MeetingService{
		repo:      repo,
		groupRepo: gRepo,
		availRepo: aRepo,
		ranker:    NewSlotRanker(),
	}
}

// Suggest ranks the group's weekly slots and returns the best one plus up to
// three alternatives.
func (s *MeetingService) Suggest(ctx context.Context, userID, groupID uuid.UUID) (*dto.SuggestResponse, *errors.AppError) {
	ranked, appErr := s.rankedCandidates(ctx, userID, groupID)
	if appErr != nil {
		if appErr.Code == errors.ErrEmptyInput {
			return &dto.SuggestResponse{
				Alternatives: []dto.SlotResponse{},
				Message:      msgNoAvailability,
			}, nil
		}
		return nil, appErr
	}

	if len(ranked) == 0 {
		return &dto.SuggestResponse{
			Alternatives: []dto.SlotResponse{},
			Message:      msgNoOverlap,
		}, nil
	}

	top := dto.ToSlotResponse(&ranked[0])
	alternatives := []dto.SlotResponse{}
	for i := 1; i < len(ranked) && i <= maxAlternatives; i++ {
		alternatives = append(alternatives, dto.ToSlotResponse(&ranked[i]))
	}

	return &dto.SuggestResponse{
		Suggestion:   &top,
		Alternatives: alternatives,
	}, nil
}

// HandleMeetingAction advances the negotiation. Accepting persists the
// candidate at the cursor; rejecting moves on without touching the group.
func (s *MeetingService) HandleMeetingAction(ctx context.Context, userID, groupID uuid.UUID, req *dto.MeetingActionRequest) (*dto.MeetingActionResponse, *errors.AppError) {
	ranked, appErr := s.rankedCandidates(ctx, userID, groupID)
	if appErr != nil {
		if appErr.Code == errors.ErrEmptyInput {
			return nil, errors.NewAppError(errors.ErrInvalidState, "No availability to negotiate over", nil)
		}
		return nil, appErr
	}

	outcome, appErr := AdvanceNegotiation(ranked, req.Cursor, req.Action)
	if appErr != nil {
		return nil, appErr
	}

	switch outcome.State {
	case entity.StateLocked:
		if err := s.repo.ConfirmMeeting(ctx, groupID, outcome.Locked.Day, outcome.Locked.TimeSlot); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to confirm meeting", err)
		}
		confirmed := dto.ToSlotResponse(outcome.Locked)
		return &dto.MeetingActionResponse{
			Status:    string(entity.StateLocked),
			Cursor:    outcome.Cursor,
			Confirmed: &confirmed,
		}, nil

	case entity.StateProposing:
		next := dto.ToSlotResponse(&ranked[outcome.Cursor])
		return &dto.MeetingActionResponse{
			Status: string(entity.StateProposing),
			Cursor: outcome.Cursor,
			Next:   &next,
		}, nil

	default:
		return &dto.MeetingActionResponse{
			Status:  string(entity.StateExhausted),
			Cursor:  outcome.Cursor,
			Message: msgExhausted,
		}, nil
	}
}

// rankedCandidates loads the group, checks membership and ranks its slots.
func (s *MeetingService) rankedCandidates(ctx context.Context, userID, groupID uuid.UUID) ([]entity.SlotCandidate, *errors.AppError) {
	group, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get group", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Group not found", nil)
	}

	isMember, err := s.groupRepo.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check membership", err)
	}
	if !isMember {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not a member of this group", nil)
	}

	members, err := s.groupRepo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get members", err)
	}

	entries, err := s.availRepo.GetByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	rankerMembers := make([]entity.Member, 0, len(members))
	for _, m := range members {
		rankerMembers = append(rankerMembers, entity.Member{ID: m.ID, Name: m.Name})
	}

	rankerEntries := make([]entity.AvailabilityEntry, 0, len(entries))
	for _, e := range entries {
		rankerEntries = append(rankerEntries, entity.AvailabilityEntry{
			UserID:    e.UserID,
			UserName:  e.UserName,
			DayOfWeek: e.DayOfWeek,
			TimeSlot:  e.TimeSlot,
		})
	}

	return s.ranker.RankSlots(rankerMembers, rankerEntries)
}
