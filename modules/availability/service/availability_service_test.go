package service

import (
	"context"
	"honeydew-api/core/constants"
	"honeydew-api/core/errors"
	"honeydew-api/modules/availability/dto"
	"honeydew-api/modules/availability/entity"
	groupEntity "honeydew-api/modules/group/entity"
	groupRepo "honeydew-api/modules/group/repository"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityRepo struct {
	entries      []entity.Availability
	replaceCalls int
	lastReplace  []entity.Availability
}

func (f *fakeAvailabilityRepo) GetByGroup(ctx context.Context, groupID uuid.UUID) ([]entity.Availability, error) {
	return f.entries, nil
}

func (f *fakeAvailabilityRepo) ReplaceForUser(ctx context.Context, groupID, userID uuid.UUID, slots []entity.Availability) error {
	// The real repository deletes and inserts inside one transaction; here a
	// single atomic swap stands in for it.
	kept := []entity.Availability{}
	for _, e := range f.entries {
		if e.GroupID != groupID || e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = append(kept, slots...)
	f.replaceCalls++
	f.lastReplace = slots
	return nil
}

type fakeGroupRepo struct {
	groupRepo.GroupRepositoryInterface
	group  *groupEntity.Group
	member bool
}

func (f *fakeGroupRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*groupEntity.Group, error) {
	return f.group, nil
}

func (f *fakeGroupRepo) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	return f.member, nil
}

func newFixture(member bool) (AvailabilityServiceInterface, *fakeAvailabilityRepo) {
	repo := &fakeAvailabilityRepo{}
	gRepo := &fakeGroupRepo{group: &groupEntity.Group{Name: "Home Crew"}, member: member}
	return NewAvailabilityService(repo, gRepo), repo
}

func TestSetMyAvailability_ReplacesAtomically(t *testing.T) {
	svc, repo := newFixture(true)
	userID := uuid.New()
	groupID := uuid.New()

	// Seed an old week for the same user
	repo.entries = []entity.Availability{
		{GroupID: groupID, UserID: userID, DayOfWeek: 0, TimeSlot: constants.TimeSlotMorning},
	}

	_, appErr := svc.SetMyAvailability(context.Background(), userID, groupID, &dto.PutAvailabilityRequest{
		Slots: []dto.SlotInput{
			{DayOfWeek: 2, TimeSlot: constants.TimeSlotAfternoon},
			{DayOfWeek: 5, TimeSlot: constants.TimeSlotEvening},
		},
	})

	require.Nil(t, appErr)
	assert.Equal(t, 1, repo.replaceCalls)
	require.Len(t, repo.entries, 2)
	assert.Equal(t, 2, repo.entries[0].DayOfWeek)
	assert.Equal(t, 5, repo.entries[1].DayOfWeek)
}

func TestSetMyAvailability_KeepsOtherMembers(t *testing.T) {
	svc, repo := newFixture(true)
	userID := uuid.New()
	otherID := uuid.New()
	groupID := uuid.New()

	repo.entries = []entity.Availability{
		{GroupID: groupID, UserID: otherID, DayOfWeek: 3, TimeSlot: constants.TimeSlotMorning},
	}

	_, appErr := svc.SetMyAvailability(context.Background(), userID, groupID, &dto.PutAvailabilityRequest{
		Slots: []dto.SlotInput{{DayOfWeek: 1, TimeSlot: constants.TimeSlotMorning}},
	})

	require.Nil(t, appErr)
	require.Len(t, repo.entries, 2)
	assert.Equal(t, otherID, repo.entries[0].UserID)
}

func TestSetMyAvailability_RejectsBadDay(t *testing.T) {
	svc, repo := newFixture(true)

	_, appErr := svc.SetMyAvailability(context.Background(), uuid.New(), uuid.New(), &dto.PutAvailabilityRequest{
		Slots: []dto.SlotInput{{DayOfWeek: 7, TimeSlot: constants.TimeSlotMorning}},
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Zero(t, repo.replaceCalls, "invalid input must not touch storage")
}

func TestSetMyAvailability_RejectsBadBand(t *testing.T) {
	svc, repo := newFixture(true)

	_, appErr := svc.SetMyAvailability(context.Background(), uuid.New(), uuid.New(), &dto.PutAvailabilityRequest{
		Slots: []dto.SlotInput{{DayOfWeek: 1, TimeSlot: "Midnight"}},
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Zero(t, repo.replaceCalls)
}

func TestSetMyAvailability_DeduplicatesSlots(t *testing.T) {
	svc, repo := newFixture(true)

	_, appErr := svc.SetMyAvailability(context.Background(), uuid.New(), uuid.New(), &dto.PutAvailabilityRequest{
		Slots: []dto.SlotInput{
			{DayOfWeek: 1, TimeSlot: constants.TimeSlotMorning},
			{DayOfWeek: 1, TimeSlot: constants.TimeSlotMorning},
		},
	})

	require.Nil(t, appErr)
	assert.Len(t, repo.lastReplace, 1)
}

func TestSetMyAvailability_EmptySlotsClearsWeek(t *testing.T) {
	svc, repo := newFixture(true)
	userID := uuid.New()
	groupID := uuid.New()

	repo.entries = []entity.Availability{
		{GroupID: groupID, UserID: userID, DayOfWeek: 4, TimeSlot: constants.TimeSlotEvening},
	}

	resp, appErr := svc.SetMyAvailability(context.Background(), userID, groupID, &dto.PutAvailabilityRequest{})

	require.Nil(t, appErr)
	assert.Empty(t, resp)
	assert.Empty(t, repo.entries)
}

func TestAvailability_NonMemberForbidden(t *testing.T) {
	svc, _ := newFixture(false)

	_, appErr := svc.GetGroupAvailability(context.Background(), uuid.New(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	_, appErr = svc.SetMyAvailability(context.Background(), uuid.New(), uuid.New(), &dto.PutAvailabilityRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}
