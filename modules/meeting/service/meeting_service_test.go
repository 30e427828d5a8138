package service

import (
	"context"
	"honeydew-api/core/constants"
	"honeydew-api/core/errors"
	availEntity "honeydew-api/modules/availability/entity"
	groupEntity "honeydew-api/modules/group/entity"
	groupRepo "honeydew-api/modules/group/repository"
	"honeydew-api/modules/meeting/dto"
	"honeydew-api/modules/meeting/entity"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupRepo struct {
	groupRepo.GroupRepositoryInterface
	group   *groupEntity.Group
	members []groupEntity.MemberDetail
	member  bool
}

func (f *fakeGroupRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*groupEntity.Group, error) {
	return f.group, nil
}

func (f *fakeGroupRepo) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	return f.member, nil
}

func (f *fakeGroupRepo) GetMembers(ctx context.Context, groupID uuid.UUID) ([]groupEntity.MemberDetail, error) {
	return f.members, nil
}

type fakeAvailRepo struct {
	entries []availEntity.Availability
}

func (f *fakeAvailRepo) GetByGroup(ctx context.Context, groupID uuid.UUID) ([]availEntity.Availability, error) {
	return f.entries, nil
}

func (f *fakeAvailRepo) ReplaceForUser(ctx context.Context, groupID, userID uuid.UUID, slots []availEntity.Availability) error {
	f.entries = slots
	return nil
}

type fakeMeetingRepo struct {
	confirmedDay  string
	confirmedSlot string
	confirmCalls  int
}

func (f *fakeMeetingRepo) ConfirmMeeting(ctx context.Context, groupID uuid.UUID, day, timeSlot string) error {
	f.confirmedDay = day
	f.confirmedSlot = timeSlot
	f.confirmCalls++
	return nil
}

type meetingFixture struct {
	svc     MeetingServiceInterface
	repo    *fakeMeetingRepo
	groupID uuid.UUID
	userID  uuid.UUID
}

func newMeetingFixture(members []groupEntity.MemberDetail, entries []availEntity.Availability) *meetingFixture {
	groupID := uuid.New()
	userID := members[0].ID

	repo := &fakeMeetingRepo{}
	gRepo := &fakeGroupRepo{
		group:   &groupEntity.Group{Name: "Home Crew"},
		members: members,
		member:  true,
	}
	aRepo := &fakeAvailRepo{entries: entries}

	return &meetingFixture{
		svc:     NewMeetingService(repo, gRepo, aRepo),
		repo:    repo,
		groupID: groupID,
		userID:  userID,
	}
}

func detail(name string) groupEntity.MemberDetail {
	return groupEntity.MemberDetail{ID: uuid.New(), Name: name}
}

func avail(m groupEntity.MemberDetail, day int, slot string) availEntity.Availability {
	return availEntity.Availability{
		UserID:    m.ID,
		UserName:  m.Name,
		DayOfWeek: day,
		TimeSlot:  slot,
	}
}

func TestSuggest_NoAvailabilityGuidance(t *testing.T) {
	alice := detail("Alice")
	f := newMeetingFixture([]groupEntity.MemberDetail{alice}, nil)

	resp, appErr := f.svc.Suggest(context.Background(), f.userID, f.groupID)

	require.Nil(t, appErr)
	assert.Nil(t, resp.Suggestion)
	assert.Empty(t, resp.Alternatives)
	assert.Equal(t, "No availability data yet. Ask your crew to set their availability first!", resp.Message)
}

func TestSuggest_TopAndAlternatives(t *testing.T) {
	alice := detail("Alice")
	bob := detail("Bob")
	members := []groupEntity.MemberDetail{alice, bob}

	f := newMeetingFixture(members, []availEntity.Availability{
		avail(alice, 2, constants.TimeSlotAfternoon),
		avail(bob, 2, constants.TimeSlotAfternoon),
		avail(alice, 3, constants.TimeSlotMorning),
		avail(alice, 4, constants.TimeSlotEvening),
		avail(bob, 5, constants.TimeSlotMorning),
		avail(alice, 6, constants.TimeSlotAfternoon),
	})

	resp, appErr := f.svc.Suggest(context.Background(), f.userID, f.groupID)

	require.Nil(t, appErr)
	require.NotNil(t, resp.Suggestion)
	assert.Equal(t, "Tuesday", resp.Suggestion.Day)
	assert.Equal(t, constants.TimeSlotAfternoon, resp.Suggestion.TimeSlot)
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, resp.Suggestion.Available)
	assert.Len(t, resp.Alternatives, 3)
	assert.Empty(t, resp.Message)
}

func TestSuggest_NotAMember(t *testing.T) {
	alice := detail("Alice")
	groupID := uuid.New()
	gRepo := &fakeGroupRepo{group: &groupEntity.Group{Name: "Home Crew"}, member: false}
	svc := NewMeetingService(&fakeMeetingRepo{}, gRepo, &fakeAvailRepo{})

	_, appErr := svc.Suggest(context.Background(), alice.ID, groupID)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestHandleMeetingAction_AcceptPersistsSlot(t *testing.T) {
	alice := detail("Alice")
	bob := detail("Bob")
	members := []groupEntity.MemberDetail{alice, bob}

	f := newMeetingFixture(members, []availEntity.Availability{
		avail(alice, 1, constants.TimeSlotEvening),
		avail(bob, 1, constants.TimeSlotEvening),
	})

	resp, appErr := f.svc.HandleMeetingAction(context.Background(), f.userID, f.groupID, &dto.MeetingActionRequest{
		Action: entity.ActionAccept,
		Cursor: 0,
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.StateLocked), resp.Status)
	require.NotNil(t, resp.Confirmed)
	assert.Equal(t, "Monday", resp.Confirmed.Day)
	assert.Equal(t, 1, f.repo.confirmCalls)
	assert.Equal(t, "Monday", f.repo.confirmedDay)
	assert.Equal(t, constants.TimeSlotEvening, f.repo.confirmedSlot)
}

func TestHandleMeetingAction_RejectIsPure(t *testing.T) {
	alice := detail("Alice")
	members := []groupEntity.MemberDetail{alice}

	f := newMeetingFixture(members, []availEntity.Availability{
		avail(alice, 1, constants.TimeSlotMorning),
		avail(alice, 2, constants.TimeSlotMorning),
	})

	resp, appErr := f.svc.HandleMeetingAction(context.Background(), f.userID, f.groupID, &dto.MeetingActionRequest{
		Action: entity.ActionReject,
		Cursor: 0,
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.StateProposing), resp.Status)
	assert.Equal(t, 1, resp.Cursor)
	require.NotNil(t, resp.Next)
	assert.Zero(t, f.repo.confirmCalls, "reject must not touch the group")
}

func TestHandleMeetingAction_RejectingEverythingExhausts(t *testing.T) {
	alice := detail("Alice")
	members := []groupEntity.MemberDetail{alice}

	f := newMeetingFixture(members, []availEntity.Availability{
		avail(alice, 1, constants.TimeSlotMorning),
	})

	resp, appErr := f.svc.HandleMeetingAction(context.Background(), f.userID, f.groupID, &dto.MeetingActionRequest{
		Action: entity.ActionReject,
		Cursor: 0,
	})

	require.Nil(t, appErr)
	assert.Equal(t, string(entity.StateExhausted), resp.Status)
	assert.Nil(t, resp.Next)
	assert.NotEmpty(t, resp.Message)
	assert.Zero(t, f.repo.confirmCalls)
}

func TestHandleMeetingAction_PastEndIsInvalidState(t *testing.T) {
	alice := detail("Alice")
	members := []groupEntity.MemberDetail{alice}

	f := newMeetingFixture(members, []availEntity.Availability{
		avail(alice, 1, constants.TimeSlotMorning),
	})

	_, appErr := f.svc.HandleMeetingAction(context.Background(), f.userID, f.groupID, &dto.MeetingActionRequest{
		Action: entity.ActionAccept,
		Cursor: 5,
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidState, appErr.Code)
}
