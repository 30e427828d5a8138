package service

import (
	"context"
	"honeydew-api/core/errors"
	authEntity "honeydew-api/modules/auth/entity"
	authRepository "honeydew-api/modules/auth/repository"
	"honeydew-api/modules/group/dto"
	"honeydew-api/modules/group/entity"
	"honeydew-api/modules/group/repository"
	taskRepository "honeydew-api/modules/task/repository"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGroupRepo struct {
	repository.GroupRepositoryInterface
	groups          map[uuid.UUID]*entity.Group
	byCode          map[string]*entity.Group
	latestByCreator map[uuid.UUID]*entity.Group
	members         map[uuid.UUID]map[uuid.UUID]bool
	memberDetails   map[uuid.UUID][]entity.MemberDetail
	mealLead        map[uuid.UUID]uuid.UUID
}

func newStubGroupRepo() *stubGroupRepo {
	return &stubGroupRepo{
		groups:          map[uuid.UUID]*entity.Group{},
		byCode:          map[string]*entity.Group{},
		latestByCreator: map[uuid.UUID]*entity.Group{},
		members:         map[uuid.UUID]map[uuid.UUID]bool{},
		memberDetails:   map[uuid.UUID][]entity.MemberDetail{},
		mealLead:        map[uuid.UUID]uuid.UUID{},
	}
}

func (s *stubGroupRepo) addGroup(g *entity.Group) {
	s.groups[g.ID] = g
	s.byCode[g.InviteCode] = g
	s.latestByCreator[g.CreatorID] = g
	if s.members[g.ID] == nil {
		s.members[g.ID] = map[uuid.UUID]bool{}
	}
	s.members[g.ID][g.CreatorID] = true
}

func (s *stubGroupRepo) CreateGroup(ctx context.Context, group *entity.Group) (*entity.Group, error) {
	created := *group
	created.ID = uuid.New()
	s.addGroup(&created)
	return &created, nil
}

func (s *stubGroupRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	return s.groups[id], nil
}

func (s *stubGroupRepo) GetGroupByInviteCode(ctx context.Context, code string) (*entity.Group, error) {
	return s.byCode[code], nil
}

func (s *stubGroupRepo) GetLatestGroupByCreator(ctx context.Context, creatorID uuid.UUID) (*entity.Group, error) {
	return s.latestByCreator[creatorID], nil
}

func (s *stubGroupRepo) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	return s.members[groupID][userID], nil
}

func (s *stubGroupRepo) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	s.members[groupID][userID] = true
	return nil
}

func (s *stubGroupRepo) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	delete(s.members[groupID], userID)
	return nil
}

func (s *stubGroupRepo) GetMembers(ctx context.Context, groupID uuid.UUID) ([]entity.MemberDetail, error) {
	return s.memberDetails[groupID], nil
}

func (s *stubGroupRepo) CountMembers(ctx context.Context, groupID uuid.UUID) (int, error) {
	return len(s.members[groupID]), nil
}

func (s *stubGroupRepo) SetMealLead(ctx context.Context, groupID, userID uuid.UUID) error {
	s.mealLead[groupID] = userID
	return nil
}

type stubAuthRepo struct {
	authRepository.AuthRepositoryInterface
	byPhone map[string]*authEntity.User
}

func (s *stubAuthRepo) GetUserByPhone(ctx context.Context, phone string) (*authEntity.User, error) {
	return s.byPhone[phone], nil
}

type stubTaskRepo struct {
	taskRepository.TaskRepositoryInterface
}

func newGroupService(repo *stubGroupRepo, aRepo *stubAuthRepo, seed int64) GroupServiceInterface {
	return NewGroupService(repo, aRepo, &stubTaskRepo{}, nil, rand.New(rand.NewSource(seed)))
}

func seededGroup(repo *stubGroupRepo, creatorID uuid.UUID) *entity.Group {
	g := &entity.Group{Name: "Home Crew", Slug: "home-crew", CreatorID: creatorID, InviteCode: "AB12CD"}
	g.ID = uuid.New()
	repo.addGroup(g)
	return g
}

func TestCreateGroup_SlugAndInviteCode(t *testing.T) {
	repo := newStubGroupRepo()
	svc := newGroupService(repo, &stubAuthRepo{}, 1)

	resp, appErr := svc.CreateGroup(context.Background(), uuid.New(), &dto.CreateGroupRequest{Name: "The Home Crew"})

	require.Nil(t, appErr)
	assert.Equal(t, "the-home-crew", resp.Slug)
	assert.Len(t, resp.InviteCode, 6)
	assert.Equal(t, 1, resp.MemberCount, "creator auto-joins")
}

func TestCreateGroup_BlankNameRejected(t *testing.T) {
	svc := newGroupService(newStubGroupRepo(), &stubAuthRepo{}, 1)

	_, appErr := svc.CreateGroup(context.Background(), uuid.New(), &dto.CreateGroupRequest{Name: "   "})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestJoinGroup_ByInviteCode(t *testing.T) {
	repo := newStubGroupRepo()
	creator := uuid.New()
	g := seededGroup(repo, creator)
	svc := newGroupService(repo, &stubAuthRepo{}, 1)

	joiner := uuid.New()
	resp, appErr := svc.JoinGroup(context.Background(), joiner, &dto.JoinGroupRequest{InviteCode: "ab12cd"})

	require.Nil(t, appErr)
	assert.Equal(t, g.ID.String(), resp.ID)
	assert.True(t, repo.members[g.ID][joiner])
}

func TestJoinGroup_ByPhoneUsesCreatorsLatestGroup(t *testing.T) {
	repo := newStubGroupRepo()
	creator := &authEntity.User{Name: "Dana", Phone: "555-0101"}
	creator.ID = uuid.New()
	g := seededGroup(repo, creator.ID)
	aRepo := &stubAuthRepo{byPhone: map[string]*authEntity.User{"555-0101": creator}}
	svc := newGroupService(repo, aRepo, 1)

	resp, appErr := svc.JoinGroup(context.Background(), uuid.New(), &dto.JoinGroupRequest{Phone: "555-0101"})

	require.Nil(t, appErr)
	assert.Equal(t, g.ID.String(), resp.ID)
}

func TestJoinGroup_AlreadyMemberConflict(t *testing.T) {
	repo := newStubGroupRepo()
	creator := uuid.New()
	seededGroup(repo, creator)
	svc := newGroupService(repo, &stubAuthRepo{}, 1)

	_, appErr := svc.JoinGroup(context.Background(), creator, &dto.JoinGroupRequest{InviteCode: "AB12CD"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestJoinGroup_UnknownCodeNotFound(t *testing.T) {
	svc := newGroupService(newStubGroupRepo(), &stubAuthRepo{}, 1)

	_, appErr := svc.JoinGroup(context.Background(), uuid.New(), &dto.JoinGroupRequest{InviteCode: "ZZZZZZ"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestRemoveMember_CreatorOnly(t *testing.T) {
	repo := newStubGroupRepo()
	creator := uuid.New()
	g := seededGroup(repo, creator)
	outsider := uuid.New()
	target := uuid.New()
	repo.members[g.ID][target] = true
	svc := newGroupService(repo, &stubAuthRepo{}, 1)

	appErr := svc.RemoveMember(context.Background(), outsider, g.ID, target)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	appErr = svc.RemoveMember(context.Background(), creator, g.ID, target)
	assert.Nil(t, appErr)
	assert.False(t, repo.members[g.ID][target])
}

func TestRemoveMember_CreatorCannotRemoveSelf(t *testing.T) {
	repo := newStubGroupRepo()
	creator := uuid.New()
	g := seededGroup(repo, creator)
	svc := newGroupService(repo, &stubAuthRepo{}, 1)

	appErr := svc.RemoveMember(context.Background(), creator, g.ID, creator)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestAssignMealLead_SeededSelection(t *testing.T) {
	repo := newStubGroupRepo()
	creator := uuid.New()
	g := seededGroup(repo, creator)

	details := []entity.MemberDetail{
		{ID: creator, Name: "Dana"},
		{ID: uuid.New(), Name: "Eli"},
		{ID: uuid.New(), Name: "Fay"},
	}
	repo.memberDetails[g.ID] = details

	svc := newGroupService(repo, &stubAuthRepo{}, 42)

	resp, appErr := svc.AssignMealLead(context.Background(), creator, g.ID)

	require.Nil(t, appErr)
	expected := details[rand.New(rand.NewSource(42)).Intn(3)]
	assert.Equal(t, expected.ID.String(), resp.ID)
	assert.Equal(t, expected.Name, resp.Name)
	assert.Equal(t, expected.ID, repo.mealLead[g.ID])
}
