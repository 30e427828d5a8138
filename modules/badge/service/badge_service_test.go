package service

import (
	"context"
	"honeydew-api/modules/badge/entity"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBadgeRepo honors the (user_id, badge_type) unique constraint the way
// the real table does.
type fakeBadgeRepo struct {
	counters entity.BadgeCounters
	grants   []entity.UserBadge
	inserts  int
}

func (f *fakeBadgeRepo) GetCounters(ctx context.Context, userID uuid.UUID) (*entity.BadgeCounters, error) {
	c := f.counters
	return &c, nil
}

func (f *fakeBadgeRepo) InsertIfAbsent(ctx context.Context, userID uuid.UUID, badgeType string) error {
	f.inserts++
	for _, g := range f.grants {
		if g.UserID == userID && g.BadgeType == badgeType {
			return nil
		}
	}
	f.grants = append(f.grants, entity.UserBadge{
		ID:        uuid.New(),
		UserID:    userID,
		BadgeType: badgeType,
		EarnedAt:  time.Now().Add(time.Duration(len(f.grants)) * time.Millisecond),
	})
	return nil
}

func (f *fakeBadgeRepo) GetUserBadges(ctx context.Context, userID uuid.UUID) ([]entity.UserBadge, error) {
	out := make([]entity.UserBadge, 0, len(f.grants))
	for _, g := range f.grants {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func badgeTypes(grants []entity.UserBadge) []string {
	types := make([]string, 0, len(grants))
	for _, g := range grants {
		types = append(types, g.BadgeType)
	}
	return types
}

func TestEvaluateAndGrant_NoActivityNoBadges(t *testing.T) {
	repo := &fakeBadgeRepo{}
	svc := NewBadgeService(repo)

	badges, appErr := svc.EvaluateAndGrant(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.Empty(t, badges)
}

func TestEvaluateAndGrant_Thresholds(t *testing.T) {
	repo := &fakeBadgeRepo{counters: entity.BadgeCounters{
		TasksCreated:   5,
		TasksCompleted: 1,
		Memberships:    1,
	}}
	svc := NewBadgeService(repo)

	badges, appErr := svc.EvaluateAndGrant(context.Background(), uuid.New())

	require.Nil(t, appErr)
	types := make([]string, 0, len(badges))
	for _, b := range badges {
		types = append(types, b.BadgeType)
	}
	assert.ElementsMatch(t, []string{"first_task", "five_tasks", "first_complete", "first_group"}, types)
}

func TestEvaluateAndGrant_Idempotent(t *testing.T) {
	userID := uuid.New()
	repo := &fakeBadgeRepo{counters: entity.BadgeCounters{TasksCreated: 10, TasksCompleted: 10, Memberships: 2, MealLeadGroups: 1}}
	svc := NewBadgeService(repo)

	first, appErr := svc.EvaluateAndGrant(context.Background(), userID)
	require.Nil(t, appErr)
	assert.Len(t, first, 8)

	second, appErr := svc.EvaluateAndGrant(context.Background(), userID)
	require.Nil(t, appErr)
	assert.Equal(t, len(first), len(second))
	assert.Len(t, repo.grants, 8, "re-evaluation must not duplicate grants")
}

func TestEvaluateAndGrant_MonotonicWhenCountersDrop(t *testing.T) {
	userID := uuid.New()
	repo := &fakeBadgeRepo{counters: entity.BadgeCounters{TasksCreated: 6}}
	svc := NewBadgeService(repo)

	first, appErr := svc.EvaluateAndGrant(context.Background(), userID)
	require.Nil(t, appErr)
	require.Len(t, first, 2)

	// Tasks deleted; counters drop below the five_tasks threshold
	repo.counters = entity.BadgeCounters{TasksCreated: 1}

	second, appErr := svc.EvaluateAndGrant(context.Background(), userID)
	require.Nil(t, appErr)
	assert.ElementsMatch(t, []string{"first_task", "five_tasks"}, badgeTypes(repo.grants))
	assert.Len(t, second, 2, "badges are never revoked")
}

func TestEvaluateAndGrant_OrderedByEarnedAt(t *testing.T) {
	userID := uuid.New()
	repo := &fakeBadgeRepo{counters: entity.BadgeCounters{TasksCreated: 1}}
	svc := NewBadgeService(repo)

	_, appErr := svc.EvaluateAndGrant(context.Background(), userID)
	require.Nil(t, appErr)

	repo.counters.Memberships = 1
	badges, appErr := svc.EvaluateAndGrant(context.Background(), userID)
	require.Nil(t, appErr)

	require.Len(t, badges, 2)
	assert.Equal(t, "first_task", badges[0].BadgeType)
	assert.Equal(t, "first_group", badges[1].BadgeType)
	assert.True(t, !badges[1].EarnedAt.Before(badges[0].EarnedAt))
}

func TestGetBadges_ReturnsFullCatalog(t *testing.T) {
	repo := &fakeBadgeRepo{counters: entity.BadgeCounters{MealLeadGroups: 1}}
	svc := NewBadgeService(repo)

	resp, appErr := svc.GetBadges(context.Background(), uuid.New())

	require.Nil(t, appErr)
	require.Len(t, resp.Badges, 1)
	assert.Equal(t, "meal_lead", resp.Badges[0].BadgeType)
	assert.Equal(t, "Chef's Kiss", resp.Badges[0].Name)
	assert.Len(t, resp.Definitions, 8)
}
