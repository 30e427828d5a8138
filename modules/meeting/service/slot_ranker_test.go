package service

import (
	"honeydew-api/core/constants"
	"honeydew-api/core/errors"
	"honeydew-api/modules/meeting/entity"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(name string) entity.Member {
	return entity.Member{ID: uuid.New(), Name: name}
}

func entry(m entity.Member, day int, slot string) entity.AvailabilityEntry {
	return entity.AvailabilityEntry{
		UserID:    m.ID,
		UserName:  m.Name,
		DayOfWeek: day,
		TimeSlot:  slot,
	}
}

func TestRankSlots_EmptyAvailability(t *testing.T) {
	ranker := NewSlotRanker()
	alice := member("Alice")

	ranked, appErr := ranker.RankSlots([]entity.Member{alice}, nil)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrEmptyInput, appErr.Code)
	assert.Nil(t, ranked)
}

func TestRankSlots_DropsSlotsNobodyCanMake(t *testing.T) {
	ranker := NewSlotRanker()
	alice := member("Alice")
	bob := member("Bob")

	ranked, appErr := ranker.RankSlots(
		[]entity.Member{alice, bob},
		[]entity.AvailabilityEntry{
			entry(alice, 1, constants.TimeSlotMorning),
		},
	)

	require.Nil(t, appErr)
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].DayOfWeek)
	assert.Equal(t, "Monday", ranked[0].Day)
	assert.Equal(t, constants.TimeSlotMorning, ranked[0].TimeSlot)
}

func TestRankSlots_PartitionsMembers(t *testing.T) {
	ranker := NewSlotRanker()
	alice := member("Alice")
	bob := member("Bob")
	cara := member("Cara")

	ranked, appErr := ranker.RankSlots(
		[]entity.Member{alice, bob, cara},
		[]entity.AvailabilityEntry{
			entry(alice, 3, constants.TimeSlotEvening),
			entry(bob, 3, constants.TimeSlotEvening),
		},
	)

	require.Nil(t, appErr)
	require.Len(t, ranked, 1)
	top := ranked[0]
	assert.Equal(t, []string{"Alice", "Bob"}, top.Available)
	assert.Equal(t, []string{"Cara"}, top.Unavailable)
	assert.Equal(t, 2, top.AvailableCount)
	assert.Equal(t, 3, top.TotalMembers)
}

func TestRankSlots_SortsByCountDesc(t *testing.T) {
	ranker := NewSlotRanker()
	alice := member("Alice")
	bob := member("Bob")

	ranked, appErr := ranker.RankSlots(
		[]entity.Member{alice, bob},
		[]entity.AvailabilityEntry{
			entry(alice, 2, constants.TimeSlotMorning),
			entry(alice, 5, constants.TimeSlotEvening),
			entry(bob, 5, constants.TimeSlotEvening),
		},
	)

	require.Nil(t, appErr)
	require.Len(t, ranked, 2)
	assert.Equal(t, 5, ranked[0].DayOfWeek)
	assert.Equal(t, constants.TimeSlotEvening, ranked[0].TimeSlot)
	assert.Equal(t, 2, ranked[0].AvailableCount)
	assert.Equal(t, 1, ranked[1].AvailableCount)
}

func TestRankSlots_TieBreaksAfternoonFirst(t *testing.T) {
	ranker := NewSlotRanker()
	alice := member("Alice")

	// Same day, same count, all three bands
	ranked, appErr := ranker.RankSlots(
		[]entity.Member{alice},
		[]entity.AvailabilityEntry{
			entry(alice, 4, constants.TimeSlotMorning),
			entry(alice, 4, constants.TimeSlotAfternoon),
			entry(alice, 4, constants.TimeSlotEvening),
		},
	)

	require.Nil(t, appErr)
	require.Len(t, ranked, 3)
	assert.Equal(t, constants.TimeSlotAfternoon, ranked[0].TimeSlot)
	assert.Equal(t, constants.TimeSlotMorning, ranked[1].TimeSlot)
	assert.Equal(t, constants.TimeSlotEvening, ranked[2].TimeSlot)
}

func TestRankSlots_TieBreaksDayAscending(t *testing.T) {
	ranker := NewSlotRanker()
	alice := member("Alice")

	// Same count, same band, different days
	ranked, appErr := ranker.RankSlots(
		[]entity.Member{alice},
		[]entity.AvailabilityEntry{
			entry(alice, 6, constants.TimeSlotAfternoon),
			entry(alice, 0, constants.TimeSlotAfternoon),
			entry(alice, 3, constants.TimeSlotAfternoon),
		},
	)

	require.Nil(t, appErr)
	require.Len(t, ranked, 3)
	assert.Equal(t, 0, ranked[0].DayOfWeek)
	assert.Equal(t, "Sunday", ranked[0].Day)
	assert.Equal(t, 3, ranked[1].DayOfWeek)
	assert.Equal(t, 6, ranked[2].DayOfWeek)
}

func TestRankSlots_Deterministic(t *testing.T) {
	ranker := NewSlotRanker()
	members := []entity.Member{member("Alice"), member("Bob"), member("Cara")}
	entries := []entity.AvailabilityEntry{
		entry(members[0], 1, constants.TimeSlotMorning),
		entry(members[1], 1, constants.TimeSlotMorning),
		entry(members[2], 2, constants.TimeSlotAfternoon),
		entry(members[0], 2, constants.TimeSlotAfternoon),
		entry(members[1], 6, constants.TimeSlotEvening),
	}

	first, appErr := ranker.RankSlots(members, entries)
	require.Nil(t, appErr)

	for i := 0; i < 10; i++ {
		again, appErr := ranker.RankSlots(members, entries)
		require.Nil(t, appErr)
		assert.Equal(t, first, again)
	}
}

func TestRankSlots_FullWeekOverlap(t *testing.T) {
	ranker := NewSlotRanker()
	alice := member("Alice")
	bob := member("Bob")

	entries := []entity.AvailabilityEntry{}
	for day := 0; day < 7; day++ {
		for _, band := range []string{constants.TimeSlotMorning, constants.TimeSlotAfternoon, constants.TimeSlotEvening} {
			entries = append(entries, entry(alice, day, band), entry(bob, day, band))
		}
	}

	ranked, appErr := ranker.RankSlots([]entity.Member{alice, bob}, entries)

	require.Nil(t, appErr)
	// All 21 slots survive when everyone is always free
	assert.Len(t, ranked, 21)
	// Afternoon on Sunday wins the global tie
	assert.Equal(t, 0, ranked[0].DayOfWeek)
	assert.Equal(t, constants.TimeSlotAfternoon, ranked[0].TimeSlot)
}
