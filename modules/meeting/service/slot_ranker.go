package service

import (
	"honeydew-api/core/constants"
	"honeydew-api/core/errors"
	"honeydew-api/modules/meeting/entity"
	"sort"
)

// SlotRanker handles the algorithm to rank weekly slots by overlap
type SlotRanker struct{}

// NewSlotRanker creates a new slot ranker
func NewSlotRanker() *SlotRanker {
	return &SlotRanker{}
}

// bandRank orders time bands for tie-breaking. Afternoon wins ties: it is
// the band most households can actually meet in.
var bandRank = map[string]int{
	constants.TimeSlotAfternoon: 0,
	constants.TimeSlotMorning:   1,
	constants.TimeSlotEvening:   2,
}

// timeBands in display order.
var timeBands = [3]string{
	constants.TimeSlotMorning,
	constants.TimeSlotAfternoon,
	constants.TimeSlotEvening,
}

// RankSlots ranks all 21 weekly slots by how many members marked themselves
// available. Slots nobody can make are dropped. The result is deterministic:
// count desc, then band preference, then day of week.
func (sr *SlotRanker) RankSlots(
	members []entity.Member,
	availability []entity.AvailabilityEntry,
) ([]entity.SlotCandidate, *errors.AppError) {

	if len(availability) == 0 {
		return nil, errors.NewAppError(errors.ErrEmptyInput, "No availability data yet", nil)
	}

	// 1. Index who is free for each slot
	type slotKey struct {
		day  int
		band string
	}
	free := make(map[slotKey]map[string]bool)
	for _, e := range availability {
		key := slotKey{day: e.DayOfWeek, band: e.TimeSlot}
		if free[key] == nil {
			free[key] = make(map[string]bool)
		}
		free[key][e.UserID.String()] = true
	}

	// 2. Build a candidate per slot, partitioning members
	candidates := []entity.SlotCandidate{}
	for day := 0; day < 7; day++ {
		for _, band := range timeBands {
			ids := free[slotKey{day: day, band: band}]

			available := []string{}
			unavailable := []string{}
			for _, m := range members {
				if ids[m.ID.String()] {
					available = append(available, m.Name)
				} else {
					unavailable = append(unavailable, m.Name)
				}
			}

			// 3. Drop slots nobody can make
			if len(available) == 0 {
				continue
			}

			candidates = append(candidates, entity.SlotCandidate{
				DayOfWeek:      day,
				Day:            entity.DayNames[day],
				TimeSlot:       band,
				Available:      available,
				Unavailable:    unavailable,
				AvailableCount: len(available),
				TotalMembers:   len(members),
			})
		}
	}

	// 4. Sort: count desc, band preference, day asc
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.AvailableCount != b.AvailableCount {
			return a.AvailableCount > b.AvailableCount
		}
		if bandRank[a.TimeSlot] != bandRank[b.TimeSlot] {
			return bandRank[a.TimeSlot] < bandRank[b.TimeSlot]
		}
		return a.DayOfWeek < b.DayOfWeek
	})

	return candidates, nil
}
