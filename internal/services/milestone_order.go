package services

import (
	"sort"
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/reference"
)

// canonicalOrders maps each cycle-type family to the expected real-world
// sequence of its milestones. This is data-driven dispatch: a new cycle
// type is a new table entry, not a new Go type. Families without an entry
// sort purely by day number.
var canonicalOrders = map[string][]string{
	reference.TypeIVF: {
		"Cycle day 1",
		"Baseline blood test",
		"Baseline ultrasound",
		"Stimulation injections start",
		"Monitoring blood test",
		"Monitoring ultrasound",
		"Trigger injection",
		"Egg retrieval",
		"Fertilization report",
		"Embryo transfer",
		"Pregnancy blood test",
	},
	reference.TypeIUI: {
		"Cycle day 1",
		"Baseline blood test",
		"Monitoring ultrasound",
		"Trigger injection",
		"Insemination",
		"Pregnancy blood test",
	},
	reference.TypeFET: {
		"Cycle day 1",
		"Baseline blood test",
		"Estrogen start",
		"Lining check ultrasound",
		"Progesterone start",
		"Embryo transfer",
		"Pregnancy blood test",
	},
	reference.TypeEggFreeze: {
		"Cycle day 1",
		"Baseline blood test",
		"Stimulation injections start",
		"Monitoring blood test",
		"Trigger injection",
		"Egg retrieval",
		"Egg freezing",
	},
}

// canonicalRanks returns normalized-name → position for a cycle type, or
// nil when the family has no canonical order.
func canonicalRanks(cycleType string) map[string]int {
	names, ok := canonicalOrders[reference.NormalizeCycleType(cycleType)]
	if !ok {
		return nil
	}
	ranks := make(map[string]int, len(names))
	for index, name := range names {
		ranks[reference.NormalizeMilestoneName(name)] = index
	}
	return ranks
}

// OrderedMilestones sorts template milestones by the canonical sequence for
// the cycle type. Milestones absent from the canonical list sort after the
// present ones, among themselves by day number; without a canonical list
// the whole set sorts by day. The sort is stable, so equal ranks and equal
// days keep their input order. The input slice is not mutated.
func OrderedMilestones(cycleType string, milestones []reference.Milestone) []reference.Milestone {
	sorted := append([]reference.Milestone(nil), milestones...)
	ranks := canonicalRanks(cycleType)

	if ranks == nil {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Day < sorted[j].Day
		})
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		rankI, okI := ranks[reference.NormalizeMilestoneName(sorted[i].Name)]
		rankJ, okJ := ranks[reference.NormalizeMilestoneName(sorted[j].Name)]
		switch {
		case okI && okJ:
			return rankI < rankJ
		case okI:
			return true
		case okJ:
			return false
		default:
			return sorted[i].Day < sorted[j].Day
		}
	})
	return sorted
}

// MilestoneForDay finds the milestone that owns a treatment day. A
// milestone owns day d when day <= d <= dayEnd (dayEnd defaulting to day).
// The first exact range match wins; failing that, the last milestone whose
// start day is <= d; failing that, the first milestone. Nil only for an
// empty list, for any day value.
func MilestoneForDay(cycleType string, day int, milestones []reference.Milestone) *reference.Milestone {
	sorted := OrderedMilestones(cycleType, milestones)
	if len(sorted) == 0 {
		return nil
	}

	var best *reference.Milestone
	for index := range sorted {
		milestone := &sorted[index]
		end := milestone.DayEnd
		if end == 0 {
			end = milestone.Day
		}
		if milestone.Day <= day && day <= end {
			return milestone
		}
		if milestone.Day <= day {
			best = milestone
		}
	}
	if best != nil {
		return best
	}
	return &sorted[0]
}

// OrderedUserMilestones sorts persisted milestone rows for display with the
// same canonical-rank rule, falling back to expected date for titles the
// canonical list does not know.
func OrderedUserMilestones(cycleType string, milestones []models.UserMilestone) []models.UserMilestone {
	sorted := append([]models.UserMilestone(nil), milestones...)
	ranks := canonicalRanks(cycleType)

	expectedDate := func(milestone models.UserMilestone) time.Time {
		if milestone.Date != nil {
			return *milestone.Date
		}
		if milestone.StartDate != nil {
			return *milestone.StartDate
		}
		return time.Time{}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		rankI, okI := 0, false
		rankJ, okJ := 0, false
		if ranks != nil {
			rankI, okI = ranks[reference.NormalizeMilestoneName(sorted[i].Title)]
			rankJ, okJ = ranks[reference.NormalizeMilestoneName(sorted[j].Title)]
		}
		switch {
		case okI && okJ:
			return rankI < rankJ
		case okI:
			return true
		case okJ:
			return false
		default:
			return expectedDate(sorted[i]).Before(expectedDate(sorted[j]))
		}
	})
	return sorted
}
