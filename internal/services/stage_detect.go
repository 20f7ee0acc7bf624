package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/reference"
)

var (
	// ErrUnknownMilestone means an active milestone title has no entry in
	// the name→id table for its cycle type. This is a data-integrity
	// problem worth surfacing, never silently substituted.
	ErrUnknownMilestone = errors.New("milestone title not found in reference table")

	// ErrStageNotFound means a resolved milestone id has no stage row.
	// Malformed reference data, not a recoverable condition.
	ErrStageNotFound = errors.New("no stage mapped for milestone id")

	// ErrNoReferenceData means the snapshot has no milestone table at all
	// for the cycle type. Callers render a neutral "no data yet" state.
	ErrNoReferenceData = errors.New("no reference data for cycle type")
)

const (
	StageSourceCurrentMilestone = "current_milestone"
	StageSourceFirstMilestone   = "first_milestone"
)

// firstMilestonePriority is tried in order when a cycle has no active
// milestone yet (fresh cycle, nothing started or completed).
var firstMilestonePriority = []string{
	"Cycle day 1",
	"Baseline blood test",
	"Stimulation injections start",
	"Monitoring blood test",
}

// StageResult is what the stage view renders. Confidence is always "high":
// both success paths resolve through exact lookups, there is no scored
// branch.
type StageResult struct {
	Stage       reference.Stage `json:"stage"`
	MilestoneID uint            `json:"milestone_id"`
	Source      string          `json:"source"`
	Confidence  string          `json:"confidence"`
}

// DetectStage maps the user's current milestone to a treatment stage.
// Synchronous and pure: all data comes in as arguments. currentDay is part
// of the contract for callers that already computed it, but resolution is
// driven by milestone status, not day arithmetic.
func DetectStage(cycle models.Cycle, milestones []models.UserMilestone, currentDay int, snapshot reference.Snapshot) (StageResult, error) {
	_ = currentDay

	typeKey := reference.NormalizeCycleType(cycle.Type)
	ids := snapshot.MilestoneIDs[typeKey]

	active := latestActiveMilestone(milestones)

	var milestoneID uint
	var source string

	if active == nil {
		if len(ids) == 0 {
			return StageResult{}, fmt.Errorf("%w: %s", ErrNoReferenceData, typeKey)
		}
		milestoneID = firstMilestoneID(ids)
		source = StageSourceFirstMilestone
	} else {
		id, ok := ids[reference.NormalizeMilestoneName(active.Title)]
		if !ok {
			return StageResult{}, fmt.Errorf("%w: %q for cycle type %s", ErrUnknownMilestone, active.Title, typeKey)
		}
		milestoneID = id
		source = StageSourceCurrentMilestone
	}

	stage, ok := snapshot.Stages[milestoneID]
	if !ok {
		return StageResult{}, fmt.Errorf("%w: %d", ErrStageNotFound, milestoneID)
	}

	return StageResult{
		Stage:       stage,
		MilestoneID: milestoneID,
		Source:      source,
		Confidence:  "high",
	}, nil
}

// latestActiveMilestone picks the milestone the user is "on": in-progress
// rows beat completed ones, and within a status the most recent start date
// (expected date when start is absent) wins. Ties keep list order. Nil when
// nothing is in progress or completed.
func latestActiveMilestone(milestones []models.UserMilestone) *models.UserMilestone {
	pick := func(status string) *models.UserMilestone {
		var best *models.UserMilestone
		var bestAt time.Time
		for index := range milestones {
			milestone := &milestones[index]
			if milestone.Status != status {
				continue
			}
			at := milestoneAnchorDate(milestone)
			if best == nil || at.After(bestAt) {
				best = milestone
				bestAt = at
			}
		}
		return best
	}

	if milestone := pick(models.MilestoneInProgress); milestone != nil {
		return milestone
	}
	return pick(models.MilestoneCompleted)
}

func milestoneAnchorDate(milestone *models.UserMilestone) time.Time {
	if milestone.StartDate != nil {
		return *milestone.StartDate
	}
	if milestone.Date != nil {
		return *milestone.Date
	}
	return time.Time{}
}

// firstMilestoneID walks the priority list against the name→id table and
// falls back to the lowest id in the table when none of the priority names
// resolve. Keeps the result deterministic across map iteration order.
func firstMilestoneID(ids map[string]uint) uint {
	for _, name := range firstMilestonePriority {
		if id, ok := ids[reference.NormalizeMilestoneName(name)]; ok {
			return id
		}
	}

	var lowest uint
	for _, id := range ids {
		if lowest == 0 || id < lowest {
			lowest = id
		}
	}
	return lowest
}
