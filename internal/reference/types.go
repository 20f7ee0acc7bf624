package reference

// Milestone is a template milestone definition. Name doubles as the join
// key into the name→id table, so it must stay byte-identical with the
// seeded reference rows.
type Milestone struct {
	Name        string   `json:"name"`
	Day         int      `json:"day"`
	DayEnd      int      `json:"day_end,omitempty"`
	Description string   `json:"description,omitempty"`
	Tips        []string `json:"tips,omitempty"`
}

// CycleTemplate describes one treatment protocol family. Immutable
// reference data, loaded once per session and re-fetchable on demand.
type CycleTemplate struct {
	TypeKey     string      `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Duration    int         `json:"duration"`
	Milestones  []Milestone `json:"milestones"`
}

// Stage is the human-readable treatment phase shown for a milestone.
type Stage struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// Snapshot is an immutable view over the three reference tables. All
// derivations take a Snapshot; nothing reads the store mid-computation.
type Snapshot struct {
	// Templates is keyed by normalized cycle-type key.
	Templates map[string]CycleTemplate
	// MilestoneIDs maps normalized cycle-type key → normalized milestone
	// name → stable milestone id.
	MilestoneIDs map[string]map[string]uint
	// Stages maps milestone id → stage, strictly 1:1.
	Stages map[uint]Stage
}

// EmptySnapshot is what a failed refresh installs: dependent computations
// see empty tables and produce "no data" results.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Templates:    map[string]CycleTemplate{},
		MilestoneIDs: map[string]map[string]uint{},
		Stages:       map[uint]Stage{},
	}
}

// Template returns the template for a raw (unnormalized) cycle-type string.
func (snapshot Snapshot) Template(cycleType string) (CycleTemplate, bool) {
	template, ok := snapshot.Templates[NormalizeCycleType(cycleType)]
	return template, ok
}

// MilestoneID resolves a milestone title for a cycle type. Exact match on
// normalized strings only, no fuzzy fallback.
func (snapshot Snapshot) MilestoneID(cycleType string, title string) (uint, bool) {
	ids, ok := snapshot.MilestoneIDs[NormalizeCycleType(cycleType)]
	if !ok {
		return 0, false
	}
	id, ok := ids[NormalizeMilestoneName(title)]
	return id, ok
}
