package reference

import "testing"

// The three builtin tables are independent by design but must stay
// mutually consistent: every template milestone needs an id, every id
// needs a stage.
func TestBuiltinTablesParity(t *testing.T) {
	t.Parallel()

	snapshot := BuiltinSnapshot()

	for typeKey, template := range snapshot.Templates {
		ids, ok := snapshot.MilestoneIDs[typeKey]
		if !ok {
			t.Fatalf("no milestone id table for family %q", typeKey)
		}
		for _, milestone := range template.Milestones {
			id, ok := ids[NormalizeMilestoneName(milestone.Name)]
			if !ok {
				t.Fatalf("template milestone %q (%s) has no id entry", milestone.Name, typeKey)
			}
			if _, ok := snapshot.Stages[id]; !ok {
				t.Fatalf("milestone %q (%s, id %d) has no stage", milestone.Name, typeKey, id)
			}
		}
	}
}

func TestBuiltinMilestoneIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[uint]string{}
	for typeKey, names := range BuiltinMilestoneIDs() {
		for name, id := range names {
			if previous, dup := seen[id]; dup {
				t.Fatalf("milestone id %d assigned to both %q and %q (%s)", id, previous, name, typeKey)
			}
			seen[id] = name
		}
	}
}

func TestBuiltinTemplateDaysWithinDuration(t *testing.T) {
	t.Parallel()

	for _, template := range BuiltinTemplates() {
		for _, milestone := range template.Milestones {
			if milestone.Day < 1 {
				t.Fatalf("%s: milestone %q has day %d", template.TypeKey, milestone.Name, milestone.Day)
			}
			if milestone.DayEnd != 0 && milestone.DayEnd < milestone.Day {
				t.Fatalf("%s: milestone %q ends before it starts", template.TypeKey, milestone.Name)
			}
			if milestone.Day > template.Duration {
				t.Fatalf("%s: milestone %q starts past the template duration", template.TypeKey, milestone.Name)
			}
		}
	}
}

func TestNormalizeCycleType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"IVF", TypeIVF},
		{"ivf-fresh", TypeIVF},
		{"IVF_FROZEN", TypeFET},
		{"fet", TypeFET},
		{"egg-freezing", TypeEggFreeze},
		{"EGG_FREEZ", TypeEggFreeze},
		{"iui", TypeIUI},
		{" natural ", "NATURAL"},
	}
	for _, testCase := range cases {
		if got := NormalizeCycleType(testCase.raw); got != testCase.want {
			t.Fatalf("NormalizeCycleType(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}

func TestNormalizeMilestoneName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"Cycle day 1", "cycle day 1"},
		{"  Cycle   Day 1 ", "cycle day 1"},
		{"baseline-blood-test", "baseline blood test"},
		{"EGG RETRIEVAL", "egg retrieval"},
	}
	for _, testCase := range cases {
		if got := NormalizeMilestoneName(testCase.raw); got != testCase.want {
			t.Fatalf("NormalizeMilestoneName(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}
