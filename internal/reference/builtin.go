package reference

// Builtin reference datasets, seeded into the database on first boot and
// loaded back through the Store. The three tables below are deliberately
// independent of each other: milestone identity is re-derived by normalized
// name matching (see DESIGN.md), so names here must match the template
// milestone names exactly.

// BuiltinTemplates returns the four treatment protocol families.
func BuiltinTemplates() []CycleTemplate {
	return []CycleTemplate{
		{
			TypeKey:     TypeIVF,
			Name:        "IVF (fresh cycle)",
			Description: "Ovarian stimulation, egg retrieval, fertilization and a fresh embryo transfer in a single cycle.",
			Duration:    42,
			Milestones: []Milestone{
				{Name: "Cycle day 1", Day: 1, Description: "First day of full menstrual flow. Call the clinic to confirm your schedule.", Tips: []string{"Count only full flow, not spotting.", "Confirm your medication order has arrived."}},
				{Name: "Baseline blood test", Day: 2, DayEnd: 3, Description: "Hormone baseline (E2, LH, FSH) before stimulation starts."},
				{Name: "Baseline ultrasound", Day: 2, DayEnd: 3, Description: "Antral follicle count and lining check."},
				{Name: "Stimulation injections start", Day: 3, Description: "Daily gonadotropin injections begin.", Tips: []string{"Inject at the same time each evening.", "Rotate injection sites."}},
				{Name: "Monitoring blood test", Day: 7, DayEnd: 12, Description: "Repeat hormone levels every one to three days while follicles grow."},
				{Name: "Monitoring ultrasound", Day: 7, DayEnd: 12, Description: "Follicle measurements alongside each blood draw."},
				{Name: "Trigger injection", Day: 12, Description: "hCG or agonist trigger, timed exactly 36 hours before retrieval.", Tips: []string{"Set an alarm; the timing window matters."}},
				{Name: "Egg retrieval", Day: 14, Description: "Retrieval under sedation. Arrange a lift home."},
				{Name: "Fertilization report", Day: 15, Description: "The lab reports how many eggs fertilized overnight."},
				{Name: "Embryo transfer", Day: 17, DayEnd: 19, Description: "Day-3 or day-5 transfer depending on embryo development."},
				{Name: "Pregnancy blood test", Day: 28, DayEnd: 31, Description: "Beta hCG, roughly two weeks after transfer.", Tips: []string{"Home tests before the beta can mislead either way."}},
			},
		},
		{
			TypeKey:     TypeIUI,
			Name:        "IUI",
			Description: "Intrauterine insemination timed to ovulation, with or without oral stimulation.",
			Duration:    28,
			Milestones: []Milestone{
				{Name: "Cycle day 1", Day: 1, Description: "First day of full menstrual flow."},
				{Name: "Baseline blood test", Day: 2, DayEnd: 3, Description: "Baseline hormones before any stimulation."},
				{Name: "Monitoring ultrasound", Day: 10, DayEnd: 12, Description: "Track the lead follicle until it is mature."},
				{Name: "Trigger injection", Day: 12, Description: "Ovulation trigger once the lead follicle is ready."},
				{Name: "Insemination", Day: 14, Description: "Washed sample placed in the uterus. A short visit, no sedation."},
				{Name: "Pregnancy blood test", Day: 28, Description: "Beta hCG two weeks after insemination."},
			},
		},
		{
			TypeKey:     TypeFET,
			Name:        "Frozen embryo transfer",
			Description: "Transfer of a thawed embryo in a medicated or natural cycle.",
			Duration:    35,
			Milestones: []Milestone{
				{Name: "Cycle day 1", Day: 1, Description: "First day of full menstrual flow."},
				{Name: "Baseline blood test", Day: 2, DayEnd: 3, Description: "Baseline hormones and a lining check before estrogen starts."},
				{Name: "Estrogen start", Day: 3, Description: "Estrogen begins to build the uterine lining."},
				{Name: "Lining check ultrasound", Day: 12, DayEnd: 14, Description: "Lining thickness check; progesterone is scheduled from here."},
				{Name: "Progesterone start", Day: 15, Description: "Progesterone support begins; transfer day is locked in.", Tips: []string{"The transfer date is tied to your first progesterone dose, not the calendar."}},
				{Name: "Embryo transfer", Day: 20, Description: "Thaw and transfer. The embryology lab confirms survival that morning."},
				{Name: "Pregnancy blood test", Day: 29, DayEnd: 31, Description: "Beta hCG, roughly ten days after transfer."},
			},
		},
		{
			TypeKey:     TypeEggFreeze,
			Name:        "Egg freezing",
			Description: "Ovarian stimulation and retrieval with cryopreservation instead of fertilization.",
			Duration:    16,
			Milestones: []Milestone{
				{Name: "Cycle day 1", Day: 1, Description: "First day of full menstrual flow."},
				{Name: "Baseline blood test", Day: 2, DayEnd: 3, Description: "Hormone baseline before stimulation."},
				{Name: "Stimulation injections start", Day: 3, Description: "Daily gonadotropin injections begin."},
				{Name: "Monitoring blood test", Day: 7, DayEnd: 12, Description: "Hormone levels every one to three days while follicles grow."},
				{Name: "Trigger injection", Day: 12, Description: "Trigger timed 36 hours before retrieval."},
				{Name: "Egg retrieval", Day: 14, Description: "Retrieval under sedation."},
				{Name: "Egg freezing", Day: 14, Description: "Mature eggs are vitrified the same day."},
			},
		},
	}
}

// BuiltinMilestoneIDs returns the per-family milestone name→id table.
// Ids are stable across releases; never renumber.
func BuiltinMilestoneIDs() map[string]map[string]uint {
	return map[string]map[string]uint{
		TypeIVF: {
			"Cycle day 1":                  101,
			"Baseline blood test":          102,
			"Baseline ultrasound":          103,
			"Stimulation injections start": 104,
			"Monitoring blood test":        105,
			"Monitoring ultrasound":        106,
			"Trigger injection":            107,
			"Egg retrieval":                108,
			"Fertilization report":         109,
			"Embryo transfer":              110,
			"Pregnancy blood test":         111,
		},
		TypeIUI: {
			"Cycle day 1":           201,
			"Baseline blood test":   202,
			"Monitoring ultrasound": 203,
			"Trigger injection":     204,
			"Insemination":          205,
			"Pregnancy blood test":  206,
		},
		TypeFET: {
			"Cycle day 1":             301,
			"Baseline blood test":     302,
			"Estrogen start":          303,
			"Lining check ultrasound": 304,
			"Progesterone start":      305,
			"Embryo transfer":         306,
			"Pregnancy blood test":    307,
		},
		TypeEggFreeze: {
			"Cycle day 1":                  401,
			"Baseline blood test":          402,
			"Stimulation injections start": 403,
			"Monitoring blood test":        404,
			"Trigger injection":            405,
			"Egg retrieval":                406,
			"Egg freezing":                 407,
		},
	}
}

// BuiltinStages returns the milestone-id→stage table. One stage per
// milestone id.
func BuiltinStages() map[uint]Stage {
	return map[uint]Stage{
		101: {Name: "Cycle Start", Details: "Your cycle has begun. The clinic will confirm your baseline appointments."},
		102: {Name: "Baseline Testing", Details: "Baseline blood work and scans establish your starting point."},
		103: {Name: "Baseline Testing", Details: "Baseline blood work and scans establish your starting point."},
		104: {Name: "Stimulation Phase", Details: "Daily injections are growing a group of follicles. Monitoring starts soon."},
		105: {Name: "Monitoring Phase", Details: "Frequent blood work and scans track follicle growth and hormone levels."},
		106: {Name: "Monitoring Phase", Details: "Frequent blood work and scans track follicle growth and hormone levels."},
		107: {Name: "Trigger", Details: "The trigger injection matures your eggs; retrieval is about 36 hours away."},
		108: {Name: "Egg Retrieval", Details: "Eggs are collected under sedation. Rest today."},
		109: {Name: "Fertilization", Details: "The lab is checking how many eggs fertilized and how embryos develop."},
		110: {Name: "Transfer", Details: "An embryo is placed in the uterus. The two-week wait starts now."},
		111: {Name: "Two-Week Wait", Details: "Waiting for the pregnancy blood test. Keep taking prescribed support medication."},

		201: {Name: "Cycle Start", Details: "Your cycle has begun. The clinic will confirm your monitoring schedule."},
		202: {Name: "Baseline Testing", Details: "Baseline blood work establishes your starting point."},
		203: {Name: "Monitoring Phase", Details: "Scans track the lead follicle until it is mature."},
		204: {Name: "Trigger", Details: "The trigger injection sets ovulation; insemination is timed to it."},
		205: {Name: "Insemination", Details: "The insemination itself is quick. The two-week wait starts now."},
		206: {Name: "Two-Week Wait", Details: "Waiting for the pregnancy blood test."},

		301: {Name: "Cycle Start", Details: "Your transfer cycle has begun."},
		302: {Name: "Baseline Testing", Details: "Baseline blood work and a lining check before estrogen starts."},
		303: {Name: "Lining Preparation", Details: "Estrogen is building your uterine lining."},
		304: {Name: "Lining Check", Details: "A scan confirms the lining is ready before progesterone starts."},
		305: {Name: "Progesterone Support", Details: "Progesterone prepares the lining; transfer day is locked in."},
		306: {Name: "Transfer", Details: "A thawed embryo is placed in the uterus. The two-week wait starts now."},
		307: {Name: "Two-Week Wait", Details: "Waiting for the pregnancy blood test. Keep taking prescribed support medication."},

		401: {Name: "Cycle Start", Details: "Your cycle has begun. The clinic will confirm your baseline appointments."},
		402: {Name: "Baseline Testing", Details: "Baseline blood work establishes your starting point."},
		403: {Name: "Stimulation Phase", Details: "Daily injections are growing a group of follicles. Monitoring starts soon."},
		404: {Name: "Monitoring Phase", Details: "Frequent blood work tracks follicle growth and hormone levels."},
		405: {Name: "Trigger", Details: "The trigger injection matures your eggs; retrieval is about 36 hours away."},
		406: {Name: "Egg Retrieval", Details: "Eggs are collected under sedation. Rest today."},
		407: {Name: "Cryopreservation", Details: "Mature eggs are vitrified and stored the same day."},
	}
}
