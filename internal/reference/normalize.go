package reference

import "strings"

// Cycle-type family keys. Every lookup table in this package and in the
// services layer is keyed by one of these.
const (
	TypeIVF       = "IVF"
	TypeIUI       = "IUI"
	TypeFET       = "FET"
	TypeEggFreeze = "EGG_FREEZ"
)

var cycleTypeSynonyms = map[string]string{
	"IVF":          TypeIVF,
	"IVF_FRESH":    TypeIVF,
	"IUI":          TypeIUI,
	"FET":          TypeFET,
	"IVF_FROZEN":   TypeFET,
	"EGG_FREEZ":    TypeEggFreeze,
	"EGG_FREEZING": TypeEggFreeze,
}

// NormalizeCycleType uppercases, swaps hyphens for underscores and maps the
// result through the synonym table. Unknown types come back normalized but
// unmapped, so their lookups simply miss.
func NormalizeCycleType(raw string) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	if canonical, ok := cycleTypeSynonyms[key]; ok {
		return canonical
	}
	return key
}

// NormalizeMilestoneName lowercases, treats hyphens as spaces and collapses
// whitespace runs, so "Cycle Day 1" and "cycle-day 1" resolve identically.
// This is the only normalization the exact-match lookups apply.
func NormalizeMilestoneName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "-", " ")
	return strings.Join(strings.Fields(name), " ")
}
