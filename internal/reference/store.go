package reference

import (
	"log"
	"sync"
)

// LoaderFunc fetches the three reference tables from wherever they live
// (in practice the database). The store owns retry-free, wholesale refresh
// semantics; partial updates are not a thing.
type LoaderFunc func() (Snapshot, error)

// Store is an explicit, caller-owned cache of reference data. Construct it
// once, inject it where needed, and call Refresh when the data should be
// re-fetched. Reads always see a complete snapshot.
type Store struct {
	mu       sync.RWMutex
	loader   LoaderFunc
	snapshot Snapshot
}

func NewStore(loader LoaderFunc) *Store {
	return &Store{
		loader:   loader,
		snapshot: EmptySnapshot(),
	}
}

// Snapshot returns the current reference tables. Never nil maps.
func (store *Store) Snapshot() Snapshot {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.snapshot
}

// Refresh re-fetches the reference tables wholesale. A failed fetch is
// logged and leaves an empty snapshot behind, so dependent computations
// produce "no data" results instead of seeing the fetch error.
func (store *Store) Refresh() error {
	snapshot, err := store.loader()
	if err != nil {
		log.Printf("reference refresh failed, serving empty tables: %v", err)
		store.install(EmptySnapshot())
		return err
	}
	store.install(snapshot)
	return nil
}

// Invalidate drops the cached tables without re-fetching.
func (store *Store) Invalidate() {
	store.install(EmptySnapshot())
}

func (store *Store) install(snapshot Snapshot) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.snapshot = snapshot
}

// BuildSnapshot assembles a snapshot from raw tables, normalizing every
// lookup key. Loaders and tests should build snapshots through this so
// lookup normalization stays in one place.
func BuildSnapshot(templates []CycleTemplate, milestoneIDs map[string]map[string]uint, stages map[uint]Stage) Snapshot {
	snapshot := EmptySnapshot()
	for _, template := range templates {
		snapshot.Templates[NormalizeCycleType(template.TypeKey)] = template
	}
	for typeKey, names := range milestoneIDs {
		normalized := make(map[string]uint, len(names))
		for name, id := range names {
			normalized[NormalizeMilestoneName(name)] = id
		}
		snapshot.MilestoneIDs[NormalizeCycleType(typeKey)] = normalized
	}
	for id, stage := range stages {
		snapshot.Stages[id] = stage
	}
	return snapshot
}

// BuiltinSnapshot is the builtin datasets assembled for direct use, mainly
// in tests and first-boot seeding checks.
func BuiltinSnapshot() Snapshot {
	return BuildSnapshot(BuiltinTemplates(), BuiltinMilestoneIDs(), BuiltinStages())
}
