package reference

import (
	"errors"
	"testing"
)

func TestStoreStartsEmpty(t *testing.T) {
	t.Parallel()

	store := NewStore(func() (Snapshot, error) {
		t.Fatal("loader must not run before Refresh")
		return Snapshot{}, nil
	})

	snapshot := store.Snapshot()
	if len(snapshot.Templates) != 0 || len(snapshot.MilestoneIDs) != 0 || len(snapshot.Stages) != 0 {
		t.Fatal("expected an empty snapshot before the first refresh")
	}
	if snapshot.Templates == nil || snapshot.MilestoneIDs == nil || snapshot.Stages == nil {
		t.Fatal("empty snapshot must have initialized maps")
	}
}

func TestStoreRefreshInstallsSnapshot(t *testing.T) {
	t.Parallel()

	store := NewStore(func() (Snapshot, error) {
		return BuiltinSnapshot(), nil
	})

	if err := store.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	snapshot := store.Snapshot()
	if _, ok := snapshot.Template("IVF"); !ok {
		t.Fatal("expected the IVF template after refresh")
	}
	if id, ok := snapshot.MilestoneID("IVF", "Stimulation injections start"); !ok || id == 0 {
		t.Fatalf("expected a milestone id, got %d (ok=%v)", id, ok)
	}
}

func TestStoreRefreshFailureServesEmptyTables(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("backend unreachable")
	calls := 0
	store := NewStore(func() (Snapshot, error) {
		calls++
		if calls == 1 {
			return BuiltinSnapshot(), nil
		}
		return Snapshot{}, loadErr
	})

	if err := store.Refresh(); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if err := store.Refresh(); !errors.Is(err, loadErr) {
		t.Fatalf("expected the load error back, got %v", err)
	}

	// The failure must not leave stale data behind: dependents see empty
	// tables and render "no data", not an error.
	snapshot := store.Snapshot()
	if len(snapshot.Templates) != 0 {
		t.Fatal("expected empty templates after a failed refresh")
	}
}

func TestStoreInvalidate(t *testing.T) {
	t.Parallel()

	store := NewStore(func() (Snapshot, error) {
		return BuiltinSnapshot(), nil
	})
	if err := store.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	store.Invalidate()
	if len(store.Snapshot().Templates) != 0 {
		t.Fatal("expected empty snapshot after Invalidate")
	}
}

func TestBuildSnapshotNormalizesKeys(t *testing.T) {
	t.Parallel()

	snapshot := BuildSnapshot(
		[]CycleTemplate{{TypeKey: "egg-freezing", Name: "Egg freezing"}},
		map[string]map[string]uint{"ivf-fresh": {"Cycle Day 1": 101}},
		map[uint]Stage{101: {Name: "Cycle Start"}},
	)

	if _, ok := snapshot.Template("EGG_FREEZ"); !ok {
		t.Fatal("expected template keyed under the canonical family")
	}
	if id, ok := snapshot.MilestoneID("IVF", "cycle day 1"); !ok || id != 101 {
		t.Fatalf("expected normalized milestone lookup to hit, got %d (ok=%v)", id, ok)
	}
}
