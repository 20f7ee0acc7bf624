package db

import (
	"path/filepath"
	"testing"

	"github.com/claire-lyons/folli/internal/models"
	"github.com/claire-lyons/folli/internal/reference"
)

func TestOpenSQLiteBootstrapsSchemaAndReferenceData(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "folli.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	for _, table := range []string{
		"users", "cycles", "user_milestones", "appointments",
		"event_logs", "symptom_logs", "doctors",
		"cycle_templates", "template_milestones", "stage_refs",
	} {
		if !database.Migrator().HasTable(table) {
			t.Errorf("expected table %q after migrations", table)
		}
	}

	var templateCount int64
	if err := database.Model(&models.CycleTemplate{}).Count(&templateCount).Error; err != nil {
		t.Fatalf("count templates: %v", err)
	}
	if templateCount != int64(len(reference.BuiltinTemplates())) {
		t.Fatalf("seeded %d templates, want %d", templateCount, len(reference.BuiltinTemplates()))
	}
}

func TestSeedReferenceDataIsIdempotent(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "folli.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	if err := seedReferenceData(database); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var stageCount int64
	if err := database.Model(&models.StageRef{}).Count(&stageCount).Error; err != nil {
		t.Fatalf("count stages: %v", err)
	}
	if stageCount != int64(len(reference.BuiltinStages())) {
		t.Fatalf("got %d stage rows after reseeding, want %d", stageCount, len(reference.BuiltinStages()))
	}
}

func TestLoadSnapshotRoundTripsBuiltinData(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "folli.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}

	snapshot, err := NewReferenceRepository(database).LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	builtin := reference.BuiltinSnapshot()
	if len(snapshot.Templates) != len(builtin.Templates) {
		t.Fatalf("loaded %d templates, want %d", len(snapshot.Templates), len(builtin.Templates))
	}
	for typeKey, wantTemplate := range builtin.Templates {
		gotTemplate, ok := snapshot.Templates[typeKey]
		if !ok {
			t.Fatalf("template %q missing from loaded snapshot", typeKey)
		}
		if len(gotTemplate.Milestones) != len(wantTemplate.Milestones) {
			t.Errorf("%s: loaded %d milestones, want %d", typeKey, len(gotTemplate.Milestones), len(wantTemplate.Milestones))
		}
		for index, milestone := range wantTemplate.Milestones {
			if gotTemplate.Milestones[index].Name != milestone.Name {
				t.Errorf("%s milestone %d: got %q, want %q", typeKey, index, gotTemplate.Milestones[index].Name, milestone.Name)
			}
		}
	}

	id, ok := snapshot.MilestoneID("IVF", "Egg retrieval")
	if !ok || id != builtinEggRetrievalID(t, builtin) {
		t.Fatalf("MilestoneID(IVF, Egg retrieval) = (%d, %v)", id, ok)
	}
	if len(snapshot.Stages) != len(builtin.Stages) {
		t.Fatalf("loaded %d stages, want %d", len(snapshot.Stages), len(builtin.Stages))
	}
}

func builtinEggRetrievalID(t *testing.T, snapshot reference.Snapshot) uint {
	t.Helper()
	id, ok := snapshot.MilestoneID("IVF", "Egg retrieval")
	if !ok {
		t.Fatal("builtin snapshot has no IVF egg retrieval id")
	}
	return id
}
