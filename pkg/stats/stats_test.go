package stats

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "stats.json"))

	tally, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tally.TotalRoutes != 0 || len(tally.ByAgent) != 0 || len(tally.ByTaskType) != 0 {
		t.Fatalf("expected empty tally, got %+v", tally)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tally, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tally.TotalRoutes != 0 {
		t.Fatalf("corrupt file should reset tally, got %d", tally.TotalRoutes)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats.json")
	store := NewFileStore(path)

	tally := NewTally()
	tally.Record("ATLAS", "building")
	tally.Record("ATLAS", "building")
	tally.Record("BOLT", "code_execution")

	if err := store.Save(tally); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(tally, reloaded) {
		t.Fatalf("round trip mismatch:\nsaved:    %+v\nreloaded: %+v", tally, reloaded)
	}
}

func TestTallyRecord(t *testing.T) {
	tally := NewTally()
	tally.Record("ATLAS", "building")
	tally.Record("NEXUS", "testing")
	tally.Record("ATLAS", "documentation")

	if tally.TotalRoutes != 3 {
		t.Fatalf("expected 3 routes, got %d", tally.TotalRoutes)
	}
	if tally.ByAgent["ATLAS"] != 2 || tally.ByAgent["NEXUS"] != 1 {
		t.Fatalf("unexpected agent counts: %v", tally.ByAgent)
	}
	if tally.ByTaskType["building"] != 1 || tally.ByTaskType["testing"] != 1 {
		t.Fatalf("unexpected task type counts: %v", tally.ByTaskType)
	}
}

func TestTallyRecordNilMaps(t *testing.T) {
	// A tally decoded from a minimal JSON document has nil maps.
	tally := &Tally{}
	tally.Record("ATLAS", "building")

	if tally.ByAgent["ATLAS"] != 1 || tally.ByTaskType["building"] != 1 {
		t.Fatalf("unexpected counts: %+v", tally)
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	tally, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tally.Record("BOLT", "code_execution")

	if err := store.Save(tally); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if reloaded.TotalRoutes != 1 {
		t.Fatalf("expected 1 route, got %d", reloaded.TotalRoutes)
	}
}
