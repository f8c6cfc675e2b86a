package datastore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"gridiron/internal/errors"
)

func writeDataset(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
}

func TestLoadCachesFirstRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	writeDataset(t, path, "Team,Points Per Game\nAlabama,35.4\n")

	store := NewStore(path)

	first, err := store.Load()
	if err != nil {
		t.Fatalf("First load failed: %v", err)
	}
	if first.NumRows() != 1 {
		t.Fatalf("Expected 1 row, got %d", first.NumRows())
	}

	// Rewrite the file; a cached store must never notice.
	writeDataset(t, path, "Team,Points Per Game\nAlabama,35.4\nAuburn,27.3\n")

	second, err := store.Load()
	if err != nil {
		t.Fatalf("Second load failed: %v", err)
	}
	if second != first {
		t.Error("Expected the cached table instance on second load")
	}
	if second.NumRows() != 1 {
		t.Errorf("Second load observed the rewritten file: got %d rows", second.NumRows())
	}
}

func TestLoadNeverTouchesFileAgain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	writeDataset(t, path, "Team,Points Per Game\nAlabama,35.4\n")

	store := NewStore(path)
	if _, err := store.Load(); err != nil {
		t.Fatalf("First load failed: %v", err)
	}

	// Deleting the file proves later calls serve purely from memory.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove dataset: %v", err)
	}

	tbl, err := store.Load()
	if err != nil {
		t.Fatalf("Load after file removal failed: %v", err)
	}
	if tbl.NumRows() != 1 {
		t.Errorf("Expected cached table, got %d rows", tbl.NumRows())
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := store.Load()
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if errors.GetCode(err) != errors.CodeNotFound {
		t.Errorf("Expected code %s, got %s", errors.CodeNotFound, errors.GetCode(err))
	}
}

func TestLoadFailureIsNotCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.csv")
	store := NewStore(path)

	if _, err := store.Load(); err == nil {
		t.Fatal("Expected error while file is absent")
	}

	// The file appears later; the store must retry rather than replay the
	// earlier failure.
	writeDataset(t, path, "Team,Points Per Game\nAlabama,35.4\n")

	tbl, err := store.Load()
	if err != nil {
		t.Fatalf("Load after file appeared failed: %v", err)
	}
	if tbl.NumRows() != 1 {
		t.Errorf("Expected 1 row, got %d", tbl.NumRows())
	}
}

func TestConcurrentFirstLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.csv")
	writeDataset(t, path, "Team,Points Per Game\nAlabama,35.4\nAuburn,27.3\n")

	store := NewStore(path)

	const goroutines = 16
	results := make([]interface{}, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl, err := store.Load()
			results[i] = tbl
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		if errs[i] != nil {
			t.Fatalf("Goroutine %d failed: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Errorf("Goroutine %d observed a different table instance", i)
		}
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove dataset: %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Errorf("Cached load after concurrent first loads failed: %v", err)
	}
}

func TestPath(t *testing.T) {
	store := NewStore("data/cfb23.csv")
	if store.Path() != "data/cfb23.csv" {
		t.Errorf("Path() = %q, want data/cfb23.csv", store.Path())
	}
}
