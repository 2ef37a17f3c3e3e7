package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_ReloadsWhenFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sipsa_master.csv")
	if err := os.WriteFile(path, []byte(header+"2024-01-01,FRUTAS,MANGO,01319,BOGOTA,1000\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cache := NewCache(path)

	rows, err := cache.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	// Rewrite with more rows and a newer mtime.
	content := header +
		"2024-01-01,FRUTAS,MANGO,01319,BOGOTA,1000\n" +
		"2024-01-02,FRUTAS,MANGO,01319,BOGOTA,1100\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	rows, err = cache.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected reload with 2 rows, got %d", len(rows))
	}
}

func TestCache_ServesCachedTableForUnchangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sipsa_master.csv")
	v1 := header + "2024-01-01,FRUTAS,MANGO,01319,BOGOTA,1000\n"
	if err := os.WriteFile(path, []byte(v1), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	stamp := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	cache := NewCache(path)
	if _, err := cache.Snapshot(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same byte length, same mtime: the cache must not notice.
	v2 := header + "2024-01-01,FRUTAS,MANGO,01319,BOGOTA,2000\n"
	if err := os.WriteFile(path, []byte(v2), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	rows, err := cache.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].AvgPricePerKg != 1000 {
		t.Errorf("expected cached table, got reloaded price %v", rows[0].AvgPricePerKg)
	}

	// Explicit invalidation forces the reload.
	cache.Invalidate()

	rows, err = cache.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].AvgPricePerKg != 2000 {
		t.Errorf("expected reloaded price 2000 after Invalidate, got %v", rows[0].AvgPricePerKg)
	}
}

func TestCache_MissingFile(t *testing.T) {
	cache := NewCache(filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := cache.Snapshot(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
