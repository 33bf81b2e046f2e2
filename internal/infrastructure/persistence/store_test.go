package persistence_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"repo-catalog/internal/domain/cache"
	"repo-catalog/internal/infrastructure/persistence"
)

func storeContract(t *testing.T, store cache.Store) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Get(missing) = found %v, err %v; want not found", found, err)
	}

	if err := store.Set(ctx, "azerothcore_repositories_cache", []byte(`{"version":"1.0"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, found, err := store.Get(ctx, "azerothcore_repositories_cache")
	if err != nil || !found {
		t.Fatalf("Get() = found %v, err %v", found, err)
	}
	if string(val) != `{"version":"1.0"}` {
		t.Errorf("Get() = %s", val)
	}

	if err := store.Set(ctx, "azerothcore_repositories_cache", []byte(`{"version":"2.0"}`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	val, _, _ = store.Get(ctx, "azerothcore_repositories_cache")
	if string(val) != `{"version":"2.0"}` {
		t.Errorf("Get() after overwrite = %s", val)
	}

	if err := store.Delete(ctx, "azerothcore_repositories_cache"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, found, _ := store.Get(ctx, "azerothcore_repositories_cache"); found {
		t.Error("expected key to be deleted, but still found")
	}

	if err := store.Delete(ctx, "azerothcore_repositories_cache"); err != nil {
		t.Errorf("Delete() of a missing key error = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, persistence.NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := persistence.NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	_ = store.Set(ctx, "k", in)
	in[0] = 'x'

	out, _, _ := store.Get(ctx, "k")
	if string(out) != "abc" {
		t.Errorf("stored value was aliased: %s", out)
	}
}

func TestFileStore(t *testing.T) {
	store, err := persistence.NewFileStore(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	storeContract(t, store)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, _ := persistence.NewFileStore(dir)
	if err := first.Set(ctx, "some/key", []byte("payload")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	second, _ := persistence.NewFileStore(dir)
	val, found, err := second.Get(ctx, "some/key")
	if err != nil || !found || string(val) != "payload" {
		t.Fatalf("Get() = %q, %v, %v", val, found, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "some_key.json" {
		t.Errorf("unexpected files in cache dir: %v", entries)
	}
}

func TestFileStore_CanceledContext(t *testing.T) {
	store, _ := persistence.NewFileStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Set(ctx, "k", []byte("v")); err == nil {
		t.Error("Set() with canceled context should fail")
	}
}
