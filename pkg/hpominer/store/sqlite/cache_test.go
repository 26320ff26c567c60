package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cognicore/hpominer/pkg/hpominer/dictionary"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

func TestCacheStoreAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	d := dictionary.NewDictionary()
	macroID, _ := term.Parse("HP:0000256")
	if err := d.AddSurface("Increased head circumference", macroID); err != nil {
		t.Fatal(err)
	}
	scolID, _ := term.Parse("HP:0002650")
	if err := d.AddSurface("Scoliosis", scolID); err != nil {
		t.Fatal(err)
	}

	const hash = "abc123"
	if err := c.Store(ctx, hash, d); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	has, err := c.Has(ctx, hash)
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if !has {
		t.Fatal("expected cache entry to exist")
	}

	loaded, ok, err := c.Load(ctx, hash)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected cached dictionary to load")
	}

	idx := loaded.ByWordCount(1)
	if idx == nil {
		t.Fatal("expected 1-token index for scoliosis")
	}
	got := idx.Match(map[string]struct{}{"scoliosis": {}})
	if got == nil || got.TermID != scolID {
		t.Errorf("expected scoliosis match, got %v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Load(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("expected cache miss")
	}
}

func TestCacheStoreReplacesExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	d1 := dictionary.NewDictionary()
	id1, _ := term.Parse("HP:0000256")
	d1.AddSurface("Scoliosis", id1)
	if err := c.Store(ctx, "h", d1); err != nil {
		t.Fatal(err)
	}

	d2 := dictionary.NewDictionary()
	id2, _ := term.Parse("HP:0002650")
	d2.AddSurface("Macrocephaly", id2)
	if err := c.Store(ctx, "h", d2); err != nil {
		t.Fatal(err)
	}

	loaded, ok, err := c.Load(ctx, "h")
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if len(loaded.Surfaces()) != 1 {
		t.Errorf("expected replacement to leave exactly 1 surface, got %d", len(loaded.Surfaces()))
	}
}
