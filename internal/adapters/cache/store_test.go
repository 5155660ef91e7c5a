package cache_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/tiago/internal/adapters/cache"
	"go.trai.ch/tiago/internal/core/domain"
)

func testInvocation(arm string) domain.Invocation {
	return domain.Invocation{
		Executable: "xacro",
		Args:       []string{"/share/robots/tiago.urdf.xacro", "arm:=" + arm},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store, err := cache.NewStore(filepath.Join(t.TempDir(), "descriptions.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv := testInvocation("no-arm")
	if _, ok := store.Get(inv); ok {
		t.Fatal("expected cache miss on empty store")
	}

	if err := store.Put(inv, "<robot/>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, ok := store.Get(inv)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if doc != "<robot/>" {
		t.Errorf("unexpected document: %q", doc)
	}
}

func TestStore_DistinctInvocationsDistinctEntries(t *testing.T) {
	store, err := cache.NewStore(filepath.Join(t.TempDir(), "descriptions.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Put(testInvocation("no-arm"), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Put(testInvocation("left-arm"), "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc, _ := store.Get(testInvocation("no-arm")); doc != "a" {
		t.Errorf("expected a, got %q", doc)
	}
	if doc, _ := store.Get(testInvocation("left-arm")); doc != "b" {
		t.Errorf("expected b, got %q", doc)
	}
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptions.json")

	first, err := cache.NewStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv := testInvocation("right-arm")
	if err := first.Put(inv, "<robot name='tiago'/>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := cache.NewStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, ok := second.Get(inv)
	if !ok {
		t.Fatal("expected persisted entry")
	}
	if doc != "<robot name='tiago'/>" {
		t.Errorf("unexpected document: %q", doc)
	}
}

func TestKey_StableAndTokenSensitive(t *testing.T) {
	inv := testInvocation("no-arm")
	if cache.Key(inv) != cache.Key(inv) {
		t.Error("key must be deterministic")
	}

	// Same bytes, different token boundaries.
	a := domain.Invocation{Executable: "xacro", Args: []string{"ab", "c"}}
	b := domain.Invocation{Executable: "xacro", Args: []string{"a", "bc"}}
	if cache.Key(a) == cache.Key(b) {
		t.Error("key must distinguish token boundaries")
	}
}
