package catalog

import (
	"testing"

	"github.com/cbaxter/domainfolio/internal/model"
)

func TestStoreGet(t *testing.T) {
	store := NewStore(Seed())

	l, ok := store.Get(5)
	if !ok {
		t.Fatal("expected listing 5 to exist")
	}
	if l.Name != "CryptoExchange.io" {
		t.Errorf("Get(5).Name = %q, want CryptoExchange.io", l.Name)
	}

	if _, ok := store.Get(99); ok {
		t.Error("Get(99) should report not found")
	}
}

func TestStoreLen(t *testing.T) {
	store := NewStore(Seed())
	if store.Len() != 6 {
		t.Errorf("Len() = %d, want 6", store.Len())
	}
}

func TestStoreCategoriesFirstSeenOrder(t *testing.T) {
	store := NewStore(Seed())
	want := []string{"Technology", "Business", "Environment", "Finance"}

	got := store.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStoreExtensionsFirstSeenOrder(t *testing.T) {
	store := NewStore(Seed())
	want := []string{"com", "org", "net", "eco", "io", "ai"}

	got := store.Extensions()
	if len(got) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Extensions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStoreCopiesInput(t *testing.T) {
	listings := []model.Listing{
		{ID: 1, Name: "First.com", Category: "Technology"},
		{ID: 2, Name: "Second.org", Category: "Business"},
	}
	store := NewStore(listings)

	listings[0].Name = "Mutated.com"

	l, _ := store.Get(1)
	if l.Name != "First.com" {
		t.Errorf("store leaked caller mutation: Name = %q", l.Name)
	}
}
