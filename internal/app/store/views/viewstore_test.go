package viewstore_test

import (
	"testing"

	viewstore "github.com/nontawat/clubhub/internal/app/store/views"
	"github.com/nontawat/clubhub/internal/testutil"
)

func TestIncrement_CreatesAndCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := viewstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := store.Increment(ctx, "org-1")
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if n != 1 {
		t.Errorf("first increment: got %d, want 1", n)
	}

	n, err = store.Increment(ctx, "org-1")
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if n != 2 {
		t.Errorf("second increment: got %d, want 2", n)
	}
}

func TestGet_ZeroWhenNeverViewed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := viewstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := store.Get(ctx, "org-unknown")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if n != 0 {
		t.Errorf("got %d, want 0", n)
	}
}

func TestGetMany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := viewstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := store.Increment(ctx, "org-a"); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}
	if _, err := store.Increment(ctx, "org-b"); err != nil {
		t.Fatalf("Increment: %v", err)
	}

	counts, err := store.GetMany(ctx, []string{"org-a", "org-b", "org-missing"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if counts["org-a"] != 3 {
		t.Errorf("org-a: got %d, want 3", counts["org-a"])
	}
	if counts["org-b"] != 1 {
		t.Errorf("org-b: got %d, want 1", counts["org-b"])
	}
	if _, ok := counts["org-missing"]; ok {
		t.Error("missing org must be absent from result map")
	}
}

func TestGetMany_EmptyInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := viewstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts, err := store.GetMany(ctx, nil)
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("got %d entries, want 0", len(counts))
	}
}
