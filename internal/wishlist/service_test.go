package wishlist

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/mercora/storefront/internal/persistence"
)

func TestAddIsIdempotentAndOrdered(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p1", "p3"} {
		if err := svc.Add(ctx, id); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	want := []string{"p1", "p2", "p3"}
	if got := svc.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAddRejectsEmptyID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubStore())
	if err := svc.Add(context.Background(), "  "); err == nil {
		t.Fatal("expected validation error for empty id")
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if err := svc.Add(ctx, "p1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	savesAfterAdd := store.saveCount

	svc.Remove(ctx, "p9")
	if store.saveCount != savesAfterAdd {
		t.Fatal("no-op removal should not persist")
	}

	svc.Remove(ctx, "p1")
	if got := svc.List(); len(got) != 0 {
		t.Fatalf("expected empty favorites, got %v", got)
	}
}

func TestHydrateRestoresFavorites(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	payload, _ := json.Marshal([]string{"p2", "p1"})
	store.saves[persistence.SliceFavorites] = payload

	svc := newTestService(t, store)
	if err := svc.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	if got := svc.List(); !reflect.DeepEqual(got, []string{"p2", "p1"}) {
		t.Fatalf("unexpected hydrated favorites %v", got)
	}
}

func newTestService(t *testing.T, store persistence.Store) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

type stubStore struct {
	saves     map[string][]byte
	saveCount int
}

func newStubStore() *stubStore {
	return &stubStore{saves: map[string][]byte{}}
}

func (s *stubStore) Save(ctx context.Context, slice string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.saves[slice] = payload
	s.saveCount++
	return nil
}

func (s *stubStore) Load(ctx context.Context, slice string, dest any) error {
	payload, ok := s.saves[slice]
	if !ok {
		return persistence.ErrNotFound
	}
	return json.Unmarshal(payload, dest)
}
