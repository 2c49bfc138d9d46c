package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mercora/storefront/internal/persistence"
	"github.com/mercora/storefront/internal/wishlist"
	"github.com/mercora/storefront/pkg/logger"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Save(_ context.Context, slice string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[slice] = raw
	return nil
}

func (m *memStore) Load(_ context.Context, slice string, out any) error {
	raw, ok := m.data[slice]
	if !ok {
		return persistence.ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func quietLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})
}

func newFavoritesService(t *testing.T) wishlist.Service {
	t.Helper()
	svc, err := wishlist.NewService(wishlist.ServiceParams{Store: newMemStore(), Logger: quietLogger(t)})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestFavoritesAddAndList(t *testing.T) {
	t.Parallel()

	svc := newFavoritesService(t)
	logg := quietLogger(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"product_id":"p1"}`))
	req.Header.Set("Content-Type", "application/json")
	FavoritesAdd(svc, logg)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil)
	FavoritesList(svc, logg)(rec, req)

	var payload struct {
		Data struct {
			ProductIDs []string `json:"product_ids"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Data.ProductIDs) != 1 || payload.Data.ProductIDs[0] != "p1" {
		t.Errorf("unexpected favorites %v", payload.Data.ProductIDs)
	}
}

func TestFavoritesAddMissingProductID(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	FavoritesAdd(newFavoritesService(t), quietLogger(t))(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFavoritesRemove(t *testing.T) {
	t.Parallel()

	svc := newFavoritesService(t)
	logg := quietLogger(t)
	if err := svc.Add(context.Background(), "p1"); err != nil {
		t.Fatalf("seed favorite: %v", err)
	}

	router := chi.NewRouter()
	router.Delete("/api/v1/favorites/{productID}", FavoritesRemove(svc, logg))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/favorites/p1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := svc.List(); len(got) != 0 {
		t.Errorf("expected empty favorites, got %v", got)
	}
}

func TestFavoritesNilService(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites", nil)
	FavoritesList(nil, quietLogger(t))(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
