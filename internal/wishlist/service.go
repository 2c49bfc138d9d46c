package wishlist

import (
	"context"
	"strings"
	"sync"

	"github.com/mercora/storefront/internal/persistence"
	pkgerrors "github.com/mercora/storefront/pkg/errors"
	"github.com/mercora/storefront/pkg/logger"
)

// Service holds the shopper's favorited product ids in add order.
type Service interface {
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string)
	List() []string
	Hydrate(ctx context.Context) error
}

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	Store  persistence.Store
	Logger *logger.Logger
}

type service struct {
	store persistence.Store
	logg  *logger.Logger

	mu  sync.Mutex
	ids []string
}

// NewService builds the favorites service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "persistence store is required")
	}
	return &service{store: params.Store, logg: params.Logger}, nil
}

// Add records the product id. Adding an already-favorited id is a no-op.
func (s *service) Add(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	s.mu.Lock()
	changed := false
	if !contains(s.ids, productID) {
		s.ids = append(s.ids, productID)
		changed = true
	}
	snapshot := append([]string(nil), s.ids...)
	s.mu.Unlock()

	if changed {
		s.persist(ctx, snapshot)
	}
	return nil
}

// Remove drops the product id. Missing ids are a no-op.
func (s *service) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	changed := false
	out := s.ids[:0]
	for _, id := range s.ids {
		if id == productID {
			changed = true
			continue
		}
		out = append(out, id)
	}
	s.ids = out
	snapshot := append([]string(nil), s.ids...)
	s.mu.Unlock()

	if changed {
		s.persist(ctx, snapshot)
	}
}

// List returns the favorited ids in add order.
func (s *service) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

// Hydrate loads the persisted favorites. An absent slice is not an error.
func (s *service) Hydrate(ctx context.Context) error {
	var ids []string
	if err := s.store.Load(ctx, persistence.SliceFavorites, &ids); err != nil {
		if err == persistence.ErrNotFound {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "hydrate favorites")
	}

	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()
	return nil
}

func (s *service) persist(ctx context.Context, ids []string) {
	if err := s.store.Save(ctx, persistence.SliceFavorites, ids); err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithSlice(ctx, persistence.SliceFavorites), "persist failed, in-memory state remains authoritative", err)
		}
	}
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
