package cart

import (
	"context"
	"sync"
	"time"

	"github.com/mercora/storefront/internal/catalog"
	"github.com/mercora/storefront/internal/persistence"
	pkgerrors "github.com/mercora/storefront/pkg/errors"
	"github.com/mercora/storefront/pkg/logger"
	"github.com/mercora/storefront/pkg/metrics"
	"github.com/mercora/storefront/pkg/types"
)

// AddInput is an add-to-cart request. Color carries the raw color token
// (often a hex value), ColorName the display-cased name when the caller has
// one.
type AddInput struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
	ColorName string
}

// Snapshot is a deep copy of the cart state. Callers cannot mutate the store
// through it.
type Snapshot struct {
	Lines            []CartLine     `json:"lines"`
	ShippingAddress  *types.Address `json:"shipping_address,omitempty"`
	PaymentMethod    string         `json:"payment_method,omitempty"`
	SelectedLineKeys []string       `json:"selected_line_keys"`
	DrawerOpen       bool           `json:"drawer_open"`
}

// Service is the only mutation surface over the cart state.
type Service interface {
	AddToCart(ctx context.Context, input AddInput) ([]CartLine, error)
	RemoveFromCart(ctx context.Context, productID, size, color string) []CartLine
	SaveShippingAddress(ctx context.Context, address types.Address)
	SavePaymentMethod(ctx context.Context, method string)
	SetDrawerOpen(open bool)
	SetSelectedLines(keys []string)
	Lines() []CartLine
	Snapshot() Snapshot
	Hydrate(ctx context.Context) error
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Catalog  catalog.Loader
	Store    persistence.Store
	Resolver Resolver
	Logger   *logger.Logger
	Metrics  *metrics.CartMetrics
}

type service struct {
	catalog catalog.Loader
	store   persistence.Store
	resolve Resolver
	logg    *logger.Logger
	met     *metrics.CartMetrics

	mu               sync.Mutex
	lines            []CartLine
	shippingAddress  *types.Address
	paymentMethod    string
	selectedLineKeys []string
	drawerOpen       bool
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog loader is required")
	}
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "persistence store is required")
	}
	return &service{
		catalog: params.Catalog,
		store:   params.Store,
		resolve: params.Resolver,
		logg:    params.Logger,
		met:     params.Metrics,
	}, nil
}

// AddToCart fetches the product, resolves the priced variant and merges the
// resulting line. A failed catalog fetch leaves the cart untouched. The fetch
// runs outside the lock: interleaved mutations apply in the order their merge
// step executes, and each merge reads the lines current at that moment.
func (s *service) AddToCart(ctx context.Context, input AddInput) ([]CartLine, error) {
	start := time.Now()

	product, err := s.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		s.met.IncFailure("add_to_cart")
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalogFetch, err, "load product")
	}

	quote := s.resolve.Resolve(product, input.Size, input.Color)
	line := newLine(product, quote, input.Quantity, input.Size, input.Color, input.ColorName)

	s.mu.Lock()
	s.lines = mergeLine(s.lines, line)
	merged := copyLines(s.lines)
	s.mu.Unlock()

	s.persist(ctx, persistence.SliceCartItems, merged)
	s.met.ObserveDuration("add_to_cart", time.Since(start))
	s.met.IncSuccess("add_to_cart")
	return merged, nil
}

// RemoveFromCart drops the exact (productId, size, color) triple. Missing
// lines are a no-op, never an error.
func (s *service) RemoveFromCart(ctx context.Context, productID, size, color string) []CartLine {
	s.mu.Lock()
	s.lines = removeLine(s.lines, productID, size, color)
	remaining := copyLines(s.lines)
	s.mu.Unlock()

	s.persist(ctx, persistence.SliceCartItems, remaining)
	s.met.IncSuccess("remove_from_cart")
	return remaining
}

// SaveShippingAddress replaces the address and mirrors it.
func (s *service) SaveShippingAddress(ctx context.Context, address types.Address) {
	normalized := address.Normalized()

	s.mu.Lock()
	s.shippingAddress = &normalized
	s.mu.Unlock()

	s.persist(ctx, persistence.SliceShippingAddress, normalized)
	s.met.IncSuccess("save_shipping_address")
}

// SavePaymentMethod replaces the payment method and mirrors it.
func (s *service) SavePaymentMethod(ctx context.Context, method string) {
	s.mu.Lock()
	s.paymentMethod = method
	s.mu.Unlock()

	s.persist(ctx, persistence.SlicePaymentMethod, method)
	s.met.IncSuccess("save_payment_method")
}

// SetDrawerOpen flips the drawer flag. Session-only, never persisted.
func (s *service) SetDrawerOpen(open bool) {
	s.mu.Lock()
	s.drawerOpen = open
	s.mu.Unlock()
}

// SetSelectedLines replaces the checkout selection. Keys are not validated
// against current lines; stale keys are tolerated and ignored by consumers.
func (s *service) SetSelectedLines(keys []string) {
	s.mu.Lock()
	s.selectedLineKeys = append([]string(nil), keys...)
	s.mu.Unlock()
}

// Lines returns a copy of the current cart lines in add order.
func (s *service) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.lines)
}

// Snapshot returns a deep copy of the full cart state.
func (s *service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Lines:            copyLines(s.lines),
		PaymentMethod:    s.paymentMethod,
		SelectedLineKeys: append([]string(nil), s.selectedLineKeys...),
		DrawerOpen:       s.drawerOpen,
	}
	if s.shippingAddress != nil {
		addr := *s.shippingAddress
		snap.ShippingAddress = &addr
	}
	return snap
}

// Hydrate loads the persisted slices into the store. Absent slices are not an
// error; the cart simply starts empty.
func (s *service) Hydrate(ctx context.Context) error {
	var lines []CartLine
	if err := s.store.Load(ctx, persistence.SliceCartItems, &lines); err != nil && err != persistence.ErrNotFound {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "hydrate cart lines")
	}
	for i := range lines {
		lines[i].recalcEffectivePrice()
	}

	var address types.Address
	hasAddress := true
	if err := s.store.Load(ctx, persistence.SliceShippingAddress, &address); err != nil {
		if err != persistence.ErrNotFound {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "hydrate shipping address")
		}
		hasAddress = false
	}

	var method string
	if err := s.store.Load(ctx, persistence.SlicePaymentMethod, &method); err != nil && err != persistence.ErrNotFound {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "hydrate payment method")
	}

	s.mu.Lock()
	s.lines = lines
	if hasAddress {
		s.shippingAddress = &address
	}
	s.paymentMethod = method
	s.mu.Unlock()

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"lines": len(lines)})
		s.logg.Info(ctx, "cart state hydrated")
	}
	return nil
}

// persist mirrors a slice and swallows failures: the durable copy is a cache,
// not a source of truth during a live session.
func (s *service) persist(ctx context.Context, slice string, value any) {
	if err := s.store.Save(ctx, slice, value); err != nil {
		s.met.IncFailure("persist_" + slice)
		if s.logg != nil {
			s.logg.Error(s.logg.WithSlice(ctx, slice), "persist failed, in-memory state remains authoritative", err)
		}
	}
}

func copyLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		out[i].Images = append([]string(nil), out[i].Images...)
	}
	return out
}
