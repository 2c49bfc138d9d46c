package persistence

import (
	"context"
	"errors"
)

// Persisted slice names. These are the externally visible keys of the durable
// mirror and must stay stable across releases.
const (
	SliceCartItems       = "cartItems"
	SliceShippingAddress = "shippingAddress"
	SlicePaymentMethod   = "paymentMethod"
	SliceFavorites       = "favorites"
)

// ErrNotFound is returned by Load when a slice has never been saved.
var ErrNotFound = errors.New("persistence: slice not found")

// Store mirrors named state slices as JSON snapshots. Writes are synchronous;
// callers treat failures as best-effort (the in-memory state stays
// authoritative for the session).
type Store interface {
	Save(ctx context.Context, slice string, value any) error
	Load(ctx context.Context, slice string, dest any) error
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}
