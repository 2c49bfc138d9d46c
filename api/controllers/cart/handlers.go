package cart

import (
	"net/http"

	"github.com/mercora/storefront/api/responses"
	"github.com/mercora/storefront/api/validators"
	cartsvc "github.com/mercora/storefront/internal/cart"
	pkgerrors "github.com/mercora/storefront/pkg/errors"
	"github.com/mercora/storefront/pkg/logger"
)

// CartFetch exposes the current cart snapshot.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(svc.Snapshot()))
	}
}

// CartAddItem resolves and merges an add-to-cart request.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := svc.AddToCart(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newLinesView(lines))
	}
}

// CartRemoveItem drops the exact line triple. Missing lines are a no-op.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload RemoveItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := svc.RemoveFromCart(r.Context(), payload.ProductID, payload.Size, payload.Color)
		responses.WriteSuccess(w, newLinesView(lines))
	}
}

// CartSaveShippingAddress replaces the cart's shipping address.
func CartSaveShippingAddress(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload SaveShippingAddressRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SaveShippingAddress(r.Context(), payload.toAddress())
		responses.WriteSuccess(w, newCartView(svc.Snapshot()))
	}
}

// CartSavePaymentMethod replaces the cart's payment method.
func CartSavePaymentMethod(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload SavePaymentMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SavePaymentMethod(r.Context(), payload.Method)
		responses.WriteSuccess(w, newCartView(svc.Snapshot()))
	}
}

// CartSetDrawer flips the drawer-open flag. Session-only state.
func CartSetDrawer(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload SetDrawerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetDrawerOpen(payload.Open)
		responses.WriteSuccess(w, newCartView(svc.Snapshot()))
	}
}

// CartSetSelection replaces the checkout selection keys.
func CartSetSelection(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload SetSelectionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetSelectedLines(payload.Keys)
		responses.WriteSuccess(w, newCartView(svc.Snapshot()))
	}
}
