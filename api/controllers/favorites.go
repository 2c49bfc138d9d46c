package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercora/storefront/api/responses"
	"github.com/mercora/storefront/api/validators"
	"github.com/mercora/storefront/internal/wishlist"
	pkgerrors "github.com/mercora/storefront/pkg/errors"
	"github.com/mercora/storefront/pkg/logger"
)

// AddFavoriteRequest names the product to favorite.
type AddFavoriteRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type favoritesView struct {
	ProductIDs []string `json:"product_ids"`
}

// FavoritesList returns the favorited product ids in add order.
func FavoritesList(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}
		responses.WriteSuccess(w, favoritesView{ProductIDs: svc.List()})
	}
}

// FavoritesAdd records a favorite. Duplicate ids are a no-op.
func FavoritesAdd(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		var payload AddFavoriteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Add(r.Context(), payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, favoritesView{ProductIDs: svc.List()})
	}
}

// FavoritesRemove drops a favorite. Missing ids are a no-op.
func FavoritesRemove(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productID")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		svc.Remove(r.Context(), productID)
		responses.WriteSuccess(w, favoritesView{ProductIDs: svc.List()})
	}
}
