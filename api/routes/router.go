package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mercora/storefront/api/controllers"
	cartcontrollers "github.com/mercora/storefront/api/controllers/cart"
	"github.com/mercora/storefront/api/middleware"
	"github.com/mercora/storefront/internal/catalog"
	cartsvc "github.com/mercora/storefront/internal/cart"
	"github.com/mercora/storefront/internal/persistence"
	"github.com/mercora/storefront/internal/wishlist"
	"github.com/mercora/storefront/pkg/config"
	"github.com/mercora/storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	storeP persistence.Pinger,
	catalogP catalog.Pinger,
	cartService cartsvc.Service,
	favoritesService wishlist.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, storeP, catalogP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", cartcontrollers.CartFetch(cartService, logg))
		r.Post("/items", cartcontrollers.CartAddItem(cartService, logg))
		r.Delete("/items", cartcontrollers.CartRemoveItem(cartService, logg))
		r.Put("/shipping-address", cartcontrollers.CartSaveShippingAddress(cartService, logg))
		r.Put("/payment-method", cartcontrollers.CartSavePaymentMethod(cartService, logg))
		r.Put("/drawer", cartcontrollers.CartSetDrawer(cartService, logg))
		r.Put("/selection", cartcontrollers.CartSetSelection(cartService, logg))
	})

	r.Route("/api/v1/favorites", func(r chi.Router) {
		r.Get("/", controllers.FavoritesList(favoritesService, logg))
		r.Post("/", controllers.FavoritesAdd(favoritesService, logg))
		r.Delete("/{productID}", controllers.FavoritesRemove(favoritesService, logg))
	})

	return r
}
