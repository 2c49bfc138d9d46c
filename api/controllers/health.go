package controllers

import (
	"net/http"

	"github.com/mercora/storefront/api/responses"
	"github.com/mercora/storefront/internal/catalog"
	"github.com/mercora/storefront/internal/persistence"
	"github.com/mercora/storefront/pkg/config"
	pkgerrors "github.com/mercora/storefront/pkg/errors"
	"github.com/mercora/storefront/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, store persistence.Pinger, catalogClient catalog.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		ctx := r.Context()

		if store != nil {
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persistence not ready"))
				return
			}
		}
		if catalogClient != nil {
			if err := catalogClient.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog not ready"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
