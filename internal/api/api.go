// Package api exposes the engine's public surface over HTTP for the ordering
// UI: menu and ingredient reads, order placement and lifecycle, stock
// toggles, and the CSV bulk-edit round trip.
package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/skylark-hq/skylark/internal/engine"
	"go.uber.org/zap"
)

type API struct {
	engine *engine.Engine
	logger *zap.SugaredLogger
	addr   string
}

func New(eng *engine.Engine, logger *zap.SugaredLogger, addr string) *API {
	return &API{engine: eng, logger: logger, addr: addr}
}

func (a *API) Mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", a.healthCheckHandler)

		r.Get("/menu", a.listMenuHandler)
		r.Put("/menu/items", a.upsertMenuItemHandler)
		r.Delete("/menu/items/{item_id}", a.deleteMenuItemHandler)
		r.Get("/menu/export", a.exportMenuHandler)
		r.Post("/menu/import", a.importMenuHandler)

		r.Get("/ingredients", a.listIngredientsHandler)
		r.Post("/ingredients/{ingredient_id}/toggle", a.toggleIngredientHandler)

		r.Get("/orders", a.listOrdersHandler)
		r.Post("/orders", a.createOrderHandler)
		r.Patch("/orders/{order_id}/status", a.updateOrderStatusHandler)
		r.Delete("/orders/{order_id}", a.deleteOrderHandler)

		r.Get("/metrics/sales", a.salesMetricsHandler)
	})

	return r
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *API) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         a.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		a.logger.Infow("signal caught", "signal", s.String())
		shutdown <- srv.Shutdown(ctx)
	}()

	a.logger.Infow("server started", "addr", a.addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdown; err != nil {
		return err
	}

	a.logger.Infow("server stopped", "addr", a.addr)
	return nil
}
