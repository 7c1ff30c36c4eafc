package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/gasstation-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса заправочной станции.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/pumps", h.AddPump)
		r.Get("/pumps", h.ListPumps)

		r.Get("/prices/{fuel}", h.GetPrice)
		r.Post("/prices/{fuel}", h.SetPrice)

		r.Post("/orders", h.BuyGas)
		r.Get("/orders", h.GetOrders)

		r.Get("/stats", h.GetStats)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
