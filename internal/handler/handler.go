// Package handler содержит HTTP-обработчики API сервиса заправочной станции.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/gasstation-system/internal/model"
	"github.com/mmeshcher/gasstation-system/internal/station"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	AddPump(ctx context.Context, fuel model.FuelType, capacity float64)
	ListPumps(ctx context.Context) []model.PumpInfo
	GetPrice(ctx context.Context, fuel model.FuelType) float64
	SetPrice(ctx context.Context, fuel model.FuelType, price float64)
	BuyGas(ctx context.Context, fuel model.FuelType, amount, maxPrice float64) (float64, error)
	Orders(ctx context.Context) []model.Order
	Stats(ctx context.Context) *model.Stats
}

// Handler реализует HTTP-обработчики API сервиса заправочной станции.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

type addPumpRequest struct {
	Fuel     string  `json:"fuel"`
	Capacity float64 `json:"capacity"`
}

// AddPump регистрирует новую топливную колонку.
func (h *Handler) AddPump(w http.ResponseWriter, r *http.Request) {
	var req addPumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Capacity < 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	fuel, ok := model.ParseFuelType(req.Fuel)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	h.service.AddPump(r.Context(), fuel, req.Capacity)
	w.WriteHeader(http.StatusOK)
}

// ListPumps возвращает состояние всех колонок станции.
func (h *Handler) ListPumps(w http.ResponseWriter, r *http.Request) {
	pumps := h.service.ListPumps(r.Context())

	if len(pumps) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pumps); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

type priceResponse struct {
	Fuel  string  `json:"fuel"`
	Price float64 `json:"price"`
}

// GetPrice возвращает текущую цену за единицу указанного вида топлива.
func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	fuel, ok := model.ParseFuelType(chi.URLParam(r, "fuel"))
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	resp := priceResponse{
		Fuel:  string(fuel),
		Price: h.service.GetPrice(r.Context(), fuel),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

type setPriceRequest struct {
	Price float64 `json:"price"`
}

// SetPrice устанавливает цену за единицу указанного вида топлива.
func (h *Handler) SetPrice(w http.ResponseWriter, r *http.Request) {
	fuel, ok := model.ParseFuelType(chi.URLParam(r, "fuel"))
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	var req setPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Price < 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	h.service.SetPrice(r.Context(), fuel, req.Price)
	w.WriteHeader(http.StatusOK)
}

type buyRequest struct {
	Fuel     string  `json:"fuel"`
	Amount   float64 `json:"amount"`
	MaxPrice float64 `json:"max_price"`
}

type buyResponse struct {
	TotalPrice float64 `json:"total_price"`
}

// BuyGas выполняет покупку топлива и возвращает итоговую стоимость.
func (h *Handler) BuyGas(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	fuel, ok := model.ParseFuelType(req.Fuel)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	totalPrice, err := h.service.BuyGas(r.Context(), fuel, req.Amount, req.MaxPrice)
	if err != nil {
		switch {
		case errors.Is(err, station.ErrGasTooExpensive):
			http.Error(w, http.StatusText(http.StatusPaymentRequired), http.StatusPaymentRequired)
		case errors.Is(err, station.ErrNotEnoughGas):
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
		default:
			h.logger.Error("buy gas error", zap.Error(err), zap.String("fuel", req.Fuel))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(buyResponse{TotalPrice: totalPrice}); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

type orderResponse struct {
	ID         string  `json:"id"`
	TotalPrice float64 `json:"total_price"`
	Success    bool    `json:"success"`
	Reason     string  `json:"reason"`
	CreatedAt  string  `json:"created_at"`
}

// GetOrders возвращает журнал всех попыток покупки.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.service.Orders(r.Context())

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderResponse{
			ID:         o.ID.String(),
			TotalPrice: o.TotalPrice,
			Success:    o.Success,
			Reason:     string(o.Reason),
			CreatedAt:  o.CreatedAt.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

// GetStats возвращает сводную статистику станции.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
