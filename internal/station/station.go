// Package station реализует бизнес-логику заправочной станции.
package station

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mmeshcher/gasstation-system/internal/model"
	"github.com/mmeshcher/gasstation-system/internal/orderlog"
	"github.com/mmeshcher/gasstation-system/internal/pricing"
	"github.com/mmeshcher/gasstation-system/internal/pump"
)

// ErrNotEnoughGas возвращается, если ни одна колонка не может целиком выдать
// запрошенное количество топлива нужного вида.
var (
	ErrNotEnoughGas = errors.New("not enough gas")
	// ErrGasTooExpensive возвращается, если текущая цена топлива выше
	// максимальной цены, приемлемой для покупателя.
	ErrGasTooExpensive = errors.New("gas too expensive")
)

// Station владеет пулом колонок, таблицей цен и журналом заказов.
// Все операции безопасны для конкурентного вызова.
type Station struct {
	pool   *pump.Pool
	prices *pricing.Table
	orders *orderlog.Log
	now    func() time.Time
}

// New создаёт станцию без колонок и с нулевыми ценами.
func New() *Station {
	return &Station{
		pool:   pump.NewPool(),
		prices: pricing.NewTable(),
		orders: orderlog.NewLog(),
		now:    time.Now,
	}
}

// AddPump регистрирует новую колонку с указанным видом топлива и запасом.
func (s *Station) AddPump(ctx context.Context, fuel model.FuelType, capacity float64) {
	s.pool.Add(pump.New(fuel, capacity))
}

// ListPumps возвращает снимок состояния всех колонок станции.
func (s *Station) ListPumps(ctx context.Context) []model.PumpInfo {
	return s.pool.List()
}

// GetPrice возвращает текущую цену за единицу топлива, 0 если цена не установлена.
func (s *Station) GetPrice(ctx context.Context, fuel model.FuelType) float64 {
	return s.prices.Get(fuel)
}

// SetPrice устанавливает цену за единицу топлива.
func (s *Station) SetPrice(ctx context.Context, fuel model.FuelType, price float64) {
	s.prices.Set(fuel, price)
}

// BuyGas выполняет покупку amount единиц топлива fuel по цене не выше maxPrice
// за единицу. Возвращает итоговую стоимость покупки. Каждый вызов добавляет
// ровно одну запись в журнал заказов: успешную или с причиной отказа.
//
// Цена проверяется до обращения к колонкам: отказ ErrGasTooExpensive не меняет
// состояние ни одной колонки. Запросы, которые не может выдать ни одна колонка,
// включая запросы на неположительное количество, завершаются ErrNotEnoughGas.
func (s *Station) BuyGas(ctx context.Context, fuel model.FuelType, amount, maxPrice float64) (float64, error) {
	price := s.prices.Get(fuel)

	if price > maxPrice {
		s.appendOrder(0, false, model.FailureTooExpensive)
		return 0, ErrGasTooExpensive
	}

	if !s.pool.Allocate(fuel, amount) {
		s.appendOrder(0, false, model.FailureNotEnoughGas)
		return 0, ErrNotEnoughGas
	}

	totalPrice := amount * price
	s.appendOrder(totalPrice, true, model.FailureNone)
	return totalPrice, nil
}

// Orders возвращает снимок журнала заказов на момент вызова.
func (s *Station) Orders(ctx context.Context) []model.Order {
	return s.orders.Snapshot()
}

func (s *Station) appendOrder(totalPrice float64, success bool, reason model.FailureReason) {
	s.orders.Append(model.Order{
		ID:         uuid.New(),
		TotalPrice: totalPrice,
		Success:    success,
		Reason:     reason,
		CreatedAt:  s.now(),
	})
}
