package station

import (
	"context"

	"github.com/mmeshcher/gasstation-system/internal/model"
)

// Revenue возвращает суммарную выручку по всем успешным заказам.
func (s *Station) Revenue(ctx context.Context) float64 {
	var revenue float64
	for _, o := range s.orders.Snapshot() {
		if o.Success {
			revenue += o.TotalPrice
		}
	}
	return revenue
}

// SalesCount возвращает количество успешных продаж.
func (s *Station) SalesCount(ctx context.Context) int {
	count := 0
	for _, o := range s.orders.Snapshot() {
		if o.Success {
			count++
		}
	}
	return count
}

// CancellationsNoGas возвращает количество отказов из-за нехватки топлива.
func (s *Station) CancellationsNoGas(ctx context.Context) int {
	return s.cancellations(model.FailureNotEnoughGas)
}

// CancellationsTooExpensive возвращает количество отказов из-за слишком
// высокой цены.
func (s *Station) CancellationsTooExpensive(ctx context.Context) int {
	return s.cancellations(model.FailureTooExpensive)
}

// Stats возвращает сводную статистику станции, вычисленную по одному
// снимку журнала заказов.
func (s *Station) Stats(ctx context.Context) *model.Stats {
	stats := &model.Stats{}
	for _, o := range s.orders.Snapshot() {
		switch {
		case o.Success:
			stats.Sales++
			stats.Revenue += o.TotalPrice
		case o.Reason == model.FailureNotEnoughGas:
			stats.CancellationsNoGas++
		case o.Reason == model.FailureTooExpensive:
			stats.CancellationsTooExpensive++
		}
	}
	return stats
}

func (s *Station) cancellations(reason model.FailureReason) int {
	count := 0
	for _, o := range s.orders.Snapshot() {
		if !o.Success && o.Reason == reason {
			count++
		}
	}
	return count
}
