// Package simulation создаёт фоновую нагрузку из конкурентных покупателей.
package simulation

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/gasstation-system/internal/model"
	"github.com/mmeshcher/gasstation-system/internal/station"
)

var fuelTypes = []model.FuelType{model.FuelRegular, model.FuelDiesel, model.FuelSuper}

// Station описывает операции станции, используемые симуляцией.
type Station interface {
	GetPrice(ctx context.Context, fuel model.FuelType) float64
	BuyGas(ctx context.Context, fuel model.FuelType, amount, maxPrice float64) (float64, error)
}

// Runner запускает заданное количество покупателей, каждый из которых
// периодически выполняет покупку случайного количества случайного топлива.
type Runner struct {
	station  Station
	logger   *zap.Logger
	workers  int
	interval time.Duration
}

// NewRunner создаёт симуляцию с указанным количеством покупателей.
func NewRunner(st Station, logger *zap.Logger, workers int) *Runner {
	return &Runner{
		station:  st,
		logger:   logger,
		workers:  workers,
		interval: 100 * time.Millisecond,
	}
}

// Run запускает покупателей и блокируется до отмены контекста.
// При нуле покупателей возвращается сразу.
func (r *Runner) Run(ctx context.Context) {
	if r.workers <= 0 {
		return
	}

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func(buyer int) {
			defer wg.Done()
			r.buyLoop(ctx, buyer)
		}(i)
	}
	wg.Wait()
}

func (r *Runner) buyLoop(ctx context.Context, buyer int) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var sales, noGas, tooExpensive int

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("buyer finished",
				zap.Int("buyer", buyer),
				zap.Int("sales", sales),
				zap.Int("no_gas", noGas),
				zap.Int("too_expensive", tooExpensive),
			)
			return
		case <-ticker.C:
			fuel := fuelTypes[rand.IntN(len(fuelTypes))]
			amount := 1 + rand.Float64()*9

			// Часть покупателей соглашается на текущую цену, часть
			// предлагает меньше и получает отказ.
			maxPrice := r.station.GetPrice(ctx, fuel)
			if rand.IntN(4) == 0 {
				maxPrice /= 2
			}

			_, err := r.station.BuyGas(ctx, fuel, amount, maxPrice)
			switch {
			case err == nil:
				sales++
			case errors.Is(err, station.ErrNotEnoughGas):
				noGas++
			case errors.Is(err, station.ErrGasTooExpensive):
				tooExpensive++
			}
		}
	}
}
