// Package pump содержит топливные колонки и пул колонок станции.
package pump

import (
	"sync"

	"github.com/mmeshcher/gasstation-system/internal/model"
)

// Pump представляет колонку с одним видом топлива и конечным запасом.
// Запас уменьшается только через TryWithdraw и никогда не становится отрицательным.
type Pump struct {
	fuel model.FuelType

	mu        sync.Mutex
	remaining float64
}

// New создаёт колонку с указанным видом топлива и начальным запасом.
func New(fuel model.FuelType, capacity float64) *Pump {
	if capacity < 0 {
		capacity = 0
	}
	return &Pump{
		fuel:      fuel,
		remaining: capacity,
	}
}

// Fuel возвращает вид топлива колонки.
func (p *Pump) Fuel() model.FuelType {
	return p.fuel
}

// Remaining возвращает текущий остаток топлива. Значение может устареть
// к моменту списания: корректность гарантирует атомарность TryWithdraw.
func (p *Pump) Remaining() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining
}

// TryWithdraw атомарно списывает amount с остатка колонки.
// Возвращает false и не меняет остаток, если топлива недостаточно
// или запрошенное количество не положительно.
func (p *Pump) TryWithdraw(amount float64) bool {
	if amount <= 0 {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if amount > p.remaining {
		return false
	}
	p.remaining -= amount
	return true
}
