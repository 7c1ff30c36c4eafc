// Package pricing содержит таблицу текущих цен на топливо.
package pricing

import (
	"sync"

	"github.com/mmeshcher/gasstation-system/internal/model"
)

// Table хранит цену за единицу для каждого вида топлива.
// Чтения и записи безопасны для конкурентного использования;
// при конкурентных записях по одному ключу побеждает последняя.
type Table struct {
	mu     sync.RWMutex
	prices map[model.FuelType]float64
}

// NewTable создаёт пустую таблицу цен.
func NewTable() *Table {
	return &Table{
		prices: make(map[model.FuelType]float64),
	}
}

// Get возвращает текущую цену за единицу топлива.
// Для вида топлива без установленной цены возвращается 0.
func (t *Table) Get(fuel model.FuelType) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.prices[fuel]
}

// Set безусловно устанавливает цену за единицу топлива.
func (t *Table) Set(fuel model.FuelType, price float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prices[fuel] = price
}
