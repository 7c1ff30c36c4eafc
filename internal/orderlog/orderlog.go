// Package orderlog содержит журнал всех попыток покупки топлива.
package orderlog

import (
	"sync"

	"github.com/mmeshcher/gasstation-system/internal/model"
)

// Log хранит записи о покупках только на добавление. Записи из журнала
// не удаляются и не изменяются; статистика вычисляется по снимку журнала.
type Log struct {
	mu     sync.Mutex
	orders []model.Order
}

// NewLog создаёт пустой журнал заказов.
func NewLog() *Log {
	return &Log{}
}

// Append атомарно добавляет запись в журнал.
func (l *Log) Append(order model.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, order)
}

// Snapshot возвращает копию журнала на момент вызова. Снимок содержит
// все записи, добавленные до вызова, и никогда не содержит частично
// записанных заказов.
func (l *Log) Snapshot() []model.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]model.Order, len(l.orders))
	copy(snapshot, l.orders)
	return snapshot
}

// Len возвращает количество записей в журнале.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}
