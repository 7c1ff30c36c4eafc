package pump

import (
	"sync"

	"github.com/mmeshcher/gasstation-system/internal/model"
)

// Pool содержит все колонки станции и выполняет выбор колонки для покупки.
//
// Выбор колонки и списание топлива выполняются под одним мьютексом на весь пул.
// Атомарности TryWithdraw отдельной колонки недостаточно: два конкурентных
// запроса могли бы увидеть достаточный остаток на одной и той же колонке
// до того, как любой из них спишет топливо.
type Pool struct {
	mu    sync.Mutex
	pumps []*Pump
}

// NewPool создаёт пустой пул колонок.
func NewPool() *Pool {
	return &Pool{}
}

// Add регистрирует колонку в пуле. Колонки из пула не удаляются.
func (pl *Pool) Add(p *Pump) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.pumps = append(pl.pumps, p)
}

// List возвращает снимок состояния всех колонок. Изменение возвращённого
// среза не влияет на пул.
func (pl *Pool) List() []model.PumpInfo {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	infos := make([]model.PumpInfo, 0, len(pl.pumps))
	for _, p := range pl.pumps {
		infos = append(infos, model.PumpInfo{
			Fuel:      p.Fuel(),
			Remaining: p.Remaining(),
		})
	}
	return infos
}

// Allocate находит колонку с нужным видом топлива и достаточным остатком
// и списывает с неё amount. Возвращает false, если ни одна колонка не может
// выдать запрошенное количество целиком. Выбирается первая подходящая
// колонка в порядке регистрации.
func (pl *Pool) Allocate(fuel model.FuelType, amount float64) bool {
	if amount <= 0 {
		return false
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	for _, p := range pl.pumps {
		if p.Fuel() != fuel {
			continue
		}
		if p.TryWithdraw(amount) {
			return true
		}
	}
	return false
}
