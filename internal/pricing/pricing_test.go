package pricing

import (
	"sync"
	"testing"

	"github.com/mmeshcher/gasstation-system/internal/model"
)

func TestGet_DefaultZero(t *testing.T) {
	table := NewTable()

	if got := table.Get(model.FuelDiesel); got != 0 {
		t.Fatalf("Get for unset fuel type = %v, want 0", got)
	}
}

func TestSet_Overwrite(t *testing.T) {
	table := NewTable()

	table.Set(model.FuelDiesel, 1550)
	table.Set(model.FuelDiesel, 15.5)

	if got := table.Get(model.FuelDiesel); got != 15.5 {
		t.Fatalf("Get after overwrite = %v, want 15.5", got)
	}
}

func TestSet_IndependentKeys(t *testing.T) {
	table := NewTable()

	table.Set(model.FuelRegular, 42.1)
	table.Set(model.FuelSuper, 55.9)

	if got := table.Get(model.FuelRegular); got != 42.1 {
		t.Fatalf("Get(REGULAR) = %v, want 42.1", got)
	}
	if got := table.Get(model.FuelSuper); got != 55.9 {
		t.Fatalf("Get(SUPER) = %v, want 55.9", got)
	}
	if got := table.Get(model.FuelDiesel); got != 0 {
		t.Fatalf("Get(DIESEL) = %v, want 0", got)
	}
}

func TestTable_ConcurrentAccess(t *testing.T) {
	table := NewTable()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(price float64) {
			defer wg.Done()
			table.Set(model.FuelDiesel, price)
			_ = table.Get(model.FuelDiesel)
		}(float64(i + 1))
	}
	wg.Wait()

	if got := table.Get(model.FuelDiesel); got < 1 || got > 50 {
		t.Fatalf("Get after concurrent writes = %v, want one of the written prices", got)
	}
}
