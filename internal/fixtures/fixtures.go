// Package fixtures содержит загрузку начального состояния станции из YAML-файла.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmeshcher/gasstation-system/internal/model"
)

// PumpSpec описывает одну колонку в файле начального состояния.
type PumpSpec struct {
	Fuel     model.FuelType
	Capacity float64
}

// State содержит начальные колонки и цены станции.
type State struct {
	Pumps  []PumpSpec
	Prices map[model.FuelType]float64
}

type fileFormat struct {
	Pumps []struct {
		Fuel     string  `yaml:"fuel"`
		Capacity float64 `yaml:"capacity"`
	} `yaml:"pumps"`
	Prices map[string]float64 `yaml:"prices"`
}

// Load читает начальное состояние станции из YAML-файла.
// Неизвестный вид топлива или отрицательные значения считаются ошибкой файла.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read station file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*State, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse station file: %w", err)
	}

	state := &State{
		Prices: make(map[model.FuelType]float64, len(f.Prices)),
	}

	for i, p := range f.Pumps {
		fuel, ok := model.ParseFuelType(p.Fuel)
		if !ok {
			return nil, fmt.Errorf("pump %d: unknown fuel type %q", i, p.Fuel)
		}
		if p.Capacity < 0 {
			return nil, fmt.Errorf("pump %d: negative capacity %v", i, p.Capacity)
		}
		state.Pumps = append(state.Pumps, PumpSpec{Fuel: fuel, Capacity: p.Capacity})
	}

	for name, price := range f.Prices {
		fuel, ok := model.ParseFuelType(name)
		if !ok {
			return nil, fmt.Errorf("price for unknown fuel type %q", name)
		}
		if price < 0 {
			return nil, fmt.Errorf("negative price %v for fuel type %q", price, name)
		}
		state.Prices[fuel] = price
	}

	return state, nil
}
