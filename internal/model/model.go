// Package model содержит доменные сущности сервиса заправочной станции.
package model

import (
	"time"

	"github.com/google/uuid"
)

// FuelType описывает вид топлива, которым торгует станция.
type FuelType string

const (
	FuelRegular FuelType = "REGULAR"
	FuelDiesel  FuelType = "DIESEL"
	FuelSuper   FuelType = "SUPER"
)

// ParseFuelType разбирает строковое представление вида топлива.
// Возвращает false, если вид топлива неизвестен.
func ParseFuelType(s string) (FuelType, bool) {
	switch FuelType(s) {
	case FuelRegular, FuelDiesel, FuelSuper:
		return FuelType(s), true
	}
	return "", false
}

// FailureReason описывает причину отказа в покупке топлива.
type FailureReason string

const (
	FailureNone         FailureReason = "NONE"
	FailureNotEnoughGas FailureReason = "NOT_ENOUGH_GAS"
	FailureTooExpensive FailureReason = "TOO_EXPENSIVE"
)

// Order описывает результат одной попытки покупки топлива.
// После создания запись не изменяется.
type Order struct {
	ID         uuid.UUID
	TotalPrice float64
	Success    bool
	Reason     FailureReason
	CreatedAt  time.Time
}

// PumpInfo содержит снимок состояния колонки на момент запроса.
type PumpInfo struct {
	Fuel      FuelType `json:"fuel"`
	Remaining float64  `json:"remaining"`
}

// Stats содержит сводную статистику продаж станции.
type Stats struct {
	Revenue                   float64 `json:"revenue"`
	Sales                     int     `json:"sales"`
	CancellationsNoGas        int     `json:"cancellations_no_gas"`
	CancellationsTooExpensive int     `json:"cancellations_too_expensive"`
}
