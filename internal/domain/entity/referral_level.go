package entity

import (
	"sort"

	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/shopspring/decimal"
)

// LevelRewards recompensas asociadas a un nivel.
type LevelRewards struct {
	Bonus    decimal.Decimal
	Features []string
}

// ReferralLevel nivel de comisión. Threshold es el número mínimo de referidos
// activos o completados para alcanzarlo; Commission es un porcentaje.
type ReferralLevel struct {
	ID         string
	Name       string
	Threshold  int
	Commission decimal.Decimal
	Rewards    LevelRewards
}

// CommissionFor calcula la comisión de un monto con la tasa del nivel.
func (l ReferralLevel) CommissionFor(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(l.Commission).Div(decimal.NewFromInt(100)).Round(2)
}

// SortLevels devuelve una copia ordenada por Threshold ascendente.
func SortLevels(levels []ReferralLevel) []ReferralLevel {
	out := make([]ReferralLevel, len(levels))
	copy(out, levels)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Threshold < out[j].Threshold })
	return out
}

// ClassifyLevel devuelve el nivel más alto cuyo umbral alcanza volume y, si existe, el siguiente.
// Si volume no alcanza el primer umbral se devuelve igualmente el primer nivel.
func ClassifyLevel(levels []ReferralLevel, volume int) (current ReferralLevel, next *ReferralLevel, err error) {
	if len(levels) == 0 {
		return ReferralLevel{}, nil, domain.ErrNoReferralLevel
	}
	sorted := SortLevels(levels)
	idx := 0
	for i, l := range sorted {
		if volume >= l.Threshold {
			idx = i
		}
	}
	current = sorted[idx]
	floor := current.Threshold
	if volume > floor {
		floor = volume
	}
	// siguiente = primer nivel con umbral estrictamente mayor; los empates no cuentan
	for _, l := range sorted[idx+1:] {
		if l.Threshold > floor {
			n := l
			next = &n
			break
		}
	}
	return current, next, nil
}
