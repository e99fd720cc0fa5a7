// Package metrics reúne cálculos puros usados por las estadísticas del panel.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Growth devuelve la variación porcentual de current respecto a previous, redondeada a 2 decimales.
// Sin base previa: 100 si hay valor actual, 0 si ambos son cero.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// MonthBounds devuelve [inicio del mes de t, inicio del mes siguiente) y el inicio del mes anterior.
func MonthBounds(t time.Time) (prevStart, start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start.AddDate(0, -1, 0), start, start.AddDate(0, 1, 0)
}

// InRange informa si t ∈ [from, to).
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
