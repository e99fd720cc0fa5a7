package metrics

import "github.com/shopspring/decimal"

// WeightedAverage incorpora una observación a un promedio ponderado acumulado.
// NuevoPromedio = ((PesoActual * PromedioActual) + (PesoNuevo * ValorNuevo)) / (PesoActual + PesoNuevo)
func WeightedAverage(weight, avg, addWeight, addValue decimal.Decimal) decimal.Decimal {
	sum := weight.Add(addWeight)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := weight.Mul(avg).Add(addWeight.Mul(addValue))
	return num.Div(sum)
}
