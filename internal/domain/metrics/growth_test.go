package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inversiones-api/internal/domain/metrics"
)

func TestGrowth(t *testing.T) {
	d := decimal.NewFromInt
	assert.True(t, d(50).Equal(metrics.Growth(d(150), d(100))))
	assert.True(t, d(-25).Equal(metrics.Growth(d(75), d(100))))
	assert.True(t, d(100).Equal(metrics.Growth(d(10), decimal.Zero)), "sin base previa")
	assert.True(t, decimal.Zero.Equal(metrics.Growth(decimal.Zero, decimal.Zero)))
}

func TestMonthBounds_CruceDeAnio(t *testing.T) {
	prev, start, end := metrics.MonthBounds(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), prev)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), end)

	assert.True(t, metrics.InRange(start, start, end))
	assert.False(t, metrics.InRange(end, start, end))
}

func TestWeightedAverage_Incremental(t *testing.T) {
	d := decimal.NewFromInt
	// 100 @ 10% + 300 @ 6% = 7%
	avg := metrics.WeightedAverage(decimal.Zero, decimal.Zero, d(100), d(10))
	assert.True(t, d(10).Equal(avg))
	avg = metrics.WeightedAverage(d(100), avg, d(300), d(6))
	assert.True(t, d(7).Equal(avg))

	assert.True(t, decimal.Zero.Equal(metrics.WeightedAverage(decimal.Zero, decimal.Zero, decimal.Zero, d(5))), "sin peso no hay promedio")
}
