package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StatsFilter acota las estadísticas agregadas.
// EmployeeID vacío = todos los empleados. AsOf cero = fecha de referencia de la implementación.
type StatsFilter struct {
	EmployeeID string
	AsOf       time.Time
}

// InvestmentStats resultado agregado de inversiones.
type InvestmentStats struct {
	TotalAmount    decimal.Decimal
	TotalCount     int
	ActiveCount    int
	PendingCount   int
	CompletedCount int
	ActiveAmount   decimal.Decimal
	AverageReturn  decimal.Decimal // tasa media ponderada por monto, en porcentaje
	CurrentMonth   decimal.Decimal // monto iniciado en el mes de AsOf
	PreviousMonth  decimal.Decimal // monto iniciado en el mes anterior
	GrowthPercent  decimal.Decimal // CurrentMonth vs PreviousMonth
}

// InvestmentRepository contrato de solo lectura para inversiones.
// Las implementaciones no modifican datos.
type InvestmentRepository interface {
	List(ctx context.Context) ([]*entity.Investment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Investment, error)
	Stats(ctx context.Context, filter StatsFilter) (*InvestmentStats, error)
}
