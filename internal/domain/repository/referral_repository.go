package repository

import (
	"context"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ReferralStats resultado agregado de referidos.
type ReferralStats struct {
	TotalCount      int
	PendingCount    int
	ActiveCount     int
	CompletedCount  int
	TotalAmount     decimal.Decimal
	TotalCommission decimal.Decimal
	PaidCommission  decimal.Decimal // comisión de referidos completados
	CurrentMonth    int             // referidos con fecha en el mes de AsOf
	PreviousMonth   int
	GrowthPercent   decimal.Decimal
}

// ReferralRepository contrato de solo lectura para referidos.
type ReferralRepository interface {
	List(ctx context.Context) ([]*entity.Referral, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Referral, error)
	Stats(ctx context.Context, filter StatsFilter) (*ReferralStats, error)
}

// ReferralLevelRepository tabla de niveles de comisión, ordenada por umbral ascendente.
type ReferralLevelRepository interface {
	List(ctx context.Context) ([]entity.ReferralLevel, error)
}
