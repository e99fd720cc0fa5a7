package dto

import (
	"time"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvestmentStatsDTO agregados de inversiones.
type InvestmentStatsDTO struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalLabel    string          `json:"total_label"` // monto formateado para mostrar, ej. "$ 212.000,00"
	TotalCount    int             `json:"total_count"`
	ActiveCount   int             `json:"active_count"`
	PendingCount  int             `json:"pending_count"`
	ActiveAmount  decimal.Decimal `json:"active_amount"`
	AverageReturn decimal.Decimal `json:"average_return"`
	GrowthPercent decimal.Decimal `json:"growth_percent"` // mes actual vs anterior
}

// ReferralStatsDTO agregados de referidos.
type ReferralStatsDTO struct {
	TotalCount      int             `json:"total_count"`
	PendingCount    int             `json:"pending_count"`
	ActiveCount     int             `json:"active_count"`
	CompletedCount  int             `json:"completed_count"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	CommissionLabel string          `json:"commission_label"`
	PaidCommission  decimal.Decimal `json:"paid_commission"`
	GrowthPercent   decimal.Decimal `json:"growth_percent"`
}

// EmployeePerformanceDTO fila del ranking de empleados del dashboard admin.
type EmployeePerformanceDTO struct {
	EmployeeID       string          `json:"employee_id"`
	Name             string          `json:"name"`
	InvestedAmount   decimal.Decimal `json:"invested_amount"`
	ReferralCount    int             `json:"referral_count"`
	CommissionEarned decimal.Decimal `json:"commission_earned"`
	Level            string          `json:"level"`
}

// AdminDashboardDTO respuesta de GET /admin/dashboard.
type AdminDashboardDTO struct {
	Investments  InvestmentStatsDTO       `json:"investments"`
	Referrals    ReferralStatsDTO         `json:"referrals"`
	UserCount    int                      `json:"user_count"`
	TopEmployees []EmployeePerformanceDTO `json:"top_employees"`
	GeneratedAt  time.Time                `json:"generated_at"`
}

// ReferralLevelDTO nivel de comisión.
type ReferralLevelDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Threshold  int             `json:"threshold"`
	Commission decimal.Decimal `json:"commission"`
	Bonus      decimal.Decimal `json:"bonus"`
	Features   []string        `json:"features"`
}

// LevelProgressDTO nivel actual del empleado y avance hacia el siguiente.
type LevelProgressDTO struct {
	Current         ReferralLevelDTO  `json:"current"`
	Next            *ReferralLevelDTO `json:"next,omitempty"`
	Volume          int               `json:"volume"`
	RemainingToNext int               `json:"remaining_to_next"`
	ProgressPercent decimal.Decimal   `json:"progress_percent"`
}

// EmployeeDashboardDTO respuesta de GET /dashboard.
type EmployeeDashboardDTO struct {
	User        UserResponse       `json:"user"`
	Investments InvestmentStatsDTO `json:"investments"`
	Referrals   ReferralStatsDTO   `json:"referrals"`
	Level       LevelProgressDTO   `json:"level"`
}

// SyncStatusResponse respuesta de GET /api/sync/status.
type SyncStatusResponse struct {
	SyncInProgress bool       `json:"sync_in_progress"`
	Visible        bool       `json:"visible"`
	LastRun        *time.Time `json:"last_run,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
}

// ToReferralLevelDTO mapea un nivel a DTO.
func ToReferralLevelDTO(l entity.ReferralLevel) ReferralLevelDTO {
	features := l.Rewards.Features
	if features == nil {
		features = []string{}
	}
	return ReferralLevelDTO{
		ID:         l.ID,
		Name:       l.Name,
		Threshold:  l.Threshold,
		Commission: l.Commission,
		Bonus:      l.Rewards.Bonus,
		Features:   features,
	}
}
