package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvestmentResponse salida de una inversión.
type InvestmentResponse struct {
	ID             string          `json:"id"`
	ClientName     string          `json:"client_name"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	ReturnRate     decimal.Decimal `json:"return_rate"`
	ExpectedReturn decimal.Decimal `json:"expected_return"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	EmployeeID     string          `json:"employee_id"`
	Notes          string          `json:"notes,omitempty"`
}

// InvestmentListResponse listado paginado de inversiones.
type InvestmentListResponse struct {
	Items []InvestmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreateInvestmentRequest alta de una inversión.
type CreateInvestmentRequest struct {
	ClientName string          `json:"client_name"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	ReturnRate decimal.Decimal `json:"return_rate"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    *time.Time      `json:"end_date"`
	EmployeeID string          `json:"employee_id"`
	Notes      string          `json:"notes"`
}

// Validate aplica las invariantes de Investment a la solicitud (queda en estado pending).
func (r CreateInvestmentRequest) Validate() error {
	inv := entity.Investment{
		ID:         "new",
		ClientName: r.ClientName,
		Amount:     r.Amount,
		Type:       entity.InvestmentType(r.Type),
		Status:     entity.InvestmentPending,
		ReturnRate: r.ReturnRate,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		EmployeeID: r.EmployeeID,
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date es obligatorio", domain.ErrInvalidInput)
	}
	return inv.Validate()
}

// WithdrawRequest solicitud de retiro sobre una inversión.
type WithdrawRequest struct {
	InvestmentID string          `json:"investment_id"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
}

// Validate comprueba el retiro contra la inversión: activa, flexible o vencida, y sin exceder el monto.
func (r WithdrawRequest) Validate(inv *entity.Investment, now time.Time) error {
	if inv == nil || inv.ID != r.InvestmentID {
		return fmt.Errorf("%w: inversión %q", domain.ErrNotFound, r.InvestmentID)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: el monto del retiro debe ser positivo", domain.ErrInvalidInput)
	}
	if r.Amount.GreaterThan(inv.Amount) {
		return fmt.Errorf("%w: el retiro excede el monto invertido", domain.ErrInvalidInput)
	}
	if inv.Status != entity.InvestmentActive {
		return fmt.Errorf("%w: solo se retira de inversiones activas", domain.ErrInvalidInput)
	}
	if inv.Type == entity.InvestmentFixed && inv.EndDate != nil && now.Before(*inv.EndDate) {
		return fmt.Errorf("%w: la inversión fija vence el %s", domain.ErrInvalidInput, inv.EndDate.Format("2006-01-02"))
	}
	return nil
}

// ToInvestmentResponse mapea la entidad a DTO.
func ToInvestmentResponse(inv *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:             inv.ID,
		ClientName:     inv.ClientName,
		Amount:         inv.Amount,
		Type:           string(inv.Type),
		Status:         string(inv.Status),
		ReturnRate:     inv.ReturnRate,
		ExpectedReturn: inv.ExpectedReturn(),
		StartDate:      inv.StartDate,
		EndDate:        inv.EndDate,
		EmployeeID:     inv.EmployeeID,
		Notes:          inv.Notes,
	}
}
