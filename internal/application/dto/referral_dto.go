package dto

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ReferralResponse salida de un referido.
type ReferralResponse struct {
	ID           string          `json:"id"`
	ClientName   string          `json:"client_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	Commission   decimal.Decimal `json:"commission"`
	Date         time.Time       `json:"date"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Relationship string          `json:"relationship"`
}

// ReferralListResponse listado paginado de referidos.
type ReferralListResponse struct {
	Items []ReferralResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateReferralRequest alta de un referido por un empleado.
type CreateReferralRequest struct {
	ClientName   string          `json:"client_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Amount       decimal.Decimal `json:"amount"`
	Relationship string          `json:"relationship"`
	Notes        string          `json:"notes"`
}

// Validate campos obligatorios, email bien formado y monto no negativo.
func (r CreateReferralRequest) Validate() error {
	if strings.TrimSpace(r.ClientName) == "" || strings.TrimSpace(r.Relationship) == "" {
		return fmt.Errorf("%w: client_name y relationship son requeridos", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// ApproveReferralRequest aprobación de un referido pendiente.
type ApproveReferralRequest struct {
	ReferralID string `json:"referral_id"`
	Notes      string `json:"notes"`
}

// Validate solo se aprueban referidos pendientes.
func (r ApproveReferralRequest) Validate(ref *entity.Referral) error {
	if ref == nil || ref.ID != r.ReferralID {
		return fmt.Errorf("%w: referido %q", domain.ErrNotFound, r.ReferralID)
	}
	if ref.Status != entity.ReferralPending {
		return fmt.Errorf("%w: el referido no está pendiente", domain.ErrInvalidInput)
	}
	return nil
}

// RejectReferralRequest rechazo de un referido pendiente; el motivo es obligatorio.
type RejectReferralRequest struct {
	ReferralID string `json:"referral_id"`
	Reason     string `json:"reason"`
}

// Validate exige motivo y referido pendiente.
func (r RejectReferralRequest) Validate(ref *entity.Referral) error {
	if strings.TrimSpace(r.Reason) == "" {
		return fmt.Errorf("%w: reason es requerido", domain.ErrInvalidInput)
	}
	return ApproveReferralRequest{ReferralID: r.ReferralID}.Validate(ref)
}

// ToReferralResponse mapea la entidad a DTO.
func ToReferralResponse(r *entity.Referral) ReferralResponse {
	return ReferralResponse{
		ID:           r.ID,
		ClientName:   r.ClientName,
		Email:        r.Email,
		Phone:        r.Phone,
		Status:       string(r.Status),
		Amount:       r.Amount,
		Commission:   r.Commission,
		Date:         r.Date,
		CompletedAt:  r.CompletedAt,
		Notes:        r.Notes,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Relationship: r.Relationship,
	}
}
