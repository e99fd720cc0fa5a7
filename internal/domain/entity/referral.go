package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ReferralStatus estado de un referido.
type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralActive    ReferralStatus = "active"
	ReferralCompleted ReferralStatus = "completed"
)

// Valid informa si el estado es uno de los definidos.
func (s ReferralStatus) Valid() bool {
	switch s {
	case ReferralPending, ReferralActive, ReferralCompleted:
		return true
	}
	return false
}

// Referral cliente referido por un empleado.
type Referral struct {
	ID           string
	ClientName   string
	Email        string
	Phone        string
	Status       ReferralStatus
	Amount       decimal.Decimal
	Commission   decimal.Decimal
	Date         time.Time
	CompletedAt  *time.Time // presente sii Status == completed
	Notes        string
	EmployeeID   string
	EmployeeName string
	Relationship string
}

// Validate comprueba las invariantes del referido.
func (r *Referral) Validate() error {
	if r.ID == "" || r.ClientName == "" || r.EmployeeID == "" {
		return fmt.Errorf("%w: id, cliente y empleado son obligatorios", domain.ErrInvalidInput)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: estado de referido %q", domain.ErrInvalidInput, r.Status)
	}
	if r.Amount.IsNegative() || r.Commission.IsNegative() {
		return fmt.Errorf("%w: monto y comisión no pueden ser negativos", domain.ErrInvalidInput)
	}
	if (r.Status == ReferralCompleted) != (r.CompletedAt != nil) {
		return fmt.Errorf("%w: completed_at solo y siempre en referidos completados", domain.ErrInvalidInput)
	}
	return nil
}

// Counts informa si el referido cuenta para el volumen de nivel (activo o completado).
func (r *Referral) Counts() bool {
	return r.Status == ReferralActive || r.Status == ReferralCompleted
}
