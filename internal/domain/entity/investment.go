package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/shopspring/decimal"
)

// InvestmentType tipo de producto de inversión.
type InvestmentType string

const (
	InvestmentFixed    InvestmentType = "fixed"
	InvestmentFlexible InvestmentType = "flexible"
	InvestmentSpecial  InvestmentType = "special"
)

// InvestmentStatus estado de una inversión.
type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentCompleted InvestmentStatus = "completed"
)

// Valid informa si el tipo es uno de los definidos.
func (t InvestmentType) Valid() bool {
	switch t {
	case InvestmentFixed, InvestmentFlexible, InvestmentSpecial:
		return true
	}
	return false
}

// Valid informa si el estado es uno de los definidos.
func (s InvestmentStatus) Valid() bool {
	switch s {
	case InvestmentActive, InvestmentPending, InvestmentCompleted:
		return true
	}
	return false
}

// Investment inversión de un cliente gestionada por un empleado.
// EmployeeID es una clave de búsqueda hacia User, no una referencia viva.
type Investment struct {
	ID         string
	ClientName string
	Amount     decimal.Decimal
	Type       InvestmentType
	Status     InvestmentStatus
	ReturnRate decimal.Decimal // porcentaje, ej. 8.5 = 8.5%
	StartDate  time.Time
	EndDate    *time.Time // solo tiene sentido con Type == fixed
	EmployeeID string
	Notes      string
}

// Validate comprueba las invariantes de la inversión.
func (i *Investment) Validate() error {
	if i.ID == "" || i.ClientName == "" || i.EmployeeID == "" {
		return fmt.Errorf("%w: id, cliente y empleado son obligatorios", domain.ErrInvalidInput)
	}
	if !i.Amount.IsPositive() {
		return fmt.Errorf("%w: el monto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !i.Type.Valid() {
		return fmt.Errorf("%w: tipo de inversión %q", domain.ErrInvalidInput, i.Type)
	}
	if !i.Status.Valid() {
		return fmt.Errorf("%w: estado de inversión %q", domain.ErrInvalidInput, i.Status)
	}
	if i.ReturnRate.IsNegative() {
		return fmt.Errorf("%w: la tasa de retorno no puede ser negativa", domain.ErrInvalidInput)
	}
	if i.EndDate != nil {
		if i.Type != InvestmentFixed {
			return fmt.Errorf("%w: fecha de fin solo aplica a inversiones fijas", domain.ErrInvalidInput)
		}
		if i.EndDate.Before(i.StartDate) {
			return fmt.Errorf("%w: fecha de fin anterior al inicio", domain.ErrInvalidInput)
		}
	}
	return nil
}

// ExpectedReturn rendimiento esperado: Amount * ReturnRate / 100.
func (i *Investment) ExpectedReturn() decimal.Decimal {
	return i.Amount.Mul(i.ReturnRate).Div(decimal.NewFromInt(100)).Round(2)
}
