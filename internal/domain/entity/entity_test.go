package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

func TestParseRole_ValoresValidos(t *testing.T) {
	r, err := entity.ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, r)

	r, err = entity.ParseRole(" Employee ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, r)
}

func TestParseRole_RolDesconocido(t *testing.T) {
	_, err := entity.ParseRole("vendedor")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.False(t, entity.Role("superuser").Valid())
}

func validInvestment() entity.Investment {
	return entity.Investment{
		ID:         "inv-1",
		ClientName: "Cliente",
		Amount:     decimal.NewFromInt(1000),
		Type:       entity.InvestmentFlexible,
		Status:     entity.InvestmentActive,
		ReturnRate: decimal.NewFromFloat(8.5),
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EmployeeID: "emp-1",
	}
}

func TestInvestment_Validate(t *testing.T) {
	inv := validInvestment()
	require.NoError(t, inv.Validate())
	assert.True(t, decimal.NewFromInt(85).Equal(inv.ExpectedReturn()))

	inv.Amount = decimal.Zero
	assert.ErrorIs(t, inv.Validate(), domain.ErrInvalidInput, "el monto debe ser positivo")

	inv = validInvestment()
	end := inv.StartDate.AddDate(1, 0, 0)
	inv.EndDate = &end
	assert.ErrorIs(t, inv.Validate(), domain.ErrInvalidInput, "end_date solo con type=fixed")

	inv.Type = entity.InvestmentFixed
	assert.NoError(t, inv.Validate())
}

func TestReferral_Validate_CompletedAtSiiCompletado(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	r := entity.Referral{
		ID: "ref-1", ClientName: "X", EmployeeID: "emp-1",
		Status: entity.ReferralCompleted, Amount: decimal.NewFromInt(100),
	}
	assert.Error(t, r.Validate(), "completado sin completed_at")

	r.CompletedAt = &now
	assert.NoError(t, r.Validate())

	r.Status = entity.ReferralActive
	assert.Error(t, r.Validate(), "activo con completed_at")
}

func TestClassifyLevel(t *testing.T) {
	levels := []entity.ReferralLevel{
		{ID: "gold", Threshold: 10, Commission: decimal.NewFromInt(10)},
		{ID: "bronze", Threshold: 0, Commission: decimal.NewFromInt(5)},
		{ID: "silver", Threshold: 5, Commission: decimal.NewFromInt(7)},
	}

	cur, next, err := entity.ClassifyLevel(levels, 0)
	require.NoError(t, err)
	assert.Equal(t, "bronze", cur.ID)
	require.NotNil(t, next)
	assert.Equal(t, "silver", next.ID)

	cur, next, err = entity.ClassifyLevel(levels, 7)
	require.NoError(t, err)
	assert.Equal(t, "silver", cur.ID)
	assert.Equal(t, "gold", next.ID)

	cur, next, err = entity.ClassifyLevel(levels, 50)
	require.NoError(t, err)
	assert.Equal(t, "gold", cur.ID)
	assert.Nil(t, next)

	assert.True(t, decimal.NewFromInt(70).Equal(levels[2].CommissionFor(decimal.NewFromInt(1000))))

	_, _, err = entity.ClassifyLevel(nil, 3)
	assert.ErrorIs(t, err, domain.ErrNoReferralLevel)
}

func TestClassifyLevel_EmpateDeUmbral(t *testing.T) {
	levels := []entity.ReferralLevel{
		{ID: "a", Threshold: 5},
		{ID: "b", Threshold: 5},
		{ID: "c", Threshold: 8},
	}

	cur, next, err := entity.ClassifyLevel(levels, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", cur.ID)
	require.NotNil(t, next)
	assert.Equal(t, "c", next.ID)

	cur, next, err = entity.ClassifyLevel(levels, 6)
	require.NoError(t, err)
	assert.Equal(t, "b", cur.ID)
	require.NotNil(t, next)
	assert.Equal(t, "c", next.ID)
}
