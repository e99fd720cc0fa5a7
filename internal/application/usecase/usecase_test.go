package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/application/usecase"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/mock"
)

func TestInvestmentUseCase_ListPorEmpleadoYEstado(t *testing.T) {
	uc := usecase.NewInvestmentUseCase(mock.NewInvestmentRepository())
	ctx := context.Background()

	all, err := uc.List(ctx, "", "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 6, all.Page.Total)
	assert.Equal(t, 20, all.Page.Limit)

	own, err := uc.List(ctx, mock.EmployeeID2, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, own.Page.Total)
	for _, inv := range own.Items {
		assert.Equal(t, mock.EmployeeID2, inv.EmployeeID)
	}

	pending, err := uc.List(ctx, "", "pending", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, pending.Page.Total)
}

func TestInvestmentUseCase_Paginacion(t *testing.T) {
	uc := usecase.NewInvestmentUseCase(mock.NewInvestmentRepository())
	page, err := uc.List(context.Background(), "", "", dto.PageRequest{Limit: 4, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 6, page.Page.Total)
}

func TestReferralUseCase_ListYNiveles(t *testing.T) {
	uc := usecase.NewReferralUseCase(mock.NewReferralRepository(), mock.NewReferralLevelRepository())
	ctx := context.Background()

	completed, err := uc.List(ctx, "", "completed", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, completed.Page.Total)
	for _, r := range completed.Items {
		assert.NotNil(t, r.CompletedAt)
	}

	levels, err := uc.Levels(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 4)
	assert.Equal(t, "Bronce", levels[0].Name)
	assert.Equal(t, "Platino", levels[3].Name)
}

func TestUserUseCase_List(t *testing.T) {
	repo, err := mock.NewUserRepository("demo1234")
	require.NoError(t, err)
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List(context.Background(), dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Page.Total)

	u, err := uc.GetByID(context.Background(), mock.AdminID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Role)
}
