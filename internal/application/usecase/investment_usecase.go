package usecase

import (
	"context"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
)

// InvestmentUseCase listados de inversiones (todas para admin, propias para empleado).
type InvestmentUseCase struct {
	repo repository.InvestmentRepository
}

// NewInvestmentUseCase construye el caso de uso.
func NewInvestmentUseCase(repo repository.InvestmentRepository) *InvestmentUseCase {
	return &InvestmentUseCase{repo: repo}
}

// List lista inversiones; employeeID vacío = todas. status filtra si no está vacío.
func (uc *InvestmentUseCase) List(ctx context.Context, employeeID, status string, page dto.PageRequest) (*dto.InvestmentListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Investment
		err  error
	)
	if employeeID == "" {
		list, err = uc.repo.List(ctx)
	} else {
		list, err = uc.repo.ListByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}

	filtered := list[:0:0]
	for _, inv := range list {
		if status == "" || string(inv.Status) == status {
			filtered = append(filtered, inv)
		}
	}
	from, to := page.Window(len(filtered))
	items := make([]dto.InvestmentResponse, 0, to-from)
	for _, inv := range filtered[from:to] {
		items = append(items, dto.ToInvestmentResponse(inv))
	}
	return &dto.InvestmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(filtered)},
	}, nil
}
