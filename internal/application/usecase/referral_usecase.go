package usecase

import (
	"context"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
)

// ReferralUseCase listados de referidos y tabla de niveles.
type ReferralUseCase struct {
	repo   repository.ReferralRepository
	levels repository.ReferralLevelRepository
}

// NewReferralUseCase construye el caso de uso.
func NewReferralUseCase(repo repository.ReferralRepository, levels repository.ReferralLevelRepository) *ReferralUseCase {
	return &ReferralUseCase{repo: repo, levels: levels}
}

// List lista referidos; employeeID vacío = todos. status filtra si no está vacío.
func (uc *ReferralUseCase) List(ctx context.Context, employeeID, status string, page dto.PageRequest) (*dto.ReferralListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Referral
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
	for _, ref := range list {
		if status == "" || string(ref.Status) == status {
			filtered = append(filtered, ref)
		}
	}
	from, to := page.Window(len(filtered))
	items := make([]dto.ReferralResponse, 0, to-from)
	for _, ref := range filtered[from:to] {
		items = append(items, dto.ToReferralResponse(ref))
	}
	return &dto.ReferralListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(filtered)},
	}, nil
}

// Levels devuelve la tabla de niveles ordenada por umbral.
func (uc *ReferralUseCase) Levels(ctx context.Context) ([]dto.ReferralLevelDTO, error) {
	levels, err := uc.levels.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReferralLevelDTO, 0, len(levels))
	for _, l := range entity.SortLevels(levels) {
		out = append(out, dto.ToReferralLevelDTO(l))
	}
	return out, nil
}
