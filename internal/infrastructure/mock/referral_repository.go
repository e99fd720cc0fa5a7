package mock

import (
	"context"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/metrics"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.ReferralRepository      = (*ReferralRepo)(nil)
	_ repository.ReferralLevelRepository = (*ReferralLevelRepo)(nil)
)

// ReferralRepo referidos de demo (solo lectura).
type ReferralRepo struct {
	rows []entity.Referral
}

// NewReferralRepository construye el repositorio con los fixtures.
func NewReferralRepository() *ReferralRepo {
	return &ReferralRepo{rows: referrals()}
}

// List devuelve copias de todos los referidos.
func (r *ReferralRepo) List(_ context.Context) ([]*entity.Referral, error) {
	return r.filter(""), nil
}

// ListByEmployee devuelve los referidos aportados por employeeID.
func (r *ReferralRepo) ListByEmployee(_ context.Context, employeeID string) ([]*entity.Referral, error) {
	return r.filter(employeeID), nil
}

func (r *ReferralRepo) filter(employeeID string) []*entity.Referral {
	out := make([]*entity.Referral, 0, len(r.rows))
	for i := range r.rows {
		if employeeID != "" && r.rows[i].EmployeeID != employeeID {
			continue
		}
		ref := r.rows[i]
		out = append(out, &ref)
	}
	return out
}

// Stats agrega conteos por estado, montos, comisiones y crecimiento mensual de referidos.
func (r *ReferralRepo) Stats(_ context.Context, f repository.StatsFilter) (*repository.ReferralStats, error) {
	asOf := f.AsOf
	if asOf.IsZero() {
		asOf = AsOf
	}
	prevStart, start, end := metrics.MonthBounds(asOf)

	s := &repository.ReferralStats{}
	for _, ref := range r.filter(f.EmployeeID) {
		s.TotalCount++
		s.TotalAmount = s.TotalAmount.Add(ref.Amount)
		s.TotalCommission = s.TotalCommission.Add(ref.Commission)
		switch ref.Status {
		case entity.ReferralPending:
			s.PendingCount++
		case entity.ReferralActive:
			s.ActiveCount++
		case entity.ReferralCompleted:
			s.CompletedCount++
			s.PaidCommission = s.PaidCommission.Add(ref.Commission)
		}
		switch {
		case metrics.InRange(ref.Date, start, end):
			s.CurrentMonth++
		case metrics.InRange(ref.Date, prevStart, start):
			s.PreviousMonth++
		}
	}
	s.GrowthPercent = metrics.Growth(decimal.NewFromInt(int64(s.CurrentMonth)), decimal.NewFromInt(int64(s.PreviousMonth)))
	return s, nil
}

// ReferralLevelRepo tabla fija de niveles.
type ReferralLevelRepo struct {
	levels []entity.ReferralLevel
}

// NewReferralLevelRepository construye la tabla de niveles de demo.
func NewReferralLevelRepository() *ReferralLevelRepo {
	return &ReferralLevelRepo{levels: entity.SortLevels(referralLevels())}
}

// List devuelve los niveles ordenados por umbral ascendente.
func (r *ReferralLevelRepo) List(_ context.Context) ([]entity.ReferralLevel, error) {
	return entity.SortLevels(r.levels), nil
}
