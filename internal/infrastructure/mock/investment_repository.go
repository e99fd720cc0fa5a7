package mock

import (
	"context"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/metrics"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvestmentRepository = (*InvestmentRepo)(nil)

// InvestmentRepo inversiones de demo (solo lectura).
type InvestmentRepo struct {
	rows []entity.Investment
}

// NewInvestmentRepository construye el repositorio con los fixtures.
func NewInvestmentRepository() *InvestmentRepo {
	return &InvestmentRepo{rows: investments()}
}

// List devuelve copias de todas las inversiones.
func (r *InvestmentRepo) List(_ context.Context) ([]*entity.Investment, error) {
	return r.filter(""), nil
}

// ListByEmployee devuelve las inversiones gestionadas por employeeID.
func (r *InvestmentRepo) ListByEmployee(_ context.Context, employeeID string) ([]*entity.Investment, error) {
	return r.filter(employeeID), nil
}

func (r *InvestmentRepo) filter(employeeID string) []*entity.Investment {
	out := make([]*entity.Investment, 0, len(r.rows))
	for i := range r.rows {
		if employeeID != "" && r.rows[i].EmployeeID != employeeID {
			continue
		}
		inv := r.rows[i]
		out = append(out, &inv)
	}
	return out
}

// Stats agrega montos, conteos por estado y crecimiento mensual.
func (r *InvestmentRepo) Stats(_ context.Context, f repository.StatsFilter) (*repository.InvestmentStats, error) {
	asOf := f.AsOf
	if asOf.IsZero() {
		asOf = AsOf
	}
	prevStart, start, end := metrics.MonthBounds(asOf)

	s := &repository.InvestmentStats{}
	avgReturn := decimal.Zero
	for _, inv := range r.filter(f.EmployeeID) {
		avgReturn = metrics.WeightedAverage(s.TotalAmount, avgReturn, inv.Amount, inv.ReturnRate)
		s.TotalCount++
		s.TotalAmount = s.TotalAmount.Add(inv.Amount)
		switch inv.Status {
		case entity.InvestmentActive:
			s.ActiveCount++
			s.ActiveAmount = s.ActiveAmount.Add(inv.Amount)
		case entity.InvestmentPending:
			s.PendingCount++
		case entity.InvestmentCompleted:
			s.CompletedCount++
		}
		switch {
		case metrics.InRange(inv.StartDate, start, end):
			s.CurrentMonth = s.CurrentMonth.Add(inv.Amount)
		case metrics.InRange(inv.StartDate, prevStart, start):
			s.PreviousMonth = s.PreviousMonth.Add(inv.Amount)
		}
	}
	s.AverageReturn = avgReturn.Round(2)
	s.GrowthPercent = metrics.Growth(s.CurrentMonth, s.PreviousMonth)
	return s, nil
}
