package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/metrics"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
)

var _ repository.InvestmentRepository = (*InvestmentRepo)(nil)

const investmentColumns = `
	id, client_name, amount, type, status, return_rate, start_date, end_date, employee_id, COALESCE(notes, '')`

// InvestmentRepo implementación de solo lectura de InvestmentRepository.
type InvestmentRepo struct {
	q Querier
}

// NewInvestmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvestmentRepository(q Querier) *InvestmentRepo {
	return &InvestmentRepo{q: q}
}

// List devuelve todas las inversiones, más recientes primero.
func (r *InvestmentRepo) List(ctx context.Context) ([]*entity.Investment, error) {
	return r.list(ctx, `SELECT `+investmentColumns+` FROM investments ORDER BY start_date DESC`)
}

// ListByEmployee devuelve las inversiones de un empleado.
func (r *InvestmentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Investment, error) {
	return r.list(ctx, `SELECT `+investmentColumns+` FROM investments WHERE employee_id = $1 ORDER BY start_date DESC`, employeeID)
}

func (r *InvestmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Investment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvestment(row pgx.Row) (*entity.Investment, error) {
	var inv entity.Investment
	var typ, status string
	err := row.Scan(
		&inv.ID, &inv.ClientName, &inv.Amount, &typ, &status, &inv.ReturnRate,
		&inv.StartDate, &inv.EndDate, &inv.EmployeeID, &inv.Notes,
	)
	if err != nil {
		return nil, err
	}
	inv.Type = entity.InvestmentType(typ)
	inv.Status = entity.InvestmentStatus(status)
	return &inv, nil
}

// Stats calcula los agregados en una sola consulta; ($1 = ” significa todos los empleados).
func (r *InvestmentRepo) Stats(ctx context.Context, f repository.StatsFilter) (*repository.InvestmentStats, error) {
	prevStart, start, end := metrics.MonthBounds(asOfOrNow(f.AsOf))
	query := `
		SELECT
			COALESCE(SUM(amount), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(amount) FILTER (WHERE status = 'active'), 0),
			COALESCE(ROUND(SUM(amount * return_rate) / NULLIF(SUM(amount), 0), 2), 0),
			COALESCE(SUM(amount) FILTER (WHERE start_date >= $3 AND start_date < $4), 0),
			COALESCE(SUM(amount) FILTER (WHERE start_date >= $2 AND start_date < $3), 0)
		FROM investments
		WHERE ($1 = '' OR employee_id = $1)`
	var s repository.InvestmentStats
	err := r.q.QueryRow(ctx, query, f.EmployeeID, prevStart, start, end).Scan(
		&s.TotalAmount, &s.TotalCount, &s.ActiveCount, &s.PendingCount, &s.CompletedCount,
		&s.ActiveAmount, &s.AverageReturn, &s.CurrentMonth, &s.PreviousMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("investment stats: %w", err)
	}
	s.GrowthPercent = metrics.Growth(s.CurrentMonth, s.PreviousMonth)
	return &s, nil
}
