package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/metrics"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.ReferralRepository      = (*ReferralRepo)(nil)
	_ repository.ReferralLevelRepository = (*ReferralLevelRepo)(nil)
)

const referralColumns = `
	r.id, r.client_name, r.email, r.phone, r.status, r.amount, r.commission, r.date, r.completed_at,
	COALESCE(r.notes, ''), r.employee_id, u.name, r.relationship`

// ReferralRepo implementación de solo lectura de ReferralRepository.
// employee_name se resuelve con JOIN a users.
type ReferralRepo struct {
	q Querier
}

// NewReferralRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReferralRepository(q Querier) *ReferralRepo {
	return &ReferralRepo{q: q}
}

// List devuelve todos los referidos, más recientes primero.
func (r *ReferralRepo) List(ctx context.Context) ([]*entity.Referral, error) {
	return r.list(ctx, `
		SELECT `+referralColumns+`
		FROM referrals r JOIN users u ON u.id = r.employee_id
		ORDER BY r.date DESC`)
}

// ListByEmployee devuelve los referidos de un empleado.
func (r *ReferralRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Referral, error) {
	return r.list(ctx, `
		SELECT `+referralColumns+`
		FROM referrals r JOIN users u ON u.id = r.employee_id
		WHERE r.employee_id = $1
		ORDER BY r.date DESC`, employeeID)
}

func (r *ReferralRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Referral, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Referral
	for rows.Next() {
		ref, err := scanReferral(rows)
		if err != nil {
			return nil, fmt.Errorf("scan referral: %w", err)
		}
		list = append(list, ref)
	}
	return list, rows.Err()
}

func scanReferral(row pgx.Row) (*entity.Referral, error) {
	var ref entity.Referral
	var status string
	err := row.Scan(
		&ref.ID, &ref.ClientName, &ref.Email, &ref.Phone, &status, &ref.Amount, &ref.Commission,
		&ref.Date, &ref.CompletedAt, &ref.Notes, &ref.EmployeeID, &ref.EmployeeName, &ref.Relationship,
	)
	if err != nil {
		return nil, err
	}
	ref.Status = entity.ReferralStatus(status)
	return &ref, nil
}

// Stats calcula los agregados de referidos en una sola consulta.
func (r *ReferralRepo) Stats(ctx context.Context, f repository.StatsFilter) (*repository.ReferralStats, error) {
	prevStart, start, end := metrics.MonthBounds(asOfOrNow(f.AsOf))
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(commission), 0),
			COALESCE(SUM(commission) FILTER (WHERE status = 'completed'), 0),
			COUNT(*) FILTER (WHERE date >= $3 AND date < $4),
			COUNT(*) FILTER (WHERE date >= $2 AND date < $3)
		FROM referrals
		WHERE ($1 = '' OR employee_id = $1)`
	var s repository.ReferralStats
	err := r.q.QueryRow(ctx, query, f.EmployeeID, prevStart, start, end).Scan(
		&s.TotalCount, &s.PendingCount, &s.ActiveCount, &s.CompletedCount,
		&s.TotalAmount, &s.TotalCommission, &s.PaidCommission, &s.CurrentMonth, &s.PreviousMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("referral stats: %w", err)
	}
	s.GrowthPercent = metrics.Growth(decimal.NewFromInt(int64(s.CurrentMonth)), decimal.NewFromInt(int64(s.PreviousMonth)))
	return &s, nil
}

// ReferralLevelRepo tabla referral_levels.
type ReferralLevelRepo struct {
	q Querier
}

// NewReferralLevelRepository construye el adaptador.
func NewReferralLevelRepository(q Querier) *ReferralLevelRepo {
	return &ReferralLevelRepo{q: q}
}

// List devuelve los niveles ordenados por umbral ascendente.
func (r *ReferralLevelRepo) List(ctx context.Context) ([]entity.ReferralLevel, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, threshold, commission, bonus, features
		FROM referral_levels ORDER BY threshold ASC`)
	if err != nil {
		return nil, fmt.Errorf("list referral levels: %w", err)
	}
	defer rows.Close()
	var list []entity.ReferralLevel
	for rows.Next() {
		var l entity.ReferralLevel
		if err := rows.Scan(&l.ID, &l.Name, &l.Threshold, &l.Commission, &l.Rewards.Bonus, &l.Rewards.Features); err != nil {
			return nil, fmt.Errorf("scan referral level: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
