package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica los scripts de migrations/ en orden de nombre. Los scripts son idempotentes.
func Migrate(ctx context.Context, q Querier) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		sql, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
	}
	return nil
}

// SeedData datos a cargar en la base (normalmente los fixtures de demo).
type SeedData struct {
	Users       []*entity.User
	Investments []*entity.Investment
	Referrals   []*entity.Referral
	Levels      []entity.ReferralLevel
}

// Seed inserta o actualiza los datos por ID. Se valida cada fila antes de escribirla.
func Seed(ctx context.Context, q Querier, data SeedData) error {
	for _, u := range data.Users {
		if !u.Role.Valid() {
			return fmt.Errorf("seed usuario %s: rol %q", u.ID, u.Role)
		}
		_, err := q.Exec(ctx, `
			INSERT INTO users (id, email, password_hash, name, role, department, position, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
			ON CONFLICT (id) DO UPDATE SET
				email = EXCLUDED.email, password_hash = EXCLUDED.password_hash, name = EXCLUDED.name,
				role = EXCLUDED.role, department = EXCLUDED.department, position = EXCLUDED.position,
				image_url = EXCLUDED.image_url`,
			u.ID, u.Email, u.PasswordHash, u.Name, string(u.Role), u.Department, u.Position, u.ImageURL)
		if err != nil {
			return fmt.Errorf("seed usuario %s: %w", u.ID, err)
		}
	}

	for _, l := range data.Levels {
		features := l.Rewards.Features
		if features == nil {
			features = []string{}
		}
		_, err := q.Exec(ctx, `
			INSERT INTO referral_levels (id, name, threshold, commission, bonus, features)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name, threshold = EXCLUDED.threshold, commission = EXCLUDED.commission,
				bonus = EXCLUDED.bonus, features = EXCLUDED.features`,
			l.ID, l.Name, l.Threshold, l.Commission, l.Rewards.Bonus, features)
		if err != nil {
			return fmt.Errorf("seed nivel %s: %w", l.ID, err)
		}
	}

	for _, inv := range data.Investments {
		if err := inv.Validate(); err != nil {
			return fmt.Errorf("seed inversión %s: %w", inv.ID, err)
		}
		_, err := q.Exec(ctx, `
			INSERT INTO investments (id, client_name, amount, type, status, return_rate, start_date, end_date, employee_id, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''))
			ON CONFLICT (id) DO UPDATE SET
				client_name = EXCLUDED.client_name, amount = EXCLUDED.amount, type = EXCLUDED.type,
				status = EXCLUDED.status, return_rate = EXCLUDED.return_rate, start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date, employee_id = EXCLUDED.employee_id, notes = EXCLUDED.notes`,
			inv.ID, inv.ClientName, inv.Amount, string(inv.Type), string(inv.Status), inv.ReturnRate,
			inv.StartDate, inv.EndDate, inv.EmployeeID, inv.Notes)
		if err != nil {
			return fmt.Errorf("seed inversión %s: %w", inv.ID, err)
		}
	}

	for _, ref := range data.Referrals {
		if err := ref.Validate(); err != nil {
			return fmt.Errorf("seed referido %s: %w", ref.ID, err)
		}
		_, err := q.Exec(ctx, `
			INSERT INTO referrals (id, client_name, email, phone, status, amount, commission, date, completed_at, notes, employee_id, relationship)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				client_name = EXCLUDED.client_name, email = EXCLUDED.email, phone = EXCLUDED.phone,
				status = EXCLUDED.status, amount = EXCLUDED.amount, commission = EXCLUDED.commission,
				date = EXCLUDED.date, completed_at = EXCLUDED.completed_at, notes = EXCLUDED.notes,
				employee_id = EXCLUDED.employee_id, relationship = EXCLUDED.relationship`,
			ref.ID, ref.ClientName, ref.Email, ref.Phone, string(ref.Status), ref.Amount, ref.Commission,
			ref.Date, ref.CompletedAt, ref.Notes, ref.EmployeeID, ref.Relationship)
		if err != nil {
			return fmt.Errorf("seed referido %s: %w", ref.ID, err)
		}
	}
	return nil
}
