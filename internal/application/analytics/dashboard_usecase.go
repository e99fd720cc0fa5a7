// Package analytics contiene los casos de uso de los paneles: resumen del
// administrador y resumen del empleado con su progreso de nivel.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/domain"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/jhoicas/Inversiones-api/internal/domain/repository"
	"github.com/jhoicas/Inversiones-api/pkg/logger"
)

const (
	dashboardTopEmployees = 5 // filas del ranking en el panel admin

	adminSnapshotKey    = "dashboard:admin"
	employeeSnapshotKey = "dashboard:employee:"
)

// SnapshotCache almacén de resúmenes serializados. Get devuelve (nil, nil) si la clave no existe.
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Repos agrupa los puertos de lectura que usa el dashboard.
type Repos struct {
	Users       repository.UserRepository
	Investments repository.InvestmentRepository
	Referrals   repository.ReferralRepository
	Levels      repository.ReferralLevelRepository
}

// DashboardUseCase genera los resúmenes de los paneles.
//
// Fuente de datos: repositorios de solo lectura. Los resúmenes se guardan en
// SnapshotCache y Refresh los recalcula (lo invoca la sincronización periódica).
type DashboardUseCase struct {
	repos Repos
	cache SnapshotCache
	ttl   time.Duration
	log   *logger.Logger
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewDashboardUseCase(repos Repos, cache SnapshotCache, ttl time.Duration, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{repos: repos, cache: cache, ttl: ttl, log: log.Named("dashboard"), now: time.Now}
}

// AdminSummary devuelve el resumen global, desde caché si está disponible.
func (uc *DashboardUseCase) AdminSummary(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	var out dto.AdminDashboardDTO
	if uc.fromCache(ctx, adminSnapshotKey, &out) {
		return &out, nil
	}
	summary, err := uc.buildAdmin(ctx)
	if err != nil {
		return nil, err
	}
	uc.toCache(ctx, adminSnapshotKey, summary)
	return summary, nil
}

// EmployeeSummary devuelve el resumen de un empleado con su nivel de referidos.
func (uc *DashboardUseCase) EmployeeSummary(ctx context.Context, employeeID string) (*dto.EmployeeDashboardDTO, error) {
	var out dto.EmployeeDashboardDTO
	key := employeeSnapshotKey + employeeID
	if uc.fromCache(ctx, key, &out) {
		return &out, nil
	}
	summary, err := uc.buildEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	uc.toCache(ctx, key, summary)
	return summary, nil
}

// Refresh recalcula y guarda los resúmenes del admin y de cada empleado.
func (uc *DashboardUseCase) Refresh(ctx context.Context) error {
	admin, err := uc.buildAdmin(ctx)
	if err != nil {
		return err
	}
	uc.toCache(ctx, adminSnapshotKey, admin)

	users, err := uc.repos.Users.List(ctx)
	if err != nil {
		return fmt.Errorf("dashboard: usuarios: %w", err)
	}
	for _, u := range users {
		if u.Role != entity.RoleEmployee {
			continue
		}
		summary, err := uc.buildEmployee(ctx, u.ID)
		if err != nil {
			return err
		}
		uc.toCache(ctx, employeeSnapshotKey+u.ID, summary)
	}
	return nil
}

// buildAdmin lanza en paralelo:
//  1. Stats de inversiones  → Investments
//  2. Stats de referidos    → Referrals
//  3. Usuarios + listados   → UserCount + TopEmployees
func (uc *DashboardUseCase) buildAdmin(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	type invResult struct {
		stats *repository.InvestmentStats
		err   error
	}
	type refResult struct {
		stats *repository.ReferralStats
		err   error
	}
	type rankResult struct {
		users int
		top   []dto.EmployeePerformanceDTO
		err   error
	}

	invCh := make(chan invResult, 1)
	refCh := make(chan refResult, 1)
	rankCh := make(chan rankResult, 1)

	go func() {
		s, err := uc.repos.Investments.Stats(ctx, repository.StatsFilter{})
		invCh <- invResult{s, err}
	}()
	go func() {
		s, err := uc.repos.Referrals.Stats(ctx, repository.StatsFilter{})
		refCh <- refResult{s, err}
	}()
	go func() {
		n, top, err := uc.ranking(ctx)
		rankCh <- rankResult{n, top, err}
	}()

	inv := <-invCh
	ref := <-refCh
	rank := <-rankCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas de inversiones: %w", inv.err)
	}
	if ref.err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas de referidos: %w", ref.err)
	}
	if rank.err != nil {
		return nil, fmt.Errorf("dashboard: ranking: %w", rank.err)
	}

	return &dto.AdminDashboardDTO{
		Investments:  toInvestmentStatsDTO(inv.stats),
		Referrals:    toReferralStatsDTO(ref.stats),
		UserCount:    rank.users,
		TopEmployees: rank.top,
		GeneratedAt:  uc.now().UTC(),
	}, nil
}

// ranking agrega inversiones y referidos por empleado y ordena por monto invertido.
func (uc *DashboardUseCase) ranking(ctx context.Context) (int, []dto.EmployeePerformanceDTO, error) {
	users, err := uc.repos.Users.List(ctx)
	if err != nil {
		return 0, nil, err
	}
	invs, err := uc.repos.Investments.List(ctx)
	if err != nil {
		return 0, nil, err
	}
	refs, err := uc.repos.Referrals.List(ctx)
	if err != nil {
		return 0, nil, err
	}
	levels, err := uc.repos.Levels.List(ctx)
	if err != nil {
		return 0, nil, err
	}

	rows := make(map[string]*dto.EmployeePerformanceDTO)
	volume := make(map[string]int)
	order := make([]string, 0, len(users))
	for _, u := range users {
		if u.Role != entity.RoleEmployee {
			continue
		}
		rows[u.ID] = &dto.EmployeePerformanceDTO{EmployeeID: u.ID, Name: u.Name}
		order = append(order, u.ID)
	}
	for _, inv := range invs {
		if row, ok := rows[inv.EmployeeID]; ok {
			row.InvestedAmount = row.InvestedAmount.Add(inv.Amount)
		}
	}
	for _, ref := range refs {
		row, ok := rows[ref.EmployeeID]
		if !ok {
			continue
		}
		row.ReferralCount++
		if ref.Status == entity.ReferralCompleted {
			row.CommissionEarned = row.CommissionEarned.Add(ref.Commission)
		}
		if ref.Counts() {
			volume[ref.EmployeeID]++
		}
	}

	top := make([]dto.EmployeePerformanceDTO, 0, len(order))
	for _, id := range order {
		row := rows[id]
		if current, _, err := entity.ClassifyLevel(levels, volume[id]); err == nil {
			row.Level = current.Name
		}
		top = append(top, *row)
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].InvestedAmount.GreaterThan(top[j].InvestedAmount)
	})
	if len(top) > dashboardTopEmployees {
		top = top[:dashboardTopEmployees]
	}
	return len(users), top, nil
}

func (uc *DashboardUseCase) buildEmployee(ctx context.Context, employeeID string) (*dto.EmployeeDashboardDTO, error) {
	user, err := uc.repos.Users.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	filter := repository.StatsFilter{EmployeeID: employeeID}
	invStats, err := uc.repos.Investments.Stats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas de inversiones: %w", err)
	}
	refStats, err := uc.repos.Referrals.Stats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas de referidos: %w", err)
	}
	levels, err := uc.repos.Levels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: niveles: %w", err)
	}

	progress, err := LevelProgress(levels, refStats.ActiveCount+refStats.CompletedCount)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeDashboardDTO{
		User:        *dto.ToUserResponse(user),
		Investments: toInvestmentStatsDTO(invStats),
		Referrals:   toReferralStatsDTO(refStats),
		Level:       progress,
	}, nil
}

// LevelProgress ubica volume en la tabla de niveles y calcula el avance hacia el siguiente.
// En el último nivel el avance es 100.
func LevelProgress(levels []entity.ReferralLevel, volume int) (dto.LevelProgressDTO, error) {
	current, next, err := entity.ClassifyLevel(levels, volume)
	if err != nil {
		return dto.LevelProgressDTO{}, err
	}
	out := dto.LevelProgressDTO{
		Current:         dto.ToReferralLevelDTO(current),
		Volume:          volume,
		ProgressPercent: decimal.NewFromInt(100),
	}
	if next == nil {
		return out, nil
	}
	n := dto.ToReferralLevelDTO(*next)
	out.Next = &n
	out.RemainingToNext = next.Threshold - volume

	span := next.Threshold - current.Threshold
	if span <= 0 {
		out.ProgressPercent = decimal.Zero
		return out, nil
	}
	done := volume - current.Threshold
	if done < 0 {
		done = 0
	}
	out.ProgressPercent = decimal.NewFromInt(int64(done)).
		Div(decimal.NewFromInt(int64(span))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	return out, nil
}

func toInvestmentStatsDTO(s *repository.InvestmentStats) dto.InvestmentStatsDTO {
	return dto.InvestmentStatsDTO{
		TotalAmount:   s.TotalAmount,
		TotalLabel:    FormatMoney(s.TotalAmount),
		TotalCount:    s.TotalCount,
		ActiveCount:   s.ActiveCount,
		PendingCount:  s.PendingCount,
		ActiveAmount:  s.ActiveAmount,
		AverageReturn: s.AverageReturn,
		GrowthPercent: s.GrowthPercent,
	}
}

func toReferralStatsDTO(s *repository.ReferralStats) dto.ReferralStatsDTO {
	return dto.ReferralStatsDTO{
		TotalCount:      s.TotalCount,
		PendingCount:    s.PendingCount,
		ActiveCount:     s.ActiveCount,
		CompletedCount:  s.CompletedCount,
		TotalCommission: s.TotalCommission,
		CommissionLabel: FormatMoney(s.TotalCommission),
		PaidCommission:  s.PaidCommission,
		GrowthPercent:   s.GrowthPercent,
	}
}

// fromCache decodifica la clave en dst. Un error de caché se trata como fallo de lectura.
func (uc *DashboardUseCase) fromCache(ctx context.Context, key string, dst any) bool {
	if uc.cache == nil {
		return false
	}
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("lectura de caché fallida")
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("snapshot corrupto en caché")
		return false
	}
	return true
}

func (uc *DashboardUseCase) toCache(ctx context.Context, key string, v any) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("serializar snapshot")
		return
	}
	if err := uc.cache.Set(ctx, key, raw, uc.ttl); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("escritura de caché fallida")
	}
}
