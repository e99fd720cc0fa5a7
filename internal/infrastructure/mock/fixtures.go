// Package mock implementa los puertos de lectura del dominio sobre tablas fijas en memoria.
// Sustituye a la base de datos en desarrollo y demos; no admite mutaciones.
package mock

import (
	"time"

	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AsOf fecha de referencia de los fixtures: las estadísticas mensuales se calculan contra este mes.
var AsOf = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

// IDs de usuarios de demo.
const (
	AdminID     = "usr-admin-001"
	EmployeeID1 = "usr-emp-001"
	EmployeeID2 = "usr-emp-002"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// users sin PasswordHash: el hash se calcula al construir el repositorio.
func users() []entity.User {
	return []entity.User{
		{
			ID: AdminID, Email: "laura.gomez@inversiones.test", Name: "Laura Gómez",
			Role: entity.RoleAdmin, Department: "Dirección", Position: "Gerente General",
			ImageURL: "https://i.pravatar.cc/150?u=laura",
		},
		{
			ID: EmployeeID1, Email: "carlos.ruiz@inversiones.test", Name: "Carlos Ruiz",
			Role: entity.RoleEmployee, Department: "Comercial", Position: "Asesor de Inversiones",
		},
		{
			ID: EmployeeID2, Email: "ana.torres@inversiones.test", Name: "Ana Torres",
			Role: entity.RoleEmployee, Department: "Comercial", Position: "Asesora Senior",
			ImageURL: "https://i.pravatar.cc/150?u=ana",
		},
	}
}

func investments() []entity.Investment {
	return []entity.Investment{
		{
			ID: "inv-001", ClientName: "Inversiones Andina SAS", Amount: dec("50000"),
			Type: entity.InvestmentFixed, Status: entity.InvestmentActive, ReturnRate: dec("9.5"),
			StartDate: day(2024, time.June, 3), EndDate: dayPtr(2025, time.June, 3), EmployeeID: EmployeeID1,
		},
		{
			ID: "inv-002", ClientName: "María Fernández", Amount: dec("12000"),
			Type: entity.InvestmentFlexible, Status: entity.InvestmentActive, ReturnRate: dec("6"),
			StartDate: day(2024, time.May, 15), EmployeeID: EmployeeID1,
		},
		{
			ID: "inv-003", ClientName: "Grupo Pacífico", Amount: dec("80000"),
			Type: entity.InvestmentSpecial, Status: entity.InvestmentPending, ReturnRate: dec("11.25"),
			StartDate: day(2024, time.June, 20), EmployeeID: EmployeeID2,
			Notes: "Pendiente de firma del comité de riesgo",
		},
		{
			ID: "inv-004", ClientName: "Jorge Salazar", Amount: dec("25000"),
			Type: entity.InvestmentFixed, Status: entity.InvestmentCompleted, ReturnRate: dec("8"),
			StartDate: day(2023, time.June, 1), EndDate: dayPtr(2024, time.June, 1), EmployeeID: EmployeeID2,
		},
		{
			ID: "inv-005", ClientName: "Clínica del Norte", Amount: dec("40000"),
			Type: entity.InvestmentFlexible, Status: entity.InvestmentActive, ReturnRate: dec("7"),
			StartDate: day(2024, time.May, 2), EmployeeID: EmployeeID1,
		},
		{
			ID: "inv-006", ClientName: "Pedro Ramírez", Amount: dec("5000"),
			Type: entity.InvestmentSpecial, Status: entity.InvestmentPending, ReturnRate: dec("10"),
			StartDate: day(2024, time.June, 25), EmployeeID: EmployeeID2,
		},
	}
}

// referrals: la comisión corresponde a la tasa del nivel del empleado
// (Carlos: Bronce 5%, Ana: Plata 7%).
func referrals() []entity.Referral {
	return []entity.Referral{
		{
			ID: "ref-001", ClientName: "Sofía Castro", Email: "sofia.castro@mail.test", Phone: "+57 300 111 2233",
			Status: entity.ReferralCompleted, Amount: dec("20000"), Commission: dec("1000"),
			Date: day(2024, time.May, 10), CompletedAt: dayPtr(2024, time.May, 28),
			EmployeeID: EmployeeID1, EmployeeName: "Carlos Ruiz", Relationship: "Amiga",
		},
		{
			ID: "ref-002", ClientName: "Andrés Mejía", Email: "andres.mejia@mail.test", Phone: "+57 301 222 3344",
			Status: entity.ReferralActive, Amount: dec("15000"), Commission: dec("750"),
			Date: day(2024, time.June, 5), EmployeeID: EmployeeID1, EmployeeName: "Carlos Ruiz", Relationship: "Colega",
		},
		{
			ID: "ref-003", ClientName: "Valentina Ríos", Email: "valentina.rios@mail.test", Phone: "+57 302 333 4455",
			Status: entity.ReferralPending, Amount: dec("8000"), Commission: dec("400"),
			Date: day(2024, time.June, 18), EmployeeID: EmployeeID1, EmployeeName: "Carlos Ruiz", Relationship: "Familiar",
			Notes: "Espera aprobación de documentos",
		},
		{
			ID: "ref-004", ClientName: "Ferretería El Martillo", Email: "compras@elmartillo.test", Phone: "+57 604 555 6677",
			Status: entity.ReferralCompleted, Amount: dec("30000"), Commission: dec("2100"),
			Date: day(2024, time.April, 22), CompletedAt: dayPtr(2024, time.May, 15),
			EmployeeID: EmployeeID2, EmployeeName: "Ana Torres", Relationship: "Cliente anterior",
		},
		{
			ID: "ref-005", ClientName: "Camilo Herrera", Email: "camilo.herrera@mail.test", Phone: "+57 310 444 5566",
			Status: entity.ReferralActive, Amount: dec("12000"), Commission: dec("840"),
			Date: day(2024, time.June, 11), EmployeeID: EmployeeID2, EmployeeName: "Ana Torres", Relationship: "Vecino",
		},
		{
			ID: "ref-006", ClientName: "Lucía Patiño", Email: "lucia.patino@mail.test", Phone: "+57 311 555 6677",
			Status: entity.ReferralCompleted, Amount: dec("18000"), Commission: dec("1260"),
			Date: day(2024, time.June, 2), CompletedAt: dayPtr(2024, time.June, 27),
			EmployeeID: EmployeeID2, EmployeeName: "Ana Torres", Relationship: "Amiga",
		},
		{
			ID: "ref-007", ClientName: "Diego Ortiz", Email: "diego.ortiz@mail.test", Phone: "+57 312 666 7788",
			Status: entity.ReferralPending, Amount: dec("6000"), Commission: dec("420"),
			Date: day(2024, time.May, 30), EmployeeID: EmployeeID2, EmployeeName: "Ana Torres", Relationship: "Conocido",
		},
	}
}

func referralLevels() []entity.ReferralLevel {
	return []entity.ReferralLevel{
		{
			ID: "lvl-bronze", Name: "Bronce", Threshold: 0, Commission: dec("5"),
			Rewards: entity.LevelRewards{Bonus: decimal.Zero, Features: []string{"Panel de referidos"}},
		},
		{
			ID: "lvl-silver", Name: "Plata", Threshold: 3, Commission: dec("7"),
			Rewards: entity.LevelRewards{Bonus: dec("500"), Features: []string{"Panel de referidos", "Soporte prioritario"}},
		},
		{
			ID: "lvl-gold", Name: "Oro", Threshold: 6, Commission: dec("10"),
			Rewards: entity.LevelRewards{Bonus: dec("1500"), Features: []string{"Panel de referidos", "Soporte prioritario", "Asesor dedicado"}},
		},
		{
			ID: "lvl-platinum", Name: "Platino", Threshold: 10, Commission: dec("12"),
			Rewards: entity.LevelRewards{Bonus: dec("5000"), Features: []string{"Panel de referidos", "Soporte prioritario", "Asesor dedicado", "Eventos exclusivos"}},
		},
	}
}
