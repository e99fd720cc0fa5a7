// Package pdf genera el reporte descargable del panel de administración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INVERSIONES: total / activas / pendientes / crecimiento     │
//	│  REFERIDOS: total / comisión / pagada / crecimiento          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Nivel | Invertido | Referidos | Comisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: usuarios registrados + leyenda                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator genera el reporte del panel admin usando Maroto v2.
type ReportGenerator struct {
	company string
}

// NewReportGenerator construye el generador; company aparece como autor y en la cabecera.
func NewReportGenerator(company string) *ReportGenerator {
	return &ReportGenerator{company: company}
}

// GenerateAdminReport genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) GenerateAdminReport(_ context.Context, summary *dto.AdminDashboardDTO) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("pdf: resumen vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inversiones y referidos", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(investmentsRow(summary.Investments))
	m.AddRows(referralsRow(summary.Referrals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range employeeRows(summary.TopEmployees) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(summary.UserCount))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportGenerator) headerRow(summary *dto.AdminDashboardDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Panel de administración", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVERSIONES Y REFERIDOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+summary.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func investmentsRow(s dto.InvestmentStatsDTO) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("INVERSIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Total: %s (%d)   |   Activas: %d por $%s   |   Pendientes: %d",
				s.TotalLabel, s.TotalCount, s.ActiveCount, formatMoney(s.ActiveAmount), s.PendingCount,
			), props.Text{Size: 8, Top: 6}),
			text.New(fmt.Sprintf("Rendimiento medio: %s%%   |   Crecimiento mensual: %s%%",
				s.AverageReturn.StringFixed(2), s.GrowthPercent.StringFixed(2),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func referralsRow(s dto.ReferralStatsDTO) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("REFERIDOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Total: %d   |   Pendientes: %d   |   Activos: %d   |   Completados: %d",
				s.TotalCount, s.PendingCount, s.ActiveCount, s.CompletedCount,
			), props.Text{Size: 8, Top: 6}),
			text.New(fmt.Sprintf("Comisión total: %s   |   Pagada: $%s   |   Crecimiento mensual: %s%%",
				s.CommissionLabel, formatMoney(s.PaidCommission), s.GrowthPercent.StringFixed(2),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow cabecera de la tabla de empleados.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(8).Add(
		h("Empleado", 4, align.Left),
		h("Nivel", 2, align.Center),
		h("Invertido", 2, align.Right),
		h("Referidos", 2, align.Center),
		h("Comisión", 2, align.Right),
	)
}

func employeeRows(rows []dto.EmployeePerformanceDTO) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin empleados con actividad.", props.Text{Size: 8, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(rows))
	for _, e := range rows {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(e.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(e.Level, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(e.InvestedAmount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(strconv.Itoa(e.ReferralCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(e.CommissionEarned), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func footerRow(userCount int) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Usuarios registrados: %d", userCount), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New("Cifras calculadas sobre la fuente de datos configurada al momento de la generación.", props.Text{
			Size: 6.5, Color: colorGray, Top: 5,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en la parte entera.
// Ej: 25000 → "25.000", 1000000.5 → "1.000.000"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg, s = true, s[1:]
	}
	n := len(s)
	buf := make([]byte, 0, n+n/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
