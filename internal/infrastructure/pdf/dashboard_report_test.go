package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/infrastructure/pdf"
)

func TestGenerateAdminReport_ProducePDF(t *testing.T) {
	summary := &dto.AdminDashboardDTO{
		Investments: dto.InvestmentStatsDTO{TotalAmount: decimal.NewFromInt(212000), TotalLabel: "$ 212.000,00", TotalCount: 6},
		Referrals:   dto.ReferralStatsDTO{TotalCount: 7, CommissionLabel: "$ 6.770,00"},
		UserCount:   3,
		TopEmployees: []dto.EmployeePerformanceDTO{
			{EmployeeID: "usr-emp-002", Name: "Ana Torres", InvestedAmount: decimal.NewFromInt(110000), ReferralCount: 4, Level: "Plata"},
		},
		GeneratedAt: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
	}

	out, err := pdf.NewReportGenerator("Inversiones Demo").GenerateAdminReport(context.Background(), summary)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateAdminReport_SinResumen(t *testing.T) {
	_, err := pdf.NewReportGenerator("x").GenerateAdminReport(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "999", pdf.FormatMoney(decimal.NewFromInt(999)))
	assert.Equal(t, "25.000", pdf.FormatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "1.000.000", pdf.FormatMoney(decimal.RequireFromString("1000000.4")))
	assert.Equal(t, "-4.500", pdf.FormatMoney(decimal.NewFromInt(-4500)))
}
