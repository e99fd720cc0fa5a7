package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inversiones-api/internal/application/analytics"
	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/domain"
)

// reportGenerator contrato del generador de reportes; lo implementa *pdf.ReportGenerator.
type reportGenerator interface {
	GenerateAdminReport(ctx context.Context, summary *dto.AdminDashboardDTO) ([]byte, error)
}

// DashboardHandler maneja los resúmenes de los paneles.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reports reportGenerator
}

// NewDashboardHandler construye el handler. reports puede ser nil (sin reporte PDF).
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reports reportGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, reports: reports}
}

// Admin devuelve el resumen global del panel de administración.
// GET /admin/dashboard
//
// Respuesta: AdminDashboardDTO (investments, referrals, user_count, top_employees, generated_at).
// Se sirve desde la caché de snapshots si la sincronización ya la llenó.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	summary, err := h.uc.AdminSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Employee devuelve el resumen del usuario autenticado.
// GET /dashboard
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	summary, err := h.uc.EmployeeSummary(c.UserContext(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Report godoc
// @Summary      Reporte PDF del panel de administración
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /admin/dashboard/report.pdf [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	if h.reports == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "reporte PDF no configurado"})
	}
	summary, err := h.uc.AdminSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	doc, err := h.reports.GenerateAdminReport(c.UserContext(), summary)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-panel.pdf"`)
	return c.Send(doc)
}
