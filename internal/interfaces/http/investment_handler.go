package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/application/usecase"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

// InvestmentHandler listados de inversiones.
type InvestmentHandler struct {
	uc *usecase.InvestmentUseCase
}

// NewInvestmentHandler construye el handler inyectando el caso de uso.
func NewInvestmentHandler(uc *usecase.InvestmentUseCase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

// ListMine godoc
// @Summary      Inversiones del usuario autenticado
// @Tags         investments
// @Produce      json
// @Param        status  query  string  false  "active | pending | completed"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  dto.InvestmentListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/investments [get]
func (h *InvestmentHandler) ListMine(c *fiber.Ctx) error {
	return h.list(c, GetUserID(c))
}

// ListAll godoc
// @Summary      Todas las inversiones (admin)
// @Tags         investments
// @Produce      json
// @Param        employee_id  query  string  false  "Filtrar por empleado"
// @Param        status       query  string  false  "active | pending | completed"
// @Param        limit        query  int     false  "Límite (default 20)"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {object}  dto.InvestmentListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/investments [get]
func (h *InvestmentHandler) ListAll(c *fiber.Ctx) error {
	return h.list(c, c.Query("employee_id"))
}

func (h *InvestmentHandler) list(c *fiber.Ctx, employeeID string) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	status := c.Query("status")
	if status != "" && !entity.InvestmentStatus(status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
	}
	out, err := h.uc.List(c.UserContext(), employeeID, status, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
