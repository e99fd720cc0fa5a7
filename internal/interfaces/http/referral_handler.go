package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/application/usecase"
	"github.com/jhoicas/Inversiones-api/internal/domain/entity"
)

// ReferralHandler listados de referidos y tabla de niveles.
type ReferralHandler struct {
	uc *usecase.ReferralUseCase
}

// NewReferralHandler construye el handler inyectando el caso de uso.
func NewReferralHandler(uc *usecase.ReferralUseCase) *ReferralHandler {
	return &ReferralHandler{uc: uc}
}

// ListMine godoc
// @Summary      Referidos del usuario autenticado
// @Tags         referrals
// @Produce      json
// @Param        status  query  string  false  "pending | active | completed"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  dto.ReferralListResponse
// @Router       /dashboard/referrals [get]
func (h *ReferralHandler) ListMine(c *fiber.Ctx) error {
	return h.list(c, GetUserID(c))
}

// ListAll godoc
// @Summary      Todos los referidos (admin)
// @Tags         referrals
// @Produce      json
// @Param        employee_id  query  string  false  "Filtrar por empleado"
// @Param        status       query  string  false  "pending | active | completed"
// @Success      200  {object}  dto.ReferralListResponse
// @Router       /admin/referrals [get]
func (h *ReferralHandler) ListAll(c *fiber.Ctx) error {
	return h.list(c, c.Query("employee_id"))
}

// Levels godoc
// @Summary      Tabla de niveles de comisión
// @Tags         referrals
// @Produce      json
// @Success      200  {array}  dto.ReferralLevelDTO
// @Router       /dashboard/levels [get]
func (h *ReferralHandler) Levels(c *fiber.Ctx) error {
	out, err := h.uc.Levels(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *ReferralHandler) list(c *fiber.Ctx, employeeID string) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	status := c.Query("status")
	if status != "" && !entity.ReferralStatus(status).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
	}
	out, err := h.uc.List(c.UserContext(), employeeID, status, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
