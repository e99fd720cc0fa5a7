package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inversiones-api/internal/application/dto"
	"github.com/jhoicas/Inversiones-api/internal/application/syncmanager"
	"github.com/jhoicas/Inversiones-api/internal/domain"
)

// visibility lo implementa *syncstatus.Indicator.
type visibility interface {
	Visible() bool
}

// SyncHandler expone el estado del indicador y el disparo manual de sincronización.
type SyncHandler struct {
	mgr       *syncmanager.Manager
	indicator visibility
}

// NewSyncHandler construye el handler.
func NewSyncHandler(mgr *syncmanager.Manager, indicator visibility) *SyncHandler {
	return &SyncHandler{mgr: mgr, indicator: indicator}
}

// Status godoc
// @Summary      Estado de sincronización
// @Description  visible sigue en true durante el periodo de gracia tras terminar la sincronización.
// @Tags         sync
// @Produce      json
// @Success      200  {object}  dto.SyncStatusResponse
// @Router       /api/sync/status [get]
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	st := h.mgr.Status()
	return c.JSON(dto.SyncStatusResponse{
		SyncInProgress: st.InProgress,
		Visible:        h.indicator.Visible(),
		LastRun:        st.LastRun,
		LastError:      st.LastError,
	})
}

// Trigger godoc
// @Summary      Disparar sincronización (admin)
// @Tags         sync
// @Produce      json
// @Success      202  {object}  dto.SyncStatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /admin/sync [post]
func (h *SyncHandler) Trigger(c *fiber.Ctx) error {
	if err := h.mgr.TriggerAsync(c.UserContext()); err != nil {
		if errors.Is(err, domain.ErrSyncInProgress) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SYNC_IN_PROGRESS", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrSyncStopped) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SYNC_STOPPED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.SyncStatusResponse{
		SyncInProgress: true,
		Visible:        h.indicator.Visible(),
	})
}
