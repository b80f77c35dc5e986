package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Admin stats
// @Tags         admin
// @Produce      json
// @Success      200  {object}  service.StatsSnapshot
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *Handler) stats(c *gin.Context) {
	snap, err := h.services.Snapshot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errServerGeneric,
			"stats_snapshot_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
