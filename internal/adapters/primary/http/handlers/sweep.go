package handlers

import (
	"net/http"

	"ml-lifecycle-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetInventory(c *gin.Context) {
	inventory, err := h.sweepSvc.Inventory(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("inventory failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryResponse(inventory))
}

// RunSweep tears down every model and version in the project. The
// request blocks until the sweep finishes or its poll timeout fires.
func (h *Handler) RunSweep(c *gin.Context) {
	report, err := h.sweepSvc.Sweep(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("sweep failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSweepReportResponse(report))
}
