package handlers

import (
	"net/http"

	"ml-lifecycle-service/internal/adapters/primary/http/dto"
	"ml-lifecycle-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ExportDataset(c *gin.Context) {
	if h.datasetSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "warehouse integration is disabled"})
		return
	}

	var req dto.ExportDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Prefix == "" {
		req.Prefix = "data"
	}

	result, err := h.datasetSvc.Export(c.Request.Context(), ports.ExampleFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Limit:     req.Limit,
	}, req.Prefix, req.EvalFraction)
	if err != nil {
		log.WithError(err).Error("dataset export failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetLabelBalance(c *gin.Context) {
	if h.datasetSvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "warehouse integration is disabled"})
		return
	}

	positive, negative, err := h.datasetSvc.LabelBalance(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LabelBalanceResponse{Positive: positive, Negative: negative})
}
