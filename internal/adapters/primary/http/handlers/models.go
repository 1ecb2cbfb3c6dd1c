package handlers

import (
	"net/http"

	"ml-lifecycle-service/internal/adapters/primary/http/dto"
	"ml-lifecycle-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateModel(c *gin.Context) {
	var req dto.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := h.deploySvc.CreateModel(c.Request.Context(), req.Name, req.Description, req.Regions)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModelResponse(model))
}

func (h *Handler) DeployVersion(c *gin.Context) {
	var req dto.DeployVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.deploySvc.DeployVersion(c.Request.Context(), services.DeployVersionRequest{
		ModelName:      c.Param("model"),
		VersionName:    req.Name,
		DeploymentURI:  req.DeploymentURI,
		RuntimeVersion: req.RuntimeVersion,
		Framework:      req.Framework,
		MachineType:    req.MachineType,
		MakeDefault:    req.MakeDefault,
	})
	if err != nil {
		log.WithError(err).Error("deploy version failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVersionResponse(version))
}

func (h *Handler) SetDefaultVersion(c *gin.Context) {
	err := h.deploySvc.SetDefault(c.Request.Context(), c.Param("model"), c.Param("version"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	predictions, err := h.predictSvc.Predict(c.Request.Context(), c.Param("model"), c.Query("version"), req.Instances)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PredictResponse{Predictions: predictions})
}
