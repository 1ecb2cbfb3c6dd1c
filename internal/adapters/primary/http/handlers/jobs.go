package handlers

import (
	"net/http"
	"strconv"

	"ml-lifecycle-service/internal/adapters/primary/http/dto"
	"ml-lifecycle-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) SubmitJob(c *gin.Context) {
	var req dto.SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.trainSvc.Submit(c.Request.Context(), domain.TrainingInput{
		PackageURIs:    req.PackageURIs,
		PythonModule:   req.PythonModule,
		Region:         req.Region,
		JobDir:         req.JobDir,
		RuntimeVersion: req.RuntimeVersion,
		ScaleTier:      req.ScaleTier,
	})
	if err != nil {
		log.WithError(err).Error("submit job failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ToJobResponse(job))
}

// GetJob returns the current job state; with ?wait=true it blocks
// until the job is terminal.
func (h *Handler) GetJob(c *gin.Context) {
	wait, _ := strconv.ParseBool(c.DefaultQuery("wait", "false"))

	var err error
	var job *domain.TrainingJob
	if wait {
		job, err = h.trainSvc.Wait(c.Request.Context(), c.Param("id"))
	} else {
		job, err = h.trainSvc.Get(c.Request.Context(), c.Param("id"))
	}
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}
