package handlers

import (
	"ml-lifecycle-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sweepSvc   *services.SweepService
	trainSvc   *services.TrainingService
	deploySvc  *services.DeploymentService
	predictSvc *services.PredictionService
	datasetSvc *services.DatasetService
}

func New(
	sweepSvc *services.SweepService,
	trainSvc *services.TrainingService,
	deploySvc *services.DeploymentService,
	predictSvc *services.PredictionService,
	datasetSvc *services.DatasetService,
) *Handler {
	return &Handler{
		sweepSvc:   sweepSvc,
		trainSvc:   trainSvc,
		deploySvc:  deploySvc,
		predictSvc: predictSvc,
		datasetSvc: datasetSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Teardown sweep
	r.GET("/inventory", h.GetInventory)
	r.POST("/sweep", h.RunSweep)

	// Models and versions
	r.POST("/models", h.CreateModel)
	r.POST("/models/:model/versions", h.DeployVersion)
	r.POST("/models/:model/versions/:version/default", h.SetDefaultVersion)

	// Online prediction
	r.POST("/models/:model/predict", h.Predict)

	// Training jobs
	r.POST("/jobs", h.SubmitJob)
	r.GET("/jobs/:id", h.GetJob)

	// Dataset staging
	r.POST("/datasets/export", h.ExportDataset)
	r.GET("/datasets/balance", h.GetLabelBalance)
}
