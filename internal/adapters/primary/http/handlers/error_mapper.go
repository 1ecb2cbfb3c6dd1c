package handlers

import (
	"errors"
	"net/http"

	"ml-lifecycle-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrModelNotFound),
		errors.Is(err, domain.ErrVersionNotFound),
		errors.Is(err, domain.ErrOperationNotFound),
		errors.Is(err, domain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrModelAlreadyExists),
		errors.Is(err, domain.ErrVersionAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingProject),
		errors.Is(err, domain.ErrInvalidModelName),
		errors.Is(err, domain.ErrInvalidVersionName),
		errors.Is(err, domain.ErrInvalidDeploymentURI),
		errors.Is(err, domain.ErrUnsupportedFramework),
		errors.Is(err, domain.ErrInvalidJobSpec),
		errors.Is(err, domain.ErrNoInstances),
		errors.Is(err, domain.ErrNoTrainingData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Upstream outcome errors
	case errors.Is(err, domain.ErrVersionNotReady),
		errors.Is(err, domain.ErrTrainingFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	// Wait bounds
	case errors.Is(err, domain.ErrSweepTimeout),
		errors.Is(err, domain.ErrJobTimeout),
		errors.Is(err, domain.ErrDeployTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
